package eqscript

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var measure = regexp.MustCompile(`^(-?[0-9]*(?:\.[0-9]+)?)\s*([a-z]*|%)$`)

// cmInPixel is the CSS reference: 96 pixels per inch
const cmInPixel = 96 / 2.54

// emInPixel is the size of 1em at the 10pt font size equations are typeset with
const emInPixel = cmInPixel * 0.35146

// namedSpaces are MathML named lengths, in em
var namedSpaces = map[string]float64{
	"veryverythinmathspace":  1.0 / 18,
	"verythinmathspace":      2.0 / 18,
	"thinmathspace":          3.0 / 18,
	"mediummathspace":        4.0 / 18,
	"thickmathspace":         5.0 / 18,
	"verythickmathspace":     6.0 / 18,
	"veryverythickmathspace": 7.0 / 18,
}

// Measure parses measurement value, a number and units, for example: 5.1cm, 0.5em, -.1667em
func Measure(raw string) (float64, string, error) {
	match := measure.FindStringSubmatch(strings.TrimSpace(raw))
	if len(match) == 0 || match[1] == "" || match[1] == "-" {
		return 0, "", errors.New("unable to parse measurement")
	}

	number, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, "", err
	}

	return number, match[2], nil
}

// MeasureEm converts a MathML length, including named spaces, to em
func MeasureEm(raw string) (float64, error) {
	name := strings.TrimSpace(raw)

	if v, ok := namedSpaces[name]; ok {
		return v, nil
	}

	if v, ok := namedSpaces[strings.TrimPrefix(name, "negative")]; ok && strings.HasPrefix(name, "negative") {
		return -v, nil
	}

	n, u, err := Measure(raw)
	if err != nil {
		return 0, err
	}

	return ToEm(n, u)
}

// ToEm converts value in the given unit to em, a unitless value is taken as em
func ToEm(value float64, unit string) (float64, error) {
	switch unit {
	case "em", "":
		return value, nil
	case "ex":
		return value * 0.15132 / 0.35146, nil
	}

	px, err := ToPixels(value, unit)
	if err != nil {
		return 0, err
	}

	return px / emInPixel, nil
}

func ToPixels(value float64, unit string) (float64, error) {
	switch unit {
	case "pt":
		return value * cmInPixel / 28.4495, nil
	case "mm":
		return value * cmInPixel / 10, nil
	case "cm":
		return value * cmInPixel, nil
	case "in":
		return value * cmInPixel * 2.54, nil
	case "ex":
		return value * cmInPixel * 0.15132, nil
	case "em":
		return value * emInPixel, nil
	case "px":
		return value, nil
	default:
		return 0, fmt.Errorf("measurement unit %#v is not supported", unit)
	}
}

// spacing picks the spacing symbol closest to a horizontal space of the given width
func spacing(em float64) string {
	switch {
	case em < 0:
		return "negthinspace"
	case em < 0.25:
		return "thinspace"
	case em < 0.75:
		return "thickspace"
	case em < 1.5:
		return "quad"
	default:
		return "qquad"
	}
}
