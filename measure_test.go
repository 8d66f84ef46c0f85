package eqscript_test

import (
	"testing"

	"github.com/eolymp/go-eqscript"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMeasure(t *testing.T) {
	tt := []struct {
		name  string
		input string
		value float64
		unit  string
	}{
		{name: "px", input: "131.02px", value: 131.02, unit: "px"},
		{name: "em", input: ".025em", value: .025, unit: "em"},
		{name: "negative float", input: "-.025em", value: -.025, unit: "em"},
		{name: "negative int", input: "-25em", value: -25, unit: "em"},
		{name: "%", input: "25%", value: 25, unit: "%"},
		{name: "unitless", input: "2", value: 2, unit: ""},
		{name: "space before unit", input: " 1.5 pt ", value: 1.5, unit: "pt"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			v, u, err := eqscript.Measure(tc.input)
			if err != nil {
				t.Fatal(err)
			}

			if v != tc.value {
				t.Errorf("Value does not match: want %v, got %v", tc.value, v)
			}

			if u != tc.unit {
				t.Errorf("Unit does not match: want %v, got %v", tc.unit, u)
			}
		})
	}
}

func TestMeasureEm(t *testing.T) {
	tt := []struct {
		name  string
		input string
		value float64
	}{
		{name: "em", input: "1em", value: 1},
		{name: "negative em", input: "-0.1667em", value: -0.1667},
		{name: "points", input: "10pt", value: 1},
		{name: "ex", input: "2ex", value: 0.861},
		{name: "named", input: "thinmathspace", value: 3.0 / 18},
		{name: "negative named", input: "negativeverythickmathspace", value: -6.0 / 18},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := eqscript.MeasureEm(tc.input)
			if err != nil {
				t.Fatal(err)
			}

			if !cmp.Equal(tc.value, got, cmpopts.EquateApprox(0.01, 0)) {
				t.Errorf("Value does not match: want %v, got %v", tc.value, got)
			}
		})
	}
}

func TestMeasureEm_Error(t *testing.T) {
	for _, input := range []string{"", "em", "wide", "10%", "5furlongs"} {
		if _, err := eqscript.MeasureEm(input); err == nil {
			t.Errorf("Expected an error for %q", input)
		}
	}
}
