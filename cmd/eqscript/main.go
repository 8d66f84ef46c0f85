package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eolymp/go-eqscript"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("github.com/eolymp/go-eqscript")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		from        string
		printAST    bool
		printMeta   bool
		outPath     string
		showVersion bool
		maxDepth    int
		font        string
		baseUnit    int
		textColor   string
		width       int
	)

	flags := pflag.NewFlagSet("eqscript", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&from, "from", "f", "latex", "Input format: latex|mathml|html")
	flags.BoolVar(&printAST, "ast", false, "Print the parsed tree instead of the script")
	flags.BoolVar(&printMeta, "meta", false, "Print equation metadata along with the script")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&showVersion, "version", "v", false, "Print version and exit")
	flags.IntVar(&maxDepth, "max-depth", eqscript.DefaultMaxDepth, "Maximum nesting depth accepted by the parsers")
	flags.StringVar(&font, "font", eqscript.DefaultFont, "Equation font")
	flags.IntVar(&baseUnit, "base-unit", eqscript.DefaultBaseUnit, "Base font size in 1/100 pt")
	flags.StringVar(&textColor, "color", eqscript.DefaultTextColor, "Text colour")
	flags.IntVarP(&width, "width", "w", 0, "Wrap scripts at this many columns (0 disables wrapping)")

	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: eqscript [flags] [input...]\n")
		fmt.Fprintln(stderr, "\nArguments are joined with spaces, if none is provided the equation is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}

		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}

	if flags.NArg() == 0 && isTerminal(stdin) {
		flags.Usage()
		return 2
	}

	input, err := readInput(flags.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return 1
	}

	conv := eqscript.New(
		eqscript.WithMaxDepth(maxDepth),
		eqscript.WithFont(font),
		eqscript.WithBaseUnit(baseUnit),
		eqscript.WithTextColor(textColor),
	)

	nodes, err := parse(conv, from, input)
	if err != nil {
		fmt.Fprintf(stderr, "convert: %v\n", err)
		return 1
	}

	writer, closer, err := resolveOutput(outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}

	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	for _, node := range nodes {
		if printAST {
			fmt.Fprintln(writer, eqscript.String(node))
			continue
		}

		script, err := eqscript.Generate(node)
		if err != nil {
			fmt.Fprintf(stderr, "convert: %v\n", err)
			return 1
		}

		if width > 0 {
			// line breaks are plain whitespace in equation scripts
			script = wordwrap.String(script, width)
		}

		eq := conv.FromScript(script)
		if printMeta {
			writeEquation(writer, eq)
			continue
		}

		fmt.Fprintln(writer, eq.Script)
	}

	return 0
}

func parse(conv *eqscript.Converter, from, input string) ([]eqscript.Node, error) {
	switch strings.ToLower(from) {
	case "latex", "tex":
		node, err := conv.ParseLatex(input)
		if err != nil {
			return nil, err
		}

		return []eqscript.Node{node}, nil
	case "mathml", "mml":
		node, err := conv.ParseMathML(input)
		if err != nil {
			return nil, err
		}

		return []eqscript.Node{node}, nil
	case "html":
		return conv.ParseHTML(input)
	default:
		return nil, fmt.Errorf("unknown input format %q", from)
	}
}

func writeEquation(w io.Writer, eq *eqscript.Equation) {
	fmt.Fprintf(w, "version: %s\n", eq.Version)
	fmt.Fprintf(w, "textColor: %s\n", eq.TextColor)
	fmt.Fprintf(w, "baseUnit: %d\n", eq.BaseUnit)
	fmt.Fprintf(w, "lineMode: %s\n", eq.LineMode)
	fmt.Fprintf(w, "font: %s\n", eq.Font)
	fmt.Fprintf(w, "script: %s\n", eq.Script)
}

func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, f, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
