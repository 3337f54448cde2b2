// Command wollokvalidate runs the static validator (§4.3/§4.4) over a
// JSON-encoded Environment and prints its Problems. No parser lives in
// this repository, so the Environment is always read pre-built, never
// derived from Language source text (§1/§6).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"

	"wollokvalidate/pkg/ast"
	"wollokvalidate/pkg/config"
	"wollokvalidate/pkg/validator"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("wollokvalidate", flag.ContinueOnError)
	envPath := fs.String("env", "-", "path to a JSON-encoded Environment, or - for stdin")
	rulesPath := fs.String("rules", "", "optional path to a YAML rule-overrides file")
	showTree := fs.Bool("tree", false, "render the decoded tree instead of running the validator")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	initDisplay()

	data, err := readInput(*envPath)
	if err != nil {
		pterm.Error.Printfln("reading %s: %v", *envPath, err)
		return 1
	}

	env, err := ast.DecodeEnvironment(data)
	if err != nil {
		pterm.Error.Printfln("decoding environment: %v", err)
		return 1
	}

	if *showTree {
		renderTree(env)
		return 0
	}

	var overrides validator.Overrides
	if *rulesPath != "" {
		overrides, err = config.Load(*rulesPath)
		if err != nil {
			pterm.Error.Printfln("loading rule overrides: %v", err)
			return 1
		}
	}

	problems := validator.Validate(env, env.Root(), overrides)
	for _, p := range problems {
		printProblem(p)
	}

	exitCode := 0
	for _, p := range problems {
		if p.Level == validator.Error {
			exitCode = 1
			break
		}
	}
	return exitCode
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// initDisplay customizes pterm's level prefixes, grounded on
// npillmayer-gorgo's trepl/repl.go initDisplay.
func initDisplay() {
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  " WARN ",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func printProblem(p validator.Problem) {
	message := fmt.Sprintf("%s (%s #%d)", p.Code, p.Node.Kind(), p.Node.Id())
	if p.Level == validator.Error {
		pterm.Error.Println(message)
	} else {
		pterm.Warning.Println(message)
	}
}

func renderTree(env *ast.Environment) {
	var ll pterm.LeveledList
	var walk func(n ast.Node, level int)
	walk = func(n ast.Node, level int) {
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: nodeLabel(n)})
		for _, child := range ast.Children(n) {
			walk(child, level+1)
		}
	}
	walk(env.Root(), 0)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

// nodeLabel renders a short, human-readable tag for the -tree dump,
// using the Name field where a node kind carries one.
func nodeLabel(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Package:
		return fmt.Sprintf("%s %q", v.Kind(), v.Name)
	case *ast.Class:
		return fmt.Sprintf("%s %q", v.Kind(), v.Name)
	case *ast.Singleton:
		return fmt.Sprintf("%s %q", v.Kind(), v.Name)
	case *ast.Mixin:
		return fmt.Sprintf("%s %q", v.Kind(), v.Name)
	case *ast.Method:
		return fmt.Sprintf("%s %q", v.Kind(), v.Name)
	case *ast.Field:
		return fmt.Sprintf("%s %q", v.Kind(), v.Name)
	case *ast.Variable:
		return fmt.Sprintf("%s %q", v.Kind(), v.Name)
	case *ast.Parameter:
		return fmt.Sprintf("%s %q", v.Kind(), v.Name)
	case *ast.Reference:
		return fmt.Sprintf("%s %q", v.Kind(), v.Name)
	case *ast.Program:
		return fmt.Sprintf("%s %q", v.Kind(), v.Name)
	case *ast.Test:
		return fmt.Sprintf("%s %q", v.Kind(), v.Name)
	case *ast.Describe:
		return fmt.Sprintf("%s %q", v.Kind(), v.Name)
	default:
		return fmt.Sprintf("%s #%d", n.Kind(), n.Id())
	}
}
