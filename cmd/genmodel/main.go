package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
)

// genmodel --name X
// Produces:
//   models/<pkg>/model.go
//   docs/models/<pkg>.md

var cli struct {
	Name string `required:"" help:"Automaton name, as stored in the document"`
	Root string `default:"." type:"existingdir" help:"Repository root"`
}

func main() {
	ctx := kong.Parse(&cli, kong.Description("Scaffold a new bundled automaton model."))
	created, err := scaffold(cli.Root, cli.Name)
	ctx.FatalIfErrorf(err)
	for _, path := range created {
		fmt.Println("Created:", path)
	}
}

var notIdent = regexp.MustCompile(`[^a-z0-9]`)

// packageName lowers name and drops everything that cannot appear in a Go
// package name.
func packageName(name string) (string, error) {
	pkg := notIdent.ReplaceAllString(strings.ToLower(name), "")
	if pkg == "" || (pkg[0] >= '0' && pkg[0] <= '9') {
		return "", errors.Errorf("cannot derive a package name from %q", name)
	}
	return pkg, nil
}

// scaffold writes the model and documentation stubs. Existing files are
// never overwritten.
func scaffold(root, name string) ([]string, error) {
	pkg, err := packageName(name)
	if err != nil {
		return nil, err
	}
	files := []struct {
		path     string
		contents string
	}{
		{filepath.Join(root, "models", pkg, "model.go"), fmt.Sprintf(modelTemplate, pkg, name, name)},
		{filepath.Join(root, "docs", "models", pkg+".md"), fmt.Sprintf(docTemplate, name)},
	}

	var created []string
	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
			return created, err
		}
		out, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			return created, errors.Wrapf(err, "creating %s", f.path)
		}
		if _, err := out.WriteString(f.contents); err != nil {
			out.Close()
			return created, err
		}
		if err := out.Close(); err != nil {
			return created, err
		}
		created = append(created, f.path)
	}
	return created, nil
}

const modelTemplate = `package %s

import (
	"github.com/rfielding/automata/automaton"
	"github.com/rfielding/automata/suite"
)

type Model struct{}

func (Model) Name() string { return %q }

func (Model) Description() string {
	return ""
}

// Build fills in the alphabet, transitions and accept states.
func (Model) Build() (*automaton.Document, error) {
	b := automaton.NewBuilder()
	b.SetName(%q)

	// Example:
	// b.SetAlphabetSize(2)
	// b.SetAlphabetSymbol(0, "a")
	// b.SetTransition("q0", 'a', "q0")
	// b.ToggleAcceptState("q0")

	return b.Build()
}

func (Model) Cases() []suite.Case {
	return []suite.Case{
		// suite.Expect("a", automaton.Accepted),
	}
}
`

const docTemplate = `# %s

Describe the language this automaton accepts.

## Diagram

Regenerate with ` + "`automata render --format mermaid`" + ` after ` + "`automata examples`" + `.

~~~mermaid
stateDiagram-v2
    [*] --> q0
~~~
`
