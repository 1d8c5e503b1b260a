package main

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	u "github.com/araddon/gou"
	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"

	"github.com/rfielding/automata/automaton"
)

type buildCmd struct {
	Out string `default:"." type:"existingdir" help:"Directory saved documents are written to"`
}

func (c *buildCmd) Run(env *Env) error {
	s := &session{b: automaton.NewBuilder(), out: env.Out, dir: c.Out}
	return s.run(env.In)
}

// session is one interactive editing session over a single builder.
type session struct {
	b   *automaton.Builder
	out io.Writer
	dir string
}

const replHelp = `Commands:
  name <text>          set the automaton name
  alphabet <n>         set the number of symbols (clears the table)
  states <n>           set the number of states (clears the table)
  symbol <i> [c]       set symbol slot i (0-based); no c clears it
  set <qX> <c> <qY>    transition from qX on c to qY
  start <qX>           choose the start state
  accept <qX>          add or remove an accept state
  show                 print the transition table
  save                 validate and write the JSON document
  help                 show this list
  quit                 leave`

func (s *session) run(in io.Reader) error {
	fmt.Fprintln(s.out, "=== Automaton builder ===")
	fmt.Fprintln(s.out, replHelp)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "\n> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		args, err := shellquote.Split(scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		quit, err := s.exec(args)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

func (s *session) exec(args []string) (bool, error) {
	cmd, args := args[0], args[1:]
	switch cmd {
	case "name":
		s.b.SetName(strings.Join(args, " "))

	case "alphabet", "states":
		if len(args) != 1 {
			return false, errors.Errorf("usage: %s <n>", cmd)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return false, errors.Errorf("%q is not a number", args[0])
		}
		if cmd == "alphabet" {
			err = s.b.SetAlphabetSize(n)
		} else {
			err = s.b.SetStateCount(n)
		}
		if err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "%d symbols, %d states; table cleared\n", s.b.AlphabetSize(), s.b.StateCount())

	case "symbol":
		if len(args) < 1 || len(args) > 2 {
			return false, errors.New("usage: symbol <i> [c]")
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return false, errors.Errorf("%q is not a number", args[0])
		}
		value := ""
		if len(args) == 2 {
			value = args[1]
		}
		if err := s.b.SetAlphabetSymbol(i, value); err != nil {
			return false, err
		}

	case "set":
		if len(args) != 3 {
			return false, errors.New("usage: set <qX> <c> <qY>")
		}
		from, err := s.state(args[0])
		if err != nil {
			return false, err
		}
		c, err := s.symbol(args[1])
		if err != nil {
			return false, err
		}
		return false, s.b.SetTransition(from, c, automaton.StateID(args[2]))

	case "start", "accept":
		if len(args) != 1 {
			return false, errors.Errorf("usage: %s <qX>", cmd)
		}
		id, err := s.state(args[0])
		if err != nil {
			return false, err
		}
		if cmd == "start" {
			s.b.SetStartState(id)
		} else {
			s.b.ToggleAcceptState(id)
		}

	case "show":
		s.show()

	case "save":
		return false, s.save()

	case "help":
		fmt.Fprintln(s.out, replHelp)

	case "quit", "exit":
		return true, nil

	default:
		return false, errors.Errorf("unknown command %q, try help", cmd)
	}
	return false, nil
}

// state checks that arg names one of the builder's states.
func (s *session) state(arg string) (automaton.StateID, error) {
	id := automaton.StateID(arg)
	if i, ok := automaton.StateIndex(id); !ok || i >= s.b.StateCount() {
		return "", errors.Errorf("%q is not a state (q0..q%d)", arg, s.b.StateCount()-1)
	}
	return id, nil
}

// symbol checks that arg is a single character already in the alphabet.
func (s *session) symbol(arg string) (automaton.Symbol, error) {
	if utf8.RuneCountInString(arg) != 1 {
		return automaton.NoSymbol, errors.Errorf("%q is not a single character", arg)
	}
	c := automaton.ParseSymbol(arg)
	for _, a := range s.b.Alphabet() {
		if a == c {
			return c, nil
		}
	}
	return automaton.NoSymbol, errors.Errorf("%q is not in the alphabet, name it with symbol first", arg)
}

func (s *session) show() {
	name := s.b.Name()
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(s.out, "Name: %s\n", name)

	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	alphabet := s.b.Alphabet()
	fmt.Fprint(tw, "States / Symbols")
	for i, c := range alphabet {
		if c == automaton.NoSymbol {
			fmt.Fprintf(tw, "\t[%d]", i)
		} else {
			fmt.Fprintf(tw, "\t%s", c)
		}
	}
	fmt.Fprintln(tw)

	accept := automaton.NewStateSet(s.b.AcceptStates()...)
	for i := 0; i < s.b.StateCount(); i++ {
		id := automaton.StateName(i)
		label := string(id)
		if accept.Has(id) {
			label = "*" + label
		}
		if id == s.b.StartState() {
			label = "->" + label
		}
		fmt.Fprint(tw, label)
		for _, c := range alphabet {
			to := "-"
			if c != automaton.NoSymbol {
				if t := s.b.Transition(id, c); t != "" {
					to = string(t)
				}
			}
			fmt.Fprintf(tw, "\t%s", to)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func (s *session) save() error {
	doc, err := s.b.Build()
	if err != nil {
		return err
	}
	path := filepath.Join(s.dir, automaton.FileName(s.b.Name()))
	if err := automaton.SaveFile(path, doc); err != nil {
		return err
	}
	u.Infof("saved %s", path)
	fmt.Fprintf(s.out, "Saved %q to %s\n", doc.Name, path)
	return nil
}
