package script

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/npillmayer/splicer/corpus"
	"github.com/npillmayer/splicer/query"
)

// ErrCommand is returned for unknown or malformed commands.
var ErrCommand = errors.New("invalid command")

// Interp is an interpreter for commands working on a corpus.
type Interp struct {
	c   *corpus.Corpus
	col query.Collection
}

// New creates an interpreter for a corpus. The current collection initially holds
// the root nodes of all files.
func New(c *corpus.Corpus) *Interp {
	return &Interp{c: c, col: query.New(c, query.Everything())}
}

// Collection returns the current collection.
func (intp *Interp) Collection() query.Collection {
	return intp.col
}

// Corpus returns the corpus an interpreter works on.
func (intp *Interp) Corpus() *corpus.Corpus {
	return intp.c
}

type command func(intp *Interp, args string) (string, error)

var commands map[string]command

func init() {
	commands = map[string]command{
		"load":     (*Interp).load,
		"all":      (*Interp).all,
		"find":     (*Interp).find,
		"parent":   (*Interp).parent,
		"children": (*Interp).children,
		"eq":       (*Interp).eq,
		"filter":   (*Interp).filter,
		"len":      (*Interp).length,
		"type":     (*Interp).typ,
		"text":     (*Interp).text,
		"name":     (*Interp).name,
		"before":   (*Interp).before,
		"after":    (*Interp).after,
		"prepend":  (*Interp).prepend,
		"append":   (*Interp).append,
		"insert":   (*Interp).insert,
		"lines":    (*Interp).lines,
		"print":    (*Interp).print,
		"diff":     (*Interp).diff,
		"hash":     (*Interp).hash,
		"tonew":    (*Interp).tonew,
	}
}

// Exec executes a single command line and returns its output. If a command
// results in an error, the current collection is left unchanged.
func (intp *Interp) Exec(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", nil
	}
	name, args := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		name, args = line[:i], strings.TrimSpace(line[i:])
	}
	cmd, ok := commands[name]
	if !ok {
		return "", fmt.Errorf("%w: unknown command %q", ErrCommand, name)
	}
	tracer().Debugf("exec %s %q", name, args)
	return cmd(intp, args)
}

// Run executes the command lines read from r. Output and errors are handed to
// report together with the line number; failing commands do not stop the run.
// Run returns an error only if reading from r fails.
func (intp *Interp) Run(r io.Reader, report func(lineno int, out string, err error)) error {
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		out, err := intp.Exec(scanner.Text())
		if report != nil {
			report(lineno, out, err)
		}
	}
	return scanner.Err()
}

// navigate sets a new current collection, if it is error free.
func (intp *Interp) navigate(col query.Collection) (string, error) {
	if col.Err() != nil {
		return "", col.Err()
	}
	intp.col = col
	return fmt.Sprintf("%d node(s)", col.Len()), nil
}

// mutated checks the result of an edit.
func (intp *Interp) mutated(col query.Collection) (string, error) {
	if col.Err() != nil {
		err := col.Err()
		intp.col = query.New(intp.c, query.Nodes(col.Refs())) // clear the error
		return "", err
	}
	return "", nil
}

// value interprets a command argument as a Go string literal, if quoted.
func value(arg string) (string, error) {
	if strings.HasPrefix(arg, `"`) || strings.HasPrefix(arg, "`") {
		v, err := strconv.Unquote(arg)
		if err != nil {
			return "", fmt.Errorf("%w: malformed string %s", ErrCommand, arg)
		}
		return v, nil
	}
	return arg, nil
}

// assignment splits an argument of the form "= value".
func assignment(args string) (string, bool, error) {
	if args == "" {
		return "", false, nil
	}
	if !strings.HasPrefix(args, "=") {
		return "", false, fmt.Errorf("%w: expected '= value', have %q", ErrCommand, args)
	}
	v, err := value(strings.TrimSpace(args[1:]))
	return v, true, err
}

// --- Commands --------------------------------------------------------------

func (intp *Interp) load(args string) (string, error) {
	names := strings.Fields(args)
	if len(names) == 0 {
		return "", fmt.Errorf("%w: load needs file names", ErrCommand)
	}
	files := make(map[string]string, len(names))
	for _, name := range names {
		content, err := os.ReadFile(name)
		if err != nil {
			return "", err
		}
		files[name] = string(content)
	}
	diags := intp.c.Load(files)
	intp.col = query.New(intp.c, query.Everything())
	var b strings.Builder
	fmt.Fprintf(&b, "loaded %d file(s)", len(names)-len(diags))
	for _, d := range diags {
		fmt.Fprintf(&b, "\n%s", d)
	}
	return b.String(), nil
}

func (intp *Interp) all(args string) (string, error) {
	return intp.navigate(query.New(intp.c, query.Everything()))
}

func (intp *Interp) find(args string) (string, error) {
	return intp.navigate(intp.col.Find(args))
}

func (intp *Interp) parent(args string) (string, error) {
	if args == "" {
		return intp.navigate(intp.col.Parent())
	}
	if n, err := strconv.Atoi(args); err == nil {
		return intp.navigate(intp.col.ParentN(n))
	}
	return intp.navigate(intp.col.ParentMatching(args))
}

func (intp *Interp) children(args string) (string, error) {
	if args == "" {
		return intp.navigate(intp.col.Children())
	}
	return intp.navigate(intp.col.ChildrenMatching(args))
}

func (intp *Interp) eq(args string) (string, error) {
	i, err := strconv.Atoi(args)
	if err != nil {
		return "", fmt.Errorf("%w: eq needs an index", ErrCommand)
	}
	return intp.navigate(intp.col.Eq(i))
}

func (intp *Interp) length(args string) (string, error) {
	return strconv.Itoa(intp.col.Len()), nil
}

func (intp *Interp) typ(args string) (string, error) {
	return intp.col.Type(), nil
}

func (intp *Interp) text(args string) (string, error) {
	v, set, err := assignment(args)
	if err != nil {
		return "", err
	}
	if !set {
		return intp.col.Text(), nil
	}
	return intp.mutated(intp.col.SetText(v))
}

func (intp *Interp) name(args string) (string, error) {
	v, set, err := assignment(args)
	if err != nil {
		return "", err
	}
	if !set {
		return intp.col.Name(), nil
	}
	return intp.mutated(intp.col.SetName(v))
}

func (intp *Interp) before(args string) (string, error) {
	v, err := value(args)
	if err != nil {
		return "", err
	}
	return intp.mutated(intp.col.Before(v))
}

func (intp *Interp) after(args string) (string, error) {
	v, err := value(args)
	if err != nil {
		return "", err
	}
	return intp.mutated(intp.col.After(v))
}

func (intp *Interp) prepend(args string) (string, error) {
	v, err := value(args)
	if err != nil {
		return "", err
	}
	return intp.mutated(intp.col.Prepend(v))
}

func (intp *Interp) append(args string) (string, error) {
	v, err := value(args)
	if err != nil {
		return "", err
	}
	return intp.mutated(intp.col.Append(v))
}

func (intp *Interp) insert(args string) (string, error) {
	fields := strings.SplitN(args, " ", 2)
	if len(fields) != 2 {
		return "", fmt.Errorf("%w: usage is 'insert <index> <text>'", ErrCommand)
	}
	i, err := strconv.Atoi(fields[0])
	if err != nil {
		return "", fmt.Errorf("%w: insert needs an index", ErrCommand)
	}
	v, err := value(strings.TrimSpace(fields[1]))
	if err != nil {
		return "", err
	}
	return intp.mutated(intp.col.InsertAt(i, v))
}

func (intp *Interp) lines(args string) (string, error) {
	return strconv.Itoa(intp.col.Lines()), nil
}

func (intp *Interp) filter(args string) (string, error) {
	env := func(node query.Collection) map[string]interface{} {
		return map[string]interface{}{
			"kind":  node.Type(),
			"name":  node.Name(),
			"text":  node.Text(),
			"file":  node.FileName(),
			"start": node.Attr("start"),
			"end":   node.Attr("end"),
			"lines": node.Lines(),
		}
	}
	prototype := map[string]interface{}{
		"kind": "", "name": "", "text": "", "file": "", "start": 0, "end": 0, "lines": 0,
	}
	prg, err := expr.Compile(args, expr.Env(prototype), expr.AsBool())
	if err != nil {
		return "", fmt.Errorf("%w: filter: %v", ErrCommand, err)
	}
	var runErr error
	col := intp.col.Filter(func(node query.Collection, i int) bool {
		if runErr != nil {
			return false
		}
		out, err := expr.Run(prg, env(node))
		if err != nil {
			runErr = err
			return false
		}
		return out.(bool)
	})
	if runErr != nil {
		return "", fmt.Errorf("%w: filter: %v", ErrCommand, runErr)
	}
	return intp.navigate(col)
}

func (intp *Interp) files(args string) []string {
	if args != "" {
		return strings.Fields(args)
	}
	return intp.c.Files()
}

func (intp *Interp) print(args string) (string, error) {
	texts := intp.c.Print()
	var b strings.Builder
	for _, name := range intp.files(args) {
		text, ok := texts[name]
		if !ok {
			_, err := intp.c.Unit(name)
			return "", err
		}
		if args == "" {
			fmt.Fprintf(&b, "-- %s --\n", name)
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

func (intp *Interp) diff(args string) (string, error) {
	var b strings.Builder
	for _, name := range intp.files(args) {
		d, err := intp.c.Diff(name)
		if err != nil {
			return "", err
		}
		if d != "" {
			fmt.Fprintf(&b, "-- %s --\n%s", name, d)
		}
	}
	return b.String(), nil
}

func (intp *Interp) hash(args string) (string, error) {
	var b strings.Builder
	for _, name := range intp.files(args) {
		h, err := intp.c.Fingerprint(name)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%s %s\n", h, name)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

func (intp *Interp) tonew(args string) (string, error) {
	if args == "" {
		return "", fmt.Errorf("%w: tonew needs a file name", ErrCommand)
	}
	return intp.navigate(intp.col.ToNewFile(args))
}
