package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/splicer/corpus"
	"github.com/npillmayer/splicer/grammar"
	"github.com/npillmayer/splicer/grammar/tsjs"
	"github.com/npillmayer/splicer/script"
	"github.com/npillmayer/splicer/tree"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

var traceKeys = []string{
	"splicer.tree", "splicer.grammar", "splicer.corpus", "splicer.selector",
	"splicer.match", "splicer.edit", "splicer.query", "splicer.script",
}

// Config is the format of the configuration file.
type Config struct {
	Grammars []string `yaml:"grammars"`
	Trace    string   `yaml:"trace"`
}

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial script")
	conff := flag.String("config", "", "Configuration file (YAML)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to splq")
	//
	conf, err := loadConfig(*conff)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	if *tlevel != "" {
		conf.Trace = *tlevel
	}
	setTraceLevel(conf.Trace)
	tracer().Infof("Trace level is %s", conf.Trace)
	grammars, err := selectGrammars(conf.Grammars)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	c := corpus.New(corpus.WithGrammars(grammars...))
	loadFiles(c, flag.Args())
	//
	// set up REPL
	repl, err := readline.New("splq> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	sh := &shell{
		intp: script.New(c),
		repl: repl,
	}
	tracer().Infof("Quit with <ctrl>D")
	sh.loadInitFile(*initf)
	sh.REPL()
}

// initDisplay sets up pterm prefixes: command output is prefixed with the
// shell's name, load diagnostics and command errors are set off in red.
func initDisplay() {
	pterm.EnableDebugMessages()
	prefix := func(text string, bg pterm.Color) pterm.Prefix {
		return pterm.Prefix{Text: text, Style: pterm.NewStyle(bg, pterm.FgBlack)}
	}
	pterm.Info.Prefix = prefix(" splq ", pterm.BgCyan)
	pterm.Error.Prefix = prefix(" fail ", pterm.BgRed)
}

func loadConfig(filename string) (Config, error) {
	conf := Config{Grammars: []string{"tsx", "typescript"}, Trace: "Info"}
	if filename == "" {
		return conf, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return conf, fmt.Errorf("cannot read configuration: %w", err)
	}
	if err = yaml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("malformed configuration %s: %w", filename, err)
	}
	return conf, nil
}

func selectGrammars(names []string) ([]grammar.Grammar, error) {
	grammars := make([]grammar.Grammar, 0, len(names))
	for _, name := range names {
		g, err := tsjs.ByName(name)
		if err != nil {
			return nil, err
		}
		grammars = append(grammars, g)
	}
	return grammars, nil
}

func setTraceLevel(l string) {
	level := tracing.TraceLevelFromString(l)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func loadFiles(c *corpus.Corpus, names []string) {
	if len(names) == 0 {
		return
	}
	files := make(map[string]string, len(names))
	for _, name := range names {
		content, err := os.ReadFile(name)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		files[name] = string(content)
	}
	for _, d := range c.Load(files) {
		pterm.Error.Println(d.String())
	}
	pterm.Info.Println(fmt.Sprintf("%d file(s) loaded", len(c.Files())))
}

// shell is our interpreter object
type shell struct {
	intp *script.Interp
	repl *readline.Instance
}

func (sh *shell) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	defer f.Close()
	err = sh.intp.Run(f, func(lineno int, out string, err error) {
		if err != nil {
			pterm.Error.Println(fmt.Sprintf("%s:%d: %v", filename, lineno, err))
		} else if out != "" {
			tracer().Debugf("%s:%d: %s", filename, lineno, out)
		}
	})
	if err != nil {
		pterm.Error.Println(err.Error())
	}
}

// REPL starts interactive mode.
func (sh *shell) REPL() {
	for {
		line, err := sh.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := sh.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command line.
func (sh *shell) Eval(line string) (bool, error) {
	switch strings.TrimSpace(line) {
	case "quit", "exit":
		return true, nil
	case "help":
		pterm.Info.Println("commands: load all find parent children eq filter len type text name " +
			"before after prepend append insert lines print diff hash tonew tree quit")
		return false, nil
	case "tree":
		return false, sh.tree()
	}
	out, err := sh.intp.Exec(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	if out != "" {
		pterm.Info.Println(out)
	}
	return false, nil
}

// tree displays the syntax tree of the first node of the current collection.
func (sh *shell) tree() error {
	col := sh.intp.Collection()
	if col.Len() == 0 {
		pterm.Info.Println("collection is empty")
		return nil
	}
	ref := col.Refs()[0]
	u, err := sh.intp.Corpus().Resolve(ref)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	var ll pterm.LeveledList
	t := u.Tree()
	t.Walk(ref.ID, func(id tree.NodeID, depth int) bool {
		label := fmt.Sprintf("%s %v", t.Kind(id), t.Span(id))
		if len(t.Children(id)) == 0 {
			label += fmt.Sprintf(" %q", abbrev(u.TextOf(id), 30))
		}
		ll = append(ll, pterm.LeveledListItem{Level: depth, Text: label})
		return true
	})
	pterm.Println(ref.String())
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
	return nil
}

func abbrev(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
