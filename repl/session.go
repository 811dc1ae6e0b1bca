package repl

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/sirupsen/logrus"

	"cqlgo/core"
	"cqlgo/core/format"
)

const (
	promptPrefix       = "cqlgo> "
	continuationPrefix = "   -> "
)

const helpText = `Session commands:
  help              show this help
  clear             clear the screen
  quit, exit        leave the session
  \format <name>    switch output format (table, json, csv)
  \refresh          reload keyspace/table names for completion
  \dk               list keyspaces
  \dt [keyspace]    list tables
  describe ...      cluster | keyspaces | keyspace <name> | table <name> | tables <keyspace>

Statements end with ';' and may span multiple lines.
`

// Session drives the interactive loop: statement accumulation, session
// commands, completion and history. It talks to the database only
// through the executor it is handed.
type Session struct {
	exec    core.Executor
	log     *logrus.Logger
	out     io.Writer
	format  format.Kind
	pending string
	schema  *SchemaCache
	history *History
	width   func() int
	done    bool
}

type Option func(*Session)

func WithLogger(log *logrus.Logger) Option {
	return func(s *Session) { s.log = log }
}

func WithOutput(out io.Writer) Option {
	return func(s *Session) { s.out = out }
}

func WithFormat(kind format.Kind) Option {
	return func(s *Session) { s.format = kind }
}

func WithHistory(h *History) Option {
	return func(s *Session) { s.history = h }
}

func WithWidthFunc(fn func() int) Option {
	return func(s *Session) { s.width = fn }
}

func NewSession(exec core.Executor, opts ...Option) *Session {
	s := &Session{
		exec:    exec,
		log:     logrus.New(),
		out:     os.Stdout,
		format:  format.KindTable,
		schema:  NewSchemaCache(),
		history: NewHistory(""),
		width:   format.TerminalWidth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HandleLine feeds one input line through the state machine.
func (s *Session) HandleLine(line string) {
	trimmed := strings.TrimSpace(line)

	if s.pending == "" {
		switch strings.ToLower(trimmed) {
		case "":
			return
		case "quit", "exit":
			s.done = true
			fmt.Fprintln(s.out, "Goodbye!")
			return
		case "help":
			fmt.Fprint(s.out, helpText)
			return
		case "clear":
			fmt.Fprint(s.out, "\x1b[2J\x1b[1;1H")
			return
		}
	}

	if rest, ok := strings.CutPrefix(trimmed, `\format `); ok {
		name := strings.TrimSpace(rest)
		kind, ok := format.ParseKind(name)
		if !ok {
			fmt.Fprintf(s.out, "Unknown format %q, using table\n", name)
		}
		s.format = kind
		fmt.Fprintf(s.out, "Output format set to: %s\n", kind)
		return
	}

	if trimmed == `\refresh` {
		s.schema.Refresh(context.Background(), s.exec)
		fmt.Fprintln(s.out, "Schema cache refreshed")
		return
	}

	if isDescribe(trimmed) {
		s.runStatement(DescribeStatement(trimmed), false)
		return
	}

	if s.pending == "" {
		s.pending = trimmed
	} else {
		s.pending = s.pending + " " + trimmed
	}
	if !strings.HasSuffix(s.pending, ";") {
		return
	}
	stmt := s.pending
	s.pending = ""
	s.runStatement(stmt, true)
}

func (s *Session) runStatement(stmt string, refreshSchema bool) {
	res, err := s.exec.Execute(context.Background(), stmt)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	text, err := format.Format(res, s.format, s.width())
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, text)

	fields := strings.Fields(stmt)
	if len(fields) >= 2 && strings.EqualFold(fields[0], "use") {
		name := strings.Trim(strings.TrimSuffix(fields[1], ";"), `"'`)
		s.schema.SetCurrentKeyspace(name)
	}

	if refreshSchema {
		upper := strings.ToUpper(stmt)
		if strings.Contains(upper, "CREATE ") || strings.Contains(upper, "DROP ") || strings.Contains(upper, "USE ") {
			s.schema.Refresh(context.Background(), s.exec)
		}
	}
}

// Interrupt discards any partially accumulated statement.
func (s *Session) Interrupt() {
	s.pending = ""
}

func (s *Session) Pending() string {
	return s.pending
}

func (s *Session) Format() format.Kind {
	return s.format
}

func (s *Session) Done() bool {
	return s.done
}

// CurrentKeyspace reports the keyspace selected by the last successful
// USE statement, or "" before any.
func (s *Session) CurrentKeyspace() string {
	return s.schema.CurrentKeyspace()
}

func (s *Session) completer(d prompt.Document) []prompt.Suggest {
	before := d.TextBeforeCursor()
	var suggests []prompt.Suggest
	for _, c := range Candidates(before, len(before), cqlKeywords, s.schema.Keyspaces(), s.schema.Tables()) {
		suggests = append(suggests, prompt.Suggest{Text: c})
	}
	return suggests
}

// Run reads lines until quit or end of input, then flushes history.
func (s *Session) Run() {
	fmt.Fprintln(s.out, "Connected. Type 'help' for help, 'quit' to exit.")

	s.schema.Refresh(context.Background(), s.exec)
	s.history.Load()

	executor := func(line string) {
		if strings.TrimSpace(line) != "" {
			s.history.Add(line)
		}
		s.HandleLine(line)
	}

	p := prompt.New(
		executor,
		s.completer,
		prompt.OptionTitle("cqlgo"),
		prompt.OptionPrefix(promptPrefix),
		prompt.OptionLivePrefix(func() (string, bool) {
			if s.pending != "" {
				return continuationPrefix, true
			}
			if ks := s.schema.CurrentKeyspace(); ks != "" {
				return "cqlgo:" + ks + "> ", true
			}
			return promptPrefix, false
		}),
		prompt.OptionMaxSuggestion(10),
		prompt.OptionHistory(s.history.Lines()),
		prompt.OptionAddKeyBind(prompt.KeyBind{
			Key: prompt.ControlC,
			Fn: func(buf *prompt.Buffer) {
				s.Interrupt()
			},
		}),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			return s.done
		}),
	)
	p.Run()

	s.history.Save()
}
