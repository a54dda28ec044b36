package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/ajitpratap0/fakes/pkg/converter"
	"github.com/ajitpratap0/fakes/pkg/faker"
	"github.com/ajitpratap0/fakes/pkg/locale"
	"github.com/ajitpratap0/fakes/pkg/option"
	"github.com/ajitpratap0/fakes/pkg/scanner"
)

const tryHelp = `enter one option expression per line, for example Primitive.Int(age#1#99)

commands:
  :size N             records per sample (default 5)
  :seed N             restart the random stream from seed N
  :format csv|tsv|json
  :usable [Category]  list options
  :help               show this help
  :q | quit | exit    quit`

func newTryCmd(global *globalFlags) *cobra.Command {
	var historyFile string

	cmd := &cobra.Command{
		Use:   "try",
		Short: "Try option expressions interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfig()
			if err != nil {
				return err
			}
			ds, err := locale.Get(cfg.Locale)
			if err != nil {
				return err
			}
			if _, err := initLogger(cfg); err != nil {
				return err
			}

			sess := newSession(cmd.OutOrStdout(), ds, time.Now, cfg.Seed)

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "fakes> ",
				HistoryFile:     historyFile,
				AutoComplete:    optionCompleter{},
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
				Stdout:          cmd.OutOrStdout(),
				Stderr:          cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			defer func() { _ = rl.Close() }()

			fmt.Fprintln(cmd.OutOrStdout(), "type :help for help")
			for {
				line, err := rl.Readline()
				if err == readline.ErrInterrupt {
					continue
				}
				if err != nil {
					// EOF
					return nil
				}
				if sess.eval(line) {
					return nil
				}
			}
		},
	}
	cmd.Flags().StringVar(&historyFile, "history-file", "", "File keeping the typed lines across sessions")
	return cmd
}

// session evaluates the lines of one try loop.
type session struct {
	out    io.Writer
	ds     locale.Dataset
	now    func() time.Time
	faker  *faker.Faker
	size   int
	format converter.FileType
}

func newSession(out io.Writer, ds locale.Dataset, now func() time.Time, seed uint64) *session {
	return &session{
		out:    out,
		ds:     ds,
		now:    now,
		faker:  faker.NewSeeded(seed, ds, faker.WithClock(now)),
		size:   5,
		format: converter.CSV,
	}
}

// eval runs one line and reports whether the session should end.
func (s *session) eval(line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return false
	case line == ":q" || line == "quit" || line == "exit":
		return true
	case strings.HasPrefix(line, ":"):
		s.command(strings.Fields(line[1:]))
		return false
	}

	col, err := scanner.Scan(line)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return false
	}
	conv, err := converter.New(s.format, s.now)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return false
	}
	columns := []option.Column{col}
	records := s.faker.GenDataSet(s.size, columns)
	if err := converter.Render(s.out, conv, converter.FormFull, option.Fields(columns), records); err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return false
	}
	fmt.Fprintln(s.out)
	return false
}

func (s *session) command(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, tryHelp)
		return
	}
	switch args[0] {
	case "help":
		fmt.Fprintln(s.out, tryHelp)
	case "size":
		n, err := oneNumber(args)
		if err != nil || n < 1 {
			fmt.Fprintln(s.out, "usage: :size N with N >= 1")
			return
		}
		s.size = int(n)
	case "seed":
		n, err := oneNumber(args)
		if err != nil {
			fmt.Fprintln(s.out, "usage: :seed N")
			return
		}
		s.faker = faker.NewSeeded(n, s.ds, faker.WithClock(s.now))
	case "format":
		if len(args) != 2 {
			fmt.Fprintln(s.out, "usage: :format csv|tsv|json")
			return
		}
		ft, err := converter.ParseFileType(args[1])
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return
		}
		s.format = ft
	case "usable":
		cats, err := parseCategories(args[1:])
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return
		}
		for _, cat := range cats {
			for _, example := range scanner.Usable(cat) {
				fmt.Fprintf(s.out, "  %s\n", example)
			}
		}
	default:
		fmt.Fprintf(s.out, "unknown command :%s\n", args[0])
	}
}

func oneNumber(args []string) (uint64, error) {
	if len(args) != 2 {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseUint(args[1], 10, 64)
}

// optionCompleter completes Category.Option( from the option table.
type optionCompleter struct{}

func (optionCompleter) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])
	if i := strings.LastIndexAny(prefix, " #("); i >= 0 {
		prefix = prefix[i+1:]
	}

	var candidates [][]rune
	for _, name := range completions() {
		if strings.HasPrefix(name, prefix) {
			candidates = append(candidates, []rune(name[len(prefix):]))
		}
	}
	return candidates, len([]rune(prefix))
}

// completions lists "Category.Option(" for every option, in table order.
func completions() []string {
	var out []string
	for _, cat := range option.Categories() {
		for _, example := range scanner.Usable(cat) {
			if i := strings.Index(example, "("); i >= 0 {
				out = append(out, example[:i+1])
			}
		}
	}
	return out
}
