package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/VictoriaMetrics/metrics"

	ds "github.com/oaiiae/contacts-bot/datastores"
	"github.com/oaiiae/contacts-bot/handlers"
	"github.com/oaiiae/contacts-bot/router"
)

type Options struct {
	Prompt string `doc:"prompt shown before each command" default:"Enter a command: "`
}

// Bot reads commands line by line and prints one reply per command.
type Bot struct {
	prompt    string
	router    *router.Router
	metrics   *metrics.Set
	buildinfo string
}

func New(
	options *Options,
	store *ds.Directory,
	now func() time.Time,
	title string,
	version string,
	revision string,
	logger *slog.Logger,
) *Bot {
	metriks := metrics.NewSet()
	return &Bot{
		prompt:  options.Prompt,
		metrics: metriks,
		buildinfo: joinQuote("build_info{goversion=", runtime.Version(),
			",title=", title,
			",version=", version,
			",revision=", revision,
			"} 1\n"),
		router: router.New(
			router.OptUseMiddleware(
				ctxlog{}.loggerMiddleware(logger),
				meterCommands(metriks),
				ctxlog{}.recoverMiddleware(logger),
			),
			router.OptRegister(
				&handlers.Greeting{},
				&handlers.Contacts{
					Store:        store,
					Now:          now,
					ErrorHandler: ctxlog{}.errorHandler(logger),
				},
			),
		),
	}
}

// Run greets, then answers commands from in until "close", "exit",
// end of input or ctx is done.
func (b *Bot) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Welcome to the assistant bot!")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, b.prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Text()
		if isExit(line) {
			fmt.Fprintln(out, "Good bye!")
			return nil
		}
		fmt.Fprintln(out, b.router.Dispatch(ctx, line))
	}
}

func isExit(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch strings.ToLower(fields[0]) {
	case "close", "exit":
		return true
	default:
		return false
	}
}

// WriteMetrics writes build info and command metrics in Prometheus text format.
func (b *Bot) WriteMetrics(w io.Writer) {
	fmt.Fprint(w, b.buildinfo)
	b.metrics.WritePrometheus(w)
}

// DumpMetrics writes [Bot.WriteMetrics] and process metrics to path.
func (b *Bot) DumpMetrics(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dump metrics: %w", err)
	}
	b.WriteMetrics(f)
	metrics.WriteProcessMetrics(f)
	return f.Close()
}

// LoadSeed adds the contacts of the YAML file at path to store.
func LoadSeed(store *ds.Directory, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	defer f.Close()
	return store.LoadSeed(f)
}

// joinQuote is [strings.Join] with " as separator.
func joinQuote(elems ...string) string { return strings.Join(elems, `"`) }
