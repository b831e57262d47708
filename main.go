package main

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"

	"github.com/oaiiae/contacts-bot/cli/bot"
	"github.com/oaiiae/contacts-bot/cli/logger"
	"github.com/oaiiae/contacts-bot/datastores"
)

const title = "contacts-bot"

var (
	version  = "dev" // set with -ldflags "-X main.version=..."
	revision = ""
)

// Options for the CLI. Pass `--seed` or set the `SERVICE_SEED` env var.
type Options struct {
	LogLevel    string `doc:"log from debug, info, warn or error"       default:"warn"`
	LogFile     string `doc:"append logs to file instead of stderr"`
	LogFormat   string `doc:"format logs as text or json"               default:"text"`
	Prompt      string `doc:"prompt shown before each command"          default:"Enter a command: "`
	Seed        string `doc:"load contacts from a YAML file on start"   short:"s"`
	MetricsFile string `doc:"write Prometheus metrics to file on exit"`
}

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		log := logger.New(&logger.Options{
			Level:  options.LogLevel,
			File:   options.LogFile,
			Format: options.LogFormat,
		})
		store := datastores.NewDirectory()
		b := bot.New(&bot.Options{Prompt: options.Prompt}, store, time.Now, title, version, revision, log)

		var dumpOnce sync.Once
		dump := func() {
			if options.MetricsFile == "" {
				return
			}
			dumpOnce.Do(func() {
				err := b.DumpMetrics(options.MetricsFile)
				if err != nil {
					log.Warn("could not write metrics", "err", err)
				}
			})
		}

		ctx, cancel := context.WithCancel(context.Background())
		hooks.OnStart(func() {
			defer cancel()
			if options.Seed != "" {
				err := bot.LoadSeed(store, options.Seed)
				if err != nil {
					log.Error("failed to load seed", "err", err)
					os.Exit(1)
				}
				log.Info("seed loaded", "contacts", store.Len())
			}
			err := b.Run(ctx, os.Stdin, os.Stdout)
			if err != nil {
				log.Error("failed to read commands", "err", err)
			}
			dump()
		})
		hooks.OnStop(func() {
			cancel()
			dump()
		})
	})
	cli.Root().Use = title
	cli.Root().Version = version
	cli.Root().AddCommand(
		bot.VersionCommand(title, version, revision),
		bot.CheckSeedCommand(),
	)
	cli.Run()
}
