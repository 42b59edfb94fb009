package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/expenses/internal/cli"
	"github.com/idilsaglam/expenses/internal/config"
	"github.com/idilsaglam/expenses/internal/logging"
	"github.com/idilsaglam/expenses/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	forceColor := flag.Bool("color", false, "force colour in batch output")
	noColor := flag.Bool("no-color", false, "disable colour in batch output")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	_, envNoColor := os.LookupEnv("NO_COLOR")
	ui.SetColorForcing(*forceColor, *noColor || envNoColor)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(2)
	}

	logger, closer, err := logging.New(logging.Options{
		File:   cfg.LogFile,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		ui.Fail(os.Stderr, "log: "+err.Error())
		os.Exit(1)
	}

	// Hand the remaining args to the CLI runner.
	code := cli.Run(flag.Args(), cli.Options{
		Currency: cfg.Currency,
		Logger:   logger,
	})
	_ = closer.Close()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
