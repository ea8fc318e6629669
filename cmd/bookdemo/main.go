package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/bookdemo/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "config file (yaml, toml or json)")
	theme := flag.String("theme", "", "classic | neon | mono")
	noColor := flag.Bool("no-color", false, "disable colors")
	pace := flag.Float64("pace", -1, "scale every scripted delay (0 = no waiting)")
	logLevel := flag.String("log-level", "", "debug | info | warn | error")
	flag.Usage = cli.PrintHelp
	flag.Parse()

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		ConfigPath: *configPath,
		Theme:      *theme,
		NoColor:    *noColor || os.Getenv("NO_COLOR") != "",
		Pace:       *pace,
		LogLevel:   *logLevel,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
