// SPDX-License-Identifier: MIT
// Command systax classifies atomic structure files and builds test structures.
//
//	systax classify graphene.json slab.yaml.xz --format yaml
//	systax dimensionality bulk.json
//	systax build graphene --repeat 4,4,1 -o graphene.json
//	systax defaults > systax.yaml
//
// Flags fall back to SYSTAX_* environment variables; a .env file in the
// working directory is loaded first.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/systax/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" env:"SYSTAX_LOG_LEVEL" help:"Log level (${enum})."`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" env:"SYSTAX_LOG_FORMAT" help:"Log format (${enum})."`

	Classify       ClassifyCmd       `cmd:"" help:"Classify structure files."`
	Dimensionality DimensionalityCmd `cmd:"" help:"Print the dimensionality of structure files."`
	Build          BuildCmd          `cmd:"" help:"Write a canonical test structure."`
	Defaults       DefaultsCmd       `cmd:"" help:"Print the default configuration."`
	Version        VersionCmd        `cmd:"" help:"Print version information."`
}

// runContext is bound into every command's Run method.
type runContext struct {
	log *slog.Logger
	out io.Writer
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "systax: .env: %v\n", err)
	}
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "systax: %v\n", err)
		os.Exit(1)
	}
}

// run parses args and executes the selected command.
func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("systax"),
		kong.Description("Structure classification by dimensionality and periodic regions"),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(cli.LogFormat)
	if err != nil {
		return err
	}
	rc := &runContext{
		log: logging.New(level, format, stderr),
		out: stdout,
	}

	return ctx.Run(rc)
}
