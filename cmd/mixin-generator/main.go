// Package main provides the CLI entrypoint for mixin-generator.
//
// mixin-generator reads a declaration file describing host types and their
// markers, and writes one mixin interface per target:
//   - generate runs one round
//   - watch runs a round on every change of the declaration file
//   - dump prints the resolved properties of a type, or one member declaration
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const usage = `usage: mixin-generator <command> [flags]

commands:
  generate -symbols FILE [-config FILE] [-out DIR]
  watch    -symbols FILE [-config FILE] [-out DIR]
  dump     -symbols FILE -type QUALIFIED_NAME[#KIND[INDEX]] [-config FILE]
`

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	cmd, rest := args[0], args[1:]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.symbols, "symbols", "", "declaration file (YAML)")
	fs.StringVar(&opts.config, "config", "", "configuration file (YAML or TOML)")
	fs.StringVar(&opts.out, "out", "", "output directory (overrides config)")

	if cmd == "dump" {
		fs.StringVar(&opts.typ, "type", "", "qualified name of the type to dump, or a member ref such as com.example.Point#field[0]")
	}

	switch cmd {
	case "generate", "watch", "dump":
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", cmd, usage)
		return exitUsage
	}

	if err := fs.Parse(rest); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	if opts.symbols == "" || (cmd == "dump" && opts.typ == "") {
		fmt.Fprintf(stderr, "missing required flags\n\n%s", usage)
		return exitUsage
	}

	env, err := newEnv(ctx, opts, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	switch cmd {
	case "generate":
		return env.generate(stdout)
	case "watch":
		return env.watch(stdout)
	default:
		return env.dump(stdout)
	}
}
