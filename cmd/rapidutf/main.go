package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/mnightingale/rapidutf"
)

// Globals are the flags shared by every command.
type Globals struct {
	Verbose        bool   `short:"v" help:"Log diagnostics to stderr."`
	Implementation string `help:"Force a backend by name (see the kernels command)."`

	stdin  io.Reader
	stdout io.Writer
}

// CLI defines the rapidutf command-line interface.
type CLI struct {
	Globals

	Validate ValidateCmd `cmd:"" help:"Check that the input is well formed."`
	Convert  ConvertCmd  `cmd:"" help:"Transcode the input between encodings."`
	Base64   Base64Cmd   `cmd:"" help:"Encode or decode Base64."`
	Detect   DetectCmd   `cmd:"" help:"Report the byte order mark and the encodings the input validates under."`
	Kernels  KernelsCmd  `cmd:"" help:"List the available backends."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, parserOptions()...)
	cli.stdin, cli.stdout = os.Stdin, os.Stdout

	ctx.FatalIfErrorf(run(ctx, &cli))
}

func parserOptions() []kong.Option {
	return []kong.Option{
		kong.Name("rapidutf"),
		kong.Description("Validate, transcode and Base64 encode text."),
		kong.UsageOnError(),
		kong.Vars{"encodings": encodingEnum},
	}
}

func run(ctx *kong.Context, cli *CLI) error {
	if cli.Verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer func() { _ = l.Sync() }()
		rapidutf.SetLogger(l)
	}

	if cli.Implementation != "" {
		impl, err := rapidutf.GetImplementation(cli.Implementation)
		if err != nil {
			return err
		}
		if err := rapidutf.SetActiveImplementation(impl); err != nil {
			return err
		}
	}

	return ctx.Run(&cli.Globals)
}

// open returns the named file, or stdin for "-".
func (g *Globals) open(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(g.stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

func (g *Globals) readAll(name string) ([]byte, error) {
	r, err := g.open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return b, nil
}

var encodingNames = map[string]rapidutf.Encoding{
	"utf8":    rapidutf.UTF8,
	"utf16le": rapidutf.UTF16LE,
	"utf16be": rapidutf.UTF16BE,
	"utf32":   rapidutf.UTF32LE,
	"latin1":  rapidutf.Latin1,
}
