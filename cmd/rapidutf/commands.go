package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mnightingale/rapidutf"
)

const encodingEnum = "utf8,utf16le,utf16be,utf32,latin1"

type ValidateCmd struct {
	Encoding string `short:"e" enum:"${encodings}" default:"utf8" help:"Encoding to validate against (${enum})."`
	Input    string `arg:"" optional:"" default:"-" help:"Input file, - for stdin."`
}

func (c *ValidateCmd) Run(g *Globals) error {
	src, err := g.readAll(c.Input)
	if err != nil {
		return err
	}
	enc := encodingNames[c.Encoding]
	r, err := rapidutf.ValidateWithErrors(enc, src)
	if err != nil {
		return err
	}
	if err := r.Err(); err != nil {
		return fmt.Errorf("invalid %s: %w", enc, err)
	}
	_, err = fmt.Fprintf(g.stdout, "valid %s, %d units\n", enc, r.Count)
	return err
}

type ConvertCmd struct {
	From  string `short:"f" enum:"${encodings}" default:"utf8" help:"Source encoding (${enum})."`
	To    string `short:"t" enum:"${encodings}" required:"" help:"Target encoding (${enum})."`
	Input string `arg:"" optional:"" default:"-" help:"Input file, - for stdin."`
}

func (c *ConvertCmd) Run(g *Globals) error {
	src, err := g.readAll(c.Input)
	if err != nil {
		return err
	}
	from, to := encodingNames[c.From], encodingNames[c.To]
	if from == to {
		_, err := g.stdout.Write(src)
		return err
	}

	dst := make([]byte, rapidutf.MaxOutputLength(from, to, len(src)/from.UnitSize())*to.UnitSize())
	n, err := rapidutf.Convert(dst, src, from, to)
	if err != nil {
		return err
	}
	_, err = g.stdout.Write(dst[:n*to.UnitSize()])
	return err
}

type Base64Cmd struct {
	Encode Base64EncodeCmd `cmd:"" help:"Encode the input."`
	Decode Base64DecodeCmd `cmd:"" help:"Decode the input."`
}

// Base64Flags select the alphabet and padding.
type Base64Flags struct {
	URL     bool   `help:"Use the URL and filename safe alphabet."`
	Padding string `enum:"auto,on,off" default:"auto" help:"Padding policy; auto pads the standard alphabet only."`
}

func (f Base64Flags) options() rapidutf.Base64Options {
	opts := rapidutf.Base64Default
	if f.URL {
		opts = rapidutf.Base64URL
	}
	if (f.Padding == "on" && f.URL) || (f.Padding == "off" && !f.URL) {
		opts |= rapidutf.Base64ReversePadding
	}
	return opts
}

type Base64EncodeCmd struct {
	Base64Flags `embed:""`

	LineLength int    `short:"w" default:"0" help:"Wrap lines after this many characters, 0 disables wrapping."`
	Input      string `arg:"" optional:"" default:"-" help:"Input file, - for stdin."`
}

func (c *Base64EncodeCmd) Run(g *Globals) error {
	r, err := g.open(c.Input)
	if err != nil {
		return err
	}
	defer r.Close()

	enc := rapidutf.NewBase64Encoder(g.stdout, c.options(), c.LineLength)
	if _, err := io.Copy(enc, r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	_, err = io.WriteString(g.stdout, "\n")
	return err
}

var lastChunkNames = map[string]rapidutf.LastChunkHandling{
	"loose":  rapidutf.LastChunkLoose,
	"strict": rapidutf.LastChunkStrict,
	"stop":   rapidutf.LastChunkStopBeforePartial,
	"full":   rapidutf.LastChunkOnlyFullChunks,
}

type Base64DecodeCmd struct {
	Base64Flags `embed:""`

	Either  bool   `help:"Accept both alphabets."`
	Garbage bool   `help:"Skip characters outside the alphabet instead of failing."`
	Last    string `enum:"loose,strict,stop,full" default:"loose" help:"Handling of a final partial chunk (${enum})."`
	Input   string `arg:"" optional:"" default:"-" help:"Input file, - for stdin."`
}

func (c *Base64DecodeCmd) Run(g *Globals) error {
	src, err := g.readAll(c.Input)
	if err != nil {
		return err
	}
	opts := c.options()
	if c.Either {
		opts = rapidutf.Base64DefaultOrURL
	}
	if c.Garbage {
		opts |= rapidutf.Base64DefaultAcceptGarbage
	}

	out, err := rapidutf.DecodeBase64(src, opts, lastChunkNames[c.Last])
	if err != nil {
		return err
	}
	_, err = g.stdout.Write(out)
	return err
}

type DetectCmd struct {
	Input string `arg:"" optional:"" default:"-" help:"Input file, - for stdin."`
}

func (c *DetectCmd) Run(g *Globals) error {
	src, err := g.readAll(c.Input)
	if err != nil {
		return err
	}

	if bom, n := rapidutf.CheckBOM(src); n > 0 {
		if _, err := fmt.Fprintf(g.stdout, "bom: %s (%d bytes)\n", bom, n); err != nil {
			return err
		}
	}

	set := rapidutf.DetectEncodings(src)
	var names []string
	for _, enc := range []rapidutf.Encoding{rapidutf.UTF8, rapidutf.UTF16LE, rapidutf.UTF16BE, rapidutf.UTF32LE, rapidutf.UTF32BE} {
		if set&enc != 0 {
			names = append(names, enc.String())
		}
	}
	if len(names) == 0 {
		names = append(names, rapidutf.Unspecified.String())
	}
	_, err = fmt.Fprintf(g.stdout, "candidates: %s\nlikely: %s\n", strings.Join(names, ", "), rapidutf.AutodetectEncoding(src))
	return err
}

type KernelsCmd struct{}

func (c *KernelsCmd) Run(g *Globals) error {
	active := rapidutf.Kernel()
	for _, impl := range rapidutf.AvailableImplementations() {
		mark := " "
		if impl.Name() == active {
			mark = "*"
		}
		state := "supported"
		if !impl.Supported() {
			state = "unsupported"
		}
		if _, err := fmt.Fprintf(g.stdout, "%s %-10s %-12s %s\n", mark, impl.Name(), state, impl.Description()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(g.stdout, "version %s\n", rapidutf.Version())
	return err
}
