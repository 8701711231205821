// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program spotless checks whether its input is syntactically valid JSON.
//
// Usage:
//
//	spotless [flags] [path ...]
//
// With no paths, standard input is read. By default each input is validated as
// a single JSON document. With -lines, each line of each input is validated
// as a separate document.
//
// For each invalid input, a diagnostic of the form
//
//	name:line:column: reason
//
// is written to stderr, or a structured report is written to stdout if -json
// is set. The exit status is 0 if all inputs are valid, 1 if any input is
// invalid, and 2 if an input could not be read.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/creachadair/spotless"
	"github.com/creachadair/spotless/records"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/tailscale/hujson"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// config carries the settings selected by command-line flags.
type config struct {
	Lines       bool
	Concurrency int
	MaxBytes    int64
	MaxRecord   int
	MaxDepth    int
	JWCC        bool
	BOM         bool
	JSON        bool
	Quiet       bool
}

func (c *config) bind(fs *flag.FlagSet) {
	fs.BoolVar(&c.Lines, "lines", false, "Validate each input line as a separate document")
	fs.IntVar(&c.Concurrency, "j", 1, "Number of records to validate concurrently (with -lines)")
	fs.Int64Var(&c.MaxBytes, "max-bytes", 0, "Maximum size of a whole-document input (0 means no limit)")
	fs.IntVar(&c.MaxRecord, "max-record", records.DefaultMaxRecord, "Maximum length of one record (with -lines)")
	fs.IntVar(&c.MaxDepth, "max-depth", spotless.DefaultMaxDepth, "Maximum nesting depth of objects and arrays")
	fs.BoolVar(&c.JWCC, "jwcc", false, "Accept comments and trailing commas (JWCC) in whole-document inputs")
	fs.BoolVar(&c.BOM, "bom", false, "Accept a leading byte order mark (UTF-8 or UTF-16)")
	fs.BoolVar(&c.JSON, "json", false, "Write a JSON report to stdout instead of diagnostics")
	fs.BoolVar(&c.Quiet, "q", false, "Do not print diagnostics; report only through the exit status")
}

func (c *config) check() error {
	if c.JWCC && c.Lines {
		return errors.New("-jwcc cannot be combined with -lines")
	} else if c.MaxDepth < 0 {
		return errors.New("-max-depth must not be negative")
	} else if c.MaxBytes < 0 {
		return errors.New("-max-bytes must not be negative")
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("spotless: ")

	var cfg config
	fs := flag.NewFlagSet("spotless", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [path ...]\n\nFlags:\n", fs.Name())
		fs.PrintDefaults()
	}
	cfg.bind(fs)
	fs.Parse(os.Args[1:])
	if err := cfg.check(); err != nil {
		log.Printf("Invalid flags: %v", err)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	os.Exit(run(ctx, &cfg, fs.Args(), os.Stdin, os.Stdout, os.Stderr))
}

// A report summarizes the result of validating one input.
type report struct {
	Input   string `json:"input"`
	Valid   bool   `json:"valid"`
	Records int    `json:"records,omitzero"`
	Line    int    `json:"line,omitzero"`
	Column  int    `json:"column,omitzero"` // 1-based
	Error   string `json:"error,omitzero"`
}

// Exit status values.
const (
	exitValid   = 0
	exitInvalid = 1
	exitFailed  = 2
)

// run validates each of the named inputs, or stdin if there are none, and
// returns the exit status.
func run(ctx context.Context, cfg *config, paths []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	elog := log.New(stderr, log.Prefix(), 0)

	status := exitValid
	var reports []*report
	for _, path := range paths {
		rep, err := checkPath(ctx, cfg, path, stdin)
		if err != nil {
			elog.Printf("%s: %v", displayName(path), err)
			status = exitFailed
			if ctx.Err() != nil {
				break
			}
			continue
		}
		reports = append(reports, rep)
		if !rep.Valid {
			status = max(status, exitInvalid)
			if !cfg.JSON && !cfg.Quiet {
				fmt.Fprintf(stderr, "%s:%d:%d: %s\n", rep.Input, rep.Line, rep.Column, rep.Error)
			}
		}
	}

	if cfg.JSON && !cfg.Quiet {
		if reports == nil {
			reports = []*report{}
		}
		err := json.MarshalWrite(stdout, reports, jsontext.Multiline(true), jsontext.WithIndent("  "))
		if err != nil {
			elog.Printf("Writing report: %v", err)
			return exitFailed
		}
		fmt.Fprintln(stdout)
	}
	return status
}

func checkPath(ctx context.Context, cfg *config, path string, stdin io.Reader) (*report, error) {
	if path == "-" {
		return checkInput(ctx, cfg, displayName(path), stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return checkInput(ctx, cfg, path, f)
}

func displayName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}

// errInputTooLong is reported for a whole-document input that exceeds the
// -max-bytes limit.
var errInputTooLong = errors.New("input is too long")

// checkInput validates the contents of r. It returns an error only if the
// input could not be read; validation failures are recorded in the report.
func checkInput(ctx context.Context, cfg *config, name string, r io.Reader) (*report, error) {
	if cfg.BOM {
		r = transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder()))
	}
	rep := &report{Input: name, Valid: true}

	if cfg.Lines {
		n, err := records.Check(ctx, r, &records.Options{
			MaxRecord:   cfg.MaxRecord,
			MaxDepth:    cfg.MaxDepth,
			Concurrency: cfg.Concurrency,
		})
		rep.Records = n
		var rerr *records.RecordError
		if errors.As(err, &rerr) {
			rep.Valid = false
			rep.Line = rerr.Line
			rep.Error = rerr.Err.Error()
			var serr *spotless.Error
			if errors.As(rerr.Err, &serr) {
				rep.Column = serr.Offset + 1
				rep.Error = serr.Kind.String()
			}
		} else if err != nil {
			return nil, err
		}
		return rep, nil
	}

	data, err := readInput(r, cfg.MaxBytes)
	if err != nil {
		return nil, err
	}
	if cfg.JWCC {
		std, err := hujson.Standardize(data)
		if err != nil {
			rep.Valid = false
			rep.Line = 1
			rep.Error = err.Error()
			return rep, nil
		}
		data = std
	}
	if err := spotless.ValidateDepth(data, cfg.MaxDepth); err != nil {
		var serr *spotless.Error
		if !errors.As(err, &serr) {
			return nil, err
		}
		lc := spotless.Locate(data, serr.Offset)
		rep.Valid = false
		rep.Line = lc.Line
		rep.Column = lc.Column + 1
		rep.Error = serr.Kind.String()
	}
	return rep, nil
}

// readInput reads all of r. If limit > 0 and r has more than limit bytes,
// readInput reports errInputTooLong.
func readInput(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	} else if int64(len(data)) > limit {
		return nil, errInputTooLong
	}
	return data, nil
}
