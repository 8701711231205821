// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package records validates newline-delimited JSON records.
//
// Each line of the input is validated as a separate JSON document with its
// own lexer and parser. A line terminator (LF or CR LF) separates records and
// is not part of the record. Validation stops at the first invalid record.
package records

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/creachadair/spotless"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxRecord is the default maximum length in bytes of a single record.
const DefaultMaxRecord = 65536

// ErrRecordTooLong is reported for a record that exceeds the maximum length.
var ErrRecordTooLong = errors.New("record too long")

// Options are settings for Check. A nil *Options is ready for use and
// provides default values as described.
type Options struct {
	// The maximum length of a record, excluding its line terminator.
	// If zero, use DefaultMaxRecord.
	MaxRecord int

	// The maximum nesting depth of a record. If zero, use
	// spotless.DefaultMaxDepth.
	MaxDepth int

	// The maximum number of records validated concurrently.
	// A value less than 2 means records are checked one at a time.
	Concurrency int
}

func (o *Options) maxRecord() int {
	if o == nil || o.MaxRecord <= 0 {
		return DefaultMaxRecord
	}
	return o.MaxRecord
}

func (o *Options) maxDepth() int {
	if o == nil {
		return 0
	}
	return o.MaxDepth
}

func (o *Options) concurrency() int {
	if o == nil || o.Concurrency < 2 {
		return 1
	}
	return o.Concurrency
}

// RecordError is the concrete type of errors reported for an invalid record.
type RecordError struct {
	Line int   // 1-based line number of the record
	Err  error // the underlying failure
}

// Error satisfies the error interface.
func (e *RecordError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

// Unwrap supports error wrapping.
func (e *RecordError) Unwrap() error { return e.Err }

// Check reads newline-delimited records from r and validates each of them.
// It returns the number of records read and nil if all were valid.
//
// If any record is invalid, Check reports an error of concrete type
// *RecordError for the earliest invalid record in input order. When records
// are checked concurrently, no further records are dispatched once a failure
// is seen. Errors reading r are returned wrapped.
func Check(ctx context.Context, r io.Reader, opts *Options) (int, error) {
	maxRecord := opts.maxRecord()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(maxRecord+2, 4096)), maxRecord+2) // room for CR LF

	var first firstError
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())
	concurrent := opts.concurrency() > 1

	var nr int
	for gctx.Err() == nil && sc.Scan() {
		nr++
		line := nr
		if len(sc.Bytes()) > maxRecord {
			first.set(line, ErrRecordTooLong)
			break
		}
		if !concurrent {
			if err := spotless.ValidateDepth(sc.Bytes(), opts.maxDepth()); err != nil {
				first.set(line, err)
				break
			}
			continue
		}
		rec := bytes.Clone(sc.Bytes())
		g.Go(func() error {
			if err := spotless.ValidateDepth(rec, opts.maxDepth()); err != nil {
				first.set(line, err)
				return err
			}
			return nil
		})
	}
	readErr := sc.Err()
	if errors.Is(readErr, bufio.ErrTooLong) {
		first.set(nr+1, ErrRecordTooLong)
		readErr = nil
	}
	g.Wait()

	if first.err != nil {
		return nr, first.err
	} else if err := ctx.Err(); err != nil {
		return nr, err
	} else if readErr != nil {
		return nr, fmt.Errorf("reading input: %w", readErr)
	}
	return nr, nil
}

// firstError retains the failure with the smallest line number.
type firstError struct {
	mu  sync.Mutex
	err *RecordError
}

func (f *firstError) set(line int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil || line < f.err.Line {
		f.err = &RecordError{Line: line, Err: err}
	}
}
