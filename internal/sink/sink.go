// Package sink holds destinations for rendered subtitle documents. Writers in
// internal/subtitle only see an io.Writer; the adapters here decide where the
// bytes end up.
package sink

import (
	"context"
	"errors"
	"io"

	"go.uber.org/multierr"
)

// Sink receives rendered text. Close flushes or uploads whatever is pending.
type Sink interface {
	io.Writer
	Close() error
}

var ErrClosed = errors.New("sink is closed")

type nopSink struct {
	io.Writer
}

func (nopSink) Close() error { return nil }

// Nop adapts w to a Sink whose Close does nothing, e.g. for stdout.
func Nop(w io.Writer) Sink {
	return nopSink{Writer: w}
}

type teeSink struct {
	io.Writer
	sinks []Sink
}

// Tee duplicates every write to all sinks. A failing sink stops the write.
// Close closes every sink and returns the combined errors.
func Tee(sinks ...Sink) Sink {
	writers := make([]io.Writer, len(sinks))
	for i, s := range sinks {
		writers[i] = s
	}
	return &teeSink{Writer: io.MultiWriter(writers...), sinks: sinks}
}

func (t *teeSink) Close() error {
	var err error
	for _, s := range t.sinks {
		err = multierr.Append(err, s.Close())
	}
	return err
}

func (t *teeSink) CloseContext(ctx context.Context) error {
	var err error
	for _, s := range t.sinks {
		err = multierr.Append(err, CloseContext(ctx, s))
	}
	return err
}

func (t *teeSink) Abort() error {
	var err error
	for _, s := range t.sinks {
		err = multierr.Append(err, Abort(s))
	}
	return err
}

// Abort discards whatever s has received so far. Sinks that cannot discard
// output are closed instead.
func Abort(s Sink) error {
	if a, ok := s.(interface{ Abort() error }); ok {
		return a.Abort()
	}
	return s.Close()
}

// CloseContext closes s, passing ctx to sinks whose Close does network I/O.
func CloseContext(ctx context.Context, s Sink) error {
	if c, ok := s.(interface {
		CloseContext(context.Context) error
	}); ok {
		return c.CloseContext(ctx)
	}
	return s.Close()
}
