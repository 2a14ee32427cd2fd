// Package refnum builds human-readable transaction reference numbers of the
// form PREFIX-YYYYMMDDNNNN, where NNNN is a per-prefix, per-day counter.
package refnum

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

//go:generate mockgen -source=refnum.go -destination=sequencer_mock.go -package=refnum

var (
	ErrUnknownType = errors.New("unknown transaction type")
	ErrMalformed   = errors.New("malformed reference number")
)

var prefixes = map[string]string{
	"ISSUE":      "ISU",
	"RECEIVE":    "REC",
	"ADJUSTMENT": "ADJ",
	"BACKORDER":  "BAO",
}

const (
	dayLayout      = "20060102"
	counterDigits  = 4
	fallbackLayout = "150405"
	fallbackDigits = len(fallbackLayout) + 3
)

// Sequencer hands out per-prefix, per-day counters. Implementations must make
// NextSequence atomic so that concurrent callers never observe the same value.
type Sequencer interface {
	NextSequence(ctx context.Context, prefix string, day time.Time) (int64, error)
	PeekSequence(ctx context.Context, prefix string, day time.Time) (int64, error)
	ClaimSequence(ctx context.Context, prefix string, day time.Time, n int64) error
}

// Reference is a parsed reference number.
type Reference struct {
	Prefix  string
	Day     time.Time
	Counter int64
	// Fallback marks a time-of-day suffix rather than a sequence counter.
	Fallback bool
}

type Generator struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewGenerator(logger *slog.Logger) *Generator {
	return &Generator{logger: logger, now: time.Now}
}

// WithClock replaces the wall clock used for fallback numbers.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Prefix returns the three-letter code for a transaction type.
func Prefix(txType string) (string, error) {
	p, ok := prefixes[txType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, txType)
	}

	return p, nil
}

// Day returns the calendar date of t as midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Format renders a reference number. Counters wider than four digits are not truncated.
func Format(prefix string, day time.Time, counter int64) string {
	return fmt.Sprintf("%s-%s%0*d", prefix, day.Format(dayLayout), counterDigits, counter)
}

// Next consumes the next counter for txType on date. When the sequencer fails
// the number falls back to a time-of-day suffix, which stays well-formed but is
// not sequential.
func (g *Generator) Next(ctx context.Context, seq Sequencer, txType string, date time.Time) (string, error) {
	prefix, err := Prefix(txType)
	if err != nil {
		return "", err
	}

	day := Day(date)

	n, err := seq.NextSequence(ctx, prefix, day)
	if err != nil {
		g.logger.Warn("reference sequence unavailable, using timestamp fallback",
			"prefix", prefix, "day", day.Format(time.DateOnly), "error", err)

		return g.fallback(prefix, day), nil
	}

	return Format(prefix, day, n), nil
}

// Peek returns the number Next would hand out without consuming it.
func (g *Generator) Peek(ctx context.Context, seq Sequencer, txType string, date time.Time) (string, error) {
	prefix, err := Prefix(txType)
	if err != nil {
		return "", err
	}

	day := Day(date)

	n, err := seq.PeekSequence(ctx, prefix, day)
	if err != nil {
		g.logger.Warn("reference sequence unavailable, using timestamp fallback",
			"prefix", prefix, "day", day.Format(time.DateOnly), "error", err)

		return g.fallback(prefix, day), nil
	}

	return Format(prefix, day, n+1), nil
}

// Claim records a caller-supplied reference number so that later calls to Next
// never hand out the same counter again.
func (g *Generator) Claim(ctx context.Context, seq Sequencer, txType, ref string) error {
	prefix, err := Prefix(txType)
	if err != nil {
		return err
	}

	parsed, err := Parse(ref)
	if err != nil {
		return err
	}

	if parsed.Prefix != prefix {
		return fmt.Errorf("%w: prefix %s does not match %s", ErrMalformed, parsed.Prefix, txType)
	}

	if parsed.Fallback {
		return nil
	}

	if err := seq.ClaimSequence(ctx, prefix, parsed.Day, parsed.Counter); err != nil {
		return fmt.Errorf("claiming reference %s: %w", ref, err)
	}

	return nil
}

func (g *Generator) fallback(prefix string, day time.Time) string {
	now := g.now()
	suffix := now.Format(fallbackLayout) + fmt.Sprintf("%03d", now.Nanosecond()/int(time.Millisecond))

	return fmt.Sprintf("%s-%s%s", prefix, day.Format(dayLayout), suffix)
}

// Parse splits a reference number into its prefix, day and counter.
func Parse(ref string) (Reference, error) {
	prefix, rest, ok := strings.Cut(ref, "-")
	if !ok || len(prefix) != 3 || len(rest) < len(dayLayout)+counterDigits {
		return Reference{}, fmt.Errorf("%w: %q", ErrMalformed, ref)
	}

	known := false

	for _, p := range prefixes {
		if p == prefix {
			known = true
			break
		}
	}

	if !known {
		return Reference{}, fmt.Errorf("%w: unknown prefix %q", ErrMalformed, prefix)
	}

	day, err := time.Parse(dayLayout, rest[:len(dayLayout)])
	if err != nil {
		return Reference{}, fmt.Errorf("%w: %q", ErrMalformed, ref)
	}

	digits := rest[len(dayLayout):]
	fallback := len(digits) >= fallbackDigits

	counter, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || (counter < 1 && !fallback) {
		return Reference{}, fmt.Errorf("%w: %q", ErrMalformed, ref)
	}

	return Reference{Prefix: prefix, Day: day, Counter: counter, Fallback: fallback}, nil
}
