package refnum_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/stockroom/internal/refnum"
)

var wellFormed = regexp.MustCompile(`^(ISU|REC|ADJ|BAO)-\d{8}\d{4,}$`)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type memorySequencer struct {
	counters map[string]int64
}

func newMemorySequencer() *memorySequencer {
	return &memorySequencer{counters: make(map[string]int64)}
}

func key(prefix string, day time.Time) string {
	return prefix + day.Format(time.DateOnly)
}

func (m *memorySequencer) NextSequence(_ context.Context, prefix string, day time.Time) (int64, error) {
	m.counters[key(prefix, day)]++
	return m.counters[key(prefix, day)], nil
}

func (m *memorySequencer) PeekSequence(_ context.Context, prefix string, day time.Time) (int64, error) {
	return m.counters[key(prefix, day)], nil
}

func (m *memorySequencer) ClaimSequence(_ context.Context, prefix string, day time.Time, n int64) error {
	if n > m.counters[key(prefix, day)] {
		m.counters[key(prefix, day)] = n
	}

	return nil
}

func TestFormat(t *testing.T) {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		prefix  string
		counter int64
		want    string
	}{
		{name: "FirstOfDay", prefix: "REC", counter: 1, want: "REC-202503140001"},
		{name: "Padded", prefix: "ISU", counter: 42, want: "ISU-202503140042"},
		{name: "Overflow", prefix: "ADJ", counter: 12345, want: "ADJ-2025031412345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, refnum.Format(tt.prefix, day, tt.counter))
		})
	}
}

func TestPrefix(t *testing.T) {
	for txType, want := range map[string]string{
		"ISSUE":      "ISU",
		"RECEIVE":    "REC",
		"ADJUSTMENT": "ADJ",
		"BACKORDER":  "BAO",
	} {
		got, err := refnum.Prefix(txType)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := refnum.Prefix("TRANSFER")
	assert.ErrorIs(t, err, refnum.ErrUnknownType)
}

func TestGenerator_Next_StrictlyIncreasing(t *testing.T) {
	gen := refnum.NewGenerator(discardLogger())
	seq := newMemorySequencer()
	date := time.Date(2025, 3, 14, 15, 30, 0, 0, time.UTC)

	var previous int64

	for range 25 {
		ref, err := gen.Next(context.Background(), seq, "ISSUE", date)
		require.NoError(t, err)
		assert.Regexp(t, wellFormed, ref)

		parsed, err := refnum.Parse(ref)
		require.NoError(t, err)
		assert.Greater(t, parsed.Counter, previous)

		previous = parsed.Counter
	}

	assert.Equal(t, int64(25), previous)
}

func TestGenerator_Next_CountersArePerTypeAndDay(t *testing.T) {
	gen := refnum.NewGenerator(discardLogger())
	seq := newMemorySequencer()
	ctx := context.Background()
	monday := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	first, err := gen.Next(ctx, seq, "RECEIVE", monday)
	require.NoError(t, err)
	second, err := gen.Next(ctx, seq, "RECEIVE", monday)
	require.NoError(t, err)
	otherType, err := gen.Next(ctx, seq, "ISSUE", monday)
	require.NoError(t, err)
	otherDay, err := gen.Next(ctx, seq, "RECEIVE", tuesday)
	require.NoError(t, err)

	assert.Equal(t, "REC-202503100001", first)
	assert.Equal(t, "REC-202503100002", second)
	assert.Equal(t, "ISU-202503100001", otherType)
	assert.Equal(t, "REC-202503110001", otherDay)
}

func TestGenerator_Next_FallbackOnSequencerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	seq := refnum.NewMockSequencer(ctrl)
	seq.EXPECT().
		NextSequence(gomock.Any(), "ADJ", gomock.Any()).
		Return(int64(0), errors.New("connection refused"))

	clock := time.Date(2025, 3, 14, 16, 5, 9, 123*int(time.Millisecond), time.UTC)
	gen := refnum.NewGenerator(discardLogger()).WithClock(func() time.Time { return clock })

	ref, err := gen.Next(context.Background(), seq, "ADJUSTMENT", clock)
	require.NoError(t, err)
	assert.Equal(t, "ADJ-20250314160509123", ref)
	assert.Regexp(t, wellFormed, ref)
}

func TestGenerator_Next_UnknownType(t *testing.T) {
	gen := refnum.NewGenerator(discardLogger())

	_, err := gen.Next(context.Background(), newMemorySequencer(), "TRANSFER", time.Now())
	assert.ErrorIs(t, err, refnum.ErrUnknownType)
}

func TestGenerator_PeekDoesNotConsume(t *testing.T) {
	gen := refnum.NewGenerator(discardLogger())
	seq := newMemorySequencer()
	ctx := context.Background()
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	peeked, err := gen.Peek(ctx, seq, "BACKORDER", date)
	require.NoError(t, err)
	again, err := gen.Peek(ctx, seq, "BACKORDER", date)
	require.NoError(t, err)
	next, err := gen.Next(ctx, seq, "BACKORDER", date)
	require.NoError(t, err)

	assert.Equal(t, "BAO-202503140001", peeked)
	assert.Equal(t, peeked, again)
	assert.Equal(t, peeked, next)
}

func TestGenerator_Claim(t *testing.T) {
	gen := refnum.NewGenerator(discardLogger())
	seq := newMemorySequencer()
	ctx := context.Background()
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	require.NoError(t, gen.Claim(ctx, seq, "ISSUE", "ISU-202503140007"))

	next, err := gen.Next(ctx, seq, "ISSUE", date)
	require.NoError(t, err)
	assert.Equal(t, "ISU-202503140008", next)

	err = gen.Claim(ctx, seq, "RECEIVE", "ISU-202503140009")
	assert.ErrorIs(t, err, refnum.ErrMalformed)
}

func TestGenerator_Claim_FallbackLeavesCounter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	seq := refnum.NewMockSequencer(ctrl)
	seq.EXPECT().ClaimSequence(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	seq.EXPECT().NextSequence(gomock.Any(), "REC", gomock.Any()).Return(int64(3), nil)

	gen := refnum.NewGenerator(discardLogger())
	ctx := context.Background()

	require.NoError(t, gen.Claim(ctx, seq, "RECEIVE", "REC-20250314160509123"))

	next, err := gen.Next(ctx, seq, "RECEIVE", time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "REC-202503140003", next)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		want    refnum.Reference
		wantErr bool
	}{
		{
			name: "Valid",
			ref:  "REC-202503140012",
			want: refnum.Reference{Prefix: "REC", Day: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), Counter: 12},
		},
		{
			name: "TimestampFallback",
			ref:  "ADJ-20250314000000042",
			want: refnum.Reference{
				Prefix: "ADJ", Day: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), Counter: 42, Fallback: true,
			},
		},
		{name: "MissingDash", ref: "REC202503140012", wantErr: true},
		{name: "UnknownPrefix", ref: "XYZ-202503140012", wantErr: true},
		{name: "ShortCounter", ref: "REC-20250314001", wantErr: true},
		{name: "BadDate", ref: "REC-202513400001", wantErr: true},
		{name: "ZeroCounter", ref: "REC-202503140000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := refnum.Parse(tt.ref)
			if tt.wantErr {
				assert.ErrorIs(t, err, refnum.ErrMalformed)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
