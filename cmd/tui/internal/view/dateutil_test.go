package view

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTimeframe_DateRange(t *testing.T) {
	// Friday.
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		tf        Timeframe
		wantStart string
		wantEnd   string
		wantOK    bool
	}{
		{tf: TimeframeAll},
		{tf: TimeframeToday, wantStart: "2025-03-14", wantEnd: "2025-03-14", wantOK: true},
		{tf: TimeframeThisWeek, wantStart: "2025-03-10", wantEnd: "2025-03-14", wantOK: true},
		{tf: TimeframeThisMonth, wantStart: "2025-03-01", wantEnd: "2025-03-14", wantOK: true},
		{tf: TimeframeLastMonth, wantStart: "2025-02-01", wantEnd: "2025-02-28", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.tf.String(), func(t *testing.T) {
			start, end, ok := tt.tf.DateRange(now)

			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.wantStart, FormatDate(start))
				assert.Equal(t, tt.wantEnd, FormatDate(end))
			}
		})
	}
}

func TestTimeframe_NextWraps(t *testing.T) {
	assert.Equal(t, TimeframeToday, TimeframeAll.Next())
	assert.Equal(t, TimeframeAll, TimeframeLastMonth.Next())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "12,500", FormatQuantity(decimal.NewFromInt(12500)))
	assert.Equal(t, "2.125", FormatQuantity(decimal.RequireFromString("2.125")))
	assert.Equal(t, "1,022.50", FormatMoney(decimal.RequireFromString("1022.5")))
}
