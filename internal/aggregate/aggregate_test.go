package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payoutbook-dev/payoutbook/internal/model"
)

func rec(ts, amount, typ string) model.TransactionRecord {
	return model.TransactionRecord{Timestamp: ts, Amount: amount, Type: typ}
}

func sumFor(t *testing.T, day DaySummary, typ string) decimal.Decimal {
	t.Helper()
	for _, total := range day.Totals {
		if total.Type == typ {
			return total.Sum
		}
	}
	t.Fatalf("no total for type %s on %s", typ, day.Date)
	return decimal.Zero
}

func TestDaily_SumsPerDayAndType(t *testing.T) {
	days, err := Daily([]model.TransactionRecord{
		rec("2024-01-01 10:00:00", "10.0", "trip"),
		rec("2024-01-01 12:00:00", "5.0", "trip"),
		rec("2024-01-01 13:00:00", "-2.0", "promotion"),
	})
	require.NoError(t, err)
	require.Len(t, days, 1)

	day := days[0]
	assert.Equal(t, "2024-01-01", day.Date)
	require.Len(t, day.Totals, 2)
	assert.True(t, sumFor(t, day, "trip").Equal(decimal.RequireFromString("15.0")))
	assert.True(t, sumFor(t, day, "promotion").Equal(decimal.RequireFromString("-2.0")))
}

func TestDaily_DatesAscending(t *testing.T) {
	days, err := Daily([]model.TransactionRecord{
		rec("2024-02-01 10:00:00", "1.0", "trip"),
		rec("2024-01-15 10:00:00", "2.0", "trip"),
		rec("2024-01-31 10:00:00", "3.0", "trip"),
	})
	require.NoError(t, err)
	require.Len(t, days, 3)

	assert.Equal(t, "2024-01-15", days[0].Date)
	assert.Equal(t, "2024-01-31", days[1].Date)
	assert.Equal(t, "2024-02-01", days[2].Date)
}

func TestDaily_SignPreserving(t *testing.T) {
	days, err := Daily([]model.TransactionRecord{
		rec("2024-01-01 10:00:00", "-100.0", "payouts"),
		rec("2024-01-01 18:00:00", "-50.5", "payouts"),
	})
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.True(t, sumFor(t, days[0], "payouts").Equal(decimal.RequireFromString("-150.5")))
}

func TestDaily_DateIsTimestampPrefix(t *testing.T) {
	days, err := Daily([]model.TransactionRecord{
		rec("2024-01-01 10:00:00 +0900", "1.0", "trip"),
		rec("2024-01-01T23:59:59", "2.0", "trip"),
	})
	require.NoError(t, err)
	require.Len(t, days, 1, "same 10-byte date prefix lands in one bucket")
	assert.True(t, sumFor(t, days[0], "trip").Equal(decimal.RequireFromString("3.0")))
}

func TestDaily_BadAmount(t *testing.T) {
	_, err := Daily([]model.TransactionRecord{
		rec("2024-01-01 10:00:00", "not-a-number", "trip"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestDaily_Empty(t *testing.T) {
	days, err := Daily(nil)
	require.NoError(t, err)
	assert.Empty(t, days)
}
