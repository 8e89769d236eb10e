package timezone_test

import (
	"hotel/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	assert.Equal(t, time.UTC, timezone.Load(""))
	assert.Equal(t, time.UTC, timezone.Load("Mars/Olympus_Mons"))

	jakarta := timezone.Load("Asia/Jakarta")
	assert.Equal(t, "Asia/Jakarta", jakarta.String())
}

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestDateOf(t *testing.T) {
	instant := time.Date(2025, 3, 10, 18, 45, 0, 0, timezone.GetLocation())

	date := timezone.DateOf(instant)

	assert.Equal(t, time.UTC, date.Location())
	assert.Equal(t, 0, date.Hour())
	assert.Equal(t, 10, date.Day())
	assert.Equal(t, time.March, date.Month())
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	assert.Equal(t, timezone.DateOf(time.Now()), today)
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse(time.DateOnly, "2025-12-25")
	require.NoError(t, err)

	assert.Equal(t, timezone.GetLocation(), parsed.Location())
	assert.Equal(t, "2025-12-25", timezone.Format(parsed, time.DateOnly))
}
