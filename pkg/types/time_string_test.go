package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    TimeString
		wantErr bool
	}{
		{name: "hh:mm", in: "08:00", want: "08:00"},
		{name: "postgres time", in: "21:00:00", want: "21:00"},
		{name: "spaces", in: " 09:30 ", want: "09:30"},
		{name: "garbage", in: "8am", wantErr: true},
		{name: "out of range", in: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("08:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), got)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("22:00").IsAfter("21:59"))
}

func TestNewTimeStringFromHour(t *testing.T) {
	got, err := NewTimeStringFromHour(8)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:00"), got)

	_, err = NewTimeStringFromHour(24)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_On(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	got := TimeString("14:30").On(date, loc)

	assert.Equal(t, time.Date(2025, 3, 10, 14, 30, 0, 0, loc), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("10:00:00")))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 11, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:00"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestDateHelpers(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	now := time.Date(2025, 3, 10, 23, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), DateOf(now))
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), AddDays(now, 7))
	assert.True(t, SameDate(now, time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC)))

	d, err := ParseDate("2025-03-11")
	require.NoError(t, err)
	assert.Equal(t, AddDays(now, 1), d)
}
