//go:build unit

package turf

import (
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "06:00", want: "06:00"},
		{in: "23:59", want: "23:59"},
		{in: "24:00", want: "24:00"},
		{in: "6:00", wantErr: true},
		{in: "25:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("18:00", "19:30")
	require.NoError(t, err)
	assert.Equal(t, 90, int(r.Duration().Minutes()))

	_, err = ParseRange("19:00", "18:00")
	assert.ErrorIs(t, err, ErrInvalidSlotRange)

	_, err = ParseRange("18:00", "18:00")
	assert.ErrorIs(t, err, ErrInvalidSlotRange)
}

func TestHourlySlots(t *testing.T) {
	turfID := uuid.New()
	n := 0
	newID := func() string {
		n++
		return "slot-" + strconv.Itoa(n)
	}

	slots, err := HourlySlots(turfID, 6, 23, 800, newID)
	require.NoError(t, err)
	require.Len(t, slots, 17)

	first, last := slots[0], slots[len(slots)-1]
	assert.Equal(t, "06:00", first.Window().Start().String())
	assert.Equal(t, "07:00", first.Window().End().String())
	assert.Equal(t, "22:00", last.Window().Start().String())
	assert.Equal(t, "23:00", last.Window().End().String())
	assert.Equal(t, "slot-17", last.SlotID())
	for _, s := range slots {
		assert.True(t, s.Available())
		assert.Equal(t, turfID, s.TurfID())
		assert.Equal(t, int64(800), s.Price())
	}

	_, err = HourlySlots(turfID, 10, 10, 800, newID)
	assert.ErrorIs(t, err, ErrInvalidHours)
}
