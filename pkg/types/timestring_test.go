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
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "canonical", input: "09:00", want: "09:00"},
		{name: "single digit hour", input: "9:30", want: "09:30"},
		{name: "with seconds", input: "21:00:00", want: "21:00"},
		{name: "surrounding spaces", input: " 10:15 ", want: "10:15"},
		{name: "empty", input: "", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
		{name: "garbage", input: "mañana", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Compare(t *testing.T) {
	nine := MustTimeString("09:00")
	ten := MustTimeString("10:00")

	assert.True(t, nine.IsBefore(ten))
	assert.False(t, ten.IsBefore(nine))
	assert.True(t, ten.IsAfter(nine))
	assert.False(t, nine.IsAfter(nine))
	assert.Equal(t, 540, nine.Minutes())
	assert.Equal(t, 9, nine.Hour())
	assert.Equal(t, 0, nine.Minute())
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := MustTimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	_, err = MustTimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("06:00").Validate())
	assert.Error(t, TimeString("6:00").Validate())
	assert.Error(t, TimeString("").Validate())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("07:00:00")))
	assert.Equal(t, TimeString("07:00"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 18, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("18:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
