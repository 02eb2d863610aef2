package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-03")
	require.NoError(t, err)
	require.Equal(t, "2024-03-03", d.String())

	_, err = ParseDate("03.03.2024")
	require.Error(t, err)
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.May, 6)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"2024-05-06"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, d.Equal(decoded.Time))
}

func TestDate_UnmarshalRejectsTimestamps(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"2024-05-06T10:00:00Z"`), &d)
	require.Error(t, err)
}

func TestDate_ScanVariants(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan("2024-05-06"))
	require.Equal(t, "2024-05-06", d.String())

	require.NoError(t, d.Scan(time.Date(2023, time.December, 31, 15, 4, 5, 0, time.Local)))
	require.Equal(t, "2023-12-31", d.String())

	require.NoError(t, d.Scan(nil))
	require.True(t, d.IsZero())

	require.Error(t, d.Scan(42))
}

func TestDate_ValueZeroIsNull(t *testing.T) {
	var d Date
	v, err := d.Value()
	require.NoError(t, err)
	require.Nil(t, v)

	v, err = NewDate(2024, time.January, 2).Value()
	require.NoError(t, err)
	require.Equal(t, "2024-01-02", v)
}
