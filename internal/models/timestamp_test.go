package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp_CanonicalOnly(t *testing.T) {
	ts, err := ParseTimestamp("2024-01-02T03:04:05.678Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02T03:04:05.678Z", ts.String())
	assert.Equal(t, time.UTC, ts.Location())

	rejected := []string{
		"2024-01-02T03:04:05Z",           // missing milliseconds
		"2024-01-02T03:04:05.678+02:00",  // zone offset instead of Z
		"2024-1-2T03:04:05.678Z",         // not zero-padded
		"2024-01-02 03:04:05.678Z",       // space separator
		"not-a-timestamp",
	}
	for _, s := range rejected {
		_, err := ParseTimestamp(s)
		assert.Error(t, err, "expected %q to be rejected", s)
	}
}

func TestTimestamp_LexicalOrderMatchesInstantOrder(t *testing.T) {
	earlier, err := ParseTimestamp("2024-01-01T00:00:00.000Z")
	require.NoError(t, err)
	later, err := ParseTimestamp("2024-01-02T00:00:00.000Z")
	require.NoError(t, err)

	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(later))
	assert.False(t, later.After(later))
	assert.Less(t, earlier.String(), later.String())
}

func TestTimestamp_JSONRoundTrip(t *testing.T) {
	var got struct {
		At Timestamp `json:"at"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"at":"2024-06-15T12:00:00.500Z"}`), &got))

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"2024-06-15T12:00:00.500Z"}`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`{"at":1718452800}`), &got))
	assert.Error(t, json.Unmarshal([]byte(`{"at":"2024-06-15"}`), &got))
}

func TestTimestamp_ScanAndValue(t *testing.T) {
	var ts Timestamp
	require.NoError(t, ts.Scan("2024-03-04T05:06:07.890Z"))

	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04T05:06:07.890Z", v)

	require.NoError(t, ts.Scan([]byte("2024-03-04T05:06:07.891Z")))
	assert.Equal(t, "2024-03-04T05:06:07.891Z", ts.String())

	assert.Error(t, ts.Scan(42))
}

func TestTimestamp_ZeroValueIsMinimum(t *testing.T) {
	var zero Timestamp
	any1970, err := ParseTimestamp("1970-01-01T00:00:00.000Z")
	require.NoError(t, err)
	assert.True(t, any1970.After(zero))
	assert.Equal(t, "0001-01-01T00:00:00.000Z", zero.String())
}
