package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTripcode(t *testing.T) {
	tests := []struct {
		in          string
		wantDisplay string
		wantTrip    bool
	}{
		{in: "anon", wantDisplay: "anon"},
		{in: "anon#secret", wantDisplay: "anon", wantTrip: true},
		{in: "#secret", wantDisplay: "", wantTrip: true},
		{in: "a#b#c", wantDisplay: ""},
		{in: "", wantDisplay: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			display, trip := SplitTripcode(tt.in)
			assert.Equal(t, tt.wantDisplay, display)
			assert.Equal(t, tt.wantTrip, trip != "")
		})
	}
}

func TestTripcode_Stable(t *testing.T) {
	a := Tripcode("secret")
	assert.Equal(t, a, Tripcode("secret"))
	assert.NotEqual(t, a, Tripcode("Secret"))
	assert.Len(t, a, 11)
	assert.Equal(t, byte('!'), a[0])
}

func TestCollapseNewlines(t *testing.T) {
	assert.Equal(t, "a\nb", CollapseNewlines("a\r\n\r\n\nb"))
	assert.Equal(t, "a\nb", CollapseNewlines("a\nb"))
	assert.Equal(t, "a\nb", CollapseNewlines("a\r\nb"))
	assert.Equal(t, "a\rb", CollapseNewlines("a\rb"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 20))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "жё", Truncate("жёлтый", 2))
}
