package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionAtLeast(t *testing.T) {
	for _, tt := range []struct {
		version      string
		major, minor int
		expected     bool
	}{
		{"1.4.2", 1, 2, true},
		{"1.4.2", 1, 4, true},
		{"1.4.2", 1, 5, false},
		{"1.4.2", 2, 0, false},
		{"2.0.0", 1, 9, true},
		{"1.4", 1, 4, true},
		{"garbage", 1, 0, false},
		{"1", 1, 0, false},
	} {
		assert.Equal(t, tt.expected, versionAtLeast(tt.version, tt.major, tt.minor),
			"version %s at least %d.%d", tt.version, tt.major, tt.minor)
	}
}
