package scada

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		major, minor uint32
		want         string
	}{
		{5, 1, "Windows 7"},
		{6, 0, "Windows 7"},
		{6, 1, "Windows 7"},
		{6, 2, "Windows 8"},
		{6, 3, "Windows 8.1"},
		{6, 4, "Windows 6.4"},
		{7, 0, "Windows 7.0"},
		{10, 0, "Windows 10/11"},
		{10, 1, "Windows 10.1"},
		{11, 0, "Windows 11.0"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Label(tc.major, tc.minor))
			assert.Equal(t, tc.want, OSVersion{Major: tc.major, Minor: tc.minor}.Label())
		})
	}
}

func TestLabelIsStable(t *testing.T) {
	for major := uint32(0); major <= 12; major++ {
		for minor := uint32(0); minor <= 4; minor++ {
			assert.Equal(t, Label(major, minor), Label(major, minor))
			assert.NotEmpty(t, Label(major, minor))
		}
	}
}

func TestOSVersion_NewerThan(t *testing.T) {
	assert.False(t, OSVersion{6, 1}.NewerThan(LegacyBaseline))
	assert.False(t, OSVersion{6, 0}.NewerThan(LegacyBaseline))
	assert.False(t, OSVersion{5, 9}.NewerThan(LegacyBaseline))
	assert.True(t, OSVersion{6, 2}.NewerThan(LegacyBaseline))
	assert.True(t, OSVersion{7, 0}.NewerThan(LegacyBaseline))
	assert.True(t, OSVersion{10, 0}.NewerThan(LegacyBaseline))
}

func TestOSVersion_String(t *testing.T) {
	assert.Equal(t, "6.1", DefaultOSVersion.String())
	assert.Equal(t, "10.0", OSVersion{Major: 10}.String())
}
