package scada

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestFallbackVersionSource_MatchesRtlGetVersion(t *testing.T) {
	r, err := FallbackVersionSource().Probe()
	require.NoError(t, err)
	osvi := windows.RtlGetVersion()
	assert.Equal(t, OSVersion{Major: osvi.MajorVersion, Minor: osvi.MinorVersion}, r.Version)
	assert.Equal(t, ProductType(osvi.ProductType), r.ProductType)
}

func TestPrimaryVersionSource(t *testing.T) {
	r, err := PrimaryVersionSource().Probe()
	require.NoError(t, err)
	// GetVersionExW never reports more than the real version.
	assert.False(t, r.Version.NewerThan(ProbeFallback()))
	assert.Equal(t, ProductType(windows.RtlGetVersion().ProductType), r.ProductType)
}

func TestFindLoadedModule_Missing(t *testing.T) {
	_, err := findLoadedModule("surely-not-loaded-module.dll")
	assert.Error(t, err)
}
