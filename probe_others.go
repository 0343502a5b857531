//go:build !windows

package scada

// PrimaryVersionSource always fails outside Windows.
func PrimaryVersionSource() VersionSource {
	return primarySource{query: func(*versionInfo) error { return ErrUnsupportedPlatform }}
}

// FallbackVersionSource always fails outside Windows.
func FallbackVersionSource() VersionSource {
	return fallbackSource{findModule: func(string) (loadedModule, error) { return nil, ErrUnsupportedPlatform }}
}
