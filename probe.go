package scada

import (
	"errors"
	"fmt"
)

const (
	// SourcePrimary names the documented kernel32 version query.
	SourcePrimary = "GetVersionExW"
	// SourceFallback names the ntdll routine resolved at run time.
	SourceFallback = "RtlGetVersion"
	// SourceDefault is reported when no source produced a version.
	SourceDefault = "default"

	fallbackModule = "ntdll.dll"
)

var (
	// ErrPrimaryProbeUnavailable is returned when the documented version query fails.
	ErrPrimaryProbeUnavailable = errors.New("primary version query unavailable")
	// ErrSymbolResolution is returned when the fallback module or its export cannot be found.
	ErrSymbolResolution = errors.New("could not resolve version routine")
	// ErrFallbackInvocation is returned when the resolved routine reports a failure status.
	ErrFallbackInvocation = errors.New("version routine failed")
	// ErrUnsupportedPlatform is returned by every version source outside Windows.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// VersionSource is a way of asking the OS for its version.
type VersionSource interface {
	Name() string
	Probe() (Release, error)
}

// Release is what a version source read from the extended version record.
type Release struct {
	Version     OSVersion
	ProductType ProductType
}

// Detection is the version the process settled on, and where it came from.
type Detection struct {
	Version OSVersion
	// ProductType is ProductUnknown when Source is SourceDefault.
	ProductType ProductType
	Source      string
	// Err holds the failures of the sources tried before Source, if any.
	Err error
}

// IsWorkstation reports whether the detected OS is a Windows client edition
// rather than a server edition.
func (d Detection) IsWorkstation() bool {
	return d.ProductType == ProductWorkstation
}

// DetectVersion tries sources in order and returns the first version reported.
// When all of them fail, the result carries DefaultOSVersion.
func DetectVersion(sources ...VersionSource) Detection {
	var errs []error
	for _, src := range sources {
		r, err := src.Probe()
		if err == nil {
			return Detection{
				Version:     r.Version,
				ProductType: r.ProductType,
				Source:      src.Name(),
				Err:         errors.Join(errs...),
			}
		}
		ProxyLogger.Load().Debug().Err(err).Str("source", src.Name()).Msg("version source failed")
		errs = append(errs, err)
	}
	return Detection{Version: DefaultOSVersion, Source: SourceDefault, Err: errors.Join(errs...)}
}

// DetectOSVersion runs the platform version sources, primary first.
func DetectOSVersion() Detection {
	return DetectVersion(PrimaryVersionSource(), FallbackVersionSource())
}

// ProbeFallback returns the version reported by the run-time resolved routine,
// or DefaultOSVersion if it cannot be used.
func ProbeFallback() OSVersion {
	return DetectVersion(FallbackVersionSource()).Version
}

// primarySource queries the OS through a statically declared binding.
type primarySource struct {
	query func(vi *versionInfo) error
}

func (primarySource) Name() string { return SourcePrimary }

func (p primarySource) Probe() (Release, error) {
	vi := newVersionInfo()
	if err := p.query(vi); err != nil {
		return Release{}, fmt.Errorf("%w: %w", ErrPrimaryProbeUnavailable, err)
	}
	return vi.release(), nil
}

// loadedModule is a system library already mapped into the process.
type loadedModule interface {
	// Proc resolves an exported routine taking a single version record.
	Proc(name string) (versionProc, error)
}

// versionProc calls a resolved routine and returns its NTSTATUS.
type versionProc func(vi *versionInfo) NTStatus

// fallbackSource resolves RtlGetVersion by name at run time.
type fallbackSource struct {
	findModule func(name string) (loadedModule, error)
}

func (fallbackSource) Name() string { return SourceFallback }

func (f fallbackSource) Probe() (Release, error) {
	mod, err := f.findModule(fallbackModule)
	if err != nil {
		return Release{}, fmt.Errorf("%w: module %s: %w", ErrSymbolResolution, fallbackModule, err)
	}
	proc, err := mod.Proc(SourceFallback)
	if err != nil {
		return Release{}, fmt.Errorf("%w: %s!%s: %w", ErrSymbolResolution, fallbackModule, SourceFallback, err)
	}
	vi := newVersionInfo()
	if status := proc(vi); status != statusSuccess {
		return Release{}, fmt.Errorf("%w: %w", ErrFallbackInvocation, status)
	}
	return vi.release(), nil
}
