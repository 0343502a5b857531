package scada

import (
	"fmt"
	"unsafe"
)

// From https://learn.microsoft.com/en-us/windows/win32/api/winnt/ns-winnt-osversioninfoexw
//
// OSVERSIONINFOEXW and RTL_OSVERSIONINFOEXW share this layout, 284 bytes.
type versionInfo struct {
	OSVersionInfoSize uint32
	MajorVersion      uint32
	MinorVersion      uint32
	BuildNumber       uint32
	PlatformId        uint32
	CSDVersion        [128]uint16
	ServicePackMajor  uint16
	ServicePackMinor  uint16
	SuiteMask         uint16
	ProductType       byte
	Reserved          byte
}

// newVersionInfo returns a record asking for the extended layout.
func newVersionInfo() *versionInfo {
	return &versionInfo{OSVersionInfoSize: uint32(unsafe.Sizeof(versionInfo{}))}
}

func (vi *versionInfo) release() Release {
	return Release{
		Version:     OSVersion{Major: vi.MajorVersion, Minor: vi.MinorVersion},
		ProductType: ProductType(vi.ProductType),
	}
}

// NTStatus is a non-success NTSTATUS code returned by an ntdll routine.
type NTStatus uint32

// statusSuccess is STATUS_SUCCESS.
const statusSuccess NTStatus = 0

func (s NTStatus) Error() string {
	return fmt.Sprintf("NTSTATUS 0x%08X", uint32(s))
}
