package scada

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// PrimaryVersionSource returns the GetVersionExW source.
//
// Without a compatibility manifest, Windows 8.1 and later cap the value
// reported here at 6.2.
func PrimaryVersionSource() VersionSource {
	return primarySource{query: getVersionEx}
}

// FallbackVersionSource returns the source resolving ntdll!RtlGetVersion at
// run time. RtlGetVersion ignores compatibility manifests.
func FallbackVersionSource() VersionSource {
	return fallbackSource{findModule: findLoadedModule}
}

// systemModule is the handle of a module loaded by the OS loader. The handle
// is borrowed: its reference count is left untouched and it is never freed.
type systemModule windows.Handle

func findLoadedModule(name string) (loadedModule, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, err
	}
	var h windows.Handle
	if err := windows.GetModuleHandleEx(windows.GET_MODULE_HANDLE_EX_FLAG_UNCHANGED_REFCOUNT, p, &h); err != nil {
		return nil, err
	}
	return systemModule(h), nil
}

func (m systemModule) Proc(name string) (versionProc, error) {
	addr, err := windows.GetProcAddress(windows.Handle(m), name)
	if err != nil {
		return nil, err
	}
	return func(vi *versionInfo) NTStatus {
		r1, _, _ := syscall.SyscallN(addr, uintptr(unsafe.Pointer(vi)))
		return NTStatus(r1)
	}, nil
}
