package scada

// ProductType is the edition class reported in the extended version record.
type ProductType byte

// From https://learn.microsoft.com/en-us/windows/win32/api/winnt/ns-winnt-osversioninfoexw
const (
	ProductUnknown          ProductType = 0
	ProductWorkstation      ProductType = 1 // VER_NT_WORKSTATION
	ProductDomainController ProductType = 2 // VER_NT_DOMAIN_CONTROLLER
	ProductServer           ProductType = 3 // VER_NT_SERVER
)

func (t ProductType) String() string {
	switch t {
	case ProductWorkstation:
		return "workstation"
	case ProductDomainController:
		return "domain controller"
	case ProductServer:
		return "server"
	}
	return "unknown"
}
