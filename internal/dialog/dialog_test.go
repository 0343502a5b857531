package dialog

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestCompatibilityError(t *testing.T) {
	c := qt.New(t)
	m := CompatibilityError(Product{
		Name:           "Forlenza Industrial SCADA",
		Version:        "v2.1",
		SupportContact: "Please contact IT support for virtualization solutions.",
		ErrorCode:      "LEGACY_OS_REQUIRED",
	}, "Windows 10/11")

	c.Assert(m.Title, qt.Equals, "Forlenza Industrial SCADA v2.1 - Compatibility Error")
	c.Assert(m.Body, qt.Equals, "Forlenza Industrial SCADA v2.1 requires Windows 7 or earlier.\n\n"+
		"This software is not compatible with Windows 10/11.\n\n"+
		"Please contact IT support for virtualization solutions.\n\n"+
		"Error Code: LEGACY_OS_REQUIRED")
}

func TestCompatibilityError_OptionalParts(t *testing.T) {
	c := qt.New(t)
	m := CompatibilityError(Product{Name: "SCADA"}, "Windows 8")

	c.Assert(m.Title, qt.Equals, "SCADA - Compatibility Error")
	c.Assert(m.Body, qt.Equals, "SCADA requires Windows 7 or earlier.\n\nThis software is not compatible with Windows 8.")
}
