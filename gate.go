package scada

// Decision is the outcome of the compatibility gate.
type Decision struct {
	Allowed bool
	// DisplayLabel names the detected OS. It is always set, but callers
	// only need it when Allowed is false.
	DisplayLabel string
}

// Evaluate decides whether the software may run on v.
//
// Any version newer than Windows 7 is blocked unless bypass is set.
func Evaluate(v OSVersion, bypass bool) Decision {
	blocked := !bypass && v.NewerThan(LegacyBaseline)
	return Decision{
		Allowed:      !blocked,
		DisplayLabel: v.Label(),
	}
}
