package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/Masterminds/semver"
	"github.com/olekukonko/tablewriter"

	"github.com/forlenza-industrial/scada"
)

// sourceFlag is the detection source reported for --os-version.
const sourceFlag = "--os-version"

// evaluate runs the compatibility gate on d, logging how the version was found.
func evaluate(d scada.Detection, bypass bool) scada.Decision {
	if d.Err != nil {
		mainLog.Debug().Err(d.Err).Msg("some version sources failed")
	}
	decision := scada.Evaluate(d.Version, bypass)
	mainLog.Info().
		Str("version", d.Version.String()).
		Str("label", decision.DisplayLabel).
		Str("source", d.Source).
		Bool("dev", bypass).
		Bool("allowed", decision.Allowed).
		Msg("compatibility check")
	return decision
}

// detectionFor returns the detected OS version, or the version given by s if not empty.
func detectionFor(s string) (scada.Detection, error) {
	if s == "" {
		return scada.DetectOSVersion(), nil
	}
	ver, err := parseOSVersion(s)
	if err != nil {
		return scada.Detection{}, err
	}
	return scada.Detection{Version: ver, Source: sourceFlag}, nil
}

// parseOSVersion parses "major.minor", ignoring any build number.
func parseOSVersion(s string) (scada.OSVersion, error) {
	sv, err := semver.NewVersion(s)
	if err != nil {
		return scada.OSVersion{}, fmt.Errorf("%q: %w", s, err)
	}
	if sv.Major() > math.MaxUint32 || sv.Minor() > math.MaxUint32 {
		return scada.OSVersion{}, fmt.Errorf("%q: version number out of range", s)
	}
	return scada.OSVersion{Major: uint32(sv.Major()), Minor: uint32(sv.Minor())}, nil
}

func printCheck(w io.Writer, d scada.Detection, decision scada.Decision) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Version", "OS", "Source", "Allowed"})
	table.SetAutoFormatHeaders(false)
	table.Append([]string{
		d.Version.String(),
		decision.DisplayLabel,
		d.Source,
		strconv.FormatBool(decision.Allowed),
	})
	table.Render()
}
