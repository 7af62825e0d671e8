package export

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"siteplan/pkg/resolver"
)

// VariableKeys is the stable, ordered key set of the exported mapping.
// Downstream templating relies on these names not changing.
var VariableKeys = []string{
	"package_manager",
	"install_command",
	"build_command",
	"cache_key",
	"cache_paths",
	"setup_steps",
	"output_directory",
	"framework_hint",
	"confidence",
}

// SerializedPlan is the exporter's output: a flat variable mapping for a
// CI templating step plus the diagnostic report. The exporter writes
// nothing anywhere; callers decide what to do with both artifacts.
type SerializedPlan struct {
	Variables map[string]string `json:"variables"`
	Report    Report            `json:"report"`
}

// Report carries the diagnostics in check order plus the overall verdict.
// Pass is false iff any diagnostic reached error severity.
type Report struct {
	Diagnostics []resolver.Diagnostic `json:"diagnostics"`
	Pass        bool                  `json:"pass"`
}

// Export flattens a plan into the stable key/value mapping and builds the
// report from the accumulated diagnostics.
func Export(plan resolver.Plan, diags []resolver.Diagnostic) SerializedPlan {
	vars := map[string]string{
		"package_manager":  string(plan.PackageManager),
		"install_command":  plan.InstallCommand,
		"build_command":    plan.BuildCommand,
		"cache_key":        plan.CacheKey,
		"cache_paths":      strings.Join(plan.CachePaths, ","),
		"setup_steps":      strings.Join(plan.SetupSteps, ","),
		"output_directory": plan.OutputDirGuess,
		"framework_hint":   plan.FrameworkHint,
		"confidence":       string(plan.Confidence),
	}

	report := Report{
		Diagnostics: append([]resolver.Diagnostic(nil), diags...),
		Pass:        true,
	}
	for _, d := range diags {
		if d.Severity == resolver.SeverityError {
			report.Pass = false
			break
		}
	}

	return SerializedPlan{Variables: vars, Report: report}
}

// RenderEnv renders the variable mapping as an env-style key=value
// document, keys in VariableKeys order.
func (s SerializedPlan) RenderEnv() (string, error) {
	f := ini.Empty()
	sec := f.Section("")
	for _, key := range VariableKeys {
		if _, err := sec.NewKey(key, s.Variables[key]); err != nil {
			return "", fmt.Errorf("rendering plan variables: %w", err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("rendering plan variables: %w", err)
	}
	return buf.String(), nil
}

// Severities returns the diagnostics of one severity, in check order.
func (r Report) Severities(sev resolver.Severity) []resolver.Diagnostic {
	var out []resolver.Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// Counts returns the number of error and warning diagnostics.
func (r Report) Counts() (errors, warnings int) {
	for _, d := range r.Diagnostics {
		switch d.Severity {
		case resolver.SeverityError:
			errors++
		case resolver.SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

// Format renders the report as plain text: diagnostics grouped by
// severity, a summary line, and the verdict.
func (r Report) Format() string {
	var b strings.Builder

	writeGroup := func(title string, sev resolver.Severity) {
		group := r.Severities(sev)
		if len(group) == 0 {
			return
		}
		fmt.Fprintf(&b, "%s:\n", title)
		for _, d := range group {
			fmt.Fprintf(&b, "  [%s] %s\n", d.Code, d.Message)
		}
	}

	writeGroup("Errors", resolver.SeverityError)
	writeGroup("Warnings", resolver.SeverityWarning)
	writeGroup("Info", resolver.SeverityInfo)

	errors, warnings := r.Counts()
	fmt.Fprintf(&b, "%d error(s), %d warning(s)\n", errors, warnings)
	if r.Pass {
		b.WriteString("PASS\n")
	} else {
		b.WriteString("FAIL\n")
	}
	return b.String()
}
