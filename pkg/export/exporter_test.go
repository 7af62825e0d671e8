package export_test

import (
	"strings"
	"testing"

	"siteplan/pkg/export"
	"siteplan/pkg/resolver"
)

func samplePlan() resolver.Plan {
	return resolver.Plan{
		PackageManager: resolver.Pnpm,
		InstallCommand: "pnpm install --frozen-lockfile",
		BuildCommand:   "pnpm run build",
		CacheKey:       "pnpm-${{ hashFiles('pnpm-lock.yaml') }}",
		CachePaths:     []string{"~/.local/share/pnpm/store"},
		SetupSteps:     []string{resolver.StepInstallPnpm},
		OutputDirGuess: "dist",
		FrameworkHint:  "Vite",
		Confidence:     resolver.Certain,
	}
}

func TestExportVariables(t *testing.T) {
	serialized := export.Export(samplePlan(), nil)

	expected := map[string]string{
		"package_manager":  "pnpm",
		"install_command":  "pnpm install --frozen-lockfile",
		"build_command":    "pnpm run build",
		"cache_key":        "pnpm-${{ hashFiles('pnpm-lock.yaml') }}",
		"cache_paths":      "~/.local/share/pnpm/store",
		"setup_steps":      "install-pnpm-cli",
		"output_directory": "dist",
		"framework_hint":   "Vite",
		"confidence":       "certain",
	}

	if len(serialized.Variables) != len(export.VariableKeys) {
		t.Errorf("Expected %d variables, got %d", len(export.VariableKeys), len(serialized.Variables))
	}
	for key, want := range expected {
		if got := serialized.Variables[key]; got != want {
			t.Errorf("Variable %s: expected %q, got %q", key, want, got)
		}
	}
}

func TestExportJoinsOrderedSequences(t *testing.T) {
	plan := samplePlan()
	plan.PackageManager = resolver.YarnBerry
	plan.SetupSteps = []string{resolver.StepEnableCorepack, resolver.StepInstallPnpm}
	plan.CachePaths = []string{".yarn/cache", "node_modules/.cache"}

	serialized := export.Export(plan, nil)
	if got := serialized.Variables["setup_steps"]; got != "enable-corepack,install-pnpm-cli" {
		t.Errorf("Unexpected setup_steps joining: %q", got)
	}
	if got := serialized.Variables["cache_paths"]; got != ".yarn/cache,node_modules/.cache" {
		t.Errorf("Unexpected cache_paths joining: %q", got)
	}
}

func TestPassFlag(t *testing.T) {
	tests := []struct {
		name     string
		diags    []resolver.Diagnostic
		expected bool
	}{
		{
			name:     "no diagnostics",
			expected: true,
		},
		{
			name: "warnings only",
			diags: []resolver.Diagnostic{
				{Severity: resolver.SeverityWarning, Code: resolver.CodeNoLockfile, Message: "w"},
				{Severity: resolver.SeverityInfo, Code: resolver.CodeNoCNAME, Message: "i"},
			},
			expected: true,
		},
		{
			name: "one error fails",
			diags: []resolver.Diagnostic{
				{Severity: resolver.SeverityWarning, Code: resolver.CodeNoLockfile, Message: "w"},
				{Severity: resolver.SeverityError, Code: resolver.CodeNotAGitRepo, Message: "e"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serialized := export.Export(samplePlan(), tt.diags)
			if serialized.Report.Pass != tt.expected {
				t.Errorf("Expected Pass=%v, got %v", tt.expected, serialized.Report.Pass)
			}
		})
	}
}

func TestRenderEnv(t *testing.T) {
	serialized := export.Export(samplePlan(), nil)

	env, err := serialized.RenderEnv()
	if err != nil {
		t.Fatalf("RenderEnv failed: %v", err)
	}

	last := -1
	for _, key := range export.VariableKeys {
		idx := strings.Index(env, key)
		if idx == -1 {
			t.Errorf("Expected key %q in rendered output", key)
			continue
		}
		if idx < last {
			t.Errorf("Key %q out of order in rendered output", key)
		}
		last = idx
	}

	if !strings.Contains(env, "pnpm install --frozen-lockfile") {
		t.Error("Expected install command value in rendered output")
	}
}

func TestReportFormat(t *testing.T) {
	diags := []resolver.Diagnostic{
		{Severity: resolver.SeverityWarning, Code: resolver.CodeNoLockfile, Message: "no lockfile"},
		{Severity: resolver.SeverityError, Code: resolver.CodeNotAGitRepo, Message: "not a repo"},
		{Severity: resolver.SeverityInfo, Code: resolver.CodeNoCNAME, Message: "no cname"},
	}

	serialized := export.Export(samplePlan(), diags)
	out := serialized.Report.Format()

	errIdx := strings.Index(out, "Errors:")
	warnIdx := strings.Index(out, "Warnings:")
	infoIdx := strings.Index(out, "Info:")
	if errIdx == -1 || warnIdx == -1 || infoIdx == -1 {
		t.Fatalf("Expected all severity groups in report:\n%s", out)
	}
	if !(errIdx < warnIdx && warnIdx < infoIdx) {
		t.Errorf("Severity groups out of order:\n%s", out)
	}

	if !strings.Contains(out, "1 error(s), 1 warning(s)") {
		t.Errorf("Expected summary counts in report:\n%s", out)
	}
	if !strings.Contains(out, "FAIL") {
		t.Errorf("Expected FAIL verdict in report:\n%s", out)
	}
}

func TestReportDiagnosticsKeepCheckOrder(t *testing.T) {
	diags := []resolver.Diagnostic{
		{Severity: resolver.SeverityWarning, Code: "first", Message: "1"},
		{Severity: resolver.SeverityError, Code: "second", Message: "2"},
		{Severity: resolver.SeverityWarning, Code: "third", Message: "3"},
	}

	serialized := export.Export(samplePlan(), diags)
	for i, d := range serialized.Report.Diagnostics {
		if d.Code != diags[i].Code {
			t.Errorf("Diagnostic %d: expected code %q, got %q", i, diags[i].Code, d.Code)
		}
	}

	warnings := serialized.Report.Severities(resolver.SeverityWarning)
	if len(warnings) != 2 || warnings[0].Code != "first" || warnings[1].Code != "third" {
		t.Errorf("Severity grouping lost check order: %v", warnings)
	}
}
