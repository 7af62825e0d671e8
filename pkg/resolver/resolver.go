package resolver

import "siteplan/pkg/evidence"

// Resolve derives a deployment plan from the collected evidence. It is a
// pure function: the same record always yields the same plan and the same
// diagnostic sequence, and it never aborts. The diagnostic order is the
// order the checks run in.
func Resolve(rec *evidence.Record) (Plan, []Diagnostic) {
	var diags []Diagnostic

	var decision managerDecision
	for _, rule := range managerRules {
		if d, ok := rule.apply(rec); ok {
			decision = d
			break
		}
	}
	diags = append(diags, decision.Diags...)

	cmds := commandTable[decision.Manager]
	plan := Plan{
		PackageManager: decision.Manager,
		InstallCommand: cmds.Install,
		CacheKey:       cmds.CacheKey,
		CachePaths:     append([]string(nil), cmds.CachePaths...),
		SetupSteps:     append([]string(nil), cmds.SetupSteps...),
		Confidence:     decision.Confidence,
	}

	if rec.ManifestParseFailed {
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeManifestUnparsable,
			Message:  "package.json exists but could not be parsed; manifest-derived fields are unavailable",
		})
	}

	if rec.BuildScriptPresent {
		plan.BuildCommand = cmds.RunScript + " build"
	} else {
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeMissingBuildScript,
			Message:  `no "build" script in the manifest; build command left empty`,
		})
	}

	diags = resolveFramework(rec, &plan, diags)
	diags = appendChecklist(rec, diags)

	return plan, diags
}

// resolveFramework sets the framework hint from the ranked config-file
// table and derives the output directory. Without a config match, a single
// existing conventional output directory is used as an inferred guess.
func resolveFramework(rec *evidence.Record, plan *Plan, diags []Diagnostic) []Diagnostic {
	have := make(map[string]bool, len(rec.FrameworkConfigs))
	for _, name := range rec.FrameworkConfigs {
		have[name] = true
	}

	for _, rule := range frameworkRules {
		for _, cfg := range rule.Configs {
			if have[cfg] {
				plan.FrameworkHint = rule.Name
				if rule.OutputDir != "" {
					plan.OutputDirGuess = rule.OutputDir
				}
				return diags
			}
		}
	}

	if len(rec.OutputDirs) == 1 {
		plan.OutputDirGuess = rec.OutputDirs[0]
		if plan.Confidence == Certain {
			plan.Confidence = Inferred
		}
		return diags
	}

	return append(diags, Diagnostic{
		Severity: SeverityInfo,
		Code:     CodeOutputDirAmbiguous,
		Message:  "could not determine the build output directory from config files or existing directories",
	})
}
