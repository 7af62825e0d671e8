package resolver

import "siteplan/pkg/evidence"

// appendChecklist runs the repo-hygiene checks, in a fixed order. None of
// them affect the plan; they only feed the report.
func appendChecklist(rec *evidence.Record, diags []Diagnostic) []Diagnostic {
	if !rec.GitRepoPresent {
		diags = append(diags, Diagnostic{
			Severity: SeverityError,
			Code:     CodeNotAGitRepo,
			Message:  "project is not a git repository",
		})
	}

	if rec.WorkflowFiles == 0 {
		diags = append(diags, Diagnostic{
			Severity: SeverityError,
			Code:     CodeNoWorkflows,
			Message:  "no workflow files found under .github/workflows",
		})
	}

	if !rec.GitignorePresent {
		diags = append(diags, Diagnostic{
			Severity: SeverityError,
			Code:     CodeNoGitignore,
			Message:  "no .gitignore at the project root",
		})
	} else if !rec.IgnoresDependencyDir {
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeGitignoreGap,
			Message:  ".gitignore does not ignore node_modules",
		})
	}

	if !rec.CNAMEPresent {
		diags = append(diags, Diagnostic{
			Severity: SeverityInfo,
			Code:     CodeNoCNAME,
			Message:  "no CNAME file; the site will be served from the default domain",
		})
	}

	if !rec.ManifestPresent {
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeNoManifest,
			Message:  "no package.json at the project root",
		})
	}

	return diags
}
