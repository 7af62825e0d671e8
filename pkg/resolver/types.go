package resolver

// PackageManager is the resolved dependency manager for a project.
type PackageManager string

const (
	NPM         PackageManager = "npm"
	YarnClassic PackageManager = "yarn-classic"
	YarnBerry   PackageManager = "yarn-berry"
	Pnpm        PackageManager = "pnpm"
	Bun         PackageManager = "bun"
	Unknown     PackageManager = "unknown"
)

// Confidence grades how the resolver arrived at a decision: directly
// declared, inferred from partial evidence, or assumed absent any evidence.
type Confidence string

const (
	Certain         Confidence = "certain"
	Inferred        Confidence = "inferred"
	DefaultFallback Confidence = "default-fallback"
)

// Severity ranks a diagnostic. Only error-severity diagnostics flip the
// exported pass flag; none of them stop the pipeline.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Diagnostic codes are stable identifiers for downstream tooling; messages
// are for humans.
const (
	CodeConflictingLockfiles = "conflicting-lockfiles"
	CodeNoLockfile           = "no-lockfile-found"
	CodeMissingBuildScript   = "missing-build-script"
	CodeManifestUnparsable   = "manifest-unparsable"
	CodeOutputDirAmbiguous   = "output-directory-ambiguous"
	CodeNotAGitRepo          = "not-a-git-repo"
	CodeNoWorkflows          = "no-workflows"
	CodeNoGitignore          = "no-gitignore"
	CodeGitignoreGap         = "gitignore-misses-dependency-dir"
	CodeNoCNAME              = "no-cname"
	CodeNoManifest           = "no-manifest"
)

// Diagnostic is one finding from the resolver's checks.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
}

// Plan is the derived deployment plan: everything a CI templating step
// needs to install dependencies and build the project for static hosting.
type Plan struct {
	PackageManager PackageManager `json:"package_manager"`
	InstallCommand string         `json:"install_command"`
	BuildCommand   string         `json:"build_command"`
	CacheKey       string         `json:"cache_key"`
	CachePaths     []string       `json:"cache_paths"`

	// SetupSteps run in order before the install command; corepack and
	// CLI installers come first.
	SetupSteps []string `json:"setup_steps"`

	// OutputDirGuess is best-effort, not authoritative.
	OutputDirGuess string `json:"output_directory,omitempty"`

	FrameworkHint string     `json:"framework_hint,omitempty"`
	Confidence    Confidence `json:"confidence"`
}
