package evidence

import "fmt"

// LockfileKind identifies a dependency manager by the lockfile it writes.
type LockfileKind string

const (
	LockfileNPM  LockfileKind = "npm"
	LockfileYarn LockfileKind = "yarn"
	LockfilePnpm LockfileKind = "pnpm"
	LockfileBun  LockfileKind = "bun"
)

// Record is a snapshot of the deployment-relevant facts observed in a
// project root. Collect is the sole writer; once returned, a Record is
// read-only.
type Record struct {
	// LockFiles holds the lockfile kinds found at the root, in probe order.
	LockFiles []LockfileKind

	// YarnBerryMarkers is set when a .yarn/ directory or a parseable
	// .yarnrc.yml exists.
	YarnBerryMarkers bool

	// PackageManagerField is the manifest's packageManager value
	// ("name@version"), empty when absent.
	PackageManagerField string

	ManifestPresent bool

	// ManifestParseFailed means package.json exists but could not be
	// parsed; the manifest-derived fields below are empty in that case.
	ManifestParseFailed bool

	BuildScriptPresent bool
	ManifestName       string
	ManifestVersion    string

	// FrameworkConfigs lists the recognized framework config filenames
	// found at the root. The resolver ranks them; the collector only
	// records presence.
	FrameworkConfigs []string

	// WorkflowFiles counts the workflow definitions under
	// .github/workflows.
	WorkflowFiles int

	CNAMEPresent         bool
	GitRepoPresent       bool
	GitignorePresent     bool
	IgnoresDependencyDir bool

	// OutputDirs lists conventional build-output directory names that
	// already exist at the root.
	OutputDirs []string
}

// HasLockfile reports whether a lockfile of the given kind was found.
func (r *Record) HasLockfile(kind LockfileKind) bool {
	for _, k := range r.LockFiles {
		if k == kind {
			return true
		}
	}
	return false
}

// AccessError means the project root itself could not be read. It is the
// only fatal error in the pipeline.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot access project at %s: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }
