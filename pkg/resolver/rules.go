package resolver

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"siteplan/pkg/evidence"
)

// managerDecision is the outcome of one precedence rule.
type managerDecision struct {
	Manager    PackageManager
	Confidence Confidence
	Diags      []Diagnostic
}

// managerRules are evaluated in order; the first rule that applies decides
// the package manager. Keeping precedence as an explicit list keeps it
// auditable and lets each rule be tested on its own.
var managerRules = []struct {
	name  string
	apply func(*evidence.Record) (managerDecision, bool)
}{
	{"manifest-field", managerFromField},
	{"single-lockfile", managerFromSingleLockfile},
	{"lockfile-tiebreak", managerFromConflictingLockfiles},
	{"default", managerDefault},
}

// managerFromField honors the manifest's packageManager declaration. The
// field always wins, even over a coexisting lockfile of another manager.
func managerFromField(rec *evidence.Record) (managerDecision, bool) {
	name, version, _ := strings.Cut(rec.PackageManagerField, "@")

	switch name {
	case "npm":
		return managerDecision{NPM, Certain, nil}, true
	case "pnpm":
		return managerDecision{Pnpm, Certain, nil}, true
	case "bun":
		return managerDecision{Bun, Certain, nil}, true
	case "yarn":
		if isBerryVersion(version) {
			return managerDecision{YarnBerry, Certain, nil}, true
		}
		return managerDecision{YarnClassic, Certain, nil}, true
	}
	return managerDecision{}, false
}

// isBerryVersion reports whether a declared yarn version is berry
// (major >= 2). An unparsable or missing version counts as classic.
func isBerryVersion(version string) bool {
	v := "v" + strings.TrimPrefix(version, "v")
	if !semver.IsValid(v) {
		return false
	}
	return semver.Compare(semver.Major(v), "v2") >= 0
}

func managerFromSingleLockfile(rec *evidence.Record) (managerDecision, bool) {
	if len(rec.LockFiles) != 1 {
		return managerDecision{}, false
	}

	kind := rec.LockFiles[0]
	if kind == evidence.LockfileYarn {
		if rec.YarnBerryMarkers {
			return managerDecision{YarnBerry, Certain, nil}, true
		}
		return managerDecision{YarnClassic, Certain, nil}, true
	}
	return managerDecision{lockfileManagers[kind], Certain, nil}, true
}

func managerFromConflictingLockfiles(rec *evidence.Record) (managerDecision, bool) {
	if len(rec.LockFiles) < 2 {
		return managerDecision{}, false
	}

	names := make([]string, len(rec.LockFiles))
	for i, kind := range rec.LockFiles {
		names[i] = string(kind)
	}

	var winner PackageManager
	for _, kind := range lockfileTieBreak {
		if !rec.HasLockfile(kind) {
			continue
		}
		if kind == evidence.LockfileYarn {
			winner = YarnClassic
			if rec.YarnBerryMarkers {
				winner = YarnBerry
			}
		} else {
			winner = lockfileManagers[kind]
		}
		break
	}

	diag := Diagnostic{
		Severity: SeverityWarning,
		Code:     CodeConflictingLockfiles,
		Message:  fmt.Sprintf("multiple lockfiles found (%s); using %s", strings.Join(names, ", "), winner),
	}
	return managerDecision{winner, Inferred, []Diagnostic{diag}}, true
}

func managerDefault(rec *evidence.Record) (managerDecision, bool) {
	diag := Diagnostic{
		Severity: SeverityWarning,
		Code:     CodeNoLockfile,
		Message:  "no lockfile or packageManager field found; assuming npm",
	}
	return managerDecision{NPM, DefaultFallback, []Diagnostic{diag}}, true
}
