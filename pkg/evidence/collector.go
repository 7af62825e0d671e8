package evidence

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// lockfileNames maps lockfile filenames to their kind, in a fixed probe
// order so Record contents are deterministic.
var lockfileNames = []struct {
	name string
	kind LockfileKind
}{
	{"package-lock.json", LockfileNPM},
	{"yarn.lock", LockfileYarn},
	{"pnpm-lock.yaml", LockfilePnpm},
	{"bun.lockb", LockfileBun},
	{"bun.lock", LockfileBun},
}

// frameworkConfigNames lists the framework config filenames the collector
// recognizes.
var frameworkConfigNames = []string{
	"next.config.js", "next.config.ts", "next.config.mjs",
	"nuxt.config.js", "nuxt.config.ts",
	"astro.config.mjs", "astro.config.js", "astro.config.ts",
	"gatsby-config.js", "gatsby-config.ts",
	"docusaurus.config.js", "docusaurus.config.ts",
	".eleventy.js", "eleventy.config.js",
	"svelte.config.js",
	"angular.json",
	"vue.config.js",
	"vite.config.js", "vite.config.ts",
	"webpack.config.js",
}

// outputDirNames are the conventional build-output directories probed at
// the root.
var outputDirNames = []string{"dist", "build", "out", "public", "_site"}

// packageJSON is the subset of the manifest the collector extracts.
type packageJSON struct {
	Name           string            `json:"name"`
	Version        string            `json:"version"`
	PackageManager string            `json:"packageManager"`
	Scripts        map[string]string `json:"scripts"`
}

// Collect probes a project root for the facts in Record. It returns an
// *AccessError when the root itself is missing or unreadable; every other
// anomaly degrades the record instead of failing.
func Collect(root string) (*Record, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &AccessError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &AccessError{Path: root, Err: errors.New("not a directory")}
	}

	rec := &Record{}

	seen := map[LockfileKind]bool{}
	for _, lf := range lockfileNames {
		if fileExists(root, lf.name) && !seen[lf.kind] {
			seen[lf.kind] = true
			rec.LockFiles = append(rec.LockFiles, lf.kind)
		}
	}

	rec.YarnBerryMarkers = hasBerryMarkers(root)
	collectManifest(root, rec)

	for _, name := range frameworkConfigNames {
		if fileExists(root, name) {
			rec.FrameworkConfigs = append(rec.FrameworkConfigs, name)
		}
	}

	rec.WorkflowFiles = countWorkflowFiles(root)
	rec.CNAMEPresent = fileExists(root, "CNAME")
	rec.GitRepoPresent = dirExists(root, ".git")
	rec.GitignorePresent = fileExists(root, ".gitignore")
	if rec.GitignorePresent {
		rec.IgnoresDependencyDir = gitignoreCovers(root, "node_modules")
	}

	for _, name := range outputDirNames {
		if dirExists(root, name) {
			rec.OutputDirs = append(rec.OutputDirs, name)
		}
	}

	return rec, nil
}

func fileExists(root, rel string) bool {
	info, err := os.Stat(filepath.Join(root, rel))
	return err == nil && !info.IsDir()
}

func dirExists(root, rel string) bool {
	info, err := os.Stat(filepath.Join(root, rel))
	return err == nil && info.IsDir()
}

// hasBerryMarkers reports whether the project carries yarn berry signals:
// a .yarn/ directory or a .yarnrc.yml that parses as YAML. An unparsable
// .yarnrc.yml does not count as a marker.
func hasBerryMarkers(root string) bool {
	if dirExists(root, ".yarn") {
		return true
	}
	data, err := os.ReadFile(filepath.Join(root, ".yarnrc.yml"))
	if err != nil {
		return false
	}
	var rc map[string]any
	return yaml.Unmarshal(data, &rc) == nil
}

func collectManifest(root string, rec *Record) {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return
	}
	rec.ManifestPresent = true

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		rec.ManifestParseFailed = true
		return
	}

	rec.ManifestName = pkg.Name
	rec.ManifestVersion = pkg.Version
	rec.PackageManagerField = pkg.PackageManager
	_, rec.BuildScriptPresent = pkg.Scripts["build"]
}

// countWorkflowFiles lists .github/workflows once, non-recursively, and
// counts its YAML entries.
func countWorkflowFiles(root string) int {
	entries, err := os.ReadDir(filepath.Join(root, ".github", "workflows"))
	if err != nil {
		return 0
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext == ".yml" || ext == ".yaml" {
			count++
		}
	}
	return count
}

// gitignoreCovers reports whether .gitignore has an entry for the given
// directory name, tolerating leading slashes, trailing slashes, and a
// leading "**/" glob.
func gitignoreCovers(root, dir string) bool {
	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return false
	}

	for _, line := range strings.Split(string(data), "\n") {
		entry := strings.TrimSpace(line)
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}
		entry = strings.TrimPrefix(entry, "**/")
		entry = strings.Trim(entry, "/")
		if entry == dir {
			return true
		}
	}
	return false
}
