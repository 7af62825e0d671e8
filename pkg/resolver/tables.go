package resolver

import "siteplan/pkg/evidence"

// Named setup actions. The downstream CI layer maps these to concrete
// workflow steps.
const (
	StepEnableCorepack = "enable-corepack"
	StepInstallPnpm    = "install-pnpm-cli"
	StepInstallBun     = "install-bun-cli"
)

// managerCommands holds the fixed install/cache/setup parameters for one
// package manager.
type managerCommands struct {
	Install    string
	RunScript  string
	CacheKey   string
	CachePaths []string
	SetupSteps []string
}

// commandTable maps each package manager to its commands. Initialized once
// at startup and never written afterwards.
var commandTable = map[PackageManager]managerCommands{
	NPM: {
		Install:    "npm ci",
		RunScript:  "npm run",
		CacheKey:   "npm-${{ hashFiles('package-lock.json') }}",
		CachePaths: []string{"~/.npm"},
	},
	YarnClassic: {
		Install:    "yarn install --frozen-lockfile",
		RunScript:  "yarn",
		CacheKey:   "yarn-${{ hashFiles('yarn.lock') }}",
		CachePaths: []string{"~/.cache/yarn"},
	},
	YarnBerry: {
		Install:    "yarn install --immutable",
		RunScript:  "yarn",
		CacheKey:   "yarn-berry-${{ hashFiles('yarn.lock') }}",
		CachePaths: []string{".yarn/cache"},
		SetupSteps: []string{StepEnableCorepack},
	},
	Pnpm: {
		Install:    "pnpm install --frozen-lockfile",
		RunScript:  "pnpm run",
		CacheKey:   "pnpm-${{ hashFiles('pnpm-lock.yaml') }}",
		CachePaths: []string{"~/.local/share/pnpm/store"},
		SetupSteps: []string{StepInstallPnpm},
	},
	Bun: {
		Install:    "bun install --frozen-lockfile",
		RunScript:  "bun run",
		CacheKey:   "bun-${{ hashFiles('bun.lockb', 'bun.lock') }}",
		CachePaths: []string{"~/.bun/install/cache"},
		SetupSteps: []string{StepInstallBun},
	},
}

// lockfileManagers maps a lockfile kind to its manager. Yarn is resolved
// separately since the same lockfile serves classic and berry.
var lockfileManagers = map[evidence.LockfileKind]PackageManager{
	evidence.LockfileNPM:  NPM,
	evidence.LockfilePnpm: Pnpm,
	evidence.LockfileBun:  Bun,
}

// lockfileTieBreak is the fixed order used when several lockfile kinds
// coexist: first present wins.
var lockfileTieBreak = []evidence.LockfileKind{
	evidence.LockfileNPM,
	evidence.LockfilePnpm,
	evidence.LockfileBun,
	evidence.LockfileYarn,
}

// frameworkRule links a framework's config filenames to its hint name and
// its conventional build-output directory.
type frameworkRule struct {
	Name      string
	Configs   []string
	OutputDir string
}

// frameworkRules are ranked: meta-framework configs outrank bundler
// configs, since meta-frameworks usually wrap a bundler. First match wins.
var frameworkRules = []frameworkRule{
	{"Next.js", []string{"next.config.js", "next.config.ts", "next.config.mjs"}, "out"},
	{"Nuxt", []string{"nuxt.config.js", "nuxt.config.ts"}, "dist"},
	{"Astro", []string{"astro.config.mjs", "astro.config.js", "astro.config.ts"}, "dist"},
	{"Gatsby", []string{"gatsby-config.js", "gatsby-config.ts"}, "public"},
	{"Docusaurus", []string{"docusaurus.config.js", "docusaurus.config.ts"}, "build"},
	{"Eleventy", []string{".eleventy.js", "eleventy.config.js"}, "_site"},
	{"SvelteKit", []string{"svelte.config.js"}, "build"},
	{"Angular", []string{"angular.json"}, "dist"},
	{"Vue CLI", []string{"vue.config.js"}, "dist"},
	{"Vite", []string{"vite.config.js", "vite.config.ts"}, "dist"},
	{"webpack", []string{"webpack.config.js"}, "dist"},
}
