// Package version reports which build of relay is running. The commit
// comes from -ldflags when set (container builds without .git), from
// the module's VCS stamp otherwise, and falls back to "dev".
package version

import "runtime/debug"

// AppName prefixes version strings in logs and user agents.
const AppName = "relay"

// commitLen is how much of the revision we keep.
const commitLen = 8

// gitCommitOverride is injected with
// -ldflags "-X .../pkg/version.gitCommitOverride=<sha>".
var gitCommitOverride string

// GitCommit is the short commit hash of this build, or "dev" when no
// revision is available (go test, builds outside a checkout).
var GitCommit = resolveCommit()

func resolveCommit() string {
	if gitCommitOverride != "" {
		return shorten(gitCommitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shorten(s.Value)
			}
		}
	}
	return "dev"
}

func shorten(rev string) string {
	if len(rev) > commitLen {
		return rev[:commitLen]
	}
	return rev
}

// Full returns "relay/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}
