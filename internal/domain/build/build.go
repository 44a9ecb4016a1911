// Package build provides domain entities for build information.
package build

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the repository URL.
func RepoURL() string {
	return "https://github.com/bnema/urlbar"
}

// Short returns "version (commit)", or just the version when the commit is unknown.
func (i Info) Short() string {
	if i.Commit == "" || i.Commit == "unknown" {
		return i.Version
	}
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return i.Version + " (" + commit + ")"
}
