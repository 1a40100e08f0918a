// Package version exposes build-time version information.
package version

var (
	// Version is set at build time.
	Version = "dev"
	// Commit is the git commit hash set at build time.
	Commit = "none"
	// Date is the build timestamp set at build time.
	Date = "unknown"
)

// Info holds version information.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
	}
}
