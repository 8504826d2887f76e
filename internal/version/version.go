/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package version

import "fmt"

// These are set at build time via -ldflags, e.g.:
//
//	go build -ldflags="-X 'chardetect/internal/version.Version=v1.2.3'"
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// GetAbout returns a short multi-line description of the running binary,
// used by the `about` command. --version prints Version alone.
func GetAbout() string {
	return fmt.Sprintf(
		"chardetect %s\n  commit:  %s\n  built:   %s\n  a staged byte-level character encoding detector",
		Version, Commit, BuildDate,
	)
}
