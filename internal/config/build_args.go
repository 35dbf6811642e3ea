package config

import "fmt"

// ModuleName is the name of the go module as specified in go.mod, injected at build time.
var ModuleName = "build.local/misses/ldflags"

// Commit is the git commit hash the binary was built from, injected at build time.
var Commit = "< 40 chars git commit hash via ldflags >"

// BuildDate is the RFC3339 timestamp of the build, injected at build time.
var BuildDate = "1970-01-01T00:00:00+00:00"

// GetFormattedBuildArgs returns "<ModuleName> @ <Commit> (<BuildDate>)"
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
