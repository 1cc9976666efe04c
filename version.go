/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package recordstore

import (
	"fmt"
	"runtime"
)

// Version information set by build flags
var (
	// Version is the semantic version of the record store
	Version = "0.1.0"

	// GitCommit is the git commit hash (set by build flags)
	GitCommit = "unknown"

	// BuildDate is the build date (set by build flags)
	BuildDate = "unknown"

	// GoVersion is the Go version used to build; it falls back to the running
	// toolchain when the build does not set it
	GoVersion = ""
)

// ModulePath identifies the module in version output
const ModulePath = "github.com/suparena/recordstore"

// VersionInfo contains version information
type VersionInfo struct {
	Module    string `json:"module"`
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// GetVersionInfo returns the version information
func GetVersionInfo() VersionInfo {
	goVersion := GoVersion
	if goVersion == "" {
		goVersion = runtime.Version()
	}
	return VersionInfo{
		Module:    ModulePath,
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: goVersion,
	}
}

// String renders the version block printed by the -version flag.
func (v VersionInfo) String() string {
	return fmt.Sprintf("%s %s\nGit commit: %s\nBuild date: %s\nGo version: %s",
		v.Module, v.Version, v.GitCommit, v.BuildDate, v.GoVersion)
}