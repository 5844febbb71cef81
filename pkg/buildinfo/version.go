// Package buildinfo reports the version of this module for the default
// User-Agent.
//
// A binary that vendors a fork can pin the version via ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/modrinth-go/pkg/buildinfo.Version=v1.0.0"
//
// Otherwise [ModuleVersion] falls back to the version recorded in the
// importing binary's build info.
package buildinfo

import "runtime/debug"

// ModulePath is the import path of this module.
const ModulePath = "github.com/matzehuels/modrinth-go"

// Version is the semantic version (e.g., "v1.2.3").
// Set via ldflags: -X github.com/matzehuels/modrinth-go/pkg/buildinfo.Version=...
var Version = "dev"

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// ModuleVersion returns Version when it was set at build time, otherwise the
// version of this module listed in the running binary's dependencies.
// It returns "dev" when neither is available.
func ModuleVersion() string {
	if Version != "dev" {
		return Version
	}
	info, ok := readBuildInfo()
	if !ok {
		return Version
	}
	if info.Main.Path == ModulePath && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, dep := range info.Deps {
		if dep.Path != ModulePath {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		if dep.Version != "" {
			return dep.Version
		}
	}
	return Version
}
