package rapidutf

import (
	"runtime/debug"
)

const modulePath = "github.com/mnightingale/rapidutf"

// Version returns the module version recorded in the running binary, or
// "(devel)" for a build from a working tree.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(devel)"
	}
	return moduleVersion(info)
}

func moduleVersion(info *debug.BuildInfo) string {
	version := ""
	if info.Main.Path == modulePath {
		version = info.Main.Version
	}
	for _, dep := range info.Deps {
		if dep.Path != modulePath {
			continue
		}
		version = dep.Version
		if dep.Replace != nil {
			version = dep.Replace.Version
		}
	}
	if version == "" {
		return "(devel)"
	}
	return version
}

// Kernel returns the name of the implementation being used.
func Kernel() string {
	return ActiveImplementation().Name()
}
