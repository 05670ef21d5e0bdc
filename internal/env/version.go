package env

import (
	"runtime/debug"
)

func GetBuildVersion() (versionInfo VersionInfo) {
	versionInfo.BuildVersion = BuildVersion
	versionInfo.Commit = Commit

	if info, ok := debug.ReadBuildInfo(); ok {
		if versionInfo.BuildVersion == "" && info.Main.Version != "(devel)" {
			versionInfo.BuildVersion = info.Main.Version
		}
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && versionInfo.Commit == "" {
				versionInfo.Commit = setting.Value
			}
		}
	}

	if versionInfo.BuildVersion == "" {
		versionInfo.BuildVersion = "dev"
	}
	if versionInfo.Commit == "" {
		versionInfo.Commit = "unknown"
	}
	return
}
