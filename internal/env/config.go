package env

var Config struct {
	Output string
}

type VersionInfo struct {
	BuildVersion string
	Commit       string
}

// Set with -ldflags "-X b64ctl/internal/env.BuildVersion=... -X b64ctl/internal/env.Commit=..."
// or by the file written by scripts/codegen/version.
var BuildVersion string
var Commit string
