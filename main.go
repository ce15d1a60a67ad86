package main

import (
	"runtime/debug"

	"github.com/gigurra/morse/cmd/morse"
)

func main() {
	cmd := morse.Command()
	cmd.Version = appVersion()
	cmd.Run()
}

func appVersion() string {
	bi, hasBuilInfo := debug.ReadBuildInfo()
	if !hasBuilInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
