package main

import (
	"capsim/config"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	root := newRootCmd(os.Stdout)
	root.Version = fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH)
	if err := root.Execute(); err != nil {
		log := config.Logger("error")
		log.Error().Err(err).Msg("capsim")
		os.Exit(1)
	}
}
