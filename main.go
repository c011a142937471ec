package main

import (
	"expvar"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gowvp/bbbrooms/internal/app"
	"github.com/gowvp/bbbrooms/internal/conf"
	"github.com/ixugo/goddd/pkg/system"
)

var (
	buildVersion = "0.0.1"
	gitBranch    = "dev"
	gitHash      = "debug"
)

var (
	configPath = flag.String("conf", "configs/config.toml", "config file path")
	debug      = flag.Bool("debug", false, "enable debug log")
)

func main() {
	flag.Parse()
	publish("git_branch", gitBranch)
	publish("git_hash", gitHash)

	path := *configPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(system.Getwd(), path)
	}
	bc, err := conf.SetupConfig(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "setup config:", err)
		os.Exit(1)
	}
	bc.Debug = *debug || bc.Server.Debug
	bc.BuildVersion = buildVersion

	if err := app.Run(&bc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func publish(name, value string) {
	if expvar.Get(name) != nil {
		return
	}
	expvar.NewString(name).Set(value)
}
