// Package main prints a signed member token for local sign in testing.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/louisbranch/mindmap.space/internal/platform/config"
	"github.com/louisbranch/mindmap.space/internal/tools/membertoken"
)

func main() {
	cfg, err := membertoken.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := membertoken.Run(cfg, os.Stdout, time.Now()); err != nil {
		config.Exitf("mint token: %v", err)
	}
}
