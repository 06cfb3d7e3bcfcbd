package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/courses-manager/internal/config"
	xlog "github.com/handiism/courses-manager/internal/log"
	"github.com/handiism/courses-manager/internal/tui"
)

func main() {
	var (
		dirFlag    = flag.String("dir", "", "Working directory to search for config files")
		configFlag = flag.String("config", "", "Path to config file")
	)
	flag.Parse()

	// Warnings on stderr would draw over the alt screen.
	xlog.Configure(xlog.Config{Level: tui.LogLevel(os.Getenv("LOG_LEVEL"))})

	if err := tui.Run(config.NewStore(*dirFlag), *configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
