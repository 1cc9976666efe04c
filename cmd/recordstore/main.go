// Package main runs the record store command.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/suparena/recordstore"
	"github.com/suparena/recordstore/config"
	recordstorecmd "github.com/suparena/recordstore/internal/cmd/recordstore"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	envFile     = flag.String("env-file", ".env", "Optional dotenv file loaded before the environment is parsed")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		fmt.Println(recordstore.GetVersionInfo())
		os.Exit(0)
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		config.Exitf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := recordstorecmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("recordstore: %v", err)
	}
}
