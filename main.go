// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tfctl/kdiff/internal/command"
	"github.com/tfctl/kdiff/internal/loader"
	"github.com/tfctl/kdiff/internal/log"
	"github.com/tfctl/kdiff/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// errorMessage turns an error from the app into the line logged for the
// operator.
func errorMessage(err error) string {
	if errors.Is(err, command.ErrUsage) {
		return err.Error()
	}

	var lerr *loader.Error
	if errors.As(err, &lerr) {
		switch {
		case errors.Is(err, loader.ErrNotFound):
			return fmt.Sprintf("File not found: %s. Please check the file path and try again.", lerr.Location)
		case errors.Is(err, loader.ErrParse):
			return fmt.Sprintf("Failed to parse YAML file %s: %v", lerr.Location, lerr.Err)
		}
	}

	return fmt.Sprintf("An error occurred: %v", err)
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		log.Errorf("%s", errorMessage(err))
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		log.Errorf("%s", errorMessage(err))
		log.Debugf("app run err: err=%v", err)
		return 1
	}

	return 0
}

func realMain() int {
	log.Init(log.ConfigFromEnv(os.Getenv))

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	return initAndRunApp(args)
}
