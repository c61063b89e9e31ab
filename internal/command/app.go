// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"

	apexlog "github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/kdiff/internal/config"
	"github.com/tfctl/kdiff/internal/log"
	"github.com/tfctl/kdiff/internal/meta"
)

// InitApp builds the kdiff root command. The logging setup is read from the
// environment again here so the output default tracks LOG_FORMAT.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("no config file loaded: %v", err)
	}

	m := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
		LogCfg:  log.ConfigFromEnv(os.Getenv),
		Logger:  apexlog.Log,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
	}

	app := &cli.Command{
		Name:      "kdiff",
		Usage:     "Compare two Kubernetes manifests",
		ArgsUsage: "<current> <desired>",
		UsageText: "kdiff [flags] <current.yaml|-|s3://bucket/key> <desired.yaml|-|s3://bucket/key>",
		Flags:     NewFlags(cfg.Source, m.LogCfg),
		Action:    diffAction,
		Metadata: map[string]any{
			"meta": m,
		},
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}
