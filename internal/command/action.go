// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/kdiff/internal/cacheutil"
	"github.com/tfctl/kdiff/internal/config"
	"github.com/tfctl/kdiff/internal/differ"
	"github.com/tfctl/kdiff/internal/loader"
	"github.com/tfctl/kdiff/internal/log"
	"github.com/tfctl/kdiff/internal/meta"
	"github.com/tfctl/kdiff/internal/output"
	"github.com/tfctl/kdiff/internal/version"
)

// ErrUsage is returned when the command line is not two document locations.
var ErrUsage = errors.New("usage: kdiff [flags] <current> <desired>")

// diffAction loads both documents, warns about mismatched top-level fields,
// diffs them and renders the result.
func diffAction(ctx context.Context, cmd *cli.Command) error {
	m := cmd.Metadata["meta"].(meta.Meta)

	if cmd.Bool("version") {
		_, err := fmt.Fprintln(m.Stdout, version.Version)
		return err
	}

	args := cmd.Args().Slice()
	log.Tracef("positional args: %v", args)
	if len(args) != 2 {
		return ErrUsage
	}
	if args[0] == loader.StdinLocation && args[1] == loader.StdinLocation {
		return errors.New("only one document can be read from stdin")
	}

	if cacheutil.Enabled() {
		hours, _ := config.GetInt("cache.clean")
		if err := cacheutil.Purge(hours); err != nil {
			m.Logger.WithError(err).Warn("failed to purge cache")
		}
	}

	ld := loader.New(
		loader.WithLogger(m.Logger),
		loader.WithStdin(m.Stdin),
		loader.WithCache(cacheutil.Enabled()),
		loader.WithS3Options(
			loader.WithRegion(cmd.String("s3-region")),
			loader.WithProfile(cmd.String("s3-profile")),
		),
	)

	current, err := ld.Load(ctx, args[0])
	if err != nil {
		return err
	}
	desired, err := ld.Load(ctx, args[1])
	if err != nil {
		return err
	}

	identity, err := identityKeys(cmd)
	if err != nil {
		return err
	}

	d := differ.New(
		differ.WithLogger(m.Logger),
		differ.WithIdentityKeys(identity),
		differ.WithIgnoredPaths(stringSlice(cmd, "ignore")),
	)

	d.CheckMismatches(current, desired, stringSlice(cmd, "check"))

	res := d.Diff(current, desired)
	if res.Empty() {
		m.Logger.Info("No differences found.")
	}

	opts := output.Options{
		Color:   cmd.Bool("color"),
		Current: current,
		Desired: desired,
	}
	if opts.Color {
		opts.Palette = output.ConfiguredPalette()
	}

	return output.Render(m.Stdout, cmd.String("output"), res, opts)
}

// stringSlice returns the flag value, or the config file list under the same
// key when the flag was not given.
func stringSlice(cmd *cli.Command, name string) []string {
	if cmd.IsSet(name) {
		return cmd.StringSlice(name)
	}
	if v, err := config.GetStringSlice(name); err == nil {
		return v
	}
	return cmd.StringSlice(name)
}

// identityKeys merges the config file identity table with --identity flags,
// the flags winning.
func identityKeys(cmd *cli.Command) (map[string]string, error) {
	table := map[string]string{}
	if fromConfig, err := config.GetStringMap("identity"); err == nil {
		maps.Copy(table, fromConfig)
	} else if !errors.Is(err, config.ErrNotFound) {
		return nil, fmt.Errorf("invalid identity config: %w", err)
	}

	for _, spec := range cmd.StringSlice("identity") {
		path, key, err := splitIdentity(spec)
		if err != nil {
			return nil, err
		}
		table[path] = key
	}
	return table, nil
}
