// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/kdiff/internal/log"
	"github.com/tfctl/kdiff/internal/output"
)

// DefaultCheck is the set of top-level fields compared by the mismatch check.
var DefaultCheck = []string{"kind", "apiVersion"}

// NewFlags builds the root command flags. Values resolve flag, then
// environment, then the config file at cfgFile when one was found. The
// output format defaults to the LOG_FORMAT in lc.
func NewFlags(cfgFile string, lc log.Config) []cli.Flag {
	defaultOutput := output.FormatText
	if lc.IsJSON() {
		defaultOutput = output.FormatJSON
	}

	outputFlag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format (text, json, yaml or delta)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("KDIFF_OUTPUT"),
		),
		Value: defaultOutput,
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}

	colorFlag := &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored output",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("KDIFF_COLOR"),
		),
		Value: term.IsTerminal(int(os.Stdout.Fd())),
	}

	regionFlag := &cli.StringFlag{
		Name:  "s3-region",
		Usage: "AWS region for s3:// documents. Defaults to the AWS config chain",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("KDIFF_S3_REGION"),
		),
	}

	profileFlag := &cli.StringFlag{
		Name:  "s3-profile",
		Usage: "AWS shared config profile for s3:// documents",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("KDIFF_S3_PROFILE"),
		),
	}

	if cfgFile != "" {
		withConfigSource(&outputFlag.Sources, "output", cfgFile)
		withConfigSource(&colorFlag.Sources, "color", cfgFile)
		withConfigSource(&regionFlag.Sources, "s3.region", cfgFile)
		withConfigSource(&profileFlag.Sources, "s3.profile", cfgFile)
	}

	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "check",
			Usage: "top-level fields that should match between the documents",
			Value: DefaultCheck,
		},
		colorFlag,
		&cli.StringSliceFlag{
			Name:    "identity",
			Aliases: []string{"i"},
			Usage:   "identity key for a list as path=key, e.g. containers[*].ports=containerPort",
			Validator: func(value []string) error {
				return FlagValidators(value, IdentityValidator)
			},
		},
		&cli.StringSliceFlag{
			Name:  "ignore",
			Usage: "paths to leave out of the comparison, e.g. status or metadata.resourceVersion",
		},
		outputFlag,
		profileFlag,
		regionFlag,
		&cli.BoolFlag{
			Name:        "version",
			Aliases:     []string{"v"},
			Usage:       "kdiff version info",
			HideDefault: true,
		},
	}
}

// withConfigSource appends the config file value at key to a flag's source
// chain.
func withConfigSource(chain *cli.ValueSourceChain, key string, path string) {
	chain.Chain = append(chain.Chain, yaml.YAML(key, altsrc.StringSourcer(path)))
}
