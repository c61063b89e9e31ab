// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"io"

	"github.com/apex/log"

	"github.com/tfctl/kdiff/internal/config"
	klog "github.com/tfctl/kdiff/internal/log"
)

// Meta contains runtime metadata shared by the command. It carries the CLI
// arguments, loaded configuration, logging setup and the streams documents
// are read from and results written to.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	LogCfg  klog.Config
	Logger  log.Interface
	Stdin   io.Reader
	Stdout  io.Writer
}
