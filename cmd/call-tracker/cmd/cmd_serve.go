// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package cmd

import (
	"context"
	"time"

	"github.com/orbs-network/call-tracker-go/bootstrap"
	"github.com/orbs-network/call-tracker-go/config"
	"github.com/orbs-network/call-tracker-go/instrumentation"
	"github.com/orbs-network/call-tracker-go/synchronization"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	configFiles     config.FilesPaths
	dotEnvFiles     []string
	pathToLog       string
	silentLog       bool
	humanReadable   bool
	shutdownTimeout time.Duration
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}
	c := &cobra.Command{
		Use:   "serve",
		Short: "Run a node serving the CallTracker contract over http.",
		Long:  "Run a node serving the CallTracker contract over http. Config is read from json files, then .env files, then CALLTRACKER_* environment variables.",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return serve(opts)
		},
	}
	c.Flags().Var(&opts.configFiles, "config", "path/to/config.json, may be repeated")
	c.Flags().StringSliceVar(&opts.dotEnvFiles, "env-file", nil, "path/to/.env, defaults to ./.env when present")
	c.Flags().StringVar(&opts.pathToLog, "log", "", "path/to/node.log")
	c.Flags().BoolVar(&opts.silentLog, "silent", false, "disable output to stdout")
	c.Flags().BoolVar(&opts.humanReadable, "human-readable", false, "log in human readable format instead of json")
	c.Flags().DurationVar(&opts.shutdownTimeout, "shutdown-timeout", 10*time.Second, "time allowed for a graceful shutdown")
	return c
}

func serve(opts *serveOptions) error {
	logger := instrumentation.GetBootstrapCrashLogger()

	node, logger, err := startNode(opts, logger)
	if err != nil {
		logger.Error("failed to start node", log.Error(err))
		return err
	}

	synchronization.NewShutdownListener(logger, node, opts.shutdownTimeout).ListenToOSShutdownSignal()
	node.WaitUntilShutdown(context.Background())
	return nil
}

// startNode turns a bootstrap panic into an error, the returned logger is the best one available at that point
func startNode(opts *serveOptions, crashLogger log.Logger) (node bootstrap.Node, logger log.Logger, err error) {
	logger = crashLogger
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("unexpected error during bootstrap: %v", r)
		}
	}()

	cfg, err := config.Load(opts.configFiles, opts.dotEnvFiles...)
	if err != nil {
		return nil, logger, errors.Wrap(err, "error reading configuration")
	}

	logger = instrumentation.GetLogger(opts.pathToLog, opts.silentLog, opts.humanReadable, cfg)
	logger.Info("starting node", log.String("version", config.GetVersion().String()), log.String("http-address", cfg.HttpAddress()))

	node, err = bootstrap.NewNode(cfg, logger)
	return node, logger, err
}
