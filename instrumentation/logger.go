// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package instrumentation

import (
	"io"
	"os"

	"github.com/orbs-network/call-tracker-go/config"
	"github.com/orbs-network/scribe/log"
)

// CheckpointTag marks the lines that trace a request through the node. They survive the reduced log.
var CheckpointTag = log.String("flow", "checkpoint")

func GetBootstrapCrashLogger() log.Logger {
	return log.GetLogger().WithOutput(
		log.NewFormattingOutput(os.Stdout, log.NewHumanReadableFormatter()),
		log.NewFormattingOutput(os.Stderr, log.NewHumanReadableFormatter()),
	)
}

// GetLogger builds the node logger. Lines go to stdout unless silent, and to path when it is set.
func GetLogger(path string, silent bool, humanReadable bool, cfg config.LoggerConfig) log.Logger {
	outputs := make([]log.Output, 0, 2)

	if !silent {
		outputs = append(outputs, log.NewFormattingOutput(os.Stdout, formatter(humanReadable)))
	}

	if path != "" {
		logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			panic(err)
		}
		outputs = append(outputs, log.NewFormattingOutput(log.NewTruncatingFileWriter(logFile), log.NewJsonFormatter()))
	}

	return withFilters(log.GetLogger().WithOutput(outputs...), cfg)
}

// GetLoggerWithWriter is GetLogger for an arbitrary sink.
func GetLoggerWithWriter(w io.Writer, humanReadable bool, cfg config.LoggerConfig) log.Logger {
	return withFilters(log.GetLogger().WithOutput(log.NewFormattingOutput(w, formatter(humanReadable))), cfg)
}

func formatter(humanReadable bool) log.LogFormatter {
	if humanReadable {
		return log.NewHumanReadableFormatter()
	}
	return log.NewJsonFormatter()
}

func withFilters(logger log.Logger, cfg config.LoggerConfig) log.Logger {
	conditionalFilter := log.NewConditionalFilter(false, nil)
	if !cfg.LoggerFullLog() {
		conditionalFilter = log.NewConditionalFilter(true, log.Or(log.OnlyErrors(), log.MatchField(CheckpointTag)))
	}
	return logger.WithFilters(conditionalFilter)
}
