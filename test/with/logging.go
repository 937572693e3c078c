// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package with

import (
	"testing"

	"github.com/orbs-network/scribe/log"
)

type LoggingHarness struct {
	Logger     log.Logger
	T          testing.TB
	testOutput *log.TestOutput
}

// AllowErrorsMatching lets error lines matching any of the patterns through, for tests that provoke failures on purpose.
func (h *LoggingHarness) AllowErrorsMatching(patterns ...string) {
	for _, pattern := range patterns {
		h.testOutput.AllowErrorsMatching(pattern)
	}
}

// Logging runs f with a logger tagged with the test name. An error line that was not allowed fails the test.
func Logging(tb testing.TB, f func(harness *LoggingHarness)) {
	testOutput := log.NewTestOutput(tb, log.NewHumanReadableFormatter())
	defer testOutput.TestTerminated()

	h := &LoggingHarness{
		Logger:     log.GetLogger().WithTags(log.String("_test", tb.Name())).WithOutput(testOutput),
		T:          tb,
		testOutput: testOutput,
	}
	f(h)

	if testOutput.HasErrors() {
		tb.Fatal("test failed, encountered unexpected error logs")
	}
}
