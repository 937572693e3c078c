// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import "time"

const EVENTUALLY_TIMEOUT = 500 * time.Millisecond
const CONSISTENTLY_DURATION = 100 * time.Millisecond
const pollInterval = 5 * time.Millisecond

func Eventually(f func() bool) bool {
	return EventuallyWithin(EVENTUALLY_TIMEOUT, f)
}

// EventuallyWithin polls f until it returns true or the timeout passes.
func EventuallyWithin(timeout time.Duration, f func() bool) bool {
	deadline := time.Now().Add(timeout)
	for {
		if f() {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(pollInterval)
	}
}

func Consistently(f func() bool) bool {
	deadline := time.Now().Add(CONSISTENTLY_DURATION)
	for time.Now().Before(deadline) {
		if !f() {
			return false
		}
		time.Sleep(pollInterval)
	}
	return true
}
