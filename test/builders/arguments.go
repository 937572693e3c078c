// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package builders

import "github.com/orbs-network/call-tracker-go/protocol"

/// Test builders for: protocol.ArgumentArray

// ArgumentsArray panics on unsupported types, tests should only pass uint32, uint64, string and []byte.
func ArgumentsArray(args ...interface{}) protocol.ArgumentArray {
	res, err := protocol.ArgumentsFromNatives(args...)
	if err != nil {
		panic(err.Error())
	}
	return res
}
