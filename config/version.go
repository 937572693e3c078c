// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

// set at build time with -ldflags "-X github.com/orbs-network/call-tracker-go/config.SemanticVersion=..."
var SemanticVersion string
var CommitVersion string

type Version struct {
	Semantic string
	Commit   string
}

func GetVersion() Version {
	return Version{
		Semantic: SemanticVersion,
		Commit:   CommitVersion,
	}
}

func (v Version) String() string {
	semantic := v.Semantic
	if semantic == "" {
		semantic = "development"
	}
	if v.Commit == "" {
		return semantic
	}
	return semantic + " (" + v.Commit + ")"
}
