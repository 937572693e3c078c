// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

type ExecutionAccessScope uint16

const (
	ACCESS_SCOPE_RESERVED   ExecutionAccessScope = 0
	ACCESS_SCOPE_READ_ONLY  ExecutionAccessScope = 1
	ACCESS_SCOPE_READ_WRITE ExecutionAccessScope = 2
)

func (s ExecutionAccessScope) String() string {
	switch s {
	case ACCESS_SCOPE_READ_ONLY:
		return "ACCESS_SCOPE_READ_ONLY"
	case ACCESS_SCOPE_READ_WRITE:
		return "ACCESS_SCOPE_READ_WRITE"
	}
	return "ACCESS_SCOPE_RESERVED"
}

type ExecutionPermissionScope uint16

const (
	PERMISSION_SCOPE_RESERVED ExecutionPermissionScope = 0
	PERMISSION_SCOPE_SYSTEM   ExecutionPermissionScope = 1
	PERMISSION_SCOPE_SERVICE  ExecutionPermissionScope = 2
)

func (s ExecutionPermissionScope) String() string {
	switch s {
	case PERMISSION_SCOPE_SYSTEM:
		return "PERMISSION_SCOPE_SYSTEM"
	case PERMISSION_SCOPE_SERVICE:
		return "PERMISSION_SCOPE_SERVICE"
	}
	return "PERMISSION_SCOPE_RESERVED"
}
