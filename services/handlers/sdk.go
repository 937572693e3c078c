// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package handlers

import (
	"context"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
)

type HandleSdkCallInput struct {
	ContextId       primitives.ExecutionContextId
	OperationName   string
	MethodName      primitives.MethodName
	InputArguments  protocol.ArgumentArray
	PermissionScope protocol.ExecutionPermissionScope
}

type HandleSdkCallOutput struct {
	OutputArguments protocol.ArgumentArray
}

// ContractSdkCallHandler is implemented by the virtual machine and serves contract sdk calls made during execution.
type ContractSdkCallHandler interface {
	HandleSdkCall(ctx context.Context, input *HandleSdkCallInput) (*HandleSdkCallOutput, error)
}
