// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package native

import (
	"context"
	"encoding/binary"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/orbs-network/call-tracker-go/services/handlers"
	"github.com/orbs-network/call-tracker-go/services/processor/native/types"
	"github.com/orbs-network/call-tracker-go/services/processor/sdk"
	"github.com/pkg/errors"
)

type stateSdk struct {
	handler         handlers.ContractSdkCallHandler
	permissionScope protocol.ExecutionPermissionScope
}

func (s *stateSdk) ReadBytesByKey(ctx types.Context, key string) ([]byte, error) {
	output, err := s.handler.HandleSdkCall(context.TODO(), &handlers.HandleSdkCallInput{
		ContextId:     primitives.ExecutionContextId(ctx),
		OperationName: sdk.SDK_OPERATION_NAME_STATE,
		MethodName:    sdk.METHOD_STATE_READ,
		InputArguments: protocol.ArgumentArray{
			{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: key},
		},
		PermissionScope: s.permissionScope,
	})
	if err != nil {
		return nil, err
	}
	if len(output.OutputArguments) != 1 || !output.OutputArguments[0].IsTypeBytesValue() {
		return nil, errors.Errorf("read %s returned corrupt output value", sdk.SDK_OPERATION_NAME_STATE)
	}
	return output.OutputArguments[0].BytesValue, nil
}

func (s *stateSdk) ReadStringByKey(ctx types.Context, key string) (string, error) {
	bytes, err := s.ReadBytesByKey(ctx, key)
	return string(bytes), err
}

func (s *stateSdk) ReadUint64ByKey(ctx types.Context, key string) (uint64, error) {
	bytes, err := s.ReadBytesByKey(ctx, key)
	if err != nil || len(bytes) == 0 {
		return 0, err
	}
	if len(bytes) != 8 {
		return 0, errors.Errorf("value of key %s is %d bytes long and is not a uint64", key, len(bytes))
	}
	return binary.LittleEndian.Uint64(bytes), nil
}

func (s *stateSdk) ReadUint32ByKey(ctx types.Context, key string) (uint32, error) {
	bytes, err := s.ReadBytesByKey(ctx, key)
	if err != nil || len(bytes) == 0 {
		return 0, err
	}
	if len(bytes) != 4 {
		return 0, errors.Errorf("value of key %s is %d bytes long and is not a uint32", key, len(bytes))
	}
	return binary.LittleEndian.Uint32(bytes), nil
}

func (s *stateSdk) WriteBytesByKey(ctx types.Context, key string, value []byte) error {
	_, err := s.handler.HandleSdkCall(context.TODO(), &handlers.HandleSdkCallInput{
		ContextId:     primitives.ExecutionContextId(ctx),
		OperationName: sdk.SDK_OPERATION_NAME_STATE,
		MethodName:    sdk.METHOD_STATE_WRITE,
		InputArguments: protocol.ArgumentArray{
			{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: key},
			{Type: protocol.ARGUMENT_TYPE_BYTES_VALUE, BytesValue: value},
		},
		PermissionScope: s.permissionScope,
	})
	return err
}

func (s *stateSdk) WriteStringByKey(ctx types.Context, key string, value string) error {
	return s.WriteBytesByKey(ctx, key, []byte(value))
}

func (s *stateSdk) WriteUint64ByKey(ctx types.Context, key string, value uint64) error {
	bytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(bytes, value)
	return s.WriteBytesByKey(ctx, key, bytes)
}

func (s *stateSdk) WriteUint32ByKey(ctx types.Context, key string, value uint32) error {
	bytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(bytes, value)
	return s.WriteBytesByKey(ctx, key, bytes)
}

func (s *stateSdk) ClearByKey(ctx types.Context, key string) error {
	return s.WriteBytesByKey(ctx, key, []byte{})
}
