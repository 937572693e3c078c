// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

type ArgumentType uint16

const (
	ARGUMENT_TYPE_UINT_32_VALUE ArgumentType = 0
	ARGUMENT_TYPE_UINT_64_VALUE ArgumentType = 1
	ARGUMENT_TYPE_STRING_VALUE  ArgumentType = 2
	ARGUMENT_TYPE_BYTES_VALUE   ArgumentType = 3
)

// names used on the json api
const (
	ARGUMENT_TYPE_NAME_UINT32 = "uint32"
	ARGUMENT_TYPE_NAME_UINT64 = "uint64"
	ARGUMENT_TYPE_NAME_STRING = "string"
	ARGUMENT_TYPE_NAME_BYTES  = "bytes"
)

func (t ArgumentType) String() string {
	switch t {
	case ARGUMENT_TYPE_UINT_32_VALUE:
		return ARGUMENT_TYPE_NAME_UINT32
	case ARGUMENT_TYPE_UINT_64_VALUE:
		return ARGUMENT_TYPE_NAME_UINT64
	case ARGUMENT_TYPE_STRING_VALUE:
		return ARGUMENT_TYPE_NAME_STRING
	case ARGUMENT_TYPE_BYTES_VALUE:
		return ARGUMENT_TYPE_NAME_BYTES
	}
	return "unknown"
}

type Argument struct {
	Type        ArgumentType
	Uint32Value uint32
	Uint64Value uint64
	StringValue string
	BytesValue  []byte
}

type ArgumentArray []*Argument

func (a *Argument) IsTypeUint32Value() bool { return a.Type == ARGUMENT_TYPE_UINT_32_VALUE }
func (a *Argument) IsTypeUint64Value() bool { return a.Type == ARGUMENT_TYPE_UINT_64_VALUE }
func (a *Argument) IsTypeStringValue() bool { return a.Type == ARGUMENT_TYPE_STRING_VALUE }
func (a *Argument) IsTypeBytesValue() bool  { return a.Type == ARGUMENT_TYPE_BYTES_VALUE }

func (a *Argument) StringType() string {
	return a.Type.String()
}

func (a *Argument) Value() interface{} {
	switch a.Type {
	case ARGUMENT_TYPE_UINT_32_VALUE:
		return a.Uint32Value
	case ARGUMENT_TYPE_UINT_64_VALUE:
		return a.Uint64Value
	case ARGUMENT_TYPE_STRING_VALUE:
		return a.StringValue
	case ARGUMENT_TYPE_BYTES_VALUE:
		return a.BytesValue
	}
	return nil
}

func (a *Argument) String() string {
	if a.IsTypeBytesValue() {
		return fmt.Sprintf("%s:%s", a.Type, hex.EncodeToString(a.BytesValue))
	}
	return fmt.Sprintf("%s:%v", a.Type, a.Value())
}

func (arr ArgumentArray) String() string {
	res := "["
	for i, arg := range arr {
		if i > 0 {
			res += ", "
		}
		res += arg.String()
	}
	return res + "]"
}

// ArgumentsFromNatives packs plain go values into typed arguments.
func ArgumentsFromNatives(args ...interface{}) (ArgumentArray, error) {
	res := make(ArgumentArray, 0, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case uint32:
			res = append(res, &Argument{Type: ARGUMENT_TYPE_UINT_32_VALUE, Uint32Value: v})
		case uint64:
			res = append(res, &Argument{Type: ARGUMENT_TYPE_UINT_64_VALUE, Uint64Value: v})
		case string:
			res = append(res, &Argument{Type: ARGUMENT_TYPE_STRING_VALUE, StringValue: v})
		case []byte:
			res = append(res, &Argument{Type: ARGUMENT_TYPE_BYTES_VALUE, BytesValue: v})
		default:
			return nil, errors.Errorf("argument %d has unsupported type %T", i, arg)
		}
	}
	return res, nil
}

type jsonArgument struct {
	Type  string
	Value string
}

func (a *Argument) MarshalJSON() ([]byte, error) {
	j := jsonArgument{Type: a.Type.String()}
	switch a.Type {
	case ARGUMENT_TYPE_UINT_32_VALUE:
		j.Value = strconv.FormatUint(uint64(a.Uint32Value), 10)
	case ARGUMENT_TYPE_UINT_64_VALUE:
		j.Value = strconv.FormatUint(a.Uint64Value, 10)
	case ARGUMENT_TYPE_STRING_VALUE:
		j.Value = a.StringValue
	case ARGUMENT_TYPE_BYTES_VALUE:
		j.Value = hex.EncodeToString(a.BytesValue)
	default:
		return nil, errors.Errorf("cannot encode argument of type %d", a.Type)
	}
	return json.Marshal(j)
}

func (a *Argument) UnmarshalJSON(data []byte) error {
	var j jsonArgument
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	switch j.Type {
	case ARGUMENT_TYPE_NAME_UINT32:
		v, err := strconv.ParseUint(j.Value, 10, 32)
		if err != nil {
			return errors.Wrapf(err, "invalid uint32 argument %q", j.Value)
		}
		*a = Argument{Type: ARGUMENT_TYPE_UINT_32_VALUE, Uint32Value: uint32(v)}
	case ARGUMENT_TYPE_NAME_UINT64:
		v, err := strconv.ParseUint(j.Value, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid uint64 argument %q", j.Value)
		}
		*a = Argument{Type: ARGUMENT_TYPE_UINT_64_VALUE, Uint64Value: v}
	case ARGUMENT_TYPE_NAME_STRING:
		*a = Argument{Type: ARGUMENT_TYPE_STRING_VALUE, StringValue: j.Value}
	case ARGUMENT_TYPE_NAME_BYTES:
		v, err := hex.DecodeString(j.Value)
		if err != nil {
			return errors.Wrapf(err, "invalid hex bytes argument %q", j.Value)
		}
		*a = Argument{Type: ARGUMENT_TYPE_BYTES_VALUE, BytesValue: v}
	default:
		return errors.Errorf("unknown argument type %q", j.Type)
	}
	return nil
}
