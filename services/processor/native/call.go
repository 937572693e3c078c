// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package native

import (
	"reflect"

	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/pkg/errors"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// processMethodCall runs the method implementation with the bound values (receiver, execution context) followed by the call arguments.
func processMethodCall(methodInstance interface{}, args protocol.ArgumentArray, functionNameForErrors string, boundValues ...reflect.Value) (contractOutputArgs protocol.ArgumentArray, contractOutputErr error, err error) {

	defer func() {
		if r := recover(); r != nil {
			contractOutputErr = errors.Errorf("%s", r)
			contractOutputArgs = createMethodOutputArgsWithString(contractOutputErr.Error())
		}
	}()

	// verify input args
	inValues, err := prepareMethodInputArgsForCall(methodInstance, args, functionNameForErrors, boundValues...)
	if err != nil {
		return nil, nil, err
	}

	// execute the call
	outValues := reflect.ValueOf(methodInstance).Call(inValues)

	// create output args
	contractOutputArgs, contractOutputErr, err = createMethodOutputArgs(outValues, functionNameForErrors)
	if err != nil {
		return nil, nil, err
	}
	if contractOutputErr != nil {
		contractOutputArgs = createMethodOutputArgsWithString(contractOutputErr.Error())
	}

	// done
	return contractOutputArgs, contractOutputErr, nil
}

func prepareMethodInputArgsForCall(methodInstance interface{}, args protocol.ArgumentArray, functionNameForErrors string, boundValues ...reflect.Value) ([]reflect.Value, error) {
	methodValue := reflect.ValueOf(methodInstance)
	if methodValue.Kind() != reflect.Func {
		return nil, errors.Errorf("method '%s' is not a function", functionNameForErrors)
	}
	methodType := methodValue.Type()
	if methodType.IsVariadic() {
		return nil, errors.Errorf("method '%s' is variadic which is not supported", functionNameForErrors)
	}

	if methodType.NumIn() < len(boundValues) {
		return nil, errors.Errorf("method '%s' takes %d args but %d are bound by the processor", functionNameForErrors, methodType.NumIn(), len(boundValues))
	}
	res := append([]reflect.Value{}, boundValues...)

	expected := methodType.NumIn() - len(boundValues)
	if len(args) != expected {
		return nil, errors.Errorf("method '%s' takes %d args but received %d", functionNameForErrors, expected, len(args))
	}

	for i, arg := range args {
		in := methodType.In(i + len(boundValues))

		// translate argument type
		switch in.Kind() {
		case reflect.Uint32:
			if !arg.IsTypeUint32Value() {
				return nil, errors.Errorf("method '%s' expects arg %d to be uint32 but it has %s", functionNameForErrors, i, arg.StringType())
			}
			res = append(res, reflect.ValueOf(arg.Uint32Value).Convert(in))
		case reflect.Uint64:
			if !arg.IsTypeUint64Value() {
				return nil, errors.Errorf("method '%s' expects arg %d to be uint64 but it has %s", functionNameForErrors, i, arg.StringType())
			}
			res = append(res, reflect.ValueOf(arg.Uint64Value).Convert(in))
		case reflect.String:
			if !arg.IsTypeStringValue() {
				return nil, errors.Errorf("method '%s' expects arg %d to be string but it has %s", functionNameForErrors, i, arg.StringType())
			}
			res = append(res, reflect.ValueOf(arg.StringValue).Convert(in))
		case reflect.Slice:
			if in.Elem().Kind() != reflect.Uint8 {
				return nil, errors.Errorf("method '%s' arg %d slice type is not byte", functionNameForErrors, i)
			}
			if !arg.IsTypeBytesValue() {
				return nil, errors.Errorf("method '%s' expects arg %d to be bytes but it has %s", functionNameForErrors, i, arg.StringType())
			}
			res = append(res, reflect.ValueOf(arg.BytesValue).Convert(in))
		default:
			return nil, errors.Errorf("method '%s' expects arg %d to be a known type but it has %s", functionNameForErrors, i, arg.StringType())
		}
	}

	return res, nil
}

// createMethodOutputArgs converts return values, a trailing error return is the contract error.
func createMethodOutputArgs(outValues []reflect.Value, functionNameForErrors string) (protocol.ArgumentArray, error, error) {
	var contractErr error
	if n := len(outValues); n > 0 && outValues[n-1].Type() == errorType {
		if !outValues[n-1].IsNil() {
			contractErr = outValues[n-1].Interface().(error)
		}
		outValues = outValues[:n-1]
	}

	res := protocol.ArgumentArray{}
	for i, arg := range outValues {
		switch arg.Kind() {
		case reflect.Uint32:
			res = append(res, &protocol.Argument{Type: protocol.ARGUMENT_TYPE_UINT_32_VALUE, Uint32Value: uint32(arg.Uint())})
		case reflect.Uint64:
			res = append(res, &protocol.Argument{Type: protocol.ARGUMENT_TYPE_UINT_64_VALUE, Uint64Value: arg.Uint()})
		case reflect.String:
			res = append(res, &protocol.Argument{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: arg.String()})
		case reflect.Slice:
			if arg.Type().Elem().Kind() != reflect.Uint8 {
				return nil, nil, errors.Errorf("method '%s' output arg %d slice type is not byte", functionNameForErrors, i)
			}
			res = append(res, &protocol.Argument{Type: protocol.ARGUMENT_TYPE_BYTES_VALUE, BytesValue: arg.Bytes()})
		default:
			return nil, nil, errors.Errorf("method '%s' output arg %d is of unsupported type", functionNameForErrors, i)
		}
	}
	return res, contractErr, nil
}

func createMethodOutputArgsWithString(str string) protocol.ArgumentArray {
	return protocol.ArgumentArray{
		{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: str},
	}
}
