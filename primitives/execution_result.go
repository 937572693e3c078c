// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package primitives

import (
	"encoding/json"
	"github.com/pkg/errors"
)

type ExecutionResult uint16

const (
	EXECUTION_RESULT_RESERVED                    ExecutionResult = 0
	EXECUTION_RESULT_SUCCESS                     ExecutionResult = 1
	EXECUTION_RESULT_ERROR_SMART_CONTRACT        ExecutionResult = 2
	EXECUTION_RESULT_ERROR_INPUT                 ExecutionResult = 3
	EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED ExecutionResult = 4
	EXECUTION_RESULT_ERROR_UNEXPECTED            ExecutionResult = 5
)

var executionResultNames = map[ExecutionResult]string{
	EXECUTION_RESULT_RESERVED:                    "EXECUTION_RESULT_RESERVED",
	EXECUTION_RESULT_SUCCESS:                     "EXECUTION_RESULT_SUCCESS",
	EXECUTION_RESULT_ERROR_SMART_CONTRACT:        "EXECUTION_RESULT_ERROR_SMART_CONTRACT",
	EXECUTION_RESULT_ERROR_INPUT:                 "EXECUTION_RESULT_ERROR_INPUT",
	EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED: "EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED",
	EXECUTION_RESULT_ERROR_UNEXPECTED:            "EXECUTION_RESULT_ERROR_UNEXPECTED",
}

func (r ExecutionResult) String() string {
	if name, ok := executionResultNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

func (r ExecutionResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *ExecutionResult) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for value, n := range executionResultNames {
		if n == name {
			*r = value
			return nil
		}
	}
	return errors.Errorf("unknown execution result %q", name)
}
