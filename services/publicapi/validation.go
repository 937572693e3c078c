// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"strings"

	"github.com/orbs-network/call-tracker-go/protocol"
	"github.com/pkg/errors"
)

var ErrInvalidRequest = errors.New("invalid request")

type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return ErrInvalidRequest.Error() + ": " + e.Reason
}

func (e *InvalidRequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

func validateTransaction(tx *protocol.Transaction) error {
	if tx == nil {
		return &InvalidRequestError{Reason: "transaction is missing"}
	}
	if strings.TrimSpace(tx.Signer.String()) == "" {
		return &InvalidRequestError{Reason: "signer is empty"}
	}
	return validateTarget(tx.ContractName.String(), tx.MethodName.String())
}

// queries may be anonymous
func validateQuery(query *protocol.Query) error {
	if query == nil {
		return &InvalidRequestError{Reason: "query is missing"}
	}
	return validateTarget(query.ContractName.String(), query.MethodName.String())
}

func validateTarget(contractName string, methodName string) error {
	if contractName == "" {
		return &InvalidRequestError{Reason: "contract name is empty"}
	}
	if methodName == "" {
		return &InvalidRequestError{Reason: "method name is empty"}
	}
	if strings.HasPrefix(methodName, "_") {
		return &InvalidRequestError{Reason: "method " + methodName + " is not callable from outside"}
	}
	return nil
}
