// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"context"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/scribe/log"
)

func Transaction(txId primitives.TxId) *log.Field {
	return log.Stringable("txId", txId)
}

func Account(account primitives.AccountId) *log.Field {
	return log.Stringable("account", account)
}

func Amount(key string, amount primitives.Amount) *log.Field {
	return log.Stringable(key, amount)
}

func Contract(name primitives.ContractName) *log.Field {
	return log.Stringable("contract", name)
}

func Method(name primitives.MethodName) *log.Field {
	return log.Stringable("method", name)
}

func ExecutionResult(result primitives.ExecutionResult) *log.Field {
	return log.Stringable("execution-result", result)
}

func ExecutionContext(id primitives.ExecutionContextId) *log.Field {
	return &log.Field{Key: "execution-context", Uint: uint64(id), Type: log.UintType}
}

func ContextStringValue(ctx context.Context, key string) *log.Field {
	val := "not-found-in-context"
	if v := ctx.Value(key); v != nil {
		if vString, ok := v.(string); ok {
			val = vString
		} else {
			val = "found-in-context-but-not-string"
		}
	}
	return log.String(key, val)
}
