// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"strings"

	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/pkg/errors"
)

var ErrMissingSigner = errors.New("transaction has no signer")

// IdentityResolver turns the signer claimed by a transaction into the account the contract sees as its caller.
type IdentityResolver interface {
	ResolveSigner(ctx context.Context, signer primitives.AccountId) (primitives.AccountId, error)
}

type trustedSignerResolver struct{}

// NewTrustedSignerResolver accepts the signer as stated, for a development host that performs no authentication.
func NewTrustedSignerResolver() IdentityResolver {
	return &trustedSignerResolver{}
}

func (r *trustedSignerResolver) ResolveSigner(ctx context.Context, signer primitives.AccountId) (primitives.AccountId, error) {
	trimmed := primitives.AccountId(strings.TrimSpace(signer.String()))
	if trimmed.IsEmpty() {
		return "", ErrMissingSigner
	}
	return trimmed, nil
}
