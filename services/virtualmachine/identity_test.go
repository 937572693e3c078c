// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestTrustedSignerResolverReturnsSigner(t *testing.T) {
	account, err := NewTrustedSignerResolver().ResolveSigner(context.Background(), " alice.testnet ")
	require.NoError(t, err)
	require.EqualValues(t, "alice.testnet", account)
}

func TestTrustedSignerResolverRejectsEmptySigner(t *testing.T) {
	_, err := NewTrustedSignerResolver().ResolveSigner(context.Background(), "")
	require.True(t, errors.Is(err, ErrMissingSigner))

	_, err = NewTrustedSignerResolver().ResolveSigner(context.Background(), "   ")
	require.True(t, errors.Is(err, ErrMissingSigner))
}
