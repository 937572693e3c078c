// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"context"
	"testing"

	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type recordingErrorer struct {
	messages []string
	fields   [][]*log.Field
}

func (r *recordingErrorer) Error(message string, fields ...*log.Field) {
	r.messages = append(r.messages, message)
	r.fields = append(r.fields, fields)
}

func TestGovnrErrorer_LogsTheRecoveredError(t *testing.T) {
	r := &recordingErrorer{}
	GovnrErrorer(r).Error(errors.New("boom"))

	require.Equal(t, []string{"recovered panic"}, r.messages)
	require.Equal(t, "error", r.fields[0][0].Key)
}

func TestContextStringValue(t *testing.T) {
	ctx := context.WithValue(context.Background(), "request-id", "abc")
	require.Equal(t, "abc", ContextStringValue(ctx, "request-id").StringVal)
	require.Equal(t, "not-found-in-context", ContextStringValue(context.Background(), "request-id").StringVal)
}
