// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/communecc/commune/pkg/authz"
	"github.com/stretchr/testify/mock"
)

var _ authz.Authorization = (*Authorization)(nil)

type Authorization struct {
	mock.Mock
}

func (m *Authorization) Authorize(ctx context.Context, pr authz.PolicyReq) error {
	ret := m.Called(ctx, pr)

	return ret.Error(0)
}
