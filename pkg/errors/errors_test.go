// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

package errors_test

import (
	"fmt"
	"testing"

	"github.com/communecc/commune/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var (
	errNotFound = errors.New("no channel found")
	errArchived = errors.New("channel is archived")
	errQuery    = errors.New("query failed")
)

func TestError(t *testing.T) {
	cases := []struct {
		desc string
		err  error
		msg  string
	}{
		{
			desc: "plain error",
			err:  errNotFound,
			msg:  "no channel found",
		},
		{
			desc: "wrapped once",
			err:  errors.Wrap(errArchived, errNotFound),
			msg:  "channel is archived : no channel found",
		},
		{
			desc: "wrapped twice",
			err:  errors.Wrap(errQuery, errors.Wrap(errArchived, errNotFound)),
			msg:  "query failed : channel is archived : no channel found",
		},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.msg, tc.err.Error(), fmt.Sprintf("%s: expected %q got %q", tc.desc, tc.msg, tc.err.Error()))
	}
}

func TestContains(t *testing.T) {
	cases := []struct {
		desc      string
		container error
		contained error
		contains  bool
	}{
		{
			desc:      "nil contains nil",
			container: nil,
			contained: nil,
			contains:  true,
		},
		{
			desc:      "nil contains non-nil",
			container: nil,
			contained: errNotFound,
			contains:  false,
		},
		{
			desc:      "non-nil contains nil",
			container: errNotFound,
			contained: nil,
			contains:  false,
		},
		{
			desc:      "unrelated errors",
			container: errNotFound,
			contained: errArchived,
			contains:  false,
		},
		{
			desc:      "wrap contains wrapped",
			container: errors.Wrap(errArchived, errNotFound),
			contained: errNotFound,
			contains:  true,
		},
		{
			desc:      "wrap contains wrapper",
			container: errors.Wrap(errArchived, errNotFound),
			contained: errArchived,
			contains:  true,
		},
		{
			desc:      "double wrap contains middle error",
			container: errors.Wrap(errQuery, errors.Wrap(errArchived, errNotFound)),
			contained: errArchived,
			contains:  true,
		},
	}

	for _, tc := range cases {
		contains := errors.Contains(tc.container, tc.contained)
		assert.Equal(t, tc.contains, contains, fmt.Sprintf("%s: expected %v got %v", tc.desc, tc.contains, contains))
	}
}

func TestUnwrap(t *testing.T) {
	wrapper, err := errors.Unwrap(errors.Wrap(errArchived, errNotFound))
	assert.Equal(t, errArchived.Error(), wrapper.Error())
	assert.Equal(t, errNotFound.Error(), err.Error())

	wrapper, err = errors.Unwrap(errNotFound)
	assert.Nil(t, wrapper)
	assert.Equal(t, errNotFound.Error(), err.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errNotFound))
	assert.Equal(t, errNotFound, errors.Wrap(errNotFound, nil))
}
