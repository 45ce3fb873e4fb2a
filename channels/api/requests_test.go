// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"strings"
	"testing"
	"time"

	"github.com/communecc/commune/channels"
	"github.com/communecc/commune/pkg/apiutil"
	"github.com/stretchr/testify/assert"
)

const validID = "bBFoNRoByslvAsxWf"

func TestRoomReqValidate(t *testing.T) {
	cases := []struct {
		desc string
		req  roomReq
		err  error
	}{
		{
			desc: "valid request",
			req:  roomReq{RoomID: validID},
			err:  nil,
		},
		{
			desc: "missing room id",
			req:  roomReq{},
			err:  apiutil.ErrMissingRoomID,
		},
		{
			desc: "whitespace room id",
			req:  roomReq{RoomID: "   "},
			err:  apiutil.ErrMissingRoomID,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.req.validate()
			assert.Equal(t, tc.err, err)
		})
	}
}

func TestUserRoomReqValidate(t *testing.T) {
	cases := []struct {
		desc string
		req  userRoomReq
		err  error
	}{
		{
			desc: "with user id",
			req:  userRoomReq{RoomID: validID, UserID: "u1"},
			err:  nil,
		},
		{
			desc: "with username",
			req:  userRoomReq{RoomID: validID, Username: "nova.bot"},
			err:  nil,
		},
		{
			desc: "missing room id",
			req:  userRoomReq{UserID: "u1"},
			err:  apiutil.ErrMissingRoomID,
		},
		{
			desc: "missing user",
			req:  userRoomReq{RoomID: validID},
			err:  apiutil.ErrMissingUser,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.req.validate()
			assert.Equal(t, tc.err, err)
		})
	}
}

func TestCreateChannelReqValidate(t *testing.T) {
	cases := []struct {
		desc string
		req  createChannelReq
		err  error
	}{
		{
			desc: "valid request",
			req:  createChannelReq{Name: "general"},
			err:  nil,
		},
		{
			desc: "with members",
			req:  createChannelReq{Name: "general", Members: []string{"nova.bot"}},
			err:  nil,
		},
		{
			desc: "missing name",
			req:  createChannelReq{},
			err:  apiutil.ErrMissingName,
		},
		{
			desc: "whitespace name",
			req:  createChannelReq{Name: "   "},
			err:  apiutil.ErrMissingName,
		},
		{
			desc: "long name",
			req:  createChannelReq{Name: strings.Repeat("x", 1025)},
			err:  apiutil.ErrNameSize,
		},
		{
			desc: "members not an array",
			req:  createChannelReq{Name: "general", membersInvalid: true},
			err:  apiutil.ErrInvalidMembers,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.req.validate()
			assert.Equal(t, tc.err, err)
		})
	}
}

func TestCleanHistoryReqValidate(t *testing.T) {
	now := time.Now()

	cases := []struct {
		desc string
		req  cleanHistoryReq
		err  error
	}{
		{
			desc: "valid request",
			req:  cleanHistoryReq{RoomID: validID, Latest: now, Oldest: now.Add(-time.Hour)},
			err:  nil,
		},
		{
			desc: "missing room id",
			req:  cleanHistoryReq{Latest: now, Oldest: now.Add(-time.Hour)},
			err:  apiutil.ErrMissingRoomID,
		},
		{
			desc: "missing latest",
			req:  cleanHistoryReq{RoomID: validID, Oldest: now.Add(-time.Hour)},
			err:  apiutil.ErrMissingLatest,
		},
		{
			desc: "missing oldest",
			req:  cleanHistoryReq{RoomID: validID, Latest: now},
			err:  apiutil.ErrMissingOldest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.req.validate()
			assert.Equal(t, tc.err, err)
		})
	}
}

func TestSettingReqsValidate(t *testing.T) {
	ro := true

	cases := []struct {
		desc string
		req  interface{ validate() error }
		err  error
	}{
		{
			desc: "valid rename",
			req:  renameReq{RoomID: validID, Name: "renamed"},
			err:  nil,
		},
		{
			desc: "rename missing name",
			req:  renameReq{RoomID: validID},
			err:  apiutil.ErrMissingName,
		},
		{
			desc: "rename long name",
			req:  renameReq{RoomID: validID, Name: strings.Repeat("x", 1025)},
			err:  apiutil.ErrNameSize,
		},
		{
			desc: "valid description",
			req:  setDescriptionReq{RoomID: validID, Description: "about"},
			err:  nil,
		},
		{
			desc: "missing description",
			req:  setDescriptionReq{RoomID: validID},
			err:  apiutil.ErrMissingDescription,
		},
		{
			desc: "valid purpose",
			req:  setPurposeReq{RoomID: validID, Purpose: "about"},
			err:  nil,
		},
		{
			desc: "missing purpose",
			req:  setPurposeReq{RoomID: validID},
			err:  apiutil.ErrMissingPurpose,
		},
		{
			desc: "valid topic",
			req:  setTopicReq{RoomID: validID, Topic: "today"},
			err:  nil,
		},
		{
			desc: "missing topic",
			req:  setTopicReq{RoomID: validID},
			err:  apiutil.ErrMissingTopic,
		},
		{
			desc: "valid join code",
			req:  setJoinCodeReq{RoomID: validID, JoinCode: "s3cret"},
			err:  nil,
		},
		{
			desc: "missing join code",
			req:  setJoinCodeReq{RoomID: validID},
			err:  apiutil.ErrMissingJoinCode,
		},
		{
			desc: "valid read only",
			req:  setReadOnlyReq{RoomID: validID, ReadOnly: &ro},
			err:  nil,
		},
		{
			desc: "missing read only",
			req:  setReadOnlyReq{RoomID: validID},
			err:  apiutil.ErrMissingReadOnly,
		},
		{
			desc: "valid type",
			req:  setTypeReq{RoomID: validID, Type: channels.Public},
			err:  nil,
		},
		{
			desc: "missing type",
			req:  setTypeReq{RoomID: validID},
			err:  apiutil.ErrMissingType,
		},
		{
			desc: "setting missing room id",
			req:  setTopicReq{Topic: "today"},
			err:  apiutil.ErrMissingRoomID,
		},
		{
			desc: "whitespace topic",
			req:  setTopicReq{RoomID: validID, Topic: "   "},
			err:  apiutil.ErrMissingTopic,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.req.validate()
			assert.Equal(t, tc.err, err)
		})
	}
}

func TestListReqValidate(t *testing.T) {
	cases := []struct {
		desc string
		req  listReq
		err  error
	}{
		{
			desc: "valid request",
			req:  listReq{PageMetadata: channels.PageMetadata{Limit: 50, Dir: "asc"}},
			err:  nil,
		},
		{
			desc: "limit too large",
			req:  listReq{PageMetadata: channels.PageMetadata{Limit: 200}},
			err:  apiutil.ErrLimitSize,
		},
		{
			desc: "invalid direction",
			req:  listReq{PageMetadata: channels.PageMetadata{Limit: 10, Dir: "sideways"}},
			err:  apiutil.ErrInvalidQueryParams,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.req.validate()
			assert.Equal(t, tc.err, err)
		})
	}
}

func TestListIntegrationsReqValidate(t *testing.T) {
	cases := []struct {
		desc string
		req  listIntegrationsReq
		err  error
	}{
		{
			desc: "valid request",
			req:  listIntegrationsReq{RoomID: validID, IntegrationsPageMetadata: channels.IntegrationsPageMetadata{Limit: 10}},
			err:  nil,
		},
		{
			desc: "missing room id",
			req:  listIntegrationsReq{IntegrationsPageMetadata: channels.IntegrationsPageMetadata{Limit: 10}},
			err:  apiutil.ErrMissingRoomID,
		},
		{
			desc: "limit too large",
			req:  listIntegrationsReq{RoomID: validID, IntegrationsPageMetadata: channels.IntegrationsPageMetadata{Limit: 200}},
			err:  apiutil.ErrLimitSize,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.req.validate()
			assert.Equal(t, tc.err, err)
		})
	}
}
