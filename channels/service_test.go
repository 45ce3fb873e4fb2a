// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

package channels_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/communecc/commune/channels"
	"github.com/communecc/commune/channels/mocks"
	"github.com/communecc/commune/pkg/apiutil"
	"github.com/communecc/commune/pkg/authn"
	"github.com/communecc/commune/pkg/authz"
	authzmocks "github.com/communecc/commune/pkg/authz/mocks"
	"github.com/communecc/commune/pkg/errors"
	svcerr "github.com/communecc/commune/pkg/errors/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	validSession = authn.Session{UserID: "user-1", Username: "alice"}

	validChannel = channels.Channel{
		ID:        "room-1",
		Name:      "general",
		Type:      channels.Public,
		Topic:     "everything",
		CreatedAt: time.Now().Add(-time.Hour),
	}

	archivedChannel = channels.Channel{
		ID:       "room-2",
		Name:     "dormant",
		Type:     channels.Public,
		Archived: true,
	}

	privateRoom = channels.Channel{
		ID:   "room-3",
		Name: "secret",
		Type: "p",
	}

	errRepo = errors.New("query failed")
	errCmd  = errors.New("command rejected")
)

func newService() (channels.Service, *mocks.Repository, *mocks.Commander, *mocks.UserResolver, *authzmocks.Authorization) {
	repo := new(mocks.Repository)
	cmd := new(mocks.Commander)
	resolver := new(mocks.UserResolver)
	az := new(authzmocks.Authorization)
	svc := channels.NewService(repo, cmd, resolver, az)

	return svc, repo, cmd, resolver, az
}

func TestView(t *testing.T) {
	svc, repo, _, _, _ := newService()

	cases := []struct {
		desc    string
		roomID  string
		channel channels.Channel
		repoErr error
		err     error
	}{
		{
			desc:    "view existing channel",
			roomID:  validChannel.ID,
			channel: validChannel,
			err:     nil,
		},
		{
			desc:    "view archived channel",
			roomID:  archivedChannel.ID,
			channel: archivedChannel,
			err:     nil,
		},
		{
			desc:    "view non-public room",
			roomID:  privateRoom.ID,
			channel: privateRoom,
			err:     svcerr.ErrNotFound,
		},
		{
			desc:    "view missing room",
			roomID:  "unknown",
			repoErr: errRepo,
			err:     svcerr.ErrNotFound,
		},
		{
			desc:   "view with empty room ID",
			roomID: "",
			err:    apiutil.ErrMissingRoomID,
		},
		{
			desc:   "view with whitespace room ID",
			roomID: "   ",
			err:    apiutil.ErrMissingRoomID,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveByID", context.Background(), tc.roomID, channels.DefaultProjection).Return(tc.channel, tc.repoErr)
			ch, err := svc.View(context.Background(), validSession, tc.roomID)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			if err == nil {
				assert.Equal(t, tc.channel, ch)
			}
			if tc.err == apiutil.ErrMissingRoomID {
				repo.AssertNotCalled(t, "RetrieveByID", context.Background(), tc.roomID, channels.DefaultProjection)
			}
			repoCall.Unset()
		})
	}
}

func TestArchive(t *testing.T) {
	svc, repo, cmd, _, _ := newService()

	cases := []struct {
		desc    string
		channel channels.Channel
		cmdErr  error
		err     error
	}{
		{
			desc:    "archive active channel",
			channel: validChannel,
			err:     nil,
		},
		{
			desc:    "archive archived channel",
			channel: archivedChannel,
			err:     channels.ErrChannelArchived,
		},
		{
			desc:    "archive with failing executor",
			channel: validChannel,
			cmdErr:  errCmd,
			err:     svcerr.ErrDispatch,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveByID", context.Background(), tc.channel.ID, channels.DefaultProjection).Return(tc.channel, nil)
			cmdCall := cmd.On("ArchiveRoom", context.Background(), validSession, tc.channel.ID).Return(tc.cmdErr)
			err := svc.Archive(context.Background(), validSession, tc.channel.ID)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			if tc.err == channels.ErrChannelArchived {
				cmd.AssertNotCalled(t, "ArchiveRoom", context.Background(), validSession, tc.channel.ID)
			}
			repoCall.Unset()
			cmdCall.Unset()
		})
	}
}

func TestUnarchive(t *testing.T) {
	svc, repo, cmd, _, _ := newService()

	cases := []struct {
		desc    string
		channel channels.Channel
		cmdErr  error
		err     error
	}{
		{
			desc:    "unarchive archived channel",
			channel: archivedChannel,
			err:     nil,
		},
		{
			desc:    "unarchive active channel",
			channel: validChannel,
			err:     channels.ErrNotArchived,
		},
		{
			desc:    "unarchive with failing executor",
			channel: archivedChannel,
			cmdErr:  errCmd,
			err:     svcerr.ErrDispatch,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveByID", context.Background(), tc.channel.ID, channels.DefaultProjection).Return(tc.channel, nil)
			cmdCall := cmd.On("UnarchiveRoom", context.Background(), validSession, tc.channel.ID).Return(tc.cmdErr)
			err := svc.Unarchive(context.Background(), validSession, tc.channel.ID)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			if tc.err == channels.ErrNotArchived {
				cmd.AssertNotCalled(t, "UnarchiveRoom", context.Background(), validSession, tc.channel.ID)
			}
			repoCall.Unset()
			cmdCall.Unset()
		})
	}
}

func TestClose(t *testing.T) {
	svc, repo, cmd, _, _ := newService()

	cases := []struct {
		desc   string
		sub    channels.Subscription
		subErr error
		cmdErr error
		err    error
	}{
		{
			desc: "close open subscription",
			sub:  channels.Subscription{RoomID: validChannel.ID, UserID: validSession.UserID, Open: true},
			err:  nil,
		},
		{
			desc:   "close without subscription",
			subErr: errRepo,
			err:    channels.ErrNotInChannel,
		},
		{
			desc: "close closed subscription",
			sub:  channels.Subscription{RoomID: validChannel.ID, UserID: validSession.UserID, Open: false},
			err:  channels.ErrAlreadyClosed,
		},
		{
			desc:   "close with failing executor",
			sub:    channels.Subscription{RoomID: validChannel.ID, UserID: validSession.UserID, Open: true},
			cmdErr: errCmd,
			err:    svcerr.ErrDispatch,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveByID", context.Background(), validChannel.ID, channels.DefaultProjection).Return(validChannel, nil)
			subCall := repo.On("RetrieveSubscription", context.Background(), validChannel.ID, validSession.UserID).Return(tc.sub, tc.subErr)
			cmdCall := cmd.On("HideRoom", context.Background(), validSession, validChannel.ID).Return(tc.cmdErr)
			err := svc.Close(context.Background(), validSession, validChannel.ID)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			repoCall.Unset()
			subCall.Unset()
			cmdCall.Unset()
		})
	}
}

func TestOpen(t *testing.T) {
	svc, repo, cmd, _, _ := newService()

	cases := []struct {
		desc   string
		sub    channels.Subscription
		subErr error
		cmdErr error
		err    error
	}{
		{
			desc: "open closed subscription",
			sub:  channels.Subscription{RoomID: archivedChannel.ID, UserID: validSession.UserID, Open: false},
			err:  nil,
		},
		{
			desc:   "open without subscription",
			subErr: errRepo,
			err:    channels.ErrNotInChannel,
		},
		{
			desc: "open open subscription",
			sub:  channels.Subscription{RoomID: archivedChannel.ID, UserID: validSession.UserID, Open: true},
			err:  channels.ErrAlreadyOpen,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			// Archived channels may still be opened and closed.
			repoCall := repo.On("RetrieveByID", context.Background(), archivedChannel.ID, channels.DefaultProjection).Return(archivedChannel, nil)
			subCall := repo.On("RetrieveSubscription", context.Background(), archivedChannel.ID, validSession.UserID).Return(tc.sub, tc.subErr)
			cmdCall := cmd.On("OpenRoom", context.Background(), validSession, archivedChannel.ID).Return(tc.cmdErr)
			err := svc.Open(context.Background(), validSession, archivedChannel.ID)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			repoCall.Unset()
			subCall.Unset()
			cmdCall.Unset()
		})
	}
}

func TestCreate(t *testing.T) {
	svc, repo, cmd, _, az := newService()

	cases := []struct {
		desc    string
		req     channels.CreateChannelReq
		authErr error
		cmdErr  error
		err     error
	}{
		{
			desc: "create channel",
			req:  channels.CreateChannelReq{Name: "general", Members: []string{"alice", "bob"}},
			err:  nil,
		},
		{
			desc: "create read-only channel without members",
			req:  channels.CreateChannelReq{Name: "announcements", ReadOnly: true},
			err:  nil,
		},
		{
			desc:    "create without capability",
			req:     channels.CreateChannelReq{Name: "general"},
			authErr: svcerr.ErrAuthorization,
			err:     svcerr.ErrAuthorization,
		},
		{
			desc: "create without name",
			req:  channels.CreateChannelReq{},
			err:  apiutil.ErrMissingName,
		},
		{
			desc:   "create with failing executor",
			req:    channels.CreateChannelReq{Name: "general"},
			cmdErr: errCmd,
			err:    svcerr.ErrDispatch,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			pr := authz.PolicyReq{UserID: validSession.UserID, Permission: authz.CreatePublicChannelPermission}
			azCall := az.On("Authorize", context.Background(), pr).Return(tc.authErr)
			cmdCall := cmd.On("CreateChannel", context.Background(), validSession, tc.req.Name, mock.Anything, tc.req.ReadOnly).Return(validChannel.ID, tc.cmdErr)
			repoCall := repo.On("RetrieveByID", context.Background(), validChannel.ID, channels.DefaultProjection).Return(validChannel, nil)
			ch, err := svc.Create(context.Background(), validSession, tc.req)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			if err == nil {
				assert.Equal(t, validChannel, ch)
			}
			azCall.Unset()
			cmdCall.Unset()
			repoCall.Unset()
		})
	}
}

func TestDelete(t *testing.T) {
	svc, repo, cmd, _, _ := newService()

	cases := []struct {
		desc    string
		channel channels.Channel
		cmdErr  error
		err     error
	}{
		{
			desc:    "delete channel",
			channel: validChannel,
			err:     nil,
		},
		{
			desc:    "delete archived channel",
			channel: archivedChannel,
			err:     nil,
		},
		{
			desc:    "delete with failing executor",
			channel: validChannel,
			cmdErr:  errCmd,
			err:     svcerr.ErrDispatch,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveByID", context.Background(), tc.channel.ID, channels.DefaultProjection).Return(tc.channel, nil)
			cmdCall := cmd.On("EraseRoom", context.Background(), validSession, tc.channel.ID).Return(tc.cmdErr)
			ch, err := svc.Delete(context.Background(), validSession, tc.channel.ID)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			if err == nil {
				// The response carries the state captured before erasure.
				assert.Equal(t, tc.channel, ch)
			}
			repoCall.Unset()
			cmdCall.Unset()
		})
	}
}

func TestRename(t *testing.T) {
	renamed := validChannel
	renamed.Name = "renamed"

	cases := []struct {
		desc   string
		name   string
		cmdErr error
		err    error
	}{
		{
			desc: "rename channel",
			name: "renamed",
			err:  nil,
		},
		{
			desc: "rename to current name",
			name: validChannel.Name,
			err:  channels.ErrSameName,
		},
		{
			desc: "rename without name",
			name: "",
			err:  apiutil.ErrMissingName,
		},
		{
			desc: "rename with whitespace name",
			name: "   ",
			err:  apiutil.ErrMissingName,
		},
		{
			desc:   "rename with failing executor",
			name:   "renamed",
			cmdErr: errCmd,
			err:    svcerr.ErrDispatch,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			svc, repo, cmd, _, _ := newService()
			// The first read resolves the channel, the second is the
			// post-command refresh.
			repo.On("RetrieveByID", context.Background(), validChannel.ID, channels.DefaultProjection).Return(validChannel, nil).Once()
			repo.On("RetrieveByID", context.Background(), validChannel.ID, channels.DefaultProjection).Return(renamed, nil)
			cmd.On("SaveRoomSetting", context.Background(), validSession, validChannel.ID, channels.RoomName, tc.name).Return(tc.cmdErr)
			ch, err := svc.Rename(context.Background(), validSession, validChannel.ID, tc.name)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			if err == nil {
				assert.Equal(t, renamed, ch)
			}
			if tc.err == channels.ErrSameName {
				assert.Contains(t, err.Error(), "same as what it would be renamed to")
			}
			if tc.err == channels.ErrSameName || tc.err == apiutil.ErrMissingName {
				cmd.AssertNotCalled(t, "SaveRoomSetting", context.Background(), validSession, validChannel.ID, channels.RoomName, tc.name)
			}
		})
	}
}

func TestSetPurpose(t *testing.T) {
	svc, repo, cmd, _, _ := newService()

	described := validChannel
	described.Description = "the purpose"

	cases := []struct {
		desc    string
		channel channels.Channel
		purpose string
		err     error
	}{
		{
			desc:    "set purpose",
			channel: validChannel,
			purpose: "the purpose",
			err:     nil,
		},
		{
			desc:    "set purpose to current description",
			channel: described,
			purpose: "the purpose",
			err:     channels.ErrSamePurpose,
		},
		{
			desc:    "set purpose without purpose",
			channel: validChannel,
			purpose: "",
			err:     apiutil.ErrMissingPurpose,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveByID", context.Background(), tc.channel.ID, channels.DefaultProjection).Return(tc.channel, nil)
			// Purpose writes target the description attribute.
			cmdCall := cmd.On("SaveRoomSetting", context.Background(), validSession, tc.channel.ID, channels.RoomDescription, tc.purpose).Return(nil)
			purpose, err := svc.SetPurpose(context.Background(), validSession, tc.channel.ID, tc.purpose)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			if err == nil {
				assert.Equal(t, tc.purpose, purpose)
			}
			repoCall.Unset()
			cmdCall.Unset()
		})
	}
}

func TestSetReadOnly(t *testing.T) {
	readOnlyChannel := validChannel
	readOnlyChannel.ReadOnly = true

	cases := []struct {
		desc     string
		readOnly bool
		err      error
	}{
		{
			desc:     "set read only",
			readOnly: true,
			err:      nil,
		},
		{
			desc:     "set read only to current value",
			readOnly: false,
			err:      channels.ErrSameReadOnly,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			svc, repo, cmd, _, _ := newService()
			repo.On("RetrieveByID", context.Background(), validChannel.ID, channels.DefaultProjection).Return(validChannel, nil).Once()
			repo.On("RetrieveByID", context.Background(), validChannel.ID, channels.DefaultProjection).Return(readOnlyChannel, nil)
			cmd.On("SaveRoomSetting", context.Background(), validSession, validChannel.ID, channels.RoomReadOnly, tc.readOnly).Return(nil)
			ch, err := svc.SetReadOnly(context.Background(), validSession, validChannel.ID, tc.readOnly)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			if err == nil {
				assert.Equal(t, readOnlyChannel, ch)
			}
		})
	}
}

func TestSetJoinCode(t *testing.T) {
	svc, repo, cmd, _, _ := newService()

	t.Run("set join code", func(t *testing.T) {
		repoCall := repo.On("RetrieveByID", context.Background(), validChannel.ID, channels.DefaultProjection).Return(validChannel, nil)
		// No idempotency guard: the prior code is never readable here.
		cmdCall := cmd.On("SaveRoomSetting", context.Background(), validSession, validChannel.ID, channels.RoomJoinCode, "s3cret").Return(nil)
		ch, err := svc.SetJoinCode(context.Background(), validSession, validChannel.ID, "s3cret")
		assert.Nil(t, err)
		assert.Empty(t, ch.JoinCode)
		repoCall.Unset()
		cmdCall.Unset()
	})

	t.Run("set join code without code", func(t *testing.T) {
		_, err := svc.SetJoinCode(context.Background(), validSession, validChannel.ID, "")
		assert.True(t, errors.Contains(err, apiutil.ErrMissingJoinCode), fmt.Sprintf("got %v", err))
	})
}

func TestAddModerator(t *testing.T) {
	svc, repo, cmd, resolver, _ := newService()

	target := channels.User{ID: "user-2", Username: "bob"}

	cases := []struct {
		desc       string
		ref        channels.UserRef
		resolveErr error
		cmdErr     error
		err        error
	}{
		{
			desc: "add moderator by user ID",
			ref:  channels.UserRef{UserID: target.ID},
			err:  nil,
		},
		{
			desc: "add moderator by username",
			ref:  channels.UserRef{Username: target.Username},
			err:  nil,
		},
		{
			desc: "add moderator without user reference",
			ref:  channels.UserRef{},
			err:  apiutil.ErrMissingUser,
		},
		{
			desc:       "add moderator with unknown user",
			ref:        channels.UserRef{Username: "nobody"},
			resolveErr: errRepo,
			err:        channels.ErrUserNotFound,
		},
		{
			desc:   "add moderator with failing executor",
			ref:    channels.UserRef{UserID: target.ID},
			cmdErr: errCmd,
			err:    svcerr.ErrDispatch,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveByID", context.Background(), validChannel.ID, channels.DefaultProjection).Return(validChannel, nil)
			resolveCall := resolver.On("ResolveUser", context.Background(), tc.ref).Return(target, tc.resolveErr)
			cmdCall := cmd.On("AddRoomModerator", context.Background(), validSession, validChannel.ID, target.ID).Return(tc.cmdErr)
			err := svc.AddModerator(context.Background(), validSession, validChannel.ID, tc.ref)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			repoCall.Unset()
			resolveCall.Unset()
			cmdCall.Unset()
		})
	}
}

func TestHistory(t *testing.T) {
	msgs := []channels.Message{
		{ID: "msg-1", RoomID: validChannel.ID, Text: "hello"},
		{ID: "msg-2", RoomID: validChannel.ID, Text: "world"},
	}

	t.Run("history with defaults", func(t *testing.T) {
		svc, repo, cmd, _, _ := newService()
		repo.On("RetrieveByID", context.Background(), validChannel.ID, channels.DefaultProjection).Return(validChannel, nil)
		cmd.On("RoomHistory", context.Background(), validSession, mock.MatchedBy(func(req channels.HistoryReq) bool {
			return req.RoomID == validChannel.ID && !req.Latest.IsZero() && req.Oldest.IsZero() && !req.Inclusive && req.Count == channels.DefHistoryCount && !req.Unreads
		})).Return(msgs, nil)
		got, err := svc.History(context.Background(), validSession, channels.HistoryReq{RoomID: validChannel.ID})
		assert.Nil(t, err)
		assert.Equal(t, msgs, got)
	})

	t.Run("history with empty result", func(t *testing.T) {
		svc, repo, cmd, _, _ := newService()
		repo.On("RetrieveByID", context.Background(), validChannel.ID, channels.DefaultProjection).Return(validChannel, nil)
		cmd.On("RoomHistory", context.Background(), validSession, mock.Anything).Return(nil, nil)
		got, err := svc.History(context.Background(), validSession, channels.HistoryReq{RoomID: validChannel.ID})
		assert.Nil(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("history of missing room", func(t *testing.T) {
		svc, repo, _, _, _ := newService()
		repo.On("RetrieveByID", context.Background(), "unknown", channels.DefaultProjection).Return(channels.Channel{}, errRepo)
		_, err := svc.History(context.Background(), validSession, channels.HistoryReq{RoomID: "unknown"})
		assert.True(t, errors.Contains(err, svcerr.ErrNotFound), fmt.Sprintf("got %v", err))
	})
}

func TestCleanHistory(t *testing.T) {
	svc, repo, cmd, _, _ := newService()

	latest := time.Now()
	oldest := latest.Add(-24 * time.Hour)

	cases := []struct {
		desc           string
		latest, oldest time.Time
		err            error
	}{
		{
			desc:   "clean history",
			latest: latest,
			oldest: oldest,
			err:    nil,
		},
		{
			desc:   "clean history without latest",
			oldest: oldest,
			err:    apiutil.ErrMissingLatest,
		},
		{
			desc:   "clean history without oldest",
			latest: latest,
			err:    apiutil.ErrMissingOldest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveByID", context.Background(), validChannel.ID, channels.DefaultProjection).Return(validChannel, nil)
			cmdCall := cmd.On("CleanRoomHistory", context.Background(), validSession, validChannel.ID, tc.latest, tc.oldest, true).Return(nil)
			err := svc.CleanHistory(context.Background(), validSession, validChannel.ID, tc.latest, tc.oldest, true)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			repoCall.Unset()
			cmdCall.Unset()
		})
	}
}

func TestListIntegrations(t *testing.T) {
	page := channels.IntegrationsPage{
		IntegrationsPageMetadata: channels.IntegrationsPageMetadata{Total: 1},
		Integrations: []channels.Integration{
			{ID: "int-1", Type: "webhook-outgoing", Scope: "#general"},
		},
	}

	cases := []struct {
		desc       string
		includeAll bool
		authErr    error
		scopes     []string
		err        error
	}{
		{
			desc:       "list with all-public-channels scope",
			includeAll: true,
			scopes:     []string{"#general", channels.AllPublicChannelsScope},
			err:        nil,
		},
		{
			desc:       "list with channel scope only",
			includeAll: false,
			scopes:     []string{"#general"},
			err:        nil,
		},
		{
			desc:       "list without capability",
			includeAll: true,
			authErr:    svcerr.ErrAuthorization,
			err:        svcerr.ErrAuthorization,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			svc, repo, _, _, az := newService()
			pr := authz.PolicyReq{UserID: validSession.UserID, Permission: authz.ManageIntegrationsPermission}
			az.On("Authorize", context.Background(), pr).Return(tc.authErr)
			repo.On("RetrieveByID", context.Background(), validChannel.ID, channels.DefaultProjection).Return(validChannel, nil)
			repo.On("RetrieveIntegrations", context.Background(), mock.MatchedBy(func(pm channels.IntegrationsPageMetadata) bool {
				return assert.ObjectsAreEqual(tc.scopes, pm.Scopes)
			}), channels.DefaultProjection).Return(page, nil)
			got, err := svc.ListIntegrations(context.Background(), validSession, validChannel.ID, tc.includeAll, channels.IntegrationsPageMetadata{})
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %v got %v", tc.err, err))
			if err == nil {
				assert.Equal(t, page, got)
			}
		})
	}
}

func TestListJoined(t *testing.T) {
	svc, repo, _, _, _ := newService()

	page := channels.Page{
		PageMetadata: channels.PageMetadata{Total: 1, Limit: 10},
		Channels:     []channels.Channel{validChannel},
	}

	t.Run("list joined channels", func(t *testing.T) {
		repoCall := repo.On("RetrieveJoined", context.Background(), validSession.UserID, page.PageMetadata, channels.DefaultProjection).Return(page, nil)
		got, err := svc.ListJoined(context.Background(), validSession, page.PageMetadata)
		assert.Nil(t, err)
		assert.Equal(t, page, got)
		repoCall.Unset()
	})

	t.Run("list joined with failing repo", func(t *testing.T) {
		repoCall := repo.On("RetrieveJoined", context.Background(), validSession.UserID, channels.PageMetadata{}, channels.DefaultProjection).Return(channels.Page{}, errRepo)
		_, err := svc.ListJoined(context.Background(), validSession, channels.PageMetadata{})
		assert.True(t, errors.Contains(err, svcerr.ErrViewEntity), fmt.Sprintf("got %v", err))
		repoCall.Unset()
	})
}

func TestInvite(t *testing.T) {
	svc, repo, cmd, resolver, _ := newService()

	target := channels.User{ID: "user-2", Username: "bob"}

	t.Run("invite user", func(t *testing.T) {
		repoCall := repo.On("RetrieveByID", context.Background(), validChannel.ID, channels.DefaultProjection).Return(validChannel, nil)
		resolveCall := resolver.On("ResolveUser", context.Background(), channels.UserRef{Username: "bob"}).Return(target, nil)
		// Membership commands address the target by username.
		cmdCall := cmd.On("AddUserToRoom", context.Background(), validSession, validChannel.ID, target.Username).Return(nil)
		ch, err := svc.Invite(context.Background(), validSession, validChannel.ID, channels.UserRef{Username: "bob"})
		assert.Nil(t, err)
		assert.Equal(t, validChannel, ch)
		repoCall.Unset()
		resolveCall.Unset()
		cmdCall.Unset()
	})

	t.Run("invite to archived channel", func(t *testing.T) {
		repoCall := repo.On("RetrieveByID", context.Background(), archivedChannel.ID, channels.DefaultProjection).Return(archivedChannel, nil)
		_, err := svc.Invite(context.Background(), validSession, archivedChannel.ID, channels.UserRef{Username: "bob"})
		assert.True(t, errors.Contains(err, channels.ErrChannelArchived), fmt.Sprintf("got %v", err))
		repoCall.Unset()
	})
}
