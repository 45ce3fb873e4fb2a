// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/communecc/commune/channels"
	"github.com/communecc/commune/channels/postgres"
	"github.com/communecc/commune/pkg/authz"
	"github.com/communecc/commune/pkg/errors"
	repoerr "github.com/communecc/commune/pkg/errors/repository"
	svcerr "github.com/communecc/commune/pkg/errors/service"
	pgclient "github.com/communecc/commune/pkg/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func newRepository(t *testing.T) channels.Repository {
	t.Helper()

	database := pgclient.NewDatabase(db, trace.NewNoopTracerProvider().Tracer("tests"))
	return postgres.NewRepository(database)
}

func generateID(t *testing.T) string {
	id, err := idProvider.ID()
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	return id
}

func saveChannel(t *testing.T, repo channels.Repository, ch channels.Channel) channels.Channel {
	t.Helper()

	saved, err := repo.Save(context.Background(), ch)
	require.Nil(t, err, fmt.Sprintf("save channel unexpected error: %s", err))
	return saved
}

func cleanup(t *testing.T) {
	t.Cleanup(func() {
		for _, table := range []string{"messages", "integrations", "subscriptions", "rooms", "users"} {
			_, err := db.Exec("DELETE FROM " + table)
			require.Nil(t, err, fmt.Sprintf("clean %s unexpected error: %s", table, err))
		}
	})
}

func TestSave(t *testing.T) {
	cleanup(t)
	repo := newRepository(t)

	id := generateID(t)
	ch := channels.Channel{
		ID:        id,
		Name:      "general",
		Type:      channels.Public,
		JoinCode:  "s3cret",
		CreatedBy: generateID(t),
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		UpdatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	cases := []struct {
		desc    string
		channel channels.Channel
		err     error
	}{
		{
			desc:    "new channel",
			channel: ch,
			err:     nil,
		},
		{
			desc:    "duplicate channel",
			channel: ch,
			err:     repoerr.ErrConflict,
		},
		{
			desc: "duplicate name",
			channel: channels.Channel{
				ID:        generateID(t),
				Name:      "general",
				Type:      channels.Public,
				CreatedAt: time.Now().UTC(),
			},
			err: repoerr.ErrConflict,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			saved, err := repo.Save(context.Background(), tc.channel)
			if tc.err != nil {
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %s got %s", tc.err, err))
				return
			}
			require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
			assert.Equal(t, tc.channel.ID, saved.ID)
			assert.Equal(t, tc.channel.Name, saved.Name)
			assert.Equal(t, channels.Public, saved.Type)
			assert.Equal(t, tc.channel.JoinCode, saved.JoinCode)
		})
	}
}

func TestRetrieveByID(t *testing.T) {
	cleanup(t)
	repo := newRepository(t)

	ch := saveChannel(t, repo, channels.Channel{
		ID:        generateID(t),
		Name:      "general",
		Type:      channels.Public,
		JoinCode:  "s3cret",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})

	cases := []struct {
		desc       string
		id         string
		projection channels.Projection
		joinCode   string
		err        error
	}{
		{
			desc:       "without projection",
			id:         ch.ID,
			projection: nil,
			joinCode:   "s3cret",
			err:        nil,
		},
		{
			desc:       "with default projection",
			id:         ch.ID,
			projection: channels.DefaultProjection,
			joinCode:   "",
			err:        nil,
		},
		{
			desc: "missing channel",
			id:   generateID(t),
			err:  repoerr.ErrNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			res, err := repo.RetrieveByID(context.Background(), tc.id, tc.projection)
			if tc.err != nil {
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %s got %s", tc.err, err))
				return
			}
			require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
			assert.Equal(t, ch.ID, res.ID)
			assert.Equal(t, tc.joinCode, res.JoinCode)
		})
	}
}

func TestUpdate(t *testing.T) {
	cleanup(t)
	repo := newRepository(t)

	ch := saveChannel(t, repo, channels.Channel{
		ID:        generateID(t),
		Name:      "general",
		Type:      channels.Public,
		JoinCode:  "s3cret",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})

	// Update fed from a projected read must not clobber the stored join code.
	projected, err := repo.RetrieveByID(context.Background(), ch.ID, channels.DefaultProjection)
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	require.Empty(t, projected.JoinCode)

	projected.Topic = "announcements"
	projected.Archived = true
	updated, err := repo.Update(context.Background(), projected)
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	assert.Equal(t, "announcements", updated.Topic)
	assert.True(t, updated.Archived)
	assert.Equal(t, "s3cret", updated.JoinCode)

	t.Run("rename to existing name", func(t *testing.T) {
		other := saveChannel(t, repo, channels.Channel{
			ID:        generateID(t),
			Name:      "random",
			Type:      channels.Public,
			CreatedAt: time.Now().UTC(),
		})
		other.Name = ch.Name
		_, err := repo.Update(context.Background(), other)
		assert.True(t, errors.Contains(err, repoerr.ErrConflict), fmt.Sprintf("expected %s got %s", repoerr.ErrConflict, err))
	})

	t.Run("missing channel", func(t *testing.T) {
		_, err := repo.Update(context.Background(), channels.Channel{ID: generateID(t), Type: channels.Public})
		assert.True(t, errors.Contains(err, repoerr.ErrNotFound), fmt.Sprintf("expected %s got %s", repoerr.ErrNotFound, err))
	})
}

func TestUpdateJoinCode(t *testing.T) {
	cleanup(t)
	repo := newRepository(t)

	ch := saveChannel(t, repo, channels.Channel{
		ID:        generateID(t),
		Name:      "general",
		Type:      channels.Public,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})

	err := repo.UpdateJoinCode(context.Background(), ch.ID, "letmein")
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))

	res, err := repo.RetrieveByID(context.Background(), ch.ID, nil)
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	assert.Equal(t, "letmein", res.JoinCode)

	t.Run("missing channel", func(t *testing.T) {
		err := repo.UpdateJoinCode(context.Background(), generateID(t), "letmein")
		assert.True(t, errors.Contains(err, repoerr.ErrNotFound), fmt.Sprintf("expected %s got %s", repoerr.ErrNotFound, err))
	})
}

func TestRemove(t *testing.T) {
	cleanup(t)
	repo := newRepository(t)

	ch := saveChannel(t, repo, channels.Channel{
		ID:        generateID(t),
		Name:      "doomed",
		Type:      channels.Public,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})

	err := repo.Remove(context.Background(), ch.ID)
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))

	_, err = repo.RetrieveByID(context.Background(), ch.ID, nil)
	assert.True(t, errors.Contains(err, repoerr.ErrNotFound), fmt.Sprintf("expected %s got %s", repoerr.ErrNotFound, err))

	err = repo.Remove(context.Background(), ch.ID)
	assert.True(t, errors.Contains(err, repoerr.ErrNotFound), fmt.Sprintf("expected %s got %s", repoerr.ErrNotFound, err))
}

func TestRetrieveAll(t *testing.T) {
	cleanup(t)
	repo := newRepository(t)

	for i := 0; i < 5; i++ {
		saveChannel(t, repo, channels.Channel{
			ID:        generateID(t),
			Name:      fmt.Sprintf("room-%d", i),
			Type:      channels.Public,
			JoinCode:  "s3cret",
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		})
	}
	// Non-public rooms never show up in listings.
	saveChannel(t, repo, channels.Channel{
		ID:        generateID(t),
		Name:      "room-private",
		Type:      "p",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})

	cases := []struct {
		desc  string
		pm    channels.PageMetadata
		total uint64
		size  int
	}{
		{
			desc:  "all channels",
			pm:    channels.PageMetadata{Offset: 0, Limit: 10},
			total: 5,
			size:  5,
		},
		{
			desc:  "with limit",
			pm:    channels.PageMetadata{Offset: 0, Limit: 2},
			total: 5,
			size:  2,
		},
		{
			desc:  "with offset",
			pm:    channels.PageMetadata{Offset: 4, Limit: 10},
			total: 5,
			size:  1,
		},
		{
			desc:  "with name filter",
			pm:    channels.PageMetadata{Offset: 0, Limit: 10, Name: "room-3"},
			total: 1,
			size:  1,
		},
		{
			desc:  "name filter matching a private room",
			pm:    channels.PageMetadata{Offset: 0, Limit: 10, Name: "room-private"},
			total: 0,
			size:  0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			page, err := repo.RetrieveAll(context.Background(), tc.pm, channels.DefaultProjection)
			require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
			assert.Equal(t, tc.total, page.Total)
			assert.Len(t, page.Channels, tc.size)
			for _, ch := range page.Channels {
				assert.Equal(t, channels.Public, ch.Type)
				assert.Empty(t, ch.JoinCode)
			}
		})
	}
}

func TestRetrieveJoined(t *testing.T) {
	cleanup(t)
	repo := newRepository(t)

	userID := generateID(t)
	require.Nil(t, repo.SaveUser(context.Background(), channels.User{ID: userID, Username: "nova.bot"}))

	var joined []string
	for i := 0; i < 3; i++ {
		ch := saveChannel(t, repo, channels.Channel{
			ID:        generateID(t),
			Name:      fmt.Sprintf("joined-%d", i),
			Type:      channels.Public,
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		})
		joined = append(joined, ch.ID)
		err := repo.SaveSubscription(context.Background(), channels.Subscription{
			RoomID:    ch.ID,
			UserID:    userID,
			Open:      true,
			CreatedAt: time.Now().UTC(),
		})
		require.Nil(t, err, fmt.Sprintf("save subscription unexpected error: %s", err))
	}
	saveChannel(t, repo, channels.Channel{
		ID:        generateID(t),
		Name:      "not-joined",
		Type:      channels.Public,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})

	page, err := repo.RetrieveJoined(context.Background(), userID, channels.PageMetadata{Offset: 0, Limit: 10}, channels.DefaultProjection)
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	assert.Equal(t, uint64(3), page.Total)
	require.Len(t, page.Channels, 3)
	for _, ch := range page.Channels {
		assert.Contains(t, joined, ch.ID)
	}

	page, err = repo.RetrieveJoined(context.Background(), generateID(t), channels.PageMetadata{Offset: 0, Limit: 10}, channels.DefaultProjection)
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	assert.Equal(t, uint64(0), page.Total)
	assert.Empty(t, page.Channels)
}

func TestSubscriptions(t *testing.T) {
	cleanup(t)
	repo := newRepository(t)

	userID := generateID(t)
	require.Nil(t, repo.SaveUser(context.Background(), channels.User{ID: userID, Username: "nova.bot"}))
	ch := saveChannel(t, repo, channels.Channel{
		ID:        generateID(t),
		Name:      "general",
		Type:      channels.Public,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})

	sub := channels.Subscription{
		RoomID:    ch.ID,
		UserID:    userID,
		Open:      true,
		Roles:     []string{"owner", "moderator"},
		CreatedAt: time.Now().UTC(),
	}
	require.Nil(t, repo.SaveSubscription(context.Background(), sub))

	res, err := repo.RetrieveSubscription(context.Background(), ch.ID, userID)
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	assert.True(t, res.Open)
	assert.Equal(t, []string{"owner", "moderator"}, res.Roles)

	res.Open = false
	res.Roles = nil
	require.Nil(t, repo.UpdateSubscription(context.Background(), res))

	res, err = repo.RetrieveSubscription(context.Background(), ch.ID, userID)
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	assert.False(t, res.Open)
	assert.Empty(t, res.Roles)

	require.Nil(t, repo.RemoveSubscription(context.Background(), ch.ID, userID))
	_, err = repo.RetrieveSubscription(context.Background(), ch.ID, userID)
	assert.True(t, errors.Contains(err, repoerr.ErrNotFound), fmt.Sprintf("expected %s got %s", repoerr.ErrNotFound, err))
}

func TestRetrieveIntegrations(t *testing.T) {
	cleanup(t)
	repo := newRepository(t)

	for i, scope := range []string{"#general", "#general", "all_public_channels", "#random"} {
		_, err := db.Exec(
			"INSERT INTO integrations (id, type, name, scope, enabled, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
			generateID(t), "webhook-outgoing", fmt.Sprintf("hook-%d", i), scope, true, time.Now().UTC(),
		)
		require.Nil(t, err, fmt.Sprintf("seed integration unexpected error: %s", err))
	}

	cases := []struct {
		desc string
		pm   channels.IntegrationsPageMetadata
		size int
	}{
		{
			desc: "channel scope only",
			pm: channels.IntegrationsPageMetadata{
				Offset: 0,
				Limit:  10,
				Scopes: []string{"#general"},
			},
			size: 2,
		},
		{
			desc: "channel scope with public union",
			pm: channels.IntegrationsPageMetadata{
				Offset: 0,
				Limit:  10,
				Scopes: []string{"#general", channels.AllPublicChannelsScope},
			},
			size: 3,
		},
		{
			desc: "no match",
			pm: channels.IntegrationsPageMetadata{
				Offset: 0,
				Limit:  10,
				Scopes: []string{"#empty"},
			},
			size: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			page, err := repo.RetrieveIntegrations(context.Background(), tc.pm, nil)
			require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
			assert.Equal(t, uint64(tc.size), page.Total)
			assert.Len(t, page.Integrations, tc.size)
		})
	}
}

func TestMessages(t *testing.T) {
	cleanup(t)
	repo := newRepository(t)

	ch := saveChannel(t, repo, channels.Channel{
		ID:        generateID(t),
		Name:      "general",
		Type:      channels.Public,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})

	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond)
	for i := 0; i < 10; i++ {
		err := repo.SaveMessage(context.Background(), channels.Message{
			ID:        generateID(t),
			RoomID:    ch.ID,
			UserID:    generateID(t),
			Text:      fmt.Sprintf("message %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.Nil(t, err, fmt.Sprintf("save message unexpected error: %s", err))
	}

	cases := []struct {
		desc string
		req  channels.HistoryReq
		size int
	}{
		{
			desc: "full window",
			req: channels.HistoryReq{
				RoomID: ch.ID,
				Latest: base.Add(time.Hour),
				Count:  20,
			},
			size: 10,
		},
		{
			desc: "count limits the page",
			req: channels.HistoryReq{
				RoomID: ch.ID,
				Latest: base.Add(time.Hour),
				Count:  3,
			},
			size: 3,
		},
		{
			desc: "exclusive bounds",
			req: channels.HistoryReq{
				RoomID: ch.ID,
				Latest: base.Add(5 * time.Minute),
				Oldest: base.Add(2 * time.Minute),
				Count:  20,
			},
			size: 2,
		},
		{
			desc: "inclusive bounds",
			req: channels.HistoryReq{
				RoomID:    ch.ID,
				Latest:    base.Add(5 * time.Minute),
				Oldest:    base.Add(2 * time.Minute),
				Inclusive: true,
				Count:     20,
			},
			size: 4,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			msgs, err := repo.RetrieveMessages(context.Background(), tc.req)
			require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
			assert.Len(t, msgs, tc.size)
			for i := 1; i < len(msgs); i++ {
				assert.True(t, !msgs[i-1].CreatedAt.Before(msgs[i].CreatedAt), "messages must be newest first")
			}
		})
	}

	err := repo.RemoveMessages(context.Background(), ch.ID, base.Add(5*time.Minute), base.Add(2*time.Minute), false)
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	msgs, err := repo.RetrieveMessages(context.Background(), channels.HistoryReq{RoomID: ch.ID, Latest: base.Add(time.Hour), Count: 20})
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	assert.Len(t, msgs, 8)
}

func TestUsers(t *testing.T) {
	cleanup(t)
	repo := newRepository(t)

	userID := generateID(t)
	require.Nil(t, repo.SaveUser(context.Background(), channels.User{ID: userID, Username: "nova.bot"}))

	byID, err := repo.RetrieveUserByID(context.Background(), userID)
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	assert.Equal(t, "nova.bot", byID.Username)

	byName, err := repo.RetrieveUserByUsername(context.Background(), "nova.bot")
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	assert.Equal(t, userID, byName.ID)

	_, err = repo.RetrieveUserByUsername(context.Background(), "ghost")
	assert.True(t, errors.Contains(err, repoerr.ErrNotFound), fmt.Sprintf("expected %s got %s", repoerr.ErrNotFound, err))

	users, err := repo.RetrieveUsers(context.Background())
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	assert.Len(t, users, 1)
}

func TestAuthorize(t *testing.T) {
	cleanup(t)
	repo := newRepository(t)

	userID := generateID(t)
	require.Nil(t, repo.SaveUser(context.Background(), channels.User{ID: userID, Username: "nova.bot"}))
	_, err := db.Exec("UPDATE users SET capabilities = $1 WHERE id = $2", "create-c,manage-integrations", userID)
	require.Nil(t, err, fmt.Sprintf("seed capabilities unexpected error: %s", err))

	database := pgclient.NewDatabase(db, trace.NewNoopTracerProvider().Tracer("tests"))
	auth := postgres.NewAuthorization(database)

	cases := []struct {
		desc string
		pr   authz.PolicyReq
		err  error
	}{
		{
			desc: "granted capability",
			pr:   authz.PolicyReq{UserID: userID, Permission: authz.CreatePublicChannelPermission},
			err:  nil,
		},
		{
			desc: "second granted capability",
			pr:   authz.PolicyReq{UserID: userID, Permission: authz.ManageIntegrationsPermission},
			err:  nil,
		},
		{
			desc: "missing capability",
			pr:   authz.PolicyReq{UserID: userID, Permission: "delete-everything"},
			err:  svcerr.ErrAuthorization,
		},
		{
			desc: "unknown user",
			pr:   authz.PolicyReq{UserID: generateID(t), Permission: authz.CreatePublicChannelPermission},
			err:  svcerr.ErrAuthorization,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			err := auth.Authorize(context.Background(), tc.pr)
			if tc.err != nil {
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %s got %s", tc.err, err))
				return
			}
			assert.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
		})
	}
}
