// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/communecc/commune/channels"
	"github.com/communecc/commune/pkg/authn"
	"github.com/go-kit/kit/metrics"
)

var _ channels.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     channels.Service
}

// Metrics returns a metrics middleware for the channels service.
func Metrics(counter metrics.Counter, latency metrics.Histogram, svc channels.Service) channels.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (mm *metricsMiddleware) instrument(method string) func() {
	begin := time.Now()
	return func() {
		mm.counter.With("method", method).Add(1)
		mm.latency.With("method", method).Observe(time.Since(begin).Seconds())
	}
}

func (mm *metricsMiddleware) AddAll(ctx context.Context, session authn.Session, roomID string) (channels.Channel, error) {
	defer mm.instrument("add_all")()
	return mm.svc.AddAll(ctx, session, roomID)
}

func (mm *metricsMiddleware) AddModerator(ctx context.Context, session authn.Session, roomID string, user channels.UserRef) error {
	defer mm.instrument("add_moderator")()
	return mm.svc.AddModerator(ctx, session, roomID, user)
}

func (mm *metricsMiddleware) AddOwner(ctx context.Context, session authn.Session, roomID string, user channels.UserRef) error {
	defer mm.instrument("add_owner")()
	return mm.svc.AddOwner(ctx, session, roomID, user)
}

func (mm *metricsMiddleware) RemoveModerator(ctx context.Context, session authn.Session, roomID string, user channels.UserRef) error {
	defer mm.instrument("remove_moderator")()
	return mm.svc.RemoveModerator(ctx, session, roomID, user)
}

func (mm *metricsMiddleware) RemoveOwner(ctx context.Context, session authn.Session, roomID string, user channels.UserRef) error {
	defer mm.instrument("remove_owner")()
	return mm.svc.RemoveOwner(ctx, session, roomID, user)
}

func (mm *metricsMiddleware) Archive(ctx context.Context, session authn.Session, roomID string) error {
	defer mm.instrument("archive")()
	return mm.svc.Archive(ctx, session, roomID)
}

func (mm *metricsMiddleware) Unarchive(ctx context.Context, session authn.Session, roomID string) error {
	defer mm.instrument("unarchive")()
	return mm.svc.Unarchive(ctx, session, roomID)
}

func (mm *metricsMiddleware) CleanHistory(ctx context.Context, session authn.Session, roomID string, latest, oldest time.Time, inclusive bool) error {
	defer mm.instrument("clean_history")()
	return mm.svc.CleanHistory(ctx, session, roomID, latest, oldest, inclusive)
}

func (mm *metricsMiddleware) Close(ctx context.Context, session authn.Session, roomID string) error {
	defer mm.instrument("close")()
	return mm.svc.Close(ctx, session, roomID)
}

func (mm *metricsMiddleware) Open(ctx context.Context, session authn.Session, roomID string) error {
	defer mm.instrument("open")()
	return mm.svc.Open(ctx, session, roomID)
}

func (mm *metricsMiddleware) Create(ctx context.Context, session authn.Session, req channels.CreateChannelReq) (channels.Channel, error) {
	defer mm.instrument("create")()
	return mm.svc.Create(ctx, session, req)
}

func (mm *metricsMiddleware) Delete(ctx context.Context, session authn.Session, roomID string) (channels.Channel, error) {
	defer mm.instrument("delete")()
	return mm.svc.Delete(ctx, session, roomID)
}

func (mm *metricsMiddleware) ListIntegrations(ctx context.Context, session authn.Session, roomID string, includeAllPublicChannels bool, pm channels.IntegrationsPageMetadata) (channels.IntegrationsPage, error) {
	defer mm.instrument("list_integrations")()
	return mm.svc.ListIntegrations(ctx, session, roomID, includeAllPublicChannels, pm)
}

func (mm *metricsMiddleware) History(ctx context.Context, session authn.Session, req channels.HistoryReq) ([]channels.Message, error) {
	defer mm.instrument("history")()
	return mm.svc.History(ctx, session, req)
}

func (mm *metricsMiddleware) View(ctx context.Context, session authn.Session, roomID string) (channels.Channel, error) {
	defer mm.instrument("view")()
	return mm.svc.View(ctx, session, roomID)
}

func (mm *metricsMiddleware) Invite(ctx context.Context, session authn.Session, roomID string, user channels.UserRef) (channels.Channel, error) {
	defer mm.instrument("invite")()
	return mm.svc.Invite(ctx, session, roomID, user)
}

func (mm *metricsMiddleware) Join(ctx context.Context, session authn.Session, roomID, joinCode string) (channels.Channel, error) {
	defer mm.instrument("join")()
	return mm.svc.Join(ctx, session, roomID, joinCode)
}

func (mm *metricsMiddleware) Kick(ctx context.Context, session authn.Session, roomID string, user channels.UserRef) (channels.Channel, error) {
	defer mm.instrument("kick")()
	return mm.svc.Kick(ctx, session, roomID, user)
}

func (mm *metricsMiddleware) Leave(ctx context.Context, session authn.Session, roomID string) (channels.Channel, error) {
	defer mm.instrument("leave")()
	return mm.svc.Leave(ctx, session, roomID)
}

func (mm *metricsMiddleware) List(ctx context.Context, session authn.Session, pm channels.PageMetadata) (channels.Page, error) {
	defer mm.instrument("list")()
	return mm.svc.List(ctx, session, pm)
}

func (mm *metricsMiddleware) ListJoined(ctx context.Context, session authn.Session, pm channels.PageMetadata) (channels.Page, error) {
	defer mm.instrument("list_joined")()
	return mm.svc.ListJoined(ctx, session, pm)
}

func (mm *metricsMiddleware) Rename(ctx context.Context, session authn.Session, roomID, name string) (channels.Channel, error) {
	defer mm.instrument("rename")()
	return mm.svc.Rename(ctx, session, roomID, name)
}

func (mm *metricsMiddleware) SetDescription(ctx context.Context, session authn.Session, roomID, description string) (string, error) {
	defer mm.instrument("set_description")()
	return mm.svc.SetDescription(ctx, session, roomID, description)
}

func (mm *metricsMiddleware) SetPurpose(ctx context.Context, session authn.Session, roomID, purpose string) (string, error) {
	defer mm.instrument("set_purpose")()
	return mm.svc.SetPurpose(ctx, session, roomID, purpose)
}

func (mm *metricsMiddleware) SetTopic(ctx context.Context, session authn.Session, roomID, topic string) (string, error) {
	defer mm.instrument("set_topic")()
	return mm.svc.SetTopic(ctx, session, roomID, topic)
}

func (mm *metricsMiddleware) SetJoinCode(ctx context.Context, session authn.Session, roomID, joinCode string) (channels.Channel, error) {
	defer mm.instrument("set_join_code")()
	return mm.svc.SetJoinCode(ctx, session, roomID, joinCode)
}

func (mm *metricsMiddleware) SetReadOnly(ctx context.Context, session authn.Session, roomID string, readOnly bool) (channels.Channel, error) {
	defer mm.instrument("set_read_only")()
	return mm.svc.SetReadOnly(ctx, session, roomID, readOnly)
}

func (mm *metricsMiddleware) SetType(ctx context.Context, session authn.Session, roomID, channelType string) (channels.Channel, error) {
	defer mm.instrument("set_type")()
	return mm.svc.SetType(ctx, session, roomID, channelType)
}
