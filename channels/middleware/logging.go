// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/communecc/commune/channels"
	"github.com/communecc/commune/pkg/authn"
)

var _ channels.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    channels.Service
}

// Logging returns a logging middleware for the channels service.
func Logging(logger *slog.Logger, svc channels.Service) channels.Service {
	return &loggingMiddleware{logger, svc}
}

func (lm *loggingMiddleware) log(begin time.Time, op string, err error, args ...any) {
	args = append(args, slog.String("duration", time.Since(begin).String()))
	if err != nil {
		args = append(args, slog.String("error", err.Error()))
		lm.logger.Warn(op+" failed", args...)
		return
	}
	lm.logger.Info(op+" completed successfully", args...)
}

func (lm *loggingMiddleware) AddAll(ctx context.Context, session authn.Session, roomID string) (ch channels.Channel, err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Add all users", err, slog.String("room_id", roomID))
	}(time.Now())
	return lm.svc.AddAll(ctx, session, roomID)
}

func (lm *loggingMiddleware) AddModerator(ctx context.Context, session authn.Session, roomID string, user channels.UserRef) (err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Add moderator", err, slog.String("room_id", roomID), slog.String("username", user.Username))
	}(time.Now())
	return lm.svc.AddModerator(ctx, session, roomID, user)
}

func (lm *loggingMiddleware) AddOwner(ctx context.Context, session authn.Session, roomID string, user channels.UserRef) (err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Add owner", err, slog.String("room_id", roomID), slog.String("username", user.Username))
	}(time.Now())
	return lm.svc.AddOwner(ctx, session, roomID, user)
}

func (lm *loggingMiddleware) RemoveModerator(ctx context.Context, session authn.Session, roomID string, user channels.UserRef) (err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Remove moderator", err, slog.String("room_id", roomID), slog.String("username", user.Username))
	}(time.Now())
	return lm.svc.RemoveModerator(ctx, session, roomID, user)
}

func (lm *loggingMiddleware) RemoveOwner(ctx context.Context, session authn.Session, roomID string, user channels.UserRef) (err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Remove owner", err, slog.String("room_id", roomID), slog.String("username", user.Username))
	}(time.Now())
	return lm.svc.RemoveOwner(ctx, session, roomID, user)
}

func (lm *loggingMiddleware) Archive(ctx context.Context, session authn.Session, roomID string) (err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Archive channel", err, slog.String("room_id", roomID))
	}(time.Now())
	return lm.svc.Archive(ctx, session, roomID)
}

func (lm *loggingMiddleware) Unarchive(ctx context.Context, session authn.Session, roomID string) (err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Unarchive channel", err, slog.String("room_id", roomID))
	}(time.Now())
	return lm.svc.Unarchive(ctx, session, roomID)
}

func (lm *loggingMiddleware) CleanHistory(ctx context.Context, session authn.Session, roomID string, latest, oldest time.Time, inclusive bool) (err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Clean channel history", err,
			slog.String("room_id", roomID),
			slog.Group("window",
				slog.Time("latest", latest),
				slog.Time("oldest", oldest),
				slog.Bool("inclusive", inclusive),
			),
		)
	}(time.Now())
	return lm.svc.CleanHistory(ctx, session, roomID, latest, oldest, inclusive)
}

func (lm *loggingMiddleware) Close(ctx context.Context, session authn.Session, roomID string) (err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Close channel", err, slog.String("room_id", roomID))
	}(time.Now())
	return lm.svc.Close(ctx, session, roomID)
}

func (lm *loggingMiddleware) Open(ctx context.Context, session authn.Session, roomID string) (err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Open channel", err, slog.String("room_id", roomID))
	}(time.Now())
	return lm.svc.Open(ctx, session, roomID)
}

func (lm *loggingMiddleware) Create(ctx context.Context, session authn.Session, req channels.CreateChannelReq) (ch channels.Channel, err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Create channel", err,
			slog.Group("channel",
				slog.String("name", req.Name),
				slog.Bool("read_only", req.ReadOnly),
				slog.Int("members", len(req.Members)),
			),
		)
	}(time.Now())
	return lm.svc.Create(ctx, session, req)
}

func (lm *loggingMiddleware) Delete(ctx context.Context, session authn.Session, roomID string) (ch channels.Channel, err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Delete channel", err, slog.String("room_id", roomID))
	}(time.Now())
	return lm.svc.Delete(ctx, session, roomID)
}

func (lm *loggingMiddleware) ListIntegrations(ctx context.Context, session authn.Session, roomID string, includeAllPublicChannels bool, pm channels.IntegrationsPageMetadata) (page channels.IntegrationsPage, err error) {
	defer func(begin time.Time) {
		lm.log(begin, "List channel integrations", err,
			slog.String("room_id", roomID),
			slog.Group("page",
				slog.Uint64("offset", pm.Offset),
				slog.Uint64("limit", pm.Limit),
				slog.Uint64("total", page.Total),
			),
		)
	}(time.Now())
	return lm.svc.ListIntegrations(ctx, session, roomID, includeAllPublicChannels, pm)
}

func (lm *loggingMiddleware) History(ctx context.Context, session authn.Session, req channels.HistoryReq) (msgs []channels.Message, err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Channel history", err, slog.String("room_id", req.RoomID), slog.Uint64("count", req.Count))
	}(time.Now())
	return lm.svc.History(ctx, session, req)
}

func (lm *loggingMiddleware) View(ctx context.Context, session authn.Session, roomID string) (ch channels.Channel, err error) {
	defer func(begin time.Time) {
		lm.log(begin, "View channel", err, slog.String("room_id", roomID))
	}(time.Now())
	return lm.svc.View(ctx, session, roomID)
}

func (lm *loggingMiddleware) Invite(ctx context.Context, session authn.Session, roomID string, user channels.UserRef) (ch channels.Channel, err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Invite user", err, slog.String("room_id", roomID), slog.String("username", user.Username))
	}(time.Now())
	return lm.svc.Invite(ctx, session, roomID, user)
}

func (lm *loggingMiddleware) Join(ctx context.Context, session authn.Session, roomID, joinCode string) (ch channels.Channel, err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Join channel", err, slog.String("room_id", roomID))
	}(time.Now())
	return lm.svc.Join(ctx, session, roomID, joinCode)
}

func (lm *loggingMiddleware) Kick(ctx context.Context, session authn.Session, roomID string, user channels.UserRef) (ch channels.Channel, err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Kick user", err, slog.String("room_id", roomID), slog.String("username", user.Username))
	}(time.Now())
	return lm.svc.Kick(ctx, session, roomID, user)
}

func (lm *loggingMiddleware) Leave(ctx context.Context, session authn.Session, roomID string) (ch channels.Channel, err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Leave channel", err, slog.String("room_id", roomID))
	}(time.Now())
	return lm.svc.Leave(ctx, session, roomID)
}

func (lm *loggingMiddleware) List(ctx context.Context, session authn.Session, pm channels.PageMetadata) (page channels.Page, err error) {
	defer func(begin time.Time) {
		lm.log(begin, "List channels", err,
			slog.Group("page",
				slog.Uint64("offset", pm.Offset),
				slog.Uint64("limit", pm.Limit),
				slog.Uint64("total", page.Total),
			),
		)
	}(time.Now())
	return lm.svc.List(ctx, session, pm)
}

func (lm *loggingMiddleware) ListJoined(ctx context.Context, session authn.Session, pm channels.PageMetadata) (page channels.Page, err error) {
	defer func(begin time.Time) {
		lm.log(begin, "List joined channels", err,
			slog.Group("page",
				slog.Uint64("offset", pm.Offset),
				slog.Uint64("limit", pm.Limit),
				slog.Uint64("total", page.Total),
			),
		)
	}(time.Now())
	return lm.svc.ListJoined(ctx, session, pm)
}

func (lm *loggingMiddleware) Rename(ctx context.Context, session authn.Session, roomID, name string) (ch channels.Channel, err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Rename channel", err, slog.String("room_id", roomID), slog.String("name", name))
	}(time.Now())
	return lm.svc.Rename(ctx, session, roomID, name)
}

func (lm *loggingMiddleware) SetDescription(ctx context.Context, session authn.Session, roomID, description string) (res string, err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Set channel description", err, slog.String("room_id", roomID))
	}(time.Now())
	return lm.svc.SetDescription(ctx, session, roomID, description)
}

func (lm *loggingMiddleware) SetPurpose(ctx context.Context, session authn.Session, roomID, purpose string) (res string, err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Set channel purpose", err, slog.String("room_id", roomID))
	}(time.Now())
	return lm.svc.SetPurpose(ctx, session, roomID, purpose)
}

func (lm *loggingMiddleware) SetTopic(ctx context.Context, session authn.Session, roomID, topic string) (res string, err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Set channel topic", err, slog.String("room_id", roomID))
	}(time.Now())
	return lm.svc.SetTopic(ctx, session, roomID, topic)
}

func (lm *loggingMiddleware) SetJoinCode(ctx context.Context, session authn.Session, roomID, joinCode string) (ch channels.Channel, err error) {
	defer func(begin time.Time) {
		// The code itself is never logged.
		lm.log(begin, "Set channel join code", err, slog.String("room_id", roomID))
	}(time.Now())
	return lm.svc.SetJoinCode(ctx, session, roomID, joinCode)
}

func (lm *loggingMiddleware) SetReadOnly(ctx context.Context, session authn.Session, roomID string, readOnly bool) (ch channels.Channel, err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Set channel read only", err, slog.String("room_id", roomID), slog.Bool("read_only", readOnly))
	}(time.Now())
	return lm.svc.SetReadOnly(ctx, session, roomID, readOnly)
}

func (lm *loggingMiddleware) SetType(ctx context.Context, session authn.Session, roomID, channelType string) (ch channels.Channel, err error) {
	defer func(begin time.Time) {
		lm.log(begin, "Set channel type", err, slog.String("room_id", roomID), slog.String("type", channelType))
	}(time.Now())
	return lm.svc.SetType(ctx, session, roomID, channelType)
}
