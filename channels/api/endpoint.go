// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/communecc/commune/channels"
	api "github.com/communecc/commune/internal/api"
	"github.com/communecc/commune/pkg/apiutil"
	"github.com/communecc/commune/pkg/authn"
	"github.com/communecc/commune/pkg/errors"
	svcerr "github.com/communecc/commune/pkg/errors/service"
	"github.com/go-kit/kit/endpoint"
)

func sessionFromContext(ctx context.Context) (authn.Session, error) {
	session, ok := ctx.Value(api.SessionKey).(authn.Session)
	if !ok {
		return authn.Session{}, svcerr.ErrAuthentication
	}

	return session, nil
}

func addAllEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(roomReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		ch, err := svc.AddAll(ctx, session, req.RoomID)
		if err != nil {
			return nil, err
		}

		return channelRes{Channel: ch, Success: true}, nil
	}
}

func addModeratorEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(userRoomReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		ref := channels.UserRef{UserID: req.UserID, Username: req.Username}
		if err := svc.AddModerator(ctx, session, req.RoomID, ref); err != nil {
			return nil, err
		}

		return statusRes{Success: true}, nil
	}
}

func addOwnerEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(userRoomReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		ref := channels.UserRef{UserID: req.UserID, Username: req.Username}
		if err := svc.AddOwner(ctx, session, req.RoomID, ref); err != nil {
			return nil, err
		}

		return statusRes{Success: true}, nil
	}
}

func removeModeratorEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(userRoomReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		ref := channels.UserRef{UserID: req.UserID, Username: req.Username}
		if err := svc.RemoveModerator(ctx, session, req.RoomID, ref); err != nil {
			return nil, err
		}

		return statusRes{Success: true}, nil
	}
}

func removeOwnerEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(userRoomReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		ref := channels.UserRef{UserID: req.UserID, Username: req.Username}
		if err := svc.RemoveOwner(ctx, session, req.RoomID, ref); err != nil {
			return nil, err
		}

		return statusRes{Success: true}, nil
	}
}

func archiveEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(roomReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		if err := svc.Archive(ctx, session, req.RoomID); err != nil {
			return nil, err
		}

		return statusRes{Success: true}, nil
	}
}

func unarchiveEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(roomReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		if err := svc.Unarchive(ctx, session, req.RoomID); err != nil {
			return nil, err
		}

		return statusRes{Success: true}, nil
	}
}

func cleanHistoryEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(cleanHistoryReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		if err := svc.CleanHistory(ctx, session, req.RoomID, req.Latest, req.Oldest, req.Inclusive); err != nil {
			return nil, err
		}

		return statusRes{Success: true}, nil
	}
}

func closeEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(roomReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		if err := svc.Close(ctx, session, req.RoomID); err != nil {
			return nil, err
		}

		return statusRes{Success: true}, nil
	}
}

func openEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(roomReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		if err := svc.Open(ctx, session, req.RoomID); err != nil {
			return nil, err
		}

		return statusRes{Success: true}, nil
	}
}

func createEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(createChannelReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		ch, err := svc.Create(ctx, session, channels.CreateChannelReq{
			Name:     req.Name,
			Members:  req.Members,
			ReadOnly: req.ReadOnly,
		})
		if err != nil {
			return nil, err
		}

		return channelRes{Channel: ch, Success: true, created: true}, nil
	}
}

func deleteEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(roomReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		ch, err := svc.Delete(ctx, session, req.RoomID)
		if err != nil {
			return nil, err
		}

		return channelRes{Channel: ch, Success: true}, nil
	}
}

func listIntegrationsEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listIntegrationsReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		page, err := svc.ListIntegrations(ctx, session, req.RoomID, req.IncludeAll, req.IntegrationsPageMetadata)
		if err != nil {
			return nil, err
		}

		return integrationsPageRes{
			Integrations: page.Integrations,
			Count:        uint64(len(page.Integrations)),
			Offset:       page.Offset,
			Total:        page.Total,
			Success:      true,
		}, nil
	}
}

func historyEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(historyReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		msgs, err := svc.History(ctx, session, req.HistoryReq)
		if err != nil {
			return nil, err
		}

		return messagesRes{Messages: msgs, Success: true}, nil
	}
}

func infoEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(infoReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		ch, err := svc.View(ctx, session, req.RoomID)
		if err != nil {
			return nil, err
		}

		return channelRes{Channel: ch, Success: true}, nil
	}
}

func inviteEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(userRoomReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		ref := channels.UserRef{UserID: req.UserID, Username: req.Username}
		ch, err := svc.Invite(ctx, session, req.RoomID, ref)
		if err != nil {
			return nil, err
		}

		return channelRes{Channel: ch, Success: true}, nil
	}
}

func joinEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(joinReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		ch, err := svc.Join(ctx, session, req.RoomID, req.JoinCode)
		if err != nil {
			return nil, err
		}

		return channelRes{Channel: ch, Success: true}, nil
	}
}

func kickEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(userRoomReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		ref := channels.UserRef{UserID: req.UserID, Username: req.Username}
		ch, err := svc.Kick(ctx, session, req.RoomID, ref)
		if err != nil {
			return nil, err
		}

		return channelRes{Channel: ch, Success: true}, nil
	}
}

func leaveEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(roomReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		ch, err := svc.Leave(ctx, session, req.RoomID)
		if err != nil {
			return nil, err
		}

		return channelRes{Channel: ch, Success: true}, nil
	}
}

func listEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		page, err := svc.List(ctx, session, req.PageMetadata)
		if err != nil {
			return nil, err
		}

		return channelsPageRes{
			Channels: page.Channels,
			Count:    uint64(len(page.Channels)),
			Offset:   page.Offset,
			Total:    page.Total,
			Success:  true,
		}, nil
	}
}

func listJoinedEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		page, err := svc.ListJoined(ctx, session, req.PageMetadata)
		if err != nil {
			return nil, err
		}

		return channelsPageRes{
			Channels: page.Channels,
			Count:    uint64(len(page.Channels)),
			Offset:   page.Offset,
			Total:    page.Total,
			Success:  true,
		}, nil
	}
}

func renameEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(renameReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		ch, err := svc.Rename(ctx, session, req.RoomID, req.Name)
		if err != nil {
			return nil, err
		}

		return channelRes{Channel: ch, Success: true}, nil
	}
}

func setDescriptionEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(setDescriptionReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		description, err := svc.SetDescription(ctx, session, req.RoomID, req.Description)
		if err != nil {
			return nil, err
		}

		return descriptionRes{Description: description, Success: true}, nil
	}
}

func setPurposeEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(setPurposeReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		purpose, err := svc.SetPurpose(ctx, session, req.RoomID, req.Purpose)
		if err != nil {
			return nil, err
		}

		return purposeRes{Purpose: purpose, Success: true}, nil
	}
}

func setTopicEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(setTopicReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		topic, err := svc.SetTopic(ctx, session, req.RoomID, req.Topic)
		if err != nil {
			return nil, err
		}

		return topicRes{Topic: topic, Success: true}, nil
	}
}

func setJoinCodeEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(setJoinCodeReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		ch, err := svc.SetJoinCode(ctx, session, req.RoomID, req.JoinCode)
		if err != nil {
			return nil, err
		}

		return channelRes{Channel: ch, Success: true}, nil
	}
}

func setReadOnlyEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(setReadOnlyReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		ch, err := svc.SetReadOnly(ctx, session, req.RoomID, *req.ReadOnly)
		if err != nil {
			return nil, err
		}

		return channelRes{Channel: ch, Success: true}, nil
	}
}

func setTypeEndpoint(svc channels.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(setTypeReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		session, err := sessionFromContext(ctx)
		if err != nil {
			return nil, err
		}

		ch, err := svc.SetType(ctx, session, req.RoomID, req.Type)
		if err != nil {
			return nil, err
		}

		return channelRes{Channel: ch, Success: true}, nil
	}
}
