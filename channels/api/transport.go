// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

// Package api contains the channel administration HTTP transport. Route
// names follow the flat dot-separated convention callers already know, e.g.
// POST /v1/channels.create and GET /v1/channels.info.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/communecc/commune"
	"github.com/communecc/commune/channels"
	api "github.com/communecc/commune/internal/api"
	"github.com/communecc/commune/pkg/apiutil"
	cauthn "github.com/communecc/commune/pkg/authn"
	"github.com/communecc/commune/pkg/errors"
	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// MakeHandler returns a HTTP handler for the channels API endpoints.
func MakeHandler(svc channels.Service, logger *slog.Logger, authn cauthn.Authentication, instanceID string) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.AuthenticateMiddleware(authn))

		r.Route("/v1", func(r chi.Router) {
			r.Post("/channels.addAll", otelhttp.NewHandler(kithttp.NewServer(
				addAllEndpoint(svc),
				decodeRoomReq,
				api.EncodeResponse,
				opts...,
			), "channels_add_all").ServeHTTP)

			r.Post("/channels.addModerator", otelhttp.NewHandler(kithttp.NewServer(
				addModeratorEndpoint(svc),
				decodeUserRoomReq,
				api.EncodeResponse,
				opts...,
			), "channels_add_moderator").ServeHTTP)

			r.Post("/channels.addOwner", otelhttp.NewHandler(kithttp.NewServer(
				addOwnerEndpoint(svc),
				decodeUserRoomReq,
				api.EncodeResponse,
				opts...,
			), "channels_add_owner").ServeHTTP)

			r.Post("/channels.removeModerator", otelhttp.NewHandler(kithttp.NewServer(
				removeModeratorEndpoint(svc),
				decodeUserRoomReq,
				api.EncodeResponse,
				opts...,
			), "channels_remove_moderator").ServeHTTP)

			r.Post("/channels.removeOwner", otelhttp.NewHandler(kithttp.NewServer(
				removeOwnerEndpoint(svc),
				decodeUserRoomReq,
				api.EncodeResponse,
				opts...,
			), "channels_remove_owner").ServeHTTP)

			r.Post("/channels.archive", otelhttp.NewHandler(kithttp.NewServer(
				archiveEndpoint(svc),
				decodeRoomReq,
				api.EncodeResponse,
				opts...,
			), "channels_archive").ServeHTTP)

			r.Post("/channels.unarchive", otelhttp.NewHandler(kithttp.NewServer(
				unarchiveEndpoint(svc),
				decodeRoomReq,
				api.EncodeResponse,
				opts...,
			), "channels_unarchive").ServeHTTP)

			r.Post("/channels.cleanHistory", otelhttp.NewHandler(kithttp.NewServer(
				cleanHistoryEndpoint(svc),
				decodeCleanHistoryReq,
				api.EncodeResponse,
				opts...,
			), "channels_clean_history").ServeHTTP)

			r.Post("/channels.close", otelhttp.NewHandler(kithttp.NewServer(
				closeEndpoint(svc),
				decodeRoomReq,
				api.EncodeResponse,
				opts...,
			), "channels_close").ServeHTTP)

			r.Post("/channels.open", otelhttp.NewHandler(kithttp.NewServer(
				openEndpoint(svc),
				decodeRoomReq,
				api.EncodeResponse,
				opts...,
			), "channels_open").ServeHTTP)

			r.Post("/channels.create", otelhttp.NewHandler(kithttp.NewServer(
				createEndpoint(svc),
				decodeCreateChannelReq,
				api.EncodeResponse,
				opts...,
			), "channels_create").ServeHTTP)

			r.Post("/channels.delete", otelhttp.NewHandler(kithttp.NewServer(
				deleteEndpoint(svc),
				decodeRoomReq,
				api.EncodeResponse,
				opts...,
			), "channels_delete").ServeHTTP)

			r.Get("/channels.getIntegrations", otelhttp.NewHandler(kithttp.NewServer(
				listIntegrationsEndpoint(svc),
				decodeListIntegrationsReq,
				api.EncodeResponse,
				opts...,
			), "channels_get_integrations").ServeHTTP)

			r.Get("/channels.history", otelhttp.NewHandler(kithttp.NewServer(
				historyEndpoint(svc),
				decodeHistoryReq,
				api.EncodeResponse,
				opts...,
			), "channels_history").ServeHTTP)

			r.Get("/channels.info", otelhttp.NewHandler(kithttp.NewServer(
				infoEndpoint(svc),
				decodeInfoReq,
				api.EncodeResponse,
				opts...,
			), "channels_info").ServeHTTP)

			r.Post("/channels.invite", otelhttp.NewHandler(kithttp.NewServer(
				inviteEndpoint(svc),
				decodeUserRoomReq,
				api.EncodeResponse,
				opts...,
			), "channels_invite").ServeHTTP)

			r.Post("/channels.join", otelhttp.NewHandler(kithttp.NewServer(
				joinEndpoint(svc),
				decodeJoinReq,
				api.EncodeResponse,
				opts...,
			), "channels_join").ServeHTTP)

			r.Post("/channels.kick", otelhttp.NewHandler(kithttp.NewServer(
				kickEndpoint(svc),
				decodeUserRoomReq,
				api.EncodeResponse,
				opts...,
			), "channels_kick").ServeHTTP)

			r.Post("/channels.leave", otelhttp.NewHandler(kithttp.NewServer(
				leaveEndpoint(svc),
				decodeRoomReq,
				api.EncodeResponse,
				opts...,
			), "channels_leave").ServeHTTP)

			r.Get("/channels.list", otelhttp.NewHandler(kithttp.NewServer(
				listEndpoint(svc),
				decodeListReq,
				api.EncodeResponse,
				opts...,
			), "channels_list").ServeHTTP)

			r.Get("/channels.list.joined", otelhttp.NewHandler(kithttp.NewServer(
				listJoinedEndpoint(svc),
				decodeListReq,
				api.EncodeResponse,
				opts...,
			), "channels_list_joined").ServeHTTP)

			r.Post("/channels.rename", otelhttp.NewHandler(kithttp.NewServer(
				renameEndpoint(svc),
				decodeRenameReq,
				api.EncodeResponse,
				opts...,
			), "channels_rename").ServeHTTP)

			r.Post("/channels.setDescription", otelhttp.NewHandler(kithttp.NewServer(
				setDescriptionEndpoint(svc),
				decodeSetDescriptionReq,
				api.EncodeResponse,
				opts...,
			), "channels_set_description").ServeHTTP)

			r.Post("/channels.setJoinCode", otelhttp.NewHandler(kithttp.NewServer(
				setJoinCodeEndpoint(svc),
				decodeSetJoinCodeReq,
				api.EncodeResponse,
				opts...,
			), "channels_set_join_code").ServeHTTP)

			r.Post("/channels.setPurpose", otelhttp.NewHandler(kithttp.NewServer(
				setPurposeEndpoint(svc),
				decodeSetPurposeReq,
				api.EncodeResponse,
				opts...,
			), "channels_set_purpose").ServeHTTP)

			r.Post("/channels.setReadOnly", otelhttp.NewHandler(kithttp.NewServer(
				setReadOnlyEndpoint(svc),
				decodeSetReadOnlyReq,
				api.EncodeResponse,
				opts...,
			), "channels_set_read_only").ServeHTTP)

			r.Post("/channels.setTopic", otelhttp.NewHandler(kithttp.NewServer(
				setTopicEndpoint(svc),
				decodeSetTopicReq,
				api.EncodeResponse,
				opts...,
			), "channels_set_topic").ServeHTTP)

			r.Post("/channels.setType", otelhttp.NewHandler(kithttp.NewServer(
				setTypeEndpoint(svc),
				decodeSetTypeReq,
				api.EncodeResponse,
				opts...,
			), "channels_set_type").ServeHTTP)
		})
	})

	mux.Get("/health", commune.Health("channels", instanceID))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func checkContentType(r *http.Request) error {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	return nil
}

func decodeRoomReq(_ context.Context, r *http.Request) (interface{}, error) {
	if err := checkContentType(r); err != nil {
		return nil, err
	}

	var req roomReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return req, nil
}

func decodeUserRoomReq(_ context.Context, r *http.Request) (interface{}, error) {
	if err := checkContentType(r); err != nil {
		return nil, err
	}

	var req userRoomReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return req, nil
}

func decodeCreateChannelReq(_ context.Context, r *http.Request) (interface{}, error) {
	if err := checkContentType(r); err != nil {
		return nil, err
	}

	var aux struct {
		Name     string          `json:"name"`
		Members  json.RawMessage `json:"members"`
		ReadOnly bool            `json:"readOnly"`
	}
	if err := json.NewDecoder(r.Body).Decode(&aux); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	req := createChannelReq{
		Name:     aux.Name,
		ReadOnly: aux.ReadOnly,
	}
	if len(aux.Members) > 0 {
		if err := json.Unmarshal(aux.Members, &req.Members); err != nil {
			req.membersInvalid = true
		}
	}

	return req, nil
}

func decodeCleanHistoryReq(_ context.Context, r *http.Request) (interface{}, error) {
	if err := checkContentType(r); err != nil {
		return nil, err
	}

	var req cleanHistoryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(apiutil.ErrInvalidTimeFormat, err))
	}

	return req, nil
}

func decodeJoinReq(_ context.Context, r *http.Request) (interface{}, error) {
	if err := checkContentType(r); err != nil {
		return nil, err
	}

	var req joinReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return req, nil
}

func decodeRenameReq(_ context.Context, r *http.Request) (interface{}, error) {
	if err := checkContentType(r); err != nil {
		return nil, err
	}

	var req renameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return req, nil
}

func decodeSetDescriptionReq(_ context.Context, r *http.Request) (interface{}, error) {
	if err := checkContentType(r); err != nil {
		return nil, err
	}

	var req setDescriptionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return req, nil
}

func decodeSetPurposeReq(_ context.Context, r *http.Request) (interface{}, error) {
	if err := checkContentType(r); err != nil {
		return nil, err
	}

	var req setPurposeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return req, nil
}

func decodeSetTopicReq(_ context.Context, r *http.Request) (interface{}, error) {
	if err := checkContentType(r); err != nil {
		return nil, err
	}

	var req setTopicReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return req, nil
}

func decodeSetJoinCodeReq(_ context.Context, r *http.Request) (interface{}, error) {
	if err := checkContentType(r); err != nil {
		return nil, err
	}

	var req setJoinCodeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return req, nil
}

func decodeSetReadOnlyReq(_ context.Context, r *http.Request) (interface{}, error) {
	if err := checkContentType(r); err != nil {
		return nil, err
	}

	var req setReadOnlyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return req, nil
}

func decodeSetTypeReq(_ context.Context, r *http.Request) (interface{}, error) {
	if err := checkContentType(r); err != nil {
		return nil, err
	}

	var req setTypeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return req, nil
}

func decodeInfoReq(_ context.Context, r *http.Request) (interface{}, error) {
	roomID, err := apiutil.ReadStringQuery(r, api.RoomIDKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return infoReq{RoomID: roomID}, nil
}

func decodeHistoryReq(_ context.Context, r *http.Request) (interface{}, error) {
	roomID, err := apiutil.ReadStringQuery(r, api.RoomIDKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	latest, err := apiutil.ReadTimeQuery(r, api.LatestKey, time.Time{})
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	oldest, err := apiutil.ReadTimeQuery(r, api.OldestKey, time.Time{})
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	inclusive, err := apiutil.ReadBoolQuery(r, api.InclusiveKey, false)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	count, err := apiutil.ReadNumQuery[uint64](r, api.CountKey, 0)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	unreads, err := apiutil.ReadBoolQuery(r, api.UnreadsKey, false)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return historyReq{
		HistoryReq: channels.HistoryReq{
			RoomID:    roomID,
			Latest:    latest,
			Oldest:    oldest,
			Inclusive: inclusive,
			Count:     count,
			Unreads:   unreads,
		},
	}, nil
}

func decodeListReq(_ context.Context, r *http.Request) (interface{}, error) {
	offset, err := apiutil.ReadNumQuery[uint64](r, api.OffsetKey, api.DefOffset)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	limit, err := apiutil.ReadNumQuery[uint64](r, api.CountKey, api.DefLimit)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	name, err := apiutil.ReadStringQuery(r, api.NameKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	order, err := apiutil.ReadStringQuery(r, api.OrderKey, api.DefOrder)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	dir, err := apiutil.ReadStringQuery(r, api.DirKey, api.DefDir)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return listReq{
		PageMetadata: channels.PageMetadata{
			Offset: offset,
			Limit:  limit,
			Name:   name,
			Order:  order,
			Dir:    dir,
		},
	}, nil
}

func decodeListIntegrationsReq(_ context.Context, r *http.Request) (interface{}, error) {
	roomID, err := apiutil.ReadStringQuery(r, api.RoomIDKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	includeAll, err := apiutil.ReadBoolQuery(r, api.IncludeAllKey, api.DefIncludeAll)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	offset, err := apiutil.ReadNumQuery[uint64](r, api.OffsetKey, api.DefOffset)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	limit, err := apiutil.ReadNumQuery[uint64](r, api.CountKey, api.DefLimit)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	name, err := apiutil.ReadStringQuery(r, api.NameKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	order, err := apiutil.ReadStringQuery(r, api.OrderKey, api.CreatedAtOrder)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	dir, err := apiutil.ReadStringQuery(r, api.DirKey, api.DefDir)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return listIntegrationsReq{
		RoomID:     roomID,
		IncludeAll: includeAll,
		IntegrationsPageMetadata: channels.IntegrationsPageMetadata{
			Offset: offset,
			Limit:  limit,
			Name:   name,
			Order:  order,
			Dir:    dir,
		},
	}, nil
}
