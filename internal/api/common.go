// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/communecc/commune"
	"github.com/communecc/commune/channels"
	"github.com/communecc/commune/pkg/apiutil"
	"github.com/communecc/commune/pkg/errors"
	svcerr "github.com/communecc/commune/pkg/errors/service"
	"github.com/gofrs/uuid"
)

const (
	RoomIDKey      = "roomId"
	JoinCodeKey    = "joinCode"
	UserIDKey      = "userId"
	UsernameKey    = "username"
	LatestKey      = "latest"
	OldestKey      = "oldest"
	InclusiveKey   = "inclusive"
	UnreadsKey     = "unreads"
	CountKey       = "count"
	OffsetKey      = "offset"
	NameKey        = "name"
	OrderKey       = "sort"
	DirKey         = "dir"
	IncludeAllKey  = "includeAllPublicChannels"
	DefOffset      = 0
	DefLimit       = 50
	DefOrder       = "name"
	DefDir         = "asc"
	DefIncludeAll  = true
	NameOrder      = "name"
	CreatedAtOrder = "created_at"
	AscDir         = "asc"
	DescDir        = "desc"

	// ContentType represents JSON content type.
	ContentType = "application/json"

	// MaxNameSize limits name size to prevent making them too complex.
	MaxNameSize  = 1024
	MaxLimitSize = 100
)

// ValidateUUID validates UUID format.
func ValidateUUID(extID string) (err error) {
	id, err := uuid.FromString(extID)
	if id.String() != extID || err != nil {
		return apiutil.ErrInvalidIDFormat
	}

	return nil
}

// EncodeResponse encodes successful response.
func EncodeResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	if ar, ok := response.(commune.Response); ok {
		for k, v := range ar.Headers() {
			w.Header().Set(k, v)
		}
		w.Header().Set("Content-Type", ContentType)
		w.WriteHeader(ar.Code())

		if ar.Empty() {
			return nil
		}
	}

	return json.NewEncoder(w).Encode(response)
}

// EncodeError encodes an error response.
func EncodeError(_ context.Context, err error, w http.ResponseWriter) {
	var wrapper error
	if errors.Contains(err, apiutil.ErrValidation) {
		wrapper, err = errors.Unwrap(err)
	}

	w.Header().Set("Content-Type", ContentType)
	switch {
	case errors.Contains(err, svcerr.ErrAuthorization):
		err = unwrap(err)
		w.WriteHeader(http.StatusForbidden)

	case errors.Contains(err, svcerr.ErrAuthentication),
		errors.Contains(err, apiutil.ErrBearerToken):
		err = unwrap(err)
		w.WriteHeader(http.StatusUnauthorized)

	case errors.Contains(err, svcerr.ErrMalformedEntity),
		errors.Contains(err, apiutil.ErrValidation),
		errors.Contains(err, apiutil.ErrMissingRoomID),
		errors.Contains(err, apiutil.ErrMissingName),
		errors.Contains(err, apiutil.ErrMissingDescription),
		errors.Contains(err, apiutil.ErrMissingPurpose),
		errors.Contains(err, apiutil.ErrMissingTopic),
		errors.Contains(err, apiutil.ErrMissingType),
		errors.Contains(err, apiutil.ErrMissingJoinCode),
		errors.Contains(err, apiutil.ErrMissingReadOnly),
		errors.Contains(err, apiutil.ErrMissingLatest),
		errors.Contains(err, apiutil.ErrMissingOldest),
		errors.Contains(err, apiutil.ErrMissingUser),
		errors.Contains(err, apiutil.ErrInvalidMembers),
		errors.Contains(err, apiutil.ErrNameSize),
		errors.Contains(err, apiutil.ErrLimitSize),
		errors.Contains(err, apiutil.ErrInvalidIDFormat),
		errors.Contains(err, apiutil.ErrInvalidQueryParams),
		errors.Contains(err, apiutil.ErrInvalidTimeFormat),
		errors.Contains(err, channels.ErrChannelArchived),
		errors.Contains(err, channels.ErrNotArchived),
		errors.Contains(err, channels.ErrNotInChannel),
		errors.Contains(err, channels.ErrAlreadyClosed),
		errors.Contains(err, channels.ErrAlreadyOpen),
		errors.Contains(err, channels.ErrSameName),
		errors.Contains(err, channels.ErrSameDescription),
		errors.Contains(err, channels.ErrSamePurpose),
		errors.Contains(err, channels.ErrSameTopic),
		errors.Contains(err, channels.ErrSameReadOnly),
		errors.Contains(err, channels.ErrSameType),
		errors.Contains(err, svcerr.ErrViewEntity):
		err = unwrap(err)
		w.WriteHeader(http.StatusBadRequest)

	case errors.Contains(err, svcerr.ErrCreateEntity),
		errors.Contains(err, svcerr.ErrUpdateEntity),
		errors.Contains(err, svcerr.ErrRemoveEntity):
		err = unwrap(err)
		w.WriteHeader(http.StatusUnprocessableEntity)

	case errors.Contains(err, svcerr.ErrNotFound),
		errors.Contains(err, channels.ErrUserNotFound):
		err = unwrap(err)
		w.WriteHeader(http.StatusNotFound)

	case errors.Contains(err, svcerr.ErrConflict):
		err = unwrap(err)
		w.WriteHeader(http.StatusConflict)

	case errors.Contains(err, apiutil.ErrUnsupportedContentType):
		err = unwrap(err)
		w.WriteHeader(http.StatusUnsupportedMediaType)

	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	if wrapper != nil {
		err = errors.Wrap(wrapper, err)
	}

	if errorVal, ok := err.(errors.Error); ok {
		if err := json.NewEncoder(w).Encode(errorVal); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}

func unwrap(err error) error {
	wrapper, err := errors.Unwrap(err)
	if wrapper != nil {
		return wrapper
	}
	return err
}
