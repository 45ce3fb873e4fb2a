// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

package apiutil

import "github.com/communecc/commune/pkg/errors"

// Errors defined in this file are used by the LoggingErrorEncoder decorator
// to distinguish and log API request validation errors and avoid that service
// errors are logged twice.
var (
	// ErrValidation indicates that an error was returned by the API.
	ErrValidation = errors.New("something went wrong with the request")

	// ErrBearerToken indicates missing or invalid bearer user token.
	ErrBearerToken = errors.New("missing or invalid bearer user token")

	// ErrMissingRoomID indicates a missing or blank roomId parameter.
	ErrMissingRoomID = errors.New("the parameter \"roomId\" is required")

	// ErrMissingName indicates a missing or blank name parameter.
	ErrMissingName = errors.New("the parameter \"name\" is required")

	// ErrMissingDescription indicates a missing or blank description parameter.
	ErrMissingDescription = errors.New("the parameter \"description\" is required")

	// ErrMissingPurpose indicates a missing or blank purpose parameter.
	ErrMissingPurpose = errors.New("the parameter \"purpose\" is required")

	// ErrMissingTopic indicates a missing or blank topic parameter.
	ErrMissingTopic = errors.New("the parameter \"topic\" is required")

	// ErrMissingType indicates a missing or blank type parameter.
	ErrMissingType = errors.New("the parameter \"type\" is required")

	// ErrMissingJoinCode indicates a missing or blank joinCode parameter.
	ErrMissingJoinCode = errors.New("the parameter \"joinCode\" is required")

	// ErrMissingReadOnly indicates an absent readOnly parameter.
	ErrMissingReadOnly = errors.New("the parameter \"readOnly\" is required")

	// ErrMissingLatest indicates a missing latest parameter.
	ErrMissingLatest = errors.New("the parameter \"latest\" is required")

	// ErrMissingOldest indicates a missing oldest parameter.
	ErrMissingOldest = errors.New("the parameter \"oldest\" is required")

	// ErrMissingUser indicates that neither userId nor username was provided.
	ErrMissingUser = errors.New("the parameter \"userId\" or \"username\" is required")

	// ErrInvalidMembers indicates that members is not a list.
	ErrInvalidMembers = errors.New("the parameter \"members\" must be an array if provided")

	// ErrNameSize indicates that name size exceeds the max.
	ErrNameSize = errors.New("invalid name size")

	// ErrLimitSize indicates an invalid limit.
	ErrLimitSize = errors.New("invalid limit size")

	// ErrInvalidQueryParams indicates invalid query parameters.
	ErrInvalidQueryParams = errors.New("invalid query parameters")

	// ErrInvalidIDFormat indicates an invalid UUID format.
	ErrInvalidIDFormat = errors.New("invalid id format provided")

	// ErrInvalidTimeFormat indicates an unparseable date parameter.
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrUnsupportedContentType indicates an unacceptable or missing content-type.
	ErrUnsupportedContentType = errors.New("unsupported content type")
)
