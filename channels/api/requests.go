// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"strings"
	"time"

	"github.com/communecc/commune/channels"
	api "github.com/communecc/commune/internal/api"
	"github.com/communecc/commune/pkg/apiutil"
)

type roomReq struct {
	RoomID string `json:"roomId"`
}

func (req roomReq) validate() error {
	if strings.TrimSpace(req.RoomID) == "" {
		return apiutil.ErrMissingRoomID
	}

	return nil
}

type userRoomReq struct {
	RoomID   string `json:"roomId"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

func (req userRoomReq) validate() error {
	if strings.TrimSpace(req.RoomID) == "" {
		return apiutil.ErrMissingRoomID
	}
	if strings.TrimSpace(req.UserID) == "" && strings.TrimSpace(req.Username) == "" {
		return apiutil.ErrMissingUser
	}

	return nil
}

type createChannelReq struct {
	Name     string   `json:"name"`
	Members  []string `json:"members"`
	ReadOnly bool     `json:"readOnly"`

	membersInvalid bool
}

func (req createChannelReq) validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return apiutil.ErrMissingName
	}
	if len(req.Name) > api.MaxNameSize {
		return apiutil.ErrNameSize
	}
	if req.membersInvalid {
		return apiutil.ErrInvalidMembers
	}

	return nil
}

type cleanHistoryReq struct {
	RoomID    string    `json:"roomId"`
	Latest    time.Time `json:"latest"`
	Oldest    time.Time `json:"oldest"`
	Inclusive bool      `json:"inclusive"`
}

func (req cleanHistoryReq) validate() error {
	if strings.TrimSpace(req.RoomID) == "" {
		return apiutil.ErrMissingRoomID
	}
	if req.Latest.IsZero() {
		return apiutil.ErrMissingLatest
	}
	if req.Oldest.IsZero() {
		return apiutil.ErrMissingOldest
	}

	return nil
}

type joinReq struct {
	RoomID   string `json:"roomId"`
	JoinCode string `json:"joinCode"`
}

func (req joinReq) validate() error {
	if strings.TrimSpace(req.RoomID) == "" {
		return apiutil.ErrMissingRoomID
	}

	return nil
}

type renameReq struct {
	RoomID string `json:"roomId"`
	Name   string `json:"name"`
}

func (req renameReq) validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return apiutil.ErrMissingName
	}
	if len(req.Name) > api.MaxNameSize {
		return apiutil.ErrNameSize
	}
	if strings.TrimSpace(req.RoomID) == "" {
		return apiutil.ErrMissingRoomID
	}

	return nil
}

type setDescriptionReq struct {
	RoomID      string `json:"roomId"`
	Description string `json:"description"`
}

func (req setDescriptionReq) validate() error {
	if strings.TrimSpace(req.Description) == "" {
		return apiutil.ErrMissingDescription
	}
	if strings.TrimSpace(req.RoomID) == "" {
		return apiutil.ErrMissingRoomID
	}

	return nil
}

type setPurposeReq struct {
	RoomID  string `json:"roomId"`
	Purpose string `json:"purpose"`
}

func (req setPurposeReq) validate() error {
	if strings.TrimSpace(req.Purpose) == "" {
		return apiutil.ErrMissingPurpose
	}
	if strings.TrimSpace(req.RoomID) == "" {
		return apiutil.ErrMissingRoomID
	}

	return nil
}

type setTopicReq struct {
	RoomID string `json:"roomId"`
	Topic  string `json:"topic"`
}

func (req setTopicReq) validate() error {
	if strings.TrimSpace(req.Topic) == "" {
		return apiutil.ErrMissingTopic
	}
	if strings.TrimSpace(req.RoomID) == "" {
		return apiutil.ErrMissingRoomID
	}

	return nil
}

type setJoinCodeReq struct {
	RoomID   string `json:"roomId"`
	JoinCode string `json:"joinCode"`
}

func (req setJoinCodeReq) validate() error {
	if strings.TrimSpace(req.JoinCode) == "" {
		return apiutil.ErrMissingJoinCode
	}
	if strings.TrimSpace(req.RoomID) == "" {
		return apiutil.ErrMissingRoomID
	}

	return nil
}

// The read-only flag is a pointer so that an absent field can be told apart
// from an explicit false.
type setReadOnlyReq struct {
	RoomID   string `json:"roomId"`
	ReadOnly *bool  `json:"readOnly"`
}

func (req setReadOnlyReq) validate() error {
	if req.ReadOnly == nil {
		return apiutil.ErrMissingReadOnly
	}
	if strings.TrimSpace(req.RoomID) == "" {
		return apiutil.ErrMissingRoomID
	}

	return nil
}

type setTypeReq struct {
	RoomID string `json:"roomId"`
	Type   string `json:"type"`
}

func (req setTypeReq) validate() error {
	if strings.TrimSpace(req.Type) == "" {
		return apiutil.ErrMissingType
	}
	if strings.TrimSpace(req.RoomID) == "" {
		return apiutil.ErrMissingRoomID
	}

	return nil
}

type infoReq struct {
	RoomID string
}

func (req infoReq) validate() error {
	if strings.TrimSpace(req.RoomID) == "" {
		return apiutil.ErrMissingRoomID
	}

	return nil
}

type historyReq struct {
	channels.HistoryReq
}

func (req historyReq) validate() error {
	if strings.TrimSpace(req.RoomID) == "" {
		return apiutil.ErrMissingRoomID
	}

	return nil
}

type listReq struct {
	channels.PageMetadata
}

func (req listReq) validate() error {
	if req.Limit > api.MaxLimitSize {
		return apiutil.ErrLimitSize
	}
	if req.Dir != "" && req.Dir != api.AscDir && req.Dir != api.DescDir {
		return apiutil.ErrInvalidQueryParams
	}

	return nil
}

type listIntegrationsReq struct {
	RoomID     string
	IncludeAll bool
	channels.IntegrationsPageMetadata
}

func (req listIntegrationsReq) validate() error {
	if strings.TrimSpace(req.RoomID) == "" {
		return apiutil.ErrMissingRoomID
	}
	if req.Limit > api.MaxLimitSize {
		return apiutil.ErrLimitSize
	}

	return nil
}
