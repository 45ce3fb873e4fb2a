// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

// Package executor provides the store-backed command executor. Unlike the
// service layer it reads rooms unprojected, so it can check join codes and
// write settings the public surface never exposes.
package executor

import (
	"context"
	"time"

	"github.com/communecc/commune"
	"github.com/communecc/commune/channels"
	"github.com/communecc/commune/pkg/authn"
	"github.com/communecc/commune/pkg/errors"
)

const (
	ownerRole     = "owner"
	moderatorRole = "moderator"
)

var (
	errAlreadyJoined  = errors.New("the user is already in the room")
	errNotInRoom      = errors.New("the user is not in the room")
	errJoinCode       = errors.New("the join code does not match")
	errUnknownSetting = errors.New("unknown room setting")
	errSettingValue   = errors.New("invalid room setting value")
)

var (
	_ channels.Commander    = (*executor)(nil)
	_ channels.UserResolver = (*executor)(nil)
)

type executor struct {
	repo channels.Repository
	idp  commune.IDProvider
}

// New returns a command executor backed by the given repository.
func New(repo channels.Repository, idp commune.IDProvider) *executor {
	return &executor{
		repo: repo,
		idp:  idp,
	}
}

func (e *executor) ResolveUser(ctx context.Context, ref channels.UserRef) (channels.User, error) {
	if ref.UserID != "" {
		return e.repo.RetrieveUserByID(ctx, ref.UserID)
	}

	return e.repo.RetrieveUserByUsername(ctx, ref.Username)
}

func (e *executor) AddAllToRoom(ctx context.Context, session authn.Session, roomID string) error {
	users, err := e.repo.RetrieveUsers(ctx)
	if err != nil {
		return err
	}

	for _, user := range users {
		if _, err := e.repo.RetrieveSubscription(ctx, roomID, user.ID); err == nil {
			continue
		}
		sub := channels.Subscription{
			RoomID:    roomID,
			UserID:    user.ID,
			Open:      true,
			CreatedAt: time.Now(),
		}
		if err := e.repo.SaveSubscription(ctx, sub); err != nil {
			return err
		}
	}

	return nil
}

func (e *executor) AddRoomModerator(ctx context.Context, session authn.Session, roomID, userID string) error {
	return e.addRole(ctx, roomID, userID, moderatorRole)
}

func (e *executor) RemoveRoomModerator(ctx context.Context, session authn.Session, roomID, userID string) error {
	return e.removeRole(ctx, roomID, userID, moderatorRole)
}

func (e *executor) AddRoomOwner(ctx context.Context, session authn.Session, roomID, userID string) error {
	return e.addRole(ctx, roomID, userID, ownerRole)
}

func (e *executor) RemoveRoomOwner(ctx context.Context, session authn.Session, roomID, userID string) error {
	return e.removeRole(ctx, roomID, userID, ownerRole)
}

func (e *executor) addRole(ctx context.Context, roomID, userID, role string) error {
	sub, err := e.repo.RetrieveSubscription(ctx, roomID, userID)
	if err != nil {
		return errors.Wrap(errNotInRoom, err)
	}

	for _, r := range sub.Roles {
		if r == role {
			return nil
		}
	}
	sub.Roles = append(sub.Roles, role)

	return e.repo.UpdateSubscription(ctx, sub)
}

func (e *executor) removeRole(ctx context.Context, roomID, userID, role string) error {
	sub, err := e.repo.RetrieveSubscription(ctx, roomID, userID)
	if err != nil {
		return errors.Wrap(errNotInRoom, err)
	}

	roles := make([]string, 0, len(sub.Roles))
	for _, r := range sub.Roles {
		if r != role {
			roles = append(roles, r)
		}
	}
	sub.Roles = roles

	return e.repo.UpdateSubscription(ctx, sub)
}

func (e *executor) ArchiveRoom(ctx context.Context, session authn.Session, roomID string) error {
	ch, err := e.repo.RetrieveByID(ctx, roomID, nil)
	if err != nil {
		return err
	}

	if ch.Archived {
		return nil
	}
	ch.Archived = true

	_, err = e.repo.Update(ctx, ch)
	return err
}

func (e *executor) UnarchiveRoom(ctx context.Context, session authn.Session, roomID string) error {
	ch, err := e.repo.RetrieveByID(ctx, roomID, nil)
	if err != nil {
		return err
	}

	ch.Archived = false

	_, err = e.repo.Update(ctx, ch)
	return err
}

func (e *executor) CleanRoomHistory(ctx context.Context, session authn.Session, roomID string, latest, oldest time.Time, inclusive bool) error {
	return e.repo.RemoveMessages(ctx, roomID, latest, oldest, inclusive)
}

func (e *executor) HideRoom(ctx context.Context, session authn.Session, roomID string) error {
	sub, err := e.repo.RetrieveSubscription(ctx, roomID, session.UserID)
	if err != nil {
		return errors.Wrap(errNotInRoom, err)
	}

	sub.Open = false

	return e.repo.UpdateSubscription(ctx, sub)
}

func (e *executor) OpenRoom(ctx context.Context, session authn.Session, roomID string) error {
	sub, err := e.repo.RetrieveSubscription(ctx, roomID, session.UserID)
	if err != nil {
		return errors.Wrap(errNotInRoom, err)
	}

	sub.Open = true

	return e.repo.UpdateSubscription(ctx, sub)
}

func (e *executor) CreateChannel(ctx context.Context, session authn.Session, name string, members []string, readOnly bool) (string, error) {
	id, err := e.idp.ID()
	if err != nil {
		return "", err
	}

	ch := channels.Channel{
		ID:        id,
		Name:      name,
		Type:      channels.Public,
		ReadOnly:  readOnly,
		CreatedBy: session.UserID,
		CreatedAt: time.Now(),
	}
	if _, err := e.repo.Save(ctx, ch); err != nil {
		return "", err
	}

	creator := channels.Subscription{
		RoomID:    id,
		UserID:    session.UserID,
		Open:      true,
		Roles:     []string{ownerRole},
		CreatedAt: time.Now(),
	}
	if err := e.repo.SaveSubscription(ctx, creator); err != nil {
		return "", err
	}

	for _, username := range members {
		if username == session.Username {
			continue
		}
		user, err := e.repo.RetrieveUserByUsername(ctx, username)
		if err != nil {
			return "", err
		}
		sub := channels.Subscription{
			RoomID:    id,
			UserID:    user.ID,
			Open:      true,
			CreatedAt: time.Now(),
		}
		if err := e.repo.SaveSubscription(ctx, sub); err != nil {
			return "", err
		}
	}

	return id, nil
}

func (e *executor) EraseRoom(ctx context.Context, session authn.Session, roomID string) error {
	return e.repo.Remove(ctx, roomID)
}

func (e *executor) JoinRoom(ctx context.Context, session authn.Session, roomID, joinCode string) error {
	ch, err := e.repo.RetrieveByID(ctx, roomID, nil)
	if err != nil {
		return err
	}

	if ch.JoinCode != "" && ch.JoinCode != joinCode {
		return errJoinCode
	}

	if _, err := e.repo.RetrieveSubscription(ctx, roomID, session.UserID); err == nil {
		return errAlreadyJoined
	}

	sub := channels.Subscription{
		RoomID:    roomID,
		UserID:    session.UserID,
		Open:      true,
		CreatedAt: time.Now(),
	}

	return e.repo.SaveSubscription(ctx, sub)
}

func (e *executor) LeaveRoom(ctx context.Context, session authn.Session, roomID string) error {
	if _, err := e.repo.RetrieveSubscription(ctx, roomID, session.UserID); err != nil {
		return errors.Wrap(errNotInRoom, err)
	}

	return e.repo.RemoveSubscription(ctx, roomID, session.UserID)
}

func (e *executor) AddUserToRoom(ctx context.Context, session authn.Session, roomID, username string) error {
	user, err := e.repo.RetrieveUserByUsername(ctx, username)
	if err != nil {
		return err
	}

	if _, err := e.repo.RetrieveSubscription(ctx, roomID, user.ID); err == nil {
		return errAlreadyJoined
	}

	sub := channels.Subscription{
		RoomID:    roomID,
		UserID:    user.ID,
		Open:      true,
		CreatedAt: time.Now(),
	}

	return e.repo.SaveSubscription(ctx, sub)
}

func (e *executor) RemoveUserFromRoom(ctx context.Context, session authn.Session, roomID, username string) error {
	user, err := e.repo.RetrieveUserByUsername(ctx, username)
	if err != nil {
		return err
	}

	if _, err := e.repo.RetrieveSubscription(ctx, roomID, user.ID); err != nil {
		return errors.Wrap(errNotInRoom, err)
	}

	return e.repo.RemoveSubscription(ctx, roomID, user.ID)
}

func (e *executor) SaveRoomSetting(ctx context.Context, session authn.Session, roomID string, setting channels.RoomSetting, value interface{}) error {
	if setting == channels.RoomJoinCode {
		code, ok := value.(string)
		if !ok {
			return errSettingValue
		}
		return e.repo.UpdateJoinCode(ctx, roomID, code)
	}

	ch, err := e.repo.RetrieveByID(ctx, roomID, nil)
	if err != nil {
		return err
	}

	switch setting {
	case channels.RoomName:
		name, ok := value.(string)
		if !ok {
			return errSettingValue
		}
		ch.Name = name
	case channels.RoomTopic:
		topic, ok := value.(string)
		if !ok {
			return errSettingValue
		}
		ch.Topic = topic
	case channels.RoomDescription:
		description, ok := value.(string)
		if !ok {
			return errSettingValue
		}
		ch.Description = description
	case channels.RoomType:
		roomType, ok := value.(string)
		if !ok {
			return errSettingValue
		}
		ch.Type = roomType
	case channels.RoomReadOnly:
		readOnly, ok := value.(bool)
		if !ok {
			return errSettingValue
		}
		ch.ReadOnly = readOnly
	default:
		return errUnknownSetting
	}

	_, err = e.repo.Update(ctx, ch)
	return err
}

func (e *executor) RoomHistory(ctx context.Context, session authn.Session, req channels.HistoryReq) ([]channels.Message, error) {
	return e.repo.RetrieveMessages(ctx, req)
}
