// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

package channels

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/communecc/commune/pkg/apiutil"
	"github.com/communecc/commune/pkg/authn"
	"github.com/communecc/commune/pkg/authz"
	"github.com/communecc/commune/pkg/errors"
	svcerr "github.com/communecc/commune/pkg/errors/service"
)

// DefHistoryCount is the history window size applied when the caller does
// not provide one.
const DefHistoryCount = 20

type service struct {
	repo     Repository
	cmd      Commander
	resolver UserResolver
	authz    authz.Authorization
}

// NewService returns a new channels service implementation.
func NewService(repo Repository, cmd Commander, resolver UserResolver, authz authz.Authorization) Service {
	return &service{
		repo:     repo,
		cmd:      cmd,
		resolver: resolver,
		authz:    authz,
	}
}

// resolve maps a caller-supplied room ID to a public channel. Rooms of any
// other type resolve as not found. When checkArchived is set, archived
// channels are rejected before any command is dispatched.
func (svc *service) resolve(ctx context.Context, roomID string, checkArchived bool) (Channel, error) {
	if strings.TrimSpace(roomID) == "" {
		return Channel{}, errors.Wrap(svcerr.ErrMalformedEntity, apiutil.ErrMissingRoomID)
	}

	ch, err := svc.repo.RetrieveByID(ctx, roomID, DefaultProjection)
	if err != nil || ch.Type != Public {
		return Channel{}, errors.Wrap(svcerr.ErrNotFound, errors.New(fmt.Sprintf("no channel found by the id of: %s", roomID)))
	}

	if checkArchived && ch.Archived {
		return Channel{}, errors.Wrap(ErrChannelArchived, errors.New(fmt.Sprintf("the channel, %s, is archived", ch.Name)))
	}

	return ch, nil
}

// resolveUser maps a caller-supplied user reference to a canonical identity.
func (svc *service) resolveUser(ctx context.Context, ref UserRef) (User, error) {
	if strings.TrimSpace(ref.UserID) == "" && strings.TrimSpace(ref.Username) == "" {
		return User{}, errors.Wrap(svcerr.ErrMalformedEntity, apiutil.ErrMissingUser)
	}

	user, err := svc.resolver.ResolveUser(ctx, ref)
	if err != nil {
		return User{}, errors.Wrap(svcerr.ErrNotFound, ErrUserNotFound)
	}

	return user, nil
}

// refresh re-reads the channel after a mutation, so responses always carry
// the post-command state under the default projection.
func (svc *service) refresh(ctx context.Context, roomID string) (Channel, error) {
	ch, err := svc.repo.RetrieveByID(ctx, roomID, DefaultProjection)
	if err != nil {
		return Channel{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}
	return ch, nil
}

func (svc *service) AddAll(ctx context.Context, session authn.Session, roomID string) (Channel, error) {
	ch, err := svc.resolve(ctx, roomID, true)
	if err != nil {
		return Channel{}, err
	}

	if err := svc.cmd.AddAllToRoom(ctx, session, ch.ID); err != nil {
		return Channel{}, errors.Wrap(svcerr.ErrDispatch, err)
	}

	return svc.refresh(ctx, ch.ID)
}

func (svc *service) AddModerator(ctx context.Context, session authn.Session, roomID string, ref UserRef) error {
	ch, err := svc.resolve(ctx, roomID, true)
	if err != nil {
		return err
	}

	user, err := svc.resolveUser(ctx, ref)
	if err != nil {
		return err
	}

	if err := svc.cmd.AddRoomModerator(ctx, session, ch.ID, user.ID); err != nil {
		return errors.Wrap(svcerr.ErrDispatch, err)
	}

	return nil
}

func (svc *service) AddOwner(ctx context.Context, session authn.Session, roomID string, ref UserRef) error {
	ch, err := svc.resolve(ctx, roomID, true)
	if err != nil {
		return err
	}

	user, err := svc.resolveUser(ctx, ref)
	if err != nil {
		return err
	}

	if err := svc.cmd.AddRoomOwner(ctx, session, ch.ID, user.ID); err != nil {
		return errors.Wrap(svcerr.ErrDispatch, err)
	}

	return nil
}

func (svc *service) RemoveModerator(ctx context.Context, session authn.Session, roomID string, ref UserRef) error {
	ch, err := svc.resolve(ctx, roomID, true)
	if err != nil {
		return err
	}

	user, err := svc.resolveUser(ctx, ref)
	if err != nil {
		return err
	}

	if err := svc.cmd.RemoveRoomModerator(ctx, session, ch.ID, user.ID); err != nil {
		return errors.Wrap(svcerr.ErrDispatch, err)
	}

	return nil
}

func (svc *service) RemoveOwner(ctx context.Context, session authn.Session, roomID string, ref UserRef) error {
	ch, err := svc.resolve(ctx, roomID, true)
	if err != nil {
		return err
	}

	user, err := svc.resolveUser(ctx, ref)
	if err != nil {
		return err
	}

	if err := svc.cmd.RemoveRoomOwner(ctx, session, ch.ID, user.ID); err != nil {
		return errors.Wrap(svcerr.ErrDispatch, err)
	}

	return nil
}

func (svc *service) Archive(ctx context.Context, session authn.Session, roomID string) error {
	ch, err := svc.resolve(ctx, roomID, true)
	if err != nil {
		return err
	}

	if err := svc.cmd.ArchiveRoom(ctx, session, ch.ID); err != nil {
		return errors.Wrap(svcerr.ErrDispatch, err)
	}

	return nil
}

func (svc *service) Unarchive(ctx context.Context, session authn.Session, roomID string) error {
	ch, err := svc.resolve(ctx, roomID, false)
	if err != nil {
		return err
	}

	if !ch.Archived {
		return errors.Wrap(ErrNotArchived, errors.New(fmt.Sprintf("the channel, %s, is not archived", ch.Name)))
	}

	if err := svc.cmd.UnarchiveRoom(ctx, session, ch.ID); err != nil {
		return errors.Wrap(svcerr.ErrDispatch, err)
	}

	return nil
}

func (svc *service) CleanHistory(ctx context.Context, session authn.Session, roomID string, latest, oldest time.Time, inclusive bool) error {
	ch, err := svc.resolve(ctx, roomID, true)
	if err != nil {
		return err
	}

	if latest.IsZero() {
		return errors.Wrap(svcerr.ErrMalformedEntity, apiutil.ErrMissingLatest)
	}
	if oldest.IsZero() {
		return errors.Wrap(svcerr.ErrMalformedEntity, apiutil.ErrMissingOldest)
	}

	if err := svc.cmd.CleanRoomHistory(ctx, session, ch.ID, latest, oldest, inclusive); err != nil {
		return errors.Wrap(svcerr.ErrDispatch, err)
	}

	return nil
}

func (svc *service) Close(ctx context.Context, session authn.Session, roomID string) error {
	ch, err := svc.resolve(ctx, roomID, false)
	if err != nil {
		return err
	}

	sub, err := svc.repo.RetrieveSubscription(ctx, ch.ID, session.UserID)
	if err != nil {
		return errors.Wrap(ErrNotInChannel, errors.New(fmt.Sprintf("the user/callee is not in the channel %q", ch.Name)))
	}

	if !sub.Open {
		return errors.Wrap(ErrAlreadyClosed, errors.New(fmt.Sprintf("the channel, %s, is already closed to the sender", ch.Name)))
	}

	if err := svc.cmd.HideRoom(ctx, session, ch.ID); err != nil {
		return errors.Wrap(svcerr.ErrDispatch, err)
	}

	return nil
}

func (svc *service) Open(ctx context.Context, session authn.Session, roomID string) error {
	ch, err := svc.resolve(ctx, roomID, false)
	if err != nil {
		return err
	}

	sub, err := svc.repo.RetrieveSubscription(ctx, ch.ID, session.UserID)
	if err != nil {
		return errors.Wrap(ErrNotInChannel, errors.New(fmt.Sprintf("the user/callee is not in the channel %q", ch.Name)))
	}

	if sub.Open {
		return errors.Wrap(ErrAlreadyOpen, errors.New(fmt.Sprintf("the channel, %s, is already open to the sender", ch.Name)))
	}

	if err := svc.cmd.OpenRoom(ctx, session, ch.ID); err != nil {
		return errors.Wrap(svcerr.ErrDispatch, err)
	}

	return nil
}

func (svc *service) Create(ctx context.Context, session authn.Session, req CreateChannelReq) (Channel, error) {
	pr := authz.PolicyReq{
		UserID:     session.UserID,
		Permission: authz.CreatePublicChannelPermission,
	}
	if err := svc.authz.Authorize(ctx, pr); err != nil {
		return Channel{}, errors.Wrap(svcerr.ErrAuthorization, err)
	}

	if strings.TrimSpace(req.Name) == "" {
		return Channel{}, errors.Wrap(svcerr.ErrMalformedEntity, apiutil.ErrMissingName)
	}

	if req.Members == nil {
		req.Members = []string{}
	}

	id, err := svc.cmd.CreateChannel(ctx, session, req.Name, req.Members, req.ReadOnly)
	if err != nil {
		return Channel{}, errors.Wrap(svcerr.ErrDispatch, err)
	}

	return svc.refresh(ctx, id)
}

func (svc *service) Delete(ctx context.Context, session authn.Session, roomID string) (Channel, error) {
	ch, err := svc.resolve(ctx, roomID, false)
	if err != nil {
		return Channel{}, err
	}

	if err := svc.cmd.EraseRoom(ctx, session, ch.ID); err != nil {
		return Channel{}, errors.Wrap(svcerr.ErrDispatch, err)
	}

	// The response carries the projection captured before erasure.
	return ch, nil
}

func (svc *service) ListIntegrations(ctx context.Context, session authn.Session, roomID string, includeAllPublicChannels bool, pm IntegrationsPageMetadata) (IntegrationsPage, error) {
	pr := authz.PolicyReq{
		UserID:     session.UserID,
		Permission: authz.ManageIntegrationsPermission,
	}
	if err := svc.authz.Authorize(ctx, pr); err != nil {
		return IntegrationsPage{}, errors.Wrap(svcerr.ErrAuthorization, err)
	}

	ch, err := svc.resolve(ctx, roomID, false)
	if err != nil {
		return IntegrationsPage{}, err
	}

	pm.Scopes = []string{"#" + ch.Name}
	if includeAllPublicChannels {
		pm.Scopes = append(pm.Scopes, AllPublicChannelsScope)
	}

	page, err := svc.repo.RetrieveIntegrations(ctx, pm, DefaultProjection)
	if err != nil {
		return IntegrationsPage{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return page, nil
}

func (svc *service) History(ctx context.Context, session authn.Session, req HistoryReq) ([]Message, error) {
	ch, err := svc.resolve(ctx, req.RoomID, false)
	if err != nil {
		return nil, err
	}
	req.RoomID = ch.ID

	if req.Latest.IsZero() {
		req.Latest = time.Now()
	}
	if req.Count == 0 {
		req.Count = DefHistoryCount
	}

	msgs, err := svc.cmd.RoomHistory(ctx, session, req)
	if err != nil {
		return nil, errors.Wrap(svcerr.ErrDispatch, err)
	}

	if msgs == nil {
		msgs = []Message{}
	}

	return msgs, nil
}

func (svc *service) View(ctx context.Context, session authn.Session, roomID string) (Channel, error) {
	ch, err := svc.resolve(ctx, roomID, false)
	if err != nil {
		return Channel{}, err
	}

	return ch, nil
}

func (svc *service) Invite(ctx context.Context, session authn.Session, roomID string, ref UserRef) (Channel, error) {
	ch, err := svc.resolve(ctx, roomID, true)
	if err != nil {
		return Channel{}, err
	}

	user, err := svc.resolveUser(ctx, ref)
	if err != nil {
		return Channel{}, err
	}

	if err := svc.cmd.AddUserToRoom(ctx, session, ch.ID, user.Username); err != nil {
		return Channel{}, errors.Wrap(svcerr.ErrDispatch, err)
	}

	return svc.refresh(ctx, ch.ID)
}

func (svc *service) Join(ctx context.Context, session authn.Session, roomID, joinCode string) (Channel, error) {
	ch, err := svc.resolve(ctx, roomID, true)
	if err != nil {
		return Channel{}, err
	}

	if err := svc.cmd.JoinRoom(ctx, session, ch.ID, joinCode); err != nil {
		return Channel{}, errors.Wrap(svcerr.ErrDispatch, err)
	}

	return svc.refresh(ctx, ch.ID)
}

func (svc *service) Kick(ctx context.Context, session authn.Session, roomID string, ref UserRef) (Channel, error) {
	ch, err := svc.resolve(ctx, roomID, true)
	if err != nil {
		return Channel{}, err
	}

	user, err := svc.resolveUser(ctx, ref)
	if err != nil {
		return Channel{}, err
	}

	if err := svc.cmd.RemoveUserFromRoom(ctx, session, ch.ID, user.Username); err != nil {
		return Channel{}, errors.Wrap(svcerr.ErrDispatch, err)
	}

	return svc.refresh(ctx, ch.ID)
}

func (svc *service) Leave(ctx context.Context, session authn.Session, roomID string) (Channel, error) {
	ch, err := svc.resolve(ctx, roomID, true)
	if err != nil {
		return Channel{}, err
	}

	if err := svc.cmd.LeaveRoom(ctx, session, ch.ID); err != nil {
		return Channel{}, errors.Wrap(svcerr.ErrDispatch, err)
	}

	return svc.refresh(ctx, ch.ID)
}

func (svc *service) List(ctx context.Context, session authn.Session, pm PageMetadata) (Page, error) {
	page, err := svc.repo.RetrieveAll(ctx, pm, DefaultProjection)
	if err != nil {
		return Page{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return page, nil
}

func (svc *service) ListJoined(ctx context.Context, session authn.Session, pm PageMetadata) (Page, error) {
	page, err := svc.repo.RetrieveJoined(ctx, session.UserID, pm, DefaultProjection)
	if err != nil {
		return Page{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return page, nil
}

func (svc *service) Rename(ctx context.Context, session authn.Session, roomID, name string) (Channel, error) {
	if strings.TrimSpace(name) == "" {
		return Channel{}, errors.Wrap(svcerr.ErrMalformedEntity, apiutil.ErrMissingName)
	}

	ch, err := svc.resolve(ctx, roomID, true)
	if err != nil {
		return Channel{}, err
	}

	if ch.Name == name {
		return Channel{}, ErrSameName
	}

	if err := svc.cmd.SaveRoomSetting(ctx, session, ch.ID, RoomName, name); err != nil {
		return Channel{}, errors.Wrap(svcerr.ErrDispatch, err)
	}

	return svc.refresh(ctx, ch.ID)
}

func (svc *service) SetDescription(ctx context.Context, session authn.Session, roomID, description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", errors.Wrap(svcerr.ErrMalformedEntity, apiutil.ErrMissingDescription)
	}

	ch, err := svc.resolve(ctx, roomID, true)
	if err != nil {
		return "", err
	}

	if ch.Description == description {
		return "", ErrSameDescription
	}

	if err := svc.cmd.SaveRoomSetting(ctx, session, ch.ID, RoomDescription, description); err != nil {
		return "", errors.Wrap(svcerr.ErrDispatch, err)
	}

	return description, nil
}

// SetPurpose is an alias surface over the description attribute: it reads
// and writes the same underlying field as SetDescription.
func (svc *service) SetPurpose(ctx context.Context, session authn.Session, roomID, purpose string) (string, error) {
	if strings.TrimSpace(purpose) == "" {
		return "", errors.Wrap(svcerr.ErrMalformedEntity, apiutil.ErrMissingPurpose)
	}

	ch, err := svc.resolve(ctx, roomID, true)
	if err != nil {
		return "", err
	}

	if ch.Description == purpose {
		return "", ErrSamePurpose
	}

	if err := svc.cmd.SaveRoomSetting(ctx, session, ch.ID, RoomDescription, purpose); err != nil {
		return "", errors.Wrap(svcerr.ErrDispatch, err)
	}

	return purpose, nil
}

func (svc *service) SetTopic(ctx context.Context, session authn.Session, roomID, topic string) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", errors.Wrap(svcerr.ErrMalformedEntity, apiutil.ErrMissingTopic)
	}

	ch, err := svc.resolve(ctx, roomID, true)
	if err != nil {
		return "", err
	}

	if ch.Topic == topic {
		return "", ErrSameTopic
	}

	if err := svc.cmd.SaveRoomSetting(ctx, session, ch.ID, RoomTopic, topic); err != nil {
		return "", errors.Wrap(svcerr.ErrDispatch, err)
	}

	return topic, nil
}

// SetJoinCode carries no idempotency guard: the join code is excluded from
// every projection this layer reads, so there is no prior value to compare
// against.
func (svc *service) SetJoinCode(ctx context.Context, session authn.Session, roomID, joinCode string) (Channel, error) {
	if strings.TrimSpace(joinCode) == "" {
		return Channel{}, errors.Wrap(svcerr.ErrMalformedEntity, apiutil.ErrMissingJoinCode)
	}

	ch, err := svc.resolve(ctx, roomID, true)
	if err != nil {
		return Channel{}, err
	}

	if err := svc.cmd.SaveRoomSetting(ctx, session, ch.ID, RoomJoinCode, joinCode); err != nil {
		return Channel{}, errors.Wrap(svcerr.ErrDispatch, err)
	}

	return svc.refresh(ctx, ch.ID)
}

func (svc *service) SetReadOnly(ctx context.Context, session authn.Session, roomID string, readOnly bool) (Channel, error) {
	ch, err := svc.resolve(ctx, roomID, true)
	if err != nil {
		return Channel{}, err
	}

	if ch.ReadOnly == readOnly {
		return Channel{}, ErrSameReadOnly
	}

	if err := svc.cmd.SaveRoomSetting(ctx, session, ch.ID, RoomReadOnly, readOnly); err != nil {
		return Channel{}, errors.Wrap(svcerr.ErrDispatch, err)
	}

	return svc.refresh(ctx, ch.ID)
}

func (svc *service) SetType(ctx context.Context, session authn.Session, roomID, channelType string) (Channel, error) {
	if strings.TrimSpace(channelType) == "" {
		return Channel{}, errors.Wrap(svcerr.ErrMalformedEntity, apiutil.ErrMissingType)
	}

	ch, err := svc.resolve(ctx, roomID, true)
	if err != nil {
		return Channel{}, err
	}

	if ch.Type == channelType {
		return Channel{}, ErrSameType
	}

	if err := svc.cmd.SaveRoomSetting(ctx, session, ch.ID, RoomType, channelType); err != nil {
		return Channel{}, errors.Wrap(svcerr.ErrDispatch, err)
	}

	return svc.refresh(ctx, ch.ID)
}
