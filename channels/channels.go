// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

// Package channels contains the public-channel administration core. It
// resolves channel identities, validates state-dependent preconditions,
// gates the few capability-protected operations and delegates all mutations
// to an impersonation-capable command executor.
package channels

import (
	"context"
	"encoding/json"
	"time"

	"github.com/communecc/commune/pkg/authn"
	"github.com/communecc/commune/pkg/errors"
)

// Public is the room type of a public channel. Rooms of any other type are
// invisible to this service: resolving them is indistinguishable from
// resolving a room that does not exist.
const Public = "c"

// DefaultProjection is the fixed field-exclusion set applied to every
// channel read that leaves this layer. Columns listed here are never
// returned to callers, regardless of which operation produced the read.
var DefaultProjection = Projection{"join_code", "import_ids"}

// Projection lists column names excluded from store reads.
type Projection []string

// Excludes reports whether the given column is excluded.
func (p Projection) Excludes(column string) bool {
	for _, c := range p {
		if c == column {
			return true
		}
	}
	return false
}

// Channel represents a public room.
type Channel struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Type        string    `json:"t"`
	Topic       string    `json:"topic,omitempty"`
	Description string    `json:"description,omitempty"`
	ReadOnly    bool      `json:"ro"`
	JoinCode    string    `json:"-"`
	Archived    bool      `json:"archived,omitempty"`
	CreatedBy   string    `json:"u,omitempty"`
	CreatedAt   time.Time `json:"ts"`
	UpdatedAt   time.Time `json:"_updatedAt,omitempty"`
}

// Subscription links a (channel, user) pair. Open indicates whether the
// channel is currently visible in the user's list. A user holds at most one
// subscription per channel.
type Subscription struct {
	RoomID    string    `json:"rid"`
	UserID    string    `json:"u"`
	Open      bool      `json:"open"`
	Roles     []string  `json:"roles,omitempty"`
	CreatedAt time.Time `json:"ts"`
}

// User is the minimal projection of a platform user this core needs for
// member, owner and moderator operations.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// UserRef carries the caller-supplied parameters identifying a target user.
type UserRef struct {
	UserID   string
	Username string
}

// Message is an item of channel history, returned by the executor
// unmodified.
type Message struct {
	ID        string    `json:"_id"`
	RoomID    string    `json:"rid"`
	UserID    string    `json:"u"`
	Text      string    `json:"msg"`
	CreatedAt time.Time `json:"ts"`
}

// Integration is an inbound/outbound hook attached to a channel scope.
type Integration struct {
	ID        string    `json:"_id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Scope     string    `json:"channel"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"_createdAt"`
}

// AllPublicChannelsScope is the integration scope matching every public
// channel.
const AllPublicChannelsScope = "all_public_channels"

// PageMetadata carries pagination and filtering for channel listings. The
// caller-supplied filter is merged under, and can never override, the fixed
// public-channel scoping predicate.
type PageMetadata struct {
	Total  uint64 `json:"total"`
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
	Name   string `json:"name,omitempty"`
	Order  string `json:"order,omitempty"`
	Dir    string `json:"dir,omitempty"`
}

// Page contains a page of channels along with its metadata.
type Page struct {
	PageMetadata
	Channels []Channel `json:"channels"`
}

func (page Page) MarshalJSON() ([]byte, error) {
	type Alias Page
	a := struct {
		Alias
	}{
		Alias: Alias(page),
	}

	if a.Channels == nil {
		a.Channels = make([]Channel, 0)
	}

	return json.Marshal(a)
}

// IntegrationsPageMetadata carries pagination and filtering for integration
// listings. Scopes is the operation-fixed predicate set by the service; the
// caller cannot override it.
type IntegrationsPageMetadata struct {
	Total  uint64   `json:"total"`
	Offset uint64   `json:"offset"`
	Limit  uint64   `json:"limit"`
	Name   string   `json:"name,omitempty"`
	Order  string   `json:"order,omitempty"`
	Dir    string   `json:"dir,omitempty"`
	Scopes []string `json:"-"`
}

// IntegrationsPage contains a page of integrations along with its metadata.
type IntegrationsPage struct {
	IntegrationsPageMetadata
	Integrations []Integration `json:"integrations"`
}

func (page IntegrationsPage) MarshalJSON() ([]byte, error) {
	type Alias IntegrationsPage
	a := struct {
		Alias
	}{
		Alias: Alias(page),
	}

	if a.Integrations == nil {
		a.Integrations = make([]Integration, 0)
	}

	return json.Marshal(a)
}

// HistoryReq describes a channel history window.
type HistoryReq struct {
	RoomID    string
	Latest    time.Time
	Oldest    time.Time
	Inclusive bool
	Count     uint64
	Unreads   bool
}

// CreateChannelReq carries the payload of a create operation.
type CreateChannelReq struct {
	Name     string
	Members  []string
	ReadOnly bool
}

// RoomSetting names a single mutable room attribute for the
// save-room-setting intent.
type RoomSetting string

const (
	RoomName        RoomSetting = "roomName"
	RoomTopic       RoomSetting = "roomTopic"
	RoomDescription RoomSetting = "roomDescription"
	RoomType        RoomSetting = "roomType"
	RoomReadOnly    RoomSetting = "readOnly"
	RoomJoinCode    RoomSetting = "joinCode"
)

// Errors the precondition validators fail with. Messages mirror what callers
// see in failure envelopes, naming the offending state.
var (
	// ErrChannelArchived indicates an operation that requires an active
	// channel hit an archived one.
	ErrChannelArchived = errors.New("the channel is archived")

	// ErrNotArchived indicates unarchive hit a channel that is not archived.
	ErrNotArchived = errors.New("the channel is not archived")

	// ErrNotInChannel indicates the acting user holds no subscription on the
	// channel.
	ErrNotInChannel = errors.New("the user/callee is not in the channel")

	// ErrAlreadyClosed indicates close hit a subscription that is already
	// closed.
	ErrAlreadyClosed = errors.New("the channel is already closed to the sender")

	// ErrAlreadyOpen indicates open hit a subscription that is already open.
	ErrAlreadyOpen = errors.New("the channel is already open to the sender")

	// ErrUserNotFound indicates the target user could not be resolved.
	ErrUserNotFound = errors.New("no user found by the provided userId or username")
)

// Idempotency guards: setting an attribute to its current value is rejected
// rather than dispatched.
var (
	ErrSameName        = errors.New("the channel name is the same as what it would be renamed to")
	ErrSameDescription = errors.New("the channel description is the same as what it would be changed to")
	ErrSamePurpose     = errors.New("the channel purpose (description) is the same as what it would be changed to")
	ErrSameTopic       = errors.New("the channel topic is the same as what it would be changed to")
	ErrSameReadOnly    = errors.New("the channel read only setting is the same as what it would be changed to")
	ErrSameType        = errors.New("the channel type is the same as what it would be changed to")
)

// Service specifies the channel administration API implemented by the domain
// service and all of its decorators (e.g. logging & metrics).
//
//go:generate mockery --name Service --output=./mocks --filename service.go --quiet --note "Copyright (c) Commune"
type Service interface {
	// AddAll adds every user on the server to the channel and returns a fresh
	// projection of it.
	AddAll(ctx context.Context, session authn.Session, roomID string) (Channel, error)

	// AddModerator grants the moderator role on the channel to the referenced
	// user.
	AddModerator(ctx context.Context, session authn.Session, roomID string, user UserRef) error

	// AddOwner grants the owner role on the channel to the referenced user.
	AddOwner(ctx context.Context, session authn.Session, roomID string, user UserRef) error

	// RemoveModerator revokes the moderator role on the channel from the
	// referenced user.
	RemoveModerator(ctx context.Context, session authn.Session, roomID string, user UserRef) error

	// RemoveOwner revokes the owner role on the channel from the referenced
	// user.
	RemoveOwner(ctx context.Context, session authn.Session, roomID string, user UserRef) error

	// Archive archives the channel. Archiving an archived channel dispatches
	// anyway; the executor treats it as a no-op.
	Archive(ctx context.Context, session authn.Session, roomID string) error

	// Unarchive reactivates an archived channel. It fails if the channel is
	// not archived.
	Unarchive(ctx context.Context, session authn.Session, roomID string) error

	// CleanHistory prunes messages between oldest and latest.
	CleanHistory(ctx context.Context, session authn.Session, roomID string, latest, oldest time.Time, inclusive bool) error

	// Close hides the channel from the acting user's list. It requires an
	// existing open subscription.
	Close(ctx context.Context, session authn.Session, roomID string) error

	// Open makes the channel visible in the acting user's list. It requires
	// an existing closed subscription.
	Open(ctx context.Context, session authn.Session, roomID string) error

	// Create creates a public channel and returns a fresh projection of it.
	// It requires the create-public-channel capability.
	Create(ctx context.Context, session authn.Session, req CreateChannelReq) (Channel, error)

	// Delete erases the channel and returns its pre-delete projection.
	// Archived channels can be deleted.
	Delete(ctx context.Context, session authn.Session, roomID string) (Channel, error)

	// ListIntegrations lists integrations scoped to the channel, optionally
	// unioned with the all-public-channels scope. It requires the
	// manage-integrations capability.
	ListIntegrations(ctx context.Context, session authn.Session, roomID string, includeAllPublicChannels bool, pm IntegrationsPageMetadata) (IntegrationsPage, error)

	// History returns the channel's message history window as reported by
	// the executor.
	History(ctx context.Context, session authn.Session, req HistoryReq) ([]Message, error)

	// View returns a fresh projection of the channel. Archived channels can
	// be viewed.
	View(ctx context.Context, session authn.Session, roomID string) (Channel, error)

	// Invite adds the referenced user to the channel.
	Invite(ctx context.Context, session authn.Session, roomID string, user UserRef) (Channel, error)

	// Join adds the acting user to the channel, subject to its join code.
	Join(ctx context.Context, session authn.Session, roomID, joinCode string) (Channel, error)

	// Kick removes the referenced user from the channel.
	Kick(ctx context.Context, session authn.Session, roomID string, user UserRef) (Channel, error)

	// Leave removes the acting user from the channel.
	Leave(ctx context.Context, session authn.Session, roomID string) (Channel, error)

	// List lists public channels matching the caller filter.
	List(ctx context.Context, session authn.Session, pm PageMetadata) (Page, error)

	// ListJoined lists public channels the acting user subscribes to.
	ListJoined(ctx context.Context, session authn.Session, pm PageMetadata) (Page, error)

	// Rename changes the channel name.
	Rename(ctx context.Context, session authn.Session, roomID, name string) (Channel, error)

	// SetDescription changes the channel description and echoes it back.
	SetDescription(ctx context.Context, session authn.Session, roomID, description string) (string, error)

	// SetPurpose changes the channel purpose and echoes it back. Purpose and
	// description are the same underlying attribute.
	SetPurpose(ctx context.Context, session authn.Session, roomID, purpose string) (string, error)

	// SetTopic changes the channel topic and echoes it back.
	SetTopic(ctx context.Context, session authn.Session, roomID, topic string) (string, error)

	// SetJoinCode changes the channel join code.
	SetJoinCode(ctx context.Context, session authn.Session, roomID, joinCode string) (Channel, error)

	// SetReadOnly changes the channel read-only flag.
	SetReadOnly(ctx context.Context, session authn.Session, roomID string, readOnly bool) (Channel, error)

	// SetType changes the channel type.
	SetType(ctx context.Context, session authn.Session, roomID, channelType string) (Channel, error)
}

// Repository specifies the room persistence API.
//
//go:generate mockery --name Repository --output=./mocks --filename repository.go --quiet --note "Copyright (c) Commune"
type Repository interface {
	// Save persists a new room. A non-nil error is returned to indicate
	// operation failure.
	Save(ctx context.Context, ch Channel) (Channel, error)

	// RetrieveByID retrieves the room having the provided identifier,
	// whatever its type, projected through the given exclusion set.
	RetrieveByID(ctx context.Context, id string, excl Projection) (Channel, error)

	// Update persists the mutable attributes of an existing room, except the
	// join code.
	Update(ctx context.Context, ch Channel) (Channel, error)

	// UpdateJoinCode persists the room's join code. Updates flow through this
	// method alone, so projected reads can never clobber the code.
	UpdateJoinCode(ctx context.Context, roomID, joinCode string) error

	// Remove removes the room and its subscriptions.
	Remove(ctx context.Context, id string) error

	// RetrieveAll retrieves public channels matching the page filter. The
	// public-channel predicate is fixed and cannot be overridden by the
	// filter.
	RetrieveAll(ctx context.Context, pm PageMetadata, excl Projection) (Page, error)

	// RetrieveJoined retrieves public channels the user subscribes to.
	RetrieveJoined(ctx context.Context, userID string, pm PageMetadata, excl Projection) (Page, error)

	// RetrieveSubscription retrieves the user's subscription on the room.
	RetrieveSubscription(ctx context.Context, roomID, userID string) (Subscription, error)

	// SaveSubscription persists a new subscription.
	SaveSubscription(ctx context.Context, sub Subscription) error

	// UpdateSubscription persists the open flag and roles of an existing
	// subscription.
	UpdateSubscription(ctx context.Context, sub Subscription) error

	// RemoveSubscription removes the user's subscription on the room.
	RemoveSubscription(ctx context.Context, roomID, userID string) error

	// RetrieveIntegrations retrieves integrations matching the scope
	// predicate.
	RetrieveIntegrations(ctx context.Context, pm IntegrationsPageMetadata, excl Projection) (IntegrationsPage, error)

	// RetrieveMessages retrieves the room's messages inside the window,
	// newest first, limited to the window count.
	RetrieveMessages(ctx context.Context, req HistoryReq) ([]Message, error)

	// RemoveMessages removes the room's messages inside the window.
	RemoveMessages(ctx context.Context, roomID string, latest, oldest time.Time, inclusive bool) error

	// SaveMessage persists a message.
	SaveMessage(ctx context.Context, msg Message) error

	// RetrieveUserByID retrieves a user by identifier.
	RetrieveUserByID(ctx context.Context, id string) (User, error)

	// RetrieveUserByUsername retrieves a user by username.
	RetrieveUserByUsername(ctx context.Context, username string) (User, error)

	// RetrieveUsers retrieves all users.
	RetrieveUsers(ctx context.Context) ([]User, error)

	// SaveUser persists a user.
	SaveUser(ctx context.Context, user User) error
}

// UserResolver resolves a caller-supplied user reference to a canonical
// user identity.
//
//go:generate mockery --name UserResolver --output=./mocks --filename resolver.go --quiet --note "Copyright (c) Commune"
type UserResolver interface {
	ResolveUser(ctx context.Context, ref UserRef) (User, error)
}

// Commander is the command executor boundary. Every intent runs as the
// session user: the executor applies its own authorization and side effects
// as if that user issued the command directly. Failures are opaque to this
// layer and are propagated without interpretation.
//
//go:generate mockery --name Commander --output=./mocks --filename commander.go --quiet --note "Copyright (c) Commune"
type Commander interface {
	// AddAllToRoom adds every user on the server to the room.
	AddAllToRoom(ctx context.Context, session authn.Session, roomID string) error

	// AddRoomModerator grants the moderator role to the user.
	AddRoomModerator(ctx context.Context, session authn.Session, roomID, userID string) error

	// RemoveRoomModerator revokes the moderator role from the user.
	RemoveRoomModerator(ctx context.Context, session authn.Session, roomID, userID string) error

	// AddRoomOwner grants the owner role to the user.
	AddRoomOwner(ctx context.Context, session authn.Session, roomID, userID string) error

	// RemoveRoomOwner revokes the owner role from the user.
	RemoveRoomOwner(ctx context.Context, session authn.Session, roomID, userID string) error

	// ArchiveRoom archives the room.
	ArchiveRoom(ctx context.Context, session authn.Session, roomID string) error

	// UnarchiveRoom reactivates the room.
	UnarchiveRoom(ctx context.Context, session authn.Session, roomID string) error

	// CleanRoomHistory prunes messages between oldest and latest.
	CleanRoomHistory(ctx context.Context, session authn.Session, roomID string, latest, oldest time.Time, inclusive bool) error

	// HideRoom closes the room in the session user's list.
	HideRoom(ctx context.Context, session authn.Session, roomID string) error

	// OpenRoom opens the room in the session user's list.
	OpenRoom(ctx context.Context, session authn.Session, roomID string) error

	// CreateChannel creates a public channel and returns its room ID.
	CreateChannel(ctx context.Context, session authn.Session, name string, members []string, readOnly bool) (string, error)

	// EraseRoom removes the room and everything attached to it.
	EraseRoom(ctx context.Context, session authn.Session, roomID string) error

	// JoinRoom adds the session user to the room, subject to its join code.
	JoinRoom(ctx context.Context, session authn.Session, roomID, joinCode string) error

	// LeaveRoom removes the session user from the room.
	LeaveRoom(ctx context.Context, session authn.Session, roomID string) error

	// AddUserToRoom adds the named user to the room.
	AddUserToRoom(ctx context.Context, session authn.Session, roomID, username string) error

	// RemoveUserFromRoom removes the named user from the room.
	RemoveUserFromRoom(ctx context.Context, session authn.Session, roomID, username string) error

	// SaveRoomSetting persists a single room attribute.
	SaveRoomSetting(ctx context.Context, session authn.Session, roomID string, setting RoomSetting, value interface{}) error

	// RoomHistory returns the room's message history window.
	RoomHistory(ctx context.Context, session authn.Session, req HistoryReq) ([]Message, error)
}
