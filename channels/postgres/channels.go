// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/communecc/commune/channels"
	"github.com/communecc/commune/pkg/errors"
	repoerr "github.com/communecc/commune/pkg/errors/repository"
	"github.com/communecc/commune/pkg/postgres"
)

type repository struct {
	db postgres.Database
}

// NewRepository instantiates a PostgreSQL implementation of channels
// repository.
func NewRepository(db postgres.Database) channels.Repository {
	return &repository{db: db}
}

func (repo *repository) Save(ctx context.Context, ch channels.Channel) (channels.Channel, error) {
	q := `INSERT INTO rooms (id, name, type, topic, description, read_only, join_code, archived, created_by, created_at, updated_at)
		VALUES (:id, :name, :type, :topic, :description, :read_only, :join_code, :archived, :created_by, :created_at, :updated_at)
		RETURNING id, name, type, topic, description, read_only, join_code, archived, created_by, created_at, updated_at`

	dbch := toDBChannel(ch)
	row, err := repo.db.NamedQueryContext(ctx, q, dbch)
	if err != nil {
		return channels.Channel{}, postgres.HandleError(repoerr.ErrCreateEntity, err)
	}
	defer row.Close()

	row.Next()
	dbch = dbChannel{}
	if err := row.StructScan(&dbch); err != nil {
		return channels.Channel{}, errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	return toChannel(dbch, nil), nil
}

func (repo *repository) RetrieveByID(ctx context.Context, id string, excl channels.Projection) (channels.Channel, error) {
	q := `SELECT id, name, type, topic, description, read_only, join_code, archived, created_by, created_at, updated_at
		FROM rooms WHERE id = :id`

	dbch := dbChannel{ID: id}
	row, err := repo.db.NamedQueryContext(ctx, q, dbch)
	if err != nil {
		return channels.Channel{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer row.Close()

	dbch = dbChannel{}
	if !row.Next() {
		return channels.Channel{}, repoerr.ErrNotFound
	}
	if err := row.StructScan(&dbch); err != nil {
		return channels.Channel{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return toChannel(dbch, excl), nil
}

func (repo *repository) Update(ctx context.Context, ch channels.Channel) (channels.Channel, error) {
	q := `UPDATE rooms SET name = :name, type = :type, topic = :topic, description = :description,
		read_only = :read_only, archived = :archived, updated_at = :updated_at WHERE id = :id
		RETURNING id, name, type, topic, description, read_only, join_code, archived, created_by, created_at, updated_at`

	ch.UpdatedAt = time.Now()
	dbch := toDBChannel(ch)
	row, err := repo.db.NamedQueryContext(ctx, q, dbch)
	if err != nil {
		return channels.Channel{}, postgres.HandleError(repoerr.ErrUpdateEntity, err)
	}
	defer row.Close()

	dbch = dbChannel{}
	if !row.Next() {
		return channels.Channel{}, repoerr.ErrNotFound
	}
	if err := row.StructScan(&dbch); err != nil {
		return channels.Channel{}, errors.Wrap(repoerr.ErrUpdateEntity, err)
	}

	return toChannel(dbch, nil), nil
}

func (repo *repository) UpdateJoinCode(ctx context.Context, roomID, joinCode string) error {
	q := `UPDATE rooms SET join_code = :join_code, updated_at = :updated_at WHERE id = :id`

	params := map[string]interface{}{
		"id":         roomID,
		"join_code":  joinCode,
		"updated_at": time.Now(),
	}
	res, err := repo.db.NamedExecContext(ctx, q, params)
	if err != nil {
		return postgres.HandleError(repoerr.ErrUpdateEntity, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return repoerr.ErrNotFound
	}

	return nil
}

func (repo *repository) Remove(ctx context.Context, id string) error {
	q := `DELETE FROM rooms WHERE id = :id`

	res, err := repo.db.NamedExecContext(ctx, q, map[string]interface{}{"id": id})
	if err != nil {
		return postgres.HandleError(repoerr.ErrRemoveEntity, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return repoerr.ErrNotFound
	}

	return nil
}

func (repo *repository) RetrieveAll(ctx context.Context, pm channels.PageMetadata, excl channels.Projection) (channels.Page, error) {
	query, params := pageQuery(pm)

	q := fmt.Sprintf(`SELECT id, name, type, topic, description, read_only, join_code, archived, created_by, created_at, updated_at
		FROM rooms %s ORDER BY %s OFFSET :offset LIMIT :limit`, query, orderClause(pm.Order, pm.Dir))

	rows, err := repo.db.NamedQueryContext(ctx, q, params)
	if err != nil {
		return channels.Page{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	items := []channels.Channel{}
	for rows.Next() {
		var dbch dbChannel
		if err := rows.StructScan(&dbch); err != nil {
			return channels.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
		}
		items = append(items, toChannel(dbch, excl))
	}

	tq := fmt.Sprintf(`SELECT COUNT(*) FROM rooms %s`, query)
	total, err := postgres.Total(ctx, repo.db, tq, params)
	if err != nil {
		return channels.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	pm.Total = total
	return channels.Page{
		PageMetadata: pm,
		Channels:     items,
	}, nil
}

func (repo *repository) RetrieveJoined(ctx context.Context, userID string, pm channels.PageMetadata, excl channels.Projection) (channels.Page, error) {
	query, params := pageQuery(pm)
	params["user_id"] = userID

	join := strings.Replace(query, "WHERE", "WHERE s.user_id = :user_id AND", 1)

	q := fmt.Sprintf(`SELECT r.id, r.name, r.type, r.topic, r.description, r.read_only, r.join_code, r.archived, r.created_by, r.created_at, r.updated_at
		FROM rooms r INNER JOIN subscriptions s ON s.room_id = r.id %s ORDER BY r.%s OFFSET :offset LIMIT :limit`, join, orderClause(pm.Order, pm.Dir))

	rows, err := repo.db.NamedQueryContext(ctx, q, params)
	if err != nil {
		return channels.Page{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	items := []channels.Channel{}
	for rows.Next() {
		var dbch dbChannel
		if err := rows.StructScan(&dbch); err != nil {
			return channels.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
		}
		items = append(items, toChannel(dbch, excl))
	}

	tq := fmt.Sprintf(`SELECT COUNT(*) FROM rooms r INNER JOIN subscriptions s ON s.room_id = r.id %s`, join)
	total, err := postgres.Total(ctx, repo.db, tq, params)
	if err != nil {
		return channels.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	pm.Total = total
	return channels.Page{
		PageMetadata: pm,
		Channels:     items,
	}, nil
}

func (repo *repository) RetrieveSubscription(ctx context.Context, roomID, userID string) (channels.Subscription, error) {
	q := `SELECT room_id, user_id, open, roles, created_at FROM subscriptions
		WHERE room_id = :room_id AND user_id = :user_id`

	params := map[string]interface{}{
		"room_id": roomID,
		"user_id": userID,
	}
	row, err := repo.db.NamedQueryContext(ctx, q, params)
	if err != nil {
		return channels.Subscription{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer row.Close()

	var dbsub dbSubscription
	if !row.Next() {
		return channels.Subscription{}, repoerr.ErrNotFound
	}
	if err := row.StructScan(&dbsub); err != nil {
		return channels.Subscription{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return toSubscription(dbsub), nil
}

func (repo *repository) SaveSubscription(ctx context.Context, sub channels.Subscription) error {
	q := `INSERT INTO subscriptions (room_id, user_id, open, roles, created_at)
		VALUES (:room_id, :user_id, :open, :roles, :created_at)`

	if _, err := repo.db.NamedExecContext(ctx, q, toDBSubscription(sub)); err != nil {
		return postgres.HandleError(repoerr.ErrCreateEntity, err)
	}

	return nil
}

func (repo *repository) UpdateSubscription(ctx context.Context, sub channels.Subscription) error {
	q := `UPDATE subscriptions SET open = :open, roles = :roles
		WHERE room_id = :room_id AND user_id = :user_id`

	res, err := repo.db.NamedExecContext(ctx, q, toDBSubscription(sub))
	if err != nil {
		return postgres.HandleError(repoerr.ErrUpdateEntity, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return repoerr.ErrNotFound
	}

	return nil
}

func (repo *repository) RemoveSubscription(ctx context.Context, roomID, userID string) error {
	q := `DELETE FROM subscriptions WHERE room_id = :room_id AND user_id = :user_id`

	params := map[string]interface{}{
		"room_id": roomID,
		"user_id": userID,
	}
	res, err := repo.db.NamedExecContext(ctx, q, params)
	if err != nil {
		return postgres.HandleError(repoerr.ErrRemoveEntity, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return repoerr.ErrNotFound
	}

	return nil
}

func (repo *repository) RetrieveIntegrations(ctx context.Context, pm channels.IntegrationsPageMetadata, excl channels.Projection) (channels.IntegrationsPage, error) {
	params := map[string]interface{}{
		"offset": pm.Offset,
		"limit":  pm.Limit,
	}

	var filters []string
	// The scope predicate is fixed by the caller and always applies, even
	// when a name filter is present.
	scopes := make([]string, 0, len(pm.Scopes))
	for i, scope := range pm.Scopes {
		key := fmt.Sprintf("scope_%d", i)
		params[key] = scope
		scopes = append(scopes, ":"+key)
	}
	if len(scopes) > 0 {
		filters = append(filters, fmt.Sprintf("scope IN (%s)", strings.Join(scopes, ", ")))
	}
	if pm.Name != "" {
		params["name"] = "%" + pm.Name + "%"
		filters = append(filters, "name ILIKE :name")
	}

	var query string
	if len(filters) > 0 {
		query = "WHERE " + strings.Join(filters, " AND ")
	}

	q := fmt.Sprintf(`SELECT id, type, name, scope, enabled, created_at FROM integrations %s
		ORDER BY %s OFFSET :offset LIMIT :limit`, query, integrationsOrderClause(pm.Order, pm.Dir))

	rows, err := repo.db.NamedQueryContext(ctx, q, params)
	if err != nil {
		return channels.IntegrationsPage{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	items := []channels.Integration{}
	for rows.Next() {
		var dbin dbIntegration
		if err := rows.StructScan(&dbin); err != nil {
			return channels.IntegrationsPage{}, errors.Wrap(repoerr.ErrViewEntity, err)
		}
		items = append(items, toIntegration(dbin))
	}

	tq := fmt.Sprintf(`SELECT COUNT(*) FROM integrations %s`, query)
	total, err := postgres.Total(ctx, repo.db, tq, params)
	if err != nil {
		return channels.IntegrationsPage{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	pm.Total = total
	return channels.IntegrationsPage{
		IntegrationsPageMetadata: pm,
		Integrations:             items,
	}, nil
}

func (repo *repository) RetrieveMessages(ctx context.Context, req channels.HistoryReq) ([]channels.Message, error) {
	latestOp := "<"
	oldestOp := ">"
	if req.Inclusive {
		latestOp = "<="
		oldestOp = ">="
	}

	params := map[string]interface{}{
		"room_id": req.RoomID,
		"latest":  req.Latest,
		"limit":   req.Count,
	}
	window := fmt.Sprintf("room_id = :room_id AND created_at %s :latest", latestOp)
	if !req.Oldest.IsZero() {
		params["oldest"] = req.Oldest
		window = fmt.Sprintf("%s AND created_at %s :oldest", window, oldestOp)
	}

	q := fmt.Sprintf(`SELECT id, room_id, user_id, body, created_at FROM messages
		WHERE %s ORDER BY created_at DESC LIMIT :limit`, window)

	rows, err := repo.db.NamedQueryContext(ctx, q, params)
	if err != nil {
		return nil, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	msgs := []channels.Message{}
	for rows.Next() {
		var dbmsg dbMessage
		if err := rows.StructScan(&dbmsg); err != nil {
			return nil, errors.Wrap(repoerr.ErrViewEntity, err)
		}
		msgs = append(msgs, toMessage(dbmsg))
	}

	return msgs, nil
}

func (repo *repository) RemoveMessages(ctx context.Context, roomID string, latest, oldest time.Time, inclusive bool) error {
	latestOp := "<"
	oldestOp := ">"
	if inclusive {
		latestOp = "<="
		oldestOp = ">="
	}

	q := fmt.Sprintf(`DELETE FROM messages WHERE room_id = :room_id
		AND created_at %s :latest AND created_at %s :oldest`, latestOp, oldestOp)

	params := map[string]interface{}{
		"room_id": roomID,
		"latest":  latest,
		"oldest":  oldest,
	}
	if _, err := repo.db.NamedExecContext(ctx, q, params); err != nil {
		return postgres.HandleError(repoerr.ErrRemoveEntity, err)
	}

	return nil
}

func (repo *repository) SaveMessage(ctx context.Context, msg channels.Message) error {
	q := `INSERT INTO messages (id, room_id, user_id, body, created_at)
		VALUES (:id, :room_id, :user_id, :body, :created_at)`

	if _, err := repo.db.NamedExecContext(ctx, q, toDBMessage(msg)); err != nil {
		return postgres.HandleError(repoerr.ErrCreateEntity, err)
	}

	return nil
}

func (repo *repository) RetrieveUserByID(ctx context.Context, id string) (channels.User, error) {
	return repo.retrieveUser(ctx, "id = :id", map[string]interface{}{"id": id})
}

func (repo *repository) RetrieveUserByUsername(ctx context.Context, username string) (channels.User, error) {
	return repo.retrieveUser(ctx, "username = :username", map[string]interface{}{"username": username})
}

func (repo *repository) retrieveUser(ctx context.Context, cond string, params map[string]interface{}) (channels.User, error) {
	q := fmt.Sprintf(`SELECT id, username FROM users WHERE %s`, cond)

	row, err := repo.db.NamedQueryContext(ctx, q, params)
	if err != nil {
		return channels.User{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer row.Close()

	var user channels.User
	if !row.Next() {
		return channels.User{}, repoerr.ErrNotFound
	}
	if err := row.StructScan(&user); err != nil {
		return channels.User{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return user, nil
}

func (repo *repository) RetrieveUsers(ctx context.Context) ([]channels.User, error) {
	q := `SELECT id, username FROM users ORDER BY username ASC`

	rows, err := repo.db.NamedQueryContext(ctx, q, map[string]interface{}{})
	if err != nil {
		return nil, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	users := []channels.User{}
	for rows.Next() {
		var user channels.User
		if err := rows.StructScan(&user); err != nil {
			return nil, errors.Wrap(repoerr.ErrViewEntity, err)
		}
		users = append(users, user)
	}

	return users, nil
}

func (repo *repository) SaveUser(ctx context.Context, user channels.User) error {
	q := `INSERT INTO users (id, username) VALUES (:id, :username)`

	if _, err := repo.db.NamedExecContext(ctx, q, user); err != nil {
		return postgres.HandleError(repoerr.ErrCreateEntity, err)
	}

	return nil
}

// pageQuery builds the filter clause for room listings. Caller filters come
// first and the fixed public-type predicate is appended last, so no filter
// combination can widen the listing beyond public channels.
func pageQuery(pm channels.PageMetadata) (string, map[string]interface{}) {
	params := map[string]interface{}{
		"offset": pm.Offset,
		"limit":  pm.Limit,
		"type":   channels.Public,
	}

	var filters []string
	if pm.Name != "" {
		params["name"] = "%" + pm.Name + "%"
		filters = append(filters, "name ILIKE :name")
	}
	filters = append(filters, "type = :type")

	return "WHERE " + strings.Join(filters, " AND "), params
}

func orderClause(order, dir string) string {
	if order != "created_at" {
		order = "name"
	}
	if dir != "desc" {
		dir = "asc"
	}

	return fmt.Sprintf("%s %s", order, dir)
}

func integrationsOrderClause(order, dir string) string {
	if order != "name" {
		order = "created_at"
	}
	if dir != "desc" {
		dir = "asc"
	}

	return fmt.Sprintf("%s %s", order, dir)
}

type dbChannel struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Type        string    `db:"type"`
	Topic       string    `db:"topic"`
	Description string    `db:"description"`
	ReadOnly    bool      `db:"read_only"`
	JoinCode    string    `db:"join_code"`
	Archived    bool      `db:"archived"`
	CreatedBy   string    `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func toDBChannel(ch channels.Channel) dbChannel {
	return dbChannel{
		ID:          ch.ID,
		Name:        ch.Name,
		Type:        ch.Type,
		Topic:       ch.Topic,
		Description: ch.Description,
		ReadOnly:    ch.ReadOnly,
		JoinCode:    ch.JoinCode,
		Archived:    ch.Archived,
		CreatedBy:   ch.CreatedBy,
		CreatedAt:   ch.CreatedAt,
		UpdatedAt:   ch.UpdatedAt,
	}
}

func toChannel(dbch dbChannel, excl channels.Projection) channels.Channel {
	ch := channels.Channel{
		ID:          dbch.ID,
		Name:        dbch.Name,
		Type:        dbch.Type,
		Topic:       dbch.Topic,
		Description: dbch.Description,
		ReadOnly:    dbch.ReadOnly,
		JoinCode:    dbch.JoinCode,
		Archived:    dbch.Archived,
		CreatedBy:   dbch.CreatedBy,
		CreatedAt:   dbch.CreatedAt,
		UpdatedAt:   dbch.UpdatedAt,
	}
	if excl.Excludes("join_code") {
		ch.JoinCode = ""
	}

	return ch
}

type dbSubscription struct {
	RoomID    string    `db:"room_id"`
	UserID    string    `db:"user_id"`
	Open      bool      `db:"open"`
	Roles     string    `db:"roles"`
	CreatedAt time.Time `db:"created_at"`
}

func toDBSubscription(sub channels.Subscription) dbSubscription {
	return dbSubscription{
		RoomID:    sub.RoomID,
		UserID:    sub.UserID,
		Open:      sub.Open,
		Roles:     strings.Join(sub.Roles, ","),
		CreatedAt: sub.CreatedAt,
	}
}

func toSubscription(dbsub dbSubscription) channels.Subscription {
	sub := channels.Subscription{
		RoomID:    dbsub.RoomID,
		UserID:    dbsub.UserID,
		Open:      dbsub.Open,
		CreatedAt: dbsub.CreatedAt,
	}
	if dbsub.Roles != "" {
		sub.Roles = strings.Split(dbsub.Roles, ",")
	}

	return sub
}

type dbMessage struct {
	ID        string    `db:"id"`
	RoomID    string    `db:"room_id"`
	UserID    string    `db:"user_id"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

func toDBMessage(msg channels.Message) dbMessage {
	return dbMessage{
		ID:        msg.ID,
		RoomID:    msg.RoomID,
		UserID:    msg.UserID,
		Body:      msg.Text,
		CreatedAt: msg.CreatedAt,
	}
}

func toMessage(dbmsg dbMessage) channels.Message {
	return channels.Message{
		ID:        dbmsg.ID,
		RoomID:    dbmsg.RoomID,
		UserID:    dbmsg.UserID,
		Text:      dbmsg.Body,
		CreatedAt: dbmsg.CreatedAt,
	}
}

type dbIntegration struct {
	ID        string    `db:"id"`
	Type      string    `db:"type"`
	Name      string    `db:"name"`
	Scope     string    `db:"scope"`
	Enabled   bool      `db:"enabled"`
	CreatedAt time.Time `db:"created_at"`
}

func toIntegration(dbin dbIntegration) channels.Integration {
	return channels.Integration{
		ID:        dbin.ID,
		Type:      dbin.Type,
		Name:      dbin.Name,
		Scope:     dbin.Scope,
		Enabled:   dbin.Enabled,
		CreatedAt: dbin.CreatedAt,
	}
}
