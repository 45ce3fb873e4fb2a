// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

// Package postgres contains repository implementation for channels.
package postgres

import (
	migrate "github.com/rubenv/sql-migrate"
)

// Migration of channels service.
func Migration() *migrate.MemoryMigrationSource {
	return &migrate.MemoryMigrationSource{
		Migrations: []*migrate.Migration{
			{
				Id: "channels_01",
				Up: []string{
					`CREATE TABLE IF NOT EXISTS users (
						id           VARCHAR(36) PRIMARY KEY,
						username     VARCHAR(254) NOT NULL UNIQUE,
						capabilities TEXT NOT NULL DEFAULT ''
					)`,
					`CREATE TABLE IF NOT EXISTS rooms (
						id          VARCHAR(36) PRIMARY KEY,
						name        VARCHAR(1024) NOT NULL UNIQUE,
						type        VARCHAR(2) NOT NULL DEFAULT 'c',
						topic       TEXT NOT NULL DEFAULT '',
						description TEXT NOT NULL DEFAULT '',
						read_only   BOOLEAN NOT NULL DEFAULT FALSE,
						join_code   TEXT NOT NULL DEFAULT '',
						archived    BOOLEAN NOT NULL DEFAULT FALSE,
						created_by  VARCHAR(36) NOT NULL DEFAULT '',
						created_at  TIMESTAMP,
						updated_at  TIMESTAMP
					)`,
					`CREATE TABLE IF NOT EXISTS subscriptions (
						room_id     VARCHAR(36) NOT NULL REFERENCES rooms (id) ON DELETE CASCADE,
						user_id     VARCHAR(36) NOT NULL REFERENCES users (id) ON DELETE CASCADE,
						open        BOOLEAN NOT NULL DEFAULT TRUE,
						roles       TEXT NOT NULL DEFAULT '',
						created_at  TIMESTAMP,
						PRIMARY KEY (room_id, user_id)
					)`,
					`CREATE TABLE IF NOT EXISTS messages (
						id          VARCHAR(36) PRIMARY KEY,
						room_id     VARCHAR(36) NOT NULL REFERENCES rooms (id) ON DELETE CASCADE,
						user_id     VARCHAR(36) NOT NULL,
						body        TEXT NOT NULL DEFAULT '',
						created_at  TIMESTAMP
					)`,
					`CREATE TABLE IF NOT EXISTS integrations (
						id          VARCHAR(36) PRIMARY KEY,
						type        VARCHAR(64) NOT NULL,
						name        VARCHAR(1024) NOT NULL,
						scope       VARCHAR(1024) NOT NULL,
						enabled     BOOLEAN NOT NULL DEFAULT TRUE,
						created_at  TIMESTAMP
					)`,
				},
				Down: []string{
					`DROP TABLE IF EXISTS integrations`,
					`DROP TABLE IF EXISTS messages`,
					`DROP TABLE IF EXISTS subscriptions`,
					`DROP TABLE IF EXISTS rooms`,
					`DROP TABLE IF EXISTS users`,
				},
			},
		},
	}
}
