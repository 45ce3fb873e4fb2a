// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"
	"strings"

	"github.com/communecc/commune/pkg/authz"
	"github.com/communecc/commune/pkg/errors"
	svcerr "github.com/communecc/commune/pkg/errors/service"
	"github.com/communecc/commune/pkg/postgres"
)

type authorization struct {
	db postgres.Database
}

// NewAuthorization returns a capability oracle backed by the users table.
// Capabilities are stored as a comma-separated list per user.
func NewAuthorization(db postgres.Database) authz.Authorization {
	return &authorization{db: db}
}

func (a *authorization) Authorize(ctx context.Context, pr authz.PolicyReq) error {
	q := `SELECT capabilities FROM users WHERE id = :id`

	row, err := a.db.NamedQueryContext(ctx, q, map[string]interface{}{"id": pr.UserID})
	if err != nil {
		return errors.Wrap(svcerr.ErrAuthorization, err)
	}
	defer row.Close()

	if !row.Next() {
		return svcerr.ErrAuthorization
	}
	var capabilities string
	if err := row.Scan(&capabilities); err != nil {
		return errors.Wrap(svcerr.ErrAuthorization, err)
	}

	for _, capability := range strings.Split(capabilities, ",") {
		if strings.TrimSpace(capability) == pr.Permission {
			return nil
		}
	}

	return svcerr.ErrAuthorization
}
