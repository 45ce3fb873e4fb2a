// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

package authn

import "context"

// Session holds the identity the request acts as. Operations dispatched to
// the command executor are evaluated as this user, not as the service.
type Session struct {
	UserID   string
	Username string
}

// Authentication resolves a bearer token into a session.
type Authentication interface {
	Authenticate(ctx context.Context, token string) (Session, error)
}
