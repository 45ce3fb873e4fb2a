// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

package authz

import "context"

// Capabilities checked by the channels core. Everything else is enforced by
// the command executor itself.
const (
	// CreatePublicChannelPermission allows creating public channels.
	CreatePublicChannelPermission = "create-c"

	// ManageIntegrationsPermission allows reading and managing integrations.
	ManageIntegrationsPermission = "manage-integrations"
)

// PolicyReq represents a single capability check request.
type PolicyReq struct {
	// UserID is the identity the capability is checked for.
	UserID string

	// Permission is the required capability.
	Permission string
}

// Authorization is the capability oracle consulted before gated operations.
//
//go:generate mockery --name Authorization --output=./mocks --filename authz.go --quiet --note "Copyright (c) Commune"
type Authorization interface {
	// Authorize returns a nil error iff the user holds the permission.
	Authorize(ctx context.Context, pr PolicyReq) error
}
