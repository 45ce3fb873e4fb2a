// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

// Package middleware provides middleware for the channels service.
package middleware
