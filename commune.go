// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

// Package commune acts as an umbrella package containing multiple different
// abstractions shared by the platform services.
package commune

import (
	"encoding/json"
	"net/http"
	"time"
)

const (
	version     = "0.1.0"
	contentType = "application/health+json"
	svcStatus   = "pass"
)

// Response contains HTTP response specific methods.
type Response interface {
	// Code returns HTTP response code.
	Code() int

	// Headers returns map of HTTP headers with their values.
	Headers() map[string]string

	// Empty indicates if HTTP response has content.
	Empty() bool
}

// IDProvider specifies an API for generating unique identifiers.
type IDProvider interface {
	// ID generates the unique identifier.
	ID() (string, error)
}

// HealthInfo contains the health check endpoint response.
type HealthInfo struct {
	// Status contains the service status.
	Status string `json:"status"`

	// Version contains the current service version.
	Version string `json:"version"`

	// Description contains the service description.
	Description string `json:"description"`

	// InstanceID contains the ID of the running service instance.
	InstanceID string `json:"instance_id"`

	// Timestamp of the health check.
	Timestamp string `json:"timestamp"`
}

// Health exposes an HTTP handler for retrieving the service health.
func Health(service, instanceID string) http.HandlerFunc {
	return func(rw http.ResponseWriter, _ *http.Request) {
		res := HealthInfo{
			Status:      svcStatus,
			Version:     version,
			Description: service + " service",
			InstanceID:  instanceID,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}

		rw.Header().Set("Content-Type", contentType)
		if err := json.NewEncoder(rw).Encode(res); err != nil {
			http.Error(rw, err.Error(), http.StatusInternalServerError)
		}
	}
}
