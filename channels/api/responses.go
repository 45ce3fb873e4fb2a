// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"

	"github.com/communecc/commune"
	"github.com/communecc/commune/channels"
)

var (
	_ commune.Response = (*channelRes)(nil)
	_ commune.Response = (*statusRes)(nil)
	_ commune.Response = (*descriptionRes)(nil)
	_ commune.Response = (*purposeRes)(nil)
	_ commune.Response = (*topicRes)(nil)
	_ commune.Response = (*channelsPageRes)(nil)
	_ commune.Response = (*integrationsPageRes)(nil)
	_ commune.Response = (*messagesRes)(nil)
)

// Every success envelope carries the success flag alongside its payload, so
// callers can branch on a single field regardless of the operation.
type channelRes struct {
	Channel channels.Channel `json:"channel"`
	Success bool             `json:"success"`
	created bool
}

func (res channelRes) Code() int {
	if res.created {
		return http.StatusCreated
	}

	return http.StatusOK
}

func (res channelRes) Headers() map[string]string {
	return map[string]string{}
}

func (res channelRes) Empty() bool {
	return false
}

type statusRes struct {
	Success bool `json:"success"`
}

func (res statusRes) Code() int {
	return http.StatusOK
}

func (res statusRes) Headers() map[string]string {
	return map[string]string{}
}

func (res statusRes) Empty() bool {
	return false
}

type descriptionRes struct {
	Description string `json:"description"`
	Success     bool   `json:"success"`
}

func (res descriptionRes) Code() int {
	return http.StatusOK
}

func (res descriptionRes) Headers() map[string]string {
	return map[string]string{}
}

func (res descriptionRes) Empty() bool {
	return false
}

type purposeRes struct {
	Purpose string `json:"purpose"`
	Success bool   `json:"success"`
}

func (res purposeRes) Code() int {
	return http.StatusOK
}

func (res purposeRes) Headers() map[string]string {
	return map[string]string{}
}

func (res purposeRes) Empty() bool {
	return false
}

type topicRes struct {
	Topic   string `json:"topic"`
	Success bool   `json:"success"`
}

func (res topicRes) Code() int {
	return http.StatusOK
}

func (res topicRes) Headers() map[string]string {
	return map[string]string{}
}

func (res topicRes) Empty() bool {
	return false
}

type channelsPageRes struct {
	Channels []channels.Channel `json:"channels"`
	Count    uint64             `json:"count"`
	Offset   uint64             `json:"offset"`
	Total    uint64             `json:"total"`
	Success  bool               `json:"success"`
}

func (res channelsPageRes) Code() int {
	return http.StatusOK
}

func (res channelsPageRes) Headers() map[string]string {
	return map[string]string{}
}

func (res channelsPageRes) Empty() bool {
	return false
}

type integrationsPageRes struct {
	Integrations []channels.Integration `json:"integrations"`
	Count        uint64                 `json:"count"`
	Offset       uint64                 `json:"offset"`
	Total        uint64                 `json:"total"`
	Success      bool                   `json:"success"`
}

func (res integrationsPageRes) Code() int {
	return http.StatusOK
}

func (res integrationsPageRes) Headers() map[string]string {
	return map[string]string{}
}

func (res integrationsPageRes) Empty() bool {
	return false
}

type messagesRes struct {
	Messages []channels.Message `json:"messages"`
	Success  bool               `json:"success"`
}

func (res messagesRes) Code() int {
	return http.StatusOK
}

func (res messagesRes) Headers() map[string]string {
	return map[string]string{}
}

func (res messagesRes) Empty() bool {
	return false
}
