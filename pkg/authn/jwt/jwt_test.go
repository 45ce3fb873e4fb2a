// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

package jwt_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/communecc/commune/pkg/authn"
	authjwt "github.com/communecc/commune/pkg/authn/jwt"
	"github.com/communecc/commune/pkg/errors"
	svcerr "github.com/communecc/commune/pkg/errors/service"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usernameField = "username"

var (
	secret       = []byte("test")
	wrongSecret  = []byte("wrong")
	validSession = authn.Session{UserID: "user-1", Username: "nova.bot"}
)

func signToken(t *testing.T, issuer, subject string, key []byte, exp time.Time) string {
	builder := jwt.NewBuilder().
		Issuer(issuer).
		IssuedAt(time.Now()).
		Expiration(exp).
		Claim(usernameField, "nova.bot")
	if subject != "" {
		builder = builder.Subject(subject)
	}
	tkn, err := builder.Build()
	require.Nil(t, err, fmt.Sprintf("build token unexpected error: %s", err))

	signed, err := jwt.Sign(tkn, jwt.WithKey(jwa.HS512, key))
	require.Nil(t, err, fmt.Sprintf("sign token unexpected error: %s", err))

	return string(signed)
}

func TestAuthenticate(t *testing.T) {
	tokenizer := authjwt.New(secret)

	token, err := tokenizer.Issue(validSession, time.Minute)
	require.Nil(t, err, fmt.Sprintf("issue token unexpected error: %s", err))

	exp := time.Now().Add(time.Minute)

	cases := []struct {
		desc    string
		token   string
		session authn.Session
		err     error
	}{
		{
			desc:    "issued token",
			token:   token,
			session: validSession,
			err:     nil,
		},
		{
			desc:  "expired token",
			token: signToken(t, "commune.channels", "user-1", secret, time.Now().Add(-time.Minute)),
			err:   svcerr.ErrAuthentication,
		},
		{
			desc:  "wrong signing key",
			token: signToken(t, "commune.channels", "user-1", wrongSecret, exp),
			err:   svcerr.ErrAuthentication,
		},
		{
			desc:  "wrong issuer",
			token: signToken(t, "someone.else", "user-1", secret, exp),
			err:   svcerr.ErrAuthentication,
		},
		{
			desc:  "missing subject",
			token: signToken(t, "commune.channels", "", secret, exp),
			err:   svcerr.ErrAuthentication,
		},
		{
			desc:  "not a token",
			token: "definitely not a jwt",
			err:   svcerr.ErrAuthentication,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			session, err := tokenizer.Authenticate(context.Background(), tc.token)
			if tc.err != nil {
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected %s got %s", tc.err, err))
				return
			}
			require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
			assert.Equal(t, tc.session, session)
		})
	}
}
