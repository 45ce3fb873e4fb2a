// Copyright (c) Commune
// SPDX-License-Identifier: Apache-2.0

// Package jwt provides a JWT-backed Authentication implementation. Tokens
// are HS512-signed, carry the acting user id as subject and the username as
// a private claim.
package jwt

import (
	"context"
	"time"

	"github.com/communecc/commune/pkg/authn"
	"github.com/communecc/commune/pkg/errors"
	svcerr "github.com/communecc/commune/pkg/errors/service"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	issuerName    = "commune.channels"
	usernameField = "username"
)

var (
	errInvalidIssuer  = errors.New("invalid token issuer value")
	errMissingSubject = errors.New("token has no subject")

	// ErrSignJWT indicates an error in signing a jwt token.
	ErrSignJWT = errors.New("failed to sign jwt token")
	// ErrValidateJWTToken indicates a failure to validate a JWT token.
	ErrValidateJWTToken = errors.New("failed to validate jwt token")
)

type tokenizer struct {
	secret []byte
}

var _ authn.Authentication = (*tokenizer)(nil)

// New returns a JWT authenticator verifying tokens with the given secret.
func New(secret []byte) *tokenizer {
	return &tokenizer{secret: secret}
}

// Issue signs a token for the given session, valid for the given duration.
func (tok *tokenizer) Issue(session authn.Session, validity time.Duration) (string, error) {
	now := time.Now()
	tkn, err := jwt.NewBuilder().
		Issuer(issuerName).
		IssuedAt(now).
		Expiration(now.Add(validity)).
		Subject(session.UserID).
		Claim(usernameField, session.Username).
		Build()
	if err != nil {
		return "", errors.Wrap(ErrSignJWT, err)
	}

	signed, err := jwt.Sign(tkn, jwt.WithKey(jwa.HS512, tok.secret))
	if err != nil {
		return "", errors.Wrap(ErrSignJWT, err)
	}

	return string(signed), nil
}

func (tok *tokenizer) Authenticate(ctx context.Context, token string) (authn.Session, error) {
	tkn, err := jwt.Parse(
		[]byte(token),
		jwt.WithValidate(true),
		jwt.WithKey(jwa.HS512, tok.secret),
	)
	if err != nil {
		return authn.Session{}, errors.Wrap(svcerr.ErrAuthentication, err)
	}

	validator := jwt.ValidatorFunc(func(_ context.Context, t jwt.Token) jwt.ValidationError {
		if t.Issuer() != issuerName {
			return jwt.NewValidationError(errInvalidIssuer)
		}
		return nil
	})
	if err := jwt.Validate(tkn, jwt.WithValidator(validator)); err != nil {
		return authn.Session{}, errors.Wrap(svcerr.ErrAuthentication, errors.Wrap(ErrValidateJWTToken, err))
	}

	if tkn.Subject() == "" {
		return authn.Session{}, errors.Wrap(svcerr.ErrAuthentication, errMissingSubject)
	}

	session := authn.Session{UserID: tkn.Subject()}
	if username, ok := tkn.Get(usernameField); ok {
		if s, ok := username.(string); ok {
			session.Username = s
		}
	}

	return session, nil
}
