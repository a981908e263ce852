// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// IdentityPayload is the body of POST /jwt: the identity the caller asks to
// be embedded in the issued token.
type IdentityPayload struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`
}

// Claims is the JWT claim set issued by the server: the identity payload plus
// the registered iss, iat and exp claims.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`

	jwt.RegisteredClaims
}

// Token is the response of the token issuer.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"token"`

	// Claims holds the claim set the token was signed with or parsed into.
	Claims *Claims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
