// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("pigeon-raiders", "jessy.leroux28469@gmail.com", time.Hour, "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := ParseSessionToken(token, "secret", "pigeon-raiders")
	require.NoError(t, err)
	assert.Equal(t, "jessy.leroux28469@gmail.com", email)
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		email    string
		duration time.Duration
		signKey  string
	}{
		{"empty issuer", "", "a@b.c", time.Hour, "key"},
		{"empty email", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "a@b.c", 0, "key"},
		{"empty sign key", "iss", "a@b.c", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.issuer, tt.email, tt.duration, tt.signKey)
			require.Error(t, err)
		})
	}
}

func TestParseSessionToken_WrongKey(t *testing.T) {
	token, err := GenerateSessionToken("pigeon-raiders", "a@b.c", time.Hour, "secret")
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "other-key", "pigeon-raiders")
	require.Error(t, err)
}

func TestParseSessionToken_WrongIssuer(t *testing.T) {
	token, err := GenerateSessionToken("someone-else", "a@b.c", time.Hour, "secret")
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "secret", "pigeon-raiders")
	require.Error(t, err)
}

func TestParseSessionToken_Expired(t *testing.T) {
	token, err := GenerateSessionToken("pigeon-raiders", "a@b.c", -time.Minute, "secret")
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "secret", "pigeon-raiders")
	require.Error(t, err)
}

func TestParseSessionToken_Garbage(t *testing.T) {
	_, err := ParseSessionToken("not-a-token", "secret", "pigeon-raiders")
	require.Error(t, err)
}
