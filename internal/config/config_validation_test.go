// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid mongo credentials",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name: "valid mongo uri",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB = DB{URI: "mongodb://localhost:27017"}
			},
		},
		{
			name: "valid postgres",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Driver = DriverPostgres
				cfg.Storage.DB = DB{URI: "postgres://localhost/oyou"}
			},
		},
		{
			name:    "missing token secret",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenDuration = -1 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "mongo without credentials",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB = DB{} },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "postgres without uri",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Driver = DriverPostgres
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Driver = "sqlite" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "port out of range",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.Port = 70000 },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minimalConfig()
			tt.mutate(cfg)
			cfg.applyDefaults()

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		Server: Server{Port: 8080, HTTPAddress: "127.0.0.1:9000", AllowedOrigins: []string{"http://x.test"}},
		Search: Search{BaseURL: "http://search.test"},
	}

	cfg.applyDefaults()

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, []string{"http://x.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://search.test", cfg.Search.BaseURL)
}

func TestConnectionURI_ExplicitURIWins(t *testing.T) {
	db := DB{URI: "mongodb://localhost:27017", User: "ignored"}
	assert.Equal(t, "mongodb://localhost:27017", db.ConnectionURI())
}

func TestConnectionURI_BuildsAtlasURI(t *testing.T) {
	db := DB{User: "oyou", Password: "p@ss", Host: DefaultDBHost, AppName: "Oyou"}

	raw := db.ConnectionURI()

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "mongodb+srv", u.Scheme)
	assert.Equal(t, DefaultDBHost, u.Host)
	assert.Equal(t, "oyou", u.User.Username())
	pass, _ := u.User.Password()
	assert.Equal(t, "p@ss", pass)
	assert.Equal(t, "true", u.Query().Get("retryWrites"))
	assert.Equal(t, "majority", u.Query().Get("w"))
	assert.Equal(t, "Oyou", u.Query().Get("appName"))
}
