// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Defaults applied to fields that no source has set.
const (
	DefaultPort            = 5000
	DefaultTokenIssuer     = "oyou-server"
	DefaultTokenDuration   = time.Hour
	DefaultVersion         = "dev"
	DefaultLogLevel        = "debug"
	DefaultDBName          = "oyouworld"
	DefaultDBHost          = "oyou.oxi6mqt.mongodb.net"
	DefaultDBAppName       = "Oyou"
	DefaultConnectTimeout  = 10 * time.Second
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultSearchBaseURL   = "https://www.googleapis.com/customsearch/v1"
	DefaultSearchTimeout   = 10 * time.Second
)

// DefaultAllowedOrigins are the browser clients of the service.
var DefaultAllowedOrigins = []string{"https://oyou-client.vercel.app", "http://localhost:3000"}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}

	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DriverMongo
	}
	if cfg.Storage.DB.Name == "" {
		cfg.Storage.DB.Name = DefaultDBName
	}
	if cfg.Storage.DB.Host == "" {
		cfg.Storage.DB.Host = DefaultDBHost
	}
	if cfg.Storage.DB.AppName == "" {
		cfg.Storage.DB.AppName = DefaultDBAppName
	}
	if cfg.Storage.DB.ConnectTimeout == 0 {
		cfg.Storage.DB.ConnectTimeout = DefaultConnectTimeout
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":" + strconv.Itoa(cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = append([]string(nil), DefaultAllowedOrigins...)
	}

	if cfg.Search.BaseURL == "" {
		cfg.Search.BaseURL = DefaultSearchBaseURL
	}
	if cfg.Search.Timeout == 0 {
		cfg.Search.Timeout = DefaultSearchTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// start-up invariants. It is called after applyDefaults.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: ACCESS_TOKEN_SECRET is empty", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.Driver {
	case DriverMongo:
		if cfg.Storage.DB.URI == "" && cfg.Storage.DB.User == "" {
			return fmt.Errorf("%w: set DATABASE_URI or DB_USER/DB_PASS", ErrInvalidStorageConfigs)
		}
	case DriverPostgres:
		if cfg.Storage.DB.URI == "" {
			return fmt.Errorf("%w: postgres driver requires DATABASE_URI", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	return nil
}

// ConnectionURI returns the store connection string. An explicit URI wins;
// otherwise a MongoDB Atlas SRV URI is assembled from the credentials.
func (db DB) ConnectionURI() string {
	if db.URI != "" {
		return db.URI
	}

	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(db.User, db.Password),
		Host:     db.Host,
		Path:     "/",
		RawQuery: url.Values{"retryWrites": {"true"}, "w": {"majority"}, "appName": {db.AppName}}.Encode(),
	}

	return u.String()
}
