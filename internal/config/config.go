// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// oyou-server application. It aggregates all sub-configurations and is
// populated by merging values from a JSON file, a .env file, environment
// variables and command-line flags.
//
// Environment variable names are kept compatible with the deployments of the
// service (PORT, DB_USER, ACCESS_TOKEN_SECRET, GOOGLE_API_KEY, ...), so the
// nested structs do not use an envPrefix.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App

	// Storage holds the document store connection settings.
	Storage Storage

	// Server holds listener, timeout and CORS settings.
	Server Server

	// Search holds the external web-search provider settings.
	Search Search

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded into the process environment before
	// the environment is parsed. Missing files are ignored.
	DotEnvPath string `env:"DOTENV_PATH"`
}

// App holds application-level configuration values that control the token
// lifecycle, logging and versioning.
type App struct {
	// TokenSignKey is the secret used to sign and verify access tokens.
	// Env: ACCESS_TOKEN_SECRET
	TokenSignKey string `env:"ACCESS_TOKEN_SECRET"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid after issuance.
	// Env: TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is reported by GET /version.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage selects and configures the document store.
type Storage struct {
	// Driver is either DriverMongo or DriverPostgres.
	// Env: STORAGE_DRIVER
	Driver string `env:"STORAGE_DRIVER"`

	// DB holds connection settings shared by both drivers.
	DB DB
}

// DB holds the connection settings of the document store.
type DB struct {
	// URI is a complete connection string. When empty, a MongoDB SRV URI is
	// built from User, Password, Host and AppName.
	// Env: DATABASE_URI
	URI string `env:"DATABASE_URI"`

	// Env: DB_USER
	User string `env:"DB_USER"`

	// Env: DB_PASS
	Password string `env:"DB_PASS"`

	// Host is the MongoDB Atlas cluster host.
	// Env: DB_HOST
	Host string `env:"DB_HOST"`

	// Name is the database holding the user, view and search collections.
	// Env: DB_NAME
	Name string `env:"DB_NAME"`

	// AppName is reported to MongoDB as the client application name.
	// Env: DB_APP_NAME
	AppName string `env:"DB_APP_NAME"`

	// ConnectTimeout bounds the start-up connection and ping.
	// Env: DB_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT"`
}

// Server holds network, timeout and CORS settings for the HTTP listener.
type Server struct {
	// Port is used when HTTPAddress is empty.
	// Env: PORT
	Port int `env:"PORT"`

	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`

	// AllowedOrigins lists the origins allowed to make cross-origin requests.
	// Env: CORS_ALLOWED_ORIGINS (comma-separated)
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Search configures the external web-search provider.
type Search struct {
	// Env: GOOGLE_API_KEY
	APIKey string `env:"GOOGLE_API_KEY"`

	// EngineID is the programmable search engine identifier (cx).
	// Env: GOOGLE_CSE_ID
	EngineID string `env:"GOOGLE_CSE_ID"`

	// BaseURL is the provider endpoint.
	// Env: SEARCH_BASE_URL
	BaseURL string `env:"SEARCH_BASE_URL"`

	// Timeout bounds a single outbound search call.
	// Env: SEARCH_TIMEOUT
	Timeout time.Duration `env:"SEARCH_TIMEOUT"`
}

// Supported storage drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. JSON file (path resolved from the environment and flags)
//  2. Environment variables (after loading the .env file)
//  3. Command-line flags
//
// Remaining zero values are filled with defaults before validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
