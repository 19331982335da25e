package models

import (
	"time"
)

// ConnectionConfig represents a PostgreSQL catalog source configuration
type ConnectionConfig struct {
	Name     string `yaml:"name"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	Table    string `yaml:"table"` // products table, default "products"
}

// Connection represents an active database connection
type Connection struct {
	ID          string
	Config      ConnectionConfig
	Connected   bool
	ConnectedAt time.Time
	LastPing    time.Time
	Error       error
}

// ConnectionState represents the current connection state
type ConnectionState int

const (
	Disconnected ConnectionState = iota
	Connecting
	Connected
	Failed
)

// CredentialSource indicates where connection credentials were resolved from
type CredentialSource int

const (
	SourceConfig CredentialSource = iota
	SourceEnvironment
	SourcePgPass
	SourceKeyring
)

func (s CredentialSource) String() string {
	switch s {
	case SourceConfig:
		return "Config File"
	case SourceEnvironment:
		return "Environment"
	case SourcePgPass:
		return ".pgpass"
	case SourceKeyring:
		return "Keyring"
	default:
		return "Unknown"
	}
}
