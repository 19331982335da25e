package discovery

import (
	"os"
	"strconv"

	"github.com/lazyshelf/lazyshelf/internal/models"
)

// GetEnvironmentConfig builds a connection config from the standard
// PostgreSQL environment variables (PGHOST, PGPORT, PGDATABASE, PGUSER,
// PGPASSWORD, PGSSLMODE). Returns nil when none of them are set.
func GetEnvironmentConfig() *models.ConnectionConfig {
	host := os.Getenv("PGHOST")
	portStr := os.Getenv("PGPORT")
	database := os.Getenv("PGDATABASE")
	user := os.Getenv("PGUSER")
	password := os.Getenv("PGPASSWORD")
	sslMode := os.Getenv("PGSSLMODE")

	if host == "" && database == "" && user == "" {
		return nil
	}

	// Set defaults
	if host == "" {
		host = "localhost"
	}
	if user == "" {
		user = os.Getenv("USER")
	}
	if database == "" {
		database = user
	}

	port := 5432
	if portStr != "" {
		if p, err := strconv.Atoi(portStr); err == nil && p > 0 && p <= 65535 {
			port = p
		}
	}

	if sslMode == "" {
		sslMode = "prefer"
	}

	return &models.ConnectionConfig{
		Name:     "Environment",
		Host:     host,
		Port:     port,
		Database: database,
		User:     user,
		Password: password,
		SSLMode:  sslMode,
	}
}
