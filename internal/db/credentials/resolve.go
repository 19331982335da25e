package credentials

import (
	"os"

	"github.com/lazyshelf/lazyshelf/internal/db/discovery"
	"github.com/lazyshelf/lazyshelf/internal/models"
)

// Resolve fills in the password for a connection config, trying sources in
// order: the config itself, the PGPASSWORD environment variable, the OS
// keyring, then ~/.pgpass. Returns the source that provided the password,
// or SourceConfig with an empty password when nothing matched.
func Resolve(config *models.ConnectionConfig, store *Store) models.CredentialSource {
	if config.Password != "" {
		return models.SourceConfig
	}

	if password := os.Getenv("PGPASSWORD"); password != "" {
		config.Password = password
		return models.SourceEnvironment
	}

	if store != nil {
		if password, err := store.Get(config.Host, config.Port, config.Database, config.User); err == nil {
			config.Password = password
			return models.SourceKeyring
		}
	}

	if password := discovery.FindPassword(config.Host, config.Port, config.Database, config.User); password != "" {
		config.Password = password
		return models.SourcePgPass
	}

	return models.SourceConfig
}
