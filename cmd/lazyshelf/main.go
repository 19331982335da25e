package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lazyshelf/lazyshelf/internal/app"
	"github.com/lazyshelf/lazyshelf/internal/catalog"
	"github.com/lazyshelf/lazyshelf/internal/config"
	"github.com/lazyshelf/lazyshelf/internal/db/connection"
	"github.com/lazyshelf/lazyshelf/internal/db/credentials"
	"github.com/lazyshelf/lazyshelf/internal/db/discovery"
	"github.com/lazyshelf/lazyshelf/internal/db/pgcatalog"
	"github.com/lazyshelf/lazyshelf/internal/history"
	"github.com/lazyshelf/lazyshelf/internal/models"
	"github.com/lazyshelf/lazyshelf/internal/searches"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Warning: Could not load config: %v (using defaults)\n", err)
		cfg = config.GetDefaults()
	}

	store := catalog.NewStore()
	opts := app.Options{Catalog: store}

	// Source precedence: explicit postgres config, then the standard PG*
	// environment variables, then the catalog file.
	envConfig := discovery.GetEnvironmentConfig()

	if cfg.UsesPostgres() || envConfig != nil {
		pgStore, source, err := connectPostgres(cfg, envConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to PostgreSQL: %v\n", err)
			os.Exit(1)
		}
		opts.PG = pgStore
		opts.Source = source
	} else {
		products, err := catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading catalog %s: %v\n", cfg.Catalog.Path, err)
			os.Exit(1)
		}
		store.Replace(products, cfg.Catalog.Path)
	}

	configDir, err := config.GetConfigPath()
	if err == nil {
		if mkErr := os.MkdirAll(configDir, 0755); mkErr == nil {
			if cfg.History.Enabled {
				historyStore, hErr := history.NewStore(filepath.Join(configDir, "history.db"))
				if hErr != nil {
					log.Printf("Warning: run history disabled: %v\n", hErr)
				} else {
					opts.History = historyStore
					defer func() { _ = historyStore.Close() }()
				}
			}

			searchesManager, sErr := searches.NewManager(configDir)
			if sErr != nil {
				log.Printf("Warning: saved searches disabled: %v\n", sErr)
			} else {
				opts.Searches = searchesManager
			}
		}
	}

	application := app.New(cfg, opts)

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.MouseEnabled {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(application, programOpts...)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

// connectPostgres resolves credentials, opens the pool, and wraps the
// configured products table. The config file wins over the environment.
func connectPostgres(cfg *config.Config, envConfig *models.ConnectionConfig) (*pgcatalog.Store, string, error) {
	pg := cfg.Catalog.Postgres

	var connConfig models.ConnectionConfig
	if cfg.UsesPostgres() {
		connConfig = models.ConnectionConfig{
			Host:     pg.Host,
			Port:     pg.Port,
			Database: pg.Database,
			User:     pg.User,
			SSLMode:  pg.SSLMode,
		}
	} else {
		connConfig = *envConfig
	}
	connConfig.Table = pg.Table

	if connConfig.Port == 0 {
		connConfig.Port = 5432
	}
	if connConfig.User == "" {
		connConfig.User = os.Getenv("USER")
	}
	if connConfig.Database == "" {
		connConfig.Database = connConfig.User
	}

	credStore := credentials.NewStore()
	credSource := credentials.Resolve(&connConfig, credStore)
	log.Printf("Using credentials from %s\n", credSource)

	manager := connection.NewManager(cfg.Performance.ConnectionPoolSize)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := manager.Connect(ctx, connConfig); err != nil {
		if credSource == models.SourceKeyring {
			// The stored password no longer works; drop it so the next
			// run falls through to the other sources.
			_ = credStore.Delete(connConfig.Host, connConfig.Port, connConfig.Database, connConfig.User)
		}
		return nil, "", err
	}

	if credSource != models.SourceKeyring {
		if err := credStore.Save(connConfig.Host, connConfig.Port, connConfig.Database, connConfig.User, connConfig.Password); err != nil {
			log.Printf("Warning: could not store password in keyring: %v\n", err)
		}
	}

	conn, err := manager.GetActive()
	if err != nil {
		return nil, "", err
	}

	store := pgcatalog.NewStore(conn.Pool, pg.Table)
	label := fmt.Sprintf("%s@%s:%d/%s.%s",
		connConfig.User, connConfig.Host, connConfig.Port, connConfig.Database, store.Table())

	return store, label, nil
}
