// Package searches persists named filter criteria so users can re-run
// common queries without rebuilding them.
package searches

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lazyshelf/lazyshelf/internal/export"
	"github.com/lazyshelf/lazyshelf/internal/models"
)

// Manager manages saved searches
type Manager struct {
	path     string
	searches []models.SavedSearch
}

// NewManager creates a new saved-search manager
func NewManager(configDir string) (*Manager, error) {
	path := filepath.Join(configDir, "searches.yaml")

	m := &Manager{
		path:     path,
		searches: []models.SavedSearch{},
	}

	// Load existing searches if file exists
	if _, err := os.Stat(path); err == nil {
		if err := m.Load(); err != nil {
			return nil, fmt.Errorf("failed to load saved searches: %w", err)
		}
	}

	return m, nil
}

// Load loads saved searches from YAML file
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("failed to read saved searches file: %w", err)
	}

	if err := yaml.Unmarshal(data, &m.searches); err != nil {
		return fmt.Errorf("failed to parse saved searches: %w", err)
	}

	return nil
}

// Save saves searches to YAML file
func (m *Manager) Save() error {
	data, err := yaml.Marshal(m.searches)
	if err != nil {
		return fmt.Errorf("failed to marshal saved searches: %w", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write saved searches file: %w", err)
	}

	return nil
}

// Add adds a new saved search. Values holds the criteria as field-key to
// string-value pairs, the same encoding used in the searches file.
func (m *Manager) Add(name, description string, values map[string]string) (*models.SavedSearch, error) {
	// Validate inputs
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, fmt.Errorf("search name cannot be empty")
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("search criteria cannot be empty")
	}

	// Check for duplicate names (case-insensitive)
	for _, search := range m.searches {
		if strings.EqualFold(search.Name, name) {
			return nil, fmt.Errorf("a saved search with the name '%s' already exists (names are case-insensitive)", name)
		}
	}

	search := models.SavedSearch{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(description),
		Values:      values,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		UsageCount:  0,
		LastUsed:    time.Time{},
	}

	m.searches = append(m.searches, search)

	if err := m.Save(); err != nil {
		return nil, fmt.Errorf("failed to save search: %w", err)
	}

	return &search, nil
}

// Update updates an existing saved search
func (m *Manager) Update(id string, name, description string, values map[string]string) error {
	// Validate inputs
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("search name cannot be empty")
	}
	if len(values) == 0 {
		return fmt.Errorf("search criteria cannot be empty")
	}

	// Check for duplicate names (case-insensitive, excluding the current search)
	for _, search := range m.searches {
		if search.ID != id && strings.EqualFold(search.Name, name) {
			return fmt.Errorf("a saved search with the name '%s' already exists (names are case-insensitive)", name)
		}
	}

	for i, search := range m.searches {
		if search.ID == id {
			m.searches[i].Name = name
			m.searches[i].Description = strings.TrimSpace(description)
			m.searches[i].Values = values
			m.searches[i].UpdatedAt = time.Now()
			if err := m.Save(); err != nil {
				return fmt.Errorf("failed to save search: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("saved search with ID '%s' was not found", id)
}

// Delete deletes a saved search by ID
func (m *Manager) Delete(id string) error {
	for i, search := range m.searches {
		if search.ID == id {
			m.searches = append(m.searches[:i], m.searches[i+1:]...)
			if err := m.Save(); err != nil {
				return fmt.Errorf("failed to save searches after deletion: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("saved search with ID '%s' was not found", id)
}

// Get returns a saved search by ID
func (m *Manager) Get(id string) (*models.SavedSearch, error) {
	for _, search := range m.searches {
		if search.ID == id {
			return &search, nil
		}
	}
	return nil, fmt.Errorf("saved search with ID '%s' was not found", id)
}

// GetAll returns all saved searches
func (m *Manager) GetAll() []models.SavedSearch {
	return m.searches
}

// Search matches saved searches by name, description, or criteria values
func (m *Manager) Search(query string) []models.SavedSearch {
	if query == "" {
		return m.searches
	}

	query = strings.ToLower(query)
	var results []models.SavedSearch

	for _, search := range m.searches {
		// Search in name
		if strings.Contains(strings.ToLower(search.Name), query) {
			results = append(results, search)
			continue
		}

		// Search in description
		if strings.Contains(strings.ToLower(search.Description), query) {
			results = append(results, search)
			continue
		}

		// Search in criteria values
		for _, value := range search.Values {
			if strings.Contains(strings.ToLower(value), query) {
				results = append(results, search)
				break
			}
		}
	}

	return results
}

// RecordUsage updates usage statistics for a saved search
func (m *Manager) RecordUsage(id string) error {
	for i, search := range m.searches {
		if search.ID == id {
			m.searches[i].UsageCount++
			m.searches[i].LastUsed = time.Now()
			if err := m.Save(); err != nil {
				return fmt.Errorf("failed to save usage statistics: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("saved search with ID '%s' was not found", id)
}

// GetMostUsed returns the most frequently used saved searches
func (m *Manager) GetMostUsed(limit int) []models.SavedSearch {
	sorted := make([]models.SavedSearch, len(m.searches))
	copy(sorted, m.searches)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].UsageCount > sorted[j].UsageCount
	})

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	return sorted
}

// GetRecent returns the most recently used saved searches
func (m *Manager) GetRecent(limit int) []models.SavedSearch {
	sorted := make([]models.SavedSearch, len(m.searches))
	copy(sorted, m.searches)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LastUsed.After(sorted[j].LastUsed)
	})

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	return sorted
}

// ExportToJSON exports all saved searches to a JSON file
func (m *Manager) ExportToJSON(customPath ...string) (string, error) {
	if len(m.searches) == 0 {
		return "", fmt.Errorf("no saved searches to export")
	}

	// Determine export path
	path := filepath.Join(filepath.Dir(m.path), "searches.json")
	if len(customPath) > 0 && customPath[0] != "" {
		path = customPath[0]
	}

	if err := export.ExportToJSON(m.searches, path); err != nil {
		return "", fmt.Errorf("failed to export saved searches to JSON: %w", err)
	}

	return path, nil
}
