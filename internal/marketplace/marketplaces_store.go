package marketplace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	plugerrors "github.com/plugin-stack/plugman/internal/errors"
)

const MarketplacesFileName = "marketplaces.json"

// MarketplacesStore manages ~/.plugman/marketplaces.json
type MarketplacesStore struct {
	path string
}

// NewMarketplacesStore creates a store at the default location (~/.plugman/marketplaces.json)
func NewMarketplacesStore() (*MarketplacesStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home dir: %w", err)
	}

	return &MarketplacesStore{
		path: filepath.Join(home, ".plugman", MarketplacesFileName),
	}, nil
}

// NewMarketplacesStoreWithPath creates a store at a custom path (for testing)
func NewMarketplacesStoreWithPath(path string) *MarketplacesStore {
	return &MarketplacesStore{path: path}
}

// Path returns the store's file path
func (s *MarketplacesStore) Path() string {
	return s.path
}

// Load reads the marketplaces file, returning empty struct if not exists
func (s *MarketplacesStore) Load() (*MarketplacesFile, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &MarketplacesFile{Marketplaces: make(map[string]RegisteredMarketplace)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading marketplaces file: %w", err)
	}

	var f MarketplacesFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing marketplaces file: %w", err)
	}

	if f.Marketplaces == nil {
		f.Marketplaces = make(map[string]RegisteredMarketplace)
	}

	return &f, nil
}

// Save writes the marketplaces file
func (s *MarketplacesStore) Save(f *MarketplacesFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling marketplaces: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing marketplaces file: %w", err)
	}

	return nil
}

// Add registers a new marketplace
func (s *MarketplacesStore) Add(name, source, version string) error {
	f, err := s.Load()
	if err != nil {
		return err
	}

	if _, exists := f.Marketplaces[name]; exists {
		return plugerrors.MarketplaceDuplicate(name)
	}

	now := time.Now()
	f.Marketplaces[name] = RegisteredMarketplace{
		Source:    source,
		Version:   version,
		AddedAt:   now,
		UpdatedAt: now,
	}

	return s.Save(f)
}

// Remove unregisters a marketplace
func (s *MarketplacesStore) Remove(name string) error {
	f, err := s.Load()
	if err != nil {
		return err
	}

	if _, exists := f.Marketplaces[name]; !exists {
		return plugerrors.MarketplaceNotFound(name)
	}

	delete(f.Marketplaces, name)
	return s.Save(f)
}

// Get returns a registered marketplace
func (s *MarketplacesStore) Get(name string) (*RegisteredMarketplace, error) {
	f, err := s.Load()
	if err != nil {
		return nil, err
	}

	mkt, exists := f.Marketplaces[name]
	if !exists {
		return nil, plugerrors.MarketplaceNotFound(name)
	}

	return &mkt, nil
}

// Update marks a marketplace as updated with new version
func (s *MarketplacesStore) Update(name, version string) error {
	f, err := s.Load()
	if err != nil {
		return err
	}

	mkt, exists := f.Marketplaces[name]
	if !exists {
		return plugerrors.MarketplaceNotFound(name)
	}

	mkt.Version = version
	mkt.UpdatedAt = time.Now()
	f.Marketplaces[name] = mkt

	return s.Save(f)
}

// List returns all registered marketplaces
func (s *MarketplacesStore) List() (map[string]RegisteredMarketplace, error) {
	f, err := s.Load()
	if err != nil {
		return nil, err
	}
	return f.Marketplaces, nil
}
