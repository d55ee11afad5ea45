package store

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

type storeFile struct {
	Version int               `yaml:"version"`
	Entries map[string]string `yaml:"entries"`
}

// YAMLStore keeps every entry in one YAML file and rewrites it on each Set.
type YAMLStore struct {
	path    string
	entries map[string]string
	mu      sync.RWMutex
}

func NewYAMLStore(path string) (*YAMLStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	s := &YAMLStore{
		path:    path,
		entries: make(map[string]string),
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *YAMLStore) Path() string {
	return s.path
}

func (s *YAMLStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[key]
	return v, ok, nil
}

func (s *YAMLStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.entries[key]
	s.entries[key] = value
	if err := s.saveUnlocked(); err != nil {
		if existed {
			s.entries[key] = prev
		} else {
			delete(s.entries, key)
		}
		return err
	}
	return nil
}

func (s *YAMLStore) Close() error {
	return nil
}

func (s *YAMLStore) saveUnlocked() error {
	file := storeFile{
		Version: 1,
		Entries: maps.Clone(s.entries),
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}

	return os.Rename(tmpPath, s.path)
}

// Load replaces the in-memory entries with the file contents. A missing
// file is an empty store.
func (s *YAMLStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read store file: %w", err)
	}

	var file storeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse store file %q: %w", s.path, err)
	}

	s.entries = make(map[string]string, len(file.Entries))
	maps.Copy(s.entries, file.Entries)
	return nil
}
