package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"tweetdigest/internal/config"
	"tweetdigest/internal/model"
)

// FileStore keeps artifacts as files under a single directory: two JSON
// documents for the tweet sets and a markdown file for the digest.
type FileStore struct {
	dir         string
	fetchedFile string
	itemsFile   string
	digestFile  string
}

func NewFileStore(cfg config.StorageConfig) *FileStore {
	return &FileStore{
		dir:         cfg.Dir,
		fetchedFile: cfg.FetchedFile,
		itemsFile:   cfg.ItemsFile,
		digestFile:  cfg.DigestFile,
	}
}

func (s *FileStore) SaveFetched(_ context.Context, tweets []model.Tweet) error {
	return s.writeJSON(s.fetchedFile, tweets)
}

func (s *FileStore) LoadFetched(_ context.Context) ([]model.Tweet, bool, error) {
	return s.readJSON(s.fetchedFile)
}

func (s *FileStore) SaveItems(_ context.Context, tweets []model.Tweet) error {
	return s.writeJSON(s.itemsFile, tweets)
}

func (s *FileStore) LoadItems(_ context.Context) ([]model.Tweet, bool, error) {
	return s.readJSON(s.itemsFile)
}

func (s *FileStore) SaveDigest(_ context.Context, text string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, s.digestFile), []byte(text), 0o644)
}

func (s *FileStore) LoadDigest(_ context.Context) (string, bool, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, s.digestFile))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

func (s *FileStore) writeJSON(name string, tweets []model.Tweet) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	if tweets == nil {
		tweets = []model.Tweet{}
	}
	b, err := json.MarshalIndent(tweets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), b, 0o644)
}

func (s *FileStore) readJSON(name string) ([]model.Tweet, bool, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var tweets []model.Tweet
	if err := json.Unmarshal(b, &tweets); err != nil {
		return nil, false, err
	}
	return tweets, true, nil
}
