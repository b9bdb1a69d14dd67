package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"storefront/models"
)

// FilePersister keeps the cart as a JSON array in a single file. The array
// order is the cart's insertion order, so round-trips preserve it.
type FilePersister struct {
	path string
}

func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

func (p *FilePersister) Load() ([]models.CartEntry, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []models.CartEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (p *FilePersister) Save(entries []models.CartEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p.path), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0644)
}
