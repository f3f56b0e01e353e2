package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/ytget/todo/internal/model"
)

// KeyTasks is the key holding the serialized task collection
const KeyTasks = "tasks"

// Repository loads and saves the task collection through a Backend
type Repository struct {
	backend Backend
	key     string
}

// NewRepository creates a repository storing tasks under KeyTasks
func NewRepository(backend Backend) *Repository {
	return &Repository{backend: backend, key: KeyTasks}
}

// Load reads the collection. A missing key yields an empty collection;
// unreadable or corrupt data is logged and also yields an empty collection.
func (r *Repository) Load() *model.Collection {
	collection := model.NewCollection()

	blob, err := r.backend.Load(r.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("Failed to read tasks: %v", err)
		}
		return collection
	}

	if err := json.Unmarshal([]byte(blob), collection); err != nil {
		log.Printf("Failed to parse stored tasks: %v", err)
		return model.NewCollection()
	}

	log.Printf("Loaded %d tasks", collection.Len())
	return collection
}

// Save serializes the whole collection and overwrites the stored value
func (r *Repository) Save(collection *model.Collection) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	if err := r.backend.Store(r.key, string(data)); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}
