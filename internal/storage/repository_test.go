package storage

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/todo/internal/model"
)

// memoryBackend is an in-memory Backend with injectable failures
type memoryBackend struct {
	values   map[string]string
	loadErr  error
	storeErr error
	writes   int
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{values: make(map[string]string)}
}

func (m *memoryBackend) Load(key string) (string, error) {
	if m.loadErr != nil {
		return "", m.loadErr
	}
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *memoryBackend) Store(key, value string) error {
	if m.storeErr != nil {
		return m.storeErr
	}
	m.writes++
	m.values[key] = value
	return nil
}

func TestRepository_LoadMissing(t *testing.T) {
	repo := NewRepository(newMemoryBackend())

	collection := repo.Load()
	if collection == nil || collection.Len() != 0 {
		t.Errorf("Expected empty collection for missing key, got %v", collection)
	}
}

func TestRepository_LoadCorrupt(t *testing.T) {
	tests := []string{
		"not json",
		"{",
		`["a","b"]`,
		`{"a":"not a task"}`,
	}

	for _, blob := range tests {
		backend := newMemoryBackend()
		backend.values[KeyTasks] = blob
		repo := NewRepository(backend)

		collection := repo.Load()
		if collection == nil || collection.Len() != 0 {
			t.Errorf("Load() with blob %q should yield an empty collection, got %d tasks", blob, collection.Len())
		}
	}
}

func TestRepository_LoadBackendError(t *testing.T) {
	backend := newMemoryBackend()
	backend.loadErr = errors.New("disk on fire")
	repo := NewRepository(backend)

	if collection := repo.Load(); collection.Len() != 0 {
		t.Errorf("Expected empty collection on backend error, got %d tasks", collection.Len())
	}
}

func TestRepository_SaveLoadRoundTrip(t *testing.T) {
	backend := newMemoryBackend()
	repo := NewRepository(backend)

	collection := model.NewCollection()
	collection.Put(&model.Task{ID: "0190f1c2-aaaa", Text: "Buy milk"})
	collection.Put(&model.Task{ID: "0190f1c2-bbbb", Text: "Call mom"})
	collection.Put(&model.Task{ID: "0190f1c2-cccc", Text: "Pay rent"})
	collection.Remove("0190f1c2-bbbb")

	if err := repo.Save(collection); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded := repo.Load()
	if !reflect.DeepEqual(loaded.Tasks(), collection.Tasks()) {
		t.Errorf("Round trip mismatch: got %v, expected %v", loaded.Tasks(), collection.Tasks())
	}

	// load -> save -> load is stable
	if err := repo.Save(loaded); err != nil {
		t.Fatalf("Second save returned error: %v", err)
	}
	first := backend.values[KeyTasks]
	if err := repo.Save(repo.Load()); err != nil {
		t.Fatalf("Third save returned error: %v", err)
	}
	if backend.values[KeyTasks] != first {
		t.Errorf("Blob changed across round trips:\n%s\n%s", first, backend.values[KeyTasks])
	}
}

func TestRepository_SaveError(t *testing.T) {
	backend := newMemoryBackend()
	backend.storeErr = errors.New("quota exceeded")
	repo := NewRepository(backend)

	err := repo.Save(model.NewCollection())
	if err == nil {
		t.Fatal("Expected error from Save, got nil")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("Expected wrapped backend error, got %v", err)
	}
}

func TestRepository_PreferencesBackend(t *testing.T) {
	app := test.NewApp()
	repo := NewRepository(NewPreferencesBackend(app))

	collection := model.NewCollection()
	collection.Put(&model.Task{ID: "x", Text: "Buy milk"})
	if err := repo.Save(collection); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	stored := app.Preferences().String(KeyTasks)
	if stored != `{"x":{"id":"x","t":"Buy milk"}}` {
		t.Errorf("Unexpected preferences value: %s", stored)
	}

	if got := repo.Load().Len(); got != 1 {
		t.Errorf("Expected 1 task after reload, got %d", got)
	}
}

func TestRepository_LoadLegacyPreferences(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString(KeyTasks, `{"1589112345678":{"id":1589112345678,"t":"Buy milk"}}`)
	repo := NewRepository(NewPreferencesBackend(app))

	tasks := repo.Load().Tasks()
	if len(tasks) != 1 || tasks[0].ID != "1589112345678" || tasks[0].Text != "Buy milk" {
		t.Errorf("Unexpected legacy tasks: %+v", tasks)
	}
}
