package tasks

import (
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/todo/internal/model"
	"github.com/ytget/todo/internal/storage"
)

// Service handles task operations
type Service struct {
	repo       *storage.Repository
	tasks      *model.Collection
	tasksMutex sync.RWMutex
	newID      func() (string, error)
	onUpdate   func() // callback for UI updates
}

// NewService creates a task service and loads the stored collection
func NewService(repo *storage.Repository) *Service {
	return &Service{
		repo:  repo,
		tasks: repo.Load(),
		newID: generateTaskID,
	}
}

// SetUpdateCallback sets the callback invoked after every change
func (s *Service) SetUpdateCallback(callback func()) {
	s.onUpdate = callback
}

// AddTask inserts a new task and persists the collection. Text is stored
// as given; callers decide what counts as empty.
func (s *Service) AddTask(text string) (*model.Task, error) {
	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate task id: %w", err)
	}

	task := &model.Task{ID: id, Text: text}

	s.tasksMutex.Lock()
	s.tasks.Put(task)
	if err := s.repo.Save(s.tasks); err != nil {
		s.tasks.Remove(id)
		s.tasksMutex.Unlock()
		return nil, err
	}
	s.tasksMutex.Unlock()

	log.Printf("Task added: id=%s", id)
	s.notifyUpdate()

	copied := *task
	return &copied, nil
}

// DeleteTask removes a task and persists the collection. Deleting an
// unknown id changes nothing and writes nothing.
func (s *Service) DeleteTask(id string) error {
	s.tasksMutex.Lock()
	task, exists := s.tasks.Get(id)
	if !exists {
		s.tasksMutex.Unlock()
		log.Printf("Delete ignored, task %s not found", id)
		return nil
	}

	s.tasks.Remove(id)
	if err := s.repo.Save(s.tasks); err != nil {
		s.tasks.Put(task)
		s.tasksMutex.Unlock()
		return err
	}
	s.tasksMutex.Unlock()

	log.Printf("Task deleted: id=%s", id)
	s.notifyUpdate()
	return nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.Task, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	task, exists := s.tasks.Get(id)
	if !exists {
		return nil, false
	}
	copied := *task
	return &copied, true
}

// Tasks returns all tasks in display order
func (s *Service) Tasks() []*model.Task {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return s.tasks.Tasks()
}

// Count returns the number of tasks
func (s *Service) Count() int {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	return s.tasks.Len()
}

// notifyUpdate notifies listeners about a change
func (s *Service) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate()
	}
}

// generateTaskID returns a time-ordered UUIDv7 so ids never collide within
// one clock tick and still sort by creation time.
func generateTaskID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
