package tasks

import (
	"github.com/ytget/todo/internal/model"
)

// Manager defines the interface for the task service.
type Manager interface {
	SetUpdateCallback(func())
	AddTask(text string) (*model.Task, error)
	DeleteTask(id string) error
	GetTask(id string) (*model.Task, bool)
	Tasks() []*model.Task
	Count() int
}
