package model

import (
	"encoding/json"
	"slices"
)

// Collection maps task ids to tasks. The map key is the task's identity;
// a stored record whose id field disagrees with its key is re-keyed on load.
type Collection struct {
	tasks map[string]*Task
}

// NewCollection creates an empty collection
func NewCollection() *Collection {
	return &Collection{tasks: make(map[string]*Task)}
}

// Put inserts or replaces a task
func (c *Collection) Put(task *Task) {
	if task == nil {
		return
	}
	c.tasks[task.ID] = task
}

// Remove deletes the task with the given id. It reports whether the task existed.
func (c *Collection) Remove(id string) bool {
	if _, ok := c.tasks[id]; !ok {
		return false
	}
	delete(c.tasks, id)
	return true
}

// Get returns a task by id
func (c *Collection) Get(id string) (*Task, bool) {
	task, ok := c.tasks[id]
	return task, ok
}

// Len returns the number of tasks
func (c *Collection) Len() int {
	return len(c.tasks)
}

// Tasks returns copies of all tasks in display order
func (c *Collection) Tasks() []*Task {
	list := make([]*Task, 0, len(c.tasks))
	for _, task := range c.tasks {
		copied := *task
		list = append(list, &copied)
	}
	slices.SortFunc(list, func(a, b *Task) int {
		return CompareIDs(a.ID, b.ID)
	})
	return list
}

// MarshalJSON encodes the collection as an object keyed by task id
func (c *Collection) MarshalJSON() ([]byte, error) {
	if c.tasks == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.tasks)
}

// UnmarshalJSON replaces the collection contents. A JSON null decodes to an
// empty collection.
func (c *Collection) UnmarshalJSON(data []byte) error {
	var decoded map[string]*Task
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	c.tasks = make(map[string]*Task, len(decoded))
	for key, task := range decoded {
		if task == nil {
			continue
		}
		task.ID = key
		c.tasks[key] = task
	}
	return nil
}
