package models

import (
	"sync"
)

// TaskRepository holds tasks in insertion order for the life of the process
type TaskRepository struct {
	mu    sync.RWMutex
	tasks []Task
}

// NewTaskRepository creates an empty repository
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{
		tasks: make([]Task, 0),
	}
}

// Add appends a task and returns its index
func (r *TaskRepository) Add(task Task) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = append(r.tasks, task)
	return len(r.tasks) - 1
}

// Get returns the task at index
func (r *TaskRepository) Get(index int) (Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.tasks) {
		return Task{}, false
	}
	return r.tasks[index], true
}

// Update applies mutate to the task at index and returns the result
func (r *TaskRepository) Update(index int, mutate func(*Task)) (Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.tasks) {
		return Task{}, false
	}
	mutate(&r.tasks[index])
	return r.tasks[index], true
}

// Remove deletes the task at index, keeping the order of the rest
func (r *TaskRepository) Remove(index int) (Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.tasks) {
		return Task{}, false
	}
	removed := r.tasks[index]
	r.tasks = append(r.tasks[:index], r.tasks[index+1:]...)
	return removed, true
}

// List returns a copy of all tasks
func (r *TaskRepository) List() []Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]Task, len(r.tasks))
	copy(snapshot, r.tasks)
	return snapshot
}

// Len returns the number of stored tasks
func (r *TaskRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}
