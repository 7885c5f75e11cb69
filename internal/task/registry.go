package task

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/pricelab/pricelab/internal/optimize"
	"github.com/pricelab/pricelab/internal/storage"
)

// Registry is a concurrency safe view on the known tasks.
// Finished tasks are additionally pushed to the backing store,
// so they survive a restart.
type Registry struct {
	mutex sync.RWMutex
	tasks map[string]Task
	store storage.Registry
}

// NewRegistry creates a new task registry on top of the given store.
func NewRegistry(store storage.Registry) *Registry {
	if store == nil {
		store = storage.NewVoidRegistry()
	}
	return &Registry{
		tasks: make(map[string]Task),
		store: store,
	}
}

// Create registers a new running task for the given product.
func (r *Registry) Create(product string) Task {
	t := Task{
		ID:      uuid.New().String(),
		Product: product,
		Status:  StatusRunning,
		Started: time.Now(),
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.tasks[t.ID] = t
	return t
}

// Complete transitions the task to done with the given result.
func (r *Registry) Complete(id string, result *optimize.Result) Task {
	return r.finish(id, StatusDone, result, nil)
}

// Fail transitions the task to failed.
func (r *Registry) Fail(id string, err error) Task {
	return r.finish(id, StatusFailed, nil, err)
}

func (r *Registry) finish(id string, status Status, result *optimize.Result, err error) Task {
	r.mutex.Lock()
	t, ok := r.tasks[id]
	if !ok {
		r.mutex.Unlock()
		log.Warn().Str("id", id).Msg("unknown task")
		return Task{}
	}
	t.Status = status
	t.Finished = time.Now()
	t.Result = result
	if err != nil {
		t.Error = err.Error()
	}
	r.tasks[id] = t
	r.mutex.Unlock()

	if serr := r.store.Put(t.ID, t); serr != nil {
		log.Error().Err(serr).Str("id", t.ID).Msg("could not persist task")
	}
	return t
}

// Get returns the task with the given id.
// Tasks unknown in memory are looked up in the backing store.
func (r *Registry) Get(id string) (Task, bool) {
	r.mutex.RLock()
	t, ok := r.tasks[id]
	r.mutex.RUnlock()
	if ok {
		return t, true
	}

	var stored Task
	if err := r.store.Get(id, &stored); err != nil {
		return Task{}, false
	}
	return stored, true
}

// List returns a snapshot of all known tasks.
func (r *Registry) List() []Task {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	tasks := make([]Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		tasks = append(tasks, t)
	}
	return tasks
}
