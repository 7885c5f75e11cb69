package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pricelab/pricelab/internal/task"
)

// Optimize returns the route accepting new optimization requests.
// The request is queued on the pool and a tracking task is returned,
// the caller polls the status route for completion.
func Optimize(pool *task.Pool, debug bool) Route {
	return Route{
		Action: Api,
		Path:   "optimize",
		Method: POST,
		Exec: func(r *http.Request) ([]byte, int, error) {
			var request task.Request
			if err := JsonRead(r, debug, &request); err != nil {
				return []byte(err.Error()), http.StatusBadRequest, nil
			}
			if request.Product == "" {
				return []byte("missing product"), http.StatusBadRequest, nil
			}

			t, err := pool.Submit(request)
			if err != nil {
				return []byte(err.Error()), http.StatusServiceUnavailable, nil
			}

			b, err := json.Marshal(t)
			if err != nil {
				return nil, 0, fmt.Errorf("could not marshal task: %w", err)
			}
			return b, http.StatusAccepted, nil
		},
	}
}

// TaskStatus returns the route exposing the state of a single task.
func TaskStatus(registry *task.Registry) Route {
	return Route{
		Action: Api,
		Path:   "status",
		Method: GET,
		Exec: func(r *http.Request) ([]byte, int, error) {
			id := r.URL.Query().Get("id")
			if id == "" {
				return []byte("missing task id"), http.StatusBadRequest, nil
			}

			t, ok := registry.Get(id)
			if !ok {
				return []byte(fmt.Sprintf("task not found: %s", id)), http.StatusNotFound, nil
			}

			b, err := json.Marshal(t)
			if err != nil {
				return nil, 0, fmt.Errorf("could not marshal task: %w", err)
			}
			return b, http.StatusOK, nil
		},
	}
}

// Tasks returns the route listing all known tasks.
func Tasks(registry *task.Registry) Route {
	return Route{
		Action: Api,
		Path:   "tasks",
		Method: GET,
		Exec: func(r *http.Request) ([]byte, int, error) {
			b, err := json.Marshal(registry.List())
			if err != nil {
				return nil, 0, fmt.Errorf("could not marshal tasks: %w", err)
			}
			return b, http.StatusOK, nil
		},
	}
}
