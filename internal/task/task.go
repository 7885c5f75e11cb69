// Package task tracks optimization requests through a bounded worker pool.
package task

import (
	"time"

	"github.com/pricelab/pricelab/internal/optimize"
)

// Status is the lifecycle state of a task.
type Status string

const (
	// StatusRunning marks a task that is queued or being worked on.
	StatusRunning Status = "running"
	// StatusDone marks a task that finished with a result.
	StatusDone Status = "done"
	// StatusFailed marks a task that finished without a result.
	StatusFailed Status = "failed"
)

// Task is the status record of one optimization request.
type Task struct {
	ID       string           `json:"id"`
	Product  string           `json:"product"`
	Status   Status           `json:"status"`
	Started  time.Time        `json:"started"`
	Finished time.Time        `json:"finished,omitempty"`
	Error    string           `json:"error,omitempty"`
	Result   *optimize.Result `json:"result,omitempty"`
}

// Request describes one optimization job.
type Request struct {
	Product   string  `json:"product"`
	Cost      float64 `json:"cost"`
	MaxDemand float64 `json:"max_demand"`
}
