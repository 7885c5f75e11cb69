package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricelab/pricelab/client"
	"github.com/pricelab/pricelab/client/local"
	"github.com/pricelab/pricelab/internal/task"
)

func newTestServer(t *testing.T) (*httptest.Server, *task.Pool) {
	t.Helper()

	source := local.NewMockSource().
		Add("laptop",
			client.Sample{Price: 10, Rating: 4},
			client.Sample{Price: 20, Rating: 4},
			client.Sample{Price: 30, Rating: 4},
			client.Sample{Price: 40, Rating: 4},
			client.Sample{Price: 50, Rating: 4},
		)

	pool := task.NewPool(1, 10, source, task.NewRegistry(nil))
	pool.Start(t.Context())
	t.Cleanup(pool.Stop)

	s := NewServer("test", 0).
		Add(Live()).
		Add(Optimize(pool, false)).
		Add(TaskStatus(pool.Registry())).
		Add(Tasks(pool.Registry()))

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	return ts, pool
}

func TestServer_Optimize(t *testing.T) {

	ts, _ := newTestServer(t)

	body, err := json.Marshal(task.Request{Product: "laptop", Cost: 5, MaxDemand: 100})
	require.NoError(t, err)

	response, err := http.Post(fmt.Sprintf("%s/api/optimize", ts.URL), "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer response.Body.Close()
	require.Equal(t, http.StatusAccepted, response.StatusCode)

	var submitted task.Task
	require.NoError(t, json.NewDecoder(response.Body).Decode(&submitted))
	assert.NotEmpty(t, submitted.ID)
	assert.Equal(t, task.StatusRunning, submitted.Status)

	// poll the status endpoint until the background worker finishes
	var finished task.Task
	require.Eventually(t, func() bool {
		r, err := http.Get(fmt.Sprintf("%s/api/status?id=%s", ts.URL, submitted.ID))
		if err != nil {
			return false
		}
		defer r.Body.Close()
		if r.StatusCode != http.StatusOK {
			return false
		}
		if err := json.NewDecoder(r.Body).Decode(&finished); err != nil {
			return false
		}
		return finished.Status != task.StatusRunning
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, task.StatusDone, finished.Status)
	require.NotNil(t, finished.Result)
	assert.InDelta(t, 50, finished.Result.OptimumPrice, 1e-3)
	assert.InDelta(t, 100, finished.Result.EstimatedDemand, 1e-6)
}

func TestServer_Optimize_BadRequest(t *testing.T) {

	ts, _ := newTestServer(t)

	type test struct {
		body string
		code int
	}

	tests := map[string]test{
		"no-product": {
			body: `{"cost":5}`,
			code: http.StatusBadRequest,
		},
		"malformed": {
			body: `{"product":`,
			code: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			response, err := http.Post(fmt.Sprintf("%s/api/optimize", ts.URL), "application/json", bytes.NewReader([]byte(tt.body)))
			require.NoError(t, err)
			defer response.Body.Close()
			assert.Equal(t, tt.code, response.StatusCode)
		})
	}

}

func TestServer_Status_NotFound(t *testing.T) {

	ts, _ := newTestServer(t)

	response, err := http.Get(fmt.Sprintf("%s/api/status?id=unknown", ts.URL))
	require.NoError(t, err)
	defer response.Body.Close()
	assert.Equal(t, http.StatusNotFound, response.StatusCode)

	response, err = http.Get(fmt.Sprintf("%s/api/status", ts.URL))
	require.NoError(t, err)
	defer response.Body.Close()
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestServer_Tasks(t *testing.T) {

	ts, pool := newTestServer(t)

	_, err := pool.Submit(task.Request{Product: "laptop"})
	require.NoError(t, err)

	response, err := http.Get(fmt.Sprintf("%s/api/tasks", ts.URL))
	require.NoError(t, err)
	defer response.Body.Close()
	require.Equal(t, http.StatusOK, response.StatusCode)

	var tasks []task.Task
	require.NoError(t, json.NewDecoder(response.Body).Decode(&tasks))
	assert.Len(t, tasks, 1)
}

func TestServer_MethodNotImplemented(t *testing.T) {

	ts, _ := newTestServer(t)

	response, err := http.Get(fmt.Sprintf("%s/api/optimize", ts.URL))
	require.NoError(t, err)
	defer response.Body.Close()
	assert.Equal(t, http.StatusNotImplemented, response.StatusCode)
}

func TestServer_Live(t *testing.T) {

	ts, _ := newTestServer(t)

	response, err := http.Get(fmt.Sprintf("%s/data", ts.URL))
	require.NoError(t, err)
	defer response.Body.Close()
	b, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Empty(t, b)
}
