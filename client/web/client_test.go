package web

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Samples(t *testing.T) {

	pages := map[string]string{
		"1": `{"products":[{"price":10,"rating":4},{"price":20,"rating":0}],"has_more":true}`,
		"2": `{"products":[{"price":30,"rating":2},{"price":0,"rating":5}],"has_more":false}`,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "laptop", r.URL.Query().Get("q"))
		page, ok := pages[r.URL.Query().Get("pg")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, page)
	}))
	defer server.Close()

	c := New(server.URL, 0, 0, 10)

	samples, err := c.Samples(context.Background(), "laptop")
	require.NoError(t, err)

	// the zero priced listing is dropped, the unknown rating is imputed
	require.Len(t, samples, 3)
	assert.Equal(t, []float64{10, 20, 30}, samples.Prices())
	assert.Equal(t, []float64{4, 3, 2}, samples.Ratings())
}

func TestClient_Samples_PageCap(t *testing.T) {

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, `{"products":[{"price":10,"rating":4}],"has_more":true}`)
	}))
	defer server.Close()

	c := New(server.URL, 0, 0, 3)

	samples, err := c.Samples(context.Background(), "laptop")
	require.NoError(t, err)

	assert.Equal(t, 3, requests)
	assert.Len(t, samples, 3)
}

func TestClient_Samples_Error(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL, 0, 0, 2)

	_, err := c.Samples(context.Background(), "laptop")
	assert.Error(t, err)
}
