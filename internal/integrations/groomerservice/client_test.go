package groomerservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestGetGroomer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/groomers/g1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"g1","name":"Салон Пушистик","pictureUrl":"http://cdn/p.jpg","capacity":4}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	groomer, err := client.GetGroomer(context.Background(), "g1")
	require.NoError(t, err)

	assert.Equal(t, "g1", groomer.ID)
	assert.Equal(t, "Салон Пушистик", groomer.Name)
	assert.Equal(t, "http://cdn/p.jpg", groomer.PictureURL)
	assert.Equal(t, 4, groomer.Capacity)
}

func TestGetGroomer_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	_, err := client.GetGroomer(context.Background(), "missing")
	require.ErrorIs(t, err, ErrGroomerNotFound)
}

func TestGetGroomer_InvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	_, err := client.GetGroomer(context.Background(), "g1")
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/internal/groomers/g1" {
			_, _ = w.Write([]byte(`{"id":"g1","capacity":2}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	exists, err := client.Exists(context.Background(), "g1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = client.Exists(context.Background(), "g2")
	require.NoError(t, err)
	assert.False(t, exists)
}
