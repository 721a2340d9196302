package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todostate/pkg/recordapi"
	"todostate/pkg/recordapi/httpapi"
)

func TestListUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, httpapi.UsersPath, r.URL.Path)
		w.Write([]byte(`[{"id":1,"username":"Bret","phone":"1-770-736-8031"}]`))
	}))
	defer srv.Close()

	c := httpapi.New(srv.URL, nil)
	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, recordapi.User{ID: 1, Username: "Bret", Phone: "1-770-736-8031"}, users[0])
}

func TestListTasks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, httpapi.TasksPath, r.URL.Path)
		w.Write([]byte(`[{"id":2,"userId":1,"title":"wash car","completed":true}]`))
	}))
	defer srv.Close()

	c := httpapi.New(srv.URL, nil)
	tasks, err := c.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, recordapi.Task{ID: 2, UserID: 1, Title: "wash car", Completed: true}, tasks[0])
}

func TestCreateTaskPostsWireFormat(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, httpapi.TasksPath, r.URL.Path)
		require.Equal(t, "application/json; charset=UTF-8", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"id":201,"userId":3,"title":"buy milk","completed":false}`))
	}))
	defer srv.Close()

	c := httpapi.New(srv.URL, nil)
	created, err := c.CreateTask(context.Background(), 3, "buy milk")
	require.NoError(t, err)

	assert.Equal(t, 201, created.ID)
	assert.Equal(t, float64(3), body["userId"])
	assert.Equal(t, "buy milk", body["title"])
	assert.Equal(t, false, body["completed"])
}

func TestNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := httpapi.New(srv.URL, nil)

	_, err := c.ListTasks(context.Background())
	assert.Error(t, err)

	_, err = c.CreateTask(context.Background(), 1, "t")
	assert.Error(t, err)
}

func TestMalformedBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := httpapi.New(srv.URL, nil)
	_, err := c.ListUsers(context.Background())
	assert.Error(t, err)
}

func TestTrailingSlashBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, httpapi.UsersPath, r.URL.Path)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := httpapi.New(srv.URL+"/", nil)
	_, err := c.ListUsers(context.Background())
	assert.NoError(t, err)
}
