package tasklight

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetAllTasksQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tasks" {
			t.Errorf("expected path /tasks, got %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}

		query := r.URL.Query()
		want := map[string]string{
			"page":     "1",
			"per_page": "10",
			"s":        "x",
			"sort_by":  "title",
			"order_by": "asc",
			"filter":   "done equals false",
		}
		for key, value := range want {
			if got := query.Get(key); got != value {
				t.Errorf("expected query %s=%q, got %q", key, value, got)
			}
		}
		if len(query) != len(want) {
			t.Errorf("expected %d query params, got %d: %v", len(want), len(query), query)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]Task{{ID: 1, Title: "x marks the spot"}})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	tasks, err := client.GetAllTasks(context.Background(),
		WithPage(1),
		WithPerPage(10),
		WithSearch("x"),
		WithSortBy("title"),
		WithOrderBy(OrderAsc),
		WithFilter("done equals false"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != 1 {
		t.Errorf("expected one task with ID 1, got %+v", tasks)
	}
}

func TestGetAllTasksNoOptionsSendsNoParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query string, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]Task{})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	if _, err := client.GetAllTasks(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateTask(t *testing.T) {
	now := time.Now()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/projects/7/tasks" {
			t.Errorf("expected path /projects/7/tasks, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected Content-Type application/json, got %s", r.Header.Get("Content-Type"))
		}

		var req Task
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if req.Title != "Test Task" {
			t.Errorf("expected title 'Test Task', got %s", req.Title)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Task{
			ID:        123,
			Title:     req.Title,
			ProjectID: 7,
			Created:   now,
			Updated:   now,
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	task, err := client.CreateTask(context.Background(), 7, Task{Title: "Test Task"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if task.ID != 123 {
		t.Errorf("expected task ID 123, got %d", task.ID)
	}
	if task.ProjectID != 7 {
		t.Errorf("expected project ID 7, got %d", task.ProjectID)
	}
}

func TestUpdateTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tasks/42" {
			t.Errorf("expected path /tasks/42, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Task{ID: 42, Title: "Renamed"})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	task, err := client.UpdateTask(context.Background(), 42, Task{ID: 42, Title: "Renamed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Title != "Renamed" {
		t.Errorf("expected title 'Renamed', got %s", task.Title)
	}
}

func TestMarkTaskDoneAndUndone(t *testing.T) {
	tests := []struct {
		name     string
		wantPath string
		call     func(c *Client) (*Task, error)
	}{
		{
			name:     "done",
			wantPath: "/tasks/42/done",
			call: func(c *Client) (*Task, error) {
				return c.MarkTaskDone(context.Background(), 42)
			},
		},
		{
			name:     "undone",
			wantPath: "/tasks/42/undone",
			call: func(c *Client) (*Task, error) {
				return c.MarkTaskUndone(context.Background(), 42)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != tt.wantPath {
					t.Errorf("expected path %s, got %s", tt.wantPath, r.URL.Path)
				}
				if r.Method != http.MethodPost {
					t.Errorf("expected POST, got %s", r.Method)
				}
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(Task{ID: 42, Done: tt.name == "done"})
			}))
			defer server.Close()

			client := newTestClient(t, server)
			if _, err := tt.call(client); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestDeleteTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tasks/42" {
			t.Errorf("expected path /tasks/42, got %s", r.URL.Path)
		}
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Message{Message: "Successfully deleted."})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	msg, err := client.DeleteTask(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Message != "Successfully deleted." {
		t.Errorf("unexpected message: %s", msg.Message)
	}
}

func TestBulkUpdateTasks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tasks/bulk" {
			t.Errorf("expected path /tasks/bulk, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}

		var op TaskBulkOperation
		if err := json.NewDecoder(r.Body).Decode(&op); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if len(op.TaskIDs) != 3 || op.Field != "priority" {
			t.Errorf("unexpected bulk operation: %+v", op)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Message{Message: "Tasks updated"})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.BulkUpdateTasks(context.Background(), TaskBulkOperation{
		TaskIDs: []int64{1, 2, 3},
		Field:   "priority",
		Value:   4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetTaskServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(errorResponse{Code: 500, Message: "database exploded"})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.GetTask(context.Background(), 42)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "database exploded" {
		t.Errorf("expected server message, got %q", apiErr.Message)
	}
	if apiErr.Method != http.MethodGet || apiErr.Endpoint != "/tasks/42" {
		t.Errorf("expected GET /tasks/42 in error, got %s %s", apiErr.Method, apiErr.Endpoint)
	}
	if IsAuthenticationError(err) {
		t.Error("a 500 must not classify as an authentication error")
	}
}

func TestGetTaskTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client, err := NewClient(server.URL, WithTimeout(time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.GetTask(context.Background(), 42)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %T: %v", err, err)
	}
	if StatusCode(err) != 0 {
		t.Errorf("expected status 0 for transport error, got %d", StatusCode(err))
	}
}
