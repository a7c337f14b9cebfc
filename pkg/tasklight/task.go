package tasklight

import (
	"context"
	"fmt"
	"net/http"
)

// GetAllTasks lists every task the authenticated user has access to.
func (c *Client) GetAllTasks(ctx context.Context, opts ...ListOption) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/tasks", listValues(opts), nil, &tasks, nil); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetProjectTasks lists the tasks in a single project.
func (c *Client) GetProjectTasks(ctx context.Context, projectID int64, opts ...ListOption) ([]Task, error) {
	var tasks []Task
	path := fmt.Sprintf("/projects/%d/tasks", projectID)
	if err := c.do(ctx, http.MethodGet, path, listValues(opts), nil, &tasks, nil); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task in the given project.
func (c *Client) CreateTask(ctx context.Context, projectID int64, task Task) (*Task, error) {
	var created Task
	path := fmt.Sprintf("/projects/%d/tasks", projectID)
	if err := c.do(ctx, http.MethodPut, path, nil, task, &created, nil); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetTask retrieves a task by ID.
func (c *Client) GetTask(ctx context.Context, taskID int64) (*Task, error) {
	var task Task
	path := fmt.Sprintf("/tasks/%d", taskID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &task, nil); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask updates a task. The server replaces the stored task with the
// given one, so callers usually start from a GetTask result.
func (c *Client) UpdateTask(ctx context.Context, taskID int64, task Task) (*Task, error) {
	var updated Task
	path := fmt.Sprintf("/tasks/%d", taskID)
	if err := c.do(ctx, http.MethodPost, path, nil, task, &updated, nil); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTask deletes a task by ID.
func (c *Client) DeleteTask(ctx context.Context, taskID int64) (*Message, error) {
	var msg Message
	path := fmt.Sprintf("/tasks/%d", taskID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, &msg, nil); err != nil {
		return nil, err
	}
	return &msg, nil
}

// MarkTaskDone marks a task as done.
func (c *Client) MarkTaskDone(ctx context.Context, taskID int64) (*Task, error) {
	return c.toggleDone(ctx, taskID, "done")
}

// MarkTaskUndone reopens a done task.
func (c *Client) MarkTaskUndone(ctx context.Context, taskID int64) (*Task, error) {
	return c.toggleDone(ctx, taskID, "undone")
}

// toggleDone flips the done state of a task.
func (c *Client) toggleDone(ctx context.Context, taskID int64, state string) (*Task, error) {
	var task Task
	path := fmt.Sprintf("/tasks/%d/%s", taskID, state)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &task, nil); err != nil {
		return nil, err
	}
	return &task, nil
}

// BulkUpdateTasks sets one field to one value across a set of tasks,
// possibly spanning projects.
func (c *Client) BulkUpdateTasks(ctx context.Context, op TaskBulkOperation) (*Message, error) {
	var msg Message
	if err := c.do(ctx, http.MethodPost, "/tasks/bulk", nil, op, &msg, nil); err != nil {
		return nil, err
	}
	return &msg, nil
}
