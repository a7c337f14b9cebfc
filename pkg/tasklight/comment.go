package tasklight

import (
	"context"
	"fmt"
	"net/http"
)

// GetTaskComments lists the comments on a task.
func (c *Client) GetTaskComments(ctx context.Context, taskID int64) ([]TaskComment, error) {
	var comments []TaskComment
	path := fmt.Sprintf("/tasks/%d/comments", taskID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &comments, nil); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateTaskComment adds a comment to a task.
func (c *Client) CreateTaskComment(ctx context.Context, taskID int64, comment TaskComment) (*TaskComment, error) {
	var created TaskComment
	path := fmt.Sprintf("/tasks/%d/comments", taskID)
	if err := c.do(ctx, http.MethodPut, path, nil, comment, &created, nil); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetTaskComment retrieves a single comment.
func (c *Client) GetTaskComment(ctx context.Context, taskID, commentID int64) (*TaskComment, error) {
	var comment TaskComment
	path := fmt.Sprintf("/tasks/%d/comments/%d", taskID, commentID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &comment, nil); err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateTaskComment updates the text of an existing comment.
func (c *Client) UpdateTaskComment(ctx context.Context, taskID, commentID int64, comment TaskComment) (*TaskComment, error) {
	var updated TaskComment
	path := fmt.Sprintf("/tasks/%d/comments/%d", taskID, commentID)
	if err := c.do(ctx, http.MethodPost, path, nil, comment, &updated, nil); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTaskComment deletes a comment from a task.
func (c *Client) DeleteTaskComment(ctx context.Context, taskID, commentID int64) (*Message, error) {
	var msg Message
	path := fmt.Sprintf("/tasks/%d/comments/%d", taskID, commentID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, &msg, nil); err != nil {
		return nil, err
	}
	return &msg, nil
}
