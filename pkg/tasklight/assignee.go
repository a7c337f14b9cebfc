package tasklight

import (
	"context"
	"fmt"
	"net/http"
)

// GetTaskAssignees lists the users assigned to a task.
func (c *Client) GetTaskAssignees(ctx context.Context, taskID int64, opts ...ListOption) ([]User, error) {
	var users []User
	path := fmt.Sprintf("/tasks/%d/assignees", taskID)
	if err := c.do(ctx, http.MethodGet, path, listValues(opts), nil, &users, nil); err != nil {
		return nil, err
	}
	return users, nil
}

// AssignUserToTask assigns a single user to a task. The request runs
// through the authentication header fallback; on exhaustion the caller
// receives an *AssigneeAuthenticationError.
func (c *Client) AssignUserToTask(ctx context.Context, taskID, userID int64) (*TaskAssignment, error) {
	var assignment TaskAssignment
	path := fmt.Sprintf("/tasks/%d/assignees", taskID)
	body := addAssigneeRequest{UserID: userID}

	err := withAuthFallback(func(variant headerVariant) error {
		return c.do(ctx, http.MethodPut, path, nil, body, &assignment, variant)
	}, func(last *AuthenticationError) error {
		return newAssigneeAuthenticationError(last)
	})
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// BulkAssignUsersToTask assigns several users to a task in one request.
func (c *Client) BulkAssignUsersToTask(ctx context.Context, taskID int64, assignees BulkAssignees) (*Message, error) {
	var msg Message
	path := fmt.Sprintf("/tasks/%d/assignees/bulk", taskID)

	err := withAuthFallback(func(variant headerVariant) error {
		return c.do(ctx, http.MethodPost, path, nil, assignees, &msg, variant)
	}, func(last *AuthenticationError) error {
		return newAssigneeAuthenticationError(last)
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// RemoveUserFromTask removes an assigned user from a task.
func (c *Client) RemoveUserFromTask(ctx context.Context, taskID, userID int64) (*Message, error) {
	var msg Message
	path := fmt.Sprintf("/tasks/%d/assignees/%d", taskID, userID)

	err := withAuthFallback(func(variant headerVariant) error {
		return c.do(ctx, http.MethodDelete, path, nil, nil, &msg, variant)
	}, func(last *AuthenticationError) error {
		return newAssigneeAuthenticationError(last)
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}
