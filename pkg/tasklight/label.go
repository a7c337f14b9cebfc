package tasklight

import (
	"context"
	"fmt"
	"net/http"
)

// GetTaskLabels lists the labels attached to a task.
func (c *Client) GetTaskLabels(ctx context.Context, taskID int64, opts ...ListOption) ([]Label, error) {
	var labels []Label
	path := fmt.Sprintf("/tasks/%d/labels", taskID)
	if err := c.do(ctx, http.MethodGet, path, listValues(opts), nil, &labels, nil); err != nil {
		return nil, err
	}
	return labels, nil
}

// AddLabelToTask attaches a single label to a task. The request runs
// through the authentication header fallback; on exhaustion the caller
// receives a *LabelAuthenticationError.
func (c *Client) AddLabelToTask(ctx context.Context, taskID, labelID int64) (*TaskLabel, error) {
	var taskLabel TaskLabel
	path := fmt.Sprintf("/tasks/%d/labels", taskID)
	body := addLabelRequest{LabelID: labelID}

	err := withAuthFallback(func(variant headerVariant) error {
		return c.do(ctx, http.MethodPut, path, nil, body, &taskLabel, variant)
	}, func(last *AuthenticationError) error {
		return newLabelAuthenticationError(last)
	})
	if err != nil {
		return nil, err
	}
	return &taskLabel, nil
}

// RemoveLabelFromTask detaches a label from a task.
func (c *Client) RemoveLabelFromTask(ctx context.Context, taskID, labelID int64) (*Message, error) {
	var msg Message
	path := fmt.Sprintf("/tasks/%d/labels/%d", taskID, labelID)

	err := withAuthFallback(func(variant headerVariant) error {
		return c.do(ctx, http.MethodDelete, path, nil, nil, &msg, variant)
	}, func(last *AuthenticationError) error {
		return newLabelAuthenticationError(last)
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// UpdateTaskLabels replaces a task's label set in one request.
func (c *Client) UpdateTaskLabels(ctx context.Context, taskID int64, labels LabelTaskBulk) (*LabelTaskBulk, error) {
	var updated LabelTaskBulk
	path := fmt.Sprintf("/tasks/%d/labels/bulk", taskID)

	err := withAuthFallback(func(variant headerVariant) error {
		return c.do(ctx, http.MethodPost, path, nil, labels, &updated, variant)
	}, func(last *AuthenticationError) error {
		return newLabelAuthenticationError(last)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
