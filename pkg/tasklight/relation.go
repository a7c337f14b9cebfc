package tasklight

import (
	"context"
	"fmt"
	"net/http"
)

// CreateTaskRelation relates a task to another task. Creating a relation
// that already exists is not an error on the server side.
func (c *Client) CreateTaskRelation(ctx context.Context, taskID int64, relation TaskRelation) (*TaskRelation, error) {
	var created TaskRelation
	path := fmt.Sprintf("/tasks/%d/relations", taskID)
	if err := c.do(ctx, http.MethodPut, path, nil, relation, &created, nil); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteTaskRelation removes the relation of the given kind between a task
// and another task.
func (c *Client) DeleteTaskRelation(ctx context.Context, taskID int64, kind RelationKind, otherTaskID int64) (*Message, error) {
	var msg Message
	path := fmt.Sprintf("/tasks/%d/relations/%s/%d", taskID, kind, otherTaskID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, &msg, nil); err != nil {
		return nil, err
	}
	return &msg, nil
}
