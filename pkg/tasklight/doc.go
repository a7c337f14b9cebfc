// Package tasklight provides a Go client for the Tasklight task
// management server API.
//
// # Getting Started
//
// Create a client with the server's API base URL and a token:
//
//	client, err := tasklight.NewClient("https://tasks.example.com/api/v1",
//	    tasklight.WithToken(os.Getenv("TASKLIGHT_TOKEN")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Tasks
//
// List tasks with pagination, search, sorting and filtering:
//
//	tasks, err := client.GetAllTasks(ctx,
//	    tasklight.WithPage(1),
//	    tasklight.WithPerPage(10),
//	    tasklight.WithFilter("done equals false"),
//	)
//
// Create, update and toggle tasks:
//
//	task, err := client.CreateTask(ctx, projectID, tasklight.Task{Title: "Ship it"})
//	task, err = client.MarkTaskDone(ctx, task.ID)
//
// Assignees, labels, comments, relations and attachments each have their
// own method family; see the Client methods for the full surface.
//
// # Error Handling
//
// Failures are typed. A request that never reached the server returns a
// *TransportError; a non-2xx response returns an *APIError, specialized to
// *AuthenticationError for 401 and 403. Predicates are provided for
// matching:
//
//	_, err := client.GetTask(ctx, 42)
//	if tasklight.IsAuthenticationError(err) {
//	    // Token rejected
//	}
//
// # Authentication Fallback
//
// The assignee and label mutation endpoints are known to reject the
// standard bearer header intermittently, even with a valid token. For
// those endpoints only, the client retries a 401/403 response up to two
// more times with alternate header presentations (an X-API-Token header,
// then a literal lowercase authorization key) before giving up with an
// *AssigneeAuthenticationError or *LabelAuthenticationError. Failures of
// any other class are never retried. Each attempt is a real request, so a
// mutation may be submitted up to three times when the server rejects the
// token spuriously.
package tasklight
