package tasklight_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/tasklight/tasklight-go/internal/apitest"
	"github.com/tasklight/tasklight-go/pkg/tasklight"
)

// TestTaskWorkflow drives a full task lifecycle against the in-memory API
// double: create, label, assign, comment, relate, attach, complete,
// delete.
func TestTaskWorkflow(t *testing.T) {
	server := apitest.New(t, "workflow-token")
	client, err := tasklight.NewClient(server.URL, tasklight.WithToken("workflow-token"))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	ctx := context.Background()

	task, err := client.CreateTask(ctx, 1, tasklight.Task{Title: "Write release notes"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.ID == 0 {
		t.Fatal("expected server-assigned task ID")
	}

	other, err := client.CreateTask(ctx, 1, tasklight.Task{Title: "Cut the release"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if _, err := client.AddLabelToTask(ctx, task.ID, 7); err != nil {
		t.Fatalf("AddLabelToTask: %v", err)
	}
	labels, err := client.GetTaskLabels(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTaskLabels: %v", err)
	}
	if len(labels) != 1 || labels[0].ID != 7 {
		t.Errorf("unexpected labels: %+v", labels)
	}

	if _, err := client.AssignUserToTask(ctx, task.ID, 9); err != nil {
		t.Fatalf("AssignUserToTask: %v", err)
	}
	assignees, err := client.GetTaskAssignees(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTaskAssignees: %v", err)
	}
	if len(assignees) != 1 || assignees[0].ID != 9 {
		t.Errorf("unexpected assignees: %+v", assignees)
	}

	comment, err := client.CreateTaskComment(ctx, task.ID, tasklight.TaskComment{Comment: "draft ready"})
	if err != nil {
		t.Fatalf("CreateTaskComment: %v", err)
	}
	if _, err := client.UpdateTaskComment(ctx, task.ID, comment.ID, tasklight.TaskComment{Comment: "final draft ready"}); err != nil {
		t.Fatalf("UpdateTaskComment: %v", err)
	}

	if _, err := client.CreateTaskRelation(ctx, task.ID, tasklight.TaskRelation{
		OtherTaskID:  other.ID,
		RelationKind: tasklight.RelationPrecedes,
	}); err != nil {
		t.Fatalf("CreateTaskRelation: %v", err)
	}

	attachment, err := client.UploadTaskAttachment(ctx, task.ID, "notes.md", strings.NewReader("# Release notes"))
	if err != nil {
		t.Fatalf("UploadTaskAttachment: %v", err)
	}
	var buf bytes.Buffer
	if err := client.DownloadTaskAttachment(ctx, task.ID, attachment.ID, &buf); err != nil {
		t.Fatalf("DownloadTaskAttachment: %v", err)
	}
	if buf.String() != "# Release notes" {
		t.Errorf("attachment round trip mismatch: %q", buf.String())
	}

	done, err := client.MarkTaskDone(ctx, task.ID)
	if err != nil {
		t.Fatalf("MarkTaskDone: %v", err)
	}
	if !done.Done {
		t.Error("expected task to be done")
	}

	found, err := client.GetAllTasks(ctx, tasklight.WithSearch("release notes"))
	if err != nil {
		t.Fatalf("GetAllTasks: %v", err)
	}
	if len(found) != 1 || found[0].ID != task.ID {
		t.Errorf("search did not find the task: %+v", found)
	}

	if _, err := client.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if _, err := client.GetTask(ctx, task.ID); !tasklight.IsAPIError(err) {
		t.Errorf("expected API error after delete, got %v", err)
	}
}

// TestWorkflowRejectedToken checks that a wrong token ends as an
// authentication failure even after the header fallback runs.
func TestWorkflowRejectedToken(t *testing.T) {
	server := apitest.New(t, "right-token")
	seeded := server.SeedTask("seeded", 1)

	client, err := tasklight.NewClient(server.URL, tasklight.WithToken("wrong-token"))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	before := server.Requests()
	_, err = client.AssignUserToTask(context.Background(), seeded.ID, 9)
	if !tasklight.IsAssigneeAuthenticationError(err) {
		t.Fatalf("expected assignee authentication error, got %v", err)
	}
	if got := server.Requests() - before; got != 3 {
		t.Errorf("expected 3 attempts against the server, got %d", got)
	}

	before = server.Requests()
	if _, err := client.GetTask(context.Background(), seeded.ID); !tasklight.IsAuthenticationError(err) {
		t.Fatalf("expected authentication error, got %v", err)
	}
	if got := server.Requests() - before; got != 1 {
		t.Errorf("non-retried method must issue exactly 1 request, got %d", got)
	}
}
