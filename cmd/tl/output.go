package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/tasklight/tasklight-go/pkg/tasklight"
)

// printTask prints a single task to the writer
func printTask(w io.Writer, task *tasklight.Task, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(task)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", task.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", task.Title)
	fmt.Fprintf(tw, "Done:\t%t\n", task.Done)
	if task.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", task.Description)
	}
	if task.Priority != 0 {
		fmt.Fprintf(tw, "Priority:\t%d\n", task.Priority)
	}
	if task.ProjectID != 0 {
		fmt.Fprintf(tw, "Project:\t%d\n", task.ProjectID)
	}
	if task.DueDate != nil {
		fmt.Fprintf(tw, "Due:\t%s\n", task.DueDate.Format("2006-01-02 15:04:05"))
	}
	if len(task.Labels) > 0 {
		titles := make([]string, 0, len(task.Labels))
		for _, label := range task.Labels {
			titles = append(titles, label.Title)
		}
		fmt.Fprintf(tw, "Labels:\t%s\n", strings.Join(titles, ", "))
	}
	if len(task.Assignees) > 0 {
		names := make([]string, 0, len(task.Assignees))
		for _, user := range task.Assignees {
			names = append(names, user.Username)
		}
		fmt.Fprintf(tw, "Assignees:\t%s\n", strings.Join(names, ", "))
	}
	if !task.Created.IsZero() {
		fmt.Fprintf(tw, "Created:\t%s\n", task.Created.Format("2006-01-02 15:04:05"))
	}
	if !task.Updated.IsZero() {
		fmt.Fprintf(tw, "Updated:\t%s\n", task.Updated.Format("2006-01-02 15:04:05"))
	}
	tw.Flush()
}

// printTaskList prints a list of tasks
func printTaskList(w io.Writer, tasks []tasklight.Task, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(tasks)
		return
	}

	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tTITLE\tDONE\tPRIORITY\tPROJECT\n")
	fmt.Fprintf(tw, "--\t-----\t----\t--------\t-------\n")
	for _, task := range tasks {
		fmt.Fprintf(tw, "%d\t%s\t%t\t%d\t%d\n",
			task.ID, truncate(task.Title, 40), task.Done, task.Priority, task.ProjectID)
	}
	tw.Flush()
}

// printUsers prints a list of users
func printUsers(w io.Writer, users []tasklight.User, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(users)
		return
	}

	if len(users) == 0 {
		fmt.Fprintln(w, "No assignees")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tUSERNAME\tNAME\n")
	for _, user := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", user.ID, user.Username, user.Name)
	}
	tw.Flush()
}

// printLabels prints a list of labels
func printLabels(w io.Writer, labels []tasklight.Label, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(labels)
		return
	}

	if len(labels) == 0 {
		fmt.Fprintln(w, "No labels")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tTITLE\tCOLOR\n")
	for _, label := range labels {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", label.ID, label.Title, label.HexColor)
	}
	tw.Flush()
}

// printComment prints a single comment
func printComment(w io.Writer, comment *tasklight.TaskComment, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(comment)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", comment.ID)
	if comment.Author.Username != "" {
		fmt.Fprintf(tw, "Author:\t%s\n", comment.Author.Username)
	}
	fmt.Fprintf(tw, "Comment:\t%s\n", comment.Comment)
	tw.Flush()
}

// printComments prints a list of comments
func printComments(w io.Writer, comments []tasklight.TaskComment, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(comments)
		return
	}

	if len(comments) == 0 {
		fmt.Fprintln(w, "No comments")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tAUTHOR\tCOMMENT\n")
	for _, comment := range comments {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", comment.ID, comment.Author.Username, truncate(comment.Comment, 60))
	}
	tw.Flush()
}

// printAttachments prints a list of attachments
func printAttachments(w io.Writer, attachments []tasklight.TaskAttachment, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(attachments)
		return
	}

	if len(attachments) == 0 {
		fmt.Fprintln(w, "No attachments")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\tSIZE\n")
	for _, attachment := range attachments {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", attachment.ID, attachment.File.Name, formatSize(attachment.File.Size))
	}
	tw.Flush()
}

// printMessage prints a server acknowledgement
func printMessage(w io.Writer, msg *tasklight.Message, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(msg)
		return
	}
	fmt.Fprintln(w, msg.Message)
}

// printAssignment prints the result of assigning a user to a task
func printAssignment(w io.Writer, assignment *tasklight.TaskAssignment, taskID int64, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(assignment)
		return
	}
	fmt.Fprintf(w, "assigned user %d to task %d\n", assignment.UserID, taskID)
}

// printTaskLabel prints the result of attaching a label to a task
func printTaskLabel(w io.Writer, attached *tasklight.TaskLabel, taskID int64, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(attached)
		return
	}
	fmt.Fprintf(w, "attached label %d to task %d\n", attached.LabelID, taskID)
}

// printLabelSet prints the label set a bulk update left on a task
func printLabelSet(w io.Writer, set *tasklight.LabelTaskBulk, taskID int64, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(set)
		return
	}
	fmt.Fprintf(w, "task %d now has %d label(s)\n", taskID, len(set.LabelIDs))
}

// printRelation prints a task relation
func printRelation(w io.Writer, relation *tasklight.TaskRelation, taskID int64, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(relation)
		return
	}
	fmt.Fprintf(w, "task %d %s task %d\n", taskID, relation.RelationKind, relation.OtherTaskID)
}

// printError prints an error
func printError(w io.Writer, err error, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(map[string]string{"error": err.Error()})
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// truncate shortens a string to maxLen characters
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// formatSize renders a byte count in a human-friendly unit
func formatSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(size)/(1<<10))
	default:
		return strconv.FormatInt(size, 10) + " B"
	}
}
