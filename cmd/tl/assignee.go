package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/tasklight/tasklight-go/pkg/tasklight"
)

var assigneeCmd = &cobra.Command{
	Use:   "assignee",
	Short: "Manage task assignees",
}

var assigneeListCmd = &cobra.Command{
	Use:   "list <task-id>",
	Short: "List the users assigned to a task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		taskID, err := parseID(args[0], "task")
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		users, err := c.GetTaskAssignees(context.Background(), taskID, listOptionsFromFlags(cmd)...)
		if err != nil {
			handleError(err)
		}

		printUsers(os.Stdout, users, jsonOutput)
	},
}

var assigneeAddCmd = &cobra.Command{
	Use:   "add <task-id> <user-id>",
	Short: "Assign a user to a task",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		taskID, err := parseID(args[0], "task")
		if err != nil {
			handleError(err)
		}
		userID, err := parseID(args[1], "user")
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		assignment, err := c.AssignUserToTask(context.Background(), taskID, userID)
		if err != nil {
			handleError(err)
		}

		printAssignment(os.Stdout, assignment, taskID, jsonOutput)
	},
}

var assigneeRemoveCmd = &cobra.Command{
	Use:   "remove <task-id> <user-id>",
	Short: "Remove an assignee from a task",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		taskID, err := parseID(args[0], "task")
		if err != nil {
			handleError(err)
		}
		userID, err := parseID(args[1], "user")
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		msg, err := c.RemoveUserFromTask(context.Background(), taskID, userID)
		if err != nil {
			handleError(err)
		}

		printMessage(os.Stdout, msg, jsonOutput)
	},
}

var assigneeBulkAddCmd = &cobra.Command{
	Use:   "bulk-add <task-id> <user-id>...",
	Short: "Assign several users to a task at once",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		taskID, err := parseID(args[0], "task")
		if err != nil {
			handleError(err)
		}

		userIDs := make([]int64, 0, len(args)-1)
		for _, arg := range args[1:] {
			id, err := parseID(arg, "user")
			if err != nil {
				handleError(err)
			}
			userIDs = append(userIDs, id)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		msg, err := c.BulkAssignUsersToTask(context.Background(), taskID, tasklight.BulkAssignees{UserIDs: userIDs})
		if err != nil {
			handleError(err)
		}

		printMessage(os.Stdout, msg, jsonOutput)
	},
}

func init() {
	addListFlags(assigneeListCmd)

	assigneeCmd.AddCommand(assigneeListCmd, assigneeAddCmd, assigneeRemoveCmd, assigneeBulkAddCmd)
	rootCmd.AddCommand(assigneeCmd)
}
