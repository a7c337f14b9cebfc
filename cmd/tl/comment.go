package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/tasklight/tasklight-go/pkg/tasklight"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Manage task comments",
}

var commentListCmd = &cobra.Command{
	Use:   "list <task-id>",
	Short: "List the comments on a task",
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

		comments, err := c.GetTaskComments(context.Background(), taskID)
		if err != nil {
			handleError(err)
		}

		printComments(os.Stdout, comments, jsonOutput)
	},
}

var commentAddCmd = &cobra.Command{
	Use:   "add <task-id> <text>",
	Short: "Add a comment to a task",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		taskID, err := parseID(args[0], "task")
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		comment, err := c.CreateTaskComment(context.Background(), taskID, tasklight.TaskComment{
			Comment: args[1],
		})
		if err != nil {
			handleError(err)
		}

		printComment(os.Stdout, comment, jsonOutput)
	},
}

var commentShowCmd = &cobra.Command{
	Use:   "show <task-id> <comment-id>",
	Short: "Show a single comment",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		taskID, commentID, err := parseCommentArgs(args)
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		comment, err := c.GetTaskComment(context.Background(), taskID, commentID)
		if err != nil {
			handleError(err)
		}

		printComment(os.Stdout, comment, jsonOutput)
	},
}

var commentEditCmd = &cobra.Command{
	Use:   "edit <task-id> <comment-id> <text>",
	Short: "Edit a comment",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		taskID, commentID, err := parseCommentArgs(args)
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		comment, err := c.UpdateTaskComment(context.Background(), taskID, commentID, tasklight.TaskComment{
			Comment: args[2],
		})
		if err != nil {
			handleError(err)
		}

		printComment(os.Stdout, comment, jsonOutput)
	},
}

var commentDeleteCmd = &cobra.Command{
	Use:   "delete <task-id> <comment-id>",
	Short: "Delete a comment",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		taskID, commentID, err := parseCommentArgs(args)
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		msg, err := c.DeleteTaskComment(context.Background(), taskID, commentID)
		if err != nil {
			handleError(err)
		}

		printMessage(os.Stdout, msg, jsonOutput)
	},
}

func parseCommentArgs(args []string) (taskID, commentID int64, err error) {
	taskID, err = parseID(args[0], "task")
	if err != nil {
		return 0, 0, err
	}
	commentID, err = parseID(args[1], "comment")
	if err != nil {
		return 0, 0, err
	}
	return taskID, commentID, nil
}

func init() {
	commentCmd.AddCommand(commentListCmd, commentAddCmd, commentShowCmd, commentEditCmd, commentDeleteCmd)
	rootCmd.AddCommand(commentCmd)
}
