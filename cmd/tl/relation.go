package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tasklight/tasklight-go/pkg/tasklight"
)

var relationCmd = &cobra.Command{
	Use:   "relation",
	Short: "Manage task relations",
	Long: `Manage relations between tasks.

Valid relation kinds: subtask, parenttask, related, blocking, blocked,
precedes, follows, duplicates.`,
}

var relationAddCmd = &cobra.Command{
	Use:   "add <task-id> <kind> <other-task-id>",
	Short: "Relate one task to another",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		taskID, kind, otherID, err := parseRelationArgs(args)
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		relation, err := c.CreateTaskRelation(context.Background(), taskID, tasklight.TaskRelation{
			OtherTaskID:  otherID,
			RelationKind: kind,
		})
		if err != nil {
			handleError(err)
		}

		printRelation(os.Stdout, relation, taskID, jsonOutput)
	},
}

var relationRemoveCmd = &cobra.Command{
	Use:   "remove <task-id> <kind> <other-task-id>",
	Short: "Remove a relation between two tasks",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		taskID, kind, otherID, err := parseRelationArgs(args)
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		msg, err := c.DeleteTaskRelation(context.Background(), taskID, kind, otherID)
		if err != nil {
			handleError(err)
		}

		printMessage(os.Stdout, msg, jsonOutput)
	},
}

func parseRelationArgs(args []string) (taskID int64, kind tasklight.RelationKind, otherID int64, err error) {
	taskID, err = parseID(args[0], "task")
	if err != nil {
		return 0, "", 0, err
	}
	kind, err = parseRelationKind(args[1])
	if err != nil {
		return 0, "", 0, err
	}
	otherID, err = parseID(args[2], "task")
	if err != nil {
		return 0, "", 0, err
	}
	return taskID, kind, otherID, nil
}

func parseRelationKind(arg string) (tasklight.RelationKind, error) {
	switch kind := tasklight.RelationKind(arg); kind {
	case tasklight.RelationSubtask, tasklight.RelationParentTask, tasklight.RelationRelated,
		tasklight.RelationBlocking, tasklight.RelationBlocked, tasklight.RelationPrecedes,
		tasklight.RelationFollows, tasklight.RelationDuplicates:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown relation kind %q", arg)
	}
}

func init() {
	relationCmd.AddCommand(relationAddCmd, relationRemoveCmd)
	rootCmd.AddCommand(relationCmd)
}
