package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/tasklight/tasklight-go/pkg/tasklight"
)

var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "Manage task labels",
}

var labelListCmd = &cobra.Command{
	Use:   "list <task-id>",
	Short: "List the labels on a task",
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

		labels, err := c.GetTaskLabels(context.Background(), taskID, listOptionsFromFlags(cmd)...)
		if err != nil {
			handleError(err)
		}

		printLabels(os.Stdout, labels, jsonOutput)
	},
}

var labelAddCmd = &cobra.Command{
	Use:   "add <task-id> <label-id>",
	Short: "Attach a label to a task",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		taskID, err := parseID(args[0], "task")
		if err != nil {
			handleError(err)
		}
		labelID, err := parseID(args[1], "label")
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		attached, err := c.AddLabelToTask(context.Background(), taskID, labelID)
		if err != nil {
			handleError(err)
		}

		printTaskLabel(os.Stdout, attached, taskID, jsonOutput)
	},
}

var labelRemoveCmd = &cobra.Command{
	Use:   "remove <task-id> <label-id>",
	Short: "Remove a label from a task",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		taskID, err := parseID(args[0], "task")
		if err != nil {
			handleError(err)
		}
		labelID, err := parseID(args[1], "label")
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		msg, err := c.RemoveLabelFromTask(context.Background(), taskID, labelID)
		if err != nil {
			handleError(err)
		}

		printMessage(os.Stdout, msg, jsonOutput)
	},
}

var labelSetCmd = &cobra.Command{
	Use:   "set <task-id> [label-id]...",
	Short: "Replace a task's label set",
	Long: `Replace every label on the task with the given list. Passing no label
IDs clears all labels from the task.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		taskID, err := parseID(args[0], "task")
		if err != nil {
			handleError(err)
		}

		labelIDs := make([]int64, 0, len(args)-1)
		for _, arg := range args[1:] {
			id, err := parseID(arg, "label")
			if err != nil {
				handleError(err)
			}
			labelIDs = append(labelIDs, id)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		result, err := c.UpdateTaskLabels(context.Background(), taskID, tasklight.LabelTaskBulk{LabelIDs: labelIDs})
		if err != nil {
			handleError(err)
		}

		printLabelSet(os.Stdout, result, taskID, jsonOutput)
	},
}

func init() {
	addListFlags(labelListCmd)

	labelCmd.AddCommand(labelListCmd, labelAddCmd, labelRemoveCmd, labelSetCmd)
	rootCmd.AddCommand(labelCmd)
}
