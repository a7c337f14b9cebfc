package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tasklight/tasklight-go/pkg/tasklight"
)

var attachmentCmd = &cobra.Command{
	Use:   "attachment",
	Short: "Manage task attachments",
}

var attachmentListCmd = &cobra.Command{
	Use:   "list <task-id>",
	Short: "List the attachments on a task",
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

		attachments, err := c.GetTaskAttachments(context.Background(), taskID, listOptionsFromFlags(cmd)...)
		if err != nil {
			handleError(err)
		}

		printAttachments(os.Stdout, attachments, jsonOutput)
	},
}

var attachmentUploadCmd = &cobra.Command{
	Use:   "upload <task-id> <file>",
	Short: "Upload a file as a task attachment",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		taskID, err := parseID(args[0], "task")
		if err != nil {
			handleError(err)
		}

		f, err := os.Open(args[1])
		if err != nil {
			handleError(err)
		}
		defer f.Close()

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		attachment, err := c.UploadTaskAttachment(context.Background(), taskID, filepath.Base(args[1]), f)
		if err != nil {
			handleError(err)
		}

		printAttachments(os.Stdout, []tasklight.TaskAttachment{*attachment}, jsonOutput)
	},
}

var attachmentDownloadCmd = &cobra.Command{
	Use:   "download <task-id> <attachment-id>",
	Short: "Download an attachment",
	Long: `Download an attachment's file content. The content is written to the
path given with --output, or to stdout when the flag is unset.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		taskID, err := parseID(args[0], "task")
		if err != nil {
			handleError(err)
		}
		attachmentID, err := parseID(args[1], "attachment")
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		out := os.Stdout
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				handleError(err)
			}
			defer f.Close()
			out = f
		}

		if err := c.DownloadTaskAttachment(context.Background(), taskID, attachmentID, out); err != nil {
			handleError(err)
		}

		if out != os.Stdout {
			fmt.Fprintf(os.Stderr, "downloaded attachment %d from task %d\n", attachmentID, taskID)
		}
	},
}

var attachmentDeleteCmd = &cobra.Command{
	Use:   "delete <task-id> <attachment-id>",
	Short: "Delete an attachment",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		taskID, err := parseID(args[0], "task")
		if err != nil {
			handleError(err)
		}
		attachmentID, err := parseID(args[1], "attachment")
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		msg, err := c.DeleteTaskAttachment(context.Background(), taskID, attachmentID)
		if err != nil {
			handleError(err)
		}

		printMessage(os.Stdout, msg, jsonOutput)
	},
}

func init() {
	addListFlags(attachmentListCmd)
	attachmentDownloadCmd.Flags().StringP("output", "o", "", "Write the file to this path instead of stdout")

	attachmentCmd.AddCommand(attachmentListCmd, attachmentUploadCmd, attachmentDownloadCmd, attachmentDeleteCmd)
	rootCmd.AddCommand(attachmentCmd)
}
