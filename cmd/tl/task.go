package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tasklight/tasklight-go/pkg/tasklight"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks across all projects, or within one project with --project.

Supports pagination, free-text search, sorting and filter expressions,
all passed through to the server.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		opts := listOptionsFromFlags(cmd)
		projectID, _ := cmd.Flags().GetInt64("project")

		var tasks []tasklight.Task
		if projectID > 0 {
			tasks, err = c.GetProjectTasks(context.Background(), projectID, opts...)
		} else {
			tasks, err = c.GetAllTasks(context.Background(), opts...)
		}
		if err != nil {
			handleError(err)
		}

		printTaskList(os.Stdout, tasks, jsonOutput)
	},
}

var taskShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show task details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0], "task")
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		task, err := c.GetTask(context.Background(), id)
		if err != nil {
			handleError(err)
		}

		printTask(os.Stdout, task, jsonOutput)
	},
}

var taskCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new task",
	Long:  `Create a new task with the given title in the project named by --project.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		projectID, _ := cmd.Flags().GetInt64("project")
		if projectID <= 0 {
			handleError(errMissingProject)
		}
		description, _ := cmd.Flags().GetString("description")
		priority, _ := cmd.Flags().GetInt("priority")

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		task, err := c.CreateTask(context.Background(), projectID, tasklight.Task{
			Title:       args[0],
			Description: description,
			Priority:    priority,
		})
		if err != nil {
			handleError(err)
		}

		printTask(os.Stdout, task, jsonOutput)
	},
}

var taskEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task",
	Long:  `Edit a task's title, description, or priority. Unset flags keep the current value.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0], "task")
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		// The update endpoint replaces the stored task, so start from
		// the current server state.
		task, err := c.GetTask(context.Background(), id)
		if err != nil {
			handleError(err)
		}

		if cmd.Flags().Changed("title") {
			task.Title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("description") {
			task.Description, _ = cmd.Flags().GetString("description")
		}
		if cmd.Flags().Changed("priority") {
			task.Priority, _ = cmd.Flags().GetInt("priority")
		}

		updated, err := c.UpdateTask(context.Background(), id, *task)
		if err != nil {
			handleError(err)
		}

		printTask(os.Stdout, updated, jsonOutput)
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0], "task")
		if err != nil {
			handleError(err)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		msg, err := c.DeleteTask(context.Background(), id)
		if err != nil {
			handleError(err)
		}

		printMessage(os.Stdout, msg, jsonOutput)
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		toggleDone(args[0], true)
	},
}

var taskUndoneCmd = &cobra.Command{
	Use:   "undone <id>",
	Short: "Reopen a done task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		toggleDone(args[0], false)
	},
}

var taskBulkCmd = &cobra.Command{
	Use:   "bulk <field> <value> <id>...",
	Short: "Update one field across several tasks",
	Long: `Set one field to one value on every listed task in a single request.

Example:
  tl task bulk priority 4 12 15 23`,
	Args: cobra.MinimumNArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		field := args[0]
		value := parseBulkValue(args[1])

		ids := make([]int64, 0, len(args)-2)
		for _, arg := range args[2:] {
			id, err := parseID(arg, "task")
			if err != nil {
				handleError(err)
			}
			ids = append(ids, id)
		}

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		msg, err := c.BulkUpdateTasks(context.Background(), tasklight.TaskBulkOperation{
			TaskIDs: ids,
			Field:   field,
			Value:   value,
		})
		if err != nil {
			handleError(err)
		}

		printMessage(os.Stdout, msg, jsonOutput)
	},
}

func toggleDone(arg string, done bool) {
	id, err := parseID(arg, "task")
	if err != nil {
		handleError(err)
	}

	c, err := getClient()
	if err != nil {
		handleError(err)
	}

	var task *tasklight.Task
	if done {
		task, err = c.MarkTaskDone(context.Background(), id)
	} else {
		task, err = c.MarkTaskUndone(context.Background(), id)
	}
	if err != nil {
		handleError(err)
	}

	printTask(os.Stdout, task, jsonOutput)
}

// listOptionsFromFlags builds SDK list options from the flags every list
// command shares. Only flags the user set are forwarded.
func listOptionsFromFlags(cmd *cobra.Command) []tasklight.ListOption {
	var opts []tasklight.ListOption
	if cmd.Flags().Changed("page") {
		page, _ := cmd.Flags().GetInt("page")
		opts = append(opts, tasklight.WithPage(page))
	}
	if cmd.Flags().Changed("per-page") {
		perPage, _ := cmd.Flags().GetInt("per-page")
		opts = append(opts, tasklight.WithPerPage(perPage))
	}
	if cmd.Flags().Changed("search") {
		search, _ := cmd.Flags().GetString("search")
		opts = append(opts, tasklight.WithSearch(search))
	}
	if cmd.Flags().Changed("sort") {
		sortBy, _ := cmd.Flags().GetString("sort")
		opts = append(opts, tasklight.WithSortBy(sortBy))
	}
	if cmd.Flags().Changed("order") {
		order, _ := cmd.Flags().GetString("order")
		opts = append(opts, tasklight.WithOrderBy(tasklight.Order(order)))
	}
	if cmd.Flags().Changed("filter") {
		filter, _ := cmd.Flags().GetString("filter")
		opts = append(opts, tasklight.WithFilter(filter))
	}
	if cmd.Flags().Changed("filter-include-nulls") {
		include, _ := cmd.Flags().GetBool("filter-include-nulls")
		opts = append(opts, tasklight.WithFilterIncludeNulls(include))
	}
	return opts
}

// parseBulkValue interprets a bulk value argument as bool or number when
// it looks like one, string otherwise.
func parseBulkValue(arg string) interface{} {
	switch strings.ToLower(arg) {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := parseID(arg, "value"); err == nil {
		return n
	}
	return arg
}

func init() {
	taskListCmd.Flags().Int64("project", 0, "List tasks of this project only")
	addListFlags(taskListCmd)

	taskCreateCmd.Flags().Int64("project", 0, "Project to create the task in (required)")
	taskCreateCmd.Flags().String("description", "", "Task description")
	taskCreateCmd.Flags().Int("priority", 0, "Task priority")

	taskEditCmd.Flags().String("title", "", "New title")
	taskEditCmd.Flags().String("description", "", "New description")
	taskEditCmd.Flags().Int("priority", 0, "New priority")

	taskCmd.AddCommand(taskListCmd, taskShowCmd, taskCreateCmd, taskEditCmd,
		taskDeleteCmd, taskDoneCmd, taskUndoneCmd, taskBulkCmd)
	rootCmd.AddCommand(taskCmd)
}

// addListFlags registers the query-parameter flags shared by list commands
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().Int("per-page", 20, "Items per page")
	cmd.Flags().String("search", "", "Free-text search")
	cmd.Flags().String("sort", "", "Field to sort by")
	cmd.Flags().String("order", "asc", "Sort order: asc or desc")
	cmd.Flags().String("filter", "", "Filter expression")
	cmd.Flags().Bool("filter-include-nulls", false, "Include tasks with null filtered fields")
}
