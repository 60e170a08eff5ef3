package cli

import (
	"github.com/spf13/cobra"
	"github.com/valter-silva-au/taskmanager/internal/core"
)

func newProjectCmd(rt Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects and their tasks",
		Long: `Create, update, destroy and list projects, and the tasks nested inside
them. Projects and tasks are addressed by the IDs printed when they are
created or listed.`,
	}

	cmd.AddCommand(newProjectCreateCmd(rt))
	cmd.AddCommand(newProjectDestroyCmd(rt))
	cmd.AddCommand(newProjectUpdateCmd(rt))
	cmd.AddCommand(newProjectListCmd(rt))
	cmd.AddCommand(newProjectCreateTaskCmd(rt))
	cmd.AddCommand(newProjectDestroyTaskCmd(rt))
	cmd.AddCommand(newProjectUpdateTaskCmd(rt))
	cmd.AddCommand(newProjectListTasksCmd(rt))
	cmd.AddCommand(newProjectBrowseCmd(rt))

	return cmd
}

func newProjectCreateCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name> [description]",
		Short: "Create a new project",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, rt, core.CreateProject{
				Name:        args[0],
				Description: optionalArg(args, 1),
			})
		},
	}
}

func newProjectDestroyCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:               "destroy <project-id>",
		Short:             "Destroy a project and all of its tasks",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeProjectIDs(rt),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, rt, core.DestroyProject{ProjectID: args[0]})
		},
	}
}

func newProjectUpdateCmd(rt Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <project-id>",
		Short: "Update a project's name and/or description",
		Long: `Update a project. Only the fields passed as flags change; omitted
fields keep their current value.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeProjectIDs(rt),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, rt, core.UpdateProject{
				ProjectID:   args[0],
				Name:        changedString(cmd, "name"),
				Description: changedString(cmd, "description"),
			})
		},
	}
	cmd.Flags().String("name", "", "New project name")
	cmd.Flags().String("description", "", "New project description")
	return cmd
}

func newProjectListCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, rt, core.ListProjects{})
		},
	}
}

func newProjectCreateTaskCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "create-task <project-id> <name> [description]",
		Short: "Create a task in a project",
		Long: `Create a task in an existing project. New tasks have the default type
and start in the todo status.`,
		Args:              cobra.RangeArgs(2, 3),
		ValidArgsFunction: completeProjectIDs(rt),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, rt, core.CreateTask{
				ProjectID:   args[0],
				Name:        args[1],
				Description: optionalArg(args, 2),
			})
		},
	}
}

func newProjectDestroyTaskCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:               "destroy-task <project-id> <task-id>",
		Short:             "Destroy a task",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeTaskRefs(rt),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, rt, core.DestroyTask{ProjectID: args[0], TaskID: args[1]})
		},
	}
}

func newProjectUpdateTaskCmd(rt Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-task <project-id> <task-id>",
		Short: "Update a task's name and/or description",
		Long: `Update a task. Only the fields passed as flags change; omitted fields
keep their current value.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeTaskRefs(rt),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, rt, core.UpdateTask{
				ProjectID:   args[0],
				TaskID:      args[1],
				Name:        changedString(cmd, "name"),
				Description: changedString(cmd, "description"),
			})
		},
	}
	cmd.Flags().String("name", "", "New task name")
	cmd.Flags().String("description", "", "New task description")
	return cmd
}

func newProjectListTasksCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:               "list-tasks <project-id>",
		Short:             "List the tasks of a project",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeProjectIDs(rt),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, rt, core.ListTasks{ProjectID: args[0]})
		},
	}
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// changedString returns the flag value only if the user set it, so that an
// explicit empty string is distinguishable from an omitted flag.
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}
