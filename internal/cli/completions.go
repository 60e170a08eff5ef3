package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/taskmanager/internal/core"
)

type completionFunc func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective)

// completeProjectIDs completes the first positional argument with project
// IDs, described by project name.
func completeProjectIDs(rt Runtime) completionFunc {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) != 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return projectIDCandidates(rt, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

// completeTaskRefs completes <project-id> <task-id> pairs: project IDs
// first, then the task IDs of the chosen project.
func completeTaskRefs(rt Runtime) completionFunc {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		switch len(args) {
		case 0:
			return projectIDCandidates(rt, toComplete), cobra.ShellCompDirectiveNoFileComp
		case 1:
			return taskIDCandidates(rt, args[0], toComplete), cobra.ShellCompDirectiveNoFileComp
		default:
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
	}
}

func projectIDCandidates(rt Runtime, toComplete string) []string {
	if rt == nil {
		return nil
	}
	res, err := rt.Execute(core.ListProjects{})
	if err != nil {
		return nil
	}
	var ids []string
	for _, p := range res.Projects {
		id := p.ID.String()
		if strings.HasPrefix(id, toComplete) {
			ids = append(ids, id+"\t"+p.Name)
		}
	}
	return ids
}

func taskIDCandidates(rt Runtime, projectID, toComplete string) []string {
	if rt == nil {
		return nil
	}
	res, err := rt.Execute(core.ListTasks{ProjectID: projectID})
	if err != nil {
		return nil
	}
	var ids []string
	for _, t := range res.Tasks {
		id := t.ID.String()
		if strings.HasPrefix(id, toComplete) {
			ids = append(ids, id+"\t"+t.Name)
		}
	}
	return ids
}

// completeConfigKeys completes the key argument of config get/set.
func completeConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{
		core.ConfigKeyPersistenceMode + "\tStorage format for project data (JSON)",
	}, cobra.ShellCompDirectiveNoFileComp
}
