package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/valter-silva-au/taskmanager/internal/core"
	"github.com/valter-silva-au/taskmanager/pkg/models"
)

// Style definitions. Colours are dropped automatically when output is not a
// terminal.
var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))

	statusTodo       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusInProgress = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	statusComplete   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
)

func renderResult(w io.Writer, c core.Command, res *core.Result) {
	switch c.(type) {
	case core.ListProjects:
		renderProjects(w, res.Projects)
	case core.ListTasks:
		renderTasks(w, res.Tasks)
	default:
		if res.Message != "" {
			fmt.Fprintln(w, res.Message)
		}
	}
}

func renderProjects(w io.Writer, projects []models.Project) {
	fmt.Fprintln(w, headingStyle.Render("Projects:"))
	if len(projects) == 0 {
		fmt.Fprintln(w, emptyStyle.Render("  No projects found."))
		return
	}
	for _, p := range projects {
		fmt.Fprintf(w, "%s: %s - %s\n", idStyle.Render(p.ID.String()), p.Name, p.Description)
	}
}

func renderTasks(w io.Writer, tasks []models.Task) {
	fmt.Fprintln(w, headingStyle.Render("Project tasks:"))
	if len(tasks) == 0 {
		fmt.Fprintln(w, emptyStyle.Render("  No tasks found."))
		return
	}
	for _, t := range tasks {
		fmt.Fprintf(w, "%s: %s - %s [%s]\n",
			idStyle.Render(t.ID.String()), t.Name, t.Description,
			styleForStatus(t.Status).Render(string(t.Status)))
	}
}

func styleForStatus(status models.TaskStatus) lipgloss.Style {
	switch status {
	case models.StatusTodo:
		return statusTodo
	case models.StatusInProgress:
		return statusInProgress
	case models.StatusComplete:
		return statusComplete
	default:
		return lipgloss.NewStyle()
	}
}
