package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/valter-silva-au/taskmanager/internal/core"
	"github.com/valter-silva-au/taskmanager/pkg/models"
)

var (
	browseTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	browseCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	browseHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	browseErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// browseModel is a read-only two-level view: the project list, and the
// task list of the selected project.
type browseModel struct {
	rt Runtime

	projects []models.Project
	tasks    []models.Task
	selected *models.Project
	cursor   int

	loading bool
	err     error
}

type projectsLoadedMsg struct {
	projects []models.Project
	err      error
}

type tasksLoadedMsg struct {
	tasks []models.Task
	err   error
}

func newBrowseModel(rt Runtime) browseModel {
	return browseModel{rt: rt, loading: true}
}

func (m browseModel) Init() tea.Cmd {
	return loadProjects(m.rt)
}

func loadProjects(rt Runtime) tea.Cmd {
	return func() tea.Msg {
		res, err := rt.Execute(core.ListProjects{})
		if err != nil {
			return projectsLoadedMsg{err: err}
		}
		return projectsLoadedMsg{projects: res.Projects}
	}
}

func loadTasks(rt Runtime, projectID string) tea.Cmd {
	return func() tea.Msg {
		res, err := rt.Execute(core.ListTasks{ProjectID: projectID})
		if err != nil {
			return tasksLoadedMsg{err: err}
		}
		return tasksLoadedMsg{tasks: res.Tasks}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < m.rowCount()-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if m.selected != nil || m.cursor >= len(m.projects) {
				return m, nil
			}
			p := m.projects[m.cursor]
			m.selected = &p
			m.cursor = 0
			m.loading = true
			return m, loadTasks(m.rt, p.ID.String())
		case "esc", "backspace":
			if m.selected == nil {
				return m, tea.Quit
			}
			m.selected = nil
			m.tasks = nil
			m.cursor = 0
			return m, nil
		case "r":
			m.loading = true
			if m.selected != nil {
				return m, loadTasks(m.rt, m.selected.ID.String())
			}
			return m, loadProjects(m.rt)
		}

	case projectsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.projects = msg.projects
		if m.cursor >= len(m.projects) {
			m.cursor = 0
		}
		return m, nil

	case tasksLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.tasks = msg.tasks
		return m, nil
	}

	return m, nil
}

func (m browseModel) rowCount() int {
	if m.selected != nil {
		return len(m.tasks)
	}
	return len(m.projects)
}

func (m browseModel) View() string {
	var b strings.Builder

	if m.selected != nil {
		b.WriteString(browseTitleStyle.Render(" " + m.selected.Name + " "))
	} else {
		b.WriteString(browseTitleStyle.Render(" Projects "))
	}
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("  Loading...\n")
	case m.err != nil:
		b.WriteString(browseErrorStyle.Render(fmt.Sprintf("  Error: %s", m.err)))
		b.WriteString("\n")
	case m.selected != nil:
		m.writeTasks(&b)
	default:
		m.writeProjects(&b)
	}

	b.WriteString("\n")
	if m.selected != nil {
		b.WriteString(browseHelpStyle.Render("up/down: move | esc: back | r: refresh | q: quit"))
	} else {
		b.WriteString(browseHelpStyle.Render("up/down: move | enter: open | r: refresh | q: quit"))
	}
	return b.String()
}

func (m browseModel) writeProjects(b *strings.Builder) {
	if len(m.projects) == 0 {
		b.WriteString("  No projects found.\n")
		return
	}
	for i, p := range m.projects {
		line := fmt.Sprintf("%s (%d tasks)", p.Name, len(p.Tasks))
		b.WriteString(m.row(i, line))
	}
}

func (m browseModel) writeTasks(b *strings.Builder) {
	if m.selected.Description != "" {
		b.WriteString("  " + m.selected.Description + "\n\n")
	}
	if len(m.tasks) == 0 {
		b.WriteString("  No tasks found.\n")
		return
	}
	for i, t := range m.tasks {
		line := fmt.Sprintf("%-12s %s", styleForStatus(t.Status).Render(string(t.Status)), t.Name)
		b.WriteString(m.row(i, line))
	}
}

func (m browseModel) row(i int, line string) string {
	if i == m.cursor {
		return browseCursorStyle.Render("> ") + line + "\n"
	}
	return "  " + line + "\n"
}

func newProjectBrowseCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse projects and tasks interactively",
		Long: `Open a read-only terminal view of all projects. Select a project with
enter to see its tasks; esc goes back, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rt == nil {
				return fmt.Errorf("runtime not initialized")
			}
			p := tea.NewProgram(newBrowseModel(rt), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
