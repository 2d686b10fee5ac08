package shell

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/galaxy-cli/circuit/internal/export"
	"github.com/galaxy-cli/circuit/internal/model"
	"github.com/galaxy-cli/circuit/internal/schedule"
	"github.com/galaxy-cli/circuit/internal/worklog"
)

// command is one entry of the closed shell command set.
type command struct {
	name    string
	summary string
	help    string
	run     func(m *Model, arg string) tea.Cmd
}

func commandTable() []command {
	return []command{
		{
			name:    "add",
			summary: "Add a new workout group",
			help: "add\n" +
				"    Interactively create a workout group: name, exercises,\n" +
				"    reps/cycles, schedule days, and progressive overload.",
			run: (*Model).runAdd,
		},
		{
			name:    "edit",
			summary: "Edit the selected workout group",
			help: "edit\n" +
				"    Interactively edit the currently selected group. Press\n" +
				"    Enter at any prompt to keep the current value.",
			run: (*Model).runEdit,
		},
		{
			name:    "index",
			summary: "List, select, or remove workout groups",
			help: "index\n" +
				"    List all workout groups; the selected one is marked with *.\n" +
				"index NUM\n" +
				"    Select the workout group by its index number.\n" +
				"index remove NUM [...]\n" +
				"    Remove one or more groups by index.\n" +
				"index layout NUM\n" +
				"    Show the exercises and reps/cycles of one group.",
			run: (*Model).runIndex,
		},
		{
			name:    "layout",
			summary: "Show the weekly workout layout",
			help: "layout\n" +
				"    Show the 7-day layout using current display settings.\n" +
				"layout set date <1-4>\n" +
				"    1=Mon 2=Monday 3=1/6 4=1/6/25\n" +
				"layout set exercise display <1-4>\n" +
				"    1=detailed 2=simple 3=\"16 reps | 6 cycles\" 4=\"16r 6c\"\n" +
				"layout set group display on|off\n" +
				"    Toggle group name lines in the layout.\n" +
				"layout export\n" +
				"    Write the layout to circuit_schedule[YYYY-MM-DD].txt.\n" +
				"layout index NUM\n" +
				"    Show one group with display formatting applied.",
			run: (*Model).runLayout,
		},
		{
			name:    "log",
			summary: "Add to or display the workout log",
			help: "log add\n" +
				"    Append the layout for a date (default today) to the log.\n" +
				"log display\n" +
				"    Print the whole workout log.",
			run: (*Model).runLog,
		},
		{
			name:    "cmd",
			summary: "List all available commands",
			help:    "cmd\n    Lists all available commands.",
			run:     (*Model).runCmd,
		},
		{
			name:    "help",
			summary: "Show help for commands",
			help:    "help [command]\n    Shows help for commands.",
			run:     (*Model).runHelp,
		},
		{
			name:    "exit",
			summary: "Exit the shell",
			help:    "exit\n    Exits the shell.",
			run: func(m *Model, _ string) tea.Cmd {
				m.info("Goodbye!")
				return tea.Quit
			},
		},
	}
}

func shellCtx() context.Context {
	return context.Background()
}

func (m *Model) dispatch(line string) (tea.Model, tea.Cmd) {
	line = strings.TrimSpace(line)
	if line == "" {
		return m, nil
	}
	name, arg, _ := strings.Cut(line, " ")
	if name == "?" {
		name = "help"
	}
	for _, cmd := range commandTable() {
		if cmd.name == name {
			return m, cmd.run(m, strings.TrimSpace(arg))
		}
	}
	m.errorf("Unknown command %q. Enter `cmd` for commands.", name)
	return m, nil
}

func (m *Model) runIndex(arg string) tea.Cmd {
	groups, err := m.store.ListGroups(shellCtx())
	if err != nil {
		m.errorf("Failed to list groups: %v", err)
		return nil
	}
	if len(groups) == 0 {
		m.info(schedule.NoGroupsMessage)
		return nil
	}
	if arg == "" {
		m.printGroupList(groups)
		return nil
	}
	parts := strings.Fields(arg)
	switch parts[0] {
	case "remove":
		return m.runIndexRemove(groups, parts[1:])
	case "layout":
		return m.runIndexLayout(groups, parts[1:])
	}
	if len(parts) != 1 {
		m.errorf("Only one index number can be specified for selection.")
		return nil
	}
	idx, err := strconv.Atoi(parts[0])
	if err != nil {
		m.errorf("Not an index number.")
		return nil
	}
	if idx < 1 || idx > len(groups) {
		m.errorf("Index %d does not exist.", idx)
		return nil
	}
	m.currentGroupID = groups[idx-1].ID
	m.info(fmt.Sprintf("Selected workout group %d. %s", idx, groups[idx-1].Name))
	return nil
}

func (m *Model) runIndexRemove(groups []model.Group, args []string) tea.Cmd {
	if len(args) == 0 {
		m.errorf("Specify index(es) to remove, e.g. 'index remove 2 3'.")
		return nil
	}
	indexes := make([]int, 0, len(args))
	for _, raw := range args {
		idx, err := strconv.Atoi(raw)
		if err != nil {
			m.errorf("All indexes must be valid integers.")
			return nil
		}
		if idx < 1 || idx > len(groups) {
			m.errorf("Index(es) do not exist: %d", idx)
			return nil
		}
		indexes = append(indexes, idx)
	}
	m.startRemoveFlow(groups, indexes)
	return nil
}

func (m *Model) runIndexLayout(groups []model.Group, args []string) tea.Cmd {
	if len(args) != 1 {
		m.usage("index layout <NUM>")
		return nil
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		m.errorf("Invalid index number for layout.")
		return nil
	}
	if idx < 1 || idx > len(groups) {
		m.errorf("Index %d does not exist.", idx)
		return nil
	}
	group := groups[idx-1]
	exercises, err := m.store.ListExercises(shellCtx(), group.ID)
	if err != nil {
		m.errorf("Failed to list exercises: %v", err)
		return nil
	}
	m.info(fmt.Sprintf("Group %d: %s", idx, group.Name))
	m.info(schedule.DetailLines(group, exercises, m.opts.ExerciseFormat)...)
	return nil
}

func (m *Model) runLayout(arg string) tea.Cmd {
	switch {
	case arg == "":
		lines, err := schedule.WeeklyLines(shellCtx(), m.store, today(), m.opts)
		if err != nil {
			m.errorf("Failed to build layout: %v", err)
			return nil
		}
		m.info(lines...)
		return nil
	case arg == "export":
		path, err := export.Write(shellCtx(), m.store, today(), m.opts, m.exportDir)
		if err != nil {
			m.errorf("Failed to export to file: %v", err)
			return nil
		}
		m.info(fmt.Sprintf("Exported workout schedule to %s", filepath.Base(path)))
		return nil
	case strings.HasPrefix(arg, "set"):
		m.runLayoutSet(strings.Fields(arg)[1:])
		return nil
	case strings.HasPrefix(arg, "index "):
		groups, err := m.store.ListGroups(shellCtx())
		if err != nil {
			m.errorf("Failed to list groups: %v", err)
			return nil
		}
		if len(groups) == 0 {
			m.info(schedule.NoGroupsMessage)
			return nil
		}
		parts := strings.Fields(arg)
		if len(parts) != 2 {
			m.usage("layout index <NUM>")
			return nil
		}
		idx, err := strconv.Atoi(parts[1])
		if err != nil || idx < 1 || idx > len(groups) {
			m.errorf("Index %s does not exist.", parts[1])
			return nil
		}
		group := groups[idx-1]
		exercises, err := m.store.ListExercises(shellCtx(), group.ID)
		if err != nil {
			m.errorf("Failed to list exercises: %v", err)
			return nil
		}
		m.info(fmt.Sprintf("%d. %s", idx, group.Name))
		m.info(schedule.DetailLines(group, exercises, m.opts.ExerciseFormat)...)
		return nil
	}
	m.errorf("Unknown argument %q for layout.", arg)
	return nil
}

func (m *Model) runLayoutSet(args []string) {
	if len(args) == 0 {
		m.usage("layout set date <1-4> | layout set exercise display <1-4> | layout set group display on|off")
		return
	}
	switch args[0] {
	case "date":
		if len(args) != 2 {
			m.usage("layout set date <1-4>")
			return
		}
		num, err := strconv.Atoi(args[1])
		if err != nil || num < 1 || num > 4 {
			m.usage("Choose 1-4.")
			return
		}
		m.opts.DateFormat = num
		m.info(fmt.Sprintf("Date format set to option %d", num))
	case "exercise":
		if len(args) != 3 || args[1] != "display" {
			m.usage("layout set exercise display <1-4>")
			return
		}
		num, err := strconv.Atoi(args[2])
		if err != nil || num < 1 || num > 4 {
			m.errorf("Invalid exercise display format option. Choose 1-4.")
			return
		}
		m.opts.ExerciseFormat = num
		m.info(fmt.Sprintf("Exercise display format set to option %d", num))
	case "group":
		if len(args) != 3 || args[1] != "display" {
			m.usage("layout set group display on|off")
			return
		}
		switch args[2] {
		case "on":
			m.opts.ShowGroupNames = true
		case "off":
			m.opts.ShowGroupNames = false
		default:
			m.errorf("Invalid value for group display. Use 'on' or 'off'.")
			return
		}
		m.info(fmt.Sprintf("Group display set to: %s", args[2]))
	default:
		m.errorf("No %q command in `layout set` command.", args[0])
	}
}

func (m *Model) runLog(arg string) tea.Cmd {
	switch arg {
	case "add":
		m.startLogAddFlow()
		return nil
	case "display":
		data, err := m.sink.ReadAll()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				m.info("No workout log found yet.")
				return nil
			}
			m.errorf("Failed to read log: %v", err)
			return nil
		}
		if strings.TrimSpace(string(data)) == "" {
			m.info("Workout log is empty.")
			return nil
		}
		m.info(fmt.Sprintf("--- Workout Log (%s) ---", filepath.Base(m.logPath)))
		m.info(strings.TrimSuffix(string(data), "\n"))
		return nil
	}
	m.errorf("Use `log add` or `log display`.")
	return nil
}

func (m *Model) appendLog(date time.Time) {
	outcome, err := worklog.Append(shellCtx(), m.store, m.sink, date)
	if err != nil {
		m.errorf("Failed to write to log: %v", err)
		return
	}
	switch outcome {
	case worklog.NoGroups:
		m.info(schedule.NoGroupsMessage)
	case worklog.NothingScheduled:
		m.info(fmt.Sprintf("No workouts scheduled for %s (%s), nothing added.",
			date.Format("Monday"), date.Format("Mon")))
	case worklog.Logged:
		m.info(fmt.Sprintf("Workout layout for %s added to log.", date.Format("01/02/06")))
	}
}

func (m *Model) runCmd(arg string) tea.Cmd {
	if arg != "" {
		m.errorf("`cmd` takes no arguments")
		return nil
	}
	for _, cmd := range commandTable() {
		m.info(cmd.name)
	}
	return nil
}

func (m *Model) runHelp(arg string) tea.Cmd {
	if arg != "" {
		for _, cmd := range commandTable() {
			if cmd.name == arg {
				m.info(cmd.help)
				return nil
			}
		}
		m.info(fmt.Sprintf("No help for %q", arg))
		return nil
	}
	for _, cmd := range commandTable() {
		m.info(fmt.Sprintf("%-10s %s", cmd.name, cmd.summary))
	}
	return nil
}

func (m *Model) printGroupList(groups []model.Group) {
	for i, group := range groups {
		prefix := " "
		if group.ID == m.currentGroupID {
			prefix = "*"
		}
		m.info(fmt.Sprintf("%s %d. %s", prefix, i+1, group.Name))
	}
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}
