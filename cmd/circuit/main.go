// Package main provides the CLI entrypoint for circuit.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/galaxy-cli/circuit/internal/config"
	"github.com/galaxy-cli/circuit/internal/export"
	"github.com/galaxy-cli/circuit/internal/model"
	"github.com/galaxy-cli/circuit/internal/schedule"
	"github.com/galaxy-cli/circuit/internal/shell"
	"github.com/galaxy-cli/circuit/internal/store"
	"github.com/galaxy-cli/circuit/internal/worklog"
)

var (
	layoutDateFormat     int
	layoutExerciseFormat int
	layoutGroupNames     bool
	layoutOn             string

	logAddDate string

	exportDir string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := model.DefaultDisplayOptions()
	rootCmd := &cobra.Command{
		Use:           "circuit",
		Short:         "Circuit-style workout planner",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runShellCmd,
	}

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the 7-day workout layout",
		Args:  cobra.NoArgs,
		RunE:  runLayoutCmd,
	}
	layoutCmd.Flags().IntVar(&layoutDateFormat, "date-format", defaults.DateFormat, "date format (1-4)")
	layoutCmd.Flags().IntVar(&layoutExerciseFormat, "exercise-format", defaults.ExerciseFormat, "exercise format (1-4)")
	layoutCmd.Flags().BoolVar(&layoutGroupNames, "group-names", defaults.ShowGroupNames, "show group name lines")
	layoutCmd.Flags().StringVar(&layoutOn, "on", "", "start date (YYYY-MM-DD, default today)")

	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Append to or print the workout log",
	}
	logAddCmd := &cobra.Command{
		Use:   "add",
		Short: "Append a day's layout to the workout log",
		Args:  cobra.NoArgs,
		RunE:  runLogAddCmd,
	}
	logAddCmd.Flags().StringVar(&logAddDate, "date", "", "date to log (YYYY-MM-DD, default today)")
	logShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the whole workout log",
		Args:  cobra.NoArgs,
		RunE:  runLogShowCmd,
	}
	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logShowCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the weekly layout to a schedule file",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
	exportCmd.Flags().StringVar(&exportDir, "dir", ".", "output directory")

	groupsCmd := &cobra.Command{
		Use:   "groups",
		Short: "List workout groups",
		Args:  cobra.NoArgs,
		RunE:  runGroupsCmd,
	}

	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runShellCmd(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the interactive shell needs a terminal; use `circuit layout`, `circuit log`, or `circuit export` instead")
	}
	st, logPath, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	sink := worklog.NewFileSink(logPath)
	m := shell.NewModel(st, sink, logPath, ".")
	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run shell: %w", err)
	}
	return nil
}

func runLayoutCmd(cmd *cobra.Command, _ []string) error {
	opts, err := displayOptions(cmd)
	if err != nil {
		return err
	}
	start, err := startDate(layoutOn)
	if err != nil {
		return err
	}
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	lines, err := schedule.WeeklyLines(context.Background(), st, start, opts)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func runLogAddCmd(cmd *cobra.Command, _ []string) error {
	date, err := startDate(logAddDate)
	if err != nil {
		return err
	}
	st, logPath, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	sink := worklog.NewFileSink(logPath)
	outcome, err := worklog.Append(context.Background(), st, sink, date)
	if err != nil {
		return err
	}
	switch outcome {
	case worklog.NoGroups:
		fmt.Fprintln(cmd.OutOrStdout(), schedule.NoGroupsMessage)
	case worklog.NothingScheduled:
		fmt.Fprintf(cmd.OutOrStdout(), "No workouts scheduled for %s (%s), nothing added.\n",
			date.Format("Monday"), date.Format("Mon"))
	case worklog.Logged:
		fmt.Fprintf(cmd.OutOrStdout(), "Workout layout for %s added to log.\n", date.Format("01/02/06"))
	}
	return nil
}

func runLogShowCmd(cmd *cobra.Command, _ []string) error {
	logPath := resolveLogPath()
	sink := worklog.NewFileSink(logPath)
	data, err := sink.ReadAll()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(cmd.OutOrStdout(), "No workout log found yet.")
			return nil
		}
		return fmt.Errorf("failed to read log: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Workout log is empty.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "--- Workout Log (%s) ---\n", filepath.Base(logPath))
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	opts, err := displayOptions(cmd)
	if err != nil {
		return err
	}
	path, err := export.Write(context.Background(), st, today(), opts, exportDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported workout schedule to %s\n", path)
	return nil
}

func runGroupsCmd(cmd *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	ctx := context.Background()
	groups, err := st.ListGroups(ctx)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), schedule.NoGroupsMessage)
		return nil
	}

	headers := []string{"#", "Name", "Days", "Reps", "Cycles", "+Reps", "+Cycles"}
	rows := make([][]string, 0, len(groups))
	for i, group := range groups {
		days := strings.Join(group.Days, ",")
		if days == "" {
			days = "N/A"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			group.Name,
			days,
			fmt.Sprintf("%d", group.RepsPerCycle),
			fmt.Sprintf("%d", group.CyclesPerCircuit),
			fmt.Sprintf("%d", group.AddReps),
			fmt.Sprintf("%d", group.AddCycles),
		})
	}
	rightAlign := map[int]bool{0: true, 3: true, 4: true, 5: true, 6: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// displayOptions merges defaults, config-file values, and changed flags.
// Out-of-range format codes are tolerated; the renderer falls back to 1.
func displayOptions(cmd *cobra.Command) (model.DisplayOptions, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.DisplayOptions{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "date-format", &layoutDateFormat, fileCfg.Display.DateFormat)
	applyIntConfig(cmd, "exercise-format", &layoutExerciseFormat, fileCfg.Display.ExerciseFormat)
	applyBoolConfig(cmd, "group-names", &layoutGroupNames, fileCfg.Display.GroupNames)
	return model.DisplayOptions{
		DateFormat:     layoutDateFormat,
		ExerciseFormat: layoutExerciseFormat,
		ShowGroupNames: layoutGroupNames,
	}, nil
}

func openStore() (*store.Store, string, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	dbPath := config.DefaultDBPath()
	if fileCfg.Paths.DB != nil {
		dbPath = *fileCfg.Paths.DB
	}
	logPath := config.DefaultLogPath()
	if fileCfg.Paths.Log != nil {
		logPath = *fileCfg.Paths.Log
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open db: %w", err)
	}
	return st, logPath, nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func resolveLogPath() string {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		logErrf("failed to load config: %v\n", err)
		return config.DefaultLogPath()
	}
	if fileCfg.Paths.Log != nil {
		return *fileCfg.Paths.Log
	}
	return config.DefaultLogPath()
}

func startDate(value string) (time.Time, error) {
	if value == "" {
		return today(), nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return parsed, nil
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	defaults := model.DefaultDisplayOptions()
	return fmt.Sprintf(`# circuit configuration
# Uncomment a value to enable it. CLI flags override config values.

[display]
# date-format = %d        # 1=Mon 2=Monday 3=1/6 4=1/6/25
# exercise-format = %d    # 1=detailed 2=simple 3=pipe 4=compact
# group-names = %t      # Show group name lines in layouts

[paths]
# db = "%s"
# log = "%s"
`,
		defaults.DateFormat,
		defaults.ExerciseFormat,
		defaults.ShowGroupNames,
		config.DefaultDBPath(),
		config.DefaultLogPath(),
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
