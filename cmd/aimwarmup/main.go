// Package main provides the CLI entrypoint for aim-warmup.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ethanolliesCODE/aim-warmup/internal/config"
	"github.com/ethanolliesCODE/aim-warmup/internal/flow"
	"github.com/ethanolliesCODE/aim-warmup/internal/model"
	"github.com/ethanolliesCODE/aim-warmup/internal/stats"
	"github.com/ethanolliesCODE/aim-warmup/internal/tui"
)

const (
	defaultFPS  = tui.DefaultFPS
	maxFPS      = 120
	logPrefix   = "aimwarmup "
	logAutoPath = "auto"
)

var (
	gameDuration  int
	gameFPS       int
	gameSeed      int64
	gameLog       string
	gameNoSummary bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "aimwarmup",
		Short:         "Terminal aim-training warmup",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGameCmd,
	}

	rootCmd.Flags().IntVar(&gameDuration, "duration", 0, "session length in minutes (5 or 10, 0 asks)")
	rootCmd.Flags().IntVar(&gameFPS, "fps", defaultFPS, "tracking animation frames per second")
	rootCmd.Flags().Int64Var(&gameSeed, "seed", 0, "random seed (0 uses the clock)")
	rootCmd.Flags().StringVar(&gameLog, "log", "", "debug log file ('auto' uses the state directory)")
	rootCmd.Flags().BoolVar(&gameNoSummary, "no-summary", false, "do not print the session summary on exit")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newGradesCmd())
	rootCmd.AddCommand(newPlanCmd())

	return rootCmd
}

func runGameCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.ApplyEnv(&fileCfg); err != nil {
		return err
	}
	applyIntConfig(cmd, "duration", &gameDuration, fileCfg.Game.Duration)
	applyIntConfig(cmd, "fps", &gameFPS, fileCfg.Game.FPS)
	applyInt64Config(cmd, "seed", &gameSeed, fileCfg.Game.Seed)
	applyStringConfig(cmd, "log", &gameLog, fileCfg.Game.Log)
	if fileCfg.Game.Summary != nil {
		noSummary := !*fileCfg.Game.Summary
		applyBoolConfig(cmd, "no-summary", &gameNoSummary, &noSummary)
	}

	cfg := model.Config{
		DurationMinutes: gameDuration,
		FPS:             gameFPS,
		Seed:            gameSeed,
		Summary:         !gameNoSummary,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	closeLog, err := setupLog(gameLog)
	if err != nil {
		return err
	}
	defer closeLog()

	program := tea.NewProgram(tui.NewModel(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if !cfg.Summary {
		return nil
	}
	m, ok := final.(*tui.Model)
	if !ok {
		return nil
	}
	session, ok := m.CompletedSession()
	if !ok {
		return nil
	}
	return printSummary(cmd.OutOrStdout(), session)
}

func printSummary(w io.Writer, session model.Session) error {
	report := stats.BuildReport(session)
	if err := stats.RenderSummary(w, report); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	if err := stats.RenderSamples(w, report, 0, 0, false); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	return nil
}

// setupLog routes the standard logger into path, or discards it when path is empty.
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	path = config.ResolveLogPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, logPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}, nil
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

func newGradesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grades",
		Short: "Show grading thresholds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := stats.RenderGradeScale(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
}

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show drill lengths per session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := stats.RenderPlan(cmd.OutOrStdout(), flow.SessionChoices, flow.Plan); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# aim-warmup configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# duration = %d           # Session length in minutes (5 or 10, 0 asks)
# fps = %d               # Tracking animation frames per second
# seed = 0               # Random seed (0 uses the clock)
# log = %q            # Debug log file ("auto" uses the state directory)
# summary = true         # Print the session summary on exit
`,
		flow.ShortSession,
		defaultFPS,
		logAutoPath,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.DurationMinutes != 0 && !flow.ValidDuration(cfg.DurationMinutes) {
		return fmt.Errorf("--duration must be 0, %d or %d", flow.ShortSession, flow.LongSession)
	}
	if cfg.FPS <= 0 || cfg.FPS > maxFPS {
		return fmt.Errorf("--fps must be between 1 and %d", maxFPS)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
