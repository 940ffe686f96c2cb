// Package main provides the CLI entrypoint for dozwatch.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/dozwatch/internal/chart"
	"github.com/verte-zerg/dozwatch/internal/config"
	"github.com/verte-zerg/dozwatch/internal/dozenal"
	"github.com/verte-zerg/dozwatch/internal/model"
	"github.com/verte-zerg/dozwatch/internal/tui"
)

const (
	defaultTimezone   = "Local"
	defaultMinuteMode = "cyclic"
	defaultChartMax   = dozenal.MaxTwoDigit
)

var (
	watchTimezone   string
	watchInfo       string
	watchMinuteMode string
	watchSeconds    bool
	watchBig        bool
	watchAccent     string

	verbose bool
	logFile string

	nowAt string

	convertPair        bool
	convertFromDozenal bool

	chartMax  int
	chartCols int
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dozwatch",
		Short:         "Dozenal watch face for the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runWatchCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&watchTimezone, "tz", defaultTimezone, "IANA timezone, Local or UTC")
	flags.StringVar(&watchInfo, "info", dozenal.DefaultInfo, "static line shown under the year")
	flags.StringVar(&watchMinuteMode, "minute-mode", defaultMinuteMode, "minute field: cyclic (00-0E) or hour (00-5E)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&logFile, "log-file", "", "write logs to a file instead of stderr")
	flags.Lookup("log-file").NoOptDefVal = config.DefaultLogPath()

	rootCmd.Flags().BoolVar(&watchSeconds, "seconds", false, "show the countdown to the next refresh")
	rootCmd.Flags().BoolVar(&watchBig, "big", true, "draw the time with block digits")
	rootCmd.Flags().StringVar(&watchAccent, "accent", tui.DefaultAccent, "colour of the time line")

	rootCmd.AddCommand(newNowCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newChartCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runWatchCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadWatchConfig(cmd)
	if err != nil {
		return err
	}

	// The watch owns the terminal, so logs only go somewhere when asked to.
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	m, err := tui.NewModel(cfg, tui.RealClock{}, logger)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newNowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the dozenal time once",
		Args:  cobra.NoArgs,
		RunE:  runNowCmd,
	}
	cmd.Flags().StringVar(&nowAt, "at", "", "convert this RFC3339 time instead of now")
	return cmd
}

func runNowCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadWatchConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := openLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	at := time.Now()
	if nowAt != "" {
		at, err = time.Parse(time.RFC3339, nowAt)
		if err != nil {
			return fmt.Errorf("invalid --at value: %w", err)
		}
	}
	at = at.In(cfg.Location)

	mode, err := dozenal.ParseMode(cfg.MinuteMode)
	if err != nil {
		return err
	}
	out, err := dozenal.NewFormatter(dozenal.Options{Mode: mode, Info: cfg.Info}).Format(model.CivilTimeFrom(at))
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", at.Format(time.RFC3339), err)
	}
	logger.Debug("converted", "at", at.Format(time.RFC3339), "mode", mode)

	w := cmd.OutOrStdout()
	styled := chart.UseColor(w)
	for _, line := range [][2]string{
		{"time", out.Time},
		{"date", out.Date},
		{"year", out.Year},
		{"info", out.Info},
	} {
		label, value := line[0], line[1]
		if styled {
			label = labelStyle.Render(label)
			value = valueStyle.Render(value)
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", label, value); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <number>...",
		Short: "Convert decimal numbers to dozenal",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runConvertCmd,
	}
	cmd.Flags().BoolVar(&convertPair, "pair", false, "zero-padded two-digit output (0-143)")
	cmd.Flags().BoolVar(&convertFromDozenal, "from-dozenal", false, "decode dozenal input to decimal")
	return cmd
}

func runConvertCmd(cmd *cobra.Command, args []string) error {
	if convertPair && convertFromDozenal {
		return fmt.Errorf("--pair and --from-dozenal are mutually exclusive")
	}
	for _, arg := range args {
		result, err := convertArg(strings.TrimSpace(arg))
		if err != nil {
			return fmt.Errorf("failed to convert %q: %w", arg, err)
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), result); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func convertArg(arg string) (string, error) {
	if convertFromDozenal {
		v, err := dozenal.Parse(arg)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil
	}
	v, err := strconv.Atoi(arg)
	if err != nil {
		return "", fmt.Errorf("not a decimal integer")
	}
	if convertPair {
		return dozenal.ConvertTwoDigit(v)
	}
	return dozenal.ConvertYear(v)
}

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print the decimal to dozenal pair table",
		Args:  cobra.NoArgs,
		RunE:  runChartCmd,
	}
	cmd.Flags().IntVar(&chartMax, "max", defaultChartMax, "largest value in the table")
	cmd.Flags().IntVar(&chartCols, "cols", 0, "column groups (default: fit terminal width)")
	return cmd
}

func runChartCmd(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	if chartCols < 0 {
		return fmt.Errorf("--cols must be >= 0")
	}
	cols := chartCols
	if cols == 0 {
		cols = chart.ColumnsFor(chart.TerminalWidth(w), chartMax)
	}
	lines, err := chart.PairLines(chartMax, cols)
	if err != nil {
		return err
	}
	return chart.Write(w, lines, chart.UseColor(w))
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

// loadWatchConfig merges the config file under the flags of cmd.
func loadWatchConfig(cmd *cobra.Command) (model.WatchConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.WatchConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "tz", &watchTimezone, fileCfg.Watch.Timezone)
	applyStringConfig(cmd, "info", &watchInfo, fileCfg.Watch.Info)
	applyStringConfig(cmd, "minute-mode", &watchMinuteMode, fileCfg.Watch.MinuteMode)
	applyBoolConfig(cmd, "seconds", &watchSeconds, fileCfg.Watch.Seconds)
	applyBoolConfig(cmd, "big", &watchBig, fileCfg.Watch.Big)
	applyStringConfig(cmd, "accent", &watchAccent, fileCfg.Watch.Accent)

	cfg := model.WatchConfig{
		Info:       watchInfo,
		MinuteMode: watchMinuteMode,
		Seconds:    watchSeconds,
		Big:        watchBig,
		Accent:     watchAccent,
	}
	if err := validateConfig(cfg); err != nil {
		return model.WatchConfig{}, err
	}
	loc, err := config.LoadLocation(watchTimezone)
	if err != nil {
		return model.WatchConfig{}, fmt.Errorf("--tz: %w", err)
	}
	cfg.Location = loc
	return cfg, nil
}

// openLogger builds the CLI logger. It writes to fallback unless --log-file is set.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() {
			if cerr := f.Close(); cerr != nil {
				// Best-effort close of the log file.
				_ = cerr
			}
		}
	}
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "dozwatch",
		Level:           log.WarnLevel,
		ReportTimestamp: logFile != "",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag == nil || flag.Changed {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag == nil || flag.Changed {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# dozwatch configuration
# Uncomment a value to enable it. CLI flags override config values.

[watch]
# timezone = %q        # IANA timezone, "Local" or "UTC"
# info = %q   # Static line under the year
# minute-mode = %q     # cyclic (00-0E) or hour (00-5E)
# seconds = false           # Show the countdown to the next refresh
# big = true                # Draw the time with block digits
# accent = %q       # Colour of the time line
`,
		defaultTimezone,
		dozenal.DefaultInfo,
		defaultMinuteMode,
		tui.DefaultAccent,
	)
}

func validateConfig(cfg model.WatchConfig) error {
	if _, err := dozenal.ParseMode(cfg.MinuteMode); err != nil {
		return fmt.Errorf("--minute-mode must be cyclic or hour")
	}
	if strings.TrimSpace(cfg.Info) == "" {
		return fmt.Errorf("--info must not be empty")
	}
	if !validColor(cfg.Accent) {
		return fmt.Errorf("--accent must be #RRGGBB or an ANSI colour number")
	}
	return nil
}

func validColor(s string) bool {
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return false
		}
		_, err := strconv.ParseUint(s[1:], 16, 32)
		return err == nil
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
