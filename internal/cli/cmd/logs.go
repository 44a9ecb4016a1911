package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/urlbar/internal/cli/styles"
	"github.com/bnema/urlbar/internal/infrastructure/config"
	"github.com/bnema/urlbar/internal/logging"
)

var (
	logsFollow   bool
	logsLines    int
	logsClearAll bool
)

const (
	defaultLogsLines = 50
	followInterval   = 100 * time.Millisecond
)

var logsCmd = &cobra.Command{
	Use:   "logs [session]",
	Short: "View preview session logs",
	Long: `View the logs written by 'urlbar preview', one file per session.

Without arguments, lists all available sessions.
With a session ID (or partial match), shows logs for that session.

Examples:
  urlbar logs                 # List all sessions
  urlbar logs a7b3            # View logs for session ending in 'a7b3'
  urlbar logs -f a7b3         # Follow logs in real-time
  urlbar logs -n 100 a7b3     # Show last 100 lines`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear old log files",
	Long: `Remove old session log files.

By default, removes sessions older than logging.max_age days (default 7).
Use --all to remove all sessions.`,
	RunE: runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "remove all session logs")
}

// SessionInfo holds metadata about a log session.
type SessionInfo struct {
	SessionID string
	ShortID   string
	Path      string
	Size      int64
	ModTime   time.Time
}

func runLogs(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logDir, err := config.GetLogDir(app.Config)
	if err != nil {
		return fmt.Errorf("resolve log directory: %w", err)
	}

	if len(args) == 0 {
		return listSessions(logDir, app.Theme)
	}

	session, err := findSession(logDir, args[0])
	if err != nil {
		return err
	}

	if logsFollow {
		return tailSession(cmd.Context(), session.Path, app.Theme)
	}
	return showSession(cmd.OutOrStdout(), session.Path, logsLines, app.Theme)
}

func listSessions(logDir string, theme *styles.Theme) error {
	sessions, err := getSessions(logDir)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println(theme.Subtle.Render("No sessions found. Run 'urlbar preview' to create logs."))
		return nil
	}

	fmt.Println(theme.Title.Render("Sessions (newest first):"))
	fmt.Println()
	for i := range sessions {
		s := &sessions[i]
		fmt.Printf("  %s  %s  %s\n",
			theme.Highlight.Render(s.ShortID),
			theme.Subtle.Render(s.ModTime.Format("2006-01-02 15:04:05")),
			theme.Subtle.Render(fmt.Sprintf("(%s)", formatSize(s.Size))),
		)
	}
	fmt.Println()
	fmt.Println(theme.Subtle.Render("Use 'urlbar logs <id>' to view a session"))
	return nil
}

// getSessions returns all session log files, newest first.
func getSessions(logDir string) ([]SessionInfo, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	var sessions []SessionInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		sessionID, ok := logging.ParseSessionFilename(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		sessions = append(sessions, SessionInfo{
			SessionID: sessionID,
			ShortID:   logging.ShortSessionID(sessionID),
			Path:      filepath.Join(logDir, entry.Name()),
			Size:      info.Size(),
			ModTime:   info.ModTime(),
		})
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].ModTime.After(sessions[j].ModTime)
	})
	return sessions, nil
}

// findSession finds a session by short ID, then by partial ID match.
func findSession(logDir, query string) (*SessionInfo, error) {
	sessions, err := getSessions(logDir)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, fmt.Errorf("no sessions found")
	}

	q := strings.ToLower(strings.TrimSpace(query))
	for i := range sessions {
		if strings.EqualFold(sessions[i].ShortID, q) {
			return &sessions[i], nil
		}
	}

	var matches []SessionInfo
	for i := range sessions {
		if strings.Contains(strings.ToLower(sessions[i].SessionID), q) {
			matches = append(matches, sessions[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no session matching '%s' found", query)
	case 1:
		return &matches[0], nil
	default:
		ids := make([]string, len(matches))
		for i := range matches {
			ids[i] = matches[i].ShortID
		}
		return nil, fmt.Errorf("multiple sessions match '%s': %s", query, strings.Join(ids, ", "))
	}
}

// showSession writes the last n lines of a session log.
func showSession(w io.Writer, logPath string, n int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if n > 0 && len(lines) > n {
			lines = lines[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	for _, line := range lines {
		fmt.Fprintln(w, colorizeLogLine(line, theme))
	}
	return nil
}

// tailSession follows a session log until ctx is cancelled.
func tailSession(ctx context.Context, logPath string, theme *styles.Theme) error {
	if ctx == nil {
		ctx = context.Background()
	}
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	_, _ = file.Seek(0, io.SeekEnd)

	fmt.Println(theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Println()

	reader := bufio.NewReader(file)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		pending += chunk
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read log file: %w", err)
		}
		if err == nil {
			fmt.Println(colorizeLogLine(strings.TrimSuffix(pending, "\n"), theme))
			pending = ""
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(followInterval):
		}
	}
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil && entry.Level != "" {
		return formatJSONLogLine(entry, theme)
	}

	switch {
	case containsAny(line, " ERR ", "ERROR"):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, " WRN ", "WARN"):
		return theme.WarningStyle.Render(line)
	case containsAny(line, " DBG ", "DEBUG"):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "fatal", "panic", "error":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = theme.Subtle.Render(entry.Component+":") + " " + msg
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, msg)
}

func containsAny(s string, substrs ...string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

// clearSessions removes session logs older than maxAge days (all of them
// with all) and returns the removed sessions.
func clearSessions(logDir string, maxAge int, all bool, now time.Time) ([]SessionInfo, error) {
	sessions, err := getSessions(logDir)
	if err != nil {
		return nil, err
	}

	cutoff := now.AddDate(0, 0, -maxAge)
	var removed []SessionInfo
	var errs []error
	for i := range sessions {
		s := sessions[i]
		if !all && !s.ModTime.Before(cutoff) {
			continue
		}
		if err := os.Remove(s.Path); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.ShortID, err))
			continue
		}
		// Rotated backups of the session go with it.
		backups, _ := filepath.Glob(s.Path + ".*")
		for _, b := range backups {
			_ = os.Remove(b)
		}
		removed = append(removed, s)
	}
	return removed, errors.Join(errs...)
}

func runLogsClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logDir, err := config.GetLogDir(app.Config)
	if err != nil {
		return fmt.Errorf("resolve log directory: %w", err)
	}

	maxAge := 7
	if app.Config != nil && app.Config.Logging.MaxAge > 0 {
		maxAge = app.Config.Logging.MaxAge
	}

	removed, err := clearSessions(logDir, maxAge, logsClearAll, time.Now())
	for _, s := range removed {
		fmt.Printf("%s %s (%s)\n", app.Theme.SuccessStyle.Render(styles.IconCheck), s.ShortID, formatSize(s.Size))
	}
	if err != nil {
		fmt.Println(app.Theme.ErrorStyle.Render(err.Error()))
	}

	switch {
	case len(removed) == 0 && logsClearAll:
		fmt.Println(app.Theme.Subtle.Render("No logs to clear"))
	case len(removed) == 0:
		fmt.Println(app.Theme.Subtle.Render(fmt.Sprintf("No sessions older than %d days", maxAge)))
	default:
		fmt.Printf("\n%s\n", app.Theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d session(s)", len(removed))))
	}
	return nil
}
