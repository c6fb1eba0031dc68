package source

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// UsageSource reports identifiers of recently used applications.
type UsageSource interface {
	RecentlyUsed(ctx context.Context) ([]string, error)
}

// ActivitySource merges two detectors: user service units from the systemd
// journal and catalog keywords found in the desktop recently-used record.
// Each detector is best-effort; a failing one logs a warning and contributes
// nothing. Results are deduplicated and sorted.
type ActivitySource struct {
	Window           time.Duration // journal lookback
	RecentlyUsedPath string        // recently-used.xbel path, "" for the default
	Keywords         []string      // application keywords matched against the record
	Logger           *zap.Logger
}

func (s *ActivitySource) RecentlyUsed(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})

	if err := s.fromJournal(ctx, seen); err != nil {
		s.Logger.Warn("reading app usage from systemd journal failed", zap.Error(err))
	}
	if err := s.fromRecentFiles(seen); err != nil {
		s.Logger.Warn("reading recently-used record failed", zap.Error(err))
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *ActivitySource) fromJournal(ctx context.Context, seen map[string]struct{}) error {
	window := s.Window
	if window <= 0 {
		window = 24 * time.Hour
	}
	since := fmt.Sprintf("-%ds", int(window.Seconds()))
	out, err := exec.CommandContext(ctx, "journalctl", "--user", "--since", since, "--output=json").Output()
	if err != nil {
		return fmt.Errorf("run journalctl: %w", err)
	}
	for _, name := range parseJournalUnits(strings.NewReader(string(out))) {
		seen[name] = struct{}{}
	}
	return nil
}

// parseJournalUnits extracts user service names from journalctl JSON lines.
// Malformed lines are skipped, matching journalctl's loose output contract.
func parseJournalUnits(r io.Reader) []string {
	var names []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var entry struct {
			Unit string `json:"_SYSTEMD_UNIT"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		if strings.HasSuffix(entry.Unit, ".service") {
			names = append(names, strings.TrimSuffix(entry.Unit, ".service"))
		}
	}
	return names
}

func (s *ActivitySource) fromRecentFiles(seen map[string]struct{}) error {
	path := s.RecentlyUsedPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, ".local", "share", "recently-used.xbel")
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	for _, name := range matchKeywords(string(data), s.Keywords) {
		seen[name] = struct{}{}
	}
	return nil
}

// matchKeywords does a plain substring scan of the bookmark record. The xbel
// file references documents, not applications, so keyword containment is the
// usable signal here rather than a full XML parse.
func matchKeywords(content string, keywords []string) []string {
	var names []string
	for _, keyword := range keywords {
		if strings.Contains(content, keyword) {
			names = append(names, keyword)
		}
	}
	return names
}
