package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DefaultLookbackDays bounds the discovery scan to recently modified files.
const DefaultLookbackDays = 30

// FindRecent searches dir for files that look like bank statement exports
// modified within the last daysBack days, deduplicated and sorted. An empty
// dir means the user's Downloads folder. Returns ErrNoFiles when nothing
// matches.
func FindRecent(dir string, daysBack int) ([]string, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home dir: %w", err)
		}
		dir = filepath.Join(home, "Downloads")
	}
	if daysBack <= 0 {
		daysBack = DefaultLookbackDays
	}

	patterns := []string{
		"*statement*.csv",
		"*transaction*.csv",
		"*.ofx",
		"*.qfx",
	}
	for _, p := range DefaultParsers() {
		patterns = append(patterns, "*"+strings.ToLower(p.Bank())+"*.csv")
	}

	cutoff := time.Now().AddDate(0, 0, -daysBack)
	seen := make(map[string]struct{})
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			continue
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			if info.ModTime().Before(cutoff) {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoFiles)
	}
	sort.Strings(files)
	return files, nil
}
