package repl

import (
	"os"
	"path/filepath"
	"strings"
)

const defaultHistoryFile = ".cqlgo_history"

// History is a line-per-entry statement log. Load and Save are best
// effort: a missing or unwritable file never interrupts the session.
type History struct {
	path  string
	lines []string
}

func NewHistory(path string) *History {
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, defaultHistoryFile)
		}
	}
	return &History{path: path}
}

func (h *History) Load() {
	if h.path == "" {
		return
	}
	data, err := os.ReadFile(h.path)
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			h.lines = append(h.lines, line)
		}
	}
}

func (h *History) Save() {
	if h.path == "" {
		return
	}
	_ = os.WriteFile(h.path, []byte(strings.Join(h.lines, "\n")+"\n"), 0o600)
}

func (h *History) Add(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	h.lines = append(h.lines, line)
}

func (h *History) Lines() []string {
	return h.lines
}
