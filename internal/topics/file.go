package topics

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Lines often arrive as "12. Topic Name" when pasted from a numbered list.
var lineNumbering = regexp.MustCompile(`^\d+[.)]?\s+`)

// ReadFile loads course topics from a plain-text file, one per line, in file
// order. Blank lines are skipped and leading list numbering is stripped.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open topics file: %w", err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		line = strings.TrimSpace(lineNumbering.ReplaceAllString(line, ""))
		if line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read topics file: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no topics found in %s", path)
	}
	return out, nil
}
