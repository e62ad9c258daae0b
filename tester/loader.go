package tester

import (
	"bufio"
	"io"
	"os"
	"strings"

	"proxytester/internal/shared/logger"
	"proxytester/tester/model"
)

// LoadFromFile reads one proxy per line from path and appends every record
// that parses. Blank lines are ignored and malformed lines are logged and
// skipped; only I/O errors abort the load. Returns the number of records
// added.
func (t *Tester) LoadFromFile(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	return t.LoadFromReader(file)
}

// LoadFromReader is LoadFromFile for an already-open source.
func (t *Tester) LoadFromReader(r io.Reader) (int, error) {
	l := logger.WithComponent("Tester/Loader")

	added := 0
	lineNum := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rec, err := model.Parse(t.format, line)
		if err != nil {
			l.Warn().Int("line", lineNum).Err(err).Msg("Skipping malformed proxy line.")
			continue
		}
		t.Load(rec)
		added++
	}

	if err := scanner.Err(); err != nil {
		return added, err
	}
	return added, nil
}
