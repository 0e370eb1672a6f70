package search

import (
	"bytes"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ReadFile reads the whole file into memory.
func ReadFile(name string) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", errors.Wrap(err, "file not found")
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err = buf.ReadFrom(f); err != nil {
		return "", errors.Wrapf(err, "something went wrong reading %s", name)
	}
	return buf.String(), nil
}

// Lines returns the lines of contents that contain query, in file order.
func Lines(query, contents string) []string {
	if contents == "" {
		return nil
	}
	var res []string
	// a final newline ends the last line, it does not start a new one
	for _, line := range strings.Split(strings.TrimSuffix(contents, "\n"), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.Contains(line, query) {
			res = append(res, line)
		}
	}
	return res
}
