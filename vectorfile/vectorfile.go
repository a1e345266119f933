// Package vectorfile reads test vector tables from disk: UTF-8 text, one
// row per line, fields separated by tabs, with row 0 a header of type tags.
package vectorfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Rows with container arguments can get very large, so the line scanner
// does not keep bufio's default token limit.
const maxLineBytes = 16 * 1024 * 1024

// File is one parsed vector table. Header holds the type tags; Rows hold
// the raw string fields of each data row, still undecoded.
type File struct {
	Name   string
	Header []string
	Rows   [][]string
}

// ReadFile reads and parses the table at path. The file's base name without
// extension becomes the suite name.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(name, f)
}

// Parse reads a table from r. Blank lines are ignored; a table with no
// header row is an error. Fields cannot contain tabs, so no escaping is
// involved.
func Parse(name string, r io.Reader) (*File, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]string
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, "\t"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: vector file has no header row", name)
	}
	return &File{Name: name, Header: rows[0], Rows: rows[1:]}, nil
}
