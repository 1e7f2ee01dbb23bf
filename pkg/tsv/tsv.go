// Package tsv reads and writes header-addressed tab-separated tables.
//
// A table file is UTF-8 text: the first line is a tab-joined column
// header, every following line is one record with its fields in header
// order. The format has no quoting or escaping, so field values must
// not contain tabs or newlines; the writer rejects values that do.
package tsv

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/biopragmatics/biomap/pkg/errors"
)

// Record maps a column name to its string value for one table row.
type Record map[string]string

// Mode selects how Write treats an existing file.
type Mode int

// Write modes.
const (
	// Overwrite replaces the file with a header line followed by the rows.
	Overwrite Mode = iota
	// Append adds rows to the end of the file and writes no header.
	Append
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case Overwrite:
		return "overwrite"
	case Append:
		return "append"
	}
	return "unknown"
}

// Load parses the table at path. The first line defines the column
// names; each subsequent line becomes one Record. A row whose field
// count differs from the header is a parse error and no partial table
// is returned.
func Load(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.WrapIO("read", path, err)
		}
		return nil, errors.NewParseError(path, 0, "missing header line", nil)
	}
	header := strings.Split(trimNewline(scanner.Text()), "\t")

	var records []Record
	line := 1
	for scanner.Scan() {
		line++
		fields := strings.Split(trimNewline(scanner.Text()), "\t")
		if len(fields) != len(header) {
			return nil, errors.NewParseError(path, line,
				fmt.Sprintf("expected %d fields, got %d", len(header), len(fields)), nil)
		}
		record := make(Record, len(header))
		for i, name := range header {
			record[name] = fields[i]
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return records, nil
}

// Write persists records to path with fields in header order. Overwrite
// mode replaces the file through a temporary file and rename so a crash
// never leaves a half-written table; Append mode adds rows directly to
// the end of the file and omits the header.
func Write(header []string, records []Record, path string, mode Mode) error {
	lines, err := renderRows(header, records)
	if err != nil {
		return err
	}

	if mode == Append {
		return appendRows(path, lines)
	}
	return overwrite(path, append([]string{strings.Join(header, "\t")}, lines...))
}

// renderRows serializes records into tab-joined lines, validating that
// every header column is present and no value embeds the delimiter.
func renderRows(header []string, records []Record) ([]string, error) {
	lines := make([]string, 0, len(records))
	for _, record := range records {
		fields := make([]string, len(header))
		for i, name := range header {
			value, ok := record[name]
			if !ok {
				return nil, errors.NewValidationError(name, record, "record is missing column")
			}
			if strings.ContainsAny(value, "\t\n\r") {
				return nil, errors.NewValidationError(name, value, "value contains a tab or newline")
			}
			fields[i] = value
		}
		lines = append(lines, strings.Join(fields, "\t"))
	}
	return lines, nil
}

func appendRows(path string, lines []string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.WrapIO("write", path, err)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(file, line); err != nil {
			file.Close()
			return errors.WrapIO("write", path, err)
		}
	}
	if err := file.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	return nil
}

func overwrite(path string, lines []string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	// CreateTemp uses 0600; tables are ordinary shared files.
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.WrapIO("create", tmp.Name(), err)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(tmp, line); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return errors.WrapIO("write", tmp.Name(), err)
		}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.WrapIO("close", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

// trimNewline drops a trailing carriage return left by CRLF files.
func trimNewline(s string) string {
	return strings.TrimSuffix(s, "\r")
}
