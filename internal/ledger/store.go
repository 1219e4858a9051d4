package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store manages one CSV ledger file.
type Store struct {
	path   string
	header []string

	mu sync.Mutex
}

// NewStore creates a store for the ledger at path with the given header.
// The file is created lazily on first append or overwrite.
func NewStore(path string, header []string) *Store {
	return &Store{path: path, header: header}
}

// Path returns the live ledger file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads every data row in insertion order. A missing file yields an
// empty row set, not an error.
func (s *Store) Load() ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([][]string, error) {
	file, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(s.header)

	first, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger header: %w", err)
	}
	if !equalFields(first, s.header) {
		return nil, fmt.Errorf("ledger %s: header %v, want %v", s.path, first, s.header)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read ledger row: %w", err)
		}
		rows = append(rows, row)
	}
}

// Append adds a single row to the end of the ledger, creating the file with
// its header first if needed.
func (s *Store) Append(row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(row) != len(s.header) {
		return fmt.Errorf("append: row has %d fields, want %d", len(row), len(s.header))
	}

	writeHeader := false
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		writeHeader = true
	} else if err != nil {
		return fmt.Errorf("stat ledger: %w", err)
	}

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open ledger for append: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if writeHeader {
		if err := writer.Write(s.header); err != nil {
			return fmt.Errorf("write ledger header: %w", err)
		}
	}
	if err := writer.Write(row); err != nil {
		return fmt.Errorf("write ledger row: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush ledger: %w", err)
	}
	return file.Sync()
}

// Overwrite atomically replaces the full ledger contents with the given
// rows. The new contents are written to a temp file in the same directory
// and renamed over the live file, so a crash leaves either the old or the
// new ledger, never a partial one.
func (s *Store) Overwrite(rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, row := range rows {
		if len(row) != len(s.header) {
			return fmt.Errorf("overwrite: row %d has %d fields, want %d", i, len(row), len(s.header))
		}
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp ledger: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	writer := csv.NewWriter(tmp)
	if err := writer.Write(s.header); err != nil {
		tmp.Close()
		return fmt.Errorf("write ledger header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("write ledger rows: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp ledger: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace ledger: %w", err)
	}
	return nil
}

// Backup copies the live ledger verbatim to a sibling file tagged with
// suffix and returns the backup path. The live file is left untouched. A
// missing live ledger still produces a header-only backup so the archive is
// well-formed.
func (s *Store) Backup(suffix string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dest := backupPath(s.path, suffix)

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		data = []byte(strings.Join(s.header, ",") + "\n")
	} else if err != nil {
		return "", fmt.Errorf("read ledger for backup: %w", err)
	}

	if err := os.WriteFile(dest, data, 0644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return dest, nil
}

// backupPath derives "<base>-<suffix><ext>" beside the live file.
func backupPath(path, suffix string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return base + "-" + suffix + ext
}

func equalFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
