package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lexhour/lexhour/internal/duration"
	"github.com/lexhour/lexhour/internal/model"
)

// Validation errors returned to the caller for display.
var (
	ErrEmpty        = errors.New("required field is empty")
	ErrClientExists = errors.New("client already exists")
	ErrMatterExists = errors.New("matter already exists for this client")
)

const (
	clientsFile = "clients.csv"
	mattersFile = "matters.csv"
	entriesFile = "time_entries.csv"
)

var (
	clientsHeader = []string{"client_name"}
	mattersHeader = []string{"client_name", "matter_name"}
	entriesHeader = []string{"date", "client", "matter", "duration", "narrative"}
)

// Store persists clients, matters and time entries as three independent
// CSV datasets under a data directory. Every mutation rewrites the whole
// file (atomically, via temp file and rename), so concurrent processes
// race with last-write-wins semantics; the mutex only serialises writers
// within one process.
type Store struct {
	dir string
	mu  sync.Mutex
}

// Open prepares a Store over dir, creating the directory and seeding any
// missing or empty dataset with its initial content.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("storage error creating data directory: %w", err)
	}
	s := &Store{dir: dir}
	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}

// datasets describes each CSV file and its seed content. Clients and
// matters get sample rows so a fresh install is immediately usable; time
// entries start header-only.
var datasets = []struct {
	file   string
	header []string
	rows   [][]string
}{
	{clientsFile, clientsHeader, [][]string{
		{"Sample Client A"},
		{"Sample Client B"},
	}},
	{mattersFile, mattersHeader, [][]string{
		{"Sample Client A", "General Matter"},
		{"Sample Client A", "Special Project"},
		{"Sample Client B", "Contract Review"},
	}},
	{entriesFile, entriesHeader, nil},
}

// seed recreates any dataset that is missing or holds no rows.
func (s *Store) seed() error {
	for _, ds := range datasets {
		path := filepath.Join(s.dir, ds.file)
		if hasRows(path, ds.header) {
			continue
		}
		if err := writeCSV(path, ds.header, ds.rows); err != nil {
			return err
		}
	}
	return nil
}

// reseedFile recreates one dataset with its seed content after a failed
// read. A broken original is backed up to .corrupt first so no data is
// silently destroyed.
func (s *Store) reseedFile(file string) error {
	path := filepath.Join(s.dir, file)
	if _, err := os.Stat(path); err == nil {
		_ = os.Rename(path, path+".corrupt")
	}
	for _, ds := range datasets {
		if ds.file == file {
			return writeCSV(path, ds.header, ds.rows)
		}
	}
	return fmt.Errorf("storage error: unknown dataset %s", file)
}

// hasRows reports whether path exists and holds more than a bare header.
func hasRows(path string, header []string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Size() > int64(len(strings.Join(header, ","))+1)
}

// readRows returns the data rows of a dataset, excluding the header.
func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("storage error parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		// A file without even a header row is as broken as a missing one.
		return nil, fmt.Errorf("storage error parsing %s: empty dataset", path)
	}
	return records[1:], nil
}

// writeCSV atomically replaces path with header + rows.
func writeCSV(path string, header []string, rows [][]string) error {
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error writing %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			f.Close()
			_ = os.Remove(tmpPath)
			return fmt.Errorf("storage error writing %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error writing %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// readRowsHealing performs a defensive read: on failure it recreates the
// failing dataset with its seed content (backing up a broken original)
// and retries once. A second failure degrades to an empty result so
// browsing flows never block on a broken file.
func (s *Store) readRowsHealing(file string) [][]string {
	path := filepath.Join(s.dir, file)
	rows, err := readRows(path)
	if err == nil {
		return rows
	}
	log.Printf("Warning: %v; reseeding", err)
	if seedErr := s.reseedFile(file); seedErr != nil {
		log.Printf("Warning: reseed failed: %v", seedErr)
		return nil
	}
	rows, err = readRows(path)
	if err != nil {
		log.Printf("Warning: %v", err)
		return nil
	}
	return rows
}

// AddClient appends a new client name. The name must be non-blank and not
// already present (case-sensitive exact match).
func (s *Store) AddClient(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("client name: %w", ErrEmpty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := model.Client{Name: name}
	rows := s.readRowsHealing(clientsFile)
	for _, row := range rows {
		if len(row) > 0 && row[0] == c.Name {
			return fmt.Errorf("%q: %w", name, ErrClientExists)
		}
	}
	rows = append(rows, clientRow(c))
	return writeCSV(filepath.Join(s.dir, clientsFile), clientsHeader, rows)
}

// Clients returns all client names in insertion order. A broken or missing
// dataset reads as empty after one reseed attempt.
func (s *Store) Clients() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.readRowsHealing(clientsFile)
	var names []string
	for _, row := range rows {
		if c, ok := clientFromRow(row); ok {
			names = append(names, c.Name)
		}
	}
	return names
}

// AddMatter appends a matter for a client. Both names must be non-blank
// and the (client, matter) pair must not already exist.
func (s *Store) AddMatter(clientName, matterName string) error {
	if strings.TrimSpace(clientName) == "" || strings.TrimSpace(matterName) == "" {
		return fmt.Errorf("client and matter name: %w", ErrEmpty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m := model.Matter{ClientName: clientName, MatterName: matterName}
	rows := s.readRowsHealing(mattersFile)
	for _, row := range rows {
		if existing, ok := matterFromRow(row); ok && existing == m {
			return fmt.Errorf("%q / %q: %w", clientName, matterName, ErrMatterExists)
		}
	}
	rows = append(rows, matterRow(m))
	return writeCSV(filepath.Join(s.dir, mattersFile), mattersHeader, rows)
}

// Matters returns the matter names recorded for clientName in insertion
// order. An empty client name yields no matters.
func (s *Store) Matters(clientName string) []string {
	if clientName == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.readRowsHealing(mattersFile)
	var names []string
	for _, row := range rows {
		if m, ok := matterFromRow(row); ok && m.ClientName == clientName {
			names = append(names, m.MatterName)
		}
	}
	return names
}

// AddTimeEntry appends a time entry unconditionally. The caller is
// responsible for validating the entry; the only failure mode here is an
// unwritable storage medium.
func (s *Store) AddTimeEntry(e model.TimeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.readRowsHealing(entriesFile)
	rows = append(rows, entryRow(e))
	return writeCSV(filepath.Join(s.dir, entriesFile), entriesHeader, rows)
}

// EntriesOn returns the entries whose date exactly matches date
// (YYYY-MM-DD), in insertion order.
func (s *Store) EntriesOn(date string) []model.TimeEntry {
	return s.filterEntries(func(e model.TimeEntry) bool {
		return e.Date == date
	})
}

// EntriesBetween returns the entries dated within [start, end] inclusive.
// Dates compare lexicographically, which is chronological for the
// canonical YYYY-MM-DD form. Callers reject inverted ranges before
// calling; the store performs no ordering check.
func (s *Store) EntriesBetween(start, end string) []model.TimeEntry {
	return s.filterEntries(func(e model.TimeEntry) bool {
		return e.Date >= start && e.Date <= end
	})
}

// EntriesForClient returns clientName's entries within [start, end]
// inclusive.
func (s *Store) EntriesForClient(clientName, start, end string) []model.TimeEntry {
	return s.filterEntries(func(e model.TimeEntry) bool {
		return e.Client == clientName && e.Date >= start && e.Date <= end
	})
}

func (s *Store) filterEntries(keep func(model.TimeEntry) bool) []model.TimeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []model.TimeEntry
	for _, row := range s.readRowsHealing(entriesFile) {
		e, ok := entryFromRow(row)
		if !ok {
			continue
		}
		if keep(e) {
			entries = append(entries, e)
		}
	}
	return entries
}

func clientRow(c model.Client) []string {
	return []string{c.Name}
}

func clientFromRow(row []string) (model.Client, bool) {
	if len(row) < 1 {
		return model.Client{}, false
	}
	return model.Client{Name: row[0]}, true
}

func matterRow(m model.Matter) []string {
	return []string{m.ClientName, m.MatterName}
}

func matterFromRow(row []string) (model.Matter, bool) {
	if len(row) < 2 {
		return model.Matter{}, false
	}
	return model.Matter{ClientName: row[0], MatterName: row[1]}, true
}

func entryRow(e model.TimeEntry) []string {
	return []string{e.Date, e.Client, e.Matter, e.Duration.String(), e.Narrative}
}

// entryFromRow decodes one dataset row. Malformed rows are skipped with a
// warning rather than failing the whole read.
func entryFromRow(row []string) (model.TimeEntry, bool) {
	if len(row) < 5 {
		return model.TimeEntry{}, false
	}
	d, err := duration.Parse(row[3])
	if err != nil {
		log.Printf("Warning: skipping entry with bad duration %q: %v", row[3], err)
		return model.TimeEntry{}, false
	}
	return model.TimeEntry{
		Date:      row[0],
		Client:    row[1],
		Matter:    row[2],
		Duration:  d,
		Narrative: row[4],
	}, true
}
