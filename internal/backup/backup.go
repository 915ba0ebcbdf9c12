// Package backup shells out to pg_dump and keeps a rolling window of dump files.
package backup

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"factory-backend/internal/db"
)

const DefaultKeep = 7

// Manager performs one backup per Run call. There is no queueing and no guard
// against overlapping invocations.
type Manager struct {
	dir  string
	keep int
	conn db.ConnInfo

	// dump writes the database to path; swapped out in tests.
	dump func(path string) error
}

func New(dir string, keep int, conn db.ConnInfo) *Manager {
	if keep < 1 {
		keep = DefaultKeep
	}
	m := &Manager{dir: dir, keep: keep, conn: conn}
	m.dump = m.pgDump
	return m
}

// Run creates one timestamped dump file and, only when the dump succeeded,
// prunes files beyond the retention count. On failure nothing is deleted.
func (m *Manager) Run() (string, error) {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}
	ts := strings.NewReplacer(":", "-", ".", "-").Replace(time.Now().UTC().Format("2006-01-02T15:04:05.000Z"))
	path := filepath.Join(m.dir, fmt.Sprintf("backup_%s_%s.sql", m.conn.DBName, ts))
	if err := m.dump(path); err != nil {
		return "", err
	}
	log.Printf("[BACKUP] created %s", path)
	if err := m.prune(); err != nil {
		return path, fmt.Errorf("backup written but pruning failed: %w", err)
	}
	return path, nil
}

func (m *Manager) pgDump(path string) error {
	cmd := exec.Command("pg_dump",
		"-U", m.conn.User,
		"-h", m.conn.Host,
		"-p", m.conn.Port,
		"-f", path,
		m.conn.DBName,
	)
	cmd.Env = append(os.Environ(), "PGPASSWORD="+m.conn.Password)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pg_dump failed: %v: %s", err, strings.TrimSpace(stderr.String()))
	}
	// pg_dump signals some problems on stderr without a non-zero exit
	if stderr.Len() > 0 {
		return fmt.Errorf("pg_dump reported: %s", strings.TrimSpace(stderr.String()))
	}
	return nil
}

// prune deletes every backup file beyond the retention count, newest first by
// name sort (the timestamped names sort chronologically).
func (m *Manager) prune() error {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return fmt.Errorf("list backup dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	if len(names) <= m.keep {
		return nil
	}
	for _, name := range names[m.keep:] {
		if err := os.Remove(filepath.Join(m.dir, name)); err != nil {
			return fmt.Errorf("remove old backup %s: %w", name, err)
		}
		log.Printf("[BACKUP] pruned %s", name)
	}
	return nil
}
