// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package bench

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ResultStore persists benchmark measurements in a SQLite database, so runs
// accumulated over time can be compared and exported.
type ResultStore struct {
	db *sql.DB
}

const resultSchema = `
CREATE TABLE IF NOT EXISTS measurements (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	engine        TEXT NOT NULL,
	workload      TEXT NOT NULL,
	op            TEXT NOT NULL,
	keys          INTEGER NOT NULL,
	duration_ns   INTEGER NOT NULL,
	nodes         INTEGER NOT NULL,
	avg_branching REAL NOT NULL,
	alloc_bytes   INTEGER NOT NULL,
	recorded_at   TIMESTAMP NOT NULL
);`

// OpenResultStore opens or creates a result database at the given path.
func OpenResultStore(path string) (*ResultStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open result database %s: %w", path, err)
	}
	if _, err := db.Exec(resultSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize result schema: %w", err)
	}
	return &ResultStore{db: db}, nil
}

// Add appends measurements to the store in a single transaction.
func (s *ResultStore) Add(measurements ...Measurement) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO measurements
		(engine, workload, op, keys, duration_ns, nodes, avg_branching, alloc_bytes, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, m := range measurements {
		_, err := stmt.Exec(m.Engine, m.Workload, m.Op, m.Keys,
			m.Duration.Nanoseconds(), m.Nodes, m.AvgBranching, m.AllocBytes,
			m.Timestamp.UTC())
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record measurement: %w", err)
		}
	}
	return tx.Commit()
}

// All returns every stored measurement, oldest first.
func (s *ResultStore) All() ([]Measurement, error) {
	rows, err := s.db.Query(`SELECT engine, workload, op, keys, duration_ns,
		nodes, avg_branching, alloc_bytes, recorded_at
		FROM measurements ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var measurements []Measurement
	for rows.Next() {
		var m Measurement
		var durationNs int64
		var recordedAt time.Time
		err := rows.Scan(&m.Engine, &m.Workload, &m.Op, &m.Keys, &durationNs,
			&m.Nodes, &m.AvgBranching, &m.AllocBytes, &recordedAt)
		if err != nil {
			return nil, err
		}
		m.Duration = time.Duration(durationNs)
		m.Timestamp = recordedAt
		measurements = append(measurements, m)
	}
	return measurements, rows.Err()
}

// ExportCSV writes all stored measurements to w in CSV form, including a
// header row.
func (s *ResultStore) ExportCSV(w io.Writer) error {
	measurements, err := s.All()
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	header := []string{"engine", "workload", "op", "keys", "duration_ns",
		"nodes", "avg_branching", "alloc_bytes", "recorded_at"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, m := range measurements {
		record := []string{
			m.Engine,
			m.Workload,
			m.Op,
			strconv.Itoa(m.Keys),
			strconv.FormatInt(m.Duration.Nanoseconds(), 10),
			strconv.Itoa(m.Nodes),
			strconv.FormatFloat(m.AvgBranching, 'f', -1, 64),
			strconv.FormatUint(m.AllocBytes, 10),
			m.Timestamp.UTC().Format(time.RFC3339Nano),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Close closes the underlying database.
func (s *ResultStore) Close() error {
	return s.db.Close()
}
