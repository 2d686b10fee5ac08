// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/galaxy-cli/circuit/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrNotFound is returned when a requested group does not exist.
var ErrNotFound = errors.New("group not found")

// ErrNameTaken is returned when a group name is already in use.
var ErrNameTaken = errors.New("group name already exists")

// Store wraps SQLite access for workout groups and their exercises.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS groups (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL,
			reps_per_cycle INTEGER NOT NULL,
			cycles_per_circuit INTEGER NOT NULL,
			days TEXT NOT NULL,
			add_reps INTEGER NOT NULL,
			add_cycles INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS exercises (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			group_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			FOREIGN KEY (group_id) REFERENCES groups(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_exercises_group_id ON exercises(group_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ListGroups returns all groups ordered by id.
func (s *Store) ListGroups(ctx context.Context) ([]model.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, reps_per_cycle, cycles_per_circuit, days, add_reps, add_cycles
		 FROM groups ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var groups []model.Group
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetGroup returns a single group by id.
func (s *Store) GetGroup(ctx context.Context, id int64) (model.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, reps_per_cycle, cycles_per_circuit, days, add_reps, add_cycles
		 FROM groups WHERE id = ?`, id)
	if err != nil {
		return model.Group{}, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return model.Group{}, err
		}
		return model.Group{}, ErrNotFound
	}
	return scanGroup(rows)
}

// ListExercises returns the exercise names of a group in insertion order.
func (s *Store) ListExercises(ctx context.Context, groupID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM exercises WHERE group_id = ? ORDER BY id`, groupID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// CreateGroup inserts a group and its exercises, returning the new group id.
func (s *Store) CreateGroup(ctx context.Context, group model.Group, exercises []string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO groups (name, reps_per_cycle, cycles_per_circuit, days, add_reps, add_cycles)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		group.Name,
		group.RepsPerCycle,
		group.CyclesPerCircuit,
		joinDays(group.Days),
		group.AddReps,
		group.AddCycles,
	)
	if err != nil {
		err = mapUniqueErr(err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err = insertExercises(ctx, tx, id, exercises); err != nil {
		return 0, err
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateGroup rewrites a group and replaces its exercise list.
func (s *Store) UpdateGroup(ctx context.Context, group model.Group, exercises []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`UPDATE groups
		 SET name = ?, reps_per_cycle = ?, cycles_per_circuit = ?, days = ?, add_reps = ?, add_cycles = ?
		 WHERE id = ?`,
		group.Name,
		group.RepsPerCycle,
		group.CyclesPerCircuit,
		joinDays(group.Days),
		group.AddReps,
		group.AddCycles,
		group.ID,
	)
	if err != nil {
		err = mapUniqueErr(err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		err = ErrNotFound
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM exercises WHERE group_id = ?`, group.ID); err != nil {
		return err
	}
	if err = insertExercises(ctx, tx, group.ID, exercises); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteGroups removes groups and their exercises.
func (s *Store) DeleteGroups(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	for _, id := range ids {
		if _, err = tx.ExecContext(ctx, `DELETE FROM exercises WHERE group_id = ?`, id); err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, `DELETE FROM groups WHERE id = ?`, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func insertExercises(ctx context.Context, tx *sql.Tx, groupID int64, names []string) error {
	if len(names) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO exercises (group_id, name) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for _, name := range names {
		if _, err := stmt.ExecContext(ctx, groupID, name); err != nil {
			return err
		}
	}
	return nil
}

func scanGroup(rows *sql.Rows) (model.Group, error) {
	var group model.Group
	var days string
	if err := rows.Scan(
		&group.ID,
		&group.Name,
		&group.RepsPerCycle,
		&group.CyclesPerCircuit,
		&days,
		&group.AddReps,
		&group.AddCycles,
	); err != nil {
		return model.Group{}, err
	}
	group.Days = splitDays(days)
	return group, nil
}

func joinDays(days []string) string {
	return strings.Join(days, ",")
}

func splitDays(days string) []string {
	var out []string
	for _, day := range strings.Split(days, ",") {
		day = strings.TrimSpace(day)
		if day == "" {
			continue
		}
		out = append(out, day)
	}
	return out
}

func mapUniqueErr(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrNameTaken
	}
	return err
}
