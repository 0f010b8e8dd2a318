package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenSQLite opens the ledger at path and applies pending migrations.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// UpsertEntry inserts the entry or, when its event is already recorded,
// rewrites it in place. The original id and created_at are kept.
func (r *SQLiteRepository) UpsertEntry(ctx context.Context, in Entry) error {
	if strings.TrimSpace(in.EventID) == "" {
		return errors.New("storage: entry event_id is required")
	}
	if in.Hours < 0 {
		return fmt.Errorf("storage: negative hours %v", in.Hours)
	}
	if in.ID == "" {
		in.ID = in.EventID
	}
	if in.BillingStatus == "" {
		in.BillingStatus = BillingPending
	}
	if in.Status == "" {
		in.Status = StatusSubmitted
	}
	if in.UpdatedAt.IsZero() {
		in.UpdatedAt = in.CreatedAt
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO entries (id, event_id, project, task_name, hours, entry_date, billing_status, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(event_id) DO UPDATE SET
			project = excluded.project,
			task_name = excluded.task_name,
			hours = excluded.hours,
			entry_date = excluded.entry_date,
			updated_at = excluded.updated_at`,
		in.ID, in.EventID, in.Project, in.TaskName, in.Hours, in.Date, in.BillingStatus, in.Status,
		mustTime(in.CreatedAt), mustTime(in.UpdatedAt),
	)
	return err
}

func (r *SQLiteRepository) GetEntryByEvent(ctx context.Context, eventID string) (Entry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, event_id, project, task_name, hours, entry_date, billing_status, status, created_at, updated_at
		FROM entries WHERE event_id = ?`, eventID)
	item, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, err
	}
	return item, nil
}

func (r *SQLiteRepository) DeleteEntryByEvent(ctx context.Context, eventID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE event_id = ?`, eventID)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListEntries(ctx context.Context, filter EntryListFilter) ([]Entry, error) {
	query := `SELECT id, event_id, project, task_name, hours, entry_date, billing_status, status, created_at, updated_at FROM entries`
	clauses := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if filter.Date != "" {
		clauses = append(clauses, "entry_date = ?")
		args = append(args, filter.Date)
	}
	if filter.Project != "" {
		clauses = append(clauses, "project = ?")
		args = append(args, filter.Project)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY entry_date ASC, created_at ASC, id ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0)
	for rows.Next() {
		item, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) TotalHours(ctx context.Context, date string) (float64, error) {
	var total sql.NullFloat64
	err := r.db.QueryRowContext(ctx, `SELECT SUM(hours) FROM entries WHERE entry_date = ?`, date).Scan(&total)
	if err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Float64, nil
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	} else if offset > 0 {
		sql += " LIMIT -1"
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var out Entry
	var created string
	var updated string
	if err := s.Scan(&out.ID, &out.EventID, &out.Project, &out.TaskName, &out.Hours, &out.Date, &out.BillingStatus, &out.Status, &created, &updated); err != nil {
		return Entry{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Entry{}, err
	}
	updatedAt, err := parseRequiredTime(updated)
	if err != nil {
		return Entry{}, err
	}
	out.CreatedAt = createdAt
	out.UpdatedAt = updatedAt
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
