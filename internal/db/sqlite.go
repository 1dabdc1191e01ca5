// Package db provides SQLite storage for the reference task server.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/davidcortes/horario/internal/task"
)

// SQLite implements task.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

func (s *SQLite) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			priority TEXT NOT NULL DEFAULT 'medium',
			project_id INTEGER,
			project_code TEXT,
			project_name TEXT,
			start_at TEXT NOT NULL,
			end_at TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_tasks_start ON tasks(start_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// CreateTask adds a new task and fills in its ID.
func (s *SQLite) CreateTask(ctx context.Context, t *task.Task) error {
	query := `
		INSERT INTO tasks (title, priority, project_id, project_code, project_name, start_at, end_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	var projID sql.NullInt64
	var projCode, projName sql.NullString
	if t.Project != nil {
		projID = sql.NullInt64{Int64: t.Project.ID, Valid: true}
		projCode = sql.NullString{String: t.Project.Code, Valid: true}
		projName = sql.NullString{String: t.Project.Name, Valid: true}
	}

	result, err := s.db.ExecContext(ctx, query,
		t.Title,
		t.Priority,
		projID,
		projCode,
		projName,
		t.Start.UTC().Format(time.RFC3339),
		t.End.UTC().Format(time.RFC3339),
		t.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	t.ID = id

	return nil
}

const taskColumns = `id, title, priority, project_id, project_code, project_name, start_at, end_at, created_at`

// GetTask retrieves a task by ID, or nil if absent.
func (s *SQLite) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying task: %w", err)
	}
	return t, nil
}

// ListRange returns all tasks whose start falls within [from, to).
func (s *SQLite) ListRange(ctx context.Context, from, to time.Time) ([]*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE start_at >= ? AND start_at < ? ORDER BY start_at`

	rows, err := s.db.QueryContext(ctx, query,
		from.UTC().Format(time.RFC3339),
		to.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTimes moves a task to the given start/end instants and returns the
// updated row.
func (s *SQLite) UpdateTimes(ctx context.Context, id int64, start, end time.Time) (*task.Task, error) {
	if !end.After(start) {
		return nil, task.ErrEndBeforeStart
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET start_at = ?, end_at = ? WHERE id = ?`,
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating task times: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking update: %w", err)
	}
	if affected == 0 {
		return nil, task.ErrTaskNotFound
	}

	return s.GetTask(ctx, id)
}

// DeleteTask removes a task.
func (s *SQLite) DeleteTask(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete: %w", err)
	}
	if affected == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*task.Task, error) {
	var (
		t         task.Task
		projID    sql.NullInt64
		projCode  sql.NullString
		projName  sql.NullString
		startAt   string
		endAt     string
		createdAt string
	)

	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Priority,
		&projID,
		&projCode,
		&projName,
		&startAt,
		&endAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if t.Start, err = time.Parse(time.RFC3339, startAt); err != nil {
		return nil, fmt.Errorf("parsing start: %w", err)
	}
	if t.End, err = time.Parse(time.RFC3339, endAt); err != nil {
		return nil, fmt.Errorf("parsing end: %w", err)
	}
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	if projID.Valid {
		t.Project = &task.ProjectRef{
			ID:   projID.Int64,
			Code: projCode.String,
			Name: projName.String,
		}
	}

	return &t, nil
}
