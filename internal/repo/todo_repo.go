package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	dom "todoback/internal/domain"
)

// TodoRepo is the persistence gateway. All reads and writes of todos go
// through this interface; absence surfaces as pgx.ErrNoRows (mapped to a
// sentinel one layer up), never as a generic failure.
type TodoRepo interface {
	Create(ctx context.Context, t dom.Todo) (dom.Todo, error)
	GetByID(ctx context.Context, id string) (dom.Todo, error)
	List(ctx context.Context) ([]dom.Todo, error)
	Update(ctx context.Context, id string, patch dom.Todo) (dom.Todo, error)
	Delete(ctx context.Context, id string) (bool, error)
	Toggle(ctx context.Context, id string) (dom.Todo, error)
}

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	query := `
		INSERT INTO todos (id, title, description)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, completed, created_at, updated_at`
	var out dom.Todo
	err := r.db.QueryRow(ctx, query, uuid.NewString(), t.Title, t.Description).Scan(
		&out.ID, &out.Title, &out.Description, &out.Completed,
		&out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGTodoRepo) GetByID(ctx context.Context, id string) (dom.Todo, error) {
	query := `
		SELECT id, title, description, completed, created_at, updated_at
		FROM todos WHERE id = $1`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PGTodoRepo) List(ctx context.Context) ([]dom.Todo, error) {
	query := `
		SELECT id, title, description, completed, created_at, updated_at
		FROM todos ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTodoRepo) Update(ctx context.Context, id string, patch dom.Todo) (dom.Todo, error) {
	query := `
		UPDATE todos SET title = $2, description = $3, completed = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, description, completed, created_at, updated_at`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id, patch.Title, patch.Description, patch.Completed).Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Delete hard-removes the row. The bool reports whether a row was removed,
// so callers can tell absence apart from a storage failure.
func (r *PGTodoRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Toggle flips completed in a single statement. Concurrent togglers race at
// last-write-wins granularity; no application-level locking.
func (r *PGTodoRepo) Toggle(ctx context.Context, id string) (dom.Todo, error) {
	query := `
		UPDATE todos SET completed = NOT completed, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, description, completed, created_at, updated_at`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}
