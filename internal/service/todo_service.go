package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	dom "todoback/internal/domain"
	"todoback/internal/repo"
)

var (
	// ErrNotFound signals an absent id. It is a sentinel, not a failure:
	// callers translate it to 404 and must never confuse it with a storage
	// outage, which comes back as any other error.
	ErrNotFound = errors.New("not found")

	// ErrEmptyTitle rejects titles that are empty after trimming.
	ErrEmptyTitle = errors.New("title must not be empty")
)

type TodoService struct {
	repo repo.TodoRepo
}

// NewTodoService creates a TodoService over the given gateway.
func NewTodoService(r repo.TodoRepo) *TodoService {
	return &TodoService{repo: r}
}

func (s *TodoService) Create(ctx context.Context, title, desc string) (dom.Todo, error) {
	title = strings.TrimSpace(title)
	desc = strings.TrimSpace(desc)

	if title == "" {
		return dom.Todo{}, ErrEmptyTitle
	}

	return s.repo.Create(ctx, dom.Todo{
		Title:       title,
		Description: desc,
	})
}

func (s *TodoService) List(ctx context.Context) ([]dom.Todo, error) {
	return s.repo.List(ctx)
}

func (s *TodoService) GetByID(ctx context.Context, id string) (dom.Todo, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	return t, nil
}

// Update applies a partial patch over the stored entity. Nil fields keep
// their current value.
func (s *TodoService) Update(ctx context.Context, id string, title, desc *string, completed *bool) (dom.Todo, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	patch := existing
	if title != nil {
		patch.Title = strings.TrimSpace(*title)
		if patch.Title == "" {
			return dom.Todo{}, ErrEmptyTitle
		}
	}
	if desc != nil {
		patch.Description = strings.TrimSpace(*desc)
	}
	if completed != nil {
		patch.Completed = *completed
	}
	t, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *TodoService) Toggle(ctx context.Context, id string) (dom.Todo, error) {
	t, err := s.repo.Toggle(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	return t, nil
}
