package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoback/internal/domain"
	"todoback/internal/service"
)

// stubRepo answers every call from canned fields.
type stubRepo struct {
	todo    domain.Todo
	err     error
	deleted bool

	gotPatch domain.Todo
}

func (s *stubRepo) Create(_ context.Context, t domain.Todo) (domain.Todo, error) {
	s.gotPatch = t
	if s.err != nil {
		return domain.Todo{}, s.err
	}
	t.ID = "id-1"
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return t, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (domain.Todo, error) {
	return s.todo, s.err
}

func (s *stubRepo) List(_ context.Context) ([]domain.Todo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Todo{s.todo}, nil
}

func (s *stubRepo) Update(_ context.Context, _ string, patch domain.Todo) (domain.Todo, error) {
	s.gotPatch = patch
	if s.err != nil {
		return domain.Todo{}, s.err
	}
	return patch, nil
}

func (s *stubRepo) Delete(_ context.Context, _ string) (bool, error) {
	return s.deleted, s.err
}

func (s *stubRepo) Toggle(_ context.Context, _ string) (domain.Todo, error) {
	return s.todo, s.err
}

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func TestCreate_TrimsInput(t *testing.T) {
	repo := &stubRepo{}
	svc := service.NewTodoService(repo)

	out, err := svc.Create(context.Background(), "  title  ", "  desc  ")
	require.NoError(t, err)
	assert.Equal(t, "title", out.Title)
	assert.Equal(t, "desc", out.Description)
	assert.False(t, out.Completed)
	assert.True(t, out.CreatedAt.Equal(out.UpdatedAt))
}

func TestCreate_EmptyTitleAfterTrim(t *testing.T) {
	svc := service.NewTodoService(&stubRepo{})

	_, err := svc.Create(context.Background(), "   ", "")
	assert.ErrorIs(t, err, service.ErrEmptyTitle)
}

func TestGetByID_MapsNoRowsToNotFound(t *testing.T) {
	svc := service.NewTodoService(&stubRepo{err: pgx.ErrNoRows})

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGetByID_KeepsStorageFailures(t *testing.T) {
	outage := errors.New("dial tcp: connection refused")
	svc := service.NewTodoService(&stubRepo{err: outage})

	_, err := svc.GetByID(context.Background(), "id")
	assert.ErrorIs(t, err, outage)
	assert.NotErrorIs(t, err, service.ErrNotFound)
}

func TestUpdate_MergesPatchOverExisting(t *testing.T) {
	repo := &stubRepo{todo: domain.Todo{
		ID:          "id-1",
		Title:       "old title",
		Description: "old desc",
		Completed:   false,
	}}
	svc := service.NewTodoService(repo)

	out, err := svc.Update(context.Background(), "id-1", strp("  new title  "), nil, boolp(true))
	require.NoError(t, err)
	assert.Equal(t, "new title", out.Title)
	assert.Equal(t, "old desc", out.Description, "nil field keeps current value")
	assert.True(t, out.Completed)
}

func TestUpdate_EmptyTitleRejectedBeforeStore(t *testing.T) {
	repo := &stubRepo{todo: domain.Todo{ID: "id-1", Title: "old"}}
	svc := service.NewTodoService(repo)

	_, err := svc.Update(context.Background(), "id-1", strp("   "), nil, nil)
	assert.ErrorIs(t, err, service.ErrEmptyTitle)
	assert.Empty(t, repo.gotPatch.ID, "patch must not reach the store")
}

func TestUpdate_NotFound(t *testing.T) {
	svc := service.NewTodoService(&stubRepo{err: pgx.ErrNoRows})

	_, err := svc.Update(context.Background(), "missing", strp("x"), nil, nil)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDelete_AbsentRowIsNotFound(t *testing.T) {
	svc := service.NewTodoService(&stubRepo{deleted: false})

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDelete_RemovedRow(t *testing.T) {
	svc := service.NewTodoService(&stubRepo{deleted: true})

	assert.NoError(t, svc.Delete(context.Background(), "id-1"))
}

func TestToggle_MapsNoRowsToNotFound(t *testing.T) {
	svc := service.NewTodoService(&stubRepo{err: pgx.ErrNoRows})

	_, err := svc.Toggle(context.Background(), "missing")
	assert.ErrorIs(t, err, service.ErrNotFound)
}
