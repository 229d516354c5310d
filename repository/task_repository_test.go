package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/qrave1/task-list/database"
	"github.com/qrave1/task-list/entity"
)

func newTestRepository(t *testing.T) *TaskRepositoryImpl {
	t.Helper()

	db, err := database.Open(t.Context(), database.Config{
		Path:        filepath.Join(t.TempDir(), "tasks.db"),
		BusyTimeout: time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, db.Close()) })

	repo, err := NewTaskRepositoryImpl(db)
	require.NoError(t, err)

	return repo
}

func testTasks(n int) []entity.Task {
	base := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

	tasks := make([]entity.Task, 0, n)
	for i := range n {
		tasks = append(tasks, entity.Task{
			ID:          fmt.Sprintf("id-%d", i),
			Description: fmt.Sprintf("description %d", i),
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		})
	}

	return tasks
}

func insertTasks(t *testing.T, repo *TaskRepositoryImpl, tasks []entity.Task) {
	t.Helper()

	for _, task := range tasks {
		p, err := repo.Create(t.Context(), task)
		require.NoError(t, err)
		require.True(t, p.Succeeded())
	}
}

func TestNewTaskRepositoryImpl(t *testing.T) {
	t.Run("Should reject nil database", func(t *testing.T) {
		_, err := NewTaskRepositoryImpl(nil)
		assert.ErrorIs(t, err, ErrNilDB)
	})
}

func TestTaskRepositoryImpl_FindAll(t *testing.T) {
	t.Run("Should return an empty list for an empty table", func(t *testing.T) {
		repo := newTestRepository(t)

		tasks, err := repo.FindAll(t.Context())
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})

	t.Run("Should order by created_at descending", func(t *testing.T) {
		repo := newTestRepository(t)
		tasks := testTasks(5)
		// вставляем вразнобой, порядок должен определяться только created_at
		insertTasks(t, repo, []entity.Task{tasks[2], tasks[0], tasks[4], tasks[1], tasks[3]})

		got, err := repo.FindAll(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []entity.Task{tasks[4], tasks[3], tasks[2], tasks[1], tasks[0]}, got)
	})

	t.Run("Should break ties by description descending", func(t *testing.T) {
		repo := newTestRepository(t)
		at := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
		a := entity.Task{ID: "a", Description: "alpha", CreatedAt: at}
		b := entity.Task{ID: "b", Description: "bravo", CreatedAt: at}
		insertTasks(t, repo, []entity.Task{a, b})

		got, err := repo.FindAll(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []entity.Task{b, a}, got)
	})
}

func TestTaskRepositoryImpl_Create(t *testing.T) {
	t.Run("Should persist a new task", func(t *testing.T) {
		repo := newTestRepository(t)
		task := testTasks(1)[0]

		p, err := repo.Create(t.Context(), task)
		require.NoError(t, err)
		assert.Equal(t, entity.NewSuccess(task), p)

		got, err := repo.FindAll(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []entity.Task{task}, got)
	})

	t.Run("Should fail on duplicate description", func(t *testing.T) {
		repo := newTestRepository(t)
		task := testTasks(1)[0]
		insertTasks(t, repo, []entity.Task{task})

		p, err := repo.Create(t.Context(), entity.Task{
			ID:          "another id",
			Description: task.Description,
			CreatedAt:   time.Now().UTC(),
		})
		require.NoError(t, err)
		assert.Equal(t, entity.NewFailure(ErrTaskAlreadyExists), p)
	})

	t.Run("Should fail on duplicate id", func(t *testing.T) {
		repo := newTestRepository(t)
		task := testTasks(1)[0]
		insertTasks(t, repo, []entity.Task{task})

		p, err := repo.Create(t.Context(), entity.Task{
			ID:          task.ID,
			Description: "another description",
			CreatedAt:   time.Now().UTC(),
		})
		require.NoError(t, err)
		assert.Equal(t, entity.NewFailure(ErrTaskAlreadyExists), p)
	})

	t.Run("Should fail when both id and description collide", func(t *testing.T) {
		repo := newTestRepository(t)
		task := testTasks(1)[0]
		insertTasks(t, repo, []entity.Task{task})

		p, err := repo.Create(t.Context(), task)
		require.NoError(t, err)
		assert.Equal(t, entity.NewFailure(ErrTaskAlreadyExists), p)

		got, err := repo.FindAll(t.Context())
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Should let only one concurrent create win", func(t *testing.T) {
		repo := newTestRepository(t)

		const workers = 16
		results := make([]entity.Presenter, workers)

		g, ctx := errgroup.WithContext(t.Context())
		for i := range workers {
			g.Go(func() error {
				p, err := repo.Create(ctx, entity.NewTask("contended description"))
				results[i] = p
				return err
			})
		}
		require.NoError(t, g.Wait())

		var succeeded int
		for _, p := range results {
			if p.Succeeded() {
				succeeded++
			} else {
				assert.Equal(t, entity.NewFailure(ErrTaskAlreadyExists), p)
			}
		}
		assert.Equal(t, 1, succeeded)

		got, err := repo.FindAll(t.Context())
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Should surface storage faults as errors", func(t *testing.T) {
		repo := newTestRepository(t)
		require.NoError(t, repo.db.Close())

		p, err := repo.Create(context.Background(), testTasks(1)[0])
		assert.Error(t, err)
		assert.Nil(t, p)
	})
}

func TestTaskRepositoryImpl_Delete(t *testing.T) {
	t.Run("Should delete an existing task and return it", func(t *testing.T) {
		repo := newTestRepository(t)
		tasks := testTasks(3)
		insertTasks(t, repo, tasks)

		p, err := repo.Delete(t.Context(), tasks[0].ID)
		require.NoError(t, err)
		assert.Equal(t, entity.NewSuccess(tasks[0]), p)

		got, err := repo.FindAll(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []entity.Task{tasks[2], tasks[1]}, got)
	})

	t.Run("Should fail when the task does not exist", func(t *testing.T) {
		repo := newTestRepository(t)
		insertTasks(t, repo, testTasks(1))

		p, err := repo.Delete(t.Context(), "any id")
		require.NoError(t, err)
		assert.Equal(t, entity.NewFailure(ErrTaskNotFound), p)

		got, err := repo.FindAll(t.Context())
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Should fail when deleting twice", func(t *testing.T) {
		repo := newTestRepository(t)
		task := testTasks(1)[0]
		insertTasks(t, repo, []entity.Task{task})

		p, err := repo.Delete(t.Context(), task.ID)
		require.NoError(t, err)
		require.True(t, p.Succeeded())

		p, err = repo.Delete(t.Context(), task.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.NewFailure(ErrTaskNotFound), p)
	})
}
