//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mytasks/mytasks-server/internal/model"
	repo "github.com/mytasks/mytasks-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "mytasks_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/mytasks_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	tr := repo.NewTaskRepository(conn)

	owner := model.User{
		ID:           uuid.New(),
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "$2a$10$...digest...",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	t.Run("user_repository", func(t *testing.T) {
		saved, err := ur.Create(ctx, owner)
		require.NoError(t, err)
		require.Equal(t, owner.ID, saved.ID)

		byEmail, err := ur.GetByEmail(ctx, owner.Email)
		require.NoError(t, err)
		require.Equal(t, owner.ID, byEmail.ID)

		byID, err := ur.GetByID(ctx, owner.ID)
		require.NoError(t, err)
		require.Equal(t, owner.Email, byID.Email)

		_, err = ur.GetByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("user_repository_duplicate_email", func(t *testing.T) {
		dup := owner
		dup.ID = uuid.New()
		_, err := ur.Create(ctx, dup)
		require.ErrorIs(t, err, model.ErrDuplicateEmail)
	})

	t.Run("task_repository_global", func(t *testing.T) {
		task := model.Task{
			ID:       uuid.New(),
			Text:     "buy milk",
			DueDate:  date("2026-08-26"),
			Priority: "high",
			Folder:   model.DefaultFolder,
		}
		saved, err := tr.Create(ctx, task)
		require.NoError(t, err)
		require.Equal(t, task.ID, saved.ID)
		require.Nil(t, saved.OwnerID)
		require.False(t, saved.Completed)

		all, err := tr.GetAll(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(all), 1)

		require.NoError(t, tr.SetCompleted(ctx, task.ID, true))
		got, err := tr.GetByID(ctx, task.ID)
		require.NoError(t, err)
		require.True(t, got.Completed)

		err = tr.Update(ctx, task.ID, model.UpdateTaskParams{
			Text: "buy oat milk", DueDate: task.DueDate, Priority: "low", Folder: "errands", Completed: true,
		})
		require.NoError(t, err)
		got, err = tr.GetByID(ctx, task.ID)
		require.NoError(t, err)
		require.Equal(t, "buy oat milk", got.Text)
		require.Equal(t, "errands", got.Folder)

		require.ErrorIs(t, tr.Update(ctx, uuid.New(), model.UpdateTaskParams{
			Text: "x", DueDate: task.DueDate, Priority: "low", Folder: "errands",
		}), model.ErrNotFound)

		require.NoError(t, tr.Delete(ctx, task.ID))
		require.ErrorIs(t, tr.Delete(ctx, task.ID), model.ErrNotFound)
	})

	t.Run("task_repository_owned", func(t *testing.T) {
		ownerID := owner.ID
		task := model.Task{
			ID:       uuid.New(),
			Text:     "write report",
			DueDate:  date("2026-08-27"),
			Priority: "low",
			Folder:   "work",
			OwnerID:  &ownerID,
		}
		_, err := tr.Create(ctx, task)
		require.NoError(t, err)

		mine, err := tr.GetByOwnerID(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, mine, 1)

		stranger := uuid.New()
		err = tr.UpdateOwned(ctx, task.ID, stranger, model.UpdateTaskParams{
			Text: "x", DueDate: task.DueDate, Priority: "low", Folder: "work",
		})
		require.ErrorIs(t, err, model.ErrNotFound)

		require.ErrorIs(t, tr.DeleteOwned(ctx, task.ID, stranger), model.ErrNotFound)
		require.NoError(t, tr.DeleteOwned(ctx, task.ID, ownerID))
	})

	t.Run("task_repository_date_range_inclusive", func(t *testing.T) {
		for _, d := range []string{"2026-08-09", "2026-08-10", "2026-08-13", "2026-08-16", "2026-08-17"} {
			_, err := tr.Create(ctx, model.Task{
				ID:       uuid.New(),
				Text:     "due " + d,
				DueDate:  date(d),
				Priority: "normal",
				Folder:   model.DefaultFolder,
			})
			require.NoError(t, err)
		}

		ranged, err := tr.GetByDateRange(ctx, date("2026-08-10"), date("2026-08-16"))
		require.NoError(t, err)
		require.Len(t, ranged, 3)
		require.Equal(t, date("2026-08-10"), ranged[0].DueDate)
		require.Equal(t, date("2026-08-16"), ranged[len(ranged)-1].DueDate)
	})
}
