package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tinytickets/tinytickets/internal/domain/asset"
	"github.com/tinytickets/tinytickets/internal/domain/ticket"
	"github.com/tinytickets/tinytickets/internal/infrastructure/database"
	"github.com/tinytickets/tinytickets/internal/infrastructure/migration"
	"github.com/tinytickets/tinytickets/internal/shared/config"
	"github.com/tinytickets/tinytickets/internal/shared/db"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

const testAcquireTimeout = 5 * time.Second

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := database.Open(&config.DatabaseConfig{
		Path:              filepath.Join(t.TempDir(), "db.sqlite"),
		MaxOpenConns:      4,
		BusyTimeoutMillis: 5000,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, migration.NewGolangMigrateStrategy(logger.NewNopLogger()).Migrate(gdb))
	return gdb
}

func newTicket(t *testing.T, assetID int64, title string, at time.Time, isClosed bool) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(assetID, title, "ann", "ann@example.com", "555", "desc", at, isClosed)
	require.NoError(t, err)
	return tk
}

func newComment(t *testing.T, ticketID int64, at time.Time, content string) *ticket.Comment {
	t.Helper()
	c, err := ticket.NewComment(ticketID, at, "bob", content)
	require.NoError(t, err)
	return c
}

func TestAssetRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAssetRepository(gdb, testAcquireTimeout, logger.NewNopLogger())
	ctx := context.Background()

	t.Run("create assigns increasing ids", func(t *testing.T) {
		pump := asset.NewAsset("Pump", "basement")
		boiler := asset.NewAsset("Boiler", "roof")
		require.NoError(t, repo.Create(ctx, pump))
		require.NoError(t, repo.Create(ctx, boiler))

		assert.Greater(t, boiler.ID(), pump.ID())

		ids, err := repo.ListIDs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{pump.ID(), boiler.ID()}, ids)
	})

	t.Run("list all orders by title", func(t *testing.T) {
		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Boiler", all[0].Title())
		assert.Equal(t, "Pump", all[1].Title())
	})

	t.Run("update replaces every column", func(t *testing.T) {
		ids, err := repo.ListIDs(ctx)
		require.NoError(t, err)

		replacement := asset.NewAsset("Pump 2", "")
		require.NoError(t, replacement.SetID(ids[0]))
		require.NoError(t, repo.Update(ctx, replacement))

		stored, err := repo.GetByID(ctx, ids[0])
		require.NoError(t, err)
		assert.Equal(t, "Pump 2", stored.Title())
		assert.Equal(t, "", stored.Description())
	})

	t.Run("update missing row is not found", func(t *testing.T) {
		ghost := asset.NewAsset("ghost", "")
		require.NoError(t, ghost.SetID(999))
		assert.True(t, errors.IsNotFoundError(repo.Update(ctx, ghost)))
	})

	t.Run("get missing row is not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("delete reports not found the second time", func(t *testing.T) {
		ids, err := repo.ListIDs(ctx)
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, ids[0]))
		assert.True(t, errors.IsNotFoundError(repo.Delete(ctx, ids[0])))
	})

	t.Run("delete all is unconditional", func(t *testing.T) {
		require.NoError(t, repo.DeleteAll(ctx))
		require.NoError(t, repo.DeleteAll(ctx))

		ids, err := repo.ListIDs(ctx)
		require.NoError(t, err)
		assert.NotNil(t, ids)
		assert.Empty(t, ids)
	})
}

func TestTicketRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb, testAcquireTimeout, logger.NewNopLogger())
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	older := newTicket(t, 1, "older", base, false)
	newer := newTicket(t, 1, "newer", base.Add(time.Hour), true)
	middle := newTicket(t, 2, "middle", base.Add(30*time.Minute), false)
	for _, tk := range []*ticket.Ticket{older, newer, middle} {
		require.NoError(t, repo.Create(ctx, tk))
	}

	t.Run("round trip keeps fields", func(t *testing.T) {
		stored, err := repo.GetByID(ctx, newer.ID())
		require.NoError(t, err)
		assert.Equal(t, "newer", stored.Title())
		assert.Equal(t, "ann@example.com", stored.CreatorMail())
		assert.Equal(t, "555", stored.CreatorPhone())
		assert.True(t, stored.IsClosed())
		assert.True(t, newer.Time().Equal(stored.Time()))
	})

	t.Run("ids in insertion order", func(t *testing.T) {
		ids, err := repo.ListIDs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{older.ID(), newer.ID(), middle.ID()}, ids)
	})

	t.Run("list all newest first", func(t *testing.T) {
		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"newer", "middle", "older"}, []string{all[0].Title(), all[1].Title(), all[2].Title()})
	})

	t.Run("list open skips closed", func(t *testing.T) {
		open, err := repo.ListOpen(ctx)
		require.NoError(t, err)
		require.Len(t, open, 2)
		assert.Equal(t, "middle", open[0].Title())
		assert.Equal(t, "older", open[1].Title())
	})

	t.Run("update can close a ticket", func(t *testing.T) {
		closed := newTicket(t, 1, "older", base, true)
		require.NoError(t, closed.SetID(older.ID()))
		require.NoError(t, repo.Update(ctx, closed))

		stored, err := repo.GetByID(ctx, older.ID())
		require.NoError(t, err)
		assert.True(t, stored.IsClosed())
	})

	t.Run("delete exactly one", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, middle.ID()))
		assert.True(t, errors.IsNotFoundError(repo.Delete(ctx, middle.ID())))
	})
}

func TestCommentRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCommentRepository(gdb, testAcquireTimeout, logger.NewNopLogger())
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	first := newComment(t, 1, base.Add(time.Hour), "first")
	second := newComment(t, 1, base, "second")
	other := newComment(t, 2, base, "other")
	for _, c := range []*ticket.Comment{first, second, other} {
		require.NoError(t, repo.Create(ctx, c))
	}

	t.Run("list all in id order", func(t *testing.T) {
		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, first.ID(), all[0].ID())
		assert.Equal(t, other.ID(), all[2].ID())
	})

	t.Run("by ticket newest first", func(t *testing.T) {
		list, err := repo.ListByTicketID(ctx, 1)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "first", list[0].Content())
		assert.Equal(t, "second", list[1].Content())

		none, err := repo.ListByTicketID(ctx, 42)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("update and delete", func(t *testing.T) {
		edited := newComment(t, 1, base, "edited")
		require.NoError(t, edited.SetID(second.ID()))
		require.NoError(t, repo.Update(ctx, edited))

		stored, err := repo.GetByID(ctx, second.ID())
		require.NoError(t, err)
		assert.Equal(t, "edited", stored.Content())

		require.NoError(t, repo.Delete(ctx, second.ID()))
		_, err = repo.GetByID(ctx, second.ID())
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestTransactionManager_ReadsTicketWithComments(t *testing.T) {
	gdb := setupTestDB(t)
	log := logger.NewNopLogger()
	tickets := NewTicketRepository(gdb, testAcquireTimeout, log)
	comments := NewCommentRepository(gdb, testAcquireTimeout, log)
	txManager := db.NewTransactionManager(gdb, testAcquireTimeout)
	ctx := context.Background()

	tk := newTicket(t, 1, "t", time.Time{}, false)
	require.NoError(t, tickets.Create(ctx, tk))
	require.NoError(t, comments.Create(ctx, newComment(t, tk.ID(), time.Time{}, "c")))

	var detail ticket.Detail
	err := txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		loaded, err := tickets.GetByID(txCtx, tk.ID())
		if err != nil {
			return err
		}
		list, err := comments.ListByTicketID(txCtx, tk.ID())
		if err != nil {
			return err
		}
		detail = ticket.Detail{Ticket: loaded, Comments: list}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, tk.ID(), detail.Ticket.ID())
	assert.Len(t, detail.Comments, 1)

	err = txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		_, err := tickets.GetByID(txCtx, 999)
		return err
	})
	assert.True(t, errors.IsNotFoundError(err))
}
