// File: internal/repository/message/message_repository_test.go
package message

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lifeboard/internal/domain"
)

func newTestRepo(t *testing.T) MessageRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.ChatMessage{}))
	return NewMessageRepository(db)
}

func TestCreate_Validation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, nil)
	assert.Error(t, err)

	_, err = repo.Create(ctx, &domain.ChatMessage{Role: "system", Content: "x"})
	assert.Error(t, err)

	_, err = repo.Create(ctx, &domain.ChatMessage{Role: domain.RoleUser, Content: "  "})
	assert.Error(t, err)

	created, err := repo.Create(ctx, &domain.ChatMessage{Role: domain.RoleUser, Content: "hello"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestFindRecent_WindowsAndOrders(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		_, err := repo.Create(ctx, &domain.ChatMessage{
			Role:    domain.RoleUser,
			Content: fmt.Sprintf("msg %d", i),
		})
		require.NoError(t, err)
	}

	recent, err := repo.FindRecent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)

	// Newest five, oldest of the window first.
	assert.Equal(t, "msg 8", recent[0].Content)
	assert.Equal(t, "msg 12", recent[4].Content)

	// Zero falls back to the default window, which covers everything here.
	all, err := repo.FindRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 12)
	assert.Equal(t, "msg 1", all[0].Content)
}

func TestCountTotal(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	count, err := repo.CountTotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, err = repo.Create(ctx, &domain.ChatMessage{Role: domain.RoleAssistant, Content: "reply"})
	require.NoError(t, err)

	count, err = repo.CountTotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
