package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbncursed/vkr/board-service/internal/models"
	"github.com/vbncursed/vkr/board-service/internal/service"
)

func TestStore_BoardsKeepInsertionOrder(t *testing.T) {
	s := New()
	ctx := context.Background()
	for _, name := range []string{"b", "a", "c"} {
		require.NoError(t, s.InsertBoard(ctx, models.Board{Name: name}))
	}
	assert.ErrorIs(t, s.InsertBoard(ctx, models.Board{Name: "a"}), service.ErrBoardExists)

	require.NoError(t, s.DeleteBoard(ctx, "a"))
	bs, err := s.ListBoards(ctx)
	require.NoError(t, err)
	require.Len(t, bs, 2)
	assert.Equal(t, "b", bs[0].Name)
	assert.Equal(t, "c", bs[1].Name)
}

func TestStore_LastPostTime(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.InsertBoard(ctx, models.Board{Name: "b"}))

	_, ok, err := s.LastPostTime(ctx, "b", "1.1.1.1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.InsertThread(ctx, "b", models.Post{ID: 1, Thread: 1, Date: 100, IP: "1.1.1.1"}))
	require.NoError(t, s.InsertReply(ctx, "b", models.Post{ID: 2, Thread: 1, Date: 300, IP: "1.1.1.1"}, true))
	require.NoError(t, s.InsertReply(ctx, "b", models.Post{ID: 3, Thread: 1, Date: 500, IP: "2.2.2.2"}, false))

	last, ok, err := s.LastPostTime(ctx, "b", "1.1.1.1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.EqualValues(t, 300, last)

	th, err := s.GetThread(ctx, "b", 1)
	require.NoError(t, err)
	assert.EqualValues(t, 300, th.LastBump)

	id, err := s.NextPostID(ctx, "b")
	require.NoError(t, err)
	assert.EqualValues(t, 4, id)
}

func TestStore_DeleteThreadHidesPosts(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.InsertBoard(ctx, models.Board{Name: "b"}))
	require.NoError(t, s.InsertThread(ctx, "b", models.Post{ID: 1, Thread: 1}))
	require.NoError(t, s.InsertReply(ctx, "b", models.Post{ID: 2, Thread: 1}, true))
	require.NoError(t, s.InsertThread(ctx, "b", models.Post{ID: 3, Thread: 3}))

	require.NoError(t, s.DeletePost(ctx, "b", 1))
	_, err := s.GetThread(ctx, "b", 1)
	assert.ErrorIs(t, err, service.ErrThreadNotFound)
	posts, err := s.ListPosts(ctx, "b", 1)
	require.NoError(t, err)
	assert.Empty(t, posts)
	ths, err := s.ListThreads(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []models.Thread{{ID: 3}}, ths)

	// удаленные посты продолжают считаться
	id, err := s.NextPostID(ctx, "b")
	require.NoError(t, err)
	assert.EqualValues(t, 4, id)

	assert.ErrorIs(t, s.InsertReply(ctx, "b", models.Post{ID: 9, Thread: 1}, true), service.ErrThreadNotFound)
	assert.ErrorIs(t, s.SetSticky(ctx, "b", 1, true), service.ErrThreadNotFound)
	assert.ErrorIs(t, s.DeletePost(ctx, "b", 1), service.ErrPostNotFound)
	assert.ErrorIs(t, s.DeletePost(ctx, "b", 2), service.ErrPostNotFound)
	assert.ErrorIs(t, s.DeletePost(ctx, "zz", 1), service.ErrBoardNotFound)
}

func TestStore_DeleteReply(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.InsertBoard(ctx, models.Board{Name: "b"}))
	require.NoError(t, s.InsertThread(ctx, "b", models.Post{ID: 1, Thread: 1, Date: 10, IP: "1.1.1.1"}))
	require.NoError(t, s.InsertReply(ctx, "b", models.Post{ID: 2, Thread: 1, Date: 20, IP: "1.1.1.1"}, true))

	require.NoError(t, s.DeletePost(ctx, "b", 2))
	posts, err := s.ListPosts(ctx, "b", 1)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.EqualValues(t, 1, posts[0].ID)
	assert.ErrorIs(t, s.DeletePost(ctx, "b", 2), service.ErrPostNotFound)

	// темп постинга учитывает и удаленный пост
	last, ok, err := s.LastPostTime(ctx, "b", "1.1.1.1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.EqualValues(t, 20, last)
}

func TestStore_InsertThreadTakenID(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.InsertBoard(ctx, models.Board{Name: "b"}))
	require.NoError(t, s.InsertThread(ctx, "b", models.Post{ID: 1, Thread: 1, Date: 10}))
	require.NoError(t, s.SetSticky(ctx, "b", 1, true))

	assert.ErrorIs(t, s.InsertThread(ctx, "b", models.Post{ID: 1, Thread: 1, Date: 20}), service.ErrPostIDTaken)
	th, err := s.GetThread(ctx, "b", 1)
	require.NoError(t, err)
	assert.Equal(t, models.Thread{ID: 1, Sticky: true, LastBump: 10}, th)
	posts, err := s.ListPosts(ctx, "b", 1)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestStore_Users(t *testing.T) {
	s := New()
	ctx := context.Background()
	u := models.AdminUser{ID: "1", Ident: "root", Role: models.RoleAdministrator}
	require.NoError(t, s.InsertUser(ctx, u))
	assert.ErrorIs(t, s.InsertUser(ctx, u), service.ErrUserExists)

	got, err := s.GetUserByIdent(ctx, "root")
	require.NoError(t, err)
	assert.Equal(t, u, got)
	_, err = s.GetUserByIdent(ctx, "nobody")
	assert.ErrorIs(t, err, service.ErrNoSuchUser)
}
