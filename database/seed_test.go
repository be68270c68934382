package database_test

import (
	"testing"

	"github.com/rpupo63/blogly-backend/database"
	"github.com/rpupo63/blogly-backend/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	db, gdb := testutil.NewDB(t)

	require.NoError(t, database.Seed(gdb))

	users, err := db.UserRepo().FindAll()
	require.NoError(t, err)
	assert.Len(t, users, 4)

	posts, err := db.PostRepo().FindRecent(50)
	require.NoError(t, err)
	assert.Len(t, posts, 8)

	tags, err := db.TagRepo().FindAll()
	require.NoError(t, err)
	assert.Len(t, tags, 3)

	t.Run("HomeFeedShowsFiveNewest", func(t *testing.T) {
		recent, err := db.PostRepo().FindRecent(0)
		require.NoError(t, err)
		require.Len(t, recent, 5)
		assert.Equal(t, "Orion", recent[0].Title)
	})

	t.Run("Rerunnable", func(t *testing.T) {
		require.NoError(t, database.Seed(gdb))

		users, err := db.UserRepo().FindAll()
		require.NoError(t, err)
		assert.Len(t, users, 4)

		posts, err := db.PostRepo().FindRecent(50)
		require.NoError(t, err)
		assert.Len(t, posts, 8)
	})
}
