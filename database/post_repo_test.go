package database_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/rpupo63/blogly-backend/database"
	"github.com/rpupo63/blogly-backend/errs"
	"github.com/rpupo63/blogly-backend/models"
	"github.com/rpupo63/blogly-backend/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepoCreate(t *testing.T) {
	db, _ := testutil.NewDB(t)
	users := db.UserRepo()
	posts := db.PostRepo()
	tags := db.TagRepo()

	user, err := users.Create("Jane", "Smith", "")
	require.NoError(t, err)

	t.Run("SetsTimestampAndOwner", func(t *testing.T) {
		before := time.Now().UTC()
		post, err := posts.Create("My turtle", "so guilty", user.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, user.ID, post.UserID)
		assert.False(t, post.CreatedAt.IsZero())
		assert.False(t, post.CreatedAt.Before(before.Add(-time.Second)))
	})

	t.Run("EmptyTitle", func(t *testing.T) {
		_, err := posts.Create("", "content", user.ID, nil)
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("UnknownUser", func(t *testing.T) {
		_, err := posts.Create("Orphan", "content", 9999, nil)
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("InitialTagsWithUnknownIdsSkipped", func(t *testing.T) {
		tag, err := tags.Create("Pet", nil)
		require.NoError(t, err)

		post, err := posts.Create("Orion", "bratty mix", user.ID, []uint{tag.ID, 9999})
		require.NoError(t, err)
		require.Len(t, post.Tags, 1)
		assert.Equal(t, "Pet", post.Tags[0].Name)
	})
}

func TestPostRepoFindRecent(t *testing.T) {
	db, gdb := testutil.NewDB(t)
	users := db.UserRepo()
	posts := db.PostRepo()

	user, err := users.Create("Summer", "Winter", "")
	require.NoError(t, err)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ids := make([]uint, 0, 8)
	for i := 0; i < 8; i++ {
		post, err := posts.Create(fmt.Sprintf("post %d", i), "", user.ID, nil)
		require.NoError(t, err)
		// Backdate for distinct, deterministic timestamps.
		err = gdb.Model(&models.Post{}).Where("id = ?", post.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Hour)).Error
		require.NoError(t, err)
		ids = append(ids, post.ID)
	}

	t.Run("FiveMostRecentDescending", func(t *testing.T) {
		recent, err := posts.FindRecent(5)
		require.NoError(t, err)
		require.Len(t, recent, 5)
		for i, post := range recent {
			assert.Equal(t, ids[7-i], post.ID)
		}
		for i := 1; i < len(recent); i++ {
			assert.True(t, !recent[i].CreatedAt.After(recent[i-1].CreatedAt))
		}
	})

	t.Run("NonPositiveLimitDefaultsToFive", func(t *testing.T) {
		recent, err := posts.FindRecent(0)
		require.NoError(t, err)
		assert.Len(t, recent, database.DefaultRecentPostLimit)
	})

	t.Run("LargerLimitReturnsAll", func(t *testing.T) {
		recent, err := posts.FindRecent(50)
		require.NoError(t, err)
		assert.Len(t, recent, 8)
	})
}

func TestPostRepoUpdate(t *testing.T) {
	db, gdb := testutil.NewDB(t)
	users := db.UserRepo()
	posts := db.PostRepo()

	user, err := users.Create("Jane", "Smith", "")
	require.NoError(t, err)
	post, err := posts.Create("Learning SQLAlchemy", "a month in", user.ID, nil)
	require.NoError(t, err)

	t.Run("BumpsTimestampEvenWithoutChanges", func(t *testing.T) {
		backdated := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		err := gdb.Model(&models.Post{}).Where("id = ?", post.ID).
			Update("created_at", backdated).Error
		require.NoError(t, err)

		updated, err := posts.Update(post.ID, "Learning SQLAlchemy", "a month in")
		require.NoError(t, err)
		assert.True(t, updated.CreatedAt.After(backdated))
	})

	t.Run("OverwritesTitleAndContent", func(t *testing.T) {
		updated, err := posts.Update(post.ID, "Learning GORM", "a year in")
		require.NoError(t, err)
		assert.Equal(t, "Learning GORM", updated.Title)
		assert.Equal(t, "a year in", updated.Content)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := posts.Update(9999, "ghost", "")
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("EmptyTitle", func(t *testing.T) {
		_, err := posts.Update(post.ID, "", "")
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})
}

func TestPostRepoDelete(t *testing.T) {
	db, _ := testutil.NewDB(t)
	users := db.UserRepo()
	posts := db.PostRepo()
	tags := db.TagRepo()

	user, err := users.Create("Joel", "Burton", "")
	require.NoError(t, err)
	tag, err := tags.Create("Pet", nil)
	require.NoError(t, err)
	post, err := posts.Create("My cat", "who resonates?", user.ID, []uint{tag.ID})
	require.NoError(t, err)

	t.Run("ReturnsOwnerAndRemovesAssociations", func(t *testing.T) {
		ownerID, err := posts.Delete(post.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, ownerID)

		_, err = posts.FindByID(post.ID)
		assert.True(t, errs.IsNotFound(err))

		tagPosts, err := posts.FindByTag(tag.ID)
		require.NoError(t, err)
		assert.Empty(t, tagPosts)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := posts.Delete(post.ID)
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})
}

func TestPostRepoSetTags(t *testing.T) {
	db, _ := testutil.NewDB(t)
	users := db.UserRepo()
	posts := db.PostRepo()
	tags := db.TagRepo()

	user, err := users.Create("Jane", "Smith", "")
	require.NoError(t, err)
	post, err := posts.Create("Orion", "fake-lab face", user.ID, nil)
	require.NoError(t, err)

	pet, err := tags.Create("Pet", nil)
	require.NoError(t, err)
	fun, err := tags.Create("Fun", nil)
	require.NoError(t, err)
	tech, err := tags.Create("Tech", nil)
	require.NoError(t, err)

	tagNames := func(post *models.Post) []string {
		names := make([]string, 0, len(post.Tags))
		for _, tag := range post.Tags {
			names = append(names, tag.Name)
		}
		return names
	}

	t.Run("PureAddition", func(t *testing.T) {
		updated, err := posts.SetTags(post.ID, []uint{pet.ID, fun.ID})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Pet", "Fun"}, tagNames(updated))
	})

	t.Run("MixedDeltaKeepsOverlap", func(t *testing.T) {
		updated, err := posts.SetTags(post.ID, []uint{fun.ID, tech.ID})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Fun", "Tech"}, tagNames(updated))
	})

	t.Run("DuplicateTargetIdsCollapse", func(t *testing.T) {
		updated, err := posts.SetTags(post.ID, []uint{pet.ID, pet.ID, pet.ID})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Pet"}, tagNames(updated))
	})

	t.Run("UnknownIdsSkipped", func(t *testing.T) {
		updated, err := posts.SetTags(post.ID, []uint{pet.ID, 9999})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Pet"}, tagNames(updated))
	})

	t.Run("EmptyTargetRemovesAll", func(t *testing.T) {
		updated, err := posts.SetTags(post.ID, nil)
		require.NoError(t, err)
		assert.Empty(t, updated.Tags)
	})

	t.Run("UnknownPost", func(t *testing.T) {
		_, err := posts.SetTags(9999, []uint{pet.ID})
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})
}
