package database_test

import (
	"testing"

	"github.com/rpupo63/blogly-backend/errs"
	"github.com/rpupo63/blogly-backend/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagRepoCreate(t *testing.T) {
	db, _ := testutil.NewDB(t)
	users := db.UserRepo()
	posts := db.PostRepo()
	tags := db.TagRepo()

	user, err := users.Create("Jane", "Smith", "")
	require.NoError(t, err)
	post, err := posts.Create("My turtle", "", user.ID, nil)
	require.NoError(t, err)

	t.Run("WithInitialPosts", func(t *testing.T) {
		tag, err := tags.Create("Pet", []uint{post.ID, 9999})
		require.NoError(t, err)
		require.Len(t, tag.Posts, 1)
		assert.Equal(t, post.ID, tag.Posts[0].ID)
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := tags.Create("", nil)
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("DuplicateName", func(t *testing.T) {
		_, err := tags.Create("Pet", nil)
		require.Error(t, err)
		assert.True(t, errs.IsConflict(err))
	})

	t.Run("NamesAreCaseSensitive", func(t *testing.T) {
		tag, err := tags.Create("pet", nil)
		require.NoError(t, err)
		assert.Equal(t, "pet", tag.Name)
	})
}

func TestTagRepoFindAllInsertionOrder(t *testing.T) {
	db, _ := testutil.NewDB(t)
	tags := db.TagRepo()

	for _, name := range []string{"Zoo", "Art", "Mid"} {
		_, err := tags.Create(name, nil)
		require.NoError(t, err)
	}

	listed, err := tags.FindAll()
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "Zoo", listed[0].Name)
	assert.Equal(t, "Art", listed[1].Name)
	assert.Equal(t, "Mid", listed[2].Name)

	// Order is stable across calls.
	again, err := tags.FindAll()
	require.NoError(t, err)
	for i := range listed {
		assert.Equal(t, listed[i].ID, again[i].ID)
	}
}

func TestTagRepoUpdate(t *testing.T) {
	db, _ := testutil.NewDB(t)
	tags := db.TagRepo()

	pet, err := tags.Create("Pet", nil)
	require.NoError(t, err)
	_, err = tags.Create("Fun", nil)
	require.NoError(t, err)

	t.Run("Rename", func(t *testing.T) {
		updated, err := tags.Update(pet.ID, "Pets")
		require.NoError(t, err)
		assert.Equal(t, "Pets", updated.Name)
	})

	t.Run("RenameToOwnNameAllowed", func(t *testing.T) {
		updated, err := tags.Update(pet.ID, "Pets")
		require.NoError(t, err)
		assert.Equal(t, "Pets", updated.Name)
	})

	t.Run("RenameToExistingNameConflicts", func(t *testing.T) {
		_, err := tags.Update(pet.ID, "Fun")
		require.Error(t, err)
		assert.True(t, errs.IsConflict(err))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := tags.Update(9999, "Ghost")
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := tags.Update(pet.ID, "")
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})
}

func TestTagRepoDelete(t *testing.T) {
	db, _ := testutil.NewDB(t)
	users := db.UserRepo()
	posts := db.PostRepo()
	tags := db.TagRepo()

	user, err := users.Create("Jane", "Smith", "")
	require.NoError(t, err)
	tag, err := tags.Create("Pet", nil)
	require.NoError(t, err)
	post, err := posts.Create("My turtle", "", user.ID, []uint{tag.ID})
	require.NoError(t, err)

	t.Run("RemovesAssociationsButNotPosts", func(t *testing.T) {
		require.NoError(t, tags.Delete(tag.ID))

		_, err := tags.FindByID(tag.ID)
		assert.True(t, errs.IsNotFound(err))

		found, err := posts.FindByID(post.ID)
		require.NoError(t, err)
		assert.Empty(t, found.Tags)
	})

	t.Run("NotFound", func(t *testing.T) {
		err := tags.Delete(tag.ID)
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})
}

func TestTagRepoTraversals(t *testing.T) {
	db, _ := testutil.NewDB(t)
	users := db.UserRepo()
	posts := db.PostRepo()
	tags := db.TagRepo()

	user, err := users.Create("Jane", "Smith", "")
	require.NoError(t, err)
	tag, err := tags.Create("Pet", nil)
	require.NoError(t, err)
	turtle, err := posts.Create("My turtle", "", user.ID, []uint{tag.ID})
	require.NoError(t, err)
	orion, err := posts.Create("Orion", "", user.ID, []uint{tag.ID})
	require.NoError(t, err)

	t.Run("FindByPost", func(t *testing.T) {
		found, err := tags.FindByPost(turtle.ID)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Pet", found[0].Name)
	})

	t.Run("FindByTag", func(t *testing.T) {
		found, err := posts.FindByTag(tag.ID)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, turtle.ID, found[0].ID)
		assert.Equal(t, orion.ID, found[1].ID)
	})

	t.Run("AnchorMustExist", func(t *testing.T) {
		_, err := tags.FindByPost(9999)
		assert.True(t, errs.IsNotFound(err))
		_, err = posts.FindByTag(9999)
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("SetPostsReconcilesFromTagSide", func(t *testing.T) {
		updated, err := tags.SetPosts(tag.ID, []uint{orion.ID})
		require.NoError(t, err)
		require.Len(t, updated.Posts, 1)
		assert.Equal(t, orion.ID, updated.Posts[0].ID)
	})
}

// Mirrors the full lifecycle: author, tag, post, association, tag deletion.
func TestTaggingEndToEnd(t *testing.T) {
	db, _ := testutil.NewDB(t)
	users := db.UserRepo()
	posts := db.PostRepo()
	tags := db.TagRepo()

	jane, err := users.Create("Jane", "Smith", "")
	require.NoError(t, err)
	pet, err := tags.Create("Pet", nil)
	require.NoError(t, err)
	turtle, err := posts.Create("My turtle", "", jane.ID, nil)
	require.NoError(t, err)

	updated, err := posts.SetTags(turtle.ID, []uint{pet.ID})
	require.NoError(t, err)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "Pet", updated.Tags[0].Name)

	tagPosts, err := posts.FindByTag(pet.ID)
	require.NoError(t, err)
	require.Len(t, tagPosts, 1)
	assert.Equal(t, "My turtle", tagPosts[0].Title)

	require.NoError(t, tags.Delete(pet.ID))

	postTags, err := tags.FindByPost(turtle.ID)
	require.NoError(t, err)
	assert.Empty(t, postTags)

	_, err = posts.FindByID(turtle.ID)
	assert.NoError(t, err)
}
