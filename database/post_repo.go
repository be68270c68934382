package database

import (
	"errors"
	"time"

	"github.com/rpupo63/blogly-backend/errs"
	"github.com/rpupo63/blogly-backend/models"
	"gorm.io/gorm"
)

// DefaultRecentPostLimit is the number of posts on the home feed.
const DefaultRecentPostLimit = 5

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *PostRepo) GetDB() *gorm.DB {
	return r.db
}

// FindByID returns a post by id with its owner and tags preloaded
func (r *PostRepo) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("User").Preload("Tags").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("post not found")
		}
		return nil, errs.NewDatabaseError("find", "post", err)
	}
	return &post, nil
}

// FindRecent returns the most recently created posts, newest first. Ties in
// created_at break by id descending so the ordering is stable. A non-positive
// limit falls back to DefaultRecentPostLimit.
func (r *PostRepo) FindRecent(limit int) ([]*models.Post, error) {
	if limit <= 0 {
		limit = DefaultRecentPostLimit
	}
	var posts []*models.Post
	err := r.db.Preload("User").Preload("Tags").
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "posts", err)
	}
	return posts, nil
}

// FindByTag returns all posts associated with a tag. The tag must exist.
func (r *PostRepo) FindByTag(tagID uint) ([]*models.Post, error) {
	var tag models.Tag
	if err := r.db.First(&tag, tagID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("tag not found")
		}
		return nil, errs.NewDatabaseError("find", "tag", err)
	}

	var posts []*models.Post
	err := r.db.
		Joins("JOIN posts_tags ON posts_tags.post_id = posts.id").
		Where("posts_tags.tag_id = ?", tagID).
		Order("posts.id asc").
		Find(&posts).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find posts for", "tag", err)
	}
	return posts, nil
}

// Create inserts a new post owned by an existing user, stamped with the
// current time. tagIDs is an optional initial association set; ids that do
// not reference an existing tag are skipped.
func (r *PostRepo) Create(title, content string, userID uint, tagIDs []uint) (*models.Post, error) {
	if title == "" {
		return nil, errs.NewValidationError("title")
	}

	post := &models.Post{
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		UserID:    userID,
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.User{}, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFoundError("user not found")
			}
			return errs.NewDatabaseError("find", "user", err)
		}
		if err := tx.Omit("Tags").Create(post).Error; err != nil {
			return errs.NewDatabaseError("create", "post", err)
		}

		toAdd, _ := Reconcile(nil, tagIDs)
		return applyPostTagDelta(tx, post.ID, toAdd, nil)
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(post.ID)
}

// Update overwrites title and content of an existing post and resets its
// created_at to now, whether or not anything changed.
func (r *PostRepo) Update(id uint, title, content string) (*models.Post, error) {
	if title == "" {
		return nil, errs.NewValidationError("title")
	}

	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("post not found")
		}
		return nil, errs.NewDatabaseError("find", "post", err)
	}

	post.Title = title
	post.Content = content
	post.CreatedAt = time.Now().UTC()
	if err := r.db.Omit("Tags", "User").Save(&post).Error; err != nil {
		return nil, errs.NewDatabaseError("update", "post", err)
	}
	return r.FindByID(post.ID)
}

// Delete removes a post and its tag associations in one transaction and
// returns the owning user's id so callers can redirect to the owner page.
func (r *PostRepo) Delete(id uint) (uint, error) {
	var ownerID uint
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFoundError("post not found")
			}
			return errs.NewDatabaseError("find", "post", err)
		}
		ownerID = post.UserID

		if err := tx.Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return errs.NewDatabaseError("delete tag associations for", "post", err)
		}
		if err := tx.Delete(&models.Post{}, id).Error; err != nil {
			return errs.NewDatabaseError("delete", "post", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return ownerID, nil
}

// SetTags reconciles a post's tag associations against a target set of tag
// ids, adding and removing only the join rows needed to reach it. Unknown
// tag ids are skipped. The whole delta applies in one transaction.
func (r *PostRepo) SetTags(postID uint, tagIDs []uint) (*models.Post, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Post{}, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFoundError("post not found")
			}
			return errs.NewDatabaseError("find", "post", err)
		}

		current, err := currentTagIDs(tx, postID)
		if err != nil {
			return err
		}
		toAdd, toRemove := Reconcile(current, tagIDs)
		return applyPostTagDelta(tx, postID, toAdd, toRemove)
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(postID)
}
