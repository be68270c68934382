package database

import (
	"errors"

	"github.com/rpupo63/blogly-backend/errs"
	"github.com/rpupo63/blogly-backend/models"
	"gorm.io/gorm"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *TagRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns all tags in insertion order
func (r *TagRepo) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Order("id asc").Find(&tags).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "tags", err)
	}
	return tags, nil
}

// FindByID returns a tag by id with its posts preloaded
func (r *TagRepo) FindByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Preload("Posts").First(&tag, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("tag not found")
		}
		return nil, errs.NewDatabaseError("find", "tag", err)
	}
	return &tag, nil
}

// FindByPost returns all tags associated with a post. The post must exist.
func (r *TagRepo) FindByPost(postID uint) ([]*models.Tag, error) {
	var post models.Post
	if err := r.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("post not found")
		}
		return nil, errs.NewDatabaseError("find", "post", err)
	}

	var tags []*models.Tag
	err := r.db.
		Joins("JOIN posts_tags ON posts_tags.tag_id = tags.id").
		Where("posts_tags.post_id = ?", postID).
		Order("tags.id asc").
		Find(&tags).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find tags for", "post", err)
	}
	return tags, nil
}

// Create inserts a new tag with a globally unique name. postIDs is an
// optional initial association set; ids that do not reference an existing
// post are skipped.
func (r *TagRepo) Create(name string, postIDs []uint) (*models.Tag, error) {
	if name == "" {
		return nil, errs.NewValidationError("name")
	}

	tag := &models.Tag{Name: name}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Tag{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return errs.NewDatabaseError("find", "tag", err)
		}
		if count > 0 {
			return errs.NewConflictError("tag name already exists")
		}
		if err := tx.Omit("Posts").Create(tag).Error; err != nil {
			return errs.NewDatabaseError("create", "tag", err)
		}

		toAdd, _ := Reconcile(nil, postIDs)
		return applyTagPostDelta(tx, tag.ID, toAdd, nil)
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(tag.ID)
}

// Update renames an existing tag. Renaming to another tag's name fails with
// a conflict; renaming a tag to its own name is allowed.
func (r *TagRepo) Update(id uint, name string) (*models.Tag, error) {
	if name == "" {
		return nil, errs.NewValidationError("name")
	}

	var tag models.Tag
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&tag, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFoundError("tag not found")
			}
			return errs.NewDatabaseError("find", "tag", err)
		}

		var count int64
		if err := tx.Model(&models.Tag{}).Where("name = ? AND id <> ?", name, id).Count(&count).Error; err != nil {
			return errs.NewDatabaseError("find", "tag", err)
		}
		if count > 0 {
			return errs.NewConflictError("tag name already exists")
		}

		tag.Name = name
		if err := tx.Omit("Posts").Save(&tag).Error; err != nil {
			return errs.NewDatabaseError("update", "tag", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Delete removes a tag and its associations in one transaction. Posts linked
// to the tag are untouched.
func (r *TagRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Tag{}, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFoundError("tag not found")
			}
			return errs.NewDatabaseError("find", "tag", err)
		}

		if err := tx.Where("tag_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return errs.NewDatabaseError("delete post associations for", "tag", err)
		}
		if err := tx.Delete(&models.Tag{}, id).Error; err != nil {
			return errs.NewDatabaseError("delete", "tag", err)
		}
		return nil
	})
}

// SetPosts reconciles a tag's associations against a target set of post ids.
// Unknown post ids are skipped. The whole delta applies in one transaction.
func (r *TagRepo) SetPosts(tagID uint, postIDs []uint) (*models.Tag, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Tag{}, tagID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewNotFoundError("tag not found")
			}
			return errs.NewDatabaseError("find", "tag", err)
		}

		current, err := currentPostIDs(tx, tagID)
		if err != nil {
			return err
		}
		toAdd, toRemove := Reconcile(current, postIDs)
		return applyTagPostDelta(tx, tagID, toAdd, toRemove)
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(tagID)
}
