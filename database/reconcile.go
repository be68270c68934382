package database

import (
	"sort"

	"github.com/rpupo63/blogly-backend/errs"
	"github.com/rpupo63/blogly-backend/models"
	"gorm.io/gorm"
)

// Reconcile computes the minimal delta between the current and target
// association id sets: toAdd = target - current, toRemove = current - target.
// Ids present in both sets are left untouched. Duplicates in either input are
// collapsed, and both results come back sorted ascending so callers apply
// them in a deterministic order.
func Reconcile(current, target []uint) (toAdd, toRemove []uint) {
	currentSet := make(map[uint]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}
	targetSet := make(map[uint]struct{}, len(target))
	for _, id := range target {
		targetSet[id] = struct{}{}
	}

	toAdd = make([]uint, 0)
	for id := range targetSet {
		if _, ok := currentSet[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	toRemove = make([]uint, 0)
	for id := range currentSet {
		if _, ok := targetSet[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}

	sort.Slice(toAdd, func(i, j int) bool { return toAdd[i] < toAdd[j] })
	sort.Slice(toRemove, func(i, j int) bool { return toRemove[i] < toRemove[j] })
	return toAdd, toRemove
}

// applyPostTagDelta applies a reconciled delta to the join relation for one
// post. Target tag ids that do not reference an existing tag are skipped
// rather than failing the operation. Must run inside the transaction of the
// mutation that triggered the reconciliation.
func applyPostTagDelta(tx *gorm.DB, postID uint, toAdd, toRemove []uint) error {
	if len(toRemove) > 0 {
		if err := tx.Where("post_id = ? AND tag_id IN ?", postID, toRemove).Delete(&models.PostTag{}).Error; err != nil {
			return errs.NewDatabaseError("remove tags from", "post", err)
		}
	}

	if len(toAdd) == 0 {
		return nil
	}

	// Tolerant lookup: only link tags that actually exist.
	var found []uint
	if err := tx.Model(&models.Tag{}).Where("id IN ?", toAdd).Order("id asc").Pluck("id", &found).Error; err != nil {
		return errs.NewDatabaseError("find", "tags", err)
	}
	for _, tagID := range found {
		if err := tx.Create(&models.PostTag{PostID: postID, TagID: tagID}).Error; err != nil {
			return errs.NewDatabaseError("add tag to", "post", err)
		}
	}
	return nil
}

// applyTagPostDelta is the mirror of applyPostTagDelta for reconciling one
// tag against a target set of post ids.
func applyTagPostDelta(tx *gorm.DB, tagID uint, toAdd, toRemove []uint) error {
	if len(toRemove) > 0 {
		if err := tx.Where("tag_id = ? AND post_id IN ?", tagID, toRemove).Delete(&models.PostTag{}).Error; err != nil {
			return errs.NewDatabaseError("remove posts from", "tag", err)
		}
	}

	if len(toAdd) == 0 {
		return nil
	}

	var found []uint
	if err := tx.Model(&models.Post{}).Where("id IN ?", toAdd).Order("id asc").Pluck("id", &found).Error; err != nil {
		return errs.NewDatabaseError("find", "posts", err)
	}
	for _, postID := range found {
		if err := tx.Create(&models.PostTag{PostID: postID, TagID: tagID}).Error; err != nil {
			return errs.NewDatabaseError("add post to", "tag", err)
		}
	}
	return nil
}

// currentTagIDs returns the tag ids currently linked to a post.
func currentTagIDs(tx *gorm.DB, postID uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&models.PostTag{}).Where("post_id = ?", postID).Order("tag_id asc").Pluck("tag_id", &ids).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find tags for", "post", err)
	}
	return ids, nil
}

// currentPostIDs returns the post ids currently linked to a tag.
func currentPostIDs(tx *gorm.DB, tagID uint) ([]uint, error) {
	var ids []uint
	err := tx.Model(&models.PostTag{}).Where("tag_id = ?", tagID).Order("post_id asc").Pluck("post_id", &ids).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find posts for", "tag", err)
	}
	return ids, nil
}
