package models

// PostTag is the join row linking a post to a tag. The composite primary key
// keeps the association a set: at most one row per (post_id, tag_id) pair.
type PostTag struct {
	PostID uint `json:"postId" db:"post_id" gorm:"primaryKey"`
	TagID  uint `json:"tagId" db:"tag_id" gorm:"primaryKey"`
}

func (PostTag) TableName() string { return "posts_tags" }
