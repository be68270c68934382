package models

// Tag represents a label attached to posts. Names are globally unique and
// compared case-sensitively.
type Tag struct {
	ID   uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:uk_tags_name"`

	Posts []Post `json:"posts,omitempty" gorm:"many2many:posts_tags;constraint:OnDelete:CASCADE"`
}

func (Tag) TableName() string { return "tags" }
