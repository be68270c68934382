package models

import "time"

// Post represents a blog post authored by a user. CreatedAt is always
// populated; every successful edit resets it to the edit time.
type Post struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" db:"title" gorm:"type:varchar(100);not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`
	UserID    uint      `json:"userId" db:"user_id" gorm:"not null;index:idx_posts_user_id"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Tags []Tag `json:"tags,omitempty" gorm:"many2many:posts_tags;constraint:OnDelete:CASCADE"`
}

func (Post) TableName() string { return "posts" }

// FormattedDate renders CreatedAt the way listing pages display it
func (p Post) FormattedDate() string {
	return p.CreatedAt.Format("Mon Jan 02 2006, 03:04 PM")
}
