package models

// DefaultUserImageURL is the placeholder applied when a user is created or
// updated without a profile image.
const DefaultUserImageURL = "https://images.unsplash.com/photo-1724094505377-ac01c7813010?q=80&w=2574&auto=format&fit=crop&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D"

// User represents an author who owns posts
type User struct {
	ID        uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	FirstName string `json:"firstName" db:"first_name" gorm:"type:varchar(50);not null"`
	LastName  string `json:"lastName" db:"last_name" gorm:"type:varchar(50);not null"`
	ImageURL  string `json:"imageUrl" db:"image_url" gorm:"type:text;not null"`

	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string { return "users" }

// FullName returns the user's display name
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
