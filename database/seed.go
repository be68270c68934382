package database

import (
	"time"

	"github.com/rpupo63/blogly-backend/errs"
	"github.com/rpupo63/blogly-backend/models"
	"gorm.io/gorm"
)

// Seed resets the four tables and repopulates them with the sample content
// used for local development. Everything runs in one transaction.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM posts_tags",
			"DELETE FROM posts",
			"DELETE FROM tags",
			"DELETE FROM users",
		} {
			if err := tx.Exec(stmt).Error; err != nil {
				return errs.NewDatabaseError("reset", "tables", err)
			}
		}

		summer := models.User{FirstName: "Summer", LastName: "Winter", ImageURL: models.DefaultUserImageURL}
		alan := models.User{FirstName: "Alan", LastName: "Alda", ImageURL: models.DefaultUserImageURL}
		joel := models.User{FirstName: "Joel", LastName: "Burton", ImageURL: models.DefaultUserImageURL}
		jane := models.User{FirstName: "Jane", LastName: "Smith", ImageURL: models.DefaultUserImageURL}
		users := []*models.User{&summer, &alan, &joel, &jane}
		for _, u := range users {
			if err := tx.Create(u).Error; err != nil {
				return errs.NewDatabaseError("seed", "users", err)
			}
		}

		now := time.Now().UTC()
		posts := []*models.Post{
			{Title: "Flask Is Awesome", Content: "I love flask and SQLAlchemy", UserID: summer.ID},
			{Title: "I love icecream", Content: "Summer is here. Summer wants to eat lots of icecream!", UserID: summer.ID},
			{Title: "International Dog Day", Content: "Today is my favorite day of the year. Let's celebrate human's best friends!", UserID: alan.ID},
			{Title: "IG complaint", Content: "IG is an overrated app. Its algorithm sucks people in and is bad for content creators", UserID: joel.ID},
			{Title: "My cat", Content: "My cat is my best friend. Who resonates?", UserID: joel.ID},
			{Title: "Learning SQLAlchemy", Content: "I have been learning flask-sqlalchemy for the last month or so. I can already create some interesting applications. I can't wait to see where this will lead me to in the near future!", UserID: jane.ID},
			{Title: "My turtle", Content: "I had two turtles when I was a kid, but I didn't know how to take care of them, so one of them died and I still feel guilty about it until today! May your soul rest in peace, my beloved turtle.", UserID: jane.ID},
			{Title: "Orion", Content: "Orion is a bratty pit/shepherd mix with a very cute fake-lab face!", UserID: jane.ID},
		}
		for i, p := range posts {
			// Spread creation times so the home feed has a stable order.
			p.CreatedAt = now.Add(time.Duration(i-len(posts)) * time.Minute)
			if err := tx.Omit("Tags").Create(p).Error; err != nil {
				return errs.NewDatabaseError("seed", "posts", err)
			}
		}

		pet := models.Tag{Name: "Pet"}
		tech := models.Tag{Name: "Tech"}
		fun := models.Tag{Name: "Fun"}
		for _, t := range []*models.Tag{&pet, &tech, &fun} {
			if err := tx.Omit("Posts").Create(t).Error; err != nil {
				return errs.NewDatabaseError("seed", "tags", err)
			}
		}

		links := []models.PostTag{
			{PostID: posts[2].ID, TagID: pet.ID},
			{PostID: posts[4].ID, TagID: pet.ID},
			{PostID: posts[6].ID, TagID: pet.ID},
			{PostID: posts[7].ID, TagID: pet.ID},
			{PostID: posts[0].ID, TagID: tech.ID},
			{PostID: posts[5].ID, TagID: tech.ID},
			{PostID: posts[1].ID, TagID: fun.ID},
		}
		for _, link := range links {
			if err := tx.Create(&link).Error; err != nil {
				return errs.NewDatabaseError("seed", "posts_tags", err)
			}
		}
		return nil
	})
}
