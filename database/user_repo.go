package database

import (
	"errors"

	"github.com/rpupo63/blogly-backend/errs"
	"github.com/rpupo63/blogly-backend/models"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *UserRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns all users ordered by last name, then first name
func (r *UserRepo) FindAll() ([]*models.User, error) {
	var users []*models.User
	err := r.db.Order("last_name asc, first_name asc").Find(&users).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "users", err)
	}
	return users, nil
}

// FindByID returns a user by id with their posts preloaded
func (r *UserRepo) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Posts").First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("user not found")
		}
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	return &user, nil
}

// Create inserts a new user. firstName and lastName are required; an empty
// imageURL falls back to the default placeholder.
func (r *UserRepo) Create(firstName, lastName, imageURL string) (*models.User, error) {
	if firstName == "" {
		return nil, errs.NewValidationError("firstName")
	}
	if lastName == "" {
		return nil, errs.NewValidationError("lastName")
	}
	if imageURL == "" {
		imageURL = models.DefaultUserImageURL
	}

	user := &models.User{
		FirstName: firstName,
		LastName:  lastName,
		ImageURL:  imageURL,
	}
	if err := r.db.Create(user).Error; err != nil {
		return nil, errs.NewDatabaseError("create", "user", err)
	}
	return user, nil
}

// Update overwrites all editable fields of an existing user. The blank
// imageURL fallback matches Create so edits cannot clear the placeholder.
func (r *UserRepo) Update(id uint, firstName, lastName, imageURL string) (*models.User, error) {
	if firstName == "" {
		return nil, errs.NewValidationError("firstName")
	}
	if lastName == "" {
		return nil, errs.NewValidationError("lastName")
	}
	if imageURL == "" {
		imageURL = models.DefaultUserImageURL
	}

	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("user not found")
		}
		return nil, errs.NewDatabaseError("find", "user", err)
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.ImageURL = imageURL
	if err := r.db.Save(&user).Error; err != nil {
		return nil, errs.NewDatabaseError("update", "user", err)
	}
	return &user, nil
}

// Delete removes a user and cascades to their posts and those posts' tag
// associations. The cascade runs in one transaction so a partial delete is
// never visible.
func (r *UserRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("user_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return errs.NewDatabaseError("find posts for", "user", err)
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.PostTag{}).Error; err != nil {
				return errs.NewDatabaseError("delete tag associations for", "user", err)
			}
			if err := tx.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
				return errs.NewDatabaseError("delete posts for", "user", err)
			}
		}

		result := tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return errs.NewDatabaseError("delete", "user", result.Error)
		}
		if result.RowsAffected == 0 {
			return errs.NewNotFoundError("user not found")
		}
		return nil
	})
}
