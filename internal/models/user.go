package models

import (
	"fmt"

	"gorm.io/gorm"
)

// DefaultUsers are the two household members. They are seeded at first
// startup and are the only users the service knows.
var DefaultUsers = []string{"husband", "wife"}

// User is a household member that expenses are booked for.
type User struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" gorm:"uniqueIndex" example:"husband"`
}

// Users returns all users ordered by ID.
func Users(db *gorm.DB) ([]User, error) {
	users := make([]User, 0)

	err := db.Order("id ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}

// seedUsers inserts the default users that are missing. It runs on every
// startup and never modifies users that already exist, so IDs stay stable
// across restarts.
func seedUsers(db *gorm.DB) error {
	for _, name := range DefaultUsers {
		var user User

		err := db.Where(User{Name: name}).FirstOrCreate(&user).Error
		if err != nil {
			return fmt.Errorf("failed to seed user %q: %w", name, err)
		}
	}

	return nil
}
