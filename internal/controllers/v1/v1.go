// Package v1 implements the v1 API.
package v1

import (
	"gorm.io/gorm"
)

// Controller holds the database connection the request handlers operate on.
type Controller struct {
	DB *gorm.DB
}
