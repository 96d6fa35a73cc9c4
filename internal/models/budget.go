package models

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Budget is the spending limit for a single calendar month. There is at
// most one budget per month.
type Budget struct {
	ID     uint  `json:"-"`
	Year   int   `json:"year" gorm:"uniqueIndex:idx_budgets_year_month" example:"2024"`
	Month  int   `json:"month" gorm:"uniqueIndex:idx_budgets_year_month" example:"3"`
	Amount int64 `json:"amount" example:"500000"`
}

// SetBudget creates the budget for a month or, when one already exists,
// replaces its amount. It returns the budget as stored.
func SetBudget(db *gorm.DB, year int, month int, amount int64) (Budget, error) {
	budget := Budget{Year: year, Month: month, Amount: amount}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "year"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount"}),
	}).Create(&budget).Error
	if err != nil {
		return Budget{}, err
	}

	return BudgetForMonth(db, year, month)
}

// BudgetForMonth returns the budget for a month.
func BudgetForMonth(db *gorm.DB, year int, month int) (Budget, error) {
	var budget Budget

	err := db.Where("year = ? AND month = ?", year, month).First(&budget).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Budget{}, ErrBudgetNotFound
	}

	if err != nil {
		return Budget{}, err
	}

	return budget, nil
}
