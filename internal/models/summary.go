package models

import (
	"database/sql"
	"errors"

	"github.com/couple-budget/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserSum is the spending total of one user in a month. Users without
// expenses are included with a total of 0.
type UserSum struct {
	UserName  string `json:"user_name" example:"husband"`
	TotalUsed int64  `json:"total_used" example:"13000"`
}

// CategorySum is the spending total of one category in a month.
type CategorySum struct {
	Category  string `json:"category" example:"food"`
	TotalUsed int64  `json:"total_used" example:"15000"`
}

// MonthSummary is the spending report for a single month.
//
// Budget and Remain are null when no budget is set for the month.
// UsageRate is additionally null when the budget amount is 0, a usage
// percentage of nothing is undefined.
type MonthSummary struct {
	Year       int           `json:"year" example:"2024"`
	Month      int           `json:"month" example:"3"`
	Budget     *int64        `json:"budget" example:"500000"`
	TotalUsed  int64         `json:"total_used" example:"18000"`
	Remain     *int64        `json:"remain" example:"482000"`
	UsageRate  *float64      `json:"usage_rate" example:"3.6"`
	ByUser     []UserSum     `json:"by_user"`
	ByCategory []CategorySum `json:"by_category"`
}

// Summarize computes the spending report for a month.
func Summarize(db *gorm.DB, year int, month int) (MonthSummary, error) {
	summary := MonthSummary{
		Year:       year,
		Month:      month,
		ByUser:     make([]UserSum, 0),
		ByCategory: make([]CategorySum, 0),
	}

	from, to := monthWindow(year, month)

	totalUsed, err := expenseSum(db, from, to)
	if err != nil {
		return MonthSummary{}, err
	}
	summary.TotalUsed = totalUsed

	budget, err := BudgetForMonth(db, year, month)
	if err != nil && !errors.Is(err, ErrBudgetNotFound) {
		return MonthSummary{}, err
	}

	if err == nil {
		remain := budget.Amount - totalUsed
		summary.Budget = &budget.Amount
		summary.Remain = &remain

		if budget.Amount > 0 {
			rate := decimal.NewFromInt(totalUsed).
				Div(decimal.NewFromInt(budget.Amount)).
				Mul(decimal.NewFromInt(100)).
				Round(1).
				InexactFloat64()
			summary.UsageRate = &rate
		}
	}

	err = db.Table("users").
		Select("users.name AS user_name, COALESCE(SUM(expenses.amount), 0) AS total_used").
		Joins("LEFT JOIN expenses ON expenses.user_id = users.id AND expenses.date >= ? AND expenses.date < ?", from, to).
		Group("users.id, users.name").
		Order("users.id ASC").
		Scan(&summary.ByUser).Error
	if err != nil {
		return MonthSummary{}, err
	}

	err = db.Model(&Expense{}).
		Select("category, SUM(amount) AS total_used").
		Where("expenses.date >= ? AND expenses.date < ?", from, to).
		Group("category").
		Order("total_used DESC, category ASC").
		Scan(&summary.ByCategory).Error
	if err != nil {
		return MonthSummary{}, err
	}

	return summary, nil
}

// expenseSum returns the sum of all expense amounts in the window. A month
// without expenses sums to 0.
func expenseSum(db *gorm.DB, from types.Month, to types.Month) (int64, error) {
	var sum sql.NullInt64

	err := db.
		Select("SUM(amount)").
		Where("date >= ? AND date < ?", from, to).
		Table("expenses").
		Find(&sum).
		Error
	if err != nil {
		return 0, err
	}

	// If no expenses are found, the value is nil
	if !sum.Valid {
		return 0, nil
	}

	return sum.Int64, nil
}
