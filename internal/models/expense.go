package models

import (
	"errors"
	"time"

	"github.com/couple-budget/backend/internal/types"
	"gorm.io/gorm"
)

// Expense is a single spending record of one user.
type Expense struct {
	ID        uint       `json:"id" example:"1"`
	Date      types.Date `json:"date" gorm:"index" swaggertype:"string" example:"2024-03-05"`
	UserID    uint       `json:"user_id" example:"1"`
	User      User       `json:"-"`
	Category  string     `json:"category" example:"food"`
	Memo      string     `json:"memo" example:"weekly groceries"`
	Amount    int64      `json:"amount" example:"10000"`
	CreatedAt time.Time  `json:"created_at" example:"2024-03-05T12:01:02Z"`
}

// ExpenseRecord is an expense together with the name of the user who paid
// it, as the API returns it.
type ExpenseRecord struct {
	ID        uint       `json:"id" example:"1"`
	Date      types.Date `json:"date" swaggertype:"string" example:"2024-03-05"`
	UserID    uint       `json:"user_id" example:"1"`
	UserName  string     `json:"user_name" example:"husband"`
	Category  string     `json:"category" example:"food"`
	Memo      string     `json:"memo" example:"weekly groceries"`
	Amount    int64      `json:"amount" example:"10000"`
	CreatedAt time.Time  `json:"created_at" example:"2024-03-05T12:01:02Z"`
}

// ExpenseFilter are the optional criteria for listing the expenses of a
// month. A set pointer is an equality match, including matches against the
// zero value.
type ExpenseFilter struct {
	UserID   *uint
	Category *string
}

// BeforeCreate verifies that the referenced user exists.
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	err := tx.First(&User{}, e.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}

	return err
}

// CreateExpense stores a new expense and returns it together with the name
// of its user.
func CreateExpense(db *gorm.DB, expense Expense) (ExpenseRecord, error) {
	err := db.Create(&expense).Error
	if err != nil {
		return ExpenseRecord{}, err
	}

	return expenseRecord(db, expense.ID)
}

// Expenses returns the expenses of a month ordered by date, then by ID.
func Expenses(db *gorm.DB, year int, month int, filter ExpenseFilter) ([]ExpenseRecord, error) {
	expenses := make([]ExpenseRecord, 0)
	from, to := monthWindow(year, month)

	q := db.Model(&Expense{}).
		Select(expenseRecordColumns).
		Joins("JOIN users ON users.id = expenses.user_id").
		Where("expenses.date >= ? AND expenses.date < ?", from, to).
		Order("expenses.date ASC, expenses.id ASC")

	if filter.UserID != nil {
		q = q.Where("expenses.user_id = ?", *filter.UserID)
	}

	if filter.Category != nil {
		q = q.Where("expenses.category = ?", *filter.Category)
	}

	err := q.Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// DeleteExpense removes the expense with the given ID.
func DeleteExpense(db *gorm.DB, id uint64) error {
	res := db.Delete(&Expense{}, id)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

const expenseRecordColumns = "expenses.id, expenses.date, expenses.user_id, users.name AS user_name, expenses.category, expenses.memo, expenses.amount, expenses.created_at"

// expenseRecord loads a single expense joined with its user.
func expenseRecord(db *gorm.DB, id uint) (ExpenseRecord, error) {
	var record ExpenseRecord

	err := db.Model(&Expense{}).
		Select(expenseRecordColumns).
		Joins("JOIN users ON users.id = expenses.user_id").
		Where("expenses.id = ?", id).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ExpenseRecord{}, ErrExpenseNotFound
	}

	if err != nil {
		return ExpenseRecord{}, err
	}

	return record, nil
}

// monthWindow returns the half open interval of a month. An expense is in
// the month when from <= date < to, which makes December wrap into January
// of the following year.
func monthWindow(year int, month int) (types.Month, types.Month) {
	from := types.NewMonth(year, time.Month(month))
	return from, from.AddDate(0, 1)
}
