package models

import (
	"errors"
)

var (
	// ErrGeneral is the message clients get when an unexpected error
	// occurs. The specific error is only logged.
	ErrGeneral = errors.New("an error occurred on the server during your request")

	ErrBudgetNotFound  = errors.New("there is no budget for the month you specified")
	ErrExpenseNotFound = errors.New("there is no expense with the ID you specified")

	// ErrUserNotFound is returned when an expense references a user that
	// does not exist. This is a client error, not a missing resource.
	ErrUserNotFound = errors.New("there is no user with the ID you specified")
)
