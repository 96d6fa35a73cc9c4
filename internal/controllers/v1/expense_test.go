package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/couple-budget/backend/internal/controllers/v1"
	"github.com/couple-budget/backend/internal/models"
	"github.com/couple-budget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expenseBody(date string, userID uint, category string, amount int64) v1.ExpenseEditable {
	return v1.ExpenseEditable{
		Date:     date,
		UserID:   userID,
		Category: category,
		Amount:   &amount,
	}
}

func (suite *TestSuiteStandard) createTestExpense(c v1.ExpenseEditable, expectedStatus ...int) models.ExpenseRecord {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/expenses", c)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var expense models.ExpenseRecord
	test.DecodeResponse(suite.T(), &r, &expense)

	return expense
}

func (suite *TestSuiteStandard) TestExpenseCreate() {
	expense := suite.createTestExpense(v1.ExpenseEditable{
		Date:     "2024-03-05",
		UserID:   1,
		Category: "food",
		Memo:     "groceries",
		Amount:   func() *int64 { a := int64(10000); return &a }(),
	})

	assert.NotZero(suite.T(), expense.ID)
	assert.Equal(suite.T(), "2024-03-05", expense.Date.String())
	assert.Equal(suite.T(), uint(1), expense.UserID)
	assert.Equal(suite.T(), "husband", expense.UserName)
	assert.Equal(suite.T(), "food", expense.Category)
	assert.Equal(suite.T(), "groceries", expense.Memo)
	assert.Equal(suite.T(), int64(10000), expense.Amount)
	assert.False(suite.T(), expense.CreatedAt.IsZero())
}

func (suite *TestSuiteStandard) TestExpenseCreateDefaults() {
	expense := suite.createTestExpense(expenseBody("2024-03-05", 2, "", 500))

	assert.Equal(suite.T(), "wife", expense.UserName)
	assert.Equal(suite.T(), "", expense.Category)
	assert.Equal(suite.T(), "", expense.Memo)
}

// Negative and zero amounts are valid, refunds are recorded as negative
// expenses.
func (suite *TestSuiteStandard) TestExpenseCreatePermissiveAmounts() {
	for _, amount := range []int64{-5000, 0, 10000} {
		expense := suite.createTestExpense(expenseBody("2024-03-05", 1, "refund", amount))
		assert.Equal(suite.T(), amount, expense.Amount)
	}
}

func (suite *TestSuiteStandard) TestExpenseCreateNoUser() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodPost, "http://example.com/v1/expenses", expenseBody("2024-03-05", 99, "food", 1000))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Equal(suite.T(), models.ErrUserNotFound.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestExpenseCreateInvalidDate() {
	tests := []string{
		"2024-13-01",
		"2024-02-30",
		"2024-3-5",
		"05.03.2024",
		"not-a-date",
	}

	for _, date := range tests {
		suite.T().Run(date, func(t *testing.T) {
			recorder := test.Request(suite.controller, t, http.MethodPost, "http://example.com/v1/expenses", expenseBody(date, 1, "food", 1000))

			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Equal(t, "dates must be specified in the YYYY-MM-DD format", test.DecodeError(t, recorder.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseCreateInvalidBody() {
	tests := []struct {
		name string
		body any
		err  string
	}{
		{"Empty body", nil, "the request body must not be empty"},
		{"Broken JSON", `{ broken`, "the body of your request contains invalid or un-parseable data"},
		{"Date missing", `{"user_id": 1, "amount": 1000}`, "the body of your request contains invalid or un-parseable data"},
		{"Amount missing", `{"date": "2024-03-05", "user_id": 1}`, "the body of your request contains invalid or un-parseable data"},
		{"Wrong type", `{"date": "2024-03-05", "user_id": 1, "amount": "expensive"}`, "cannot unmarshal"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(suite.controller, t, http.MethodPost, "http://example.com/v1/expenses", tt.body)

			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, recorder.Body.Bytes()), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGet() {
	suite.createTestExpense(expenseBody("2024-03-20", 2, "food", 5000))
	suite.createTestExpense(expenseBody("2024-03-05", 1, "food", 10000))
	suite.createTestExpense(expenseBody("2024-03-10", 1, "transport", 3000))

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/expenses?year=2024&month=3", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var expenses []models.ExpenseRecord
	test.DecodeResponse(suite.T(), &recorder, &expenses)

	require.Len(suite.T(), expenses, 3)

	// Ordered by date, not by insertion
	assert.Equal(suite.T(), "2024-03-05", expenses[0].Date.String())
	assert.Equal(suite.T(), "2024-03-10", expenses[1].Date.String())
	assert.Equal(suite.T(), "2024-03-20", expenses[2].Date.String())

	assert.Equal(suite.T(), "husband", expenses[0].UserName)
	assert.Equal(suite.T(), "wife", expenses[2].UserName)
}

func (suite *TestSuiteStandard) TestExpensesGetWindow() {
	suite.createTestExpense(expenseBody("2024-02-29", 1, "food", 1))
	suite.createTestExpense(expenseBody("2024-03-01", 1, "food", 2))
	suite.createTestExpense(expenseBody("2024-03-31", 1, "food", 3))
	suite.createTestExpense(expenseBody("2024-04-01", 1, "food", 4))

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/expenses?year=2024&month=3", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var expenses []models.ExpenseRecord
	test.DecodeResponse(suite.T(), &recorder, &expenses)

	require.Len(suite.T(), expenses, 2)
	assert.Equal(suite.T(), "2024-03-01", expenses[0].Date.String())
	assert.Equal(suite.T(), "2024-03-31", expenses[1].Date.String())
}

// The month window for December must roll over to January of the next year.
func (suite *TestSuiteStandard) TestExpensesGetDecember() {
	suite.createTestExpense(expenseBody("2024-12-31", 1, "gifts", 1))
	suite.createTestExpense(expenseBody("2025-01-01", 1, "gifts", 2))

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/expenses?year=2024&month=12", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var expenses []models.ExpenseRecord
	test.DecodeResponse(suite.T(), &recorder, &expenses)

	require.Len(suite.T(), expenses, 1)
	assert.Equal(suite.T(), "2024-12-31", expenses[0].Date.String())
}

func (suite *TestSuiteStandard) TestExpensesGetFilter() {
	suite.createTestExpense(expenseBody("2024-03-05", 1, "food", 10000))
	suite.createTestExpense(expenseBody("2024-03-10", 1, "transport", 3000))
	suite.createTestExpense(expenseBody("2024-03-20", 2, "food", 5000))
	suite.createTestExpense(expenseBody("2024-03-21", 2, "", 700))

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"By user", "user_id=1", 2},
		{"By category", "category=food", 2},
		{"By user and category", "user_id=2&category=food", 1},
		{"Empty category matches uncategorized", "category=", 1},
		{"Unknown user matches nothing", "user_id=99", 0},
		{"User zero matches nothing", "user_id=0", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(suite.controller, t, http.MethodGet, "http://example.com/v1/expenses?year=2024&month=3&"+tt.query, nil)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var expenses []models.ExpenseRecord
			test.DecodeResponse(t, &recorder, &expenses)
			assert.Len(t, expenses, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetEmptyMonth() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/v1/expenses?year=2024&month=3", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// An empty month is an empty list, not null
	assert.Equal(suite.T(), "[]", recorder.Body.String())
}

func (suite *TestSuiteStandard) TestExpensesGetInvalidQuery() {
	tests := []struct {
		name  string
		query string
		err   string
	}{
		{"No parameters", "", "the year query parameter must be set"},
		{"Year missing", "month=3", "the year query parameter must be set"},
		{"Month missing", "year=2024", "the month query parameter must be set"},
		{"Month too small", "year=2024&month=0", "the month must be between 1 and 12"},
		{"Month too large", "year=2024&month=13", "the month must be between 1 and 12"},
		{"User not a number", "year=2024&month=3&user_id=fred", "the query string contains invalid or un-parseable data"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(suite.controller, t, http.MethodGet, "http://example.com/v1/expenses?"+tt.query, nil)

			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, recorder.Body.Bytes()), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseDelete() {
	expense := suite.createTestExpense(expenseBody("2024-03-05", 1, "food", 1000))

	path := fmt.Sprintf("http://example.com/v1/expenses/%d", expense.ID)

	recorder := test.Request(suite.controller, suite.T(), http.MethodDelete, path, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Deleting again fails, the expense is gone
	recorder = test.Request(suite.controller, suite.T(), http.MethodDelete, path, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	assert.Equal(suite.T(), models.ErrExpenseNotFound.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestExpenseDeleteNotFound() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodDelete, "http://example.com/v1/expenses/4711", nil)

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	assert.Equal(suite.T(), models.ErrExpenseNotFound.Error(), test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestExpenseDeleteInvalidID() {
	for _, id := range []string{"mop", "-5", "1.5"} {
		suite.T().Run(id, func(t *testing.T) {
			recorder := test.Request(suite.controller, t, http.MethodDelete, "http://example.com/v1/expenses/"+id, nil)

			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Equal(t, "the ID in the URL must be a number", test.DecodeError(t, recorder.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesOptions() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/expenses", nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/v1/expenses/1", nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "OPTIONS, DELETE", recorder.Header().Get("allow"))
}

// TestExpensesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	tests := []struct {
		name string
		test func(t *testing.T)
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				recorder := test.Request(suite.controller, t, http.MethodPost, "http://example.com/v1/expenses", expenseBody("2024-03-05", 1, "food", 1000))
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
				assert.Equal(t, models.ErrGeneral.Error(), test.DecodeError(t, recorder.Body.Bytes()))
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(suite.controller, t, http.MethodGet, "http://example.com/v1/expenses?year=2024&month=3", nil)
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
				assert.Equal(t, models.ErrGeneral.Error(), test.DecodeError(t, recorder.Body.Bytes()))
			},
		},
		{
			"Delete fails",
			func(t *testing.T) {
				recorder := test.Request(suite.controller, t, http.MethodDelete, "http://example.com/v1/expenses/1", nil)
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
				assert.Equal(t, models.ErrGeneral.Error(), test.DecodeError(t, recorder.Body.Bytes()))
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}
