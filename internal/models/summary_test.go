package models_test

import (
	"github.com/couple-budget/backend/internal/models"
	"github.com/couple-budget/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSummarize() {
	suite.createTestBudget(models.Budget{Year: 2024, Month: 3, Amount: 20000})
	suite.createTestExpense(models.Expense{Date: types.NewDate(2024, 3, 5), UserID: 1, Category: "food", Amount: 10000})
	suite.createTestExpense(models.Expense{Date: types.NewDate(2024, 3, 20), UserID: 2, Category: "food", Amount: 5000})
	suite.createTestExpense(models.Expense{Date: types.NewDate(2024, 3, 10), UserID: 1, Category: "transport", Amount: 3000})

	summary, err := models.Summarize(suite.db, 2024, 3)
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), 2024, summary.Year)
	assert.Equal(suite.T(), 3, summary.Month)
	require.NotNil(suite.T(), summary.Budget)
	assert.Equal(suite.T(), int64(20000), *summary.Budget)
	assert.Equal(suite.T(), int64(18000), summary.TotalUsed)
	require.NotNil(suite.T(), summary.Remain)
	assert.Equal(suite.T(), int64(2000), *summary.Remain)
	require.NotNil(suite.T(), summary.UsageRate)
	assert.Equal(suite.T(), 90.0, *summary.UsageRate)

	require.Len(suite.T(), summary.ByUser, 2)
	assert.Equal(suite.T(), "husband", summary.ByUser[0].UserName)
	assert.Equal(suite.T(), int64(13000), summary.ByUser[0].TotalUsed)
	assert.Equal(suite.T(), "wife", summary.ByUser[1].UserName)
	assert.Equal(suite.T(), int64(5000), summary.ByUser[1].TotalUsed)

	require.Len(suite.T(), summary.ByCategory, 2)
	assert.Equal(suite.T(), "food", summary.ByCategory[0].Category)
	assert.Equal(suite.T(), int64(15000), summary.ByCategory[0].TotalUsed)
	assert.Equal(suite.T(), "transport", summary.ByCategory[1].Category)
	assert.Equal(suite.T(), int64(3000), summary.ByCategory[1].TotalUsed)
}

// Without a budget the totals are still computed, but budget, remain and
// usage_rate stay unset.
func (suite *TestSuiteStandard) TestSummarizeNoBudget() {
	suite.createTestExpense(models.Expense{Date: types.NewDate(2024, 3, 5), UserID: 1, Category: "food", Amount: 10000})

	summary, err := models.Summarize(suite.db, 2024, 3)
	require.Nil(suite.T(), err)

	assert.Nil(suite.T(), summary.Budget)
	assert.Nil(suite.T(), summary.Remain)
	assert.Nil(suite.T(), summary.UsageRate)
	assert.Equal(suite.T(), int64(10000), summary.TotalUsed)
	require.Len(suite.T(), summary.ByUser, 2)
	assert.Equal(suite.T(), int64(10000), summary.ByUser[0].TotalUsed)
	assert.Equal(suite.T(), int64(0), summary.ByUser[1].TotalUsed)
}

// A budget of 0 yields a remain, but no usage_rate: spending cannot be
// expressed as a percentage of nothing.
func (suite *TestSuiteStandard) TestSummarizeZeroBudget() {
	suite.createTestBudget(models.Budget{Year: 2024, Month: 3, Amount: 0})
	suite.createTestExpense(models.Expense{Date: types.NewDate(2024, 3, 5), UserID: 1, Category: "food", Amount: 4000})

	summary, err := models.Summarize(suite.db, 2024, 3)
	require.Nil(suite.T(), err)

	require.NotNil(suite.T(), summary.Budget)
	assert.Equal(suite.T(), int64(0), *summary.Budget)
	require.NotNil(suite.T(), summary.Remain)
	assert.Equal(suite.T(), int64(-4000), *summary.Remain)
	assert.Nil(suite.T(), summary.UsageRate)
}

func (suite *TestSuiteStandard) TestSummarizeEmptyMonth() {
	summary, err := models.Summarize(suite.db, 2024, 3)
	require.Nil(suite.T(), err)

	assert.Nil(suite.T(), summary.Budget)
	assert.Equal(suite.T(), int64(0), summary.TotalUsed)

	require.Len(suite.T(), summary.ByUser, 2)
	assert.Equal(suite.T(), int64(0), summary.ByUser[0].TotalUsed)
	assert.Equal(suite.T(), int64(0), summary.ByUser[1].TotalUsed)

	assert.NotNil(suite.T(), summary.ByCategory)
	assert.Len(suite.T(), summary.ByCategory, 0)
}

// Categories with the same total are ordered by name so that the report is
// deterministic.
func (suite *TestSuiteStandard) TestSummarizeCategoryOrder() {
	suite.createTestExpense(models.Expense{Date: types.NewDate(2024, 3, 5), UserID: 1, Category: "transport", Amount: 5000})
	suite.createTestExpense(models.Expense{Date: types.NewDate(2024, 3, 10), UserID: 1, Category: "food", Amount: 5000})
	suite.createTestExpense(models.Expense{Date: types.NewDate(2024, 3, 15), UserID: 2, Category: "leisure", Amount: 9000})

	summary, err := models.Summarize(suite.db, 2024, 3)
	require.Nil(suite.T(), err)

	require.Len(suite.T(), summary.ByCategory, 3)
	assert.Equal(suite.T(), "leisure", summary.ByCategory[0].Category)
	assert.Equal(suite.T(), "food", summary.ByCategory[1].Category)
	assert.Equal(suite.T(), "transport", summary.ByCategory[2].Category)
}

func (suite *TestSuiteStandard) TestSummarizeIgnoresOtherMonths() {
	suite.createTestBudget(models.Budget{Year: 2024, Month: 3, Amount: 20000})
	suite.createTestExpense(models.Expense{Date: types.NewDate(2024, 2, 29), UserID: 1, Category: "food", Amount: 1000})
	suite.createTestExpense(models.Expense{Date: types.NewDate(2024, 3, 31), UserID: 1, Category: "food", Amount: 2000})
	suite.createTestExpense(models.Expense{Date: types.NewDate(2024, 4, 1), UserID: 1, Category: "food", Amount: 4000})

	summary, err := models.Summarize(suite.db, 2024, 3)
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), int64(2000), summary.TotalUsed)
	require.Len(suite.T(), summary.ByCategory, 1)
	assert.Equal(suite.T(), int64(2000), summary.ByCategory[0].TotalUsed)
}

func (suite *TestSuiteStandard) TestSummarizeDBClosed() {
	suite.CloseDB()

	_, err := models.Summarize(suite.db, 2024, 3)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
