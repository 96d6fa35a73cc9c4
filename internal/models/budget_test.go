package models_test

import (
	"github.com/couple-budget/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSetBudget() {
	budget, err := models.SetBudget(suite.db, 2024, 3, 500000)

	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), 2024, budget.Year)
	assert.Equal(suite.T(), 3, budget.Month)
	assert.Equal(suite.T(), int64(500000), budget.Amount)
}

// TestSetBudgetUpsert verifies that setting the budget for the same month
// twice updates the existing row instead of creating a second one.
func (suite *TestSuiteStandard) TestSetBudgetUpsert() {
	budget, err := models.SetBudget(suite.db, 2024, 3, 500000)
	require.Nil(suite.T(), err)

	updated, err := models.SetBudget(suite.db, 2024, 3, 700000)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(700000), updated.Amount)
	assert.Equal(suite.T(), budget.ID, updated.ID)

	var count int64
	suite.db.Model(&models.Budget{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestSetBudgetSeparateMonths() {
	_, err := models.SetBudget(suite.db, 2024, 3, 500000)
	require.Nil(suite.T(), err)

	_, err = models.SetBudget(suite.db, 2024, 4, 400000)
	require.Nil(suite.T(), err)

	_, err = models.SetBudget(suite.db, 2023, 3, 300000)
	require.Nil(suite.T(), err)

	budget, err := models.BudgetForMonth(suite.db, 2024, 3)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(500000), budget.Amount)

	budget, err = models.BudgetForMonth(suite.db, 2023, 3)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(300000), budget.Amount)
}

// A budget of 0 is allowed, it expresses "we plan to spend nothing".
func (suite *TestSuiteStandard) TestSetBudgetZero() {
	_, err := models.SetBudget(suite.db, 2024, 3, 0)
	require.Nil(suite.T(), err)

	budget, err := models.BudgetForMonth(suite.db, 2024, 3)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(0), budget.Amount)
}

func (suite *TestSuiteStandard) TestBudgetForMonthNotFound() {
	_, err := models.BudgetForMonth(suite.db, 2024, 3)
	assert.ErrorIs(suite.T(), err, models.ErrBudgetNotFound)
}
