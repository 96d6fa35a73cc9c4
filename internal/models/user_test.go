package models_test

import (
	"github.com/couple-budget/backend/internal/models"
	"github.com/couple-budget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestUsersSeeded() {
	users, err := models.Users(suite.db)

	require.Nil(suite.T(), err)
	require.Len(suite.T(), users, 2)
	assert.Equal(suite.T(), uint(1), users[0].ID)
	assert.Equal(suite.T(), "husband", users[0].Name)
	assert.Equal(suite.T(), uint(2), users[1].ID)
	assert.Equal(suite.T(), "wife", users[1].Name)
}

// TestSeedUsersIdempotent verifies that connecting to an existing database
// does not duplicate the default users or change their IDs.
func (suite *TestSuiteStandard) TestSeedUsersIdempotent() {
	path := test.TmpFile(suite.T())

	db, err := models.Connect(path)
	require.Nil(suite.T(), err)

	sqlDB, err := db.DB()
	require.Nil(suite.T(), err)
	sqlDB.Close()

	db, err = models.Connect(path)
	require.Nil(suite.T(), err)
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	users, err := models.Users(db)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), users, 2)
	assert.Equal(suite.T(), uint(1), users[0].ID)
	assert.Equal(suite.T(), uint(2), users[1].ID)
}

func (suite *TestSuiteStandard) TestUsersDBClosed() {
	suite.CloseDB()

	_, err := models.Users(suite.db)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
