package dao

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_fk=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, InitTables(db))

	t.Cleanup(func() {
		db.Exec("DELETE FROM condition_fulfillments")
		db.Exec("DELETE FROM unlock_conditions")
		db.Exec("DELETE FROM campaign_validations")
		db.Exec("DELETE FROM campaign_bonus_configs")
		db.Exec("DELETE FROM daily_bonuses")
		db.Exec("DELETE FROM user_actions")
		db.Exec("DELETE FROM actions")
		db.Exec("DELETE FROM challenges")
		db.Exec("DELETE FROM campaigns")
		db.Exec("DELETE FROM users")
	})

	return db
}
