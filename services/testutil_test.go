package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hajruuudin/life-line/models"
)

// newTestDB opens an in-memory database limited to a single connection so
// concurrent transactions serialize the way the Postgres row guards do.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FamilyMember{},
		&models.Medication{},
		&models.MedicationUsage{},
		&models.IllnessLog{},
		&models.GoogleCredentials{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Name: "Test User"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestMember(t *testing.T, db *gorm.DB, userID uint, name string) *models.FamilyMember {
	t.Helper()
	member := &models.FamilyMember{UserID: userID, Name: name}
	require.NoError(t, db.Create(member).Error)
	return member
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
