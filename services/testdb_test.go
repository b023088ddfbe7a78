package services

import (
	"path/filepath"
	"testing"

	"knowledge-portal-api/config"
	"knowledge-portal-api/models"
	"knowledge-portal-api/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway sqlite database with the portal schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "portal_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func seedReferee(t *testing.T, db *gorm.DB, phone, firstName, field string, active bool) models.Referee {
	t.Helper()

	referee, err := UpsertReferee(db, UpsertRefereeInput{
		Phone:      phone,
		FirstName:  firstName,
		LastName:   "Referee",
		NationalID: "77" + phone,
		Field:      field,
		Password:   "referee-secret",
		IsActive:   active,
	})
	require.NoError(t, err)
	return *referee
}

func seedSubmission(t *testing.T, db *gorm.DB, title, field string) *models.Submission {
	t.Helper()

	submission, err := CreateSubmission(db, CreateSubmissionInput{
		SubmissionContent: SubmissionContent{
			Title:       title,
			Description: "a test artifact",
			Field:       field,
			ContentType: utils.ContentTypes[1],
		},
		SenderPhone: "0912000001",
		SenderName:  "Test Sender",
		SenderNID:   "1230001111",
	})
	require.NoError(t, err)
	return submission
}

func forceStatus(t *testing.T, db *gorm.DB, submissionID, status string) {
	t.Helper()

	require.NoError(t, db.Model(&models.Submission{}).
		Where("submission_id = ?", submissionID).
		Update("status", status).Error)
}

func reloadSubmission(t *testing.T, db *gorm.DB, submissionID string) models.Submission {
	t.Helper()

	var submission models.Submission
	require.NoError(t, db.Where("submission_id = ?", submissionID).First(&submission).Error)
	return submission
}
