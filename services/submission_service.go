package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"knowledge-portal-api/models"
	"knowledge-portal-api/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionContent carries the contributor-editable fields of a submission.
// It is shared by creation and resubmission.
type SubmissionContent struct {
	Title       string
	Description string
	Field       string
	ContentType string
	FileName    string
	FileMime    string
	FileBytes   []byte
}

// CreateSubmissionInput is the full payload for a new submission.
type CreateSubmissionInput struct {
	SubmissionContent
	SenderPhone      string
	SenderName       string
	SenderNID        string
	SuggestedTopicID *string
}

func (c *SubmissionContent) validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title is required: %w", ErrValidation)
	}
	if !utils.IsValidField(c.Field) {
		return fmt.Errorf("unknown field %q: %w", c.Field, ErrValidation)
	}
	if !utils.IsValidContentType(c.ContentType) {
		return fmt.Errorf("unknown content type %q: %w", c.ContentType, ErrValidation)
	}
	return nil
}

// CreateSubmission registers a new submission in status pending with zeroed
// score, likes and views.
func CreateSubmission(db *gorm.DB, input CreateSubmissionInput) (*models.Submission, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if input.SenderPhone == "" {
		return nil, fmt.Errorf("sender phone is required: %w", ErrValidation)
	}

	submission := models.Submission{
		SubmissionID:     uuid.New().String(),
		Title:            strings.TrimSpace(input.Title),
		Description:      input.Description,
		SenderPhone:      input.SenderPhone,
		SenderName:       input.SenderName,
		SenderNID:        input.SenderNID,
		SuggestedTopicID: input.SuggestedTopicID,
		Field:            input.Field,
		ContentType:      input.ContentType,
		FileName:         input.FileName,
		FileMime:         input.FileMime,
		FileBytes:        input.FileBytes,
		Status:           utils.StatusPending,
		CreatedAt:        time.Now(),
	}

	if err := db.Create(&submission).Error; err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}
	return &submission, nil
}

// ResubmitSubmission applies the contributor's edits to a submission that was
// sent back for correction. The status resets to pending and any stale
// knowledge code is cleared. Legal only while the submission is in
// correction_needed.
func ResubmitSubmission(db *gorm.DB, submissionID string, content SubmissionContent) (*models.Submission, error) {
	if err := content.validate(); err != nil {
		return nil, err
	}

	var updated models.Submission
	err := db.Transaction(func(tx *gorm.DB) error {
		// Guarded update: the status predicate keeps a concurrent coordinator
		// decision from interleaving with the resubmit.
		res := tx.Model(&models.Submission{}).
			Where("submission_id = ? AND status = ?", submissionID, utils.StatusCorrectionNeeded).
			Updates(map[string]interface{}{
				"title":          strings.TrimSpace(content.Title),
				"description":    content.Description,
				"field":          content.Field,
				"content_type":   content.ContentType,
				"file_name":      content.FileName,
				"file_mime":      content.FileMime,
				"file_bytes":     content.FileBytes,
				"status":         utils.StatusPending,
				"knowledge_code": "",
			})
		if res.Error != nil {
			return fmt.Errorf("failed to update submission: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Submission{}).
				Where("submission_id = ?", submissionID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrNotFound
			}
			return ErrInvalidState
		}
		return tx.Where("submission_id = ?", submissionID).First(&updated).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetSubmission loads one submission by id.
func GetSubmission(db *gorm.DB, submissionID string) (*models.Submission, error) {
	var submission models.Submission
	if err := db.Where("submission_id = ?", submissionID).First(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &submission, nil
}

// SubmissionsBySender lists a contributor's own submissions, newest first.
func SubmissionsBySender(db *gorm.DB, senderPhone string) ([]models.Submission, error) {
	var submissions []models.Submission
	err := db.Where("sender_phone = ?", senderPhone).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

// PublishedSubmissions lists the public showcase, newest first.
func PublishedSubmissions(db *gorm.DB) ([]models.Submission, error) {
	var submissions []models.Submission
	err := db.Where("status = ?", utils.StatusPublished).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

// ActionableSubmissions lists everything still needing coordinator or referee
// attention, newest first.
func ActionableSubmissions(db *gorm.DB) ([]models.Submission, error) {
	var submissions []models.Submission
	err := db.Where("status IN ?", utils.ActionableStatuses()).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

// DeleteSubmission is the coordinator's administrative hard delete. The
// cascade to assignments, likes and comments happens in one transaction so a
// reader never sees orphaned engagement rows.
func DeleteSubmission(db *gorm.DB, submissionID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("submission_id = ?", submissionID).Delete(&models.Submission{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Where("submission_id = ?", submissionID).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("submission_id = ?", submissionID).Delete(&models.SubmissionLike{}).Error; err != nil {
			return err
		}
		return tx.Where("submission_id = ?", submissionID).Delete(&models.SubmissionComment{}).Error
	})
}
