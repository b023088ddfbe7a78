package services

import (
	"errors"
	"strings"
	"time"

	"knowledge-portal-api/models"
	"knowledge-portal-api/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ToggleLike flips a user's like on a published submission. The like set is
// authoritative; the cached submissions.likes counter is recomputed from the
// set and rewritten in the same transaction, so it can never drift. Toggling
// twice restores both the liked state and the count.
func ToggleLike(db *gorm.DB, submissionID, userPhone string) (liked bool, count int64, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		var submission models.Submission
		if err := tx.Where("submission_id = ?", submissionID).First(&submission).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if submission.Status != utils.StatusPublished {
			return ErrInvalidState
		}

		var existing int64
		if err := tx.Model(&models.SubmissionLike{}).
			Where("submission_id = ? AND user_phone = ?", submissionID, userPhone).
			Count(&existing).Error; err != nil {
			return err
		}

		if existing > 0 {
			if err := tx.Where("submission_id = ? AND user_phone = ?", submissionID, userPhone).
				Delete(&models.SubmissionLike{}).Error; err != nil {
				return err
			}
			liked = false
		} else {
			like := models.SubmissionLike{
				SubmissionID: submissionID,
				UserPhone:    userPhone,
				CreatedAt:    time.Now(),
			}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			liked = true
		}

		if err := tx.Model(&models.SubmissionLike{}).
			Where("submission_id = ?", submissionID).
			Count(&count).Error; err != nil {
			return err
		}
		return tx.Model(&models.Submission{}).
			Where("submission_id = ?", submissionID).
			Update("likes", count).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

// AddComment appends a comment with the server timestamp. The text must be
// non-blank after trimming; the submission's status is not restricted.
func AddComment(db *gorm.DB, submissionID, userName, text string) (*models.SubmissionComment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	var comment models.SubmissionComment
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Submission{}).
			Where("submission_id = ?", submissionID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		comment = models.SubmissionComment{
			CommentID:    uuid.New().String(),
			SubmissionID: submissionID,
			UserName:     userName,
			Text:         text,
			CreatedAt:    time.Now(),
		}
		return tx.Create(&comment).Error
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// CommentsForSubmission returns a submission's comments oldest first.
func CommentsForSubmission(db *gorm.DB, submissionID string) ([]models.SubmissionComment, error) {
	var comments []models.SubmissionComment
	err := db.Where("submission_id = ?", submissionID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// DeleteComment is the coordinator's hard delete, no tombstone.
func DeleteComment(db *gorm.DB, commentID string) error {
	res := db.Where("comment_id = ?", commentID).Delete(&models.SubmissionComment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementView bumps the monotonic view counter. Called once per explicit
// detail open, never per list render, so counts reflect opens rather than
// page redraws.
func IncrementView(db *gorm.DB, submissionID string) error {
	res := db.Model(&models.Submission{}).
		Where("submission_id = ?", submissionID).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
