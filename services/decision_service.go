package services

import (
	"errors"
	"fmt"
	"strings"

	"knowledge-portal-api/models"
	"knowledge-portal-api/utils"

	"gorm.io/gorm"
)

// Decide applies the coordinator's final call on a submission awaiting
// decision. published requires a non-blank knowledge code; status and code are
// written in one guarded update. correction_needed and rejected change the
// status only; referee feedback stays visible to the contributor.
// waiting_manager is an explicit hold and leaves the submission untouched.
func Decide(db *gorm.DB, submissionID, decision, knowledgeCode string) (*models.Submission, error) {
	if !utils.IsValidManagerDecision(decision) {
		return nil, fmt.Errorf("unknown decision %q: %w", decision, ErrValidation)
	}

	var updated models.Submission
	err := db.Transaction(func(tx *gorm.DB) error {
		var submission models.Submission
		if err := tx.Where("submission_id = ?", submissionID).First(&submission).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if decision == utils.StatusWaitingManager {
			updated = submission
			return nil
		}

		if submission.Status != utils.StatusWaitingManager {
			return ErrInvalidState
		}

		values := map[string]interface{}{"status": decision}
		if decision == utils.StatusPublished {
			code := strings.TrimSpace(knowledgeCode)
			if code == "" {
				return ErrMissingKnowledgeCode
			}
			values["knowledge_code"] = code
		}

		res := tx.Model(&models.Submission{}).
			Where("submission_id = ? AND status = ?", submissionID, utils.StatusWaitingManager).
			Updates(values)
		if res.Error != nil {
			return fmt.Errorf("failed to apply decision: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrInvalidState
		}

		return tx.Where("submission_id = ?", submissionID).First(&updated).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
