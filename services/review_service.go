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

// EligibleReferees returns the active referees registered for a field. Only
// these may receive assignments for submissions tagged with that field.
func EligibleReferees(db *gorm.DB, field string) ([]models.Referee, error) {
	var referees []models.Referee
	err := db.Where("field = ? AND is_active = ?", field, true).
		Order("created_at ASC").
		Find(&referees).Error
	return referees, err
}

// RouteSubmission creates one pending assignment per selected referee and
// moves the submission to waiting_referee. Selected referees must be active
// and registered for the submission's field. Routing a submission that is
// already under review adds further assignments instead of replacing the
// existing ones; existing verdicts are never discarded.
func RouteSubmission(db *gorm.DB, submissionID string, refereePhones []string) ([]models.Assignment, error) {
	if len(refereePhones) == 0 {
		return nil, ErrEmptySelection
	}

	var created []models.Assignment
	err := db.Transaction(func(tx *gorm.DB) error {
		var submission models.Submission
		if err := tx.Where("submission_id = ?", submissionID).First(&submission).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if submission.Status != utils.StatusPending && submission.Status != utils.StatusWaitingReferee {
			return ErrInvalidState
		}

		eligible, err := EligibleReferees(tx, submission.Field)
		if err != nil {
			return err
		}
		if len(eligible) == 0 {
			return ErrNoEligibleReviewer
		}

		byPhone := make(map[string]models.Referee, len(eligible))
		for _, referee := range eligible {
			byPhone[referee.Phone] = referee
		}

		now := time.Now()
		for _, phone := range refereePhones {
			referee, ok := byPhone[utils.NormalizePhone(phone)]
			if !ok {
				return fmt.Errorf("referee %s is not active in field %s: %w",
					phone, submission.Field, ErrNoEligibleReviewer)
			}
			assignment := models.Assignment{
				AssignmentID: uuid.New().String(),
				SubmissionID: submission.SubmissionID,
				RefereePhone: referee.Phone,
				RefereeName:  referee.FullName(),
				RefereeField: referee.Field,
				Decision:     utils.DecisionPending,
				CreatedAt:    now,
			}
			if err := tx.Create(&assignment).Error; err != nil {
				return fmt.Errorf("failed to create assignment: %w", err)
			}
			created = append(created, assignment)
		}

		return tx.Model(&models.Submission{}).
			Where("submission_id = ?", submission.SubmissionID).
			Update("status", utils.StatusWaitingReferee).Error
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// SubmitVerdict records one referee's independent evaluation on an assignment.
// A recommend_publish verdict must carry a suggested knowledge code. Concluded
// verdicts stamp reviewed_at, copy score and feedback onto the submission as
// the last recorded aggregate, and escalate the submission to waiting_manager;
// the terminal call stays with the coordinator. Saving with decision pending
// keeps the assignment open and touches nothing else.
func SubmitVerdict(db *gorm.DB, assignmentID, decision, feedback string, score int, suggestedCode string) (*models.Assignment, error) {
	if !utils.IsValidDecision(decision) {
		return nil, fmt.Errorf("unknown decision %q: %w", decision, ErrValidation)
	}
	if score < 0 || score > 100 {
		return nil, fmt.Errorf("score must be between 0 and 100: %w", ErrValidation)
	}
	suggestedCode = strings.TrimSpace(suggestedCode)
	if decision == utils.DecisionRecommendPublish && suggestedCode == "" {
		return nil, ErrMissingKnowledgeCode
	}

	var updated models.Assignment
	err := db.Transaction(func(tx *gorm.DB) error {
		var assignment models.Assignment
		if err := tx.Where("assignment_id = ?", assignmentID).First(&assignment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		values := map[string]interface{}{
			"decision":                 decision,
			"feedback":                 feedback,
			"score":                    score,
			"suggested_knowledge_code": suggestedCode,
		}
		concluded := utils.IsConcluded(decision)
		if concluded {
			values["reviewed_at"] = time.Now()
		}
		if err := tx.Model(&models.Assignment{}).
			Where("assignment_id = ?", assignment.AssignmentID).
			Updates(values).Error; err != nil {
			return fmt.Errorf("failed to update assignment: %w", err)
		}

		if concluded {
			if err := tx.Model(&models.Submission{}).
				Where("submission_id = ?", assignment.SubmissionID).
				Updates(map[string]interface{}{
					"score":    score,
					"feedback": feedback,
				}).Error; err != nil {
				return err
			}
			// Guarded escalation: only flips waiting_referee, never claws back
			// a submission the coordinator already decided.
			if err := tx.Model(&models.Submission{}).
				Where("submission_id = ? AND status = ?", assignment.SubmissionID, utils.StatusWaitingReferee).
				Update("status", utils.StatusWaitingManager).Error; err != nil {
				return err
			}
		}

		return tx.Where("assignment_id = ?", assignment.AssignmentID).First(&updated).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// AssignmentsForSubmission returns every assignment of one submission in
// creation order. The coordinator reads the raw list; there is deliberately no
// vote aggregation.
func AssignmentsForSubmission(db *gorm.DB, submissionID string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := db.Where("submission_id = ?", submissionID).
		Order("created_at ASC").
		Find(&assignments).Error
	return assignments, err
}

// AssignmentsForReferee returns a referee's worklist with the submissions
// preloaded, newest first.
func AssignmentsForReferee(db *gorm.DB, refereePhone string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := db.Preload("Submission").
		Where("referee_phone = ?", refereePhone).
		Order("created_at DESC").
		Find(&assignments).Error
	return assignments, err
}

// DecidableSubmissions lists the still-open submissions that already carry at
// least one concluded verdict, i.e. the coordinator's final-decision desk.
func DecidableSubmissions(db *gorm.DB) ([]models.Submission, error) {
	var submissions []models.Submission
	err := db.Where("status IN ?", utils.ActionableStatuses()).
		Where("submission_id IN (?)", db.Model(&models.Assignment{}).
			Select("submission_id").
			Where("decision IN ?", []string{
				utils.DecisionCorrectionNeeded,
				utils.DecisionRejected,
				utils.DecisionRecommendPublish,
			})).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}
