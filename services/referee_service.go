package services

import (
	"fmt"
	"time"

	"knowledge-portal-api/models"
	"knowledge-portal-api/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertRefereeInput carries the coordinator's referee registration form.
type UpsertRefereeInput struct {
	Phone      string
	FirstName  string
	LastName   string
	NationalID string
	Field      string
	Password   string
	IsActive   bool
}

// UpsertReferee registers or updates a referee profile, keyed by phone.
// Coordinator-only; the password is stored as a bcrypt hash.
func UpsertReferee(db *gorm.DB, input UpsertRefereeInput) (*models.Referee, error) {
	phone := utils.NormalizePhone(input.Phone)
	nid := utils.NormalizeNID(input.NationalID)
	if input.FirstName == "" || input.LastName == "" || phone == "" || nid == "" || input.Password == "" {
		return nil, fmt.Errorf("all referee fields are required: %w", ErrValidation)
	}
	if !utils.IsValidField(input.Field) {
		return nil, fmt.Errorf("unknown field %q: %w", input.Field, ErrValidation)
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	referee := models.Referee{
		Phone:      phone,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		NationalID: nid,
		Field:      input.Field,
		Password:   hash,
		IsActive:   input.IsActive,
		CreatedAt:  time.Now(),
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone"}},
		DoUpdates: clause.AssignmentColumns([]string{"first_name", "last_name", "nid", "field", "password", "is_active"}),
	}).Create(&referee).Error; err != nil {
		return nil, fmt.Errorf("failed to save referee: %w", err)
	}
	return &referee, nil
}

// ListReferees returns all referee profiles, newest first.
func ListReferees(db *gorm.DB) ([]models.Referee, error) {
	var referees []models.Referee
	err := db.Order("created_at DESC").Find(&referees).Error
	return referees, err
}

// SetRefereeActive toggles a referee's eligibility flag. Existing assignments
// are untouched; routing simply stops selecting the referee.
func SetRefereeActive(db *gorm.DB, phone string, active bool) error {
	res := db.Model(&models.Referee{}).
		Where("phone = ?", utils.NormalizePhone(phone)).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteReferee removes a referee profile entirely.
func DeleteReferee(db *gorm.DB, phone string) error {
	res := db.Where("phone = ?", utils.NormalizePhone(phone)).Delete(&models.Referee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
