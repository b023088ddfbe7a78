package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"knowledge-portal-api/models"
	"knowledge-portal-api/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Identity is the authenticated principal handed to the session layer.
type Identity struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with its bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// RegisterUser self-registers a contributor. Registration is an upsert keyed
// by phone: re-registering an existing phone overwrites name, national id and
// password, matching the portal's long-standing behavior. Email is optional
// and only used for decision notifications.
func RegisterUser(db *gorm.DB, name, phone, nid, email, password string) (*models.User, error) {
	phone = utils.NormalizePhone(phone)
	nid = utils.NormalizeNID(nid)
	if name == "" || phone == "" || nid == "" || password == "" {
		return nil, fmt.Errorf("name, phone, national id and password are required: %w", ErrValidation)
	}
	if email != "" && !utils.ValidateEmail(email) {
		return nil, fmt.Errorf("invalid email address: %w", ErrValidation)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Phone:      phone,
		Name:       name,
		NationalID: nid,
		Email:      email,
		Password:   hash,
		CreatedAt:  time.Now(),
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "nid", "email", "password"}),
	}).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return &user, nil
}

// AuthenticateUser checks a contributor's phone and password.
func AuthenticateUser(db *gorm.DB, phone, password string) (*Identity, error) {
	var user models.User
	if err := db.Where("phone = ?", utils.NormalizePhone(phone)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !CheckPasswordHash(password, user.Password) {
		return nil, ErrNotFound
	}
	return &Identity{Phone: user.Phone, Name: user.Name, Role: utils.RoleUser}, nil
}

// AuthenticateReferee checks a referee's phone, national id and password. A
// deactivated referee fails with ErrInactive; callers surface it with the same
// message as ErrNotFound so credentials cannot be probed.
func AuthenticateReferee(db *gorm.DB, phone, nid, password string) (*Identity, error) {
	var referee models.Referee
	err := db.Where("phone = ? AND nid = ?", utils.NormalizePhone(phone), utils.NormalizeNID(nid)).
		First(&referee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !CheckPasswordHash(password, referee.Password) {
		return nil, ErrNotFound
	}
	if !referee.IsActive {
		return nil, ErrInactive
	}
	return &Identity{Phone: referee.Phone, Name: referee.FullName(), Role: utils.RoleReferee}, nil
}

// AuthenticateManager checks the fixed coordinator triple configured via
// MANAGER_PHONE, MANAGER_NID and MANAGER_PASSWORD.
func AuthenticateManager(phone, nid, password string) (*Identity, error) {
	managerPhone := utils.NormalizePhone(os.Getenv("MANAGER_PHONE"))
	managerNID := utils.NormalizeNID(os.Getenv("MANAGER_NID"))
	managerPassword := os.Getenv("MANAGER_PASSWORD")
	if managerPhone == "" || managerPassword == "" {
		return nil, ErrNotFound
	}
	if utils.NormalizePhone(phone) != managerPhone ||
		utils.NormalizeNID(nid) != managerNID ||
		password != managerPassword {
		return nil, ErrNotFound
	}
	name := os.Getenv("MANAGER_NAME")
	if name == "" {
		name = "System Manager"
	}
	return &Identity{Phone: managerPhone, Name: name, Role: utils.RoleManager}, nil
}
