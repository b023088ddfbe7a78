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

// CreateForumPost files a new discussion post in status pending. It stays
// hidden from the public feed until the coordinator approves it.
func CreateForumPost(db *gorm.DB, senderPhone, senderName, senderRole, text string) (*models.ForumPost, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	post := models.ForumPost{
		PostID:      uuid.New().String(),
		SenderPhone: senderPhone,
		SenderName:  senderName,
		SenderRole:  senderRole,
		Text:        text,
		Status:      utils.ForumPending,
		CreatedAt:   time.Now(),
	}
	if err := db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to create forum post: %w", err)
	}
	return &post, nil
}

// ApprovedForumPosts returns the public feed with replies, newest post first.
func ApprovedForumPosts(db *gorm.DB) ([]models.ForumPost, error) {
	var posts []models.ForumPost
	err := db.Preload("Replies", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).
		Where("status = ?", utils.ForumApproved).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// PendingForumPosts returns the coordinator's moderation queue, newest first.
func PendingForumPosts(db *gorm.DB) ([]models.ForumPost, error) {
	var posts []models.ForumPost
	err := db.Where("status = ?", utils.ForumPending).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// SetForumPostStatus applies the coordinator's binary approve/reject call.
func SetForumPostStatus(db *gorm.DB, postID, status string) error {
	if status != utils.ForumApproved && status != utils.ForumRejected {
		return fmt.Errorf("unknown forum status %q: %w", status, ErrValidation)
	}
	res := db.Model(&models.ForumPost{}).
		Where("post_id = ?", postID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddForumReply attaches a referee's answer to an approved post.
func AddForumReply(db *gorm.DB, postID, refereePhone, refereeName, text string) (*models.ForumReply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	var reply models.ForumReply
	err := db.Transaction(func(tx *gorm.DB) error {
		var post models.ForumPost
		if err := tx.Where("post_id = ?", postID).First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if post.Status != utils.ForumApproved {
			return ErrInvalidState
		}
		reply = models.ForumReply{
			ReplyID:      uuid.New().String(),
			PostID:       postID,
			RefereePhone: refereePhone,
			RefereeName:  refereeName,
			Text:         text,
			CreatedAt:    time.Now(),
		}
		return tx.Create(&reply).Error
	})
	if err != nil {
		return nil, err
	}
	return &reply, nil
}
