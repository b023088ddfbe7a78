package models

import "time"

// Submission is a contributor's candidate knowledge artifact moving through the
// review workflow. Status values live in utils (StatusPending and friends).
type Submission struct {
	SubmissionID     string `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	Title            string `gorm:"column:title" json:"title"`
	Description      string `gorm:"column:description" json:"description"`
	SenderPhone      string `gorm:"column:sender_phone" json:"sender_phone"`
	SenderName       string `gorm:"column:sender_name" json:"sender_name"`
	SenderNID        string `gorm:"column:sender_nid" json:"sender_nid"`
	SuggestedTopicID *string `gorm:"column:suggested_topic_id" json:"suggested_topic_id,omitempty"`
	Field            string `gorm:"column:field" json:"field"`
	ContentType      string `gorm:"column:content_type" json:"content_type"`
	FileName         string `gorm:"column:file_name" json:"file_name,omitempty"`
	FileMime         string `gorm:"column:file_mime" json:"file_mime,omitempty"`
	FileBytes        []byte `gorm:"column:file_bytes" json:"-"`
	Status           string `gorm:"column:status" json:"status"`
	// Likes mirrors the row count of submission_likes and is rewritten in the
	// same transaction as every like-set change.
	Likes         int       `gorm:"column:likes;default:0" json:"likes"`
	Views         int       `gorm:"column:views;default:0" json:"views"`
	Score         int       `gorm:"column:score;default:0" json:"score"`
	Feedback      string    `gorm:"column:feedback" json:"feedback"`
	KnowledgeCode string    `gorm:"column:knowledge_code" json:"knowledge_code"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`

	// Relations
	Assignments []Assignment        `gorm:"foreignKey:SubmissionID;references:SubmissionID;constraint:OnDelete:CASCADE" json:"assignments,omitempty"`
	Comments    []SubmissionComment `gorm:"foreignKey:SubmissionID;references:SubmissionID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	LikeSet     []SubmissionLike    `gorm:"foreignKey:SubmissionID;references:SubmissionID;constraint:OnDelete:CASCADE" json:"-"`
}

// SubmissionLike is one row of the authoritative like set. The pair
// (submission_id, user_phone) is the primary key, so a user can hold at most
// one like per submission.
type SubmissionLike struct {
	SubmissionID string    `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	UserPhone    string    `gorm:"primaryKey;column:user_phone" json:"user_phone"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

// SubmissionComment is a public comment on a showcased submission.
type SubmissionComment struct {
	CommentID    string    `gorm:"primaryKey;column:comment_id" json:"comment_id"`
	SubmissionID string    `gorm:"column:submission_id" json:"submission_id"`
	UserName     string    `gorm:"column:user_name" json:"user_name"`
	Text         string    `gorm:"column:text" json:"text"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides
func (Submission) TableName() string {
	return "submissions"
}

func (SubmissionLike) TableName() string {
	return "submission_likes"
}

func (SubmissionComment) TableName() string {
	return "submission_comments"
}
