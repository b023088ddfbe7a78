package models

import "time"

// ForumPost is a discussion-board message. Posts start pending and only appear
// publicly after the coordinator approves them.
type ForumPost struct {
	PostID      string    `gorm:"primaryKey;column:post_id" json:"post_id"`
	SenderPhone string    `gorm:"column:sender_phone" json:"sender_phone"`
	SenderName  string    `gorm:"column:sender_name" json:"sender_name"`
	SenderRole  string    `gorm:"column:sender_role" json:"sender_role"`
	Text        string    `gorm:"column:text" json:"text"`
	Status      string    `gorm:"column:status" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`

	Replies []ForumReply `gorm:"foreignKey:PostID;references:PostID;constraint:OnDelete:CASCADE" json:"replies,omitempty"`
}

// ForumReply is a referee's answer attached to an approved post.
type ForumReply struct {
	ReplyID      string    `gorm:"primaryKey;column:reply_id" json:"reply_id"`
	PostID       string    `gorm:"column:post_id;index" json:"post_id"`
	RefereePhone string    `gorm:"column:referee_phone" json:"referee_phone"`
	RefereeName  string    `gorm:"column:referee_name" json:"referee_name"`
	Text         string    `gorm:"column:text" json:"text"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides
func (ForumPost) TableName() string {
	return "forum_posts"
}

func (ForumReply) TableName() string {
	return "forum_replies"
}
