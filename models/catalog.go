package models

import "time"

// Topic is a coordinator-proposed subject contributors may base a submission on.
type Topic struct {
	TopicID     string    `gorm:"primaryKey;column:topic_id" json:"topic_id"`
	Title       string    `gorm:"column:title" json:"title"`
	Field       string    `gorm:"column:field" json:"field"`
	Description string    `gorm:"column:description" json:"description"`
	FileName    string    `gorm:"column:file_name" json:"file_name,omitempty"`
	FileBytes   []byte    `gorm:"column:file_bytes" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

// Research is a completed-research record curated by the coordinator.
type Research struct {
	ResearchID string    `gorm:"primaryKey;column:research_id" json:"research_id"`
	Title      string    `gorm:"column:title" json:"title"`
	Field      string    `gorm:"column:field" json:"field"`
	Summary    string    `gorm:"column:summary" json:"summary"`
	FileName   string    `gorm:"column:file_name" json:"file_name,omitempty"`
	FileBytes  []byte    `gorm:"column:file_bytes" json:"-"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

// LibraryDocument is a reference document in the coordinator-curated library.
type LibraryDocument struct {
	DocumentID string    `gorm:"primaryKey;column:document_id" json:"document_id"`
	Title      string    `gorm:"column:title" json:"title"`
	FileName   string    `gorm:"column:file_name" json:"file_name"`
	FileBytes  []byte    `gorm:"column:file_bytes" json:"-"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides
func (Topic) TableName() string {
	return "topics"
}

func (Research) TableName() string {
	return "research"
}

func (LibraryDocument) TableName() string {
	return "documents"
}
