package models

import "time"

// Assignment is one referee's evaluation task for one submission. A submission
// may carry many concurrent assignments, one per selected referee; they are
// independent and the coordinator reads them unaggregated.
type Assignment struct {
	AssignmentID string `gorm:"primaryKey;column:assignment_id" json:"assignment_id"`
	SubmissionID string `gorm:"column:submission_id;index" json:"submission_id"`
	RefereePhone string `gorm:"column:referee_phone;index" json:"referee_phone"`
	RefereeName  string `gorm:"column:referee_name" json:"referee_name"`
	RefereeField string `gorm:"column:referee_field" json:"referee_field"`
	Decision     string `gorm:"column:decision" json:"decision"`
	Feedback     string `gorm:"column:feedback" json:"feedback"`
	Score        int    `gorm:"column:score;default:0" json:"score"`
	// SuggestedKnowledgeCode is the referee's proposed code; required when the
	// decision is recommend_publish.
	SuggestedKnowledgeCode string     `gorm:"column:suggested_knowledge_code" json:"suggested_knowledge_code"`
	ReviewedAt             *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	CreatedAt              time.Time  `gorm:"column:created_at" json:"created_at"`

	Submission *Submission `gorm:"foreignKey:SubmissionID;references:SubmissionID" json:"submission,omitempty"`
}

// TableName specifies the table for Assignment.
func (Assignment) TableName() string {
	return "submission_assignments"
}
