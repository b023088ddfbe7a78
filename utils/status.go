package utils

// Submission workflow statuses. A submission moves
// pending -> waiting_referee -> waiting_manager and ends in published,
// rejected or correction_needed; correction_needed returns to pending when the
// contributor resubmits.
const (
	StatusPending          = "pending"
	StatusWaitingReferee   = "waiting_referee"
	StatusWaitingManager   = "waiting_manager"
	StatusCorrectionNeeded = "correction_needed"
	StatusRejected         = "rejected"
	StatusPublished        = "published"
)

// Referee verdicts recorded on an assignment. DecisionPending marks an
// assignment the referee has not concluded yet.
const (
	DecisionPending          = "pending"
	DecisionCorrectionNeeded = "correction_needed"
	DecisionRejected         = "rejected"
	DecisionRecommendPublish = "recommend_publish"
)

// Forum post moderation statuses.
const (
	ForumPending  = "pending"
	ForumApproved = "approved"
	ForumRejected = "rejected"
)

// Roles carried in JWT claims and checked by middleware.RequireRole.
const (
	RoleUser    = "user"
	RoleReferee = "referee"
	RoleManager = "manager"
)

var statusLabels = map[string]string{
	StatusPending:          "Waiting for coordinator triage",
	StatusWaitingReferee:   "Referred to reviewer(s)",
	StatusWaitingManager:   "Waiting for final coordinator decision",
	StatusCorrectionNeeded: "Correction needed",
	StatusRejected:         "Rejected",
	StatusPublished:        "Published in the knowledge showcase",
}

// StatusLabel returns a human-readable label for a workflow status. Unknown
// statuses are returned unchanged.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// ActionableStatuses are the statuses that still need coordinator or reviewer
// attention, i.e. everything except the terminal published/rejected pair.
func ActionableStatuses() []string {
	return []string{StatusPending, StatusWaitingReferee, StatusWaitingManager, StatusCorrectionNeeded}
}

// IsConcluded reports whether a referee decision is an actual verdict rather
// than a still-reviewing placeholder.
func IsConcluded(decision string) bool {
	switch decision {
	case DecisionCorrectionNeeded, DecisionRejected, DecisionRecommendPublish:
		return true
	}
	return false
}

// IsValidDecision reports whether a referee decision value is known.
func IsValidDecision(decision string) bool {
	return decision == DecisionPending || IsConcluded(decision)
}

// IsValidManagerDecision reports whether a terminal coordinator decision value
// is known. waiting_manager is a hold and leaves the submission untouched.
func IsValidManagerDecision(decision string) bool {
	switch decision {
	case StatusWaitingManager, StatusPublished, StatusCorrectionNeeded, StatusRejected:
		return true
	}
	return false
}
