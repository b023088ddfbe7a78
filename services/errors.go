package services

import "errors"

// Workflow errors surfaced to controllers. Controllers map these to HTTP codes;
// each one names the precondition that failed so no rejection is silent.
var (
	// ErrValidation marks an empty or malformed required field. Wrapped with
	// fmt.Errorf("...: %w", ErrValidation) to keep the field name in the message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidState marks an operation attempted against the wrong workflow
	// status, e.g. resubmitting a submission that does not need correction.
	ErrInvalidState = errors.New("operation not allowed in current status")

	// ErrNotFound marks a record lookup miss, including credential mismatches.
	ErrNotFound = errors.New("record not found")

	// ErrInactive marks a referee whose credentials matched but whose profile
	// is deactivated. Surfaced to clients identically to ErrNotFound.
	ErrInactive = errors.New("referee is inactive")

	// ErrNoEligibleReviewer means the submission's field has no active referee.
	ErrNoEligibleReviewer = errors.New("no eligible referee for this field")

	// ErrEmptySelection means the coordinator routed without picking referees.
	ErrEmptySelection = errors.New("no referees selected")

	// ErrMissingKnowledgeCode blocks the publish path when no knowledge code
	// was provided. Other decisions are unaffected.
	ErrMissingKnowledgeCode = errors.New("knowledge code is required for publication")

	// ErrEmptyText marks a blank comment or forum post body.
	ErrEmptyText = errors.New("text must not be empty")
)
