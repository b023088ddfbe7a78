package services

import (
	"testing"

	"knowledge-portal-api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteSubmissionCreatesAssignments(t *testing.T) {
	db := newTestDB(t)

	seedReferee(t, db, "0935000001", "Sara", utils.Fields[1], true)
	seedReferee(t, db, "0935000002", "Reza", utils.Fields[1], true)
	submission := seedSubmission(t, db, "X", utils.Fields[1])

	assignments, err := RouteSubmission(db, submission.SubmissionID, []string{"0935000001", "0935000002"})
	require.NoError(t, err)
	require.Len(t, assignments, 2)

	for _, assignment := range assignments {
		assert.Equal(t, utils.DecisionPending, assignment.Decision)
		assert.Nil(t, assignment.ReviewedAt)
		assert.Equal(t, utils.Fields[1], assignment.RefereeField)
	}

	current := reloadSubmission(t, db, submission.SubmissionID)
	assert.Equal(t, utils.StatusWaitingReferee, current.Status)
}

func TestRouteSubmissionEmptySelection(t *testing.T) {
	db := newTestDB(t)

	seedReferee(t, db, "0935000001", "Sara", utils.Fields[0], true)
	submission := seedSubmission(t, db, "X", utils.Fields[0])

	_, err := RouteSubmission(db, submission.SubmissionID, nil)
	assert.ErrorIs(t, err, ErrEmptySelection)

	current := reloadSubmission(t, db, submission.SubmissionID)
	assert.Equal(t, utils.StatusPending, current.Status)
}

func TestRouteSubmissionNoEligibleReferee(t *testing.T) {
	db := newTestDB(t)

	// Only an inactive referee and one from another field exist.
	seedReferee(t, db, "0935000001", "Sara", utils.Fields[3], false)
	seedReferee(t, db, "0935000002", "Reza", utils.Fields[4], true)
	submission := seedSubmission(t, db, "X", utils.Fields[3])

	_, err := RouteSubmission(db, submission.SubmissionID, []string{"0935000001"})
	assert.ErrorIs(t, err, ErrNoEligibleReviewer)

	current := reloadSubmission(t, db, submission.SubmissionID)
	assert.Equal(t, utils.StatusPending, current.Status, "failed routing must not change status")

	assignments, err := AssignmentsForSubmission(db, submission.SubmissionID)
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func TestRouteSubmissionRejectsIneligibleSelection(t *testing.T) {
	db := newTestDB(t)

	seedReferee(t, db, "0935000001", "Sara", utils.Fields[0], true)
	seedReferee(t, db, "0935000002", "Reza", utils.Fields[0], false)
	submission := seedSubmission(t, db, "X", utils.Fields[0])

	// Picking the deactivated referee fails even though the field has an
	// active one, and nothing is half-written.
	_, err := RouteSubmission(db, submission.SubmissionID, []string{"0935000001", "0935000002"})
	assert.ErrorIs(t, err, ErrNoEligibleReviewer)

	assignments, err := AssignmentsForSubmission(db, submission.SubmissionID)
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func TestRouteSubmissionAugmentsOnReRoute(t *testing.T) {
	db := newTestDB(t)

	seedReferee(t, db, "0935000001", "Sara", utils.Fields[0], true)
	seedReferee(t, db, "0935000002", "Reza", utils.Fields[0], true)
	submission := seedSubmission(t, db, "X", utils.Fields[0])

	_, err := RouteSubmission(db, submission.SubmissionID, []string{"0935000001"})
	require.NoError(t, err)
	_, err = RouteSubmission(db, submission.SubmissionID, []string{"0935000002"})
	require.NoError(t, err)

	assignments, err := AssignmentsForSubmission(db, submission.SubmissionID)
	require.NoError(t, err)
	assert.Len(t, assignments, 2, "re-routing adds assignments instead of replacing")
}

func TestSubmitVerdictEscalates(t *testing.T) {
	db := newTestDB(t)

	seedReferee(t, db, "0935000001", "Sara", utils.Fields[0], true)
	submission := seedSubmission(t, db, "X", utils.Fields[0])
	assignments, err := RouteSubmission(db, submission.SubmissionID, []string{"0935000001"})
	require.NoError(t, err)

	updated, err := SubmitVerdict(db, assignments[0].AssignmentID,
		utils.DecisionRecommendPublish, "solid contribution", 88, "K-1")
	require.NoError(t, err)

	assert.Equal(t, utils.DecisionRecommendPublish, updated.Decision)
	assert.Equal(t, "K-1", updated.SuggestedKnowledgeCode)
	require.NotNil(t, updated.ReviewedAt)

	current := reloadSubmission(t, db, submission.SubmissionID)
	assert.Equal(t, utils.StatusWaitingManager, current.Status)
	assert.Equal(t, 88, current.Score)
	assert.Equal(t, "solid contribution", current.Feedback)
}

func TestSubmitVerdictTerminalOpinionsEscalateToo(t *testing.T) {
	db := newTestDB(t)

	seedReferee(t, db, "0935000001", "Sara", utils.Fields[0], true)
	submission := seedSubmission(t, db, "X", utils.Fields[0])
	assignments, err := RouteSubmission(db, submission.SubmissionID, []string{"0935000001"})
	require.NoError(t, err)

	// A rejection opinion escalates to the coordinator; it does not reject the
	// submission by itself.
	_, err = SubmitVerdict(db, assignments[0].AssignmentID,
		utils.DecisionRejected, "out of scope", 20, "")
	require.NoError(t, err)

	current := reloadSubmission(t, db, submission.SubmissionID)
	assert.Equal(t, utils.StatusWaitingManager, current.Status)
}

func TestSubmitVerdictMissingKnowledgeCode(t *testing.T) {
	db := newTestDB(t)

	seedReferee(t, db, "0935000001", "Sara", utils.Fields[0], true)
	submission := seedSubmission(t, db, "X", utils.Fields[0])
	assignments, err := RouteSubmission(db, submission.SubmissionID, []string{"0935000001"})
	require.NoError(t, err)

	_, err = SubmitVerdict(db, assignments[0].AssignmentID,
		utils.DecisionRecommendPublish, "great", 90, "   ")
	assert.ErrorIs(t, err, ErrMissingKnowledgeCode)

	// The assignment is left exactly as it was.
	after, err := AssignmentsForSubmission(db, submission.SubmissionID)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, utils.DecisionPending, after[0].Decision)
	assert.Nil(t, after[0].ReviewedAt)
	assert.Empty(t, after[0].Feedback)

	current := reloadSubmission(t, db, submission.SubmissionID)
	assert.Equal(t, utils.StatusWaitingReferee, current.Status)
}

func TestSubmitVerdictPendingSaveDoesNotEscalate(t *testing.T) {
	db := newTestDB(t)

	seedReferee(t, db, "0935000001", "Sara", utils.Fields[0], true)
	submission := seedSubmission(t, db, "X", utils.Fields[0])
	assignments, err := RouteSubmission(db, submission.SubmissionID, []string{"0935000001"})
	require.NoError(t, err)

	updated, err := SubmitVerdict(db, assignments[0].AssignmentID,
		utils.DecisionPending, "still reading", 0, "")
	require.NoError(t, err)

	assert.Nil(t, updated.ReviewedAt)
	current := reloadSubmission(t, db, submission.SubmissionID)
	assert.Equal(t, utils.StatusWaitingReferee, current.Status)
}

func TestSubmitVerdictValidation(t *testing.T) {
	db := newTestDB(t)

	seedReferee(t, db, "0935000001", "Sara", utils.Fields[0], true)
	submission := seedSubmission(t, db, "X", utils.Fields[0])
	assignments, err := RouteSubmission(db, submission.SubmissionID, []string{"0935000001"})
	require.NoError(t, err)

	_, err = SubmitVerdict(db, assignments[0].AssignmentID, "maybe", "", 50, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = SubmitVerdict(db, assignments[0].AssignmentID, utils.DecisionRejected, "", 101, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = SubmitVerdict(db, "missing", utils.DecisionRejected, "", 10, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDecidableSubmissions(t *testing.T) {
	db := newTestDB(t)

	seedReferee(t, db, "0935000001", "Sara", utils.Fields[0], true)

	undecided := seedSubmission(t, db, "Still reviewing", utils.Fields[0])
	_, err := RouteSubmission(db, undecided.SubmissionID, []string{"0935000001"})
	require.NoError(t, err)

	ready := seedSubmission(t, db, "Ready", utils.Fields[0])
	assignments, err := RouteSubmission(db, ready.SubmissionID, []string{"0935000001"})
	require.NoError(t, err)
	_, err = SubmitVerdict(db, assignments[0].AssignmentID,
		utils.DecisionCorrectionNeeded, "fix the abstract", 55, "")
	require.NoError(t, err)

	decidable, err := DecidableSubmissions(db)
	require.NoError(t, err)
	require.Len(t, decidable, 1)
	assert.Equal(t, ready.SubmissionID, decidable[0].SubmissionID)
}
