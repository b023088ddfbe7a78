package services

import (
	"testing"

	"knowledge-portal-api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReviewPipelineEndToEnd walks a submission through the whole workflow:
// create, route to two referees, one recommends publication, the coordinator
// publishes with the suggested code.
func TestReviewPipelineEndToEnd(t *testing.T) {
	db := newTestDB(t)

	seedReferee(t, db, "0935000001", "Sara", utils.Fields[1], true)
	seedReferee(t, db, "0935000002", "Reza", utils.Fields[1], true)

	submission := seedSubmission(t, db, "X", utils.Fields[1])
	assert.Equal(t, utils.StatusPending, submission.Status)

	assignments, err := RouteSubmission(db, submission.SubmissionID, []string{"0935000001", "0935000002"})
	require.NoError(t, err)
	require.Len(t, assignments, 2)
	assert.Equal(t, utils.StatusWaitingReferee, reloadSubmission(t, db, submission.SubmissionID).Status)

	_, err = SubmitVerdict(db, assignments[0].AssignmentID,
		utils.DecisionRecommendPublish, "publish it", 92, "K-1")
	require.NoError(t, err)
	assert.Equal(t, utils.StatusWaitingManager, reloadSubmission(t, db, submission.SubmissionID).Status)

	decided, err := Decide(db, submission.SubmissionID, utils.StatusPublished, "K-1")
	require.NoError(t, err)
	assert.Equal(t, utils.StatusPublished, decided.Status)
	assert.Equal(t, "K-1", decided.KnowledgeCode)

	// The second referee's still-pending assignment is untouched.
	all, err := AssignmentsForSubmission(db, submission.SubmissionID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, utils.DecisionPending, all[1].Decision)
}

func TestDecidePublishRequiresKnowledgeCode(t *testing.T) {
	db := newTestDB(t)

	submission := seedSubmission(t, db, "X", utils.Fields[0])
	forceStatus(t, db, submission.SubmissionID, utils.StatusWaitingManager)

	for _, code := range []string{"", "   "} {
		_, err := Decide(db, submission.SubmissionID, utils.StatusPublished, code)
		assert.ErrorIs(t, err, ErrMissingKnowledgeCode)

		current := reloadSubmission(t, db, submission.SubmissionID)
		assert.Equal(t, utils.StatusWaitingManager, current.Status, "status must be unchanged")
		assert.Empty(t, current.KnowledgeCode)
	}
}

func TestDecidePublishTrimsCode(t *testing.T) {
	db := newTestDB(t)

	submission := seedSubmission(t, db, "X", utils.Fields[0])
	forceStatus(t, db, submission.SubmissionID, utils.StatusWaitingManager)

	decided, err := Decide(db, submission.SubmissionID, utils.StatusPublished, "  K-42  ")
	require.NoError(t, err)
	assert.Equal(t, "K-42", decided.KnowledgeCode)
	assert.Equal(t, utils.StatusPublished, decided.Status)
}

func TestDecideCorrectionKeepsFeedback(t *testing.T) {
	db := newTestDB(t)

	seedReferee(t, db, "0935000001", "Sara", utils.Fields[0], true)
	submission := seedSubmission(t, db, "X", utils.Fields[0])
	assignments, err := RouteSubmission(db, submission.SubmissionID, []string{"0935000001"})
	require.NoError(t, err)
	_, err = SubmitVerdict(db, assignments[0].AssignmentID,
		utils.DecisionCorrectionNeeded, "rework section 2", 40, "")
	require.NoError(t, err)

	decided, err := Decide(db, submission.SubmissionID, utils.StatusCorrectionNeeded, "")
	require.NoError(t, err)

	assert.Equal(t, utils.StatusCorrectionNeeded, decided.Status)
	assert.Equal(t, "rework section 2", decided.Feedback, "referee feedback stays visible")
	assert.Empty(t, decided.KnowledgeCode)
}

func TestDecideHoldIsNoOp(t *testing.T) {
	db := newTestDB(t)

	submission := seedSubmission(t, db, "X", utils.Fields[0])
	forceStatus(t, db, submission.SubmissionID, utils.StatusWaitingManager)

	decided, err := Decide(db, submission.SubmissionID, utils.StatusWaitingManager, "")
	require.NoError(t, err)
	assert.Equal(t, utils.StatusWaitingManager, decided.Status)
}

func TestDecideRequiresWaitingManager(t *testing.T) {
	db := newTestDB(t)

	submission := seedSubmission(t, db, "X", utils.Fields[0])

	_, err := Decide(db, submission.SubmissionID, utils.StatusPublished, "K-1")
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = Decide(db, submission.SubmissionID, utils.StatusRejected, "")
	assert.ErrorIs(t, err, ErrInvalidState)

	assert.Equal(t, utils.StatusPending, reloadSubmission(t, db, submission.SubmissionID).Status)
}

func TestDecideValidation(t *testing.T) {
	db := newTestDB(t)

	submission := seedSubmission(t, db, "X", utils.Fields[0])
	forceStatus(t, db, submission.SubmissionID, utils.StatusWaitingManager)

	_, err := Decide(db, submission.SubmissionID, "archived", "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = Decide(db, "missing", utils.StatusRejected, "")
	assert.ErrorIs(t, err, ErrNotFound)
}
