package services

import (
	"testing"

	"knowledge-portal-api/models"
	"knowledge-portal-api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func likeSetSize(t *testing.T, db *gorm.DB, submissionID string) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.SubmissionLike{}).
		Where("submission_id = ?", submissionID).
		Count(&count).Error)
	return count
}

func TestToggleLikeIdempotentPair(t *testing.T) {
	db := newTestDB(t)

	submission := seedSubmission(t, db, "X", utils.Fields[0])
	forceStatus(t, db, submission.SubmissionID, utils.StatusPublished)

	liked, count, err := ToggleLike(db, submission.SubmissionID, "0912000005")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, 1, reloadSubmission(t, db, submission.SubmissionID).Likes)

	liked, count, err = ToggleLike(db, submission.SubmissionID, "0912000005")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.EqualValues(t, 0, count)
	assert.Equal(t, 0, reloadSubmission(t, db, submission.SubmissionID).Likes)
}

func TestToggleLikeCountMatchesSetCardinality(t *testing.T) {
	db := newTestDB(t)

	submission := seedSubmission(t, db, "X", utils.Fields[0])
	forceStatus(t, db, submission.SubmissionID, utils.StatusPublished)

	phones := []string{"0912000001", "0912000002", "0912000003"}
	for _, phone := range phones {
		_, _, err := ToggleLike(db, submission.SubmissionID, phone)
		require.NoError(t, err)
	}
	// One user un-likes, one double-toggles back on.
	_, _, err := ToggleLike(db, submission.SubmissionID, phones[0])
	require.NoError(t, err)
	_, _, err = ToggleLike(db, submission.SubmissionID, phones[1])
	require.NoError(t, err)
	_, _, err = ToggleLike(db, submission.SubmissionID, phones[1])
	require.NoError(t, err)

	current := reloadSubmission(t, db, submission.SubmissionID)
	assert.EqualValues(t, likeSetSize(t, db, submission.SubmissionID), current.Likes,
		"cached counter must equal like-set size after any toggle sequence")
	assert.Equal(t, 2, current.Likes)
}

func TestToggleLikeRequiresPublished(t *testing.T) {
	db := newTestDB(t)

	submission := seedSubmission(t, db, "X", utils.Fields[0])

	_, _, err := ToggleLike(db, submission.SubmissionID, "0912000005")
	assert.ErrorIs(t, err, ErrInvalidState)

	_, _, err = ToggleLike(db, "missing", "0912000005")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddCommentValidation(t *testing.T) {
	db := newTestDB(t)

	submission := seedSubmission(t, db, "X", utils.Fields[0])

	_, err := AddComment(db, submission.SubmissionID, "Visitor", "   ")
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = AddComment(db, "missing", "Visitor", "hello")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentsOrderedOldestFirst(t *testing.T) {
	db := newTestDB(t)

	submission := seedSubmission(t, db, "X", utils.Fields[0])

	first, err := AddComment(db, submission.SubmissionID, "A", "first")
	require.NoError(t, err)
	_, err = AddComment(db, submission.SubmissionID, "B", "  second  ")
	require.NoError(t, err)

	comments, err := CommentsForSubmission(db, submission.SubmissionID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first.CommentID, comments[0].CommentID)
	assert.Equal(t, "second", comments[1].Text, "text is stored trimmed")
}

func TestDeleteComment(t *testing.T) {
	db := newTestDB(t)

	submission := seedSubmission(t, db, "X", utils.Fields[0])
	comment, err := AddComment(db, submission.SubmissionID, "A", "spam")
	require.NoError(t, err)

	require.NoError(t, DeleteComment(db, comment.CommentID))

	comments, err := CommentsForSubmission(db, submission.SubmissionID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	assert.ErrorIs(t, DeleteComment(db, comment.CommentID), ErrNotFound)
}

func TestIncrementView(t *testing.T) {
	db := newTestDB(t)

	submission := seedSubmission(t, db, "X", utils.Fields[0])

	require.NoError(t, IncrementView(db, submission.SubmissionID))
	require.NoError(t, IncrementView(db, submission.SubmissionID))

	assert.Equal(t, 2, reloadSubmission(t, db, submission.SubmissionID).Views)
	assert.ErrorIs(t, IncrementView(db, "missing"), ErrNotFound)
}
