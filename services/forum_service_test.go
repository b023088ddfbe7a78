package services

import (
	"testing"

	"knowledge-portal-api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForumModerationFlow(t *testing.T) {
	db := newTestDB(t)

	post, err := CreateForumPost(db, "0912000001", "Ali", utils.RoleUser, "How do we tag BIM models?")
	require.NoError(t, err)
	assert.Equal(t, utils.ForumPending, post.Status)

	feed, err := ApprovedForumPosts(db)
	require.NoError(t, err)
	assert.Empty(t, feed, "pending posts stay out of the public feed")

	queue, err := PendingForumPosts(db)
	require.NoError(t, err)
	require.Len(t, queue, 1)

	require.NoError(t, SetForumPostStatus(db, post.PostID, utils.ForumApproved))

	reply, err := AddForumReply(db, post.PostID, "0935000001", "Sara Referee", "Use the shared classification table.")
	require.NoError(t, err)

	feed, err = ApprovedForumPosts(db)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	require.Len(t, feed[0].Replies, 1)
	assert.Equal(t, reply.ReplyID, feed[0].Replies[0].ReplyID)
}

func TestForumRejectedPostsTakeNoReplies(t *testing.T) {
	db := newTestDB(t)

	post, err := CreateForumPost(db, "0912000001", "Ali", utils.RoleUser, "Anyone else?")
	require.NoError(t, err)
	require.NoError(t, SetForumPostStatus(db, post.PostID, utils.ForumRejected))

	_, err = AddForumReply(db, post.PostID, "0935000001", "Sara Referee", "yes")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestForumValidation(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateForumPost(db, "0912000001", "Ali", utils.RoleUser, "   ")
	assert.ErrorIs(t, err, ErrEmptyText)

	assert.ErrorIs(t, SetForumPostStatus(db, "missing", utils.ForumApproved), ErrNotFound)

	post, err := CreateForumPost(db, "0912000001", "Ali", utils.RoleUser, "text")
	require.NoError(t, err)
	assert.ErrorIs(t, SetForumPostStatus(db, post.PostID, "archived"), ErrValidation)

	_, err = AddForumReply(db, "missing", "0935000001", "Sara", "hello")
	assert.ErrorIs(t, err, ErrNotFound)
}
