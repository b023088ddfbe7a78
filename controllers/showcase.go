package controllers

import (
	"net/http"

	"knowledge-portal-api/config"
	"knowledge-portal-api/services"
	"knowledge-portal-api/utils"

	"github.com/gin-gonic/gin"
)

// GetShowcase lists the published submissions, newest first. Rendering the
// list does not touch view counters.
func GetShowcase(c *gin.Context) {
	submissions, err := services.PublishedSubmissions(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch showcase"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": submissions,
		"total":       len(submissions),
	})
}

// GetShowcaseItem opens one published submission. Each open counts one view;
// redraws of the showcase list do not.
func GetShowcaseItem(c *gin.Context) {
	submissionID := c.Param("id")

	submission, err := services.GetSubmission(config.DB, submissionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if submission.Status != utils.StatusPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	if err := services.IncrementView(config.DB, submissionID); err != nil {
		respondServiceError(c, err)
		return
	}
	submission.Views++

	comments, err := services.CommentsForSubmission(config.DB, submissionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"submission": submission,
		"comments":   comments,
	})
}

// DownloadShowcaseFile streams a published submission's attachment.
func DownloadShowcaseFile(c *gin.Context) {
	submission, err := services.GetSubmission(config.DB, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if submission.Status != utils.StatusPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	if len(submission.FileBytes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission has no attachment"})
		return
	}

	serveAttachment(c, submission.FileName, submission.FileMime, submission.FileBytes)
}

// ToggleLike flips the logged-in user's like on a published submission and
// returns the new state and count.
func ToggleLike(c *gin.Context) {
	phone, _, _ := identityFromContext(c)

	liked, count, err := services.ToggleLike(config.DB, c.Param("id"), phone)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"liked":   liked,
		"likes":   count,
	})
}

// GetComments returns a submission's comments oldest first.
func GetComments(c *gin.Context) {
	submissionID := c.Param("id")

	if _, err := services.GetSubmission(config.DB, submissionID); err != nil {
		respondServiceError(c, err)
		return
	}

	comments, err := services.CommentsForSubmission(config.DB, submissionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"comments": comments,
		"total":    len(comments),
	})
}

// AddComment appends the logged-in user's comment.
func AddComment(c *gin.Context) {
	_, name, _ := identityFromContext(c)

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	comment, err := services.AddComment(config.DB, c.Param("id"), name, req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"comment": comment,
	})
}

// DeleteComment is the coordinator's moderation hard delete.
func DeleteComment(c *gin.Context) {
	if err := services.DeleteComment(config.DB, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Comment deleted",
	})
}
