package controllers

import (
	"io"
	"net/http"

	"knowledge-portal-api/config"
	"knowledge-portal-api/services"
	"knowledge-portal-api/utils"

	"github.com/gin-gonic/gin"
)

// readAttachment pulls the optional multipart file field into memory. The
// bytes are stored opaquely; the portal never inspects content.
func readAttachment(c *gin.Context) (name, mime string, data []byte, err error) {
	header, err := c.FormFile("file")
	if err != nil {
		return "", "", nil, nil // no file attached
	}
	file, err := header.Open()
	if err != nil {
		return "", "", nil, err
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		return "", "", nil, err
	}
	return header.Filename, header.Header.Get("Content-Type"), data, nil
}

func submissionContentFromForm(c *gin.Context) (services.SubmissionContent, error) {
	name, mime, data, err := readAttachment(c)
	if err != nil {
		return services.SubmissionContent{}, err
	}
	return services.SubmissionContent{
		Title:       utils.SanitizeInput(c.PostForm("title")),
		Description: utils.SanitizeInput(c.PostForm("description")),
		Field:       c.PostForm("field"),
		ContentType: c.PostForm("content_type"),
		FileName:    name,
		FileMime:    mime,
		FileBytes:   data,
	}, nil
}

// CreateSubmission files a new knowledge submission for the logged-in
// contributor. Accepts multipart form data with an optional attachment.
func CreateSubmission(c *gin.Context) {
	phone, name, _ := identityFromContext(c)

	content, err := submissionContentFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read attachment"})
		return
	}

	input := services.CreateSubmissionInput{
		SubmissionContent: content,
		SenderPhone:       phone,
		SenderName:        name,
		SenderNID:         utils.NormalizeNID(c.PostForm("nid")),
	}
	if topicID := c.PostForm("suggested_topic_id"); topicID != "" {
		input.SuggestedTopicID = &topicID
	}

	submission, err := services.CreateSubmission(config.DB, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"submission": submission,
	})
}

// GetMySubmissions lists the contributor's own submissions with their current
// workflow status, newest first.
func GetMySubmissions(c *gin.Context) {
	phone, _, _ := identityFromContext(c)

	submissions, err := services.SubmissionsBySender(config.DB, phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": submissions,
		"total":       len(submissions),
	})
}

// ResubmitSubmission lets the contributor rework a submission that was sent
// back for correction. Only the sender may resubmit. When no new file is
// attached the previous one is kept.
func ResubmitSubmission(c *gin.Context) {
	phone, _, _ := identityFromContext(c)
	submissionID := c.Param("id")

	existing, err := services.GetSubmission(config.DB, submissionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if existing.SenderPhone != phone {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the sender can resubmit"})
		return
	}

	content, err := submissionContentFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read attachment"})
		return
	}
	if content.FileName == "" && len(content.FileBytes) == 0 {
		content.FileName = existing.FileName
		content.FileMime = existing.FileMime
		content.FileBytes = existing.FileBytes
	}

	submission, err := services.ResubmitSubmission(config.DB, submissionID, content)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Submission returned to the review queue",
		"submission": submission,
	})
}

// GetActionableSubmissions is the coordinator's triage desk: everything not
// yet terminally decided, newest first.
func GetActionableSubmissions(c *gin.Context) {
	submissions, err := services.ActionableSubmissions(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": submissions,
		"total":       len(submissions),
	})
}

// DeleteSubmission is the coordinator's administrative hard delete; it
// cascades to assignments, likes and comments.
func DeleteSubmission(c *gin.Context) {
	if err := services.DeleteSubmission(config.DB, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Submission deleted",
	})
}

// DownloadSubmissionFile streams a submission's attachment to its sender, an
// assigned referee or the coordinator.
func DownloadSubmissionFile(c *gin.Context) {
	phone, _, role := identityFromContext(c)

	submission, err := services.GetSubmission(config.DB, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if role == utils.RoleUser && submission.SenderPhone != phone {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	if len(submission.FileBytes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission has no attachment"})
		return
	}

	serveAttachment(c, submission.FileName, submission.FileMime, submission.FileBytes)
}

func serveAttachment(c *gin.Context, name, mime string, data []byte) {
	if mime == "" {
		mime = "application/octet-stream"
	}
	if name == "" {
		name = "file"
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, mime, data)
}
