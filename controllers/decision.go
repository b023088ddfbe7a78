package controllers

import (
	"fmt"
	"log"
	"net/http"

	"knowledge-portal-api/config"
	"knowledge-portal-api/models"
	"knowledge-portal-api/services"
	"knowledge-portal-api/utils"

	"github.com/gin-gonic/gin"
)

// DecideSubmission applies the coordinator's final publish / correction /
// reject call (or an explicit hold). Publication requires a knowledge code;
// the referee-suggested codes are available via the assignments endpoint.
func DecideSubmission(c *gin.Context) {
	var req struct {
		Decision      string `json:"decision" binding:"required"`
		KnowledgeCode string `json:"knowledge_code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	submission, err := services.Decide(config.DB, c.Param("id"), req.Decision, req.KnowledgeCode)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if req.Decision != utils.StatusWaitingManager {
		go notifyDecision(submission)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Decision recorded: " + utils.StatusLabel(submission.Status),
		"submission": submission,
	})
}

// notifyDecision emails the contributor about the outcome when they left an
// email address at registration. Failures are logged and otherwise ignored;
// the state change is already committed.
func notifyDecision(submission *models.Submission) {
	var user models.User
	if err := config.DB.Where("phone = ?", submission.SenderPhone).First(&user).Error; err != nil {
		return
	}
	if user.Email == "" {
		return
	}

	subject := fmt.Sprintf("Your submission %q: %s", submission.Title, utils.StatusLabel(submission.Status))
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your submission <b>%s</b> is now: <b>%s</b>.</p>",
		user.Name, submission.Title, utils.StatusLabel(submission.Status),
	)
	if submission.Status == utils.StatusPublished {
		body += fmt.Sprintf("<p>Knowledge code: <b>%s</b></p>", submission.KnowledgeCode)
	}
	if submission.Feedback != "" {
		body += fmt.Sprintf("<p>Reviewer feedback:</p><blockquote>%s</blockquote>", submission.Feedback)
	}

	if err := config.SendMail([]string{user.Email}, subject, body); err != nil {
		log.Printf("Warning: failed to send decision mail for submission %s: %v", submission.SubmissionID, err)
	}
}
