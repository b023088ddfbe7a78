package controllers

import (
	"net/http"

	"knowledge-portal-api/config"
	"knowledge-portal-api/services"

	"github.com/gin-gonic/gin"
)

// GetEligibleReferees lists the active referees for a field, so the
// coordinator can pick who to route a submission to.
func GetEligibleReferees(c *gin.Context) {
	field := c.Query("field")
	if field == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "field query parameter is required"})
		return
	}

	referees, err := services.EligibleReferees(config.DB, field)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch referees"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"referees": referees,
		"total":    len(referees),
	})
}

// RouteSubmission assigns a submission to the selected referees and moves it
// to waiting_referee. Routing again augments the existing assignments.
func RouteSubmission(c *gin.Context) {
	var req struct {
		RefereePhones []string `json:"referee_phones" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	assignments, err := services.RouteSubmission(config.DB, c.Param("id"), req.RefereePhones)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Submission routed to referees",
		"assignments": assignments,
	})
}

// GetMyAssignments returns the logged-in referee's worklist with the
// submissions preloaded.
func GetMyAssignments(c *gin.Context) {
	phone, _, _ := identityFromContext(c)

	assignments, err := services.AssignmentsForReferee(config.DB, phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assignments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"assignments": assignments,
		"total":       len(assignments),
	})
}

// SubmitVerdict records the referee's evaluation on their own assignment.
func SubmitVerdict(c *gin.Context) {
	phone, _, _ := identityFromContext(c)
	assignmentID := c.Param("id")

	var req struct {
		Decision               string `json:"decision" binding:"required"`
		Feedback               string `json:"feedback"`
		Score                  int    `json:"score"`
		SuggestedKnowledgeCode string `json:"suggested_knowledge_code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Ownership check before any write.
	existing, err := services.AssignmentsForReferee(config.DB, phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assignments"})
		return
	}
	owned := false
	for _, assignment := range existing {
		if assignment.AssignmentID == assignmentID {
			owned = true
			break
		}
	}
	if !owned {
		c.JSON(http.StatusForbidden, gin.H{"error": "Assignment does not belong to you"})
		return
	}

	assignment, err := services.SubmitVerdict(config.DB, assignmentID,
		req.Decision, req.Feedback, req.Score, req.SuggestedKnowledgeCode)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Verdict recorded",
		"assignment": assignment,
	})
}

// GetSubmissionAssignments shows the coordinator every referee verdict for one
// submission, unaggregated and in creation order.
func GetSubmissionAssignments(c *gin.Context) {
	submissionID := c.Param("id")

	if _, err := services.GetSubmission(config.DB, submissionID); err != nil {
		respondServiceError(c, err)
		return
	}

	assignments, err := services.AssignmentsForSubmission(config.DB, submissionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assignments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"assignments": assignments,
		"total":       len(assignments),
	})
}

// GetDecidableSubmissions lists the submissions that already carry at least
// one concluded verdict and await the coordinator's final call.
func GetDecidableSubmissions(c *gin.Context) {
	submissions, err := services.DecidableSubmissions(config.DB)
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
