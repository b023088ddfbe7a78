package controllers

import (
	"net/http"

	"knowledge-portal-api/config"
	"knowledge-portal-api/services"

	"github.com/gin-gonic/gin"
)

// GetForum returns the approved posts with their replies, newest post first.
func GetForum(c *gin.Context) {
	posts, err := services.ApprovedForumPosts(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch forum"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"posts":   posts,
		"total":   len(posts),
	})
}

// CreateForumPost files a message into the moderation queue.
func CreateForumPost(c *gin.Context) {
	phone, name, role := identityFromContext(c)

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	post, err := services.CreateForumPost(config.DB, phone, name, role, req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Your message will appear after coordinator approval",
		"post":    post,
	})
}

// GetPendingForumPosts is the coordinator's moderation queue.
func GetPendingForumPosts(c *gin.Context) {
	posts, err := services.PendingForumPosts(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch forum queue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"posts":   posts,
		"total":   len(posts),
	})
}

// SetForumPostStatus approves or rejects a pending post.
func SetForumPostStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := services.SetForumPostStatus(config.DB, c.Param("id"), req.Status); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Post " + req.Status,
	})
}

// AddForumReply attaches a referee's answer to an approved post.
func AddForumReply(c *gin.Context) {
	phone, name, _ := identityFromContext(c)

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	reply, err := services.AddForumReply(config.DB, c.Param("id"), phone, name, req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"reply":   reply,
	})
}
