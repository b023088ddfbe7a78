package controllers

import (
	"net/http"

	"knowledge-portal-api/config"
	"knowledge-portal-api/services"

	"github.com/gin-gonic/gin"
)

type RefereeRequest struct {
	Phone      string `json:"phone" binding:"required"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	NationalID string `json:"nid" binding:"required"`
	Field      string `json:"field" binding:"required"`
	Password   string `json:"password" binding:"required"`
	IsActive   *bool  `json:"is_active"`
}

// UpsertReferee registers a new referee or updates an existing one, keyed by
// phone. Coordinator only.
func UpsertReferee(c *gin.Context) {
	var req RefereeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	referee, err := services.UpsertReferee(config.DB, services.UpsertRefereeInput{
		Phone:      req.Phone,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		NationalID: req.NationalID,
		Field:      req.Field,
		Password:   req.Password,
		IsActive:   active,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"referee": referee,
	})
}

// GetReferees lists all referee profiles.
func GetReferees(c *gin.Context) {
	referees, err := services.ListReferees(config.DB)
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

// SetRefereeActive toggles a referee's routing eligibility.
func SetRefereeActive(c *gin.Context) {
	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := services.SetRefereeActive(config.DB, c.Param("phone"), *req.IsActive); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Referee updated",
	})
}

// DeleteReferee removes a referee profile.
func DeleteReferee(c *gin.Context) {
	if err := services.DeleteReferee(config.DB, c.Param("phone")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Referee deleted",
	})
}
