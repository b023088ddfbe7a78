package controllers

import (
	"net/http"

	"knowledge-portal-api/config"
	"knowledge-portal-api/models"
	"knowledge-portal-api/utils"

	"github.com/gin-gonic/gin"
)

// GetUsers lists all registered contributors. Coordinator only.
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
		"total":   len(users),
	})
}

// DeleteUser removes a contributor account. Coordinator only; the user's
// submissions remain, still carrying the recorded sender identity.
func DeleteUser(c *gin.Context) {
	phone := utils.NormalizePhone(c.Param("phone"))

	res := config.DB.Where("phone = ?", phone).Delete(&models.User{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User deleted",
	})
}
