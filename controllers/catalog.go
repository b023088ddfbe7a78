package controllers

import (
	"net/http"
	"time"

	"knowledge-portal-api/config"
	"knowledge-portal-api/models"
	"knowledge-portal-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetFields returns the fixed domain enumeration.
func GetFields(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": utils.Fields})
}

// GetContentTypes returns the fixed content-type enumeration.
func GetContentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"content_types": utils.ContentTypes})
}

// GetTopics lists coordinator-proposed topics, newest first.
func GetTopics(c *gin.Context) {
	var topics []models.Topic
	if err := config.DB.Order("created_at DESC").Find(&topics).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch topics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "topics": topics, "total": len(topics)})
}

// CreateTopic adds a proposed topic. Coordinator only; multipart form with an
// optional attachment.
func CreateTopic(c *gin.Context) {
	title := utils.SanitizeInput(c.PostForm("title"))
	field := c.PostForm("field")
	if title == "" || !utils.IsValidField(field) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and a valid field are required"})
		return
	}

	name, _, data, err := readAttachment(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read attachment"})
		return
	}

	topic := models.Topic{
		TopicID:     uuid.New().String(),
		Title:       title,
		Field:       field,
		Description: utils.SanitizeInput(c.PostForm("description")),
		FileName:    name,
		FileBytes:   data,
		CreatedAt:   time.Now(),
	}
	if err := config.DB.Create(&topic).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create topic"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "topic": topic})
}

// GetResearch lists completed-research records, newest first.
func GetResearch(c *gin.Context) {
	var research []models.Research
	if err := config.DB.Order("created_at DESC").Find(&research).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch research"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "research": research, "total": len(research)})
}

// CreateResearch adds a completed-research record. Coordinator only.
func CreateResearch(c *gin.Context) {
	title := utils.SanitizeInput(c.PostForm("title"))
	field := c.PostForm("field")
	if title == "" || !utils.IsValidField(field) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and a valid field are required"})
		return
	}

	name, _, data, err := readAttachment(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read attachment"})
		return
	}

	research := models.Research{
		ResearchID: uuid.New().String(),
		Title:      title,
		Field:      field,
		Summary:    utils.SanitizeInput(c.PostForm("summary")),
		FileName:   name,
		FileBytes:  data,
		CreatedAt:  time.Now(),
	}
	if err := config.DB.Create(&research).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create research record"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "research": research})
}

// GetLibraryDocuments lists the document library, newest first.
func GetLibraryDocuments(c *gin.Context) {
	var documents []models.LibraryDocument
	if err := config.DB.Order("created_at DESC").Find(&documents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "documents": documents, "total": len(documents)})
}

// CreateLibraryDocument uploads a library document. Coordinator only; the
// file is required here, unlike topics and research.
func CreateLibraryDocument(c *gin.Context) {
	title := utils.SanitizeInput(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	name, _, data, err := readAttachment(c)
	if err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Document file is required"})
		return
	}

	document := models.LibraryDocument{
		DocumentID: uuid.New().String(),
		Title:      title,
		FileName:   name,
		FileBytes:  data,
		CreatedAt:  time.Now(),
	}
	if err := config.DB.Create(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store document"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "document": document})
}

// DownloadLibraryDocument streams a library document.
func DownloadLibraryDocument(c *gin.Context) {
	var document models.LibraryDocument
	if err := config.DB.Where("document_id = ?", c.Param("id")).First(&document).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	serveAttachment(c, document.FileName, "", document.FileBytes)
}
