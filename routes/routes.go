package routes

import (
	"knowledge-portal-api/controllers"
	"knowledge-portal-api/middleware"
	"knowledge-portal-api/utils"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)
			public.POST("/register", controllers.Register)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Knowledge Portal API is running",
				})
			})

			// Reference data
			public.GET("/fields", controllers.GetFields)
			public.GET("/content-types", controllers.GetContentTypes)
			public.GET("/topics", controllers.GetTopics)
			public.GET("/research", controllers.GetResearch)
			public.GET("/documents", controllers.GetLibraryDocuments)
			public.GET("/documents/:id/file", controllers.DownloadLibraryDocument)

			// Public showcase of published submissions
			public.GET("/showcase", controllers.GetShowcase)
			public.GET("/showcase/:id", controllers.GetShowcaseItem)
			public.GET("/showcase/:id/file", controllers.DownloadShowcaseFile)
			public.GET("/showcase/:id/comments", controllers.GetComments)

			// Approved forum feed
			public.GET("/forum", controllers.GetForum)
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// Engagement (any authenticated role)
			protected.POST("/showcase/:id/comments", controllers.AddComment)
			protected.POST("/forum", controllers.CreateForumPost)

			// Contributors
			user := protected.Group("")
			user.Use(middleware.RequireRole(utils.RoleUser))
			{
				user.POST("/submissions", controllers.CreateSubmission)
				user.GET("/submissions/mine", controllers.GetMySubmissions)
				user.PUT("/submissions/:id/resubmit", controllers.ResubmitSubmission)
				user.POST("/showcase/:id/like", controllers.ToggleLike)
			}

			// Attachment download for senders, referees and the coordinator
			protected.GET("/submissions/:id/file", controllers.DownloadSubmissionFile)

			// Referees
			referee := protected.Group("")
			referee.Use(middleware.RequireRole(utils.RoleReferee))
			{
				referee.GET("/assignments/mine", controllers.GetMyAssignments)
				referee.PUT("/assignments/:id/verdict", controllers.SubmitVerdict)
				referee.POST("/forum/:id/replies", controllers.AddForumReply)
			}

			// Coordinator
			manager := protected.Group("")
			manager.Use(middleware.RequireRole(utils.RoleManager))
			{
				manager.GET("/submissions/actionable", controllers.GetActionableSubmissions)
				manager.GET("/submissions/decidable", controllers.GetDecidableSubmissions)
				manager.GET("/submissions/:id/assignments", controllers.GetSubmissionAssignments)
				manager.POST("/submissions/:id/route", controllers.RouteSubmission)
				manager.POST("/submissions/:id/decision", controllers.DecideSubmission)
				manager.DELETE("/submissions/:id", controllers.DeleteSubmission)

				manager.GET("/referees", controllers.GetReferees)
				manager.GET("/referees/eligible", controllers.GetEligibleReferees)
				manager.POST("/referees", controllers.UpsertReferee)
				manager.PUT("/referees/:phone/active", controllers.SetRefereeActive)
				manager.DELETE("/referees/:phone", controllers.DeleteReferee)

				manager.GET("/users", controllers.GetUsers)
				manager.DELETE("/users/:phone", controllers.DeleteUser)

				manager.POST("/topics", controllers.CreateTopic)
				manager.POST("/research", controllers.CreateResearch)
				manager.POST("/documents", controllers.CreateLibraryDocument)

				manager.DELETE("/comments/:id", controllers.DeleteComment)

				manager.GET("/forum/pending", controllers.GetPendingForumPosts)
				manager.PUT("/forum/:id/status", controllers.SetForumPostStatus)
			}
		}
	}
}
