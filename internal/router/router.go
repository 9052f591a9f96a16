package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hopefoundation/charity-backend/internal/handler"
)

// Setup configures the Gin engine and the full /api route table.
func Setup(api *handler.API, uploadDir, uploadURLPath string) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// Uploaded images are served directly.
	r.Static(uploadURLPath, uploadDir)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	root := r.Group("/api")
	{
		auth := root.Group("/auth")
		{
			auth.POST("/login", api.Login)
			auth.GET("/verify", api.RequireAuth(), api.Verify)
			auth.POST("/change-password", api.RequireAuth(), api.ChangePassword)
		}

		causes := root.Group("/causes")
		{
			causes.GET("", api.ListCauses)
			causes.GET("/admin/list", api.RequireAuth(), api.ListCausesAdmin)
			causes.GET("/:id", api.GetCause)
			causes.POST("", api.RequireAuth(), api.CreateCause)
			causes.PUT("/:id", api.RequireAuth(), api.UpdateCause)
			causes.DELETE("/:id", api.RequireAuth(), api.DeleteCause)
			causes.PATCH("/:id/toggle", api.RequireAuth(), api.ToggleCause)
		}

		donations := root.Group("/donations")
		{
			donations.POST("", api.SubmitDonation)
			donations.GET("", api.RequireAuth(), api.ListDonations)
			donations.GET("/stats", api.RequireAuth(), api.DonationStats)
			donations.GET("/:id", api.RequireAuth(), api.GetDonation)
			donations.PATCH("/:id/status", api.RequireAuth(), api.UpdateDonationStatus)
		}

		contacts := root.Group("/contacts")
		{
			contacts.POST("", api.SubmitContact)
			contacts.GET("", api.RequireAuth(), api.ListContacts)
			contacts.PATCH("/:id/status", api.RequireAuth(), api.UpdateContactStatus)
		}

		gallery := root.Group("/gallery")
		{
			gallery.GET("", api.ListGallery)
			gallery.POST("", api.RequireAuth(), api.AddGalleryImage)
			gallery.DELETE("/:id", api.RequireAuth(), api.DeleteGalleryImage)
			gallery.POST("/upload", api.RequireAuth(), api.UploadImage)
		}

		posts := root.Group("/posts")
		{
			posts.GET("", api.ListPosts)
			posts.GET("/:id", api.GetPost)
			posts.POST("", api.RequireAuth(), api.CreatePost)
			posts.PUT("/:id", api.RequireAuth(), api.UpdatePost)
			posts.DELETE("/:id", api.RequireAuth(), api.DeletePost)
		}

		home := root.Group("/home")
		{
			home.GET("", api.GetHomeContent)
			home.PUT("", api.RequireAuth(), api.UpdateHomeContent)
		}

		settings := root.Group("/settings")
		{
			settings.GET("", api.OptionalAuth(), api.GetSettings)
			settings.PUT("", api.RequireAuth(), api.UpdateSettings)
		}
	}

	return r
}
