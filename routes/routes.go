package routes

import (
	"net/http"
	"time"

	"roamify/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterProductRoutes registers the tour-package catalog endpoints.
func RegisterProductRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	products := r.Group("/products")
	{
		products.GET("", hb.Products.ListProductsHandler)
		products.POST("", hb.Products.CreateProductHandler)
		products.PUT("/:id", hb.Products.UpdateProductHandler)
		products.DELETE("/:id", hb.Products.DeleteProductHandler)
	}
}

// RegisterPostRoutes registers the blog endpoints.
func RegisterPostRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/posts")
	{
		api.GET("", hb.Posts.ListPostsHandler)
		api.POST("", hb.Posts.CreatePostHandler)
		api.PUT("/:id", hb.Posts.UpdatePostHandler)
		api.DELETE("/:id", hb.Posts.DeletePostHandler)
	}
}

// RegisterBookingRoutes registers the booking inquiry endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.Bookings.ListBookingsHandler)
		api.POST("", hb.Bookings.CreateBookingHandler)
	}
}

// RegisterImageRoutes mounts the static upload directory and the explicit
// image lookup endpoint.
func RegisterImageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Static("/uploads", hb.UploadDir)
	r.GET("/api/images/:filename", hb.Images.GetImageHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Roamify"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProductRoutes(r, hb)
	RegisterPostRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterImageRoutes(r, hb)
	RegisterHealthRoute(r)
}
