package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"roamify/config"
	"roamify/database"
	"roamify/database/filestore"
	bookingRepo "roamify/database/repository/booking"
	"roamify/handlers"
	"roamify/middleware"
	"roamify/models"
	"roamify/routes"
	"roamify/services/blog"
	"roamify/services/catalog"
	"roamify/services/inquiry"
	"roamify/services/storage"
	"roamify/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	imageStore, err := storage.NewLocalImageStore(config.AppConfig.UploadDir)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize image storage: %v", err)
	}

	products, err := filestore.Open[models.Product](filepath.Join(config.AppConfig.DataDir, "products.json"))
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load product collection: %v", err)
	}
	posts, err := filestore.Open[models.Post](filepath.Join(config.AppConfig.DataDir, "posts.json"))
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load post collection: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepository := bookingRepo.NewMongoBookingRepo()

	// services.
	productService := &catalog.DefaultProductService{Products: products}
	postService := &blog.DefaultPostService{Posts: posts}
	bookingService := &inquiry.DefaultBookingService{Repo: bookingRepository}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Products:  handlers.NewProductHandler(productService, imageStore),
		Posts:     handlers.NewPostHandler(postService),
		Bookings:  handlers.NewBookingHandler(bookingService),
		Images:    handlers.NewImageHandler(imageStore),
		UploadDir: imageStore.Dir(),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
