package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cyue49/BookNow/config"
	"github.com/cyue49/BookNow/database"
	availabilityRepo "github.com/cyue49/BookNow/database/repository/availability"
	bookingRepo "github.com/cyue49/BookNow/database/repository/booking"
	clientRepo "github.com/cyue49/BookNow/database/repository/client"
	providerRepo "github.com/cyue49/BookNow/database/repository/provider"
	serviceRepo "github.com/cyue49/BookNow/database/repository/service"
	"github.com/cyue49/BookNow/handlers"
	"github.com/cyue49/BookNow/middleware"
	"github.com/cyue49/BookNow/routes"
	"github.com/cyue49/BookNow/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())

	// repositories.
	clients := clientRepo.NewMongoClientRepo()
	providers := providerRepo.NewMongoProviderRepo()
	services := serviceRepo.NewMongoServiceRepo()
	availabilities := availabilityRepo.NewMongoAvailabilityRepo()
	bookings := bookingRepo.NewMongoBookingRepo()

	handlerBundle := &handlers.HandlerBundle{
		Clients:        handlers.NewClientHandler(clients),
		Providers:      handlers.NewProviderHandler(providers),
		Services:       handlers.NewServiceHandler(services),
		Availabilities: handlers.NewAvailabilityHandler(availabilities, providers),
		Bookings:       handlers.NewBookingHandler(bookings, clients, providers, services),
	}

	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "3000"
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
