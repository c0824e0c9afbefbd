package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelease/config"
	"travelease/cron"
	"travelease/database"
	bookingRepo "travelease/database/repository/booking"
	"travelease/handlers"
	"travelease/middleware"
	"travelease/routes"
	"travelease/services/booking"
	"travelease/services/chatbot"
	"travelease/services/gate"
	"travelease/services/planner"
	"travelease/services/tasks"
	"travelease/services/weather"
	"travelease/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()

	// services.
	reminderScheduler := tasks.NewAsynqReminderScheduler()
	defer reminderScheduler.Close()
	bookingService := booking.NewBookingService(bookings, reminderScheduler)

	sessionStore := planner.NewRedisSessionStore(utils.GetSessionCacheClient(), 30*time.Minute)
	plannerService := planner.NewPlannerService(sessionStore)

	var geminiClient *chatbot.GeminiClient
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		client, err := chatbot.NewGeminiClient(context.Background(), key)
		if err != nil {
			logger.Sugar().Warnf("main: gemini client unavailable, chat falls back to static replies: %v", err)
		} else {
			geminiClient = client
		}
	}
	activeTrips := chatbot.NewRedisActiveTripStore(utils.GetSessionCacheClient(), 24*time.Hour)
	chatService := chatbot.NewChatService(bookingService, activeTrips, geminiClient)

	catalogHandler := handlers.NewCatalogHandler()
	travelInfoHandler := handlers.NewTravelInfoHandler(
		weather.NewGenerator(time.Now().UnixNano()),
		gate.NewPredictor(time.Now().UnixNano()),
	)
	aiHandler := handlers.NewAIHandler(plannerService, chatService)
	bookingHandler := handlers.NewBookingHandler(bookingService, &booking.PaymentProcessor{
		UseStripe: config.AppConfig.StripeKey != "",
	})

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		BookingRepo: bookings,

		GetFlightsHandler: catalogHandler.GetFlights,
		BookFlightHandler: catalogHandler.BookFlight,
		GetHotelsHandler:  catalogHandler.GetHotels,
		GetCabsHandler:    catalogHandler.GetCabs,

		GetWeatherHandler: travelInfoHandler.GetWeather,
		GetGateHandler:    travelInfoHandler.GetGate,

		AISuggestHandler:     aiHandler.Suggest,
		PlannerStartHandler:  aiHandler.PlannerStart,
		PlannerAnswerHandler: aiHandler.PlannerAnswer,
		ChatHandler:          aiHandler.HandleChat,

		CreateBookingHandler: bookingHandler.Create,
		GetBookingHandler:    bookingHandler.Get,
		ListBookingsHandler:  bookingHandler.ListByUser,
		CancelBookingHandler: bookingHandler.Cancel,
		RebookBookingHandler: bookingHandler.Rebook,
		PaymentHandler:       bookingHandler.ProcessPayment,

		HealthHandler: handlers.HealthHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background departure reminders.
	cron.InitReminderWorker()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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
