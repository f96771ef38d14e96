package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/kundurahul/peace-trail-backend/internal/config"
	"github.com/kundurahul/peace-trail-backend/internal/infra/database"
	"github.com/kundurahul/peace-trail-backend/internal/infra/http/handlers"
	"github.com/kundurahul/peace-trail-backend/internal/infra/http/middleware"
	"github.com/kundurahul/peace-trail-backend/internal/infra/integration/groq"
	"github.com/kundurahul/peace-trail-backend/internal/infra/integration/gsheet"
	"github.com/kundurahul/peace-trail-backend/internal/infra/integration/zoho"
	"github.com/kundurahul/peace-trail-backend/internal/infra/mail"
	"github.com/kundurahul/peace-trail-backend/internal/infra/queue"
	"github.com/kundurahul/peace-trail-backend/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	mongoClient, err := database.NewMongoConnection(cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer mongoClient.Disconnect(context.Background())

	// 1. Stores
	otpRepo := database.NewOTPRepository(mongoClient, cfg.MongoDatabase)

	// 2. Gateways and adapters
	invoiceGateway := zoho.NewClient(cfg.ZohoBaseURL, cfg.ZohoOAuthToken, cfg.ZohoOrgID)
	sheetClient := gsheet.NewClient(cfg.SheetURL)
	groqClient := groq.NewClient(cfg.GroqAPIURL, cfg.GroqAPIKey, cfg.GroqModel)
	mailSender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)

	// 3. Optional alerts queue + worker (degraded bookings -> ops mail)
	var alertProducer usecase.AlertProducerInterface
	var rabbitConn *amqp091.Connection
	if cfg.AMQPURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		rabbitConn = rabbitMQ.Conn

		alertProducer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
		worker := queue.NewWorker(rabbitMQ.Ch, mailSender, cfg.OpsEmail)
		go worker.Start(queue.QueueName)
	} else {
		log.Println("⚠️ AMQP_URL not set, booking alerts disabled")
	}

	// 4. UseCases
	sendOTPUC := usecase.NewSendOTPUseCase(otpRepo, mailSender)
	verifyOTPUC := usecase.NewVerifyOTPUseCase(otpRepo, cfg.OTPSingleUse)
	bookUC := usecase.NewBookPackageUseCase(invoiceGateway, sheetClient, alertProducer, cfg.OpsEmail)
	listUC := usecase.NewListPackagesUseCase(sheetClient)
	recommendUC := usecase.NewRecommendUseCase(groqClient, sheetClient)

	// 5. Handlers
	otpHandler := handlers.NewOTPHandler(sendOTPUC, verifyOTPUC)
	bookingHandler := handlers.NewBookingHandler(bookUC)
	packageHandler := handlers.NewPackageHandler(listUC)
	recommendationHandler := handlers.NewRecommendationHandler(recommendUC)
	healthHandler := handlers.NewHealthHandler(mongoClient, rabbitConn, cfg)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/api/packages", packageHandler.HandleList)
	r.Get("/api/packages/featured", packageHandler.HandleFeatured)
	r.Get("/api/packages/{id}", packageHandler.HandleByID)
	r.Post("/api/otp/send", otpHandler.HandleSend)
	r.Post("/api/otp/verify", otpHandler.HandleVerify)
	r.Post("/api/bookings", bookingHandler.Handle)
	r.Post("/api/ai/recommendation", recommendationHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("🚀 Peace Trail backend running on http://localhost%s", addr)
	http.ListenAndServe(addr, r)
}
