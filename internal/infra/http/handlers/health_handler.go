package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/kundurahul/peace-trail-backend/internal/config"
)

type HealthHandler struct {
	Mongo     *mongo.Client
	RabbitMQ  *amqp091.Connection
	Cfg       *config.Config
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(mongoClient *mongo.Client, rabbitMQ *amqp091.Connection, cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		Mongo:     mongoClient,
		RabbitMQ:  rabbitMQ,
		Cfg:       cfg,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	// Check MongoDB
	if h.Mongo != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.Mongo.Ping(ctx, readpref.Primary()); err != nil {
			deps["mongodb"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["mongodb"] = "healthy"
		}
	} else {
		deps["mongodb"] = "not configured"
	}

	// Check RabbitMQ
	if h.RabbitMQ != nil {
		if h.RabbitMQ.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	// Remote HTTP collaborators are only reported as configured or not;
	// probing them on every health check would burn API quota.
	deps["zoho"] = configuredLabel(h.Cfg.ZohoOAuthToken)
	deps["sheet"] = configuredLabel(h.Cfg.SheetURL)
	deps["groq"] = configuredLabel(h.Cfg.GroqAPIKey)

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}

func configuredLabel(v string) string {
	if v == "" {
		return "not configured"
	}
	return "configured"
}
