package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/joseph6369828419/online-saleserver/middleware"
	"github.com/joseph6369828419/online-saleserver/routes"
	"github.com/joseph6369828419/online-saleserver/sms"
	"github.com/joseph6369828419/online-saleserver/store"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	logger := initLogger()
	defer logger.Sync()

	logger.Info("starting application")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Init document store
	client := initMongo(ctx, logger)
	defer client.Disconnect(context.Background())

	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "storefront"
	}
	users, err := store.NewMongo(ctx, client.Database(dbName))
	if err != nil {
		logger.Fatal("store setup failed", zap.Error(err))
	}

	// Init SMS provider client
	sender := sms.NewTwilio(
		os.Getenv("TWILIO_ACCOUNT_SID"),
		os.Getenv("TWILIO_AUTH_TOKEN"),
		fromNumber(),
	)

	// Gin setup
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())
	r.Use(gin.Recovery())

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, users, sender, logger)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	logger.Info("server running", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

// initLogger builds the process-wide zap logger.
func initLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return logger
}

// initMongo connects the document store client and verifies the connection.
func initMongo(ctx context.Context, logger *zap.Logger) *mongo.Client {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Fatal("mongodb connection failed", zap.Error(err))
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("mongodb ping failed", zap.Error(err))
	}

	logger.Info("connected to mongodb")
	return client
}

// fromNumber is the fixed sender number for outbound messages.
func fromNumber() string {
	if from := os.Getenv("TWILIO_FROM_NUMBER"); from != "" {
		return from
	}
	return "+13344535329"
}
