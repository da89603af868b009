package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	MongoURI      string
	MongoDatabase string

	RedisAddr     string
	RedisPassword string

	JWTSecret      string
	JWTExpiryHours int

	// AdminMasterEmail is always authorized for the admin surface, even
	// without a companion admin profile document.
	AdminMasterEmail string

	GeminiAPIKey string
	GeminiModel  string

	CacheTTLSeconds int
}

// Load returns a Config populated from the environment.
func Load() *Config {
	return &Config{
		MongoURI:         getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnv("MONGODB_DATABASE", "temmy_realty"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTExpiryHours:   getEnvInt("JWT_EXPIRY_HOURS", 24),
		AdminMasterEmail: getEnv("ADMIN_MASTER_EMAIL", "admin@temmyrealty.com"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		CacheTTLSeconds:  getEnvInt("CACHE_TTL_SECONDS", 60),
	}
}

var (
	client   *mongo.Client
	database *mongo.Database
)

// ConnectDB establishes the MongoDB connection used by all handlers.
func ConnectDB() {
	uri := getEnv("MONGODB_URI", "mongodb://localhost:27017")
	dbName := getEnv("MONGODB_DATABASE", "temmy_realty")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := c.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	client = c
	database = c.Database(dbName)
	log.Printf("Connected to MongoDB database %q", dbName)
}

// GetCollection returns a handle to the named collection.
func GetCollection(name string) *mongo.Collection {
	return database.Collection(name)
}

// DisconnectDB closes the MongoDB connection.
func DisconnectDB() {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
