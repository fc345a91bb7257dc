package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/AtifZafar596/Jetak-food-backend-api/configs"
	"github.com/AtifZafar596/Jetak-food-backend-api/events"
	"github.com/AtifZafar596/Jetak-food-backend-api/middlewares"
	"github.com/AtifZafar596/Jetak-food-backend-api/notify"
	"github.com/AtifZafar596/Jetak-food-backend-api/pkg/metrics"
	"github.com/AtifZafar596/Jetak-food-backend-api/routes"
	"github.com/AtifZafar596/Jetak-food-backend-api/store"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// OTP codes and the token blacklist live in redis when configured,
	// otherwise in process memory (single instance only)
	var kv store.KV
	if cfg.RedisAddr != "" {
		kv = store.NewRedis(cfg.RedisAddr, cfg.RedisPassword, 0)
	} else {
		log.Println("REDIS_ADDR not set, using in-memory store")
		kv = store.NewMemory()
	}

	var pub events.Publisher = events.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPub := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kafkaPub.Close()
		pub = kafkaPub
	}

	m := metrics.NewOrderMetrics()
	sms := notify.LogSender{}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	hub := routes.RegisterRoutes(r, db, cfg, kv, sms, pub, m)
	go hub.Run()

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
