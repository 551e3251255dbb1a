package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-restaurant/controllers"
	"smart-restaurant/database"
	"smart-restaurant/middleware"
	"smart-restaurant/routes"
	"smart-restaurant/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, relying on process environment")
	}

	uri := os.Getenv("MONGO_URI")
	dbName := os.Getenv("DB_NAME")
	if uri == "" {
		log.Fatal("Missing MONGO_URI")
	}
	if dbName == "" {
		log.Fatal("Missing DB_NAME")
	}

	host := os.Getenv("HOST")
	if host == "" {
		host = "0.0.0.0"
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	if err := database.Connect(uri); err != nil {
		log.Fatalf("mongo connect failed: %v", err)
	}
	db := database.OpenDatabase(dbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("index bootstrap failed: %v", err)
	}
	cancel()

	users := store.NewUserStore(db)
	menu := store.NewMenuStore(db)
	orders := store.NewOrderStore(db)
	reservations := store.NewReservationStore(db)
	events := store.NewEventStore(db)

	hub := controllers.NewHub()
	menuCache := controllers.NewMenuCache(controllers.MenuCacheTTL())
	profile := controllers.NewTasteProfile()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())

	clientURL := os.Getenv("CLIENT_URL")
	if clientURL == "" {
		clientURL = "*"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{clientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: clientURL != "*",
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer pingCancel()
		dbStatus := "up"
		if err := database.Ping(pingCtx); err != nil {
			dbStatus = "down"
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"db":     dbStatus,
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
	router.GET("/ws", middleware.Authentication(), controllers.ServeWS(hub))

	routes.UserRoutes(router, users)
	routes.MenuRoutes(router, menu, menuCache)
	routes.OrderRoutes(router, orders, hub)
	routes.ReservationRoutes(router, reservations, hub)
	routes.EventRoutes(router, events)
	routes.AIRoutes(router, menu, profile)

	srv := &http.Server{
		Addr:    host + ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("API running at http://%s:%s", host, port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("received %s, shutting down", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
}
