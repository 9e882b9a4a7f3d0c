package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gin-inventory/controllers"
	"gin-inventory/infra"
	"gin-inventory/middlewares"
	"gin-inventory/models"
	"gin-inventory/repositories"
	"gin-inventory/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB) *gin.Engine {
	authRepository := repositories.NewAuthRepository(db)
	authService := services.NewAuthService(authRepository)
	authController := controllers.NewAuthController(authService)

	itemRepository := repositories.NewItemRepository(db)
	itemService := services.NewItemService(itemRepository)
	itemController := controllers.NewItemController(itemService)

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middlewares.RequestID())

	authRouter := r.Group("/api/auth")
	authRouter.POST("/register", authController.Register)
	authRouter.POST("/login", authController.Login)
	authRouter.POST("/logout", authController.Logout)

	itemRouter := r.Group("/api/items", middlewares.SessionRequired())
	itemRouter.GET("", itemController.FindAll)
	itemRouter.GET("/stats", itemController.Stats)
	itemRouter.GET("/:id", itemController.FindById)
	itemRouter.POST("", itemController.Create)
	itemRouter.PUT("/:id", itemController.Update)
	itemRouter.DELETE("/:id", itemController.Delete)

	return r
}

func registerPages(r *gin.Engine) {
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "web/static")

	pages := r.Group("/", middlewares.PageGate())
	pages.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/dashboard")
	})
	pages.GET("/login", func(ctx *gin.Context) {
		ctx.HTML(http.StatusOK, "login.html", nil)
	})
	pages.GET("/register", func(ctx *gin.Context) {
		ctx.HTML(http.StatusOK, "register.html", nil)
	})
	pages.GET("/dashboard", func(ctx *gin.Context) {
		ctx.HTML(http.StatusOK, "dashboard.html", nil)
	})
}

func initDB() *gorm.DB {
	infra.Initialize()
	db := infra.SetupDB()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(&models.User{}, &models.Item{}); err != nil {
			panic("Failed to migrate database")
		}
	}

	return db
}

func main() {
	db := initDB()
	defer infra.CloseDB(db)

	r := setupRouter(db)
	registerPages(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
