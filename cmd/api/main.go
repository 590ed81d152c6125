package main

import (
	"context"
	"log"
	"os"
	"time"

	"mealplanner/internal/ai"
	"mealplanner/internal/auth"
	"mealplanner/internal/db"
	"mealplanner/internal/menu"
	"mealplanner/internal/middleware"
	"mealplanner/internal/organization"
	"mealplanner/internal/retailer"
	"mealplanner/internal/shoppinglist"
	"mealplanner/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"OPENAI_API_KEY",
		"OPENAI_MODEL",
		"S3_ACCESS_KEY",
		"S3_SECRET_KEY",
		"S3_BUCKET_NAME",
		"S3_REGION",
		"S3_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	s3Client, err := storage.NewS3Client(context.Background())
	if err != nil {
		log.Fatal("❌ S3 init failed:", err)
	}

	// ───────────────────────── CACHE ─────────────────────────
	listCache := shoppinglist.NewCache()
	defer listCache.Close()

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	orgRepo := organization.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	tokenStore := retailer.NewPostgresTokenStore(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	orgService := organization.NewService(orgRepo, userRepo, s3Client)
	menuService := menu.NewService(menuRepo)

	aiClient := ai.NewOpenAIClient()
	listService := shoppinglist.NewService(menuService, listCache, aiClient)

	registry := retailer.NewRegistry(
		retailer.NewKrogerClient(),
		retailer.NewWalmartClient(),
		retailer.NewInstacartClient(),
	)

	// ───────────────────────── HANDLERS ─────────────────────────
	orgHandler := organization.NewHandler(orgService)
	menuHandler := menu.NewHandler(menuService)
	listHandler := shoppinglist.NewHandler(listService)
	retailerHandler := retailer.NewHandler(registry, tokenStore)

	// ───────────────────────── ORGANIZATION ROUTES ─────────────────────────
	orgs := r.Group("/organizations")
	orgs.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleOrganization, auth.RoleAdmin),
	)
	{
		orgs.POST("", orgHandler.Create)
		orgs.GET("/me", orgHandler.ListMine)
		orgs.GET("/:id/clients", orgHandler.ListClients)
		orgs.POST("/:id/logo", orgHandler.UploadLogo)
	}

	// ───────────────────────── MENU ROUTES ─────────────────────────
	menus := r.Group("/menus")
	menus.Use(middleware.AuthMiddleware())
	{
		menus.POST("", menuHandler.Create)
		menus.GET("/me", menuHandler.ListMine)
		menus.GET("/:id", menuHandler.Get)
		menus.PUT("/:id/document", menuHandler.UpdateDocument)

		// grocery list generation
		menus.GET("/:id/grocery-list", listHandler.Get)
		menus.POST("/:id/grocery-list/ai", listHandler.GetEnhanced)
	}

	// ───────────────────────── RETAILER ROUTES ─────────────────────────
	retailers := r.Group("/retailers")
	retailers.Use(middleware.AuthMiddleware())
	{
		retailers.GET("", retailerHandler.List)
		retailers.GET("/:name/search", retailerHandler.Search)
		retailers.POST("/:name/link", retailerHandler.LinkAccount)
		retailers.POST("/:name/cart", retailerHandler.AddToCart)
		retailers.POST("/:name/shopping-list-link", retailerHandler.ShoppingListLink)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
