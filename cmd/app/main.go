package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"

	"github.com/Lawford1337/mood/internal/cart"
	"github.com/Lawford1337/mood/internal/catalog"
	"github.com/Lawford1337/mood/internal/category"
	"github.com/Lawford1337/mood/internal/checkout"
	"github.com/Lawford1337/mood/internal/config"
	"github.com/Lawford1337/mood/internal/mood"
	"github.com/Lawford1337/mood/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog)

	// one durable store per running instance; every stateful feature owns
	// its own slot in it
	store := storage.Open(cfg.DataFile)

	moodService := mood.NewService(store)
	moodHandler := mood.NewHandler(moodService)

	categoryService := category.NewService(store)
	categoryHandler := category.NewHandler(categoryService)

	catalogService := catalog.NewService(catalog.NewStore(store))
	catalogHandler := catalog.NewHandler(catalogService, categoryService)

	cartService := cart.NewService(cart.NewStore(store), catalogService)
	cartHandler := cart.NewHandler(cartService)

	checkoutHandler := checkout.NewHandler(checkout.NewService(cartService))

	moodHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	catalogHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	checkoutHandler.RegisterPublicRoutes(app)

	// operator routes sit behind JWT; everything registered above stays open
	if cfg.AdminEnabled {
		app.Use(jwtware.New(jwtware.Config{
			SigningKey: []byte(cfg.JWTSecret),
		}))
		catalogHandler.RegisterProtectedRoutes(app)
	}

	log.Printf("starting server on %s (admin=%v, data=%s)", cfg.Addr, cfg.AdminEnabled, cfg.DataFile)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("URL = %s, Method = %s, Took = %v\n", c.OriginalURL(), c.Method(), time.Since(start))
	return err
}
