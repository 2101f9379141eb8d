package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/thraizz/cardconjurer/internal/api"
	"github.com/thraizz/cardconjurer/internal/assets"
)

func main() {
	root := os.Getenv("ASSETS_DIR")
	if root == "" {
		root = "assets"
	}
	lib := assets.NewLibrary(root)

	r := gin.Default()
	api.RegisterRoutes(r, api.NewHandler(lib))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("starting server on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
