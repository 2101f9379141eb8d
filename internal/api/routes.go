package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/card/info", cardInfoHandler)
		api.POST("/card/image", h.cardImageHandler)
		api.POST("/deck/image", h.deckImageHandler)
		api.GET("/qr", qrHandler)
	}
}
