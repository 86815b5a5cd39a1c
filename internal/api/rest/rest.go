package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes. guards protect the routes that act
// through the wallet session, in order; nil entries are skipped.
func SetupRoutes(router *gin.Engine, handler Handler, guards ...gin.HandlerFunc) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")

	// Read model (public)
	v1.GET("/assets", handler.ListAssets)
	v1.GET("/assets/:id", handler.GetAsset)
	v1.GET("/assets/:id/offers", handler.ListAssetOffers)
	v1.GET("/assets/:id/transactions", handler.ListAssetTransactions)
	v1.GET("/listings", handler.ListListings)
	v1.GET("/offers", handler.ListOffers)
	v1.GET("/collections", handler.ListCollections)
	v1.GET("/transactions", handler.ListTransactions)
	v1.GET("/stats", handler.GetStats)
	v1.GET("/trending", handler.GetTrending)
	v1.GET("/settings", handler.GetSettings)
	v1.GET("/session", handler.GetSession)

	// Favorites are keyed by the caller's address
	v1.GET("/favorites/:address", handler.ListFavorites)
	v1.POST("/favorites", handler.AddFavorite)
	v1.DELETE("/favorites", handler.RemoveFavorite)

	// Wallet session and workflows
	session := v1.Group("")
	for _, guard := range guards {
		if guard != nil {
			session.Use(guard)
		}
	}
	session.POST("/session/connect", handler.ConnectSession)
	session.POST("/session/disconnect", handler.DisconnectSession)
	session.POST("/assets/mint", handler.MintAsset)
	session.POST("/assets/:id/list", handler.ListAsset)
	session.POST("/assets/:id/offers", handler.MakeOffer)
	session.POST("/assets/:id/transfer", handler.TransferAsset)
	session.POST("/listings/:id/buy", handler.BuyListing)
	session.POST("/offers/:id/accept", handler.AcceptOffer)
	session.POST("/offers/:id/cancel", handler.CancelOffer)
	session.PUT("/settings/fee", handler.UpdateFeeSettings)
}
