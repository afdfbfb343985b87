package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yahya159/bidinsouk-sub002/internal/delivery/http/handlers"
)

// SetupRouter builds the gin engine for the auction API.
func SetupRouter(auctionHandler *handlers.AuctionHandler) *gin.Engine {
	router := gin.Default()

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuction)
		auctions.GET("/:id", auctionHandler.GetAuctionState)
		auctions.GET("/:id/bids", auctionHandler.GetAuctionBids)
		auctions.GET("/:id/actions", auctionHandler.GetVendorActions)
		auctions.POST("/:id/bids", auctionHandler.PlaceBid)
		auctions.POST("/:id/cancel", auctionHandler.CancelAuction)
		auctions.POST("/:id/extend", auctionHandler.ExtendAuction)
	}

	return router
}
