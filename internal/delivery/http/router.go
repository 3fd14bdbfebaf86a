package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jinwoo-93/crossdeal-dispute-service/internal/delivery/http/handlers"
)

func NewRouter(disputeHandler *handlers.DisputeHandler) *gin.Engine {
	router := gin.Default()

	disputes := router.Group("/disputes")
	{
		disputes.POST("", disputeHandler.OpenDispute)
		disputes.GET("", disputeHandler.ListDisputes)
		disputes.GET("/:id", disputeHandler.GetDispute)
		disputes.POST("/:id/votes", disputeHandler.SubmitVote)
		disputes.GET("/:id/votes", disputeHandler.ListVotes)
	}

	return router
}
