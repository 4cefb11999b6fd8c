package handlers

import (
	"net/http"

	"rental-price-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToOptionsResponse(h.modelSvc.Options()))
}

func (h *Handler) GetSchema(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SchemaResponse{
		ModelVersion: h.modelSvc.Version(),
		Backend:      h.modelSvc.Backend(),
		Features:     h.modelSvc.Schema().Names(),
	})
}
