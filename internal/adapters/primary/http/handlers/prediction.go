package handlers

import (
	"net/http"
	"strconv"

	"rental-price-service/internal/adapters/primary/http/dto"
	"rental-price-service/internal/core/ports/output"
	"rental-price-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) CreatePrediction(c *gin.Context) {
	var req dto.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields, err := dto.ToRawFields(&req)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	prediction, err := h.predictionSvc.Predict(c.Request.Context(), fields)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"city":     fields.City,
			"locality": fields.Locality,
		}).Error("predict rent failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictionResponse(prediction))
}

func (h *Handler) ListPredictions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := services.NormalizeFilter(ports.PredictionFilter{
		City:   c.Query("city"),
		Limit:  limit,
		Offset: offset,
	})

	predictions, total, err := h.predictionSvc.List(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list predictions failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.PredictionResponse, 0, len(predictions))
	for _, p := range predictions {
		items = append(items, dto.ToPredictionResponse(p))
	}

	c.JSON(http.StatusOK, dto.ListPredictionsResponse{
		Items:      items,
		Total:      total,
		PageSize:   filter.Limit,
		NextOffset: filter.Offset + len(items),
	})
}

func (h *Handler) GetPrediction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid prediction id"})
		return
	}

	prediction, err := h.predictionSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictionResponse(prediction))
}
