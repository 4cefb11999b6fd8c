package handlers

import (
	"rental-price-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	modelSvc      *services.ModelService
	predictionSvc *services.PredictionService
}

func New(modelSvc *services.ModelService, predictionSvc *services.PredictionService) *Handler {
	return &Handler{
		modelSvc:      modelSvc,
		predictionSvc: predictionSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Form domains and model metadata
	r.GET("/options", h.GetOptions)
	r.GET("/schema", h.GetSchema)

	// Predictions
	r.POST("/predictions", h.CreatePrediction)
	r.GET("/predictions", h.ListPredictions)
	r.GET("/predictions/:id", h.GetPrediction)
}

// RegisterDashboard mounts the server-rendered form page on r.
func (h *Handler) RegisterDashboard(r *gin.Engine) {
	r.SetHTMLTemplate(dashboardTemplate)
	r.GET("/", h.ShowDashboard)
	r.POST("/", h.SubmitDashboard)
}
