package dto

import (
	"github.com/google/uuid"

	"rental-price-service/internal/core/domain"
)

// PredictionRequest binds both the JSON API and the dashboard form.
type PredictionRequest struct {
	Area       float64 `json:"area" form:"area" binding:"required,gte=100,lte=10000"`
	Beds       int     `json:"beds" form:"beds" binding:"required,oneof=1 2 3 4 5"`
	Bathrooms  int     `json:"bathrooms" form:"bathrooms" binding:"required,oneof=1 2 3 4"`
	Balconies  int     `json:"balconies" form:"balconies" binding:"oneof=0 1 2 3"`
	Furnishing string  `json:"furnishing" form:"furnishing" binding:"required"`
	AreaRate   float64 `json:"area_rate" form:"area_rate" binding:"required,gte=1,lte=500"`
	City       string  `json:"city" form:"city" binding:"required"`
	Locality   string  `json:"locality" form:"locality" binding:"required"`
}

type PredictionResponse struct {
	ID           uuid.UUID        `json:"id"`
	CreatedAt    string           `json:"created_at"`
	ModelVersion string           `json:"model_version"`
	Price        float64          `json:"price"`
	Display      string           `json:"display"`
	Cached       bool             `json:"cached"`
	Input        FieldsDTO        `json:"input"`
	Row          *domain.InputRow `json:"row,omitempty"`
}

type FieldsDTO struct {
	Area       float64 `json:"area"`
	Beds       int     `json:"beds"`
	Bathrooms  int     `json:"bathrooms"`
	Balconies  int     `json:"balconies"`
	Furnishing string  `json:"furnishing"`
	AreaRate   float64 `json:"area_rate"`
	City       string  `json:"city"`
	Locality   string  `json:"locality"`
}

type ListPredictionsResponse struct {
	Items      []PredictionResponse `json:"items"`
	Total      int                  `json:"total"`
	PageSize   int                  `json:"page_size"`
	NextOffset int                  `json:"next_offset"`
}

type RangeDTO struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
}

type OptionsResponse struct {
	Cities     []string `json:"cities"`
	Localities []string `json:"localities"`
	Furnishing []string `json:"furnishing"`
	Bedrooms   []int    `json:"bedrooms"`
	Bathrooms  []int    `json:"bathrooms"`
	Balconies  []int    `json:"balconies"`
	Area       RangeDTO `json:"area"`
	AreaRate   RangeDTO `json:"area_rate"`
}

type SchemaResponse struct {
	ModelVersion string   `json:"model_version"`
	Backend      string   `json:"backend"`
	Features     []string `json:"features"`
}
