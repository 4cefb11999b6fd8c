package dto

import (
	"time"

	"rental-price-service/internal/core/domain"
	"rental-price-service/internal/core/services"
)

// ToRawFields converts a bound request. Furnishing labels outside the
// ordinal table are rejected here.
func ToRawFields(req *PredictionRequest) (domain.RawFields, error) {
	furnishing, err := domain.ParseFurnishing(req.Furnishing)
	if err != nil {
		return domain.RawFields{}, err
	}
	return domain.RawFields{
		Area:       req.Area,
		Beds:       req.Beds,
		Bathrooms:  req.Bathrooms,
		Balconies:  req.Balconies,
		Furnishing: furnishing,
		AreaRate:   req.AreaRate,
		City:       req.City,
		Locality:   req.Locality,
	}, nil
}

func ToFieldsDTO(f domain.RawFields) FieldsDTO {
	return FieldsDTO{
		Area:       f.Area,
		Beds:       f.Beds,
		Bathrooms:  f.Bathrooms,
		Balconies:  f.Balconies,
		Furnishing: f.Furnishing.String(),
		AreaRate:   f.AreaRate,
		City:       f.City,
		Locality:   f.Locality,
	}
}

func ToPredictionResponse(p *domain.Prediction) PredictionResponse {
	return PredictionResponse{
		ID:           p.ID,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		ModelVersion: p.ModelVersion,
		Price:        p.Price,
		Display:      p.Display,
		Cached:       p.Cached,
		Input:        ToFieldsDTO(p.Fields),
		Row:          p.Row,
	}
}

func ToOptionsResponse(o services.FormOptions) OptionsResponse {
	return OptionsResponse{
		Cities:     o.Cities,
		Localities: o.Localities,
		Furnishing: o.Furnishing,
		Bedrooms:   o.Bedrooms,
		Bathrooms:  o.Bathrooms,
		Balconies:  o.Balconies,
		Area:       toRangeDTO(o.Area),
		AreaRate:   toRangeDTO(o.AreaRate),
	}
}

func toRangeDTO(r domain.Range) RangeDTO {
	return RangeDTO{Min: r.Min, Max: r.Max, Default: r.Default}
}
