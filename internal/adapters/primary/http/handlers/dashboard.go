package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"rental-price-service/internal/adapters/primary/http/dto"
	"rental-price-service/internal/core/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templatesFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type dashboardView struct {
	Options services.FormOptions
	Form    dto.PredictionRequest
	Result  *dto.PredictionResponse
	Error   string
}

// defaultForm pre-selects the first choice of each dropdown.
func (h *Handler) defaultForm(opts services.FormOptions) dto.PredictionRequest {
	form := dto.PredictionRequest{
		Area:       opts.Area.Default,
		AreaRate:   opts.AreaRate.Default,
		Beds:       opts.Bedrooms[0],
		Bathrooms:  opts.Bathrooms[0],
		Balconies:  opts.Balconies[0],
		Furnishing: opts.Furnishing[0],
	}
	if len(opts.Cities) > 0 {
		form.City = opts.Cities[0]
	}
	if len(opts.Localities) > 0 {
		form.Locality = opts.Localities[0]
	}
	return form
}

func (h *Handler) ShowDashboard(c *gin.Context) {
	opts := h.modelSvc.Options()
	c.HTML(http.StatusOK, "dashboard.html", dashboardView{
		Options: opts,
		Form:    h.defaultForm(opts),
	})
}

func (h *Handler) SubmitDashboard(c *gin.Context) {
	view := dashboardView{Options: h.modelSvc.Options()}

	if err := c.ShouldBind(&view.Form); err != nil {
		view.Error = "Please check the property details: " + err.Error()
		c.HTML(http.StatusBadRequest, "dashboard.html", view)
		return
	}

	fields, err := dto.ToRawFields(&view.Form)
	if err != nil {
		view.Error = err.Error()
		c.HTML(http.StatusBadRequest, "dashboard.html", view)
		return
	}

	prediction, err := h.predictionSvc.Predict(c.Request.Context(), fields)
	if err != nil {
		log.WithError(err).Error("dashboard prediction failed")
		view.Error = "Prediction failed. Please try again later."
		c.HTML(statusForError(err), "dashboard.html", view)
		return
	}

	result := dto.ToPredictionResponse(prediction)
	view.Result = &result
	c.HTML(http.StatusOK, "dashboard.html", view)
}
