package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"leadscore_backend/internal/scoring/service"
	"leadscore_backend/internal/scoring/transport"
	"leadscore_backend/platform/apperr"
	"leadscore_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidOfferID = "invalid offer id"
	contentTypeXLSX   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/score/:offerId", h.Score)
	rg.GET("/score/:offerId", h.Score)
	rg.GET("/results/:offerId", h.Results)
	rg.GET("/results/:offerId/xlsx", h.ResultsXLSX)
	rg.GET("/res_csv/:offerId", h.ResultsCSV)
}

// Score godoc
// @Summary Score every lead against an offer
// @Description Leads that already have a score for the offer are skipped.
// @Description scoreCount is the number of leads considered (same as total); created counts new scores.
// @Tags scoring
// @Produce json
// @Param offerId path string true "Offer ID"
// @Success 201 {object} transport.ScoreResponse
// @Failure 404 {object} httpkit.ErrorResponse
// @Failure 503 {object} transport.OverloadResponse
// @Router /score/{offerId} [post]
func (h *Handler) Score(c *gin.Context) {
	offerID, ok := parseOfferID(c)
	if !ok {
		return
	}

	report, err := h.svc.ScoreLeadsForOffer(c.Request.Context(), offerID)
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) && appErr.Kind == apperr.KindUnavailable {
			details, _ := appErr.Details.(service.OverloadDetails)
			_ = c.Error(err)
			httpkit.JSON(c, http.StatusServiceUnavailable, transport.OverloadResponse{
				Error:    appErr.Message,
				Provider: details.Provider,
				Details:  report,
			})
			return
		}
		httpkit.HandleError(c, err)
		return
	}

	httpkit.Created(c, transport.NewScoreResponse(report))
}

// Results godoc
// @Summary Scored leads for an offer
// @Tags scoring
// @Produce json
// @Param offerId path string true "Offer ID"
// @Success 200 {object} transport.ResultsResponse
// @Failure 404 {object} httpkit.ErrorResponse
// @Router /results/{offerId} [get]
func (h *Handler) Results(c *gin.Context) {
	offerID, ok := parseOfferID(c)
	if !ok {
		return
	}

	rows, err := h.svc.Results(c.Request.Context(), offerID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ResultsResponse{Message: "results fetched", FormattedScore: rows})
}

// ResultsCSV godoc
// @Summary Scored leads for an offer as CSV
// @Tags scoring
// @Produce text/csv
// @Param offerId path string true "Offer ID"
// @Success 200 {file} file
// @Failure 404 {object} httpkit.ErrorResponse
// @Router /res_csv/{offerId} [get]
func (h *Handler) ResultsCSV(c *gin.Context) {
	offerID, ok := parseOfferID(c)
	if !ok {
		return
	}

	rows, err := h.svc.Results(c.Request.Context(), offerID)
	if httpkit.HandleError(c, err) {
		return
	}

	var buf bytes.Buffer
	if err := service.WriteResultsCSV(&buf, rows); err != nil {
		httpkit.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=offer_%s_results.csv", offerID))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// ResultsXLSX godoc
// @Summary Scored leads for an offer as an Excel workbook
// @Tags scoring
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param offerId path string true "Offer ID"
// @Success 200 {file} file
// @Failure 404 {object} httpkit.ErrorResponse
// @Router /results/{offerId}/xlsx [get]
func (h *Handler) ResultsXLSX(c *gin.Context) {
	offerID, ok := parseOfferID(c)
	if !ok {
		return
	}

	rows, err := h.svc.Results(c.Request.Context(), offerID)
	if httpkit.HandleError(c, err) {
		return
	}

	var buf bytes.Buffer
	if err := service.WriteResultsXLSX(&buf, rows); err != nil {
		httpkit.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=offer_%s_results.xlsx", offerID))
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

func parseOfferID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("offerId"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidOfferID, nil)
		return uuid.UUID{}, false
	}
	return id, true
}
