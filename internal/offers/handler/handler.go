package handler

import (
	"net/http"

	"leadscore_backend/internal/offers/service"
	"leadscore_backend/internal/offers/transport"
	"leadscore_backend/platform/httpkit"
	"leadscore_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidOfferID   = "invalid offer id"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/offer", h.Create)
	rg.GET("/offers", h.List)
	rg.GET("/offers/:id", h.GetByID)
}

// Create godoc
// @Summary Create an offer
// @Tags offers
// @Accept json
// @Produce json
// @Param body body transport.CreateOfferRequest true "Offer"
// @Success 201 {object} transport.CreateOfferResponse
// @Failure 400 {object} httpkit.ErrorResponse
// @Router /offer [post]
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Fields(err))
		return
	}

	offer, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, transport.CreateOfferResponse{Message: "offer created", Offer: offer})
}

// GetByID godoc
// @Summary Get an offer
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} transport.OfferResponse
// @Failure 404 {object} httpkit.ErrorResponse
// @Router /offers/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidOfferID, nil)
		return
	}

	offer, err := h.svc.GetByID(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, offer)
}

// List godoc
// @Summary List offers
// @Tags offers
// @Produce json
// @Success 200 {object} transport.ListOffersResponse
// @Router /offers [get]
func (h *Handler) List(c *gin.Context) {
	offers, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, offers)
}
