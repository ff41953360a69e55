package handler

import (
	"errors"
	"io"
	"net/http"

	"leadscore_backend/internal/leads/service"
	"leadscore_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

const (
	formFieldFile = "file"
	// multipartOverhead leaves room for boundaries and part headers on top
	// of the file size limit.
	multipartOverhead = 1 << 20
)

type Handler struct {
	svc      *service.Service
	maxBytes int64
}

func New(svc *service.Service, maxBytes int64) *Handler {
	return &Handler{svc: svc, maxBytes: maxBytes}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.Upload)
	rg.GET("", h.List)
}

// Upload godoc
// @Summary Upload leads from a CSV or XLSX sheet
// @Tags leads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Lead sheet (.csv or .xlsx)"
// @Success 201 {object} transport.UploadLeadsResponse
// @Failure 400 {object} httpkit.ErrorResponse
// @Failure 413 {object} httpkit.ErrorResponse
// @Router /leads/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	fileHeader, err := c.FormFile(formFieldFile)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpkit.Error(c, http.StatusRequestEntityTooLarge, "file too large", nil)
			return
		}
		httpkit.Error(c, http.StatusBadRequest, "no file uploaded", nil)
		return
	}
	if fileHeader.Size > h.maxBytes {
		httpkit.Error(c, http.StatusRequestEntityTooLarge, "file too large", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "could not read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "could not read file", nil)
		return
	}

	resp, err := h.svc.Import(c.Request.Context(), service.Upload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, resp)
}

// List godoc
// @Summary List leads
// @Tags leads
// @Produce json
// @Success 200 {object} transport.ListLeadsResponse
// @Router /leads [get]
func (h *Handler) List(c *gin.Context) {
	leads, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, leads)
}
