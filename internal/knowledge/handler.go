package knowledge

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"knowledge-backend/internal/ingest"
	"knowledge-backend/internal/shared/server/respond"
	"knowledge-backend/internal/shared/util"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches knowledge routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents", h.upload)
	rg.POST("/knowledge", h.addManual)
	rg.GET("/knowledge", h.list)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	doc := ingest.UploadedDocument{
		Data:         data,
		DeclaredName: fileName,
		DeclaredSize: fileHeader.Size,
	}

	rec, _, err := h.Svc.IngestUpload(c.Request.Context(), doc)
	if err != nil {
		respondIngestError(c, err)
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(rec))
}

type addManualRequest struct {
	Content string `json:"content"`
	Source  string `json:"source"`
}

func (h *Handler) addManual(c *gin.Context) {
	var req addManualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	rec, err := h.Svc.AddManual(c.Request.Context(), req.Content, req.Source)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "content and source are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store knowledge", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(rec))
}

func (h *Handler) list(c *gin.Context) {
	recs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list knowledge", nil)
		return
	}

	resp := make([]RecordResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, toResponse(rec))
	}
	respond.JSON(c, http.StatusOK, resp)
}

// respondIngestError maps the pipeline failure taxonomy onto HTTP statuses,
// reporting each kind under its stable code.
func respondIngestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ingest.ErrUnsupportedFormat):
		respond.Error(c, http.StatusUnsupportedMediaType, ingest.CodeUnsupportedFormat, "only pdf and docx uploads are supported", nil)
	case errors.Is(err, ingest.ErrMalformedDocument):
		respond.Error(c, http.StatusBadRequest, ingest.CodeMalformedDocument, "document could not be parsed", nil)
	case errors.Is(err, ingest.ErrEmptyDocument):
		respond.Error(c, http.StatusUnprocessableEntity, ingest.CodeEmptyDocument, "document contains no text", nil)
	case errors.Is(err, ingest.ErrNoRecoverableText):
		respond.Error(c, http.StatusUnprocessableEntity, ingest.CodeNoRecoverableText, "no text could be recovered from the document", nil)
	case errors.Is(err, ingest.ErrRecognitionFailure):
		respond.Error(c, http.StatusInternalServerError, ingest.CodeRecognitionFailure, "text recognition failed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to ingest document", nil)
	}
}
