package list_tours

import (
	"errors"
	"net/http"

	"github.com/citystride/CST-BookingService/internal/api/handlers"
	"github.com/citystride/CST-BookingService/internal/service/catalog"
)

const (
	msgUnsupportedLanguage = "неподдерживаемый язык"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tours?lang=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = "en"
	}

	result, err := h.service.ListTours(r.Context(), lang)
	if err != nil {
		if errors.Is(err, catalog.ErrUnsupportedLanguage) {
			h.logger.Warn("GET /tours - Unsupported language: %s", lang)
			handlers.RespondBadRequest(w, msgUnsupportedLanguage)
			return
		}
		h.logger.Error("GET /tours - Failed to list tours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
