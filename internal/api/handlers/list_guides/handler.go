package list_guides

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

// Handle GET /api/v1/guides?lang=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = "en"
	}

	result, err := h.service.ListGuides(r.Context(), lang)
	if err != nil {
		if errors.Is(err, catalog.ErrUnsupportedLanguage) {
			h.logger.Warn("GET /guides - Unsupported language: %s", lang)
			handlers.RespondBadRequest(w, msgUnsupportedLanguage)
			return
		}
		h.logger.Error("GET /guides - Failed to list guides: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
