package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "msecli/internal/errors"
	"msecli/internal/listing"
)

// ListingFetcher fetches the listed-company table from the exchange site.
type ListingFetcher interface {
	Fetch(ctx context.Context) ([]listing.Company, error)
}

// ListingHandler serves the scraped company listing.
type ListingHandler struct {
	fetcher      ListingFetcher
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewListingHandler creates a new listing handler.
func NewListingHandler(fetcher ListingFetcher, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		fetcher:      fetcher,
		logger:       logger,
		errorHandler: apierrors.NewErrorHandler(logger),
	}
}

// RegisterRoutes registers the listing routes.
func (h *ListingHandler) RegisterRoutes(r chi.Router) {
	r.Get("/listing", h.GetListing)
}

// GetListing fetches and returns the listed companies.
func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	companies, err := h.fetcher.Fetch(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "listing fetch failed", slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, apierrors.ErrListingUnavailable)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"companies": companies,
		"count":     len(companies),
	})
}
