package http

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/MKhiriev/frontend-console/internal/console"
	"github.com/MKhiriev/frontend-console/internal/logger"
	"github.com/MKhiriev/frontend-console/internal/metrics"
	"github.com/MKhiriev/frontend-console/models"
)

//go:embed templates/*.html
var templateFS embed.FS

type Handler struct {
	page          *console.Page
	metrics       *metrics.Recorder
	buildInfo     models.AppBuildInfo
	maxUploadSize int64

	tmpl   *template.Template
	logger *logger.Logger
}

// NewHandler builds the browser console over page. recorder may be nil, in
// which case /metrics is not served.
func NewHandler(page *console.Page, recorder *metrics.Recorder, buildInfo models.AppBuildInfo, maxUploadSize int64, logger *logger.Logger) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing console templates: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		page:          page,
		metrics:       recorder,
		buildInfo:     buildInfo,
		maxUploadSize: maxUploadSize,
		tmpl:          tmpl,
		logger:        logger,
	}, nil
}
