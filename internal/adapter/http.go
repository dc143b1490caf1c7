package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/frontend-console/internal/config"
	"github.com/MKhiriev/frontend-console/internal/logger"
	"github.com/MKhiriev/frontend-console/internal/metrics"
	"github.com/MKhiriev/frontend-console/models"
	"github.com/go-resty/resty/v2"
)

// uploadFieldName is the multipart field shared by every uploaded file.
const uploadFieldName = "files"

const (
	opList   = "list"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
	opUpload = "upload"
)

type httpFrontendAdapter struct {
	client  *resty.Client
	metrics *metrics.Recorder

	logger *logger.Logger
}

// NewHTTPFrontendAdapter constructs the HTTP/REST implementation of
// [FrontendAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress. No client timeout is configured: the transport
// default applies and callers cancel through ctx. recorder may be nil.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPFrontendAdapter(adapterCfg config.Adapter, recorder *metrics.Recorder, logger *logger.Logger) (FrontendAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	logger.Info().Str("base_url", baseURL).Msg("frontends adapter created")

	return &httpFrontendAdapter{client: client, metrics: recorder, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// recordPath builds /frontends/{name}[/suffix] with name escaped as a single
// path segment.
func recordPath(name, suffix string) string {
	return "/frontends/" + url.PathEscape(name) + suffix
}

// GetAll implements [FrontendAdapter].
func (h *httpFrontendAdapter) GetAll(ctx context.Context) (frontends []models.Frontend, err error) {
	defer h.observe(opList, time.Now(), &err)

	resp, err := h.client.R().
		SetContext(ctx).
		Get("/frontends")
	if err != nil {
		return nil, transportError(opList, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if err = decodeBody(resp, &frontends); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	if frontends == nil {
		frontends = []models.Frontend{}
	}

	return frontends, nil
}

// Add implements [FrontendAdapter].
func (h *httpFrontendAdapter) Add(ctx context.Context, frontend models.Frontend) (created models.Frontend, err error) {
	defer h.observe(opCreate, time.Now(), &err)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(frontend).
		Post("/frontends")
	if err != nil {
		return models.Frontend{}, transportError(opCreate, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Frontend{}, err
	}

	if err = decodeBody(resp, &created); err != nil {
		return models.Frontend{}, fmt.Errorf("decode create response: %w", err)
	}

	return created, nil
}

// Update implements [FrontendAdapter].
func (h *httpFrontendAdapter) Update(ctx context.Context, name string, update models.FrontendUpdate) (updated models.Frontend, err error) {
	defer h.observe(opUpdate, time.Now(), &err)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put(recordPath(name, ""))
	if err != nil {
		return models.Frontend{}, transportError(opUpdate, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Frontend{}, err
	}

	if err = decodeBody(resp, &updated); err != nil {
		return models.Frontend{}, fmt.Errorf("decode update response: %w", err)
	}

	return updated, nil
}

// Delete implements [FrontendAdapter].
func (h *httpFrontendAdapter) Delete(ctx context.Context, name string) (err error) {
	defer h.observe(opDelete, time.Now(), &err)

	resp, err := h.client.R().
		SetContext(ctx).
		Delete(recordPath(name, ""))
	if err != nil {
		return transportError(opDelete, err)
	}

	return mapHTTPError(resp)
}

// UploadFiles implements [FrontendAdapter].
func (h *httpFrontendAdapter) UploadFiles(ctx context.Context, name string, files []models.File) (result models.UploadResult, err error) {
	defer h.observe(opUpload, time.Now(), &err)

	req := h.client.R().SetContext(ctx)
	for _, file := range files {
		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		req.SetMultipartField(uploadFieldName, file.Name, contentType, bytes.NewReader(file.Data))
	}

	resp, err := req.Post(recordPath(name, "/upload"))
	if err != nil {
		return models.UploadResult{}, transportError(opUpload, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResult{}, err
	}

	if err = decodeBody(resp, &result); err != nil {
		return models.UploadResult{}, fmt.Errorf("decode upload response: %w", err)
	}

	return result, nil
}

// decodeBody unmarshals a JSON body. An empty body leaves v untouched.
func decodeBody(resp *resty.Response, v any) error {
	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

func (h *httpFrontendAdapter) observe(op string, start time.Time, errp *error) {
	err := *errp
	h.metrics.ObserveRequest(op, time.Since(start), err)

	if err != nil {
		h.logger.Debug().Err(err).Str("operation", op).Msg("frontends request failed")
	}
}
