package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/frontend-console/models"
)

const filesField = "files"

// upload reads the posted files, makes them the uploader selection and
// uploads them. A post without files keeps the current selection, so the
// uploader reports the missing selection itself.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	uploader := h.page.Overlay().Uploader()
	if uploader == nil {
		h.done(w, r, ErrNoOpenUploader)
		return
	}

	files, err := h.readFiles(w, r)
	if err != nil {
		h.done(w, r, err)
		return
	}

	uploader.Select(files)
	h.done(w, r, uploader.Upload(r.Context()))
}

func (h *Handler) readFiles(w http.ResponseWriter, r *http.Request) ([]models.File, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: limit %d bytes", ErrUploadTooLarge, tooLarge.Limit)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[filesField]
	files := make([]models.File, 0, len(headers))
	for _, fh := range headers {
		f, err := readFile(fh)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func readFile(fh *multipart.FileHeader) (models.File, error) {
	src, err := fh.Open()
	if err != nil {
		return models.File{}, fmt.Errorf("%w: open %q: %w", ErrMalformedRequest, fh.Filename, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return models.File{}, fmt.Errorf("%w: read %q: %w", ErrMalformedRequest, fh.Filename, err)
	}

	return models.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
