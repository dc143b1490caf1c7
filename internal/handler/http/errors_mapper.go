package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/frontend-console/internal/console"
)

// errorStatusMap lists the errors answered with an error page. Any other
// error comes from the service and is already shown on the console page by
// the banner or the uploader, so the request just redirects back.
var errorStatusMap = map[error]int{
	console.ErrFrontendNotFound: http.StatusNotFound,
	console.ErrRequiredField:    http.StatusBadRequest,
	console.ErrNameLocked:       http.StatusBadRequest,
	console.ErrSubmitInProgress: http.StatusConflict,
	console.ErrUploadInProgress: http.StatusConflict,

	ErrNoOpenForm:      http.StatusConflict,
	ErrNoOpenUploader:  http.StatusConflict,
	ErrUploadTooLarge:  http.StatusRequestEntityTooLarge,
	ErrMalformedRequest: http.StatusBadRequest,
}

func statusFromError(err error) (int, bool) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, true
		}
	}
	return 0, false
}
