package console

import "errors"

var (
	// ErrRequiredField is returned when a form is submitted without a name
	// or a path. No remote call is made.
	ErrRequiredField = errors.New("name and path are required")

	// ErrNameLocked is returned when the name of an edited record is changed.
	ErrNameLocked = errors.New("name can not be changed once created")

	// ErrSubmitInProgress is returned when a form is submitted again before
	// the previous submit finished.
	ErrSubmitInProgress = errors.New("submit already in progress")

	// ErrNoFilesSelected is returned when an upload is started without files.
	ErrNoFilesSelected = errors.New("no files selected")

	// ErrUploadInProgress is returned when an upload is started while another
	// one is still running.
	ErrUploadInProgress = errors.New("upload already in progress")

	// ErrFrontendNotFound is returned when an overlay is opened for a name
	// that is not in the current list.
	ErrFrontendNotFound = errors.New("frontend not found")
)
