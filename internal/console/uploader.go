package console

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/frontend-console/internal/adapter"
	"github.com/MKhiriev/frontend-console/internal/logger"
	"github.com/MKhiriev/frontend-console/models"
)

// SelectedFile is the display form of one selected file.
type SelectedFile struct {
	Name string
	Size string
}

// Uploader selects files locally and uploads them all at once for one
// record.
//
// States: idle, files selected, uploading. A failed upload keeps the
// selection and shows a generic error; a successful one clears it and calls
// the success callback.
type Uploader struct {
	name      string
	adapter   adapter.FrontendAdapter
	onSuccess func(ctx context.Context)
	logger    *logger.Logger

	mu        sync.Mutex
	files     []models.File
	uploading bool
	errMsg    string
	inputGen  int
}

// NewUploader returns an idle uploader bound to the record called name.
func NewUploader(name string, adapter adapter.FrontendAdapter, onSuccess func(ctx context.Context), logger *logger.Logger) *Uploader {
	return &Uploader{
		name:      name,
		adapter:   adapter,
		onSuccess: onSuccess,
		logger:    logger,
	}
}

// Name is the record the files are uploaded for.
func (u *Uploader) Name() string {
	return u.name
}

// Title is the heading of the upload panel.
func (u *Uploader) Title() string {
	return fmt.Sprintf(TitleUpload, u.name)
}

// Select replaces the current selection with files and clears the error.
// An empty selection is ignored, like a file dialog that was dismissed.
func (u *Uploader) Select(files []models.File) {
	if len(files) == 0 {
		return
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.files = append([]models.File(nil), files...)
	u.errMsg = ""
}

// Files returns a copy of the selected files.
func (u *Uploader) Files() []models.File {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]models.File(nil), u.files...)
}

// Selected describes the selected files for display.
func (u *Uploader) Selected() []SelectedFile {
	files := u.Files()
	out := make([]SelectedFile, 0, len(files))
	for _, f := range files {
		out = append(out, SelectedFile{Name: f.Name, Size: f.SizeKB()})
	}
	return out
}

func (u *Uploader) Uploading() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.uploading
}

// Error is the message to show under the file input, or "".
func (u *Uploader) Error() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.errMsg
}

// CanUpload reports whether the upload control is enabled.
func (u *Uploader) CanUpload() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return !u.uploading && len(u.files) > 0
}

// InputGeneration changes every time the file input must be cleared.
// Renderers reset their input control when it differs from the last value
// they saw.
func (u *Uploader) InputGeneration() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.inputGen
}

// ButtonLabel is the caption of the upload control.
func (u *Uploader) ButtonLabel() string {
	if u.Uploading() {
		return LabelUploading
	}
	return LabelUpload
}

// Upload sends every selected file in one request. Without files it only
// sets the validation message and returns [ErrNoFilesSelected].
func (u *Uploader) Upload(ctx context.Context) error {
	u.mu.Lock()
	if u.uploading {
		u.mu.Unlock()
		return ErrUploadInProgress
	}
	if len(u.files) == 0 {
		u.errMsg = MsgSelectAtLeastOneFile
		u.mu.Unlock()
		return ErrNoFilesSelected
	}
	u.uploading = true
	u.errMsg = ""
	files := append([]models.File(nil), u.files...)
	u.mu.Unlock()

	result, err := u.adapter.UploadFiles(ctx, u.name, files)

	u.mu.Lock()
	u.uploading = false
	if err != nil {
		u.errMsg = MsgUploadFailed
		u.mu.Unlock()
		u.logger.Error().Err(err).Str("name", u.name).Int("files", len(files)).Msg("error uploading files")
		return fmt.Errorf("upload files for %q: %w", u.name, err)
	}
	u.files = nil
	u.inputGen++
	u.mu.Unlock()

	u.logger.Info().Str("name", u.name).Int("files", len(files)).Str("message", result.Message).Msg("files uploaded")

	if u.onSuccess != nil {
		u.onSuccess(ctx)
	}
	return nil
}
