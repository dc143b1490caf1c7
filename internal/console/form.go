// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import (
	"context"
	"sync"

	"github.com/MKhiriev/frontend-console/internal/logger"
	"github.com/MKhiriev/frontend-console/models"
)

// SubmitFunc persists the value of a form. It is supplied by the owner of
// the form; the form itself never talks to the service.
type SubmitFunc func(ctx context.Context, frontend models.Frontend) error

// FormMode tells whether a form creates a new record or edits one.
type FormMode int

const (
	FormCreate FormMode = iota
	FormEdit
)

// Form is the controlled input form producing a [models.Frontend].
//
// States: editing, submitting. Submit always returns the form to editing,
// whatever the outcome; closing the form is up to the owner.
type Form struct {
	mode   FormMode
	submit SubmitFunc
	cancel func()
	logger *logger.Logger

	mu         sync.Mutex
	value      models.Frontend
	submitting bool
}

// NewCreateForm returns an empty form in create mode: all fields editable,
// name and path empty, inactive.
func NewCreateForm(submit SubmitFunc, cancel func(), logger *logger.Logger) *Form {
	return &Form{
		mode:   FormCreate,
		submit: submit,
		cancel: cancel,
		logger: logger,
	}
}

// NewEditForm returns a form pre-populated from initial with the name locked.
func NewEditForm(initial models.Frontend, submit SubmitFunc, cancel func(), logger *logger.Logger) *Form {
	return &Form{
		mode:   FormEdit,
		submit: submit,
		cancel: cancel,
		logger: logger,
		value:  initial,
	}
}

func (f *Form) Mode() FormMode {
	return f.mode
}

// NameLocked reports whether the name field is read-only.
func (f *Form) NameLocked() bool {
	return f.mode == FormEdit
}

// Value returns the current form value.
func (f *Form) Value() models.Frontend {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// SetName changes the name. It fails with [ErrNameLocked] in edit mode.
func (f *Form) SetName(name string) error {
	if f.NameLocked() {
		return ErrNameLocked
	}

	f.mu.Lock()
	f.value.Name = name
	f.mu.Unlock()
	return nil
}

func (f *Form) SetPath(path string) {
	f.mu.Lock()
	f.value.Path = path
	f.mu.Unlock()
}

func (f *Form) SetActive(active bool) {
	f.mu.Lock()
	f.value.IsActive = active
	f.mu.Unlock()
}

func (f *Form) ToggleActive() {
	f.mu.Lock()
	f.value.IsActive = !f.value.IsActive
	f.mu.Unlock()
}

// Submitting reports whether a submit is in flight; the submit control is
// disabled meanwhile.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// SubmitLabel is the caption of the submit control.
func (f *Form) SubmitLabel() string {
	if f.Submitting() {
		return LabelSubmitting
	}
	if f.mode == FormEdit {
		return LabelUpdate
	}
	return LabelCreate
}

// ActiveLabel describes the current value of the active toggle.
func (f *Form) ActiveLabel() string {
	return activeLabel(f.Value().IsActive)
}

// Submit validates the form and hands its value to the submit handler.
// Name and path must be non-empty. A handler failure is logged and
// returned; the submitting flag is cleared in every case.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	if f.value.Name == "" || f.value.Path == "" {
		f.mu.Unlock()
		return ErrRequiredField
	}
	f.submitting = true
	value := f.value
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	if err := f.submit(ctx, value); err != nil {
		f.logger.Error().Err(err).Str("name", value.Name).Msg("error submitting frontend form")
		return err
	}

	return nil
}

// Cancel invokes the cancel callback. The form state is left as is.
func (f *Form) Cancel() {
	if f.cancel != nil {
		f.cancel()
	}
}

func activeLabel(active bool) string {
	if active {
		return LabelActive
	}
	return LabelInactive
}
