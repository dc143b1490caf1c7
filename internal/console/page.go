// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/frontend-console/internal/adapter"
	"github.com/MKhiriev/frontend-console/internal/logger"
	"github.com/MKhiriev/frontend-console/models"
)

// Snapshot is a consistent copy of the page state for renderers.
type Snapshot struct {
	Frontends []models.Frontend
	Cards     []CardView
	Loading   bool
	// Error is the banner message, or "".
	Error         string
	Overlay       OverlayKind
	OverlayTarget string
}

// Page owns the record list, the banner error and the overlay.
//
// After every successful mutation the whole list is fetched again and
// replaced wholesale; the page never patches its list locally. The lock is
// never held across a remote call.
type Page struct {
	adapter adapter.FrontendAdapter
	logger  *logger.Logger

	mu        sync.RWMutex
	frontends []models.Frontend
	cards     map[string]*Card
	loading   bool
	loaded    bool
	errMsg    string
	overlay   Overlay
}

// NewPage returns a page in the loading state with an empty list. Call
// [Page.Load] to fetch the records.
func NewPage(adapter adapter.FrontendAdapter, logger *logger.Logger) *Page {
	return &Page{
		adapter: adapter,
		logger:  logger,
		cards:   make(map[string]*Card),
		loading: true,
	}
}

// Load fetches the list and replaces the current one. On failure the banner
// shows [MsgLoadFailed] and the previous list is kept.
func (p *Page) Load(ctx context.Context) error {
	p.mu.Lock()
	p.loading = true
	p.errMsg = ""
	p.mu.Unlock()

	frontends, err := p.adapter.GetAll(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.loading = false
	p.loaded = true
	if err != nil {
		p.errMsg = MsgLoadFailed
		p.logger.Error().Err(err).Msg("error loading frontends")
		return fmt.Errorf("load frontends: %w", err)
	}

	p.frontends = append([]models.Frontend(nil), frontends...)
	cards := make(map[string]*Card, len(frontends))
	for _, f := range frontends {
		cards[f.Name] = NewCard(f)
	}
	p.cards = cards
	p.logger.Debug().Int("count", len(frontends)).Msg("frontends loaded")

	return nil
}

// Loaded reports whether at least one load attempt has finished.
func (p *Page) Loaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loaded
}

// Frontends returns a copy of the current list in service order.
func (p *Page) Frontends() []models.Frontend {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]models.Frontend(nil), p.frontends...)
}

// Card returns the card of the named record.
func (p *Page) Card(name string) (*Card, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c, ok := p.cards[name]
	return c, ok
}

// Overlay returns the open overlay; its kind is OverlayNone if there is none.
func (p *Page) Overlay() Overlay {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.overlay
}

// Snapshot copies the page state.
func (p *Page) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	s := Snapshot{
		Frontends:     append([]models.Frontend(nil), p.frontends...),
		Cards:         make([]CardView, 0, len(p.frontends)),
		Loading:       p.loading,
		Error:         p.errMsg,
		Overlay:       p.overlay.Kind(),
		OverlayTarget: p.overlay.Target(),
	}
	for _, f := range p.frontends {
		if c, ok := p.cards[f.Name]; ok {
			s.Cards = append(s.Cards, c.View())
		}
	}
	return s
}

// OpenAdd opens an empty create form, replacing any open overlay.
func (p *Page) OpenAdd() *Form {
	var form *Form
	form = NewCreateForm(
		func(ctx context.Context, f models.Frontend) error {
			return p.createFrontend(ctx, form, f)
		},
		func() { p.closeIf(form, nil) },
		p.logger,
	)

	p.mu.Lock()
	p.overlay = addingOverlay(form)
	p.mu.Unlock()
	return form
}

// OpenEdit opens an edit form pre-filled with the named record.
func (p *Page) OpenEdit(name string) (*Form, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, ok := p.cards[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFrontendNotFound, name)
	}

	var form *Form
	form = NewEditForm(
		c.Frontend(),
		func(ctx context.Context, f models.Frontend) error {
			return p.updateFrontend(ctx, form, name, f)
		},
		func() { p.closeIf(form, nil) },
		p.logger,
	)
	p.overlay = editingOverlay(name, form)
	return form, nil
}

// OpenUpload opens the uploader for the named record.
func (p *Page) OpenUpload(name string) (*Uploader, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.cards[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrFrontendNotFound, name)
	}

	var uploader *Uploader
	uploader = NewUploader(name, p.adapter, func(ctx context.Context) {
		p.uploadSucceeded(ctx, uploader)
	}, p.logger)
	p.overlay = uploadingOverlay(uploader)
	return uploader, nil
}

// CloseOverlay closes whatever overlay is open.
func (p *Page) CloseOverlay() {
	p.mu.Lock()
	p.overlay = Overlay{}
	p.mu.Unlock()
}

// Delete removes the named record and reloads the list. On failure the
// banner shows [MsgDeleteFailed] and the list is left untouched.
func (p *Page) Delete(ctx context.Context, name string) error {
	if err := p.adapter.Delete(ctx, name); err != nil {
		p.setError(MsgDeleteFailed)
		p.logger.Error().Err(err).Str("name", name).Msg("error deleting frontend")
		return fmt.Errorf("delete frontend %q: %w", name, err)
	}

	p.logger.Info().Str("name", name).Msg("frontend deleted")
	return p.Load(ctx)
}

func (p *Page) createFrontend(ctx context.Context, form *Form, f models.Frontend) error {
	if _, err := p.adapter.Add(ctx, f); err != nil {
		p.setError(MsgAddFailed)
		return fmt.Errorf("add frontend %q: %w", f.Name, err)
	}

	p.logger.Info().Str("name", f.Name).Msg("frontend created")
	err := p.Load(ctx)
	p.closeIf(form, nil)
	return err
}

func (p *Page) updateFrontend(ctx context.Context, form *Form, name string, f models.Frontend) error {
	if _, err := p.adapter.Update(ctx, name, models.UpdateFrom(f)); err != nil {
		p.setError(MsgUpdateFailed)
		return fmt.Errorf("update frontend %q: %w", name, err)
	}

	p.logger.Info().Str("name", name).Msg("frontend updated")
	err := p.Load(ctx)
	p.closeIf(form, nil)
	return err
}

func (p *Page) uploadSucceeded(ctx context.Context, uploader *Uploader) {
	p.closeIf(nil, uploader)
	// the upload already succeeded; a failed reload only shows the banner
	_ = p.Load(ctx)
}

// closeIf closes the overlay only if it still shows form or uploader, so a
// late callback never closes a panel opened afterwards.
func (p *Page) closeIf(form *Form, uploader *Uploader) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if (form != nil && p.overlay.form == form) || (uploader != nil && p.overlay.uploader == uploader) {
		p.overlay = Overlay{}
	}
}

func (p *Page) setError(msg string) {
	p.mu.Lock()
	p.errMsg = msg
	p.mu.Unlock()
}
