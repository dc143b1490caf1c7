package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/frontend-console/internal/console"
	"github.com/go-chi/chi/v5"
)

// index renders the console. The list is fetched on the first visit only;
// every later fetch follows a mutation or an explicit refresh.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	if !h.page.Loaded() {
		_ = h.page.Load(r.Context())
	}
	h.render(w, r, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	_ = h.page.Load(r.Context())
	h.done(w, r, nil)
}

func (h *Handler) openAdd(w http.ResponseWriter, r *http.Request) {
	h.page.OpenAdd()
	h.done(w, r, nil)
}

func (h *Handler) openEdit(w http.ResponseWriter, r *http.Request) {
	_, err := h.page.OpenEdit(frontendName(r))
	h.done(w, r, err)
}

func (h *Handler) openUpload(w http.ResponseWriter, r *http.Request) {
	_, err := h.page.OpenUpload(frontendName(r))
	h.done(w, r, err)
}

func (h *Handler) closeOverlay(w http.ResponseWriter, r *http.Request) {
	h.page.CloseOverlay()
	h.done(w, r, nil)
}

func (h *Handler) askDelete(w http.ResponseWriter, r *http.Request) {
	card, err := h.card(r)
	if err == nil {
		card.Delete()
	}
	h.done(w, r, err)
}

func (h *Handler) cancelDelete(w http.ResponseWriter, r *http.Request) {
	card, err := h.card(r)
	if err == nil {
		card.CancelDelete()
	}
	h.done(w, r, err)
}

func (h *Handler) confirmDelete(w http.ResponseWriter, r *http.Request) {
	card, err := h.card(r)
	if err != nil {
		h.done(w, r, err)
		return
	}

	if card.ConfirmDelete() == console.CardActionDelete {
		err = h.page.Delete(r.Context(), card.Frontend().Name)
	}
	h.done(w, r, err)
}

// submitForm copies the posted fields into the open form and submits it.
// An unchecked checkbox is absent from the post, so it reads as inactive.
func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request) {
	form := h.page.Overlay().Form()
	if form == nil {
		h.done(w, r, ErrNoOpenForm)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.done(w, r, ErrMalformedRequest)
		return
	}

	if !form.NameLocked() {
		_ = form.SetName(r.PostForm.Get("name"))
	}
	form.SetPath(r.PostForm.Get("path"))
	form.SetActive(r.PostForm.Get("isActive") != "")

	h.done(w, r, form.Submit(r.Context()))
}

func (h *Handler) cancelForm(w http.ResponseWriter, r *http.Request) {
	if form := h.page.Overlay().Form(); form != nil {
		form.Cancel()
	}
	h.done(w, r, nil)
}

func (h *Handler) card(r *http.Request) (*console.Card, error) {
	name := frontendName(r)
	card, ok := h.page.Card(name)
	if !ok {
		return nil, console.ErrFrontendNotFound
	}
	return card, nil
}

// frontendName reads the {name} route parameter. chi routes on
// r.URL.RawPath when it is set, so only then is the segment still escaped.
func frontendName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return raw
	}
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
