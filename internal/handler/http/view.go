package http

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/frontend-console/internal/console"
	"github.com/MKhiriev/frontend-console/internal/logger"
)

// texts exposes the console labels to the templates.
type texts struct {
	Title, Loading, Empty, ConfirmDelete                      string
	Name, Path, Activation, Created                           string
	AddFrontend, Cancel, Confirm, Edit, Delete, Upload, Close string
}

var consoleTexts = texts{
	Title:         console.TitlePage,
	Loading:       console.MsgLoading,
	Empty:         console.MsgEmpty,
	ConfirmDelete: console.MsgConfirmDelete,
	Name:          console.LabelName,
	Path:          console.LabelPath,
	Activation:    console.LabelActivation,
	Created:       console.LabelCreated,
	AddFrontend:   console.LabelAddFrontend,
	Cancel:        console.LabelCancel,
	Confirm:       console.LabelConfirm,
	Edit:          console.LabelEdit,
	Delete:        console.LabelDelete,
	Upload:        console.LabelUpload,
	Close:         console.LabelCancel,
}

type cardView struct {
	console.CardView
	Action string
}

type formView struct {
	Title       string
	Name        string
	Path        string
	IsActive    bool
	NameLocked  bool
	Submitting  bool
	SubmitLabel string
	ActiveLabel string
}

type uploadView struct {
	Title       string
	Count       string
	Files       []console.SelectedFile
	Error       string
	CanUpload   bool
	ButtonLabel string
	// InputID changes whenever the file input has to be cleared.
	InputID string
}

type pageView struct {
	T       texts
	Loading bool
	Error   string
	Cards   []cardView
	Form    *formView
	Upload  *uploadView
}

func (h *Handler) buildView() pageView {
	s := h.page.Snapshot()

	v := pageView{
		T:       consoleTexts,
		Loading: s.Loading,
		Error:   s.Error,
		Cards:   make([]cardView, 0, len(s.Cards)),
	}
	for _, c := range s.Cards {
		v.Cards = append(v.Cards, cardView{CardView: c, Action: "/frontends/" + url.PathEscape(c.Name)})
	}

	overlay := h.page.Overlay()
	if form := overlay.Form(); form != nil {
		value := form.Value()
		title := console.TitleAdd
		if form.Mode() == console.FormEdit {
			title = console.TitleEdit
		}
		v.Form = &formView{
			Title:       title,
			Name:        value.Name,
			Path:        value.Path,
			IsActive:    value.IsActive,
			NameLocked:  form.NameLocked(),
			Submitting:  form.Submitting(),
			SubmitLabel: form.SubmitLabel(),
			ActiveLabel: form.ActiveLabel(),
		}
	}
	if u := overlay.Uploader(); u != nil {
		files := u.Selected()
		v.Upload = &uploadView{
			Title:       u.Title(),
			Count:       fmt.Sprintf(console.LabelSelected, len(files)),
			Files:       files,
			Error:       u.Error(),
			CanUpload:   !u.Uploading(),
			ButtonLabel: u.ButtonLabel(),
			InputID:     fmt.Sprintf("files-%d", u.InputGeneration()),
		}
	}

	return v
}

// render writes the console page with status.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "console.html", h.buildView()); err != nil {
		logger.FromRequest(r).Err(err).Msg("error rendering console page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// done finishes an action: known errors render the page with their status,
// everything else redirects back to the console.
func (h *Handler) done(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		if status, ok := statusFromError(err); ok {
			logger.FromRequest(r).Warn().Err(err).Int("status", status).Msg("console action rejected")
			h.render(w, r, status)
			return
		}
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
