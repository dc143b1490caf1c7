package console

// OverlayKind tells which panel is shown above the list.
type OverlayKind int

const (
	OverlayNone OverlayKind = iota
	OverlayAdding
	OverlayEditing
	OverlayUploading
)

func (k OverlayKind) String() string {
	switch k {
	case OverlayAdding:
		return "adding"
	case OverlayEditing:
		return "editing"
	case OverlayUploading:
		return "uploading"
	default:
		return "none"
	}
}

// Overlay is the single transient panel of a page. Its payload matches its
// kind: a form while adding or editing, an uploader while uploading. Values
// are only built inside this package, so two panels can never be open at
// once.
type Overlay struct {
	kind     OverlayKind
	target   string
	form     *Form
	uploader *Uploader
}

func addingOverlay(form *Form) Overlay {
	return Overlay{kind: OverlayAdding, form: form}
}

func editingOverlay(name string, form *Form) Overlay {
	return Overlay{kind: OverlayEditing, target: name, form: form}
}

func uploadingOverlay(uploader *Uploader) Overlay {
	return Overlay{kind: OverlayUploading, target: uploader.Name(), uploader: uploader}
}

func (o Overlay) Kind() OverlayKind {
	return o.kind
}

// Target is the record name of an edit or upload overlay, or "".
func (o Overlay) Target() string {
	return o.target
}

// Form is non-nil while adding or editing.
func (o Overlay) Form() *Form {
	return o.form
}

// Uploader is non-nil while uploading.
func (o Overlay) Uploader() *Uploader {
	return o.uploader
}
