package console

import (
	"sync"

	"github.com/MKhiriev/frontend-console/models"
)

// CardAction is what the owner of a card has to do after a card control was
// used. The card itself does not know what the actions mean.
type CardAction int

const (
	CardActionNone CardAction = iota
	CardActionEdit
	CardActionUpload
	CardActionDelete
)

// CardView is the display form of a record.
type CardView struct {
	Name string
	Path string
	// ActiveHint is LabelActive for active records and "" otherwise.
	ActiveHint string
	// CreatedAt is the formatted creation date or "".
	CreatedAt  string
	Confirming bool
}

// Card renders one record and guards its deletion with a confirmation step.
type Card struct {
	frontend models.Frontend

	mu         sync.Mutex
	confirming bool
}

func NewCard(frontend models.Frontend) *Card {
	return &Card{frontend: frontend}
}

func (c *Card) Frontend() models.Frontend {
	return c.frontend
}

func (c *Card) Edit() CardAction {
	return CardActionEdit
}

func (c *Card) Upload() CardAction {
	return CardActionUpload
}

// Delete opens the confirmation panel. It never asks for a deletion.
func (c *Card) Delete() CardAction {
	c.mu.Lock()
	c.confirming = true
	c.mu.Unlock()
	return CardActionNone
}

// CancelDelete closes the confirmation panel.
func (c *Card) CancelDelete() {
	c.mu.Lock()
	c.confirming = false
	c.mu.Unlock()
}

// ConfirmDelete closes the confirmation panel and returns CardActionDelete
// if the panel was open.
func (c *Card) ConfirmDelete() CardAction {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.confirming {
		return CardActionNone
	}
	c.confirming = false
	return CardActionDelete
}

func (c *Card) Confirming() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirming
}

func (c *Card) View() CardView {
	v := CardView{
		Name:       c.frontend.Name,
		Path:       c.frontend.Path,
		Confirming: c.Confirming(),
	}
	if c.frontend.IsActive {
		v.ActiveHint = LabelActive
	}
	if c.frontend.CreatedAt != nil {
		v.CreatedAt = c.frontend.CreatedAt.Local().Format(createdDateLayout)
	}
	return v
}
