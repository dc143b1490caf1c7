package console

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/frontend-console/internal/logger"
	"github.com/MKhiriev/frontend-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateForm_Defaults(t *testing.T) {
	f := NewCreateForm(nil, nil, logger.Nop())

	assert.Equal(t, FormCreate, f.Mode())
	assert.False(t, f.NameLocked())
	assert.Equal(t, models.Frontend{}, f.Value())
	assert.Equal(t, LabelCreate, f.SubmitLabel())
	assert.Equal(t, LabelInactive, f.ActiveLabel())
}

func TestNewEditForm_PrefilledAndLocked(t *testing.T) {
	initial := models.Frontend{Name: "a", Path: "/a", IsActive: true}
	f := NewEditForm(initial, nil, nil, logger.Nop())

	assert.Equal(t, FormEdit, f.Mode())
	assert.True(t, f.NameLocked())
	assert.Equal(t, initial, f.Value())
	assert.Equal(t, LabelUpdate, f.SubmitLabel())
	assert.Equal(t, LabelActive, f.ActiveLabel())

	err := f.SetName("b")
	require.ErrorIs(t, err, ErrNameLocked)
	assert.Equal(t, "a", f.Value().Name)
}

func TestForm_Setters(t *testing.T) {
	f := NewCreateForm(nil, nil, logger.Nop())

	require.NoError(t, f.SetName("b"))
	f.SetPath("/b")
	f.SetActive(true)
	f.ToggleActive()

	assert.Equal(t, models.Frontend{Name: "b", Path: "/b", IsActive: false}, f.Value())
}

func TestForm_Submit_PassesValue(t *testing.T) {
	var got []models.Frontend
	f := NewCreateForm(func(_ context.Context, fe models.Frontend) error {
		got = append(got, fe)
		return nil
	}, nil, logger.Nop())

	require.NoError(t, f.SetName("b"))
	f.SetPath("/b")

	require.NoError(t, f.Submit(context.Background()))
	require.Len(t, got, 1)
	assert.Equal(t, models.Frontend{Name: "b", Path: "/b"}, got[0])
	assert.False(t, f.Submitting())
}

func TestForm_Submit_RequiredFields(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "", path: "/b"},
		{name: "b", path: ""},
		{name: "", path: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name+"|"+tt.path, func(t *testing.T) {
			called := false
			f := NewCreateForm(func(context.Context, models.Frontend) error {
				called = true
				return nil
			}, nil, logger.Nop())
			require.NoError(t, f.SetName(tt.name))
			f.SetPath(tt.path)

			err := f.Submit(context.Background())
			require.ErrorIs(t, err, ErrRequiredField)
			assert.False(t, called)
		})
	}
}

func TestForm_Submit_FailureClearsFlag(t *testing.T) {
	boom := errors.New("boom")
	f := NewEditForm(models.Frontend{Name: "a", Path: "/a"}, func(context.Context, models.Frontend) error {
		return boom
	}, nil, logger.Nop())

	err := f.Submit(context.Background())
	require.ErrorIs(t, err, boom)
	assert.False(t, f.Submitting())
	assert.Equal(t, models.Frontend{Name: "a", Path: "/a"}, f.Value())
}

func TestForm_Submit_InProgress(t *testing.T) {
	var f *Form
	var inner error
	f = NewCreateForm(func(ctx context.Context, _ models.Frontend) error {
		assert.True(t, f.Submitting())
		assert.Equal(t, LabelSubmitting, f.SubmitLabel())
		inner = f.Submit(ctx)
		return nil
	}, nil, logger.Nop())
	require.NoError(t, f.SetName("b"))
	f.SetPath("/b")

	require.NoError(t, f.Submit(context.Background()))
	assert.ErrorIs(t, inner, ErrSubmitInProgress)
}

func TestForm_Cancel(t *testing.T) {
	cancelled := 0
	f := NewCreateForm(nil, func() { cancelled++ }, logger.Nop())
	require.NoError(t, f.SetName("x"))

	f.Cancel()

	assert.Equal(t, 1, cancelled)
	assert.Equal(t, "x", f.Value().Name)

	// nil callback is a no-op
	NewCreateForm(nil, nil, logger.Nop()).Cancel()
}
