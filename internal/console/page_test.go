package console

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/frontend-console/internal/logger"
	"github.com/MKhiriev/frontend-console/internal/mock"
	"github.com/MKhiriev/frontend-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errService = errors.New("service unavailable")

func newTestPage(t *testing.T, ctrl *gomock.Controller) (*Page, *mock.MockFrontendAdapter) {
	t.Helper()
	adapter := mock.NewMockFrontendAdapter(ctrl)
	return NewPage(adapter, logger.Nop()), adapter
}

// loadedPage returns a page that already shows list.
func loadedPage(t *testing.T, ctrl *gomock.Controller, list ...models.Frontend) (*Page, *mock.MockFrontendAdapter) {
	t.Helper()
	page, adapter := newTestPage(t, ctrl)
	adapter.EXPECT().GetAll(gomock.Any()).Return(list, nil)
	require.NoError(t, page.Load(context.Background()))
	return page, adapter
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestPage_InitialState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, _ := newTestPage(t, ctrl)
	s := page.Snapshot()

	assert.True(t, s.Loading)
	assert.False(t, page.Loaded())
	assert.Empty(t, s.Frontends)
	assert.Equal(t, OverlayNone, s.Overlay)
}

func TestPage_Load_ReplacesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, adapter := loadedPage(t, ctrl, models.Frontend{Name: "a", Path: "/a"}, models.Frontend{Name: "b", Path: "/b"})

	adapter.EXPECT().GetAll(gomock.Any()).Return([]models.Frontend{{Name: "c", Path: "/c", IsActive: true}}, nil)
	require.NoError(t, page.Load(context.Background()))

	s := page.Snapshot()
	assert.False(t, s.Loading)
	assert.True(t, page.Loaded())
	assert.Equal(t, []models.Frontend{{Name: "c", Path: "/c", IsActive: true}}, s.Frontends)
	assert.Equal(t, []CardView{{Name: "c", Path: "/c", ActiveHint: LabelActive}}, s.Cards)

	_, ok := page.Card("a")
	assert.False(t, ok)
}

func TestPage_Load_FailureKeepsList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list := []models.Frontend{{Name: "a", Path: "/a"}}
	page, adapter := loadedPage(t, ctrl, list...)

	adapter.EXPECT().GetAll(gomock.Any()).Return(nil, errService)
	err := page.Load(context.Background())
	require.ErrorIs(t, err, errService)

	s := page.Snapshot()
	assert.Equal(t, MsgLoadFailed, s.Error)
	assert.Equal(t, list, s.Frontends)
	assert.False(t, s.Loading)
}

func TestPage_Load_FirstFailureLeavesEmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, adapter := newTestPage(t, ctrl)
	adapter.EXPECT().GetAll(gomock.Any()).Return(nil, errService)

	require.Error(t, page.Load(context.Background()))
	assert.Empty(t, page.Frontends())
	assert.True(t, page.Loaded())
}

func TestPage_Load_ClearsBanner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, adapter := newTestPage(t, ctrl)
	gomock.InOrder(
		adapter.EXPECT().GetAll(gomock.Any()).Return(nil, errService),
		adapter.EXPECT().GetAll(gomock.Any()).Return(nil, nil),
	)

	_ = page.Load(context.Background())
	require.NoError(t, page.Load(context.Background()))
	assert.Empty(t, page.Snapshot().Error)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestPage_Create_CallsAddOnceThenListOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, adapter := loadedPage(t, ctrl)
	ctx := context.Background()
	want := models.Frontend{Name: "b", Path: "/b", IsActive: false}

	gomock.InOrder(
		adapter.EXPECT().Add(ctx, want).Return(want, nil).Times(1),
		adapter.EXPECT().GetAll(ctx).Return([]models.Frontend{want}, nil).Times(1),
	)

	form := page.OpenAdd()
	assert.Equal(t, OverlayAdding, page.Overlay().Kind())
	require.NoError(t, form.SetName("b"))
	form.SetPath("/b")

	require.NoError(t, form.Submit(ctx))
	assert.Equal(t, OverlayNone, page.Overlay().Kind())
	assert.Equal(t, []models.Frontend{want}, page.Frontends())
}

func TestPage_Create_FailureKeepsForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, adapter := loadedPage(t, ctrl)
	ctx := context.Background()

	adapter.EXPECT().Add(ctx, gomock.Any()).Return(models.Frontend{}, errService)

	form := page.OpenAdd()
	require.NoError(t, form.SetName("b"))
	form.SetPath("/b")

	require.ErrorIs(t, form.Submit(ctx), errService)
	assert.Equal(t, MsgAddFailed, page.Snapshot().Error)
	assert.Same(t, form, page.Overlay().Form())
	assert.Equal(t, "b", form.Value().Name)
}

func TestPage_Create_MissingFieldsNoCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, _ := loadedPage(t, ctrl)

	form := page.OpenAdd()
	form.SetPath("/b")

	require.ErrorIs(t, form.Submit(context.Background()), ErrRequiredField)
	assert.Equal(t, OverlayAdding, page.Overlay().Kind())
}

func TestPage_CancelForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, _ := loadedPage(t, ctrl)

	form := page.OpenAdd()
	form.Cancel()

	assert.Equal(t, OverlayNone, page.Overlay().Kind())
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestPage_Update_NeverSendsName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := models.Frontend{Name: "a", Path: "/a"}
	page, adapter := loadedPage(t, ctrl, a)
	ctx := context.Background()

	gomock.InOrder(
		adapter.EXPECT().Update(ctx, "a", gomock.Any()).DoAndReturn(
			func(_ context.Context, name string, upd models.FrontendUpdate) (models.Frontend, error) {
				require.NotNil(t, upd.Path)
				require.NotNil(t, upd.IsActive)
				assert.Equal(t, "/a2", *upd.Path)
				assert.True(t, *upd.IsActive)
				return models.Frontend{Name: name, Path: *upd.Path, IsActive: *upd.IsActive}, nil
			},
		),
		adapter.EXPECT().GetAll(ctx).Return([]models.Frontend{{Name: "a", Path: "/a2", IsActive: true}}, nil),
	)

	form, err := page.OpenEdit("a")
	require.NoError(t, err)
	assert.Equal(t, OverlayEditing, page.Overlay().Kind())
	assert.Equal(t, "a", page.Overlay().Target())
	assert.ErrorIs(t, form.SetName("z"), ErrNameLocked)

	form.SetPath("/a2")
	form.ToggleActive()

	require.NoError(t, form.Submit(ctx))
	assert.Equal(t, OverlayNone, page.Overlay().Kind())
}

func TestPage_Update_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, adapter := loadedPage(t, ctrl, models.Frontend{Name: "a", Path: "/a"})
	ctx := context.Background()

	adapter.EXPECT().Update(ctx, "a", gomock.Any()).Return(models.Frontend{}, errService)

	form, err := page.OpenEdit("a")
	require.NoError(t, err)

	require.ErrorIs(t, form.Submit(ctx), errService)
	assert.Equal(t, MsgUpdateFailed, page.Snapshot().Error)
	assert.Equal(t, OverlayEditing, page.Overlay().Kind())
}

func TestPage_OpenEdit_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, _ := loadedPage(t, ctrl)

	_, err := page.OpenEdit("missing")
	require.ErrorIs(t, err, ErrFrontendNotFound)
	_, err = page.OpenUpload("missing")
	require.ErrorIs(t, err, ErrFrontendNotFound)
	assert.Equal(t, OverlayNone, page.Overlay().Kind())
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestPage_Delete_ThroughCardConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, adapter := loadedPage(t, ctrl, models.Frontend{Name: "a", Path: "/a"})
	ctx := context.Background()

	card, ok := page.Card("a")
	require.True(t, ok)

	// a single click never deletes
	assert.Equal(t, CardActionNone, card.Delete())

	gomock.InOrder(
		adapter.EXPECT().Delete(ctx, "a").Return(nil),
		adapter.EXPECT().GetAll(ctx).Return(nil, nil),
	)

	require.Equal(t, CardActionDelete, card.ConfirmDelete())
	require.NoError(t, page.Delete(ctx, "a"))
	assert.Empty(t, page.Frontends())
}

func TestPage_Delete_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list := []models.Frontend{{Name: "a", Path: "/a"}}
	page, adapter := loadedPage(t, ctrl, list...)
	ctx := context.Background()

	adapter.EXPECT().Delete(ctx, "a").Return(errService)

	require.ErrorIs(t, page.Delete(ctx, "a"), errService)
	assert.Equal(t, MsgDeleteFailed, page.Snapshot().Error)
	assert.Equal(t, list, page.Frontends())
}

// ── Upload ───────────────────────────────────────────────────────────────────

func TestPage_Upload_SuccessClosesAndReloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, adapter := loadedPage(t, ctrl, models.Frontend{Name: "a", Path: "/a"})
	ctx := context.Background()

	gomock.InOrder(
		adapter.EXPECT().UploadFiles(ctx, "a", gomock.Len(2)).Return(models.UploadResult{Message: "ok"}, nil),
		adapter.EXPECT().GetAll(ctx).Return([]models.Frontend{{Name: "a", Path: "/a"}}, nil),
	)

	u, err := page.OpenUpload("a")
	require.NoError(t, err)
	assert.Equal(t, OverlayUploading, page.Overlay().Kind())
	assert.Equal(t, "a", page.Snapshot().OverlayTarget)

	u.Select(testFiles())
	require.NoError(t, u.Upload(ctx))
	assert.Equal(t, OverlayNone, page.Overlay().Kind())
}

func TestPage_Upload_FailureStaysInWidget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, adapter := loadedPage(t, ctrl, models.Frontend{Name: "a", Path: "/a"})
	ctx := context.Background()

	adapter.EXPECT().UploadFiles(ctx, "a", gomock.Any()).Return(models.UploadResult{}, errService)

	u, err := page.OpenUpload("a")
	require.NoError(t, err)
	u.Select(testFiles())

	require.Error(t, u.Upload(ctx))
	assert.Empty(t, page.Snapshot().Error, "upload failures are not escalated to the banner")
	assert.Equal(t, MsgUploadFailed, u.Error())
	assert.Same(t, u, page.Overlay().Uploader())
}

// ── Overlay ──────────────────────────────────────────────────────────────────

func TestPage_OverlayIsExclusive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, _ := loadedPage(t, ctrl, models.Frontend{Name: "a", Path: "/a"})

	add := page.OpenAdd()
	_, err := page.OpenUpload("a")
	require.NoError(t, err)

	o := page.Overlay()
	assert.Equal(t, OverlayUploading, o.Kind())
	assert.Nil(t, o.Form())
	assert.NotNil(t, o.Uploader())

	// the stale add form no longer controls the overlay
	add.Cancel()
	assert.Equal(t, OverlayUploading, page.Overlay().Kind())

	page.CloseOverlay()
	assert.Equal(t, OverlayNone, page.Overlay().Kind())
}

func TestOverlayKind_String(t *testing.T) {
	assert.Equal(t, "none", OverlayNone.String())
	assert.Equal(t, "adding", OverlayAdding.String())
	assert.Equal(t, "editing", OverlayEditing.String())
	assert.Equal(t, "uploading", OverlayUploading.String())
}
