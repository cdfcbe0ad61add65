package equipment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/rahulmenon/labtrack-backend/pkg/errors"
	"github.com/rahulmenon/labtrack-backend/pkg/qr"
)

type stubQR struct{}

func (stubQR) ImageURL(target string) string { return "https://qr.test/?data=" + target }

func newTestService(t *testing.T) Service {
	t.Helper()

	db := setupEquipmentTestDB(t)
	svc, err := NewService(ServiceParams{
		Repo:        NewRepo(db),
		QR:          stubQR{},
		FrontendURL: "https://labtrack.test",
	})
	require.NoError(t, err)
	return svc
}

func TestNewServiceValidatesParams(t *testing.T) {
	_, err := NewService(ServiceParams{QR: stubQR{}, FrontendURL: "https://labtrack.test"})
	require.Error(t, err)

	db := setupEquipmentTestDB(t)
	_, err = NewService(ServiceParams{Repo: NewRepo(db), FrontendURL: "https://labtrack.test"})
	require.Error(t, err)

	_, err = NewService(ServiceParams{Repo: NewRepo(db), QR: stubQR{}})
	require.Error(t, err)
}

func TestServiceCreateStampsQRURL(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(context.Background(), CreateInput{
		EquipmentID: "LAB-100",
		Name:        "Microscope",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://qr.test/?data=https://labtrack.test/equipment/LAB-100", created.QRURL)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestServiceCreateParsesDates(t *testing.T) {
	svc := newTestService(t)

	purchase := "2024-03-15"
	created, err := svc.Create(context.Background(), CreateInput{
		EquipmentID:  "LAB-101",
		Name:         "Laser cutter",
		PurchaseDate: &purchase,
	})
	require.NoError(t, err)
	require.NotNil(t, created.PurchaseDate)
	assert.Equal(t, purchase, *created.PurchaseDate)

	bad := "15/03/2024"
	_, err = svc.Create(context.Background(), CreateInput{
		EquipmentID:  "LAB-102",
		Name:         "Laser cutter",
		PurchaseDate: &bad,
	})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestServiceCreateDuplicateBusinessKey(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{EquipmentID: "LAB-110", Name: "Balance"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateInput{EquipmentID: "LAB-110", Name: "Another balance"})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeConflict, appErr.Code())
}

func TestServiceGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{EquipmentID: "LAB-120", Name: "Spectrophotometer"})
	require.NoError(t, err)

	found, err := svc.Get(ctx, "LAB-120")
	require.NoError(t, err)
	assert.Equal(t, "Spectrophotometer", found.Name)

	_, err = svc.Get(ctx, "LAB-404")
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())

	_, err = svc.Get(ctx, "")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestServiceUpdatePatchesOnlyPresentFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	location := "Physics lab"
	_, err := svc.Create(ctx, CreateInput{
		EquipmentID: "LAB-130",
		Name:        "Signal generator",
		Location:    &location,
	})
	require.NoError(t, err)

	newName := "Function generator"
	updated, err := svc.Update(ctx, "LAB-130", UpdateInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	require.NotNil(t, updated.Location)
	assert.Equal(t, location, *updated.Location)
	// the stamped QR link survives patches untouched
	assert.Equal(t, "https://qr.test/?data=https://labtrack.test/equipment/LAB-130", updated.QRURL)
}

func TestServiceUpdateMissingAsset(t *testing.T) {
	svc := newTestService(t)

	name := "ghost"
	_, err := svc.Update(context.Background(), "LAB-404", UpdateInput{Name: &name})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeConflict, appErr.Code())
}

func TestServiceDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{EquipmentID: "LAB-140", Name: "Hot plate"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "LAB-140"))

	_, err = svc.Get(ctx, "LAB-140")
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())

	err = svc.Delete(ctx, "")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestEquipmentTarget(t *testing.T) {
	assert.Equal(t,
		"https://labtrack.test/equipment/LAB-1",
		qr.EquipmentTarget("https://labtrack.test", "LAB-1"))
}
