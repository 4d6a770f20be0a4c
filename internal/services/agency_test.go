package services

import (
	"os"
	"path/filepath"
	"testing"

	"marseille-immobilier/internal/apperr"
	"marseille-immobilier/internal/auth"
	"marseille-immobilier/internal/models"
	"marseille-immobilier/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgencyCreate_AssignsIncreasingSortOrder(t *testing.T) {
	svc := NewAgencyService(setupTestDB(t), setupFileStore(t))

	var lastOrder int
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		agency, err := svc.Create(adminIdentity(), validAgencyInput(name), nil, nil)
		require.NoError(t, err)
		assert.Greater(t, agency.SortOrder, lastOrder)
		lastOrder = agency.SortOrder
	}
}

func TestAgencyCreate_SortOrderNeverCollides(t *testing.T) {
	svc := NewAgencyService(setupTestDB(t), setupFileStore(t))

	// alternating "clients" racing on create; the transaction around
	// max(sort_order)+insert must keep orders distinct
	seen := map[int]bool{}
	for i := 0; i < 10; i++ {
		agency, err := svc.Create(adminIdentity(), validAgencyInput("Agency"), nil, nil)
		require.NoError(t, err)
		assert.False(t, seen[agency.SortOrder], "duplicate sort_order %d", agency.SortOrder)
		seen[agency.SortOrder] = true
	}
}

func TestAgencyCreate_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAgencyService(db, setupFileStore(t))

	in := validAgencyInput("")
	_, err := svc.Create(adminIdentity(), in, nil, nil)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	in = validAgencyInput("Alpha")
	in.Plan = models.Plan("gold")
	_, err = svc.Create(adminIdentity(), in, nil, nil)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	var count int64
	require.NoError(t, db.Model(&models.Agency{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAgencyCreate_RequiresIdentity(t *testing.T) {
	svc := NewAgencyService(setupTestDB(t), setupFileStore(t))

	_, err := svc.Create(auth.Identity{}, validAgencyInput("Alpha"), nil, nil)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestAgencyCreate_WebsiteGetsScheme(t *testing.T) {
	svc := NewAgencyService(setupTestDB(t), setupFileStore(t))

	agency, err := svc.Create(adminIdentity(), validAgencyInput("Alpha"), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", agency.Website)
}

func TestAgencyCreate_RejectsBadImageExtension(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAgencyService(db, setupFileStore(t))

	logo := uploadFile(t, "logo.exe", []byte("not an image"))
	_, err := svc.Create(adminIdentity(), validAgencyInput("Alpha"), logo, nil)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	var count int64
	require.NoError(t, db.Model(&models.Agency{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAgencyCreate_StoresImages(t *testing.T) {
	files := setupFileStore(t)
	svc := NewAgencyService(setupTestDB(t), files)

	logo := uploadFile(t, "logo.png", []byte("png bytes"))
	cover := uploadFile(t, "cover.jpg", []byte("jpg bytes"))
	agency, err := svc.Create(adminIdentity(), validAgencyInput("Alpha"), logo, cover)
	require.NoError(t, err)

	assert.NotEmpty(t, agency.LogoRef)
	assert.NotEmpty(t, agency.CoverRef)
	assert.FileExists(t, filepath.Join(files.Root(), storage.KindLogo, agency.LogoRef))
	assert.FileExists(t, filepath.Join(files.Root(), storage.KindCover, agency.CoverRef))
}

func TestAgencyUpdate_ReplacesImageAndRemovesOldFile(t *testing.T) {
	files := setupFileStore(t)
	svc := NewAgencyService(setupTestDB(t), files)

	logo := uploadFile(t, "old.png", []byte("old"))
	agency, err := svc.Create(adminIdentity(), validAgencyInput("Alpha"), logo, nil)
	require.NoError(t, err)
	oldPath := filepath.Join(files.Root(), storage.KindLogo, agency.LogoRef)

	newLogo := uploadFile(t, "new.png", []byte("new"))
	updated, err := svc.Update(adminIdentity(), agency.ID, validAgencyInput("Alpha"), newLogo, nil)
	require.NoError(t, err)

	assert.NotEqual(t, agency.LogoRef, updated.LogoRef)
	assert.FileExists(t, filepath.Join(files.Root(), storage.KindLogo, updated.LogoRef))
	_, err = os.Stat(oldPath)
	assert.True(t, os.IsNotExist(err), "old logo should be gone after commit")
}

func TestAgencyUpdate_NotFound(t *testing.T) {
	svc := NewAgencyService(setupTestDB(t), setupFileStore(t))

	_, err := svc.Update(adminIdentity(), 9999, validAgencyInput("Alpha"), nil, nil)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAgencyDelete_IsIdempotent(t *testing.T) {
	files := setupFileStore(t)
	svc := NewAgencyService(setupTestDB(t), files)

	logo := uploadFile(t, "logo.png", []byte("png"))
	agency, err := svc.Create(adminIdentity(), validAgencyInput("Alpha"), logo, nil)
	require.NoError(t, err)
	logoPath := filepath.Join(files.Root(), storage.KindLogo, agency.LogoRef)

	require.NoError(t, svc.Delete(adminIdentity(), agency.ID))
	_, err = os.Stat(logoPath)
	assert.True(t, os.IsNotExist(err))

	// second delete of the same id is a no-op
	require.NoError(t, svc.Delete(adminIdentity(), agency.ID))
	require.NoError(t, svc.Delete(adminIdentity(), 424242))
}

func TestAgencyList_PremiumFirstThenSortOrder(t *testing.T) {
	svc := NewAgencyService(setupTestDB(t), setupFileStore(t))

	basic := validAgencyInput("Basic One")
	_, err := svc.Create(adminIdentity(), basic, nil, nil)
	require.NoError(t, err)

	premium := validAgencyInput("Premium One")
	premium.Plan = models.PlanPremium
	_, err = svc.Create(adminIdentity(), premium, nil, nil)
	require.NoError(t, err)

	list, err := svc.List("")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Premium One", list[0].Name)
	assert.Equal(t, "Basic One", list[1].Name)
}

func TestAgencyList_FiltersByPlan(t *testing.T) {
	svc := NewAgencyService(setupTestDB(t), setupFileStore(t))

	_, err := svc.Create(adminIdentity(), validAgencyInput("Basic One"), nil, nil)
	require.NoError(t, err)
	premium := validAgencyInput("Premium One")
	premium.Plan = models.PlanPremium
	_, err = svc.Create(adminIdentity(), premium, nil, nil)
	require.NoError(t, err)

	list, err := svc.List(models.PlanPremium)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Premium One", list[0].Name)
}

func TestAgencyList_SkipsInactive(t *testing.T) {
	svc := NewAgencyService(setupTestDB(t), setupFileStore(t))

	inactive := validAgencyInput("Hidden")
	inactive.IsActive = false
	_, err := svc.Create(adminIdentity(), inactive, nil, nil)
	require.NoError(t, err)

	list, err := svc.List("")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAgencyCreate_PersistsHiddenFlag(t *testing.T) {
	svc := NewAgencyService(setupTestDB(t), setupFileStore(t))

	in := validAgencyInput("Hidden")
	in.IsActive = false
	created, err := svc.Create(adminIdentity(), in, nil, nil)
	require.NoError(t, err)

	// read back from the database, not the in-memory struct
	stored, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive, "an agency created hidden must stay hidden")

	all, err := svc.ListAll(adminIdentity())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].IsActive)
}

func TestAgencyReorder_AppliesExactOrder(t *testing.T) {
	svc := NewAgencyService(setupTestDB(t), setupFileStore(t))

	var ids []uint
	for _, name := range []string{"One", "Two", "Three"} {
		agency, err := svc.Create(adminIdentity(), validAgencyInput(name), nil, nil)
		require.NoError(t, err)
		ids = append(ids, agency.ID)
	}

	want := []uint{ids[2], ids[0], ids[1]}
	require.NoError(t, svc.Reorder(adminIdentity(), want))

	list, err := svc.List("")
	require.NoError(t, err)
	require.Len(t, list, 3)
	got := []uint{list[0].ID, list[1].ID, list[2].ID}
	assert.Equal(t, want, got)
}

func TestAgencyReorder_IncludesHiddenRows(t *testing.T) {
	svc := NewAgencyService(setupTestDB(t), setupFileStore(t))

	a, err := svc.Create(adminIdentity(), validAgencyInput("One"), nil, nil)
	require.NoError(t, err)
	hidden := validAgencyInput("Hidden")
	hidden.IsActive = false
	b, err := svc.Create(adminIdentity(), hidden, nil, nil)
	require.NoError(t, err)
	c, err := svc.Create(adminIdentity(), validAgencyInput("Three"), nil, nil)
	require.NoError(t, err)

	// the admin list shows every row, so its full order must be accepted
	require.NoError(t, svc.Reorder(adminIdentity(), []uint{c.ID, b.ID, a.ID}))

	all, err := svc.ListAll(adminIdentity())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uint{c.ID, b.ID, a.ID}, []uint{all[0].ID, all[1].ID, all[2].ID})

	// leaving the hidden row out is a stale list, not a shortcut
	err = svc.Reorder(adminIdentity(), []uint{c.ID, a.ID})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestAgencyReorder_RejectsStaleIDSet(t *testing.T) {
	svc := NewAgencyService(setupTestDB(t), setupFileStore(t))

	a, err := svc.Create(adminIdentity(), validAgencyInput("One"), nil, nil)
	require.NoError(t, err)
	b, err := svc.Create(adminIdentity(), validAgencyInput("Two"), nil, nil)
	require.NoError(t, err)

	// missing id
	err = svc.Reorder(adminIdentity(), []uint{b.ID})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	// unknown id
	err = svc.Reorder(adminIdentity(), []uint{b.ID, 9999})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	// repeated id
	err = svc.Reorder(adminIdentity(), []uint{b.ID, b.ID})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	// prior order untouched
	list, err := svc.List("")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, b.ID, list[1].ID)
}

func TestAgencyListAll_RequiresIdentity(t *testing.T) {
	svc := NewAgencyService(setupTestDB(t), setupFileStore(t))

	_, err := svc.ListAll(auth.Identity{})
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}
