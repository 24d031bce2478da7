package services

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ewaste-tracker/internal/lifecycle"
	"ewaste-tracker/internal/models"
)

type fakeAssetStore struct {
	assets map[int]*models.Asset
	nextID int
}

func newFakeAssetStore() *fakeAssetStore {
	return &fakeAssetStore{assets: make(map[int]*models.Asset), nextID: 1}
}

func (f *fakeAssetStore) Create(_ context.Context, a *models.Asset) error {
	a.ID = f.nextID
	f.nextID++
	cp := *a
	f.assets[a.ID] = &cp
	return nil
}

func (f *fakeAssetStore) Get(_ context.Context, id int) (*models.Asset, error) {
	a, ok := f.assets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAssetStore) GetByTag(_ context.Context, tag string) (*models.Asset, error) {
	for _, a := range f.assets {
		if a.Tag == tag {
			cp := *a
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAssetStore) List(_ context.Context, filter models.AssetFilter) ([]*models.Asset, error) {
	var out []*models.Asset
	for _, a := range f.assets {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeAssetStore) Update(_ context.Context, a *models.Asset) error {
	if _, ok := f.assets[a.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *a
	f.assets[a.ID] = &cp
	return nil
}

func (f *fakeAssetStore) UpdateStatus(_ context.Context, a *models.Asset) error {
	return f.Update(nil, a)
}

type fakeLogStore struct {
	logs []*models.AssetLog
}

func (f *fakeLogStore) Create(_ context.Context, l *models.AssetLog) error {
	l.ID = len(f.logs) + 1
	cp := *l
	f.logs = append(f.logs, &cp)
	return nil
}

func (f *fakeLogStore) ListByAsset(_ context.Context, assetID int) ([]*models.AssetLog, error) {
	var out []*models.AssetLog
	// Newest first.
	for i := len(f.logs) - 1; i >= 0; i-- {
		if f.logs[i].AssetID == assetID {
			cp := *f.logs[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func newTestService() (*AssetService, *fakeAssetStore, *fakeLogStore) {
	assets := newFakeAssetStore()
	logs := &fakeLogStore{}
	return NewAssetService(assets, logs), assets, logs
}

func validInput() AssetInput {
	return AssetInput{
		Tag:       "LAP-0001",
		AssetType: "Laptop",
		Brand:     "Lenovo",
		Model:     "T480",
		Condition: "Good",
		WeightKg:  "1.6",
	}
}

func TestCreateAsset(t *testing.T) {
	svc, _, logs := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, lifecycle.StatusCollected, a.Status, "status defaults to collected")
	require.NotNil(t, a.WeightKg)
	assert.Equal(t, 1.6, *a.WeightKg)

	// Creation leaves an initial audit entry.
	require.Len(t, logs.logs, 1)
	assert.Equal(t, lifecycle.StatusCollected, logs.logs[0].Status)
	assert.Equal(t, "Asset created", logs.logs[0].Note)
	assert.Equal(t, "system", logs.logs[0].RecordedBy)
}

func TestCreateAssetDuplicateTag(t *testing.T) {
	svc, store, logs := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.Create(ctx, validInput())
	require.ErrorIs(t, err, ErrDuplicateTag)
	assert.True(t, IsValidation(err))

	// The rejected create must not insert or log anything.
	assert.Len(t, store.assets, 1)
	assert.Len(t, logs.logs, 1)
}

func TestCreateAssetValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*AssetInput)
	}{
		{"missing tag", func(in *AssetInput) { in.Tag = "" }},
		{"missing type", func(in *AssetInput) { in.AssetType = "" }},
		{"bad weight", func(in *AssetInput) { in.WeightKg = "heavy" }},
		{"bad date", func(in *AssetInput) { in.AcquiredDate = "07/01/2026" }},
		{"unknown status", func(in *AssetInput) { in.Status = "vaporised" }},
		{"bad donor id", func(in *AssetInput) { in.DonorID = "abc" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := svc.Create(ctx, in)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "expected a validation error, got %v", err)
		})
	}
}

func TestUpdateAsset(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	in := validInput()
	in.Brand = "Dell"
	in.WeightKg = ""
	updated, err := svc.Update(ctx, a.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Dell", updated.Brand)
	assert.Nil(t, updated.WeightKg, "clearing the weight field clears the value")
	assert.Equal(t, a.Status, updated.Status, "edits never change status")
}

func TestUpdateAssetTagCollision(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	second := validInput()
	second.Tag = "LAP-0002"
	b, err := svc.Create(ctx, second)
	require.NoError(t, err)

	// Renaming b to a's tag is rejected; keeping its own tag is fine.
	in := validInput()
	in.Tag = first.Tag
	_, err = svc.Update(ctx, b.ID, in)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	in.Tag = "LAP-0002"
	_, err = svc.Update(ctx, b.ID, in)
	assert.NoError(t, err)
}

func TestRecordEvent(t *testing.T) {
	svc, store, logs := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	updated, err := svc.RecordEvent(ctx, a.ID, StatusUpdate{
		Status:     lifecycle.StatusInAssessment,
		Note:       "triage bench",
		RecordedBy: "alice",
		Location:   "Workshop 2",
	})
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusInAssessment, updated.Status)
	assert.Equal(t, "Workshop 2", updated.Location)
	assert.Equal(t, lifecycle.StatusInAssessment, store.assets[a.ID].Status)

	history, err := svc.History(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	// Newest first.
	assert.Equal(t, lifecycle.StatusInAssessment, history[0].Status)
	assert.Equal(t, "triage bench", history[0].Note)
	assert.Equal(t, "alice", history[0].RecordedBy)
	assert.Equal(t, lifecycle.StatusCollected, history[1].Status)

	require.Len(t, logs.logs, 2)
}

func TestRecordEventUnknownStatus(t *testing.T) {
	svc, store, logs := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.RecordEvent(ctx, a.ID, StatusUpdate{Status: "vaporised"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	// Neither the asset nor its trail moved.
	assert.Equal(t, lifecycle.StatusCollected, store.assets[a.ID].Status)
	assert.Len(t, logs.logs, 1)
}

func TestRecordEventRecipientRules(t *testing.T) {
	svc, store, _ := newTestService()
	ctx := context.Background()

	in := validInput()
	in.RecipientID = "7"
	a, err := svc.Create(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, a.RecipientID)

	// Donation keeps the recipient link.
	_, err = svc.RecordEvent(ctx, a.ID, StatusUpdate{Status: lifecycle.StatusDonated})
	require.NoError(t, err)
	require.NotNil(t, store.assets[a.ID].RecipientID)
	assert.Equal(t, 7, *store.assets[a.ID].RecipientID)

	// Moving back into the workshop clears it.
	_, err = svc.RecordEvent(ctx, a.ID, StatusUpdate{Status: lifecycle.StatusInRefurbishment})
	require.NoError(t, err)
	assert.Nil(t, store.assets[a.ID].RecipientID)
}

func TestRecordEventMissingAsset(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.RecordEvent(context.Background(), 99, StatusUpdate{Status: lifecycle.StatusRecycled})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUnknownStatusFilter(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.List(context.Background(), models.AssetFilter{Status: "vaporised"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}
