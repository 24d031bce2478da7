package intake

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ewaste-tracker/internal/lifecycle"
)

var assetIDPattern = regexp.MustCompile(`^[A-Z0-9]+-\d{8}-\d{4}$`)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestCreateGeneratesSequentialIDs(t *testing.T) {
	s := newStore(t)

	var prev int
	for i := 0; i < 5; i++ {
		r, err := s.Create("CABINET", "", "Used - Good", "")
		require.NoError(t, err)

		assert.Regexp(t, assetIDPattern, r.AssetID)
		assert.Equal(t, "Charging Cabinet", r.ItemType)
		assert.True(t, r.RequiresLabelRemoval)
		assert.False(t, r.RequiresDataWipe)

		_, _, seq, ok := splitAssetID(r.AssetID)
		require.True(t, ok)
		assert.Equal(t, prev+1, seq, "sequence must strictly increase")
		prev = seq
	}
}

func TestCreateCountersArePerType(t *testing.T) {
	s := newStore(t)

	cab, err := s.Create("CABINET", "", "Damaged", "")
	require.NoError(t, err)
	tab, err := s.Create("TABLET_8_NEW", "", "New/Sealed", "")
	require.NoError(t, err)

	_, _, cabSeq, _ := splitAssetID(cab.AssetID)
	_, _, tabSeq, _ := splitAssetID(tab.AssetID)
	assert.Equal(t, 1, cabSeq)
	assert.Equal(t, 1, tabSeq, "each item type has its own counter")
}

func TestCreateInvalidType(t *testing.T) {
	s := newStore(t)
	_, err := s.Create("MICROWAVE", "", "Damaged", "")
	assert.Error(t, err)
}

func TestCreateBatch(t *testing.T) {
	s := newStore(t)

	records, err := s.CreateBatch("REMOTE_KIT", 5, "Used - Fair", "LOT77", "pallet 3")
	require.NoError(t, err)
	require.Len(t, records, 5)

	for i, r := range records {
		assert.Equal(t, fmt.Sprintf("LOT77-%04d", i+1), r.SerialNumber)
		assert.Equal(t, "Used - Fair", r.Condition)
		assert.Equal(t, "pallet 3", r.Notes)
	}
}

func TestCreateBatchWithoutBaseSerial(t *testing.T) {
	s := newStore(t)
	records, err := s.CreateBatch("REMOTE_KIT", 3, "Damaged", "", "")
	require.NoError(t, err)
	for _, r := range records {
		assert.Empty(t, r.SerialNumber)
	}
}

func TestCreateBatchRejectsZeroQuantity(t *testing.T) {
	s := newStore(t)
	_, err := s.CreateBatch("REMOTE_KIT", 0, "Damaged", "", "")
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newStore(t)

	records, err := s.CreateBatch("TABLET_MIXED_USED", 3, "Used - Poor", "RET", "returns batch")
	require.NoError(t, err)
	records[1].DataWipeDate = "05/01/2026"
	records[1].DataWipeMethod = "NIST 800-88 (Secure Erase)"
	records[1].DataWipeTechnician = "J. Smith"
	records[2].CertificateIssued = true
	records[2].Notes = "notes, with commas \"and quotes\""

	require.NoError(t, s.Save(records, true))

	loaded, err := s.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestSaveAppendKeepsExistingRows(t *testing.T) {
	s := newStore(t)

	first, err := s.CreateBatch("CABINET", 2, "Used - Good", "", "")
	require.NoError(t, err)
	require.NoError(t, s.Save(first, true))

	second, err := s.CreateBatch("CABINET", 1, "Used - Good", "", "")
	require.NoError(t, err)
	require.NoError(t, s.Save(second, true))

	loaded, err := s.LoadAll()
	require.NoError(t, err)
	assert.Len(t, loaded, 3)
}

func TestSaveOverwriteReplacesFile(t *testing.T) {
	s := newStore(t)

	records, err := s.CreateBatch("CABINET", 3, "Used - Good", "", "")
	require.NoError(t, err)
	require.NoError(t, s.Save(records, true))

	records[0].DestructionDate = "06/01/2026"
	require.NoError(t, s.Save(records, false))

	loaded, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, "06/01/2026", loaded[0].DestructionDate)
}

func TestLoadAllWithoutStore(t *testing.T) {
	s := newStore(t)
	records, err := s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, records, "missing store reads as empty, not as an error")
}

func TestReopenContinuesSequences(t *testing.T) {
	dir := t.TempDir()

	s1, err := Open(dir)
	require.NoError(t, err)
	records, err := s1.CreateBatch("CABINET", 3, "Used - Good", "", "")
	require.NoError(t, err)
	require.NoError(t, s1.Save(records, true))

	// A fresh store over the same directory must not reissue ids.
	s2, err := Open(dir)
	require.NoError(t, err)
	r, err := s2.Create("CABINET", "", "Used - Good", "")
	require.NoError(t, err)

	_, _, seq, ok := splitAssetID(r.AssetID)
	require.True(t, ok)
	assert.Equal(t, 4, seq)

	seen := map[string]bool{}
	for _, rec := range append(records, r) {
		assert.False(t, seen[rec.AssetID], "duplicate id %s", rec.AssetID)
		seen[rec.AssetID] = true
	}
}

func TestFindByID(t *testing.T) {
	s := newStore(t)
	records, err := s.CreateBatch("CABINET", 2, "Used - Good", "", "")
	require.NoError(t, err)

	got, ok := FindByID(records, records[1].AssetID)
	require.True(t, ok)
	assert.Equal(t, records[1].AssetID, got.AssetID)

	_, ok = FindByID(records, "CAB-19990101-0001")
	assert.False(t, ok)
}

func TestUpdateMergesFields(t *testing.T) {
	s := newStore(t)
	records, err := s.CreateBatch("TABLET_MIXED_USED", 2, "Used - Poor", "", "")
	require.NoError(t, err)

	date := "07/01/2026"
	method := "Blancco Certified Wipe"
	tech := "A. Jones"
	ok := Update(records, records[0].AssetID, FieldUpdates{
		DataWipeDate:       &date,
		DataWipeMethod:     &method,
		DataWipeTechnician: &tech,
	})
	require.True(t, ok)

	assert.Equal(t, date, records[0].DataWipeDate)
	assert.Equal(t, method, records[0].DataWipeMethod)
	// Untouched fields survive the merge.
	assert.Equal(t, "Used - Poor", records[0].Condition)
	assert.Empty(t, records[1].DataWipeDate)

	assert.False(t, Update(records, "no-such-id", FieldUpdates{DataWipeDate: &date}))
}

func TestSummaryStats(t *testing.T) {
	s := newStore(t)

	wipe, err := s.CreateBatch("TABLET_MIXED_USED", 3, "Used - Poor", "", "")
	require.NoError(t, err)
	wipe[0].DataWipeDate = "05/01/2026"

	cabs, err := s.CreateBatch("CABINET", 2, "Used - Good", "", "")
	require.NoError(t, err)
	cabs[0].LabelRemovalCompleted = true
	cabs[0].DestructionDate = "05/01/2026"
	cabs[0].CertificateIssued = true

	records := append(wipe, cabs...)
	stats := SummaryStats(records)

	assert.Equal(t, 5, stats.TotalItems)
	assert.Equal(t, 3, stats.ByType[`Mixed 8"/10" Tablet (Used Returns)`])
	assert.Equal(t, 2, stats.ByType["Charging Cabinet"])
	assert.Equal(t, 3, stats.ByCondition["Used - Poor"])
	assert.Equal(t, 2, stats.DataWipePending, "3 items require wipe, 1 wiped")
	assert.Equal(t, 1, stats.LabelRemovalPending)
	assert.Equal(t, 4, stats.DestructionPending)
	assert.Equal(t, 1, stats.CertificatesIssued)
}

func TestRecordEventAppendsAudit(t *testing.T) {
	s := newStore(t)
	records, err := s.CreateBatch("CABINET", 1, "Used - Good", "", "")
	require.NoError(t, err)
	require.NoError(t, s.Save(records, true))

	id := records[0].AssetID
	require.NoError(t, s.RecordEvent(records, id, lifecycle.StatusInRefurbishment, "wipe done", "alice"))
	require.NoError(t, s.RecordEvent(records, id, lifecycle.StatusRecycled, "shredded", "bob"))

	entries, err := s.LoadAudit()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, lifecycle.StatusRecycled, entries[0].Status)
	assert.Equal(t, "shredded", entries[0].Note)
	assert.Equal(t, "bob", entries[0].RecordedBy)
	assert.Equal(t, lifecycle.StatusInRefurbishment, entries[1].Status)
}

func TestRecordEventUnknownStatus(t *testing.T) {
	s := newStore(t)
	records, err := s.CreateBatch("CABINET", 1, "Used - Good", "", "")
	require.NoError(t, err)

	err = s.RecordEvent(records, records[0].AssetID, "vaporised", "", "alice")
	require.ErrorIs(t, err, lifecycle.ErrUnknownStatus)

	entries, err := s.LoadAudit()
	require.NoError(t, err)
	assert.Empty(t, entries, "failed transition must not append an entry")
}

func TestRecordEventUnknownAsset(t *testing.T) {
	s := newStore(t)
	err := s.RecordEvent(nil, "CAB-20260101-9999", lifecycle.StatusRecycled, "", "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByType(t *testing.T) {
	s := newStore(t)
	cabs, err := s.CreateBatch("CABINET", 2, "Used - Good", "", "")
	require.NoError(t, err)
	rems, err := s.CreateBatch("REMOTE_KIT", 1, "Damaged", "", "")
	require.NoError(t, err)

	records := append(cabs, rems...)
	assert.Len(t, FindByType(records, "Charging Cabinet"), 2)
	assert.Len(t, FindByType(records, "Handheld Remote Device Kit"), 1)
	assert.Empty(t, FindByType(records, "Nonexistent"))
}
