package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ewaste-tracker/internal/config"
	"ewaste-tracker/internal/evidence"
	"ewaste-tracker/internal/intake"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	cfg := config.Load()
	cfg.ResolveDirs(t.TempDir())
	require.NoError(t, cfg.EnsureDirs())
	return NewRenderer(cfg)
}

func sampleRecord() intake.Record {
	return intake.Record{
		AssetID:               "TMU-20260105-0001",
		ItemType:              `Mixed 8"/10" Tablet (Used Returns)`,
		SerialNumber:          "SN-1234",
		Condition:             "Used - Poor",
		IntakeDate:            "05/01/2026",
		RequiresDataWipe:      true,
		DataWipeMethod:        "NIST 800-88 (Secure Erase)",
		DataWipeDate:          "06/01/2026",
		DataWipeTechnician:    "J. Smith",
		DestructionDate:       "07/01/2026",
		DestructionMethod:     "Physical Shredding",
		DestructionTechnician: "A. Jones",
		PhotoEvidencePath:     "photo_evidence/job/TMU-20260105-0001_after_01.jpg",
	}
}

func batch(n int) []intake.Record {
	records := make([]intake.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, intake.Record{
			AssetID:         fmt.Sprintf("CAB-20260105-%04d", i+1),
			ItemType:        "Charging Cabinet",
			Condition:       "Used - Good",
			IntakeDate:      "05/01/2026",
			DestructionDate: "07/01/2026",
		})
	}
	return records
}

func TestIndividualCertificate(t *testing.T) {
	r := testRenderer(t)

	data, err := r.IndividualCertificate(sampleRecord())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output must be a PDF document")
}

func TestIndividualCertificatePendingDestruction(t *testing.T) {
	r := testRenderer(t)

	rec := sampleRecord()
	rec.DestructionDate = ""
	data, err := r.IndividualCertificate(rec)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestWriteIndividualCertificate(t *testing.T) {
	r := testRenderer(t)

	path, err := r.WriteIndividualCertificate(sampleRecord())
	require.NoError(t, err)
	assert.Equal(t, "CERT-TMU-20260105-0001.pdf", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	names, err := r.ListCertificates()
	require.NoError(t, err)
	assert.Equal(t, []string{"CERT-TMU-20260105-0001.pdf"}, names)
}

func TestItemRowsCutoff(t *testing.T) {
	rows, itemized := itemRows(batch(50))
	assert.True(t, itemized, "50 items still itemized")
	require.Len(t, rows, 50)
	assert.Equal(t, "CAB-20260105-0001", rows[0][0])
	assert.Equal(t, "Charging Cabinet", rows[0][1])
	assert.Equal(t, "07/01/2026", rows[0][2])

	rows, itemized = itemRows(batch(51))
	assert.False(t, itemized, "51 items refer to the intake log")
	assert.Nil(t, rows)
}

func TestItemRowsPendingDate(t *testing.T) {
	records := batch(1)
	records[0].DestructionDate = ""
	rows, itemized := itemRows(records)
	require.True(t, itemized)
	assert.Equal(t, "Pending", rows[0][2])
}

func TestBatchCertificate(t *testing.T) {
	r := testRenderer(t)

	data, filename, err := r.BatchCertificate(batch(5), "LBQ_Batch")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Regexp(t, `^LBQ_Batch_CERT-BATCH-\d{8}_\d{6}\.pdf$`, filename)
}

func TestBatchCertificateLargeBatch(t *testing.T) {
	r := testRenderer(t)

	data, _, err := r.BatchCertificate(batch(51), "LBQ_Batch")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestFinalReport(t *testing.T) {
	r := testRenderer(t)

	records := append(batch(3), sampleRecord())
	inv := &evidence.Inventory{
		JobFolder:   "photo_evidence/LBQ_Job_20260105_090000",
		TotalPhotos: 12,
		ByFolder:    map[string]int{"Charging Cabinet": 12},
	}

	data, filename, err := r.FinalReport(records, inv, []string{"CERT-TMU-20260105-0001.pdf"}, "LBQ_Final_Report")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Regexp(t, `^LBQ_Final_Report_\d{8}_\d{6}\.pdf$`, filename)
}

func TestFinalReportEmptyJob(t *testing.T) {
	r := testRenderer(t)

	data, _, err := r.FinalReport(nil, nil, nil, "LBQ_Final_Report")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestWriteFinalReport(t *testing.T) {
	r := testRenderer(t)

	path, err := r.WriteFinalReport(batch(2), nil, nil, "LBQ_Final_Report")
	require.NoError(t, err)

	names, err := r.ListReports()
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, filepath.Base(path), names[0])
}

func TestBreakdownStatus(t *testing.T) {
	assert.Equal(t, "Complete", breakdownStatus(85, 85))
	assert.Equal(t, "40/85", breakdownStatus(85, 40))
	assert.Equal(t, "90 (over)", breakdownStatus(85, 90))
	assert.Equal(t, "Complete", breakdownStatus(0, 3))
	assert.Equal(t, "N/A", breakdownStatus(0, 0))
}

func TestSummaryCSV(t *testing.T) {
	records := []intake.Record{
		sampleRecord(),
		{
			AssetID:              "CAB-20260105-0001",
			ItemType:             "Charging Cabinet",
			Condition:            "Used - Good",
			IntakeDate:           "05/01/2026",
			RequiresLabelRemoval: true,
		},
	}

	rows, err := csv.NewReader(bytes.NewReader(SummaryCSV(records))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Asset ID", rows[0][0])
	// Wiped + destroyed tablet.
	assert.Equal(t, []string{"TMU-20260105-0001", `Mixed 8"/10" Tablet (Used Returns)`, "Used - Poor", "05/01/2026", "Done", "N/A", "Done", "Pending"}, rows[1])
	// Cabinet with everything pending.
	assert.Equal(t, []string{"CAB-20260105-0001", "Charging Cabinet", "Used - Good", "05/01/2026", "N/A", "Pending", "Pending", "Pending"}, rows[2])
}
