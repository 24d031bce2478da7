// Package intake persists asset records for one destruction job as CSV
// intake logs, and appends lifecycle audit entries to a sidecar log.
package intake

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"ewaste-tracker/internal/catalog"
	"ewaste-tracker/internal/lifecycle"
	"ewaste-tracker/internal/timeutil"
)

var ErrNotFound = errors.New("asset not found")

// Headers is the fixed intake log column set. Order is part of the file
// format and must not change.
var Headers = []string{
	"Asset ID",
	"Item Type",
	"Serial Number",
	"Condition",
	"Intake Date",
	"Requires Label Removal",
	"Label Removal Completed",
	"Requires Data Wipe",
	"Data Wipe Method",
	"Data Wipe Date",
	"Data Wipe Technician",
	"Destruction Date",
	"Destruction Method",
	"Destruction Technician",
	"Photo Evidence Path",
	"Certificate Issued",
	"Notes",
}

// Record is one tracked item as stored in the intake log.
type Record struct {
	AssetID               string
	ItemType              string
	SerialNumber          string
	Condition             string
	IntakeDate            string
	RequiresLabelRemoval  bool
	LabelRemovalCompleted bool
	RequiresDataWipe      bool
	DataWipeMethod        string
	DataWipeDate          string
	DataWipeTechnician    string
	DestructionDate       string
	DestructionMethod     string
	DestructionTechnician string
	PhotoEvidencePath     string
	CertificateIssued     bool
	Notes                 string
}

// FieldUpdates is a partial update; nil fields are left untouched.
type FieldUpdates struct {
	LabelRemovalCompleted *bool
	DataWipeMethod        *string
	DataWipeDate          *string
	DataWipeTechnician    *string
	DestructionDate       *string
	DestructionMethod     *string
	DestructionTechnician *string
	PhotoEvidencePath     *string
	CertificateIssued     *bool
	Notes                 *string
}

// Stats summarises an intake log.
type Stats struct {
	TotalItems          int
	ByType              map[string]int
	ByCondition         map[string]int
	LabelRemovalPending int
	DataWipePending     int
	DestructionPending  int
	CertificatesIssued  int
}

// Store reads and writes one intake log plus its audit sidecar. A store is
// bound to the most recent log in its directory, or to a fresh
// session-stamped file when the directory holds none.
type Store struct {
	dir       string
	logPath   string
	auditPath string
	counters  map[string]int // max sequence per id prefix, for today's date
	idDate    string
}

// Open binds a store to dir. Id sequence counters are seeded by scanning the
// existing log's maximum sequence per prefix for today's date, so reopening
// a store never reissues an id.
func Open(dir string) (*Store, error) {
	s := &Store{
		dir:      dir,
		counters: make(map[string]int),
		idDate:   timeutil.IDDate(),
	}

	latest, err := latestLog(dir)
	if err != nil {
		return nil, err
	}
	if latest == "" {
		stamp := timeutil.FileStamp()
		s.logPath = filepath.Join(dir, "intake_log_"+stamp+".csv")
		s.auditPath = filepath.Join(dir, "audit_log_"+stamp+".csv")
		return s, nil
	}

	s.logPath = latest
	s.auditPath = auditPathFor(latest)

	records, err := s.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("seeding id counters: %w", err)
	}
	for _, r := range records {
		prefix, date, seq, ok := splitAssetID(r.AssetID)
		if !ok || date != s.idDate {
			continue
		}
		if seq > s.counters[prefix] {
			s.counters[prefix] = seq
		}
	}
	return s, nil
}

// Path returns the backing intake log path.
func (s *Store) Path() string { return s.logPath }

// AuditPath returns the sidecar audit log path.
func (s *Store) AuditPath() string { return s.auditPath }

// Create builds a new record for the given item type. The record is not
// persisted until Save is called with it.
func (s *Store) Create(typeCode, serialNumber, condition, notes string) (Record, error) {
	t, err := catalog.Lookup(typeCode)
	if err != nil {
		return Record{}, err
	}

	id, err := s.nextAssetID(t)
	if err != nil {
		return Record{}, err
	}

	return Record{
		AssetID:              id,
		ItemType:             t.Name,
		SerialNumber:         serialNumber,
		Condition:            condition,
		IntakeDate:           timeutil.CurrentDate(),
		RequiresLabelRemoval: t.RequiresLabelRemoval,
		RequiresDataWipe:     t.RequiresDataWipe,
		Notes:                notes,
	}, nil
}

// CreateBatch builds quantity sequential records. When baseSerial is
// non-empty, serials are suffixed -0001, -0002, ...
func (s *Store) CreateBatch(typeCode string, quantity int, condition, baseSerial, notes string) ([]Record, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}

	records := make([]Record, 0, quantity)
	for i := 0; i < quantity; i++ {
		serial := ""
		if baseSerial != "" {
			serial = fmt.Sprintf("%s-%04d", baseSerial, i+1)
		}
		r, err := s.Create(typeCode, serial, condition, notes)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// Save persists records to the backing log. With appendMode the rows are
// appended; otherwise the file is fully rewritten. The header row is written
// iff the file did not previously exist or a full rewrite was requested.
func (s *Store) Save(records []Record, appendMode bool) error {
	_, statErr := os.Stat(s.logPath)
	exists := statErr == nil

	flags := os.O_CREATE | os.O_WRONLY
	writeHeader := true
	if appendMode && exists {
		flags |= os.O_APPEND
		writeHeader = false
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(s.logPath, flags, 0o644)
	if err != nil {
		return fmt.Errorf("opening intake log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(Headers); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for _, r := range records {
		if err := w.Write(r.row()); err != nil {
			return fmt.Errorf("writing record %s: %w", r.AssetID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing intake log: %w", err)
	}
	return nil
}

// LoadAll reads every record from the backing log. A store with no persisted
// log yet yields an empty slice, not an error; reporting over an empty job
// is a valid operation.
func (s *Store) LoadAll() ([]Record, error) {
	f, err := os.Open(s.logPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening intake log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(Headers)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading intake log: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, recordFromRow(row))
	}
	return records, nil
}

// FindByID returns a pointer into records for the matching asset id.
func FindByID(records []Record, assetID string) (*Record, bool) {
	for i := range records {
		if records[i].AssetID == assetID {
			return &records[i], true
		}
	}
	return nil, false
}

// FindByType returns all records of the given item type display name.
func FindByType(records []Record, typeName string) []Record {
	var out []Record
	for _, r := range records {
		if r.ItemType == typeName {
			out = append(out, r)
		}
	}
	return out
}

// Update applies a partial field merge to the matching record in records.
// The caller persists the full collection afterwards with Save.
func Update(records []Record, assetID string, upd FieldUpdates) bool {
	r, ok := FindByID(records, assetID)
	if !ok {
		return false
	}
	if upd.LabelRemovalCompleted != nil {
		r.LabelRemovalCompleted = *upd.LabelRemovalCompleted
	}
	if upd.DataWipeMethod != nil {
		r.DataWipeMethod = *upd.DataWipeMethod
	}
	if upd.DataWipeDate != nil {
		r.DataWipeDate = *upd.DataWipeDate
	}
	if upd.DataWipeTechnician != nil {
		r.DataWipeTechnician = *upd.DataWipeTechnician
	}
	if upd.DestructionDate != nil {
		r.DestructionDate = *upd.DestructionDate
	}
	if upd.DestructionMethod != nil {
		r.DestructionMethod = *upd.DestructionMethod
	}
	if upd.DestructionTechnician != nil {
		r.DestructionTechnician = *upd.DestructionTechnician
	}
	if upd.PhotoEvidencePath != nil {
		r.PhotoEvidencePath = *upd.PhotoEvidencePath
	}
	if upd.CertificateIssued != nil {
		r.CertificateIssued = *upd.CertificateIssued
	}
	if upd.Notes != nil {
		r.Notes = *upd.Notes
	}
	return true
}

// RecordEvent validates the status and appends an immutable audit entry for
// the asset to the sidecar log. The intake log itself is not touched; task
// fields are merged separately via Update. An unknown status appends nothing.
func (s *Store) RecordEvent(records []Record, assetID, status, note, recordedBy string) error {
	if err := lifecycle.Validate(status); err != nil {
		return err
	}
	if _, ok := FindByID(records, assetID); !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, assetID)
	}

	ev := lifecycle.NewEvent(status, note, recordedBy, "")

	_, statErr := os.Stat(s.auditPath)
	exists := statErr == nil

	f, err := os.OpenFile(s.auditPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if !exists {
		if err := w.Write([]string{"Asset ID", "Status", "Note", "Recorded By", "Recorded At"}); err != nil {
			return fmt.Errorf("writing audit header: %w", err)
		}
	}
	if err := w.Write([]string{
		assetID,
		ev.Status,
		ev.Note,
		ev.RecordedBy,
		ev.RecordedAt.Format(timeutil.DateTimeLayout),
	}); err != nil {
		return fmt.Errorf("writing audit entry: %w", err)
	}
	w.Flush()
	return w.Error()
}

// AuditEntry is one row of the sidecar audit log.
type AuditEntry struct {
	AssetID    string
	Status     string
	Note       string
	RecordedBy string
	RecordedAt string
}

// LoadAudit reads the audit sidecar, newest entry first.
func (s *Store) LoadAudit() ([]AuditEntry, error) {
	f, err := os.Open(s.auditPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}

	var entries []AuditEntry
	for _, row := range rows {
		if len(row) < 5 || row[0] == "Asset ID" {
			continue
		}
		entries = append(entries, AuditEntry{
			AssetID:    row[0],
			Status:     row[1],
			Note:       row[2],
			RecordedBy: row[3],
			RecordedAt: row[4],
		})
	}
	// Newest first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// SummaryStats partitions records into pending and completed task counts.
func SummaryStats(records []Record) Stats {
	stats := Stats{
		TotalItems:  len(records),
		ByType:      make(map[string]int),
		ByCondition: make(map[string]int),
	}

	for _, r := range records {
		stats.ByType[r.ItemType]++
		stats.ByCondition[r.Condition]++

		if r.RequiresLabelRemoval && !r.LabelRemovalCompleted {
			stats.LabelRemovalPending++
		}
		if r.RequiresDataWipe && r.DataWipeDate == "" {
			stats.DataWipePending++
		}
		if r.DestructionDate == "" {
			stats.DestructionPending++
		}
		if r.CertificateIssued {
			stats.CertificatesIssued++
		}
	}
	return stats
}

func (s *Store) nextAssetID(t catalog.ItemType) (string, error) {
	// A long-running session that crosses midnight restarts sequences for
	// the new date segment.
	if today := timeutil.IDDate(); today != s.idDate {
		s.idDate = today
		s.counters = make(map[string]int)
	}
	s.counters[t.Prefix]++
	return fmt.Sprintf("%s-%s-%04d", t.Prefix, s.idDate, s.counters[t.Prefix]), nil
}

func splitAssetID(id string) (prefix, date string, seq int, ok bool) {
	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		return "", "", 0, false
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", "", 0, false
	}
	return parts[0], parts[1], n, true
}

func latestLog(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "intake_log_*.csv"))
	if err != nil {
		return "", fmt.Errorf("listing intake logs: %w", err)
	}
	if len(matches) == 0 {
		return "", nil
	}
	// Timestamped names sort lexicographically.
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}

func auditPathFor(logPath string) string {
	base := filepath.Base(logPath)
	base = strings.TrimPrefix(base, "intake_log_")
	return filepath.Join(filepath.Dir(logPath), "audit_log_"+base)
}

func (r Record) row() []string {
	return []string{
		r.AssetID,
		r.ItemType,
		r.SerialNumber,
		r.Condition,
		r.IntakeDate,
		yesNo(r.RequiresLabelRemoval),
		yesNo(r.LabelRemovalCompleted),
		yesNo(r.RequiresDataWipe),
		r.DataWipeMethod,
		r.DataWipeDate,
		r.DataWipeTechnician,
		r.DestructionDate,
		r.DestructionMethod,
		r.DestructionTechnician,
		r.PhotoEvidencePath,
		yesNo(r.CertificateIssued),
		r.Notes,
	}
}

func recordFromRow(row []string) Record {
	return Record{
		AssetID:               row[0],
		ItemType:              row[1],
		SerialNumber:          row[2],
		Condition:             row[3],
		IntakeDate:            row[4],
		RequiresLabelRemoval:  row[5] == "Yes",
		LabelRemovalCompleted: row[6] == "Yes",
		RequiresDataWipe:      row[7] == "Yes",
		DataWipeMethod:        row[8],
		DataWipeDate:          row[9],
		DataWipeTechnician:    row[10],
		DestructionDate:       row[11],
		DestructionMethod:     row[12],
		DestructionTechnician: row[13],
		PhotoEvidencePath:     row[14],
		CertificateIssued:     row[15] == "Yes",
		Notes:                 row[16],
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
