// Package report renders destruction certificates and compliance reports as
// PDF, plus CSV exports of the intake summary.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jung-kurt/gofpdf/v2"

	"ewaste-tracker/internal/catalog"
	"ewaste-tracker/internal/config"
	"ewaste-tracker/internal/evidence"
	"ewaste-tracker/internal/intake"
	"ewaste-tracker/internal/timeutil"
)

// Batch certificates itemize every asset up to this count; larger batches
// refer the reader to the intake log instead.
const maxItemizedAssets = 50

// Renderer builds the PDF and CSV documents for one destruction job. It has
// no store side effects; callers persist certificate flags separately.
type Renderer struct {
	cfg *config.Config
}

func NewRenderer(cfg *config.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// IndividualCertificate renders a certificate of secure destruction for one
// asset. The certificate number is CERT-<asset id>.
func (r *Renderer) IndividualCertificate(rec intake.Record) ([]byte, error) {
	certNumber := "CERT-" + rec.AssetID

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	r.certHeader(pdf, certNumber)

	// Asset details
	r.sectionTitle(pdf, "Asset Details")
	serial := rec.SerialNumber
	if serial == "" {
		serial = "N/A"
	}
	r.kvRow(pdf, "Asset ID:", rec.AssetID)
	r.kvRow(pdf, "Item Type:", rec.ItemType)
	r.kvRow(pdf, "Serial Number:", serial)
	r.kvRow(pdf, "Condition:", rec.Condition)
	r.kvRow(pdf, "Intake Date:", rec.IntakeDate)
	pdf.Ln(5)

	if rec.DestructionDate != "" {
		r.sectionTitle(pdf, "Destruction Details")
		r.kvRow(pdf, "Destruction Date:", rec.DestructionDate)
		r.kvRow(pdf, "Destruction Method:", rec.DestructionMethod)
		r.kvRow(pdf, "Technician:", rec.DestructionTechnician)
		if rec.DataWipeDate != "" {
			r.kvRow(pdf, "Data Wipe Method:", rec.DataWipeMethod)
			r.kvRow(pdf, "Data Wipe Date:", rec.DataWipeDate)
			r.kvRow(pdf, "Data Wipe Technician:", rec.DataWipeTechnician)
		}
		pdf.Ln(5)
	}

	if rec.PhotoEvidencePath != "" {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(35, 6, "Photo Evidence:", "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(145, 6, rec.PhotoEvidencePath, "", 1, "L", false, 0, "")
		pdf.Ln(5)
	}

	r.complianceSection(pdf)
	r.signatureSection(pdf)
	r.footer(pdf)

	return output(pdf)
}

// WriteIndividualCertificate renders and persists the certificate as
// CERT-<asset id>.pdf in the certificates directory, returning the path.
func (r *Renderer) WriteIndividualCertificate(rec intake.Record) (string, error) {
	data, err := r.IndividualCertificate(rec)
	if err != nil {
		return "", err
	}
	path := filepath.Join(r.cfg.Dirs.Certificates, "CERT-"+rec.AssetID+".pdf")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing certificate: %w", err)
	}
	return path, nil
}

// BatchCertificate renders one certificate covering every record. Batches
// beyond maxItemizedAssets get a per-type count table only, with a note
// referring to the intake log.
func (r *Renderer) BatchCertificate(records []intake.Record, batchName string) ([]byte, string, error) {
	certNumber := "CERT-BATCH-" + timeutil.FileStamp()
	filename := batchName + "_" + certNumber + ".pdf"

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	r.certHeader(pdf, certNumber)

	r.sectionTitle(pdf, "Batch Summary")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(180, 6,
		fmt.Sprintf("This certificate covers the secure destruction of %d items.", len(records)),
		"", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Per-type counts
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(26, 84, 144)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(130, 7, "Item Type", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 7, "Quantity", "1", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 10)
	for _, tc := range typeCounts(records) {
		pdf.CellFormat(130, 6, tc.name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("%d", tc.count), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	r.sectionTitle(pdf, "Assets Included")
	rows, itemized := itemRows(records)
	if itemized {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(55, 7, "Asset ID", "1", 0, "C", true, 0, "")
		pdf.CellFormat(85, 7, "Item Type", "1", 0, "C", true, 0, "")
		pdf.CellFormat(40, 7, "Destruction Date", "1", 1, "C", true, 0, "")
		pdf.SetFont("Arial", "", 8)
		for _, row := range rows {
			pdf.CellFormat(55, 5, row[0], "1", 0, "L", false, 0, "")
			pdf.CellFormat(85, 5, row[1], "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 5, row[2], "1", 1, "C", false, 0, "")
		}
	} else {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(180, 6,
			fmt.Sprintf("Due to large quantity (%d items), please refer to the intake log CSV for the complete asset listing.", len(records)),
			"", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	r.complianceSection(pdf)
	r.signatureSection(pdf)
	r.footer(pdf)

	data, err := output(pdf)
	return data, filename, err
}

// WriteBatchCertificate renders and persists the batch certificate,
// returning the path.
func (r *Renderer) WriteBatchCertificate(records []intake.Record, batchName string) (string, error) {
	data, filename, err := r.BatchCertificate(records, batchName)
	if err != nil {
		return "", err
	}
	path := filepath.Join(r.cfg.Dirs.Certificates, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing batch certificate: %w", err)
	}
	return path, nil
}

// FinalReport renders the end-of-job compliance report: cover page,
// executive summary, item breakdown against expected quantities, compliance
// prose, destruction methods and the evidence inventory.
func (r *Renderer) FinalReport(records []intake.Record, inv *evidence.Inventory, certificates []string, reportName string) ([]byte, string, error) {
	filename := reportName + "_" + timeutil.FileStamp() + ".pdf"
	stats := intake.SummaryStats(records)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)

	// Cover page
	pdf.AddPage()
	pdf.Ln(50)
	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(26, 84, 144)
	pdf.CellFormat(170, 12, "E-WASTE DESTRUCTION & COMPLIANCE REPORT", "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(170, 8, "Client: "+r.cfg.Client.Name, "", 1, "C", false, 0, "")
	pdf.CellFormat(170, 8, "Via: "+r.cfg.Client.Via, "", 1, "C", false, 0, "")
	pdf.Ln(5)
	pdf.CellFormat(170, 8, "Service Provider: "+r.cfg.Organisation.Name, "", 1, "C", false, 0, "")
	pdf.CellFormat(170, 8, r.cfg.Organisation.Address, "", 1, "C", false, 0, "")
	pdf.Ln(10)
	pdf.CellFormat(170, 8, "Report Date: "+timeutil.CurrentDate(), "", 1, "C", false, 0, "")
	pdf.CellFormat(170, 8, "Service Type: "+r.cfg.Client.JobType, "", 1, "C", false, 0, "")
	pdf.Ln(15)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(170, 8, "Compliant with:", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	for _, standard := range config.ComplianceStandards {
		pdf.CellFormat(170, 8, standard, "", 1, "C", false, 0, "")
	}

	// Executive summary
	pdf.AddPage()
	r.sectionTitle(pdf, "Executive Summary")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(170, 5, fmt.Sprintf(
		"%s has successfully completed the secure destruction and recycling service for %d items of electronic waste on behalf of %s. "+
			"All items have been processed in accordance with ISO 9001:2015, WEEE Regulations 2013, and UK GDPR 2018 requirements. "+
			"This report provides comprehensive documentation of all processing activities, destruction methods, and compliance measures taken.",
		r.cfg.Organisation.Name, stats.TotalItems, r.cfg.Client.Name), "", "J", false)
	pdf.Ln(4)

	wipesDone := countCompleted(records, func(rec intake.Record) bool { return rec.DataWipeDate != "" })
	labelsDone := countCompleted(records, func(rec intake.Record) bool { return rec.LabelRemovalCompleted })
	photoCount := 0
	if inv != nil {
		photoCount = inv.TotalPhotos
	}
	pdf.SetFillColor(232, 244, 248)
	r.statRow(pdf, "Total Items Processed:", stats.TotalItems)
	r.statRow(pdf, "Data Wipe Operations:", wipesDone)
	r.statRow(pdf, "Label Removal Operations:", labelsDone)
	r.statRow(pdf, "Destruction Certificates Issued:", stats.CertificatesIssued)
	r.statRow(pdf, "Photo Evidence Files:", photoCount)
	pdf.Ln(6)

	// Item breakdown against expected quantities
	r.sectionTitle(pdf, "Item Breakdown")
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(26, 84, 144)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(75, 7, "Item Type", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 7, "Expected", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Processed", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Status", "1", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 9)
	for _, t := range catalog.All() {
		processed := stats.ByType[t.Name]
		expected := "Variable"
		if t.ExpectedQuantity > 0 {
			expected = fmt.Sprintf("%d", t.ExpectedQuantity)
		}
		pdf.CellFormat(75, 6, t.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, expected, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", processed), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, breakdownStatus(t.ExpectedQuantity, processed), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	// Compliance & methodology
	r.sectionTitle(pdf, "Compliance & Methodology")
	r.subHeading(pdf, "ISO 9001:2015 Quality Management")
	pdf.MultiCell(170, 5,
		"All processes have been conducted in accordance with our ISO 9001:2015 certified quality management system. "+
			"This includes documented procedures, traceability of all items, and comprehensive record-keeping throughout the destruction process.",
		"", "J", false)
	r.subHeading(pdf, "WEEE Regulations 2013")
	pdf.MultiCell(170, 5,
		"All electronic waste has been processed in compliance with the Waste Electrical and Electronic Equipment Regulations 2013. "+
			"Materials have been segregated appropriately for recycling, and hazardous components have been handled by certified facilities.",
		"", "J", false)
	r.subHeading(pdf, "UK GDPR 2018")
	pdf.MultiCell(170, 5, fmt.Sprintf(
		"Data-bearing devices (n=%d) have undergone secure data sanitisation using industry-standard methods to ensure complete data destruction. "+
			"All processes comply with UK GDPR requirements for secure data disposal.", wipesDone), "", "J", false)
	pdf.Ln(4)

	// Destruction methods
	r.sectionTitle(pdf, "Destruction Methods")
	methods := methodCounts(records)
	if len(methods) > 0 {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(120, 7, "Method", "1", 0, "L", true, 0, "")
		pdf.CellFormat(50, 7, "Items Processed", "1", 1, "C", true, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, mc := range methods {
			pdf.CellFormat(120, 6, mc.name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 6, fmt.Sprintf("%d", mc.count), "1", 1, "C", false, 0, "")
		}
	} else {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(170, 6, "Destruction methods to be recorded during processing.", "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Evidence & documentation
	r.sectionTitle(pdf, "Evidence & Documentation")
	r.subHeading(pdf, "Photographic Evidence")
	if inv != nil && inv.TotalPhotos > 0 {
		pdf.MultiCell(170, 5, fmt.Sprintf(
			"A total of %d photographs have been taken documenting the destruction process. "+
				"Photos are organised by item type and stored in: %s", inv.TotalPhotos, inv.JobFolder), "", "J", false)
	} else {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(170, 6, "Photographic evidence to be compiled during processing.", "", 1, "L", false, 0, "")
	}
	r.subHeading(pdf, "Destruction Certificates")
	if len(certificates) > 0 {
		pdf.MultiCell(170, 5, fmt.Sprintf(
			"%d destruction certificates have been generated and are included with this report. "+
				"Each certificate provides detailed information about the items destroyed, methods used, and technician certification.",
			len(certificates)), "", "J", false)
	} else {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(170, 6, "Destruction certificates to be generated upon completion of processing.", "", 1, "L", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(170, 5, fmt.Sprintf("This report was generated by %s on %s. For queries, please contact %s",
		r.cfg.Organisation.Name, timeutil.CurrentDate(), r.cfg.Organisation.Email), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	data, err := output(pdf)
	return data, filename, err
}

// WriteFinalReport renders and persists the compliance report, returning
// the path.
func (r *Renderer) WriteFinalReport(records []intake.Record, inv *evidence.Inventory, certificates []string, reportName string) (string, error) {
	data, filename, err := r.FinalReport(records, inv, certificates, reportName)
	if err != nil {
		return "", err
	}
	path := filepath.Join(r.cfg.Dirs.Reports, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

// SummaryCSV exports the per-record task status as CSV.
func SummaryCSV(records []intake.Record) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Asset ID", "Item Type", "Condition", "Intake Date", "Data Wipe", "Label Removal", "Destruction", "Certificate"})
	for _, rec := range records {
		wipe := "N/A"
		if rec.RequiresDataWipe {
			wipe = doneOrPending(rec.DataWipeDate != "")
		}
		label := "N/A"
		if rec.RequiresLabelRemoval {
			label = doneOrPending(rec.LabelRemovalCompleted)
		}
		w.Write([]string{
			rec.AssetID,
			rec.ItemType,
			rec.Condition,
			rec.IntakeDate,
			wipe,
			label,
			doneOrPending(rec.DestructionDate != ""),
			doneOrPending(rec.CertificateIssued),
		})
	}
	w.Flush()
	return buf.Bytes()
}

// ListCertificates returns generated certificate filenames, newest first.
func (r *Renderer) ListCertificates() ([]string, error) {
	return listPDFs(r.cfg.Dirs.Certificates)
}

// ListReports returns generated report filenames, newest first.
func (r *Renderer) ListReports() ([]string, error) {
	return listPDFs(r.cfg.Dirs.Reports)
}

func (r *Renderer) certHeader(pdf *gofpdf.Fpdf, certNumber string) {
	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(26, 84, 144)
	pdf.CellFormat(180, 12, r.cfg.Organisation.Name, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 14)
	pdf.SetTextColor(211, 47, 47)
	pdf.CellFormat(180, 10, "CERTIFICATE OF SECURE DESTRUCTION", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(180, 6, "Certificate No: "+certNumber, "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)

	r.kvPlainRow(pdf, "Date of Issue:", timeutil.CurrentDate())
	r.kvPlainRow(pdf, "Issued To:", r.cfg.Client.Name)
	r.kvPlainRow(pdf, "Via:", r.cfg.Client.Via)
	r.kvPlainRow(pdf, "Service Provider:", r.cfg.Organisation.Name+", "+r.cfg.Organisation.Address)
	pdf.Ln(6)
}

func (r *Renderer) complianceSection(pdf *gofpdf.Fpdf) {
	r.sectionTitle(pdf, "Compliance Standards")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(180, 6, "This destruction service has been performed in accordance with:", "", 1, "L", false, 0, "")
	for _, standard := range config.ComplianceStandards {
		pdf.CellFormat(180, 6, "- "+standard, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func (r *Renderer) signatureSection(pdf *gofpdf.Fpdf) {
	r.sectionTitle(pdf, "Certification")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(180, 5,
		"I certify that the items listed in this certificate have been securely destroyed in accordance with the specified methods "+
			"and that all data storage devices have been rendered permanently unrecoverable.", "", "L", false)
	pdf.Ln(10)
	pdf.CellFormat(45, 6, "Technician Signature:", "", 0, "L", false, 0, "")
	pdf.CellFormat(70, 6, "", "B", 0, "L", false, 0, "")
	pdf.CellFormat(15, 6, "  Date:", "", 0, "L", false, 0, "")
	pdf.CellFormat(45, 6, "", "B", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.CellFormat(45, 6, "Technician Name:", "", 0, "L", false, 0, "")
	pdf.CellFormat(70, 6, "", "B", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func (r *Renderer) footer(pdf *gofpdf.Fpdf) {
	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(180, 5, r.cfg.Organisation.Name+" | "+r.cfg.Organisation.Email, "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (r *Renderer) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(26, 84, 144)
	pdf.CellFormat(180, 8, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 10)
}

func (r *Renderer) subHeading(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(44, 90, 160)
	pdf.CellFormat(170, 7, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 10)
}

func (r *Renderer) kvRow(pdf *gofpdf.Fpdf, key, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	pdf.CellFormat(50, 7, key, "1", 0, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(130, 7, value, "1", 1, "L", false, 0, "")
}

func (r *Renderer) kvPlainRow(pdf *gofpdf.Fpdf, key, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 6, key, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(140, 6, value, "", 1, "L", false, 0, "")
}

func (r *Renderer) statRow(pdf *gofpdf.Fpdf, key string, value int) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(110, 7, key, "1", 0, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(60, 7, fmt.Sprintf("%d", value), "1", 1, "C", false, 0, "")
}

// itemRows builds the batch certificate's itemized table. The second return
// is false for batches beyond maxItemizedAssets, where no table is rendered.
func itemRows(records []intake.Record) ([][3]string, bool) {
	if len(records) > maxItemizedAssets {
		return nil, false
	}
	rows := make([][3]string, 0, len(records))
	for _, rec := range records {
		date := rec.DestructionDate
		if date == "" {
			date = "Pending"
		}
		rows = append(rows, [3]string{rec.AssetID, rec.ItemType, date})
	}
	return rows, true
}

func breakdownStatus(expected, processed int) string {
	switch {
	case expected == 0 && processed > 0:
		return "Complete"
	case expected == 0:
		return "N/A"
	case processed == expected:
		return "Complete"
	case processed < expected:
		return fmt.Sprintf("%d/%d", processed, expected)
	default:
		return fmt.Sprintf("%d (over)", processed)
	}
}

type nameCount struct {
	name  string
	count int
}

func typeCounts(records []intake.Record) []nameCount {
	return sortedCounts(records, func(rec intake.Record) string { return rec.ItemType })
}

func methodCounts(records []intake.Record) []nameCount {
	return sortedCounts(records, func(rec intake.Record) string { return rec.DestructionMethod })
}

func sortedCounts(records []intake.Record, key func(intake.Record) string) []nameCount {
	counts := make(map[string]int)
	for _, rec := range records {
		if k := key(rec); k != "" {
			counts[k]++
		}
	}
	out := make([]nameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, nameCount{name, count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func countCompleted(records []intake.Record, done func(intake.Record) bool) int {
	n := 0
	for _, rec := range records {
		if done(rec) {
			n++
		}
	}
	return n
}

func doneOrPending(done bool) string {
	if done {
		return "Done"
	}
	return "Pending"
}

func listPDFs(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, filepath.Base(m))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}
