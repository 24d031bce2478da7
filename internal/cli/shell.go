// Package cli implements the interactive menu front end for destruction
// jobs: intake logging, task recording, photo evidence and document
// generation.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"ewaste-tracker/internal/catalog"
	"ewaste-tracker/internal/config"
	"ewaste-tracker/internal/evidence"
	"ewaste-tracker/internal/intake"
	"ewaste-tracker/internal/lifecycle"
	"ewaste-tracker/internal/report"
	"ewaste-tracker/internal/timeutil"
)

// Shell drives the menu loop. Input and output are injected so tests can
// script a session.
type Shell struct {
	cfg      *config.Config
	store    *intake.Store
	photos   *evidence.Organizer
	renderer *report.Renderer
	in       *bufio.Scanner
	out      io.Writer
	eof      bool
}

func NewShell(cfg *config.Config, store *intake.Store, photos *evidence.Organizer, renderer *report.Renderer, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		cfg:      cfg,
		store:    store,
		photos:   photos,
		renderer: renderer,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run loops over the main menu until the user quits or input ends. Flow
// errors are printed and never terminate the loop.
func (s *Shell) Run() error {
	for {
		s.header()
		s.menu()

		choice := strings.ToUpper(s.prompt("Select option", ""))
		if s.eof {
			return nil
		}

		var err error
		switch choice {
		case "1":
			err = s.intakeSingle()
		case "2":
			err = s.intakeBatch()
		case "3":
			err = s.intakeSummary()
		case "4":
			err = s.recordDataWipe()
		case "5":
			err = s.recordDestruction()
		case "6":
			err = s.recordLabelRemoval()
		case "7":
			err = s.setupPhotoFolders()
		case "8":
			s.photoGuide()
		case "9":
			err = s.photoInventory()
		case "10":
			err = s.individualCertificate()
		case "11":
			err = s.batchCertificate()
		case "12":
			err = s.finalReport()
		case "13":
			err = s.attachPhoto()
		case "14":
			err = s.exportSummaryCSV()
		case "H":
			s.help()
		case "Q":
			if s.confirm("Are you sure you want to quit?") {
				fmt.Fprintln(s.out, "\nGoodbye.")
				return nil
			}
		default:
			fmt.Fprintf(s.out, "Unknown option: %s\n", choice)
		}

		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func (s *Shell) header() {
	line := strings.Repeat("=", 70)
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, line)
	fmt.Fprintf(s.out, "%s - %s (%s)\n", s.cfg.Organisation.Name, s.cfg.Client.Name, s.cfg.Client.JobType)
	fmt.Fprintln(s.out, line)
}

func (s *Shell) menu() {
	options := []struct{ key, label string }{
		{"1", "Log single item (intake)"},
		{"2", "Log batch items (intake)"},
		{"3", "View intake summary"},
		{"4", "Record data wipe"},
		{"5", "Record destruction"},
		{"6", "Record label removal"},
		{"7", "Set up photo folders"},
		{"8", "View photo guide"},
		{"9", "Photo inventory"},
		{"10", "Generate individual certificate"},
		{"11", "Generate batch certificate"},
		{"12", "Generate final report"},
		{"13", "Attach photo to asset"},
		{"14", "Export summary CSV"},
		{"H", "Help"},
		{"Q", "Quit"},
	}

	fmt.Fprintln(s.out, "\nMAIN MENU")
	fmt.Fprintln(s.out, strings.Repeat("-", 40))
	for _, opt := range options {
		fmt.Fprintf(s.out, "  [%s] %s\n", opt.key, opt.label)
	}
	fmt.Fprintln(s.out, strings.Repeat("-", 40))
}

// ---- intake flows ----

func (s *Shell) intakeSingle() error {
	s.title("SINGLE ITEM INTAKE")
	s.listItemTypes()

	t, err := catalog.Lookup(strings.ToUpper(s.prompt("Item type code", "")))
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "\nSelected: %s\n%s\n", t.Name, t.Description)

	serial := s.prompt("Serial number (blank if none)", "")
	condition := s.pickCondition()
	notes := s.prompt("Notes", "")

	rec, err := s.store.Create(t.Code, serial, condition, notes)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "\nAsset record created:\n  Asset ID:  %s\n  Item type: %s\n  Condition: %s\n", rec.AssetID, rec.ItemType, rec.Condition)

	if !s.confirm("Save record?") {
		fmt.Fprintln(s.out, "Record discarded")
		return nil
	}
	if err := s.store.Save([]intake.Record{rec}, true); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Record saved to %s\n", s.store.Path())
	return nil
}

func (s *Shell) intakeBatch() error {
	s.title("BATCH ITEM INTAKE")
	s.listItemTypes()

	t, err := catalog.Lookup(strings.ToUpper(s.prompt("Item type code", "")))
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "\nSelected: %s (expected quantity %d)\n", t.Name, t.ExpectedQuantity)

	quantity, err := strconv.Atoi(s.prompt("Quantity", "1"))
	if err != nil || quantity < 1 {
		return fmt.Errorf("invalid quantity")
	}

	condition := s.pickCondition()
	baseSerial := s.prompt("Base serial (blank if none)", "")
	notes := s.prompt("Notes", "")

	fmt.Fprintf(s.out, "\nAbout to create %d records for %s\n", quantity, t.Name)
	if !s.confirm("Continue?") {
		fmt.Fprintln(s.out, "Batch intake cancelled")
		return nil
	}

	records, err := s.store.CreateBatch(t.Code, quantity, condition, baseSerial, notes)
	if err != nil {
		return err
	}
	if err := s.store.Save(records, true); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%d records saved (%s ... %s)\n", len(records), records[0].AssetID, records[len(records)-1].AssetID)
	return nil
}

func (s *Shell) intakeSummary() error {
	s.title("INTAKE LOG SUMMARY")

	records, err := s.store.LoadAll()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(s.out, "No records found in intake log")
		return nil
	}

	stats := intake.SummaryStats(records)
	fmt.Fprintf(s.out, "\nTotal items:          %d\n", stats.TotalItems)
	fmt.Fprintf(s.out, "Certificates issued:  %d\n", stats.CertificatesIssued)

	fmt.Fprintln(s.out, "\nBy item type:")
	for _, t := range catalog.All() {
		if n := stats.ByType[t.Name]; n > 0 {
			fmt.Fprintf(s.out, "  %-40s %d\n", t.Name, n)
		}
	}

	fmt.Fprintln(s.out, "\nBy condition:")
	for _, c := range catalog.Conditions {
		if n := stats.ByCondition[c]; n > 0 {
			fmt.Fprintf(s.out, "  %-40s %d\n", c, n)
		}
	}

	fmt.Fprintln(s.out, "\nPending tasks:")
	fmt.Fprintf(s.out, "  Label removal: %d\n", stats.LabelRemovalPending)
	fmt.Fprintf(s.out, "  Data wipe:     %d\n", stats.DataWipePending)
	fmt.Fprintf(s.out, "  Destruction:   %d\n", stats.DestructionPending)
	return nil
}

// ---- task recording flows ----

func (s *Shell) recordDataWipe() error {
	s.title("RECORD DATA WIPE")

	records, err := s.store.LoadAll()
	if err != nil {
		return err
	}

	var pending []intake.Record
	for _, r := range records {
		if r.RequiresDataWipe && r.DataWipeDate == "" {
			pending = append(pending, r)
		}
	}
	if len(pending) == 0 {
		fmt.Fprintln(s.out, "No items pending data wipe")
		return nil
	}

	s.listPending(pending, "require data wipe")

	assetID := strings.ToUpper(s.prompt("Enter asset ID", ""))
	rec, ok := intake.FindByID(records, assetID)
	if !ok {
		return fmt.Errorf("%w: %s", intake.ErrNotFound, assetID)
	}
	fmt.Fprintf(s.out, "\nAsset: %s - %s\n", rec.AssetID, rec.ItemType)

	method := s.pickFrom("Data wipe methods", catalog.DataWipeMethods)
	technician := s.prompt("Technician name", "")
	date := timeutil.CurrentDate()

	intake.Update(records, assetID, intake.FieldUpdates{
		DataWipeMethod:     &method,
		DataWipeDate:       &date,
		DataWipeTechnician: &technician,
	})
	if err := s.store.Save(records, false); err != nil {
		return err
	}
	if err := s.store.RecordEvent(records, assetID, lifecycle.StatusInRefurbishment, "Data wipe: "+method, technician); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Data wipe recorded for %s\n", assetID)
	return nil
}

func (s *Shell) recordDestruction() error {
	s.title("RECORD DESTRUCTION")

	records, err := s.store.LoadAll()
	if err != nil {
		return err
	}

	var pending []intake.Record
	for _, r := range records {
		if r.DestructionDate == "" {
			pending = append(pending, r)
		}
	}
	if len(pending) == 0 {
		fmt.Fprintln(s.out, "All items have been destroyed")
		return nil
	}

	s.listPending(pending, "pending destruction")

	fmt.Fprintln(s.out, "\n  [1] Single asset")
	fmt.Fprintln(s.out, "  [2] Every pending item of one type")
	fmt.Fprintln(s.out, "  [3] ALL pending items")
	mode := s.prompt("Select mode", "1")

	var targets []intake.Record
	switch mode {
	case "2":
		typeName := s.prompt("Item type name", "")
		for _, r := range pending {
			if r.ItemType == typeName {
				targets = append(targets, r)
			}
		}
	case "3":
		targets = pending
	default:
		assetID := strings.ToUpper(s.prompt("Enter asset ID", ""))
		rec, ok := intake.FindByID(records, assetID)
		if !ok {
			return fmt.Errorf("%w: %s", intake.ErrNotFound, assetID)
		}
		if rec.DestructionDate != "" {
			return fmt.Errorf("item already destroyed: %s", assetID)
		}
		targets = append(targets, *rec)
	}

	if len(targets) == 0 {
		fmt.Fprintln(s.out, "No matching items found")
		return nil
	}
	if len(targets) > 1 {
		fmt.Fprintf(s.out, "\nAbout to mark %d items as destroyed\n", len(targets))
		if !s.confirm("Continue?") {
			fmt.Fprintln(s.out, "Batch update cancelled")
			return nil
		}
	}

	method := s.pickFrom("Destruction methods", catalog.DestructionMethods)
	technician := s.prompt("Technician name", "")
	date := timeutil.CurrentDate()

	for _, target := range targets {
		intake.Update(records, target.AssetID, intake.FieldUpdates{
			DestructionMethod:     &method,
			DestructionDate:       &date,
			DestructionTechnician: &technician,
		})
	}
	if err := s.store.Save(records, false); err != nil {
		return err
	}
	for _, target := range targets {
		if err := s.store.RecordEvent(records, target.AssetID, lifecycle.StatusRecycled, "Destroyed: "+method, technician); err != nil {
			return err
		}
	}
	fmt.Fprintf(s.out, "%d item(s) marked as destroyed\n", len(targets))
	return nil
}

func (s *Shell) recordLabelRemoval() error {
	s.title("RECORD LABEL REMOVAL")

	records, err := s.store.LoadAll()
	if err != nil {
		return err
	}

	var pending []intake.Record
	for _, r := range records {
		if r.RequiresLabelRemoval && !r.LabelRemovalCompleted {
			pending = append(pending, r)
		}
	}
	if len(pending) == 0 {
		fmt.Fprintln(s.out, "No items pending label removal")
		return nil
	}

	s.listPending(pending, "require label removal")

	assetID := strings.ToUpper(s.prompt("Enter asset ID", ""))
	if _, ok := intake.FindByID(records, assetID); !ok {
		return fmt.Errorf("%w: %s", intake.ErrNotFound, assetID)
	}

	technician := s.prompt("Volunteer name", "")
	done := true
	intake.Update(records, assetID, intake.FieldUpdates{LabelRemovalCompleted: &done})
	if err := s.store.Save(records, false); err != nil {
		return err
	}
	if err := s.store.RecordEvent(records, assetID, lifecycle.StatusInAssessment, "Labels and branding removed", technician); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Label removal recorded for %s\n", assetID)
	return nil
}

// ---- photo evidence flows ----

func (s *Shell) setupPhotoFolders() error {
	s.title("SET UP PHOTO FOLDERS")

	jobName := s.prompt("Job name", "LBQ_Job")
	dir, typeFolders, err := s.photos.CreateJobFolders(jobName)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Folder structure ready: %s\n", dir)

	codes := make([]string, 0, len(typeFolders))
	for code := range typeFolders {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		fmt.Fprintf(s.out, "  %-20s %s\n", code, filepath.Base(typeFolders[code]))
	}
	return nil
}

func (s *Shell) photoGuide() {
	s.title("PHOTO GUIDE")

	fmt.Fprintln(s.out, "\nEach job folder holds one subfolder per item type plus the stages:")
	for _, stage := range evidence.Stages {
		fmt.Fprintf(s.out, "  %s/\n", stage)
	}

	fmt.Fprintln(s.out, "\nItem type folders and requirements:")
	for _, t := range catalog.All() {
		fmt.Fprintf(s.out, "  %-40s %s\n", t.FolderName()+"/", t.Requirements())
	}

	fmt.Fprintln(s.out, "\nName photos after the asset and stage, for example:")
	fmt.Fprintf(s.out, "  %s\n", evidence.PhotoFilename("T10N-20260901-0001", "before", 1))
}

func (s *Shell) attachPhoto() error {
	s.title("ATTACH PHOTO TO ASSET")

	records, err := s.store.LoadAll()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(s.out, "No records found")
		return nil
	}

	assetID := strings.ToUpper(s.prompt("Enter asset ID", ""))
	rec, ok := intake.FindByID(records, assetID)
	if !ok {
		return fmt.Errorf("%w: %s", intake.ErrNotFound, assetID)
	}

	t, ok := catalog.LookupByName(rec.ItemType)
	if !ok {
		return fmt.Errorf("record has unknown item type: %s", rec.ItemType)
	}

	sourcePath := s.prompt("Path to photo file", "")
	stage := s.pickFrom("Stage", []string{"before", "during", "after"})

	existing, err := s.photos.PhotosForAsset(assetID, "")
	if err != nil && !errors.Is(err, evidence.ErrNoJobFolder) {
		return err
	}

	destPath, err := s.photos.CopyPhotoToEvidence(sourcePath, assetID, t.Code, stage, len(existing)+1)
	if err != nil {
		return err
	}

	linked := s.photos.LinkPhotoToAsset(destPath)
	intake.Update(records, assetID, intake.FieldUpdates{PhotoEvidencePath: &linked})
	if err := s.store.Save(records, false); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Photo stored as %s\n", destPath)
	return nil
}

func (s *Shell) photoInventory() error {
	s.title("PHOTO INVENTORY")

	inv, err := s.photos.BuildInventory("")
	if err != nil {
		if errors.Is(err, evidence.ErrNoJobFolder) {
			fmt.Fprintln(s.out, "No photos found in evidence folders")
			return nil
		}
		return err
	}
	if inv.TotalPhotos == 0 {
		fmt.Fprintln(s.out, "No photos found in evidence folders")
		return nil
	}

	fmt.Fprintf(s.out, "\nJob folder:   %s\n", filepath.Base(inv.JobFolder))
	fmt.Fprintf(s.out, "Total photos: %d\n", inv.TotalPhotos)

	fmt.Fprintln(s.out, "\nBy folder:")
	printCounts(s.out, inv.ByFolder)
	fmt.Fprintln(s.out, "\nBy stage:")
	printCounts(s.out, inv.ByStage)
	return nil
}

func printCounts(out io.Writer, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "  %-40s %d\n", k, counts[k])
	}
}

// ---- document flows ----

func (s *Shell) individualCertificate() error {
	s.title("GENERATE INDIVIDUAL CERTIFICATE")

	records, err := s.store.LoadAll()
	if err != nil {
		return err
	}

	var eligible []intake.Record
	for _, r := range records {
		if r.DestructionDate != "" && !r.CertificateIssued {
			eligible = append(eligible, r)
		}
	}
	if len(eligible) == 0 {
		fmt.Fprintln(s.out, "No items eligible for certificates")
		fmt.Fprintln(s.out, "(Items must be destroyed and not already certified)")
		return nil
	}

	s.listPending(eligible, "eligible for certificates")

	assetID := strings.ToUpper(s.prompt("Enter asset ID", ""))
	rec, ok := intake.FindByID(records, assetID)
	if !ok {
		return fmt.Errorf("%w: %s", intake.ErrNotFound, assetID)
	}
	if rec.DestructionDate == "" {
		return fmt.Errorf("item not yet destroyed: %s", assetID)
	}

	path, err := s.renderer.WriteIndividualCertificate(*rec)
	if err != nil {
		return err
	}

	issued := true
	intake.Update(records, assetID, intake.FieldUpdates{CertificateIssued: &issued})
	if err := s.store.Save(records, false); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Certificate saved to %s\n", path)
	return nil
}

func (s *Shell) batchCertificate() error {
	s.title("GENERATE BATCH CERTIFICATE")

	records, err := s.store.LoadAll()
	if err != nil {
		return err
	}

	var destroyed []intake.Record
	for _, r := range records {
		if r.DestructionDate != "" {
			destroyed = append(destroyed, r)
		}
	}
	if len(destroyed) == 0 {
		fmt.Fprintln(s.out, "No destroyed items found")
		return nil
	}
	fmt.Fprintf(s.out, "\n%d destroyed items found\n", len(destroyed))

	fmt.Fprintln(s.out, "\n  [1] All destroyed items")
	fmt.Fprintln(s.out, "  [2] Specific item type")
	fmt.Fprintln(s.out, "  [3] Date range (DD/MM/YYYY)")
	choice := s.prompt("Select filter", "1")

	items := destroyed
	switch choice {
	case "2":
		typeName := s.prompt("Item type name", "")
		items = intake.FindByType(destroyed, typeName)
	case "3":
		from, err := timeutil.ParseDate(s.prompt("From date", ""))
		if err != nil {
			return fmt.Errorf("invalid from date: %w", err)
		}
		to, err := timeutil.ParseDate(s.prompt("To date", ""))
		if err != nil {
			return fmt.Errorf("invalid to date: %w", err)
		}
		items = nil
		for _, r := range destroyed {
			d, err := timeutil.ParseDate(r.DestructionDate)
			if err != nil {
				continue
			}
			if !d.Before(from) && !d.After(to) {
				items = append(items, r)
			}
		}
	}

	if len(items) == 0 {
		fmt.Fprintln(s.out, "No items match filter")
		return nil
	}

	batchName := s.prompt("Batch name", "LBQ_Batch")
	fmt.Fprintf(s.out, "\nGenerating batch certificate for %d items\n", len(items))
	if !s.confirm("Generate certificate?") {
		return nil
	}

	path, err := s.renderer.WriteBatchCertificate(items, batchName)
	if err != nil {
		return err
	}

	issued := true
	for _, item := range items {
		intake.Update(records, item.AssetID, intake.FieldUpdates{CertificateIssued: &issued})
	}
	if err := s.store.Save(records, false); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Batch certificate saved to %s\n", path)
	return nil
}

func (s *Shell) finalReport() error {
	s.title("GENERATE FINAL COMPLIANCE REPORT")

	records, err := s.store.LoadAll()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(s.out, "No records found")
		return nil
	}

	stats := intake.SummaryStats(records)
	fmt.Fprintf(s.out, "\nTotal items:         %d\n", stats.TotalItems)
	fmt.Fprintf(s.out, "Destroyed:           %d\n", stats.TotalItems-stats.DestructionPending)
	fmt.Fprintf(s.out, "Certificates issued: %d\n", stats.CertificatesIssued)

	inv, err := s.photos.BuildInventory("")
	if err != nil {
		// A job without photos yet still gets a report.
		inv = evidence.Inventory{}
	}
	certs, err := s.renderer.ListCertificates()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Photos found:        %d\n", inv.TotalPhotos)
	fmt.Fprintf(s.out, "Certificates found:  %d\n", len(certs))

	reportName := s.prompt("Report name", "LBQ_Final_Report")
	if !s.confirm("Generate final compliance report?") {
		return nil
	}

	path, err := s.renderer.WriteFinalReport(records, &inv, certs, reportName)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Report saved to %s\n", path)
	return nil
}

func (s *Shell) exportSummaryCSV() error {
	s.title("EXPORT SUMMARY CSV")

	records, err := s.store.LoadAll()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(s.out, "No records found")
		return nil
	}

	path := filepath.Join(s.cfg.Dirs.Reports, "summary_"+timeutil.FileStamp()+".csv")
	if err := os.WriteFile(path, report.SummaryCSV(records), 0o644); err != nil {
		return fmt.Errorf("writing summary csv: %w", err)
	}
	fmt.Fprintf(s.out, "Summary exported to %s\n", path)
	return nil
}

func (s *Shell) help() {
	s.title("HELP")
	fmt.Fprintln(s.out, `
Workflow for a destruction job:

  1. Log every item as it arrives (single or batch intake). Each item
     gets an asset ID like T10N-20260901-0001.
  2. Set up photo folders and collect before/during/after photos named
     after the asset IDs.
  3. Record label removal, data wipes and destruction as they happen.
     Every task recording lands in the audit trail.
  4. Generate certificates for destroyed items, then the final
     compliance report covering the whole job.

Intake logs, audit trails, certificates and reports are written to the
configured directories. Dates use DD/MM/YYYY.`)
}

// ---- prompt helpers ----

func (s *Shell) prompt(label, def string) string {
	if def != "" {
		fmt.Fprintf(s.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(s.out, "%s: ", label)
	}
	if !s.in.Scan() {
		s.eof = true
		return def
	}
	value := strings.TrimSpace(s.in.Text())
	if value == "" {
		return def
	}
	return value
}

func (s *Shell) confirm(message string) bool {
	answer := strings.ToLower(s.prompt(message+" (y/n)", "n"))
	return answer == "y" || answer == "yes"
}

func (s *Shell) title(text string) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, strings.Repeat("=", 60))
	fmt.Fprintln(s.out, text)
	fmt.Fprintln(s.out, strings.Repeat("=", 60))
}

func (s *Shell) listItemTypes() {
	fmt.Fprintln(s.out, "\nItem types:")
	for _, t := range catalog.All() {
		fmt.Fprintf(s.out, "  %-20s %s\n", t.Code, t.Name)
	}
}

func (s *Shell) pickCondition() string {
	fmt.Fprintln(s.out, "\nCondition options:")
	for i, c := range catalog.Conditions {
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, c)
	}
	idx, err := strconv.Atoi(s.prompt("Select condition", "1"))
	if err != nil || idx < 1 || idx > len(catalog.Conditions) {
		idx = 1
	}
	return catalog.Conditions[idx-1]
}

func (s *Shell) pickFrom(label string, options []string) string {
	fmt.Fprintf(s.out, "\n%s:\n", label)
	for i, opt := range options {
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, opt)
	}
	idx, err := strconv.Atoi(s.prompt("Select", "1"))
	if err != nil || idx < 1 || idx > len(options) {
		idx = 1
	}
	return options[idx-1]
}

func (s *Shell) listPending(records []intake.Record, what string) {
	fmt.Fprintf(s.out, "\n%d items %s:\n", len(records), what)
	for i, r := range records {
		if i == 10 {
			fmt.Fprintf(s.out, "  ... and %d more\n", len(records)-10)
			break
		}
		fmt.Fprintf(s.out, "  %d. %s - %s\n", i+1, r.AssetID, r.ItemType)
	}
}
