// Package evidence organises photographic destruction evidence into job
// folders and links photos back to asset records.
package evidence

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ewaste-tracker/internal/catalog"
	"ewaste-tracker/internal/timeutil"
)

var ErrNoJobFolder = errors.New("no job folder found")

// Stages are the process-stage folders created inside every job folder.
var Stages = []string{
	"before_destruction",
	"during_destruction",
	"after_destruction",
	"proof_sheets",
}

// Organizer manages one photo evidence base directory.
type Organizer struct {
	baseDir string
}

func NewOrganizer(baseDir string) *Organizer {
	return &Organizer{baseDir: baseDir}
}

// CreateJobFolders builds the folder layout for one destruction job: a
// timestamped job directory holding one folder per photo-requiring item type
// plus the process-stage folders. Returns the job directory path and the
// created folder paths keyed by item type code.
func (o *Organizer) CreateJobFolders(jobName string) (string, map[string]string, error) {
	jobDir := filepath.Join(o.baseDir, jobName+"_"+timeutil.FileStamp())

	typeFolders := make(map[string]string)
	for _, t := range catalog.All() {
		if !t.RequiresPhoto {
			continue
		}
		dir := filepath.Join(jobDir, t.FolderName())
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", nil, fmt.Errorf("creating folder for %s: %w", t.Code, err)
		}
		typeFolders[t.Code] = dir
	}
	for _, stage := range Stages {
		if err := os.MkdirAll(filepath.Join(jobDir, stage), 0o755); err != nil {
			return "", nil, fmt.Errorf("creating stage folder %s: %w", stage, err)
		}
	}
	return jobDir, typeFolders, nil
}

// PhotoFilename builds the standard evidence filename,
// ASSETID_STAGE_SEQ_TIMESTAMP.jpg.
func PhotoFilename(assetID, stage string, sequence int) string {
	return fmt.Sprintf("%s_%s_%02d_%s.jpg", assetID, stage, sequence, timeutil.FileStamp())
}

// LinkPhotoToAsset returns the path to store in the intake log: relative to
// the parent of the evidence base directory when possible, absolute otherwise.
func (o *Organizer) LinkPhotoToAsset(photoPath string) string {
	rel, err := filepath.Rel(filepath.Dir(o.baseDir), photoPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return photoPath
	}
	return rel
}

// CopyPhotoToEvidence copies a photo into the latest job folder under the
// item type's folder, renamed to the standard convention. Returns the
// destination path.
func (o *Organizer) CopyPhotoToEvidence(sourcePath, assetID, typeCode, stage string, sequence int) (string, error) {
	t, err := catalog.Lookup(typeCode)
	if err != nil {
		return "", err
	}

	jobDir, err := o.latestJobDir()
	if err != nil {
		return "", err
	}

	destDir := filepath.Join(jobDir, t.FolderName())
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("creating destination folder: %w", err)
	}
	destPath := filepath.Join(destDir, PhotoFilename(assetID, stage, sequence))

	src, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("opening source photo: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("creating evidence photo: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("copying photo: %w", err)
	}
	return destPath, nil
}

// Inventory summarises the photos under one job folder.
type Inventory struct {
	JobFolder   string
	TotalPhotos int
	ByFolder    map[string]int
	ByStage     map[string]int
	Files       []string
}

// BuildInventory scans a job folder recursively for image files. With an
// empty jobFolder the latest job under the base directory is used.
func (o *Organizer) BuildInventory(jobFolder string) (Inventory, error) {
	dir := jobFolder
	if dir == "" {
		latest, err := o.latestJobDir()
		if err != nil {
			return Inventory{}, err
		}
		dir = latest
	}

	inv := Inventory{
		JobFolder: dir,
		ByFolder:  make(map[string]int),
		ByStage:   make(map[string]int),
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isImage(path) {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		inv.TotalPhotos++
		inv.Files = append(inv.Files, rel)
		inv.ByFolder[filepath.Base(filepath.Dir(path))]++

		// Stage is the second underscore token of the conventional name.
		// Non-conforming names are simply not stage-counted.
		stem := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		if parts := strings.Split(stem, "_"); len(parts) > 1 {
			inv.ByStage[parts[1]]++
		}
		return nil
	})
	if err != nil {
		return Inventory{}, fmt.Errorf("scanning job folder: %w", err)
	}
	sort.Strings(inv.Files)
	return inv, nil
}

// PhotosForAsset finds every photo whose filename contains the asset id,
// searching the named job folder or the latest one.
func (o *Organizer) PhotosForAsset(assetID, jobFolder string) ([]string, error) {
	dir := filepath.Join(o.baseDir, jobFolder)
	if jobFolder == "" {
		latest, err := o.latestJobDir()
		if err != nil {
			return nil, err
		}
		dir = latest
	}

	var photos []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isImage(path) && strings.Contains(d.Name(), assetID) {
			photos = append(photos, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("searching for asset photos: %w", err)
	}
	sort.Strings(photos)
	return photos, nil
}

// ListJobFolders returns every job folder name under the base directory,
// newest first.
func (o *Organizer) ListJobFolders() ([]string, error) {
	entries, err := os.ReadDir(o.baseDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing job folders: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

func (o *Organizer) latestJobDir() (string, error) {
	names, err := o.ListJobFolders()
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", ErrNoJobFolder
	}
	return filepath.Join(o.baseDir, names[0]), nil
}

func isImage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}
