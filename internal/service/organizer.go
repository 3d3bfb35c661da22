package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"payslip-processor/internal/domain"
)

// Organizer places finished page files into per-employee directories and
// publishes the organized tree to the output root.
type Organizer struct {
	logger domain.Logger
}

// NewOrganizer creates a new organizer instance
func NewOrganizer(logger domain.Logger) *Organizer {
	return &Organizer{logger: logger}
}

// Place moves a page file into stagingDir/<employeeID>/<filename>, creating
// the employee directory idempotently and resolving filename collisions
// against the directory's current contents immediately before the move.
func (o *Organizer) Place(pageFile, stagingDir, employeeID, filename string) (string, error) {
	employeeDir := filepath.Join(stagingDir, employeeID)
	if err := os.MkdirAll(employeeDir, 0o755); err != nil {
		return "", fmt.Errorf("creating employee directory %s: %w", employeeID, err)
	}

	resolved := ResolveCollision(employeeDir, filename)
	finalPath := filepath.Join(employeeDir, resolved)
	if err := moveFile(pageFile, finalPath); err != nil {
		return "", fmt.Errorf("placing %s: %w", resolved, err)
	}
	return finalPath, nil
}

// Publish relocates the organized staging tree to its final location under
// outputRoot. This is the task's commit point; a failure here is fatal.
func (o *Organizer) Publish(stagingDir, outputRoot, taskID string) (string, error) {
	if err := os.MkdirAll(outputRoot, 0o755); err != nil {
		return "", fmt.Errorf("creating output root: %w", err)
	}
	outputDir := filepath.Join(outputRoot, "processed_payslips_"+taskID)
	if err := os.Rename(stagingDir, outputDir); err == nil {
		o.logger.Info("Published organized payslips", "output_dir", outputDir)
		return outputDir, nil
	}

	// The target may already exist (a rerun against the same output root) or
	// live on another device. Merge file-by-file, resolving name collisions
	// against what is already there instead of overwriting.
	if err := mergeTree(stagingDir, outputDir); err != nil {
		return "", fmt.Errorf("publishing results: %w", err)
	}
	if err := os.RemoveAll(stagingDir); err != nil {
		o.logger.Warn("Could not remove staging directory", "path", stagingDir, "error", err)
	}
	o.logger.Info("Published organized payslips", "output_dir", outputDir)
	return outputDir, nil
}

// Listing returns the externally observable result shape: one entry per
// employee folder, mapping to the sorted PDF filenames inside it.
func (o *Organizer) Listing(outputDir string) (map[string][]string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil, err
	}

	structure := make(map[string][]string)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		files, err := os.ReadDir(filepath.Join(outputDir, entry.Name()))
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(files))
		for _, f := range files {
			if f.IsDir() || !strings.EqualFold(filepath.Ext(f.Name()), ".pdf") {
				continue
			}
			names = append(names, f.Name())
		}
		sort.Strings(names)
		structure[entry.Name()] = names
	}
	return structure, nil
}

// moveFile renames src to dst, falling back to copy+remove when rename fails
// (e.g. across filesystems).
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}

// mergeTree moves every file under src into the corresponding directory
// under dst, appending collision suffixes where a name is taken. Directories
// are created idempotently.
func mergeTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		targetDir := filepath.Dir(target)
		resolved := ResolveCollision(targetDir, filepath.Base(target))
		return moveFile(path, filepath.Join(targetDir, resolved))
	})
}
