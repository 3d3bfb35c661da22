package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"payslip-processor/internal/domain"
)

// Coordinator drives the per-task pipeline: split, per-page text acquisition
// and extraction, filing by employee, then publication of the organized tree.
// Pages within one task are processed strictly sequentially; collision
// suffixes depend on that ordering.
type Coordinator struct {
	splitter   domain.PageSplitter
	acquirer   domain.TextAcquirer
	identity   *IdentityExtractor
	period     *PeriodExtractor
	organizer  *Organizer
	outputRoot string
	logger     domain.Logger
	now        func() time.Time
	tempRoot   string
}

// NewCoordinator creates a new pipeline coordinator
func NewCoordinator(
	splitter domain.PageSplitter,
	acquirer domain.TextAcquirer,
	identity *IdentityExtractor,
	period *PeriodExtractor,
	organizer *Organizer,
	outputRoot string,
	logger domain.Logger,
) *Coordinator {
	return &Coordinator{
		splitter:   splitter,
		acquirer:   acquirer,
		identity:   identity,
		period:     period,
		organizer:  organizer,
		outputRoot: outputRoot,
		logger:     logger,
		now:        time.Now,
		tempRoot:   os.TempDir(),
	}
}

// Process runs the whole pipeline for one uploaded document. Per-page
// extraction problems are absorbed into fallback naming and recorded; only
// structural failures (unreadable source, publication errors) return an
// error, after removing the task's temporary artifacts and the upload.
func (c *Coordinator) Process(ctx context.Context, taskID, inputPath string, progress domain.ProgressFunc) (result *domain.TaskResult, err error) {
	taskDir := filepath.Join(c.tempRoot, "payslip_task_"+taskID)
	pagesDir := filepath.Join(taskDir, "pages")
	stagingDir := filepath.Join(taskDir, "final")

	defer func() {
		if err != nil {
			os.RemoveAll(taskDir)
			os.Remove(inputPath)
		}
	}()

	for _, dir := range []string{pagesDir, stagingDir} {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return nil, fmt.Errorf("creating task directories: %w", mkErr)
		}
	}

	report := func(phase string, current, total int) {
		if progress != nil {
			progress(phase, current, total)
		}
	}

	report("Splitting PDF", 0, 0)
	pages, err := c.splitter.Split(ctx, inputPath, pagesDir)
	if err != nil {
		return nil, err
	}

	result = &domain.TaskResult{
		TotalPages:        len(pages),
		PerEmployeeCounts: make(map[string]int),
	}
	employees := make(map[string]struct{})

	for _, page := range pages {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
			return nil, err
		}
		report(fmt.Sprintf("Processing payslip %d/%d", page.Index, len(pages)), page.Index, len(pages))

		pr := c.processPage(ctx, page, stagingDir)
		result.Pages = append(result.Pages, pr)
		result.ProcessedPages++
		if pr.UsedFallback {
			result.FallbackCount++
		} else if pr.Identity != nil {
			result.PerEmployeeCounts[pr.Identity.EmployeeID]++
		}
		if pr.Error != "" {
			result.Failures = append(result.Failures, pr)
			continue
		}
		result.FileCount++
		employees[pr.Identity.EmployeeID] = struct{}{}
	}
	result.EmployeeCount = len(employees)

	report("Organizing files by employee", len(pages), len(pages))
	outputDir, err := c.organizer.Publish(stagingDir, c.outputRoot, taskID)
	if err != nil {
		return nil, err
	}
	result.OutputDir = outputDir

	// Placed paths pointed into the staging tree; rebase them onto the
	// published location.
	for i := range result.Pages {
		if result.Pages[i].FinalPath == "" {
			continue
		}
		if rel, relErr := filepath.Rel(stagingDir, result.Pages[i].FinalPath); relErr == nil {
			result.Pages[i].FinalPath = filepath.Join(outputDir, rel)
		}
	}

	os.Remove(inputPath)
	os.RemoveAll(taskDir)

	c.logger.Info("Task completed",
		"task_id", taskID,
		"pages", result.TotalPages,
		"files", result.FileCount,
		"employees", result.EmployeeCount,
		"fallbacks", result.FallbackCount)
	return result, nil
}

// processPage resolves one page to its final location. Identity extraction
// runs against native text first; if nothing matches, the page is re-acquired
// with forced recognition and retried. A page that still has no identity gets
// a synthesized one and is filed anyway.
func (c *Coordinator) processPage(ctx context.Context, page domain.PageUnit, stagingDir string) domain.PageResult {
	acq := c.acquirer.Acquire(ctx, page.Path, false)
	identity := c.identity.Extract(acq.RawText)

	var period domain.PeriodInfo
	havePeriod := false
	if strings.TrimSpace(acq.RawText) != "" {
		period = c.period.Extract(acq.RawText)
		havePeriod = true
	}

	if identity == nil {
		ocr := c.acquirer.Acquire(ctx, page.Path, true)
		if strings.TrimSpace(ocr.RawText) != "" {
			identity = c.identity.Extract(ocr.RawText)
			if identity != nil {
				acq = ocr
			}
			if !havePeriod {
				period = c.period.Extract(ocr.RawText)
				havePeriod = true
			}
		}
	}
	if !havePeriod {
		period = c.period.Extract("")
	}

	usedFallback := false
	if identity == nil {
		identity = FallbackIdentity(page.Index, c.now())
		usedFallback = true
		c.logger.Debug("No identity found, using fallback", "page", page.Index, "employee_id", identity.EmployeeID)
	}

	pr := domain.PageResult{
		PageIndex:    page.Index,
		Identity:     identity,
		Period:       period,
		UsedFallback: usedFallback,
		TextSource:   acq.Source,
	}

	filename := PayslipFilename(identity, period)
	finalPath, err := c.organizer.Place(page.Path, stagingDir, identity.EmployeeID, filename)
	if err != nil {
		c.logger.Warn("Failed to place page file", "page", page.Index, "error", err)
		pr.Error = err.Error()
		return pr
	}
	pr.FinalPath = finalPath
	return pr
}
