package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"lumen/internal/diag"
	"lumen/internal/observ"
	"lumen/internal/project"
	"lumen/internal/resolve"
	"lumen/internal/source"
)

// FinalizeDirResult holds the outcome for one fixture file.
type FinalizeDirResult struct {
	Path      string
	FileID    source.FileID
	Bag       *diag.Bag
	Outcome   *FixtureOutcome // nil when the fixture failed to load
	FromCache bool
}

// FinalizeOptions configures a FinalizeDir run.
type FinalizeOptions struct {
	MaxDiagnostics int
	Jobs           int
	Checkers       []resolve.CallChecker
	// ReportMissingDiagnostic enables the fallback for failed calls whose
	// diagnostics produced no report.
	ReportMissingDiagnostic bool
	// Cache, when non-nil, replays previously finalized fixtures by content
	// digest instead of rerunning them.
	Cache *DiskCache
	// Timer, when non-nil, records the scan and finalize phases.
	Timer *observ.Timer
}

// listFixtureFiles returns the sorted list of *.call.toml files under dir.
func listFixtureFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, FixtureSuffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Sort for deterministic order.
	sort.Strings(files)
	return files, nil
}

// displayName is the virtual file name a fixture's source text is registered
// under: the fixture path with the .call.toml suffix swapped for .lm.
func displayName(path string) string {
	return strings.TrimSuffix(path, FixtureSuffix) + ".lm"
}

// loadedFixture is one preloaded fixture awaiting finalization.
type loadedFixture struct {
	fixture  *Fixture
	fileID   source.FileID
	digest   project.Digest
	loadErr  error
	loadCode diag.Code
}

// FinalizeDir finalizes every *.call.toml fixture under dir in parallel.
// Fixtures are preloaded sequentially (the FileSet is not synchronized),
// then finalized with at most opts.Jobs goroutines. Results keep the sorted
// file order; a file that failed to load still yields a result carrying the
// I/O diagnostic.
func FinalizeDir(ctx context.Context, dir string, opts FinalizeOptions) (*source.FileSet, []FinalizeDirResult, error) {
	var scanPhase int
	if opts.Timer != nil {
		scanPhase = opts.Timer.Begin("scan")
	}
	files, err := listFixtureFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	loaded := make([]loadedFixture, len(files))
	for i, path := range files {
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from the scanned directory
		if err != nil {
			loaded[i] = loadedFixture{loadErr: err, loadCode: diag.IOLoadFileError}
			continue
		}
		fx, err := ParseFixture(path, data)
		if err != nil {
			loaded[i] = loadedFixture{loadErr: err, loadCode: diag.IOFixtureError}
			continue
		}
		loaded[i] = loadedFixture{
			fixture: fx,
			fileID:  fileSet.AddVirtual(displayName(path), []byte(fx.Source)),
			digest:  project.HashBytes(data),
		}
	}
	if opts.Timer != nil {
		opts.Timer.End(scanPhase, pluralFiles(len(files)))
	}

	if len(files) == 0 {
		return fileSet, nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	var finalizePhase int
	if opts.Timer != nil {
		finalizePhase = opts.Timer.Begin("finalize")
	}

	// Indices are unique per goroutine, no mutex needed.
	results := make([]FinalizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = finalizeOne(path, &loaded[i], &opts)
			return nil
		})
	}

	err = g.Wait()
	if opts.Timer != nil {
		opts.Timer.End(finalizePhase, "")
	}
	return fileSet, results, err
}

func finalizeOne(path string, lf *loadedFixture, opts *FinalizeOptions) FinalizeDirResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	result := FinalizeDirResult{Path: path, FileID: lf.fileID, Bag: bag}

	if lf.loadErr != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     lf.loadCode,
			Message:  lf.loadErr.Error(),
		})
		return result
	}

	if payload, ok := cacheGet(opts.Cache, lf.digest, bag); ok {
		result.Outcome = replayPayload(payload, lf.fileID, bag)
		result.FromCache = true
		return result
	}

	outcome, err := RunFixture(lf.fixture, lf.fileID, &diag.BagReporter{Bag: bag}, opts.Checkers, opts.ReportMissingDiagnostic)
	if err != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOFixtureError,
			Message:  err.Error(),
		})
		return result
	}
	result.Outcome = outcome

	cachePut(opts.Cache, path, lf.digest, outcome, bag)
	return result
}

func cacheGet(cache *DiskCache, key project.Digest, bag *diag.Bag) (*DiskPayload, bool) {
	if cache == nil {
		return nil, false
	}
	var payload DiskPayload
	hit, err := cache.Get(key, &payload)
	if err != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.IOCacheReadError,
			Message:  err.Error(),
		})
		return nil, false
	}
	if !hit {
		return nil, false
	}
	return &payload, true
}

func cachePut(cache *DiskCache, path string, key project.Digest, outcome *FixtureOutcome, bag *diag.Bag) {
	if cache == nil {
		return
	}
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        path,
		ContentHash: key,
		Calls:       make([]CachedCall, 0, len(outcome.Calls)),
		Diagnostics: make([]CachedDiagnostic, 0, bag.Len()),
	}
	for _, c := range outcome.Calls {
		payload.Calls = append(payload.Calls, CachedCall{Callee: c.Callee, Status: uint8(c.Status)})
	}
	for _, d := range bag.Items() {
		payload.Diagnostics = append(payload.Diagnostics, CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		})
	}
	if err := cache.Put(key, payload); err != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.IOCacheWriteError,
			Message:  err.Error(),
		})
	}
}

// replayPayload reconstructs a cached result. Byte offsets transfer to the
// freshly registered virtual file because the content digest matched.
func replayPayload(payload *DiskPayload, fileID source.FileID, bag *diag.Bag) *FixtureOutcome {
	outcome := &FixtureOutcome{Calls: make([]CallOutcome, 0, len(payload.Calls))}
	for _, c := range payload.Calls {
		outcome.Calls = append(outcome.Calls, CallOutcome{Callee: c.Callee, Status: resolve.Status(c.Status)})
	}
	for _, d := range payload.Diagnostics {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(d.Severity),
			Code:     diag.Code(d.Code),
			Message:  d.Message,
			Primary:  source.Span{File: fileID, Start: d.Start, End: d.End},
		})
	}
	return outcome
}

func pluralFiles(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}
