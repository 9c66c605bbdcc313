package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lumen/internal/diagfmt"
	"lumen/internal/driver"
	"lumen/internal/observ"
	"lumen/internal/project"
	"lumen/internal/resolve"
)

var finalizeCmd = &cobra.Command{
	Use:   "finalize [flags] <directory>",
	Short: "Finalize recorded call resolutions",
	Long:  `Finalize every *.call.toml fixture under a directory: replay diagnostics, reconcile argument types and run call checkers`,
	Args:  cobra.ExactArgs(1),
	RunE:  runFinalize,
}

func init() {
	finalizeCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	finalizeCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	finalizeCmd.Flags().Bool("disk-cache", false, "enable the persistent result cache")
}

func runFinalize(cmd *cobra.Command, args []string) error {
	dir := args[0]

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	useDiskCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor, err := colorEnabled(colorMode, os.Stdout)
	if err != nil {
		return err
	}

	cfg := project.DefaultConfig()
	manifest, found, err := project.Load(dir)
	if err != nil {
		return err
	}
	if found {
		cfg = manifest.Config
	}
	if !cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		maxDiagnostics = cfg.Finalize.MaxDiagnostics
	}

	var checkers []resolve.CallChecker
	if cfg.Checkers.Deprecation {
		checkers = append(checkers, resolve.DeprecationChecker{})
	}
	if cfg.Checkers.DefaultedParameters {
		checkers = append(checkers, resolve.DefaultedParameterChecker{})
	}

	var cache *driver.DiskCache
	if useDiskCache || cfg.Finalize.CacheDir != "" {
		cacheDir := cfg.Finalize.CacheDir
		if cacheDir != "" && found && !filepath.IsAbs(cacheDir) {
			cacheDir = filepath.Join(manifest.Root, cacheDir)
		}
		cache, err = driver.OpenDiskCache("lumen", cacheDir)
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
	}

	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
	}

	fileSet, results, err := driver.FinalizeDir(cmd.Context(), dir, driver.FinalizeOptions{
		MaxDiagnostics:          maxDiagnostics,
		Jobs:                    jobs,
		Checkers:                checkers,
		ReportMissingDiagnostic: cfg.Finalize.ReportMissingDiagnostic,
		Cache:                   cache,
		Timer:                   timer,
	})
	if err != nil {
		return err
	}

	prettyOpts := diagfmt.PrettyOpts{Color: useColor, ShowNotes: withNotes}
	calls, cached, hasErrors := 0, 0, false
	for _, r := range results {
		if r.Outcome != nil {
			calls += len(r.Outcome.Calls)
		}
		if r.FromCache {
			cached++
		}
		if r.Bag.HasErrors() {
			hasErrors = true
		}
		r.Bag.Sort()
		diagfmt.Pretty(cmd.OutOrStdout(), r.Bag, fileSet, prettyOpts)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d fixture(s), %d call(s) finalized, %d from cache\n",
		len(results), calls, cached)

	if timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}

	if hasErrors {
		cmd.SilenceUsage = true
		return fmt.Errorf("finalization reported errors")
	}
	return nil
}
