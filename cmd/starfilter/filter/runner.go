package filter

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yourusername/starfilter/cmd/starfilter/catalog"
)

// Catalog locations, relative to the working directory.
const (
	StarsPath     = "src/catalogs/hd.json"
	AsterismsPath = "src/catalogs/asterisms.json"
	OutputPath    = "src/catalogs/hd_filtered.json"
)

// ErrWrite reports a filtered catalog that could not be written.
var ErrWrite = errors.New("filtered catalog not writable")

// Paths locates the input catalogs and the output file.
type Paths struct {
	Stars     string
	Asterisms string
	Output    string
}

// DefaultPaths returns the fixed catalog locations.
func DefaultPaths() Paths {
	return Paths{
		Stars:     StarsPath,
		Asterisms: AsterismsPath,
		Output:    OutputPath,
	}
}

// Options controls one filter run.
type Options struct {
	Criteria Criteria

	// DryRun leaves the output file untouched.
	DryRun bool

	// Diff writes a unified diff of the output file changes to the
	// runner's diff writer.
	Diff bool
}

// Result summarises a filter run.
type Result struct {
	Stars         int
	Asterisms     int
	AsterismStars int
	Predicates    int
	Kept          int
	Written       bool
	Duration      time.Duration
}

// Runner executes the filter pipeline: load both catalogs, index the
// asterisms, filter the stars, report the count and persist the selection.
type Runner struct {
	paths   Paths
	out     io.Writer
	diffOut io.Writer
}

// NewRunner creates a runner that prints the kept count to out and diffs to
// diffOut.
func NewRunner(paths Paths, out, diffOut io.Writer) *Runner {
	return &Runner{
		paths:   paths,
		out:     out,
		diffOut: diffOut,
	}
}

// Run executes one filter pass. Any failure aborts the run; the output file
// is written only after the count has been reported.
func (r *Runner) Run(opts Options) (*Result, error) {
	startTime := time.Now()

	stars, err := catalog.LoadStars(r.paths.Stars)
	if err != nil {
		return nil, err
	}

	asterisms, err := catalog.LoadAsterisms(r.paths.Asterisms)
	if err != nil {
		return nil, err
	}

	idx := catalog.NewAsterismIndex(asterisms)

	preds := Compose(opts.Criteria, idx)
	if len(preds) == 0 {
		log.Warn().Msg("No filter criteria given, every star will be filtered out")
	}

	ceiling, hasCeiling := opts.Criteria.MagnitudeCeiling()
	log.Debug().
		Bool("magnitude", hasCeiling).
		Float64("ceiling", ceiling).
		Bool("include_asterisms", opts.Criteria.IncludeAsterisms()).
		Int("predicates", len(preds)).
		Msg("Composed star filter")

	kept := Apply(stars, Any(preds))

	if _, err := fmt.Fprintln(r.out, len(kept)); err != nil {
		return nil, fmt.Errorf("reporting count: %w", err)
	}

	result := &Result{
		Stars:         len(stars),
		Asterisms:     len(asterisms),
		AsterismStars: idx.Len(),
		Predicates:    len(preds),
		Kept:          len(kept),
	}

	if opts.DryRun && !opts.Diff {
		log.Info().Int("kept", len(kept)).Msg("Dry run, output not written")
		result.Duration = time.Since(startTime)
		return result, nil
	}

	doc, err := catalog.EncodeStars(kept)
	if err != nil {
		return nil, fmt.Errorf("encoding filtered catalog: %w", err)
	}

	if opts.Diff {
		if err := r.writeDiff(doc); err != nil {
			return nil, err
		}
	}

	if !opts.DryRun {
		if err := os.WriteFile(r.paths.Output, doc, 0o644); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrWrite, r.paths.Output, err)
		}
		result.Written = true
	}

	result.Duration = time.Since(startTime)

	log.Info().
		Int("stars", result.Stars).
		Int("kept", result.Kept).
		Bool("written", result.Written).
		Str("path", r.paths.Output).
		Dur("duration", result.Duration).
		Msg("Filter completed")

	return result, nil
}

// writeDiff compares doc against the current output file. A missing output
// file diffs as empty.
func (r *Runner) writeDiff(doc []byte) error {
	existing, err := os.ReadFile(r.paths.Output)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading %s for diff: %w", r.paths.Output, err)
	}

	diff, err := ComputeDiff(string(existing), string(doc), r.paths.Output, "proposed")
	if err != nil {
		return err
	}

	if err := WriteDiff(r.diffOut, diff); err != nil {
		return fmt.Errorf("writing diff: %w", err)
	}
	return nil
}
