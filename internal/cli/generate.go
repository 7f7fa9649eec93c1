package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	errs "github.com/trovekit/trove/pkg/errors"

	"github.com/trovekit/trove/internal/gen"
	"github.com/trovekit/trove/pkg/httputil"
	"github.com/trovekit/trove/pkg/upstream"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	configPath string // optional trovegen.toml path
	output     string // override output file path
	refresh    bool   // bypass HTTP cache
	dryRun     bool   // fetch and validate without writing
}

// newGenerateCmd creates the generate command, which fetches the current
// upstream classifier snapshot, validates it, and rewrites the generated
// table in pkg/trove.
func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the classifier table from the upstream catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to trovegen.toml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default "+defaultOutput+")")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the HTTP response cache")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "fetch and validate without writing the table")

	return cmd
}

func runGenerate(ctx context.Context, opts generateOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}

	snap, err := fetchSnapshot(ctx, cfg, opts.refresh)
	if err != nil {
		return err
	}

	if err := gen.Validate(snap); err != nil {
		return err
	}
	logger.Debugf("snapshot %s validated: %d classifiers", snap.Version, len(snap.Tags))

	src := gen.Emit(snap)

	if opts.dryRun {
		printInfo("Dry run: snapshot %s is valid", snap.Version)
		printDetail("%d classifiers, %d bytes of generated source", len(snap.Tags), len(src))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(cfg.Output, src, 0o644); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	printSuccess("Generated catalog %s (%d classifiers)", snap.Version, len(snap.Tags))
	printFile(cfg.Output)
	return nil
}

// fetchSnapshot builds the cached upstream client from cfg and retrieves the
// current catalog state.
func fetchSnapshot(ctx context.Context, cfg config, refresh bool) (*upstream.Snapshot, error) {
	logger := loggerFromContext(ctx)

	cache, err := httputil.NewCache(cfg.CacheDir, time.Duration(cfg.CacheTTL))
	if err != nil {
		return nil, fmt.Errorf("init cache: %w", err)
	}

	client := upstream.NewClientWithURLs(cache, cfg.ListURL, cfg.VersionURL)

	prog := newProgress(logger)
	snap, err := client.FetchSnapshot(ctx, refresh)
	if err != nil {
		return nil, snapshotError(err)
	}
	prog.done(fmt.Sprintf("Fetched %d classifiers (upstream %s)", len(snap.Tags), snap.Version))
	return snap, nil
}

// snapshotError attaches an error code to upstream failures so main can
// report them by kind. Errors that already carry a code, or that fit none
// of the upstream sentinels, pass through unchanged.
func snapshotError(err error) error {
	switch {
	case errors.Is(err, upstream.ErrNotFound):
		return errs.Wrap(errs.ErrCodeNotFound, err, "upstream endpoint not found")
	case errors.Is(err, context.DeadlineExceeded):
		return errs.Wrap(errs.ErrCodeTimeout, err, "request to PyPI timed out")
	case errors.Is(err, upstream.ErrNetwork):
		return errs.Wrap(errs.ErrCodeNetwork, err, "could not reach PyPI")
	}
	return err
}
