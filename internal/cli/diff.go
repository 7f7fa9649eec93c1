package cli

import (
	"context"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trovekit/trove/pkg/trove"
)

// newDiffCmd creates the diff command, which compares the catalog built into
// this binary against the current upstream state without writing anything.
func newDiffCmd() *cobra.Command {
	var (
		configPath string
		refresh    bool
	)

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare the built-in catalog against upstream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd.Context(), configPath, refresh)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to trovegen.toml")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the HTTP response cache")

	return cmd
}

func runDiff(ctx context.Context, configPath string, refresh bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	snap, err := fetchSnapshot(ctx, cfg, refresh)
	if err != nil {
		return err
	}

	added, removed := diffAgainstCatalog(snap.Tags)

	printKeyValue("built-in", trove.CatalogVersion)
	printKeyValue("upstream", snap.Version)

	if len(added) == 0 && len(removed) == 0 {
		printSuccess("Catalog is up to date (%d classifiers)", trove.Count())
		return nil
	}

	for _, tag := range added {
		printTagDiff("+", styleAdded, tag)
	}
	for _, tag := range removed {
		printTagDiff("-", styleRemoved, tag)
	}
	printInfo("%s added, %s removed; run %s to update",
		styleNumber.Render(strconv.Itoa(len(added))),
		styleNumber.Render(strconv.Itoa(len(removed))),
		styleValue.Render("trovegen generate"))
	return nil
}

// diffAgainstCatalog splits the upstream tag list into tags missing from the
// built-in catalog (added) and built-in tags gone upstream (removed), both
// sorted.
func diffAgainstCatalog(upstreamTags []string) (added, removed []string) {
	local := make(map[string]bool, trove.Count())
	for c := range trove.All() {
		local[c.String()] = true
	}

	remote := make(map[string]bool, len(upstreamTags))
	for _, tag := range upstreamTags {
		remote[tag] = true
		if !local[tag] {
			added = append(added, tag)
		}
	}
	for tag := range local {
		if !remote[tag] {
			removed = append(removed, tag)
		}
	}
	slices.Sort(added)
	slices.Sort(removed)
	return added, removed
}
