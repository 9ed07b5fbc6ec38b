package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jward/graft"
	"github.com/jward/graft/internal/langs"
	"github.com/jward/graft/internal/matchfile"
	"github.com/jward/graft/tstree"
)

var (
	flagMatches string
	flagElide   string
	flagLenient bool
)

var completeCmd = &cobra.Command{
	Use:   "complete BEFORE AFTER",
	Short: "Complete a coarse match between two versions of a file",
	Long:  "Parses BEFORE and AFTER with tree-sitter, resolves the coarse match file against both trees, and prints every correspondence after completion. Spans are byte offsets.",
	Args:  cobra.ExactArgs(2),
	RunE:  runComplete,
}

func init() {
	completeCmd.Flags().StringVar(&flagMatches, "matches", "", "coarse matcher output file (YAML, required)")
	completeCmd.Flags().StringVar(&flagElide, "elide", "", "comma-separated extra node kinds to treat as elidable")
	completeCmd.Flags().BoolVar(&flagLenient, "lenient", false, "skip subtrees where aligned kinds disagree instead of failing")
	completeCmd.MarkFlagRequired("matches")
}

func runComplete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	beforePath, afterPath := args[0], args[1]

	before, err := parseFile(ctx, beforePath)
	if err != nil {
		return outputError("complete", err)
	}
	after, err := parseFile(ctx, afterPath)
	if err != nil {
		return outputError("complete", err)
	}

	mf, err := matchfile.Load(flagMatches)
	if err != nil {
		return outputError("complete", err)
	}
	records, err := matchfile.Resolve(mf, before.Root(), after.Root())
	if err != nil {
		return outputError("complete", err)
	}

	// Pairs the coarse matcher supplied itself, so inferred ones can be
	// flagged in the output.
	coarse := make(map[graft.Node]bool, len(records))
	for _, rec := range records {
		if rec.Src != nil {
			coarse[rec.Src] = true
		}
	}

	var opts []graft.CompleterOption
	if flagLenient {
		opts = append(opts, graft.SkipMismatchedSubtrees())
	}
	mapping, err := graft.CompleteMatches(records, buildElider(flagElide), opts...)
	if err != nil {
		return outputError("complete", err)
	}

	var pairs []CLIPair
	for src, dst := range mapping.Pairs() {
		pairs = append(pairs, CLIPair{
			Src:      toCLISpan(before, src),
			Dst:      toCLISpan(after, dst),
			Inferred: !coarse[src],
		})
	}
	return outputResult(CLIResult{Command: "complete", Results: pairs})
}

// parseFile reads and parses one version of the file, picking the
// grammar from the extension.
func parseFile(ctx context.Context, path string) (*tstree.Tree, error) {
	lang, _, ok := langs.ForFile(path)
	if !ok {
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	tree, err := tstree.Parse(ctx, content, lang)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return tree, nil
}

// buildElider extends the stock syntax-tree predicate with any extra
// kinds from --elide.
func buildElider(extra string) graft.Elider {
	if extra == "" {
		return tstree.Elidable
	}
	kinds := make(map[string]bool)
	for _, k := range strings.Split(extra, ",") {
		if k = strings.TrimSpace(k); k != "" {
			kinds[k] = true
		}
	}
	return func(n graft.Node) bool {
		return tstree.Elidable(n) || kinds[n.Kind()]
	}
}

// toCLISpan converts a mapped node to its output representation. Text
// is elided past 40 bytes to keep listings readable.
func toCLISpan(tree *tstree.Tree, n graft.Node) CLISpan {
	text := tree.Text(n)
	if len(text) > 40 {
		text = text[:37] + "..."
	}
	sn := n.(tstree.Node).Unwrap()
	return CLISpan{
		Start: sn.StartByte(),
		End:   sn.EndByte(),
		Kind:  n.Kind(),
		Text:  text,
	}
}
