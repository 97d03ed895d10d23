package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"pageforge/internal/assembler"
	"pageforge/internal/blueprint"
	"pageforge/internal/coherence"
	"pageforge/internal/config"
	"pageforge/internal/hierarchy"
	"pageforge/internal/section"
	"pageforge/internal/storage"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pageforge",
		Short: "Layout blueprint engine for long-form content",
	}
	dbPath string
	logger = log.New(os.Stderr)
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Path to the blueprint database (SQLite)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(revertCmd)
}

func initStore() (*storage.SQLiteStore, *config.Config, error) {
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	path := cfg.Store.Path
	if dbPath != "" {
		path = dbPath
	}
	store, err := storage.NewSQLiteStore(path)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

var (
	genBrandName string
	genIndustry  string
	genTone      string
	genAccount   string
	genCluster   string
	genAI        bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [analysis.json]",
	Short: "Generate a blueprint version from a content analysis file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		data, err := os.ReadFile(args[0])
		if err != nil {
			logger.Fatal("failed to read analysis file", "err", err)
		}
		var analysis analysisFile
		if err := json.Unmarshal(data, &analysis); err != nil {
			logger.Fatal("failed to parse analysis file", "err", err)
		}

		store, cfg, err := initStore()
		if err != nil {
			logger.Fatal("failed to open store", "err", err)
		}
		defer store.Close()

		resolver := hierarchy.NewResolver(store)
		resolved, err := resolver.Resolve(ctx, genAccount, genCluster, analysis.DocumentID)
		if err != nil {
			logger.Fatal("failed to resolve settings", "err", err)
		}

		asm := assembler.New(assembler.WithLogger(logger))
		var opts []blueprint.GeneratorOption
		opts = append(opts, blueprint.WithGeneratorLogger(logger))
		if genAI && cfg.AI.APIKey != "" {
			completer, err := blueprint.NewGenaiCompleter(ctx, cfg.AI.APIKey, cfg.AI.Model)
			if err != nil {
				logger.Warn("generative mode unavailable, using heuristic path", "err", err)
			} else {
				opts = append(opts, blueprint.WithCompleter(completer))
			}
		}

		gen := blueprint.NewGenerator(asm, opts...)
		bp := gen.Generate(ctx, blueprint.Request{
			DocumentID: analysis.DocumentID,
			AccountID:  genAccount,
			Analysis:   analysis.Analysis,
			Brand: assembler.Brand{
				Name:     genBrandName,
				Industry: genIndustry,
				Tone:     genTone,
			},
			Style:  styleFromResolved(resolved),
			Avoid:  resolved.Avoid,
			Prefer: resolved.Prefer,
		})

		if err := store.SaveBlueprint(ctx, bp); err != nil {
			logger.Fatal("failed to save blueprint", "err", err)
		}

		fmt.Printf("Blueprint v%d for %s: %s style, %d sections (%s mode, %s)\n",
			bp.Version, bp.DocumentID, bp.Strategy.VisualStyle,
			bp.Meta.SectionCount, bp.Meta.Mode, bp.Meta.Duration.Round(time.Millisecond))
		for _, d := range bp.Sections {
			fmt.Printf("  %-24s %-20s -> %s\n", d.SectionID, d.Type, d.Selection.Component)
		}
	},
}

// styleFromResolved passes the resolved style down only when a scope
// record actually pinned it; engine defaults leave the strategy free.
func styleFromResolved(res hierarchy.Resolved) string {
	if src, ok := res.Sources["visual_style"]; ok && src != "default" {
		return res.VisualStyle
	}
	return ""
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [document-id]",
	Short: "Score the stored blueprint's coherence without changing it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store, _, err := initStore()
		if err != nil {
			logger.Fatal("failed to open store", "err", err)
		}
		defer store.Close()

		bp, err := store.LatestBlueprint(ctx, args[0])
		if err != nil {
			logger.Fatal("failed to load blueprint", "err", err)
		}
		if bp == nil {
			logger.Fatal("no blueprint stored for document", "document", args[0])
		}

		report := coherence.Analyze(bp.Units(), bp.Strategy.VisualStyle)
		fmt.Printf("Coherence score: %d/100 (%d issues)\n", report.Score, len(report.Issues))
		for _, iss := range report.Issues {
			fmt.Printf("  [%s] section %d: %s (%s)\n", iss.Severity, iss.Index, iss.Message, iss.Category)
		}
		for _, sug := range report.Suggestions {
			fmt.Printf("  suggest: section %d %s %q -> %q (%s)\n",
				sug.Index, sug.Field, sug.Current, sug.Suggested, sug.Reason)
		}
	},
}

var settingsCmd = &cobra.Command{
	Use:   "settings [document-id]",
	Short: "Show the effective settings that would apply to a document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store, _, err := initStore()
		if err != nil {
			logger.Fatal("failed to open store", "err", err)
		}
		defer store.Close()

		resolver := hierarchy.NewResolver(store)
		resolved, err := resolver.Resolve(ctx, genAccount, genCluster, args[0])
		if err != nil {
			logger.Fatal("failed to resolve settings", "err", err)
		}
		fmt.Print(hierarchy.Summary(resolved))
	},
}

var historyCmd = &cobra.Command{
	Use:   "history [document-id]",
	Short: "List a document's stored blueprint versions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store, _, err := initStore()
		if err != nil {
			logger.Fatal("failed to open store", "err", err)
		}
		defer store.Close()

		resolver := hierarchy.NewResolver(store)
		versions, err := resolver.History(ctx, args[0])
		if err != nil {
			logger.Fatal("failed to list versions", "err", err)
		}
		for _, v := range versions {
			fmt.Printf("v%-4d %s  %s\n", v.Version, v.GeneratedAt.Format("2006-01-02 15:04"), v.Mode)
		}
	},
}

var revertCmd = &cobra.Command{
	Use:   "revert [document-id] [version]",
	Short: "Restore an old blueprint version as a new version",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		version, err := strconv.Atoi(args[1])
		if err != nil {
			logger.Fatal("version must be a number", "got", args[1])
		}

		store, _, err := initStore()
		if err != nil {
			logger.Fatal("failed to open store", "err", err)
		}
		defer store.Close()

		resolver := hierarchy.NewResolver(store)
		restored, err := resolver.Revert(ctx, args[0], version)
		if err != nil {
			logger.Fatal("revert failed", "err", err)
		}
		fmt.Printf("Restored v%d as v%d for %s\n", version, restored.Version, restored.DocumentID)
	},
}

// analysisFile is the on-disk shape the content analyzer hands over.
type analysisFile struct {
	DocumentID string `json:"document_id"`
	section.Analysis
}

func init() {
	generateCmd.Flags().StringVar(&genBrandName, "brand", "", "Brand name")
	generateCmd.Flags().StringVar(&genIndustry, "industry", "", "Brand industry")
	generateCmd.Flags().StringVar(&genTone, "tone", "", "Brand tone of voice")
	generateCmd.Flags().StringVar(&genAccount, "account", "", "Account (project) id")
	generateCmd.Flags().StringVar(&genCluster, "cluster", "", "Content cluster id")
	generateCmd.Flags().BoolVar(&genAI, "ai", false, "Use the generative model when configured")
	settingsCmd.Flags().StringVar(&genAccount, "account", "", "Account (project) id")
	settingsCmd.Flags().StringVar(&genCluster, "cluster", "", "Content cluster id")
}
