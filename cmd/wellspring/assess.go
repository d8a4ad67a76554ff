package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maya/wellspring/internal/assessment"
	"github.com/maya/wellspring/internal/catalog"
	"github.com/maya/wellspring/internal/insights"
	"github.com/maya/wellspring/internal/observability"
	"github.com/maya/wellspring/internal/recommend"
	"github.com/maya/wellspring/internal/types"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Score an assessment and print recommendations",
	Long:  "Score a completed assessment from a JSON answers file, then print the stress profile, recommendations, and insight cards.",
	RunE:  runAssess,
}

var (
	assessMood       string
	assessInputFile  string
	assessOutputFile string
	assessExtraBooks string
	assessExtraMusic string
)

func init() {
	assessCmd.Flags().StringVar(&assessMood, "mood", "", "Mood tag selected during onboarding (e.g. anxious, overwhelmed)")
	assessCmd.Flags().StringVarP(&assessInputFile, "in", "i", "", "Path to a JSON file of answers (required)")
	assessCmd.Flags().StringVarP(&assessOutputFile, "out", "o", "", "Path to write the result bundle as JSON")
	assessCmd.Flags().StringVar(&assessExtraBooks, "extra-books", "", "Path to an additional book catalog JSON file")
	assessCmd.Flags().StringVar(&assessExtraMusic, "extra-music", "", "Path to an additional music catalog JSON file")
	_ = assessCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(assessCmd)
}

// assessResult is the JSON bundle written with --out.
type assessResult struct {
	Mood           string               `json:"mood"`
	Profile        types.StressProfile  `json:"profile"`
	Recommendation types.Recommendation `json:"recommendation"`
	Insights       []types.InsightCard  `json:"insights"`
}

func runAssess(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(assessInputFile)
	if err != nil {
		return fmt.Errorf("failed to read answers file: %w", err)
	}

	var answers []types.AssessmentAnswer
	if err := json.Unmarshal(raw, &answers); err != nil {
		return fmt.Errorf("failed to parse answers file: %w", err)
	}

	mood := types.ParseMood(assessMood)
	if assessMood != "" && !mood.Known() {
		fmt.Fprintf(os.Stderr, "Warning: unrecognized mood %q; using the generic question bank\n", assessMood)
	}

	cat, err := loadCatalogWithOverlays(assessExtraBooks, assessExtraMusic)
	if err != nil {
		return err
	}

	profile := assessment.Score(answers, assessment.Bank(mood))
	rec := recommend.NewEngine(cat).Generate(answers, profile, mood)
	cards := insights.Assemble(profile)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintStressProfile(&profile, mood)
	printer.PrintRecommendations(&rec)
	printer.PrintInsights(cards)

	if assessOutputFile != "" {
		result := assessResult{
			Mood:           mood.String(),
			Profile:        profile,
			Recommendation: rec,
			Insights:       cards,
		}
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		if err := os.WriteFile(assessOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Output: %s\n", assessOutputFile)
	}

	return nil
}

// loadCatalogWithOverlays loads the embedded catalog and merges optional
// external datasets on top. Curated entries always win on ID collisions.
func loadCatalogWithOverlays(booksPath, musicPath string) (*catalog.Catalog, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	if booksPath != "" {
		raw, err := os.ReadFile(booksPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read extra book catalog: %w", err)
		}
		extra, err := catalog.ParseBooks(string(raw))
		if err != nil {
			return nil, fmt.Errorf("extra book catalog: %w", err)
		}
		cat.Books = catalog.MergeBooks(cat.Books, extra)
	}

	if musicPath != "" {
		raw, err := os.ReadFile(musicPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read extra music catalog: %w", err)
		}
		extra, err := catalog.ParseTracks(string(raw))
		if err != nil {
			return nil, fmt.Errorf("extra music catalog: %w", err)
		}
		cat.Music = catalog.MergeTracks(cat.Music, extra)
	}

	return cat, nil
}
