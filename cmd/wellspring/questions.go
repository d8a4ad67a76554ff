package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maya/wellspring/internal/assessment"
	"github.com/maya/wellspring/internal/types"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the question session for a mood",
	Long:  "Draw the assessment question session for a mood and print it as JSON. Unrecognized moods get the generic fallback set.",
	RunE:  runQuestions,
}

var questionsMood string

func init() {
	questionsCmd.Flags().StringVar(&questionsMood, "mood", "", "Mood tag selected during onboarding")
	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(_ *cobra.Command, _ []string) error {
	mood := types.ParseMood(questionsMood)
	questions := assessment.Draw(mood)

	jsonBytes, err := json.MarshalIndent(map[string]any{
		"mood":      mood.String(),
		"questions": questions,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal questions: %w", err)
	}

	fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}
