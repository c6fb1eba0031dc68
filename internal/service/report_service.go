package service

import (
	"fmt"
	"strings"

	"app-recommender/internal/model"
)

// FormatRecommendations renders the ranked list the way the show command
// prints it: numbered entries with name, category, reason and score.
func FormatRecommendations(recs []model.Recommendation) string {
	var builder strings.Builder
	builder.WriteString("\nTop Application Recommendations:\n")
	builder.WriteString("===============================\n")

	if len(recs) == 0 {
		builder.WriteString("No recommendations yet. Run with --scan --usage --recommend first.\n")
		return builder.String()
	}

	for i, rec := range recs {
		builder.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, rec.AppName, rec.Category))
		builder.WriteString(fmt.Sprintf("   Reason: %s\n", rec.Reason))
		builder.WriteString(fmt.Sprintf("   Score: %.2f\n\n", rec.Score))
	}
	return builder.String()
}
