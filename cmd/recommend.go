package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/havenlink/advisor/internal/model"
	"github.com/havenlink/advisor/internal/persona"
)

var (
	recommendPersona     string
	recommendBudget      float64
	recommendProjectSize float64
	recommendTranscript  string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Build a Good/Better/Best bundle recommendation for a persona",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initAdvisor(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		req := model.RecommendationRequest{
			Persona:         recommendPersona,
			Budget:          recommendBudget,
			ProjectSize:     recommendProjectSize,
			VoiceTranscript: recommendTranscript,
		}
		if recommendTranscript != "" {
			req.Urgency = persona.ExtractUrgency(recommendTranscript)
		}

		result, err := env.Service.Recommend(cmd.Context(), req)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	recommendCmd.Flags().StringVar(&recommendPersona, "persona", "", "persona id (e.g. homeowner, builder)")
	recommendCmd.Flags().Float64Var(&recommendBudget, "budget", 0, "project budget in USD (0 = infer)")
	recommendCmd.Flags().Float64Var(&recommendProjectSize, "size", 0, "project size in square feet")
	recommendCmd.Flags().StringVar(&recommendTranscript, "transcript", "", "voice transcript to extract budget/size/urgency from")
	recommendCmd.MarkFlagRequired("persona")
	rootCmd.AddCommand(recommendCmd)
}
