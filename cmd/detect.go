package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/havenlink/advisor/internal/model"
)

var detectTranscript bool

var detectCmd = &cobra.Command{
	Use:   "detect [text...]",
	Short: "Detect the customer persona from a prospect description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initAdvisor(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		req := model.DetectionRequest{}
		text := strings.Join(args, " ")
		if detectTranscript {
			req.VoiceTranscript = text
		} else {
			req.Text = text
		}

		result, err := env.Service.DetectPersona(cmd.Context(), req)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	detectCmd.Flags().BoolVar(&detectTranscript, "transcript", false, "treat input as a voice transcript")
	rootCmd.AddCommand(detectCmd)
}
