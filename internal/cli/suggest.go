package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

const suggestModel = "gemini-2.5-flash"

// suggestion is one base colour proposed by the model.
type suggestion struct {
	ID     string `json:"id"`
	Hex    string `json:"hex"`
	Reason string `json:"reason"`
}

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func newSuggestCmd() *cobra.Command {
	var (
		model string
		count int
	)

	cmd := &cobra.Command{
		Use:   "suggest <brief>",
		Short: "Suggest base colours for a brief using Google Gen AI",
		Long: `Suggest base colours for a design brief using Google Gen AI, printed as a
ready-to-use config snippet.

Requires the GOOGLE_API_KEY environment variable (get one at
https://aistudio.google.com/api-keys). A .env file in the working
directory is loaded automatically.

Examples:
  ramptone suggest "calm healthcare dashboard"
  ramptone suggest --count 3 "retro arcade landing page"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)

			apiKey := os.Getenv("GOOGLE_API_KEY")
			if apiKey == "" {
				return fmt.Errorf("GOOGLE_API_KEY environment variable is required\nGet one at: https://aistudio.google.com/api-keys")
			}

			ctx := cmd.Context()
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				Backend: genai.BackendGeminiAPI,
				APIKey:  apiKey,
			})
			if err != nil {
				return fmt.Errorf("failed to create Gen AI client: %w", err)
			}

			prompt := suggestPrompt(args[0], count)
			logger.Debug("requesting suggestions", "model", model, "count", count)

			resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
				ResponseMIMEType: "application/json",
			})
			if err != nil {
				return fmt.Errorf("suggestion request failed: %w", err)
			}

			if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
				return fmt.Errorf("empty response from model")
			}

			var text strings.Builder
			for _, part := range resp.Candidates[0].Content.Parts {
				if part.Text != "" {
					text.WriteString(part.Text)
				}
			}

			suggestions, err := parseSuggestions([]byte(text.String()))
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderSuggestions(suggestions))
			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", suggestModel, "Gen AI model to use")
	cmd.Flags().IntVar(&count, "count", 5, "Number of colours to suggest")

	return cmd
}

func suggestPrompt(brief string, count int) string {
	return fmt.Sprintf(`Suggest %d base colours for this design brief: %q.

Respond with a JSON array only. Each element must have:
  "id":     a short kebab-case token name (e.g. "brand", "accent")
  "hex":    a 6-digit hex colour like "#3366FF"
  "reason": one short sentence on why it fits the brief

Pick colours with enough chroma to produce usable tints and shades.`, count, brief)
}

// parseSuggestions decodes and validates the model's JSON response.
// Suggestions with malformed hex values are dropped.
func parseSuggestions(data []byte) ([]suggestion, error) {
	var raw []suggestion
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	out := make([]suggestion, 0, len(raw))
	for _, s := range raw {
		if s.ID == "" || !hexPattern.MatchString(s.Hex) {
			continue
		}
		out = append(out, suggestion{
			ID:     s.ID,
			Hex:    strings.ToUpper(s.Hex),
			Reason: s.Reason,
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("model returned no usable suggestions")
	}
	return out, nil
}

// renderSuggestions formats suggestions as a TOML config snippet.
func renderSuggestions(suggestions []suggestion) string {
	var b strings.Builder
	for _, s := range suggestions {
		if s.Reason != "" {
			fmt.Fprintf(&b, "# %s\n", s.Reason)
		}
		fmt.Fprintf(&b, "[[color]]\nid = %q\nbase = %q\n\n", s.ID, s.Hex)
	}
	return b.String()
}
