package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"scribe/internal/api"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var language string
	var maxLength int
	var details bool

	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch a video transcript from the daemon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := ctx.client().Fetch(cmd.Context(), api.TranscriptRequest{
				URL:       args[0],
				Language:  language,
				MaxLength: maxLength,
			})
			if err != nil {
				return err
			}
			if !resp.Success {
				return fmt.Errorf("transcript fetch failed: %s", resp.Error)
			}

			out := cmd.OutOrStdout()
			if details {
				rows := [][]string{
					{"Video ID", resp.VideoID},
					{"Title", resp.Title},
					{"Language", resp.DetectedLanguage},
					{"Duration", formatSeconds(resp.Duration)},
					{"Characters", strconv.Itoa(len(resp.Transcript))},
				}
				fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows))
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, resp.Transcript)
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Preferred transcript language code")
	cmd.Flags().IntVar(&maxLength, "max-length", 0, "Maximum transcript length in characters")
	cmd.Flags().BoolVar(&details, "details", false, "Print video metadata before the transcript")
	return cmd
}

func formatSeconds(seconds int64) string {
	if seconds <= 0 {
		return "unknown"
	}
	return (time.Duration(seconds) * time.Second).String()
}
