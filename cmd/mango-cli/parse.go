package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vrsandeep/mango-chapters/internal/chapter"
)

func newParseCmd() *cobra.Command {
	var seriesTitle string
	var explain bool

	cmd := &cobra.Command{
		Use:   "parse [chapter title]...",
		Short: "Recognise the chapter number of one or more chapter titles",
		Example: `  mango-cli parse --title "Bleach" "Bleach 567.a Down With Snowwhite"
  mango-cli parse --explain "Vol.1 Ch.4: Misrepresentation"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			results := make([]parseOutput, len(args))
			for i, text := range args {
				results[i] = parseOutput{Chapter: text, Recognition: chapter.Recognize(seriesTitle, text)}
			}
			if jsonOutput {
				return writeJSON(w, results)
			}

			for _, r := range results {
				titleStyle.Fprint(w, r.Chapter)
				fmt.Fprint(w, " -> ")
				writeNumber(w, r.Number)
				fmt.Fprintln(w)
				if explain {
					writeExplanation(cmd, r.Recognition)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&seriesTitle, "title", "t", "", "Series title removed from the chapter titles before parsing")
	cmd.Flags().BoolVar(&explain, "explain", false, "Show the normalized text and the matched pattern")
	return cmd
}

func writeExplanation(cmd *cobra.Command, r chapter.Recognition) {
	w := cmd.OutOrStdout()
	labelStyle.Fprint(w, "  normalized: ")
	fmt.Fprintf(w, "%q\n", r.Normalized)
	if r.Match == nil {
		labelStyle.Fprint(w, "  pattern:    ")
		fmt.Fprintln(w, "none")
		return
	}
	labelStyle.Fprint(w, "  pattern:    ")
	fmt.Fprintln(w, r.Match.Pattern)
	labelStyle.Fprint(w, "  integer:    ")
	fmt.Fprintln(w, r.Match.IntegerPart)
	labelStyle.Fprint(w, "  subchapter: ")
	fmt.Fprintf(w, "%q\n", r.Match.Subchapter)
}
