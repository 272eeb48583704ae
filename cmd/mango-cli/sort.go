package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vrsandeep/mango-chapters/internal/chapter"
	"github.com/vrsandeep/mango-chapters/internal/util"
)

func newSortCmd() *cobra.Command {
	var seriesTitle string
	var showNumbers bool

	cmd := &cobra.Command{
		Use:     "sort",
		Short:   "Order chapter titles read from stdin, one per line",
		Example: `  ls "Solo Leveling" | mango-cli sort --title "Solo Leveling"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var titles []string
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if line := strings.TrimSpace(scanner.Text()); line != "" {
					titles = append(titles, line)
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading chapter titles: %w", err)
			}

			sorted := util.SortChapterTitles(seriesTitle, titles)
			w := cmd.OutOrStdout()
			if jsonOutput {
				return writeJSON(w, sorted)
			}
			for _, title := range sorted {
				if showNumbers {
					writeNumber(w, chapter.ParseNumber(seriesTitle, title))
					fmt.Fprint(w, "\t")
				}
				fmt.Fprintln(w, title)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&seriesTitle, "title", "t", "", "Series title removed from the chapter titles before parsing")
	cmd.Flags().BoolVarP(&showNumbers, "numbers", "n", false, "Prefix each title with its recognised number")
	return cmd
}
