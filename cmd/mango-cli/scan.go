package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/vrsandeep/mango-chapters/internal/core"
	"github.com/vrsandeep/mango-chapters/internal/library"
	"github.com/vrsandeep/mango-chapters/internal/store"
)

func newScanCmd() *cobra.Command {
	var listUnrecognized bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the configured library once and store recognised chapter numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := core.New(version)
			if err != nil {
				return err
			}
			defer app.Close()

			log.Printf("Starting scan of library at: %s", app.Config().Library.Path)
			result, err := library.Sync(app)
			if err != nil {
				return fmt.Errorf("scanning library: %w", err)
			}

			w := cmd.OutOrStdout()
			if jsonOutput {
				return writeJSON(w, result)
			}
			successStyle.Fprintln(w, "Library scan finished successfully.")
			fmt.Fprintf(w, "  series:       %d\n", result.Series)
			fmt.Fprintf(w, "  chapters:     %d\n", result.Chapters)
			fmt.Fprintf(w, "  unrecognized: ")
			if result.Unrecognized > 0 {
				warningStyle.Fprintln(w, result.Unrecognized)
			} else {
				fmt.Fprintln(w, 0)
			}
			fmt.Fprintf(w, "  failed:       %d\n", result.Failed)
			fmt.Fprintf(w, "  pruned:       %d\n", result.Pruned)

			if listUnrecognized && result.Unrecognized > 0 {
				chapters, err := store.New(app.DB()).ListUnrecognizedChapters()
				if err != nil {
					return err
				}
				for _, c := range chapters {
					warningStyle.Fprint(w, "  ? ")
					fmt.Fprintln(w, c.Path)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&listUnrecognized, "list-unrecognized", "u", false, "List chapters whose number could not be recognised")
	return cmd
}
