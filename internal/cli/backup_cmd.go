package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/alexanderramin/ladder/internal/app"
	"github.com/alexanderramin/ladder/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(t *app.Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Append the records of a JSON backup",
		Long: `Reads a backup written by "ladder export" and appends every record to
the current lists with fresh ids. A profile in the file replaces the stored
one. Nothing is written when any record fails validation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := importer.LoadDocument(args[0])
			if err != nil {
				return fmt.Errorf("loading import file: %w", err)
			}
			res, err := importer.Import(cmd.Context(), t, doc)
			if err != nil {
				return err
			}

			parts := make([]string, 0, len(res.Records))
			for kind, n := range res.Records {
				parts = append(parts, fmt.Sprintf("%d %s", n, kind.Plural()))
			}
			sort.Strings(parts)
			if res.Profile {
				parts = append(parts, "profile")
			}
			if len(parts) == 0 {
				parts = append(parts, "nothing")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Imported %s\n", checkMark(), strings.Join(parts, ", "))
			return nil
		},
	}
}

func newExportCmd(t *app.Tracker) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every list and the profile as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := importer.Export(cmd.Context(), t)
			if err != nil {
				return err
			}
			if out == "" {
				return doc.Write(cmd.OutOrStdout())
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			if err := doc.Write(f); err != nil {
				f.Close()
				return fmt.Errorf("writing export file: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Exported %d records to %s\n", checkMark(), doc.Len(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")
	return cmd
}
