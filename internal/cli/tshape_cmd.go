package cli

import (
	"fmt"

	"github.com/alexanderramin/ladder/internal/cli/formatter"
	"github.com/alexanderramin/ladder/internal/tshape"
	"github.com/spf13/cobra"
)

func newTShapeCmd() *cobra.Command {
	var gapsOnly bool

	cmd := &cobra.Command{
		Use:   "tshape",
		Short: "Show the T-Shape skill model and its gaps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := tshape.Sample()
			if err := m.Validate(); err != nil {
				return err
			}
			if gapsOnly {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGaps(m.Gaps()))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTShape(m))
			return nil
		},
	}

	cmd.Flags().BoolVar(&gapsOnly, "gaps", false, "Only list skills below their required level")
	return cmd
}
