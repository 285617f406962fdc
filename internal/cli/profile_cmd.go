package cli

import (
	"fmt"

	"github.com/alexanderramin/ladder/internal/app"
	"github.com/alexanderramin/ladder/internal/cli/formatter"
	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(profile app.ProfileUseCase) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change general information",
	}
	cmd.AddCommand(newProfileShowCmd(profile), newProfileSetCmd(profile))
	return cmd
}

func newProfileShowCmd(profile app.ProfileUseCase) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := profile.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}

func newProfileSetCmd(profile app.ProfileUseCase) *cobra.Command {
	var scratch domain.Profile
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change profile fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().NFlag() == 0 {
				return fmt.Errorf("nothing to change: pass at least one field flag")
			}
			p, err := profile.Get(cmd.Context())
			if err != nil {
				return err
			}
			if err := applyChangedFlags(cmd.Flags(), &p, bindProfile); err != nil {
				return err
			}
			if err := profile.Save(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Profile saved\n", checkMark())
			return nil
		},
	}
	bindProfile(cmd.Flags(), &scratch)
	return cmd
}
