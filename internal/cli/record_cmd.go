package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/ladder/internal/cli/formatter"
	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/alexanderramin/ladder/internal/editor"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func parseRecordID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive number", s)
	}
	return id, nil
}

func checkMark() string { return formatter.StyleGreen.Render("✔") }

// newRecordCmd builds the "<kind> list|show|add|edit|remove" command tree.
func newRecordCmd[T domain.Record[T]](k recordKind[T]) *cobra.Command {
	cmd := newRecordGroupCmd(k)
	cmd.AddCommand(newRecordListCmd(k))
	return cmd
}

// newRecordGroupCmd returns the kind command with every subcommand except
// list, which some kinds replace.
func newRecordGroupCmd[T domain.Record[T]](k recordKind[T]) *cobra.Command {
	noun := string(k.kind())
	cmd := &cobra.Command{
		Use:   noun,
		Short: k.short,
	}
	if plural := k.kind().Plural(); plural != noun {
		cmd.Aliases = []string{plural}
	}
	cmd.AddCommand(
		newRecordShowCmd(k),
		newRecordAddCmd(k),
		newRecordEditCmd(k),
		newRecordRemoveCmd(k),
	)
	return cmd
}

func newRecordListCmd[T domain.Record[T]](k recordKind[T]) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   fmt.Sprintf("List %s", k.kind().Plural()),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := k.uc.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecords(k.kind(), k.cols, records))
			return nil
		},
	}
}

func newRecordShowCmd[T domain.Record[T]](k recordKind[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: fmt.Sprintf("Show one %s", k.kind()),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}
			rec, err := k.uc.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecords(k.kind(), k.cols, []T{rec}))
			return nil
		},
	}
}

func newRecordAddCmd[T domain.Record[T]](k recordKind[T]) *cobra.Command {
	scratch := k.uc.Blank()
	cmd := &cobra.Command{
		Use:   "add",
		Short: fmt.Sprintf("Add a %s", k.kind()),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := k.uc.NewSession()
			if err := sess.New(); err != nil {
				return err
			}
			if err := changeDraft(sess, cmd.Flags(), k.bind); err != nil {
				return err
			}
			saved, err := sess.Submit(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s #%d: %s\n",
				checkMark(), k.kind(), saved.RecordID(), formatter.Bold(k.name(saved)))
			return nil
		},
	}
	k.bind(cmd.Flags(), &scratch)
	return cmd
}

func newRecordEditCmd[T domain.Record[T]](k recordKind[T]) *cobra.Command {
	scratch := k.uc.Blank()
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: fmt.Sprintf("Change fields of a %s", k.kind()),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().NFlag() == 0 {
				return fmt.Errorf("nothing to change: pass at least one field flag")
			}

			sess := k.uc.NewSession()
			if err := sess.Edit(cmd.Context(), id); err != nil {
				return err
			}
			if err := changeDraft(sess, cmd.Flags(), k.bind); err != nil {
				return err
			}
			saved, err := sess.Submit(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated %s #%d: %s\n",
				checkMark(), k.kind(), saved.RecordID(), formatter.Bold(k.name(saved)))
			return nil
		},
	}
	k.bind(cmd.Flags(), &scratch)
	return cmd
}

func newRecordRemoveCmd[T domain.Record[T]](k recordKind[T]) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   fmt.Sprintf("Remove a %s", k.kind()),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}
			if err := k.uc.Remove(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed %s #%d\n", checkMark(), k.kind(), id)
			return nil
		},
	}
}

// changeDraft applies the flags set on the command line to the session's
// draft.
func changeDraft[T domain.Record[T]](sess *editor.Session[T], flags *pflag.FlagSet, bind func(*pflag.FlagSet, *T)) error {
	var applyErr error
	if err := sess.Change(func(draft *T) {
		applyErr = applyChangedFlags(flags, draft, bind)
	}); err != nil {
		return err
	}
	return applyErr
}
