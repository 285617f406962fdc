package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/ladder/internal/app"
	"github.com/alexanderramin/ladder/internal/cli/formatter"
	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/alexanderramin/ladder/internal/service"
	"github.com/spf13/cobra"
)

func newSkillCmd(skills app.SkillUseCase) *cobra.Command {
	k := skillKind(skills)
	cmd := newRecordGroupCmd(k)
	cmd.AddCommand(
		newSkillListCmd(k, skills),
		newSkillCategoriesCmd(skills),
		newSkillRateCmd(k, skills),
	)
	return cmd
}

func newSkillListCmd(k recordKind[domain.Skill], skills app.SkillUseCase) *cobra.Command {
	var filter service.SkillFilter

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List skills, optionally filtered",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := skills.Filter(cmd.Context(), filter)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecords(k.kind(), k.cols, list))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter.Search, "search", "s", "", "Search technology or category (tolerates typos)")
	cmd.Flags().StringVar(&filter.Category, "category", "", "Only this category")
	cmd.Flags().Var(newEnumFlag(&filter.Proficiency, domain.ProficiencyOptions), "proficiency",
		enumUsage("Only this proficiency", domain.ProficiencyOptions))

	return cmd
}

func newSkillCategoriesCmd(skills app.SkillUseCase) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List skill categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := skills.Categories(cmd.Context())
			if err != nil {
				return err
			}
			if len(cats) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No categories yet."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(cats, "\n"))
			return nil
		},
	}
}

func newSkillRateCmd(k recordKind[domain.Skill], skills app.SkillUseCase) *cobra.Command {
	return &cobra.Command{
		Use:   "rate ID LEVEL",
		Short: "Set a skill's proficiency (1-5, value or label)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}
			p, err := parseProficiency(args[1])
			if err != nil {
				return err
			}
			saved, err := skills.SetProficiency(cmd.Context(), id, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now %s\n",
				checkMark(), formatter.Bold(k.name(saved)), formatter.Badge(saved.Proficiency))
			return nil
		},
	}
}

// parseProficiency accepts a 1-based level or a proficiency value or label.
func parseProficiency(s string) (domain.Proficiency, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(domain.ProficiencyOptions) {
			return "", fmt.Errorf("level %d out of range 1-%d", n, len(domain.ProficiencyOptions))
		}
		return domain.Proficiency(domain.ProficiencyOptions[n-1].Value), nil
	}
	var p domain.Proficiency
	if err := newEnumFlag(&p, domain.ProficiencyOptions).Set(s); err != nil {
		return "", fmt.Errorf("proficiency %q: %w", s, err)
	}
	return p, nil
}
