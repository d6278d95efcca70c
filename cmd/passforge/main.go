package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "passforge",
		Short:        "Passforge - leveled password generation and validation",
		SilenceUsage: true,
	}

	svc := service.NewGeneratorService()

	rootCmd.AddCommand(
		newGenerateCmd(svc),
		newCheckCmd(svc),
		newPolicyCmd(svc),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newGenerateCmd(svc *service.GeneratorService) *cobra.Command {
	var (
		length   int
		strength string
		report   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password for a strength level",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := svc.Generate(model.GenerateRequest{Length: length, Strength: strength})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Password)

			if report {
				check, err := svc.Validate(model.ValidateRequest{Password: resp.Password, Strength: resp.Strength})
				if err != nil {
					return err
				}
				printReport(cmd, check)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 0, "password length (default: the policy minimum)")
	cmd.Flags().StringVarP(&strength, "strength", "s", "medium", "strength level: low, medium or high")
	cmd.Flags().BoolVar(&report, "report", false, "print the validation breakdown of the generated password")

	return cmd
}

func newCheckCmd(svc *service.GeneratorService) *cobra.Command {
	var strength string

	cmd := &cobra.Command{
		Use:   "check <password>",
		Short: "Check a password against a strength level's policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := svc.Validate(model.ValidateRequest{Password: args[0], Strength: strength})
			if err != nil {
				return err
			}

			printReport(cmd, resp)
			if !resp.Valid {
				return fmt.Errorf("password does not satisfy the %s policy", resp.Strength)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&strength, "strength", "s", "medium", "strength level: low, medium or high")

	return cmd
}

func newPolicyCmd(svc *service.GeneratorService) *cobra.Command {
	return &cobra.Command{
		Use:   "policy [strength]",
		Short: "Show the requirements of one or all strength levels",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			levels := []string{"low", "medium", "high"}
			if len(args) == 1 {
				levels = args
			}

			for _, level := range levels {
				resp, err := svc.Policy(level)
				if err != nil {
					return err
				}
				printPolicy(cmd, resp)
			}
			return nil
		},
	}
}

func printReport(cmd *cobra.Command, r model.ValidationResponse) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "strength:  %s\n", r.Strength)
	fmt.Fprintf(out, "valid:     %v\n", r.Valid)
	fmt.Fprintf(out, "lowercase: %v\n", r.HasLowercase)
	fmt.Fprintf(out, "uppercase: %v\n", r.HasUppercase)
	fmt.Fprintf(out, "numbers:   %v\n", r.HasNumbers)
	fmt.Fprintf(out, "symbols:   %v\n", r.HasSymbols)
	fmt.Fprintf(out, "length ok: %v\n", r.MeetsLength)
}

func printPolicy(cmd *cobra.Command, p model.PolicyResponse) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: minimum length %d\n", p.Strength, p.MinLength)
	for _, name := range []string{"lowercase", "uppercase", "numbers", "symbols"} {
		if chars, ok := p.Classes[name]; ok {
			fmt.Fprintf(out, "  %-9s %s\n", name, chars)
		}
	}
}
