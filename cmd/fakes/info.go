package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajitpratap0/fakes/pkg/config"
	"github.com/ajitpratap0/fakes/pkg/errors"
	"github.com/ajitpratap0/fakes/pkg/locale"
	"github.com/ajitpratap0/fakes/pkg/option"
	"github.com/ajitpratap0/fakes/pkg/scanner"
)

func newUsableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usable [category...]",
		Short: "List the usable options with an example of each",
		Long: fmt.Sprintf(`List the usable options of the given categories, or of every category.

Categories: %s`, strings.Join(scanner.Categories(), ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := parseCategories(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, cat := range cats {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s:\n", cat)
				for _, example := range scanner.Usable(cat) {
					fmt.Fprintf(out, "  %s\n", example)
				}
			}
			return nil
		},
	}
}

func newBNFCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bnf",
		Short: "Print the grammar of option expressions",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, line := range scanner.Grammar() {
				fmt.Fprintln(out, line)
			}
			for _, cat := range option.Categories() {
				fmt.Fprintf(out, "\n# %s\n", cat)
				for _, p := range scanner.Productions(cat) {
					fmt.Fprintln(out, p)
				}
			}
			return nil
		},
	}
}

func newLocalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the registered locales",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Available locales:")
			for _, id := range locale.List() {
				if aliases := locale.Aliases(id); len(aliases) > 0 {
					fmt.Fprintf(out, "  - %s (%s)\n", id, strings.Join(aliases, ", "))
					continue
				}
				fmt.Fprintf(out, "  - %s\n", id)
			}
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration files",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "fakes.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.ErrorTypeConfig, "config file already exists").
					WithDetail("path", path)
			}

			cfg := config.NewDefault()
			cfg.Columns = []string{
				"Name.FullName(name#true)",
				"Primitive.Int(age#20#60)",
				"Address.Address(address)",
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "fakes v%s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// parseCategories resolves category tokens; none means all of them.
func parseCategories(args []string) ([]option.Category, error) {
	if len(args) == 0 {
		return option.Categories(), nil
	}
	cats := make([]option.Category, 0, len(args))
	for _, arg := range args {
		cat, ok := option.ParseCategory(arg)
		if !ok {
			return nil, errors.Newf(errors.ErrorTypeValidation, "unknown category %q", arg).
				WithDetail("usable", scanner.Categories())
		}
		cats = append(cats, cat)
	}
	return cats, nil
}
