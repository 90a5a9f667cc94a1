package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/SuperMag99/FootPrintX/internal/dork"
	"github.com/SuperMag99/FootPrintX/internal/render"
	"github.com/SuperMag99/FootPrintX/internal/validate"
)

var (
	errNoDorks      = errors.New("no dorks generated: input is blank or malformed")
	errDorkNotFound = errors.New("dork not found")
)

// genFlags are shared by every generator command.
type genFlags struct {
	format     string
	categories []string
	open       string
	copy       string
	strict     bool
}

func (f *genFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&f.format, "format", "f", "", "output format: text, json, yaml or table (default from config)")
	c.Flags().StringSliceVar(&f.categories, "category", nil, "only print these category ids (repeatable)")
	c.Flags().StringVar(&f.open, "open", "", "open the dork with this id in its search engine")
	c.Flags().StringVar(&f.copy, "copy", "", "copy the query of the dork with this id to the clipboard")
	c.Flags().BoolVar(&f.strict, "strict", false, "reject input the interactive form would reject")
}

func (a *app) handleCmd(use, short string, kind dork.Kind, aliases ...string) *cobra.Command {
	var f genFlags
	c := &cobra.Command{
		Use:     use,
		Short:   short,
		Aliases: aliases,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd, kind, dork.Input{Handle: args[0]}, &f, func() error {
				return validate.Handle(args[0])
			})
		},
	}
	f.register(c)
	return c
}

func (a *app) personCmd() *cobra.Command {
	var (
		f             genFlags
		variations    bool
		transliterate bool
	)
	c := &cobra.Command{
		Use:   "person <first> <last>",
		Short: "Dorks for a person's name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.PersonOptions()
			if cmd.Flags().Changed("variations") {
				opts.Variations = variations
			}
			if cmd.Flags().Changed("transliterate") {
				opts.Transliterate = transliterate
			}
			in := dork.Input{FirstName: args[0], LastName: args[1], Person: opts}
			return a.generate(cmd, dork.KindPerson, in, &f, func() error {
				if err := validate.Name(args[0]); err != nil {
					return fmt.Errorf("first name: %w", err)
				}
				if err := validate.Name(args[1]); err != nil {
					return fmt.Errorf("last name: %w", err)
				}
				return nil
			})
		},
	}
	c.Flags().BoolVar(&variations, "variations", true, "add initial + last name variations (default from config)")
	c.Flags().BoolVar(&transliterate, "transliterate", false, "reserved; has no effect yet")
	f.register(c)
	return c
}

func (a *app) linkedinCmd() *cobra.Command {
	var (
		f       genFlags
		company string
		country string
	)
	c := &cobra.Command{
		Use:     "linkedin <name...>",
		Short:   "Dorks for a LinkedIn profile",
		Aliases: []string{"li"},
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			in := dork.Input{Name: name, LinkedIn: dork.LinkedInOptions{Company: company, Country: country}}
			return a.generate(cmd, dork.KindLinkedIn, in, &f, func() error {
				return validate.Name(name)
			})
		},
	}
	c.Flags().StringVar(&company, "company", "", "current or past employer")
	c.Flags().StringVar(&country, "country", "", "country or region")
	f.register(c)
	return c
}

func (a *app) emailCmd() *cobra.Command {
	var f genFlags
	c := &cobra.Command{
		Use:     "email <address>",
		Short:   "Dorks for an email address",
		Aliases: []string{"mail"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd, dork.KindEmail, dork.Input{Email: args[0]}, &f, func() error {
				return validate.Email(args[0])
			})
		},
	}
	f.register(c)
	return c
}

func (a *app) generate(cmd *cobra.Command, kind dork.Kind, in dork.Input, f *genFlags, check func() error) error {
	if f.strict {
		if err := check(); err != nil {
			return fmt.Errorf("invalid %s input: %w", kind, err)
		}
	}

	format, err := render.ParseFormat(f.format)
	if err != nil {
		return err
	}
	if f.format == "" {
		if format, err = render.ParseFormat(a.cfg.GetFormat()); err != nil {
			return err
		}
	}

	cats, err := dork.Generate(kind, in)
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		return errNoDorks
	}
	if len(f.categories) > 0 {
		cats = dork.Filter(cats, f.categories...)
		if len(cats) == 0 {
			return fmt.Errorf("no categories match %s", strings.Join(f.categories, ", "))
		}
	}
	a.logger.Debug("generated dorks",
		zap.String("kind", string(kind)),
		zap.Int("categories", len(cats)),
		zap.Int("dorks", dork.Count(cats)),
	)

	templates := a.cfg.SearchTemplates()
	if f.copy != "" {
		d, ok := dork.Find(cats, f.copy)
		if !ok {
			return fmt.Errorf("%w: %q", errDorkNotFound, f.copy)
		}
		if err := a.copyFn(d.Query); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Copied %s to clipboard.\n", d.ID)
	}
	if f.open != "" {
		d, ok := dork.Find(cats, f.open)
		if !ok {
			return fmt.Errorf("%w: %q", errDorkNotFound, f.open)
		}
		if err := a.openFn(templates.For(d)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Opened %s in %s.\n", d.ID, d.Engine)
	}

	if format == render.Text {
		render.WriteDisclaimer(cmd.ErrOrStderr())
	}
	return render.Write(cmd.OutOrStdout(), format, render.NewReport(kind, cats, templates), outputWidth(cmd))
}

// outputWidth is the terminal width when stdout is one, else 0.
func outputWidth(cmd *cobra.Command) int {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}
