package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-bootstrap/pkg/page"
	"github.com/goliatone/go-bootstrap/pkg/theme"
)

type renderFlags struct {
	output      string
	configs     []string
	theme       string
	variant     string
	themes      string
	interactive bool
}

func (a *app) renderCmd() *cobra.Command {
	flags := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render <page>",
		Short: "Render a page document to HTML",
		Long: `Renders a YAML or JSON page document (navbar, flash messages and
sections) into a complete Bootstrap 3 HTML page.

Example:
  bootstrap-cli render dashboard.yaml --themes themes.yaml --theme acme -o out.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, args[0], flags)
		},
	}
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringSliceVar(&flags.configs, "config", nil, "helper config files, merged in order")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "theme name to resolve")
	cmd.Flags().StringVar(&flags.variant, "variant", "", "theme variant to resolve")
	cmd.Flags().StringVar(&flags.themes, "themes", "", "theme manifest file")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "choose the sections to render")
	return cmd
}

func (a *app) runRender(cmd *cobra.Command, path string, flags *renderFlags) error {
	ctx := cmd.Context()

	doc, err := page.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return err
	}
	if flags.theme != "" || flags.variant != "" {
		doc.Theme = page.ThemeRef{Name: flags.theme, Variant: flags.variant}
	}

	cfg, err := loadConfig(flags.configs)
	if err != nil {
		return err
	}

	options := []page.Option{page.WithConfig(cfg), page.WithLogger(a.logger)}
	if flags.themes != "" {
		manifests, err := theme.LoadManifests(os.DirFS(filepath.Dir(flags.themes)), filepath.Base(flags.themes))
		if err != nil {
			return err
		}
		a.logger.Debug("loaded theme manifests", zap.String("path", flags.themes), zap.Int("count", len(manifests)))
		options = append(options, page.WithThemeSelector(theme.NewStaticSelector(cfg.Theme.Name, cfg.Theme.Variant, manifests...)))
	}

	if flags.interactive {
		selected, err := a.prompt.SelectSections(ctx, doc.SectionNames())
		if err != nil {
			return err
		}
		a.logger.Debug("selected sections", zap.Strings("sections", selected))
		doc = doc.Select(selected)
	}

	out, err := page.NewRenderer(options...).Render(ctx, doc)
	if err != nil {
		return err
	}

	if flags.output == "" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}
	if err := atomic.WriteFile(flags.output, bytes.NewReader(out)); err != nil {
		return fmt.Errorf("write %s: %w", flags.output, err)
	}
	a.logger.Info("page written", zap.String("path", flags.output), zap.Int("bytes", len(out)))
	fmt.Fprintf(cmd.OutOrStdout(), "Page written to %s\n", flags.output)
	return nil
}
