package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-bootstrap/pkg/helpers"
)

func (a *app) templatesCmd() *cobra.Command {
	var configs []string
	cmd := &cobra.Command{
		Use:   "templates [helper]",
		Short: "List the string templates of every helper, or the patterns of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configs)
			if err != nil {
				return err
			}
			h, err := helpers.New(helpers.WithConfig(cfg), helpers.WithLogger(a.logger))
			if err != nil {
				return err
			}
			sets := h.TemplateSets()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				names := make([]string, 0, len(sets))
				for name := range sets {
					names = append(names, name)
				}
				slices.Sort(names)
				for _, name := range names {
					fmt.Fprintf(out, "%s: %s\n", name, strings.Join(sets[name].Names(), ", "))
				}
				return nil
			}

			set, ok := sets[args[0]]
			if !ok {
				return fmt.Errorf("unknown helper %q", args[0])
			}
			for _, name := range set.Names() {
				pattern, _ := set.Get(name)
				fmt.Fprintf(out, "%s\t%s\n", name, pattern)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&configs, "config", nil, "helper config files, merged in order")
	return cmd
}
