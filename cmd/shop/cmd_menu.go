package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/kashvi-shop/internal/shell"
	"github.com/shashiranjanraj/kashvi-shop/pkg/collection"
	"github.com/shashiranjanraj/kashvi-shop/pkg/router"
)

// shop menu:list: print every menu option.
func newMenuListCmd() *cobra.Command {
	var menu string

	cmd := &cobra.Command{
		Use:   "menu:list",
		Short: "List all menu options with their names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := shell.New(strings.NewReader(""), io.Discard)
			if err != nil {
				return err
			}

			options := s.Router().Routes()
			if menu != "" {
				options = collection.Filter(options, func(o router.Option) bool {
					return o.Menu == menu || strings.HasPrefix(o.Menu, menu+".")
				})
			}
			if len(options) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No menu options registered.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "MENU\tKEY\tLABEL\tNAME")
			fmt.Fprintln(w, "----\t---\t-----\t----")
			for _, o := range options {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", o.Menu, o.Key, o.Label, o.Name)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&menu, "menu", "", "only list this menu and its submenus")
	return cmd
}
