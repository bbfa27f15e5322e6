// ABOUTME: theme command shows, toggles or sets the stored colour scheme
// ABOUTME: The preference is shared with 'read', which styles cards from it

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"newsfeed-api/core/settings"
)

func newThemeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the stored theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSettings(cmd, func(s *settings.Service) error {
				fmt.Fprintln(cmd.OutOrStdout(), s.Load(commandContext(cmd)))
				return nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the stored theme",
		Args:  cobra.NoArgs,
		RunE:  cmd.RunE,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSettings(cmd, func(s *settings.Service) error {
				theme, err := s.Toggle(commandContext(cmd))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), theme)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Store a theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(settings.ThemeLight), string(settings.ThemeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := settings.ParseTheme(args[0])
			if err != nil {
				return err
			}
			return a.withSettings(cmd, func(s *settings.Service) error {
				if err := s.Save(commandContext(cmd), theme); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), theme)
				return nil
			})
		},
	})

	return cmd
}

func (a *app) withSettings(cmd *cobra.Command, fn func(*settings.Service) error) error {
	s, closeFn, err := a.openSettings()
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(s)
}
