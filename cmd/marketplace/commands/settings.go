package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"marketplace/internal/domain"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := wire.Settings.Get()
			if err != nil {
				return err
			}
			return renderSettings(cmd, st)
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show preferences",
		Args:  cobra.NoArgs,
		RunE:  cmd.RunE,
	}
	theme := &cobra.Command{
		Use:       "theme <system|light|dark>",
		Short:     "Set the colour theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"system", "light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := wire.Settings.SetTheme(domain.Theme(args[0]))
			if err != nil {
				return err
			}
			return renderSettings(cmd, st)
		},
	}
	dynamic := &cobra.Command{
		Use:       "dynamic-color <on|off>",
		Short:     "Turn dynamic colour on or off",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var enabled bool
			switch args[0] {
			case "on", "true", "yes":
				enabled = true
			case "off", "false", "no":
			default:
				return fmt.Errorf("expected on or off, got %q", args[0])
			}
			st, err := wire.Settings.SetDynamicColor(enabled)
			if err != nil {
				return err
			}
			return renderSettings(cmd, st)
		},
	}
	cmd.AddCommand(show, theme, dynamic)
	return cmd
}

func renderSettings(cmd *cobra.Command, st domain.Settings) error {
	return render(cmd, st, func(w io.Writer) {
		fmt.Fprintf(w, "Theme:         %s\n", st.Theme)
		fmt.Fprintf(w, "Dynamic color: %t\n", st.DynamicColor)
	})
}
