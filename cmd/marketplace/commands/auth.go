package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"marketplace/internal/services/auth"
)

func registerCmd() *cobra.Command {
	var email, password, confirm string
	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create a store account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			id, err := wire.Auth.Register(ctx, args[0], email, password, confirm)
			if err != nil {
				return err
			}
			return render(cmd, map[string]any{"id": id, "username": args[0]}, func(w io.Writer) {
				fmt.Fprintf(w, "Registered %s (id %d). Log in with `marketplace login`.\n", args[0], id)
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (at least 8 characters)")
	cmd.Flags().StringVar(&confirm, "confirm", "", "repeat the password")
	return cmd
}

func loginCmd() *cobra.Command {
	var demo bool
	cmd := &cobra.Command{
		Use:   "login [username] [password]",
		Short: "Sign in and store the session token",
		Args: func(cmd *cobra.Command, args []string) error {
			if demo {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			creds := auth.Credentials{}
			if demo {
				creds = auth.DemoCredentials()
			} else {
				creds = auth.Credentials{Username: args[0], Password: args[1]}
			}
			if _, err := wire.Auth.Login(ctx, creds.Username, creds.Password); err != nil {
				return err
			}
			st, err := wire.Auth.Status()
			if err != nil {
				return err
			}
			return render(cmd, st, func(w io.Writer) {
				fmt.Fprintf(w, "Logged in as %s\n", creds.Username)
			})
		},
	}
	cmd.Flags().BoolVar(&demo, "demo", false, "log in with a random public demo account")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the session, cached profile and cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			if err := wire.Profile.Logout(ctx); err != nil {
				return err
			}
			return render(cmd, map[string]bool{"logged_in": false}, func(w io.Writer) {
				fmt.Fprintln(w, "Logged out")
			})
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := wire.Auth.Status()
			if err != nil {
				return err
			}
			return render(cmd, st, func(w io.Writer) {
				if !st.LoggedIn {
					fmt.Fprintln(w, "Not logged in")
					return
				}
				name := st.Username
				if name == "" {
					name = "(unknown user)"
				}
				fmt.Fprintf(w, "%s (id %d)\nSession fingerprint: %s\n", name, st.UserID, st.Fingerprint)
			})
		},
	}
}
