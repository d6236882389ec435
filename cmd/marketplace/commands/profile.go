package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the signed-in user's profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			p, err := wire.Profile.Get(ctx)
			if err != nil {
				return err
			}
			return render(cmd, p, func(w io.Writer) {
				a := p.Address
				fmt.Fprintf(w, "%s (@%s)\n", p.Name.Full(), p.Username)
				fmt.Fprintf(w, "Email:   %s\nPhone:   %s\n", p.Email, p.Phone)
				fmt.Fprintf(w, "Address: %d %s, %s %s\n", a.Number, a.Street, a.City, a.Zipcode)
			})
		},
	}
}
