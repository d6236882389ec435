package commands

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"marketplace/internal/domain"
	"marketplace/internal/money"
)

func cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Edit the shopping cart",
	}
	cmd.AddCommand(
		cartAddCmd(),
		cartListCmd(),
		cartStepCmd("inc", "Add one to a cart line", func(c *cobra.Command, id domain.ProductID) error {
			ctx, cancel := commandContext(c)
			defer cancel()
			return wire.Cart.Increment(ctx, id)
		}),
		cartStepCmd("dec", "Take one from a cart line (removes it at zero)", func(c *cobra.Command, id domain.ProductID) error {
			ctx, cancel := commandContext(c)
			defer cancel()
			return wire.Cart.Decrement(ctx, id)
		}),
		cartStepCmd("rm", "Remove a cart line", func(c *cobra.Command, id domain.ProductID) error {
			ctx, cancel := commandContext(c)
			defer cancel()
			return wire.Cart.Remove(ctx, id)
		}),
		cartSetCmd(),
		cartClearCmd(),
		cartWatchCmd(),
	)
	return cmd
}

func cartAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id> [quantity]",
		Short: "Add a product to the cart",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			qty := 1
			if len(args) == 2 {
				if qty, err = strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("invalid quantity %q", args[1])
				}
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			if err := wire.Cart.Add(ctx, id, qty); err != nil {
				return err
			}
			return printCart(cmd)
		},
	}
}

func cartSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <product-id> <quantity>",
		Short: "Set a line's quantity (0 removes it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			if err := wire.Cart.SetQuantity(ctx, id, qty); err != nil {
				return err
			}
			return printCart(cmd)
		},
	}
}

func cartStepCmd(use, short string, run func(*cobra.Command, domain.ProductID) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <product-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			if err := run(cmd, id); err != nil {
				return err
			}
			return printCart(cmd)
		},
	}
}

func cartListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the cart",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCart(cmd)
		},
	}
}

func cartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			if err := wire.Cart.Clear(ctx); err != nil {
				return err
			}
			return printCart(cmd)
		},
	}
}

func cartWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the cart again after every change until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			for sum := range wire.Cart.Watch(ctx) {
				if err := renderCart(cmd, sum); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func printCart(cmd *cobra.Command) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()
	sum, err := wire.Cart.Summary(ctx)
	if err != nil {
		return err
	}
	return renderCart(cmd, sum)
}

func renderCart(cmd *cobra.Command, sum domain.CartSummary) error {
	return render(cmd, sum, func(w io.Writer) {
		if len(sum.Lines) == 0 {
			fmt.Fprintln(w, "Cart is empty")
			return
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tQTY\tPRICE\tSUBTOTAL")
		for _, l := range sum.Lines {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n",
				l.Product.ID, truncate(l.Product.Title, 40), l.Item.Quantity,
				money.Format(l.Product.Price, prices), money.Format(l.Subtotal(), prices))
		}
		fmt.Fprintf(tw, "\t\t%d\t\t%s\n", sum.TotalQuantity, money.Format(sum.TotalPrice, prices))
		_ = tw.Flush()
	})
}
