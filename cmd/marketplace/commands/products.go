package commands

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"marketplace/internal/domain"
	"marketplace/internal/money"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"p"},
		Short:   "Browse the product catalog",
	}
	cmd.AddCommand(productsSyncCmd(), productsListCmd(), productsShowCmd(), productsCategoriesCmd())
	return cmd
}

func productsSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Download the catalog into the local cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			products, err := wire.Catalog.FetchProducts(ctx)
			if err != nil {
				return err
			}
			return render(cmd, map[string]int{"synced": len(products)}, func(w io.Writer) {
				fmt.Fprintf(w, "Synced %d products\n", len(products))
			})
		},
	}
}

func productsListCmd() *cobra.Command {
	var (
		search     string
		categories []string
		sortKey    string
		desc       bool
		sync       bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Search the cached catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			filter := domain.ProductFilter{Query: search}
			for _, c := range categories {
				if !slices.Contains(filter.Categories, c) {
					filter.Categories = append(filter.Categories, c)
				}
			}
			if sortKey != "" {
				key, err := domain.ParseSortKey(sortKey)
				if err != nil {
					return err
				}
				filter = filter.SortBy(key, !desc)
			}

			if sync {
				if _, err := wire.Catalog.FetchProducts(ctx); err != nil {
					wire.Log.WithError(err).Warn("sync failed; listing cached products")
				}
			}
			products, err := wire.Catalog.Products(ctx, filter)
			if err != nil {
				return err
			}
			return render(cmd, products, func(w io.Writer) {
				if len(products) == 0 {
					fmt.Fprintln(w, "No products. Run `marketplace products sync` to fill the cache.")
					return
				}
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tPRICE\tRATING")
				for _, p := range products {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f (%d)\n",
						p.ID, truncate(p.Title, 48), p.Category, money.Format(p.Price, prices), p.Rating.Rate, p.Rating.Count)
				}
				_ = tw.Flush()
			})
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "title substring")
	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "restrict to categories (repeatable)")
	cmd.Flags().StringVar(&sortKey, "sort", "", "sort by name, price or rating")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().BoolVar(&sync, "sync", false, "refresh the cache first")
	return cmd
}

func productsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one product (falls back to the cache when offline)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			p, err := wire.Catalog.FetchProduct(ctx, id)
			if err != nil {
				return err
			}
			return render(cmd, p, func(w io.Writer) {
				fmt.Fprintf(w, "%s\n%s  ·  %s  ·  rated %.1f by %d\n\n%s\n%s\n",
					p.Title, money.Format(p.Price, prices), p.Category, p.Rating.Rate, p.Rating.Count, p.Description, p.Image)
			})
		},
	}
}

func productsCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List cached categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			cats, err := wire.Catalog.Categories(ctx)
			if err != nil {
				return err
			}
			return render(cmd, cats, func(w io.Writer) {
				for _, c := range cats {
					fmt.Fprintln(w, c)
				}
			})
		},
	}
}

func parseProductID(s string) (domain.ProductID, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid product id %q", s)
	}
	return domain.ProductID(n), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
