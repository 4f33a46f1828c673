package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/akulagin/storefront/internal/pages"
	"github.com/akulagin/storefront/internal/session"
	"github.com/akulagin/storefront/pkg/apiclient"
)

func (a *App) productsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd.Context(), "/products")
		},
	}
}

func (a *App) ordersCmd() *cobra.Command {
	var items []string
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List orders, optionally drafting and submitting a new one",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			page, err := a.Router.Navigate(ctx, "/orders", false)
			if err != nil {
				return err
			}
			orders := page.(*pages.OrdersPage)

			draft, err := parseItems(items)
			if err != nil {
				return err
			}
			for id, qty := range draft {
				orders.SetQuantity(id, qty)
			}
			if len(draft) > 0 && orders.CanSubmit() {
				if err := orders.Submit(ctx); err != nil {
					a.Log.Warn("order submit failed", "error", err)
				}
			}
			orders.Render(a.Out)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&items, "item", nil, "draft entry as productId=quantity, repeatable")
	return cmd
}

func (a *App) loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			page, err := a.Router.Navigate(ctx, "/login", false)
			if err != nil {
				return err
			}
			login := page.(*pages.LoginPage)
			if email != "" {
				login.Email = email
			}
			if password != "" {
				login.Password = password
			}
			if err := login.Submit(ctx); err != nil {
				login.Render(a.Out)
				return err
			}
			return a.followNav(ctx, login)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func (a *App) registerCmd() *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			page, err := a.Router.Navigate(ctx, "/register", false)
			if err != nil {
				return err
			}
			reg := page.(*pages.RegisterPage)
			if name != "" {
				reg.Name = name
			}
			if email != "" {
				reg.Email = email
			}
			if password != "" {
				reg.Password = password
			}
			if err := reg.Submit(ctx); err != nil {
				reg.Render(a.Out)
				return err
			}
			reg.Render(a.Out)
			return a.followNav(ctx, reg)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func (a *App) addProductCmd() *cobra.Command {
	var (
		name, description, price string
		stock                    int
		category, imageURL       string
		rating                   string
	)
	cmd := &cobra.Command{
		Use:   "add-product",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			page, err := a.Router.Navigate(ctx, "/add-product", false)
			if err != nil {
				return err
			}
			add := page.(*pages.AddProductPage)
			if name != "" {
				add.Input.Name = name
			}
			if description != "" {
				add.Input.Description = description
			}
			if price != "" {
				p, err := decimal.NewFromString(price)
				if err != nil {
					return fmt.Errorf("invalid price %q: %w", price, err)
				}
				add.Input.Price = p
			}
			if cmd.Flags().Changed("stock") {
				add.Input.StockQuantity = stock
			}
			if category != "" {
				add.Input.Category = category
			}
			if imageURL != "" {
				add.Input.ImageURL = imageURL
			}
			if rating != "" {
				add.Input.Rating = apiclient.Rating(strings.ToUpper(rating))
			}
			err = add.Submit(ctx)
			add.Render(a.Out)
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&description, "description", "", "product description")
	cmd.Flags().StringVar(&price, "price", "", "product price, e.g. 9.99")
	cmd.Flags().IntVar(&stock, "stock", 0, "stock quantity")
	cmd.Flags().StringVar(&category, "category", "", "category label")
	cmd.Flags().StringVar(&imageURL, "image-url", "", "image URL")
	cmd.Flags().StringVar(&rating, "rating", "", "GOOD, AVERAGE or EXCELLENT")
	return cmd
}

func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Router.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(a.Out, "Logged out.")
			return nil
		},
	}
}

func (a *App) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, ok := a.Store.Current()
			if !ok {
				fmt.Fprintln(a.Out, "Not logged in.")
				return nil
			}
			info, err := session.Describe(token)
			if err != nil {
				fmt.Fprintln(a.Out, "Logged in (opaque token).")
				return nil
			}
			fmt.Fprintf(a.Out, "Subject: %s\n", info.Subject)
			if info.Role != "" {
				fmt.Fprintf(a.Out, "Role: %s\n", info.Role)
			}
			if !info.ExpiresAt.IsZero() {
				fmt.Fprintf(a.Out, "Expires: %s\n", info.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
			}
			return nil
		},
	}
}

// parseItems turns repeated productId=quantity flags into a draft map.
func parseItems(raw []string) (map[int]int, error) {
	draft := map[int]int{}
	for _, item := range raw {
		idStr, qtyStr, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("invalid item %q: want productId=quantity", item)
		}
		id, err := strconv.Atoi(strings.TrimSpace(idStr))
		if err != nil {
			return nil, fmt.Errorf("invalid product id in %q: %w", item, err)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(qtyStr))
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in %q: %w", item, err)
		}
		draft[id] = qty
	}
	return draft, nil
}
