package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/akulagin/storefront/internal/pages"
	"github.com/akulagin/storefront/pkg/apiclient"
)

func (a *App) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session: navigate routes, edit drafts, submit forms",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell(cmd.Context())
		},
	}
}

func (a *App) runShell(ctx context.Context) error {
	if err := a.open(ctx, "/"); err != nil {
		return err
	}

	scanner := bufio.NewScanner(a.In)
	for {
		a.printNav()
		fmt.Fprint(a.Out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if done, err := a.dispatch(ctx, line); done {
			return err
		}
	}
}

// dispatch runs one shell line. It returns done=true when the shell
// should exit.
func (a *App) dispatch(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	switch {
	case line == "quit" || line == "exit":
		return true, nil

	case line == "logout":
		if err := a.Router.Logout(); err != nil {
			fmt.Fprintf(a.Out, "Error: %v\n", err)
			return false, nil
		}
		fmt.Fprintln(a.Out, "Logged out.")
		return false, a.open(ctx, "/")

	case line == "back":
		page, err := a.Router.Back(ctx)
		if err != nil {
			fmt.Fprintf(a.Out, "Error: %v\n", err)
			return false, nil
		}
		page.Render(a.Out)

	case strings.HasPrefix(line, "/"):
		page, err := a.Router.Navigate(ctx, line, false)
		if err != nil {
			fmt.Fprintf(a.Out, "Error: %v\n", err)
			return false, nil
		}
		page.Render(a.Out)

	case fields[0] == "set" && len(fields) == 3:
		a.shellSet(fields[1], fields[2])

	case fields[0] == "field" && len(fields) >= 3:
		a.shellField(fields[1], strings.Join(fields[2:], " "))

	case line == "submit":
		a.shellSubmit(ctx)

	default:
		fmt.Fprintln(a.Out, "Commands: /products /orders /login /register /add-product, set <id> <qty>, field <name> <value>, submit, back, logout, quit")
	}
	return false, nil
}

func (a *App) printNav() {
	fmt.Fprintln(a.Out, "[ Products /products | Orders /orders | Add Product /add-product | Login /login | Register /register | logout ]")
}

func (a *App) shellSet(idStr, qtyStr string) {
	orders, ok := a.Router.Active().(*pages.OrdersPage)
	if !ok {
		fmt.Fprintln(a.Out, "set works on /orders")
		return
	}
	id, err1 := strconv.Atoi(idStr)
	qty, err2 := strconv.Atoi(qtyStr)
	if err1 != nil || err2 != nil {
		fmt.Fprintln(a.Out, "usage: set <productId> <quantity>")
		return
	}
	orders.SetQuantity(id, qty)
	orders.Render(a.Out)
}

// shellField edits a form field on the active page.
func (a *App) shellField(name, value string) {
	switch page := a.Router.Active().(type) {
	case *pages.LoginPage:
		switch name {
		case "email":
			page.Email = value
		case "password":
			page.Password = value
		default:
			fmt.Fprintln(a.Out, "fields: email, password")
		}
	case *pages.RegisterPage:
		switch name {
		case "name":
			page.Name = value
		case "email":
			page.Email = value
		case "password":
			page.Password = value
		default:
			fmt.Fprintln(a.Out, "fields: name, email, password")
		}
	case *pages.AddProductPage:
		if !setProductField(&page.Input, name, value) {
			fmt.Fprintln(a.Out, "fields: name, description, price, stock, category, image-url, rating")
		}
	default:
		fmt.Fprintln(a.Out, "no editable fields here")
	}
}

func setProductField(in *apiclient.ProductInput, name, value string) bool {
	switch name {
	case "name":
		in.Name = value
	case "description":
		in.Description = value
	case "price":
		p, err := decimal.NewFromString(value)
		if err != nil {
			return false
		}
		in.Price = p
	case "stock":
		n, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		in.StockQuantity = n
	case "category":
		in.Category = value
	case "image-url":
		in.ImageURL = value
	case "rating":
		in.Rating = apiclient.Rating(strings.ToUpper(value))
	default:
		return false
	}
	return true
}

func (a *App) shellSubmit(ctx context.Context) {
	switch page := a.Router.Active().(type) {
	case *pages.OrdersPage:
		if !page.CanSubmit() {
			page.Render(a.Out)
			return
		}
		_ = page.Submit(ctx)
		page.Render(a.Out)
	case *pages.LoginPage:
		if err := page.Submit(ctx); err != nil {
			page.Render(a.Out)
			return
		}
		if err := a.followNav(ctx, page); err != nil {
			fmt.Fprintf(a.Out, "Error: %v\n", err)
		}
	case *pages.RegisterPage:
		if err := page.Submit(ctx); err != nil {
			page.Render(a.Out)
			return
		}
		page.Render(a.Out)
		if err := a.followNav(ctx, page); err != nil {
			fmt.Fprintf(a.Out, "Error: %v\n", err)
		}
	case *pages.AddProductPage:
		_ = page.Submit(ctx)
		page.Render(a.Out)
	default:
		fmt.Fprintln(a.Out, "nothing to submit here")
	}
}
