package storefront

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/cartcraft/backend/internal/cart"
	"github.com/cartcraft/backend/internal/usecase"
	"github.com/cartcraft/backend/pkg/logger"
)

// App — командная оболочка витрины поверх клиента API и локальной корзины.
type App struct {
	client *Client
	store  cart.Store
	logger logger.Logger
	out    io.Writer
}

func NewApp(client *Client, store cart.Store, logger logger.Logger, out io.Writer) *App {
	return &App{
		client: client,
		store:  store,
		logger: logger,
		out:    out,
	}
}

// Run выполняет одну команду витрины:
//
//	products [limit] [skip]      — страница каталога
//	cart add <id>                — добавить товар в корзину
//	cart set <id> <qty>          — заменить количество
//	cart rm <id>                 — убрать товар
//	cart show | clear            — показать / очистить корзину
//	checkout                     — оформить заказ
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("command required: products | cart | checkout")
	}

	switch args[0] {
	case "products":
		return a.listProducts(ctx, args[1:])
	case "cart":
		return a.cartCommand(ctx, args[1:])
	case "checkout":
		return a.checkout(ctx)
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func (a *App) listProducts(ctx context.Context, args []string) error {
	limit, skip := int64(10), int64(0)
	if len(args) > 0 {
		limit = parseIntArg(args[0], limit)
	}
	if len(args) > 1 {
		skip = parseIntArg(args[1], skip)
	}

	products, err := a.client.GetPaginatedProducts(ctx, limit, skip)
	if err != nil {
		return err
	}

	for _, product := range products {
		price := usecase.DiscountedPrice(product.Price, product.DiscountPercentage)
		if product.DiscountPercentage != nil {
			fmt.Fprintf(a.out, "%3d  %-30s %9.2f (was %.2f)  %s\n",
				product.ID, product.Name, price, product.Price, product.Brand)
			continue
		}
		fmt.Fprintf(a.out, "%3d  %-30s %9.2f  %s\n", product.ID, product.Name, price, product.Brand)
	}

	return nil
}

func (a *App) cartCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("cart subcommand required: add | set | rm | show | clear")
	}

	switch args[0] {
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: cart add <id>")
		}
		return a.cartAdd(ctx, args[1])
	case "set":
		if len(args) < 3 {
			return fmt.Errorf("usage: cart set <id> <qty>")
		}
		return a.cartSet(args[1], args[2])
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: cart rm <id>")
		}
		return a.cartRemove(args[1])
	case "show":
		return a.cartShow()
	case "clear":
		a.store.Clear()
		fmt.Fprintln(a.out, "Cart cleared")
		return nil
	default:
		return fmt.Errorf("unknown cart subcommand: %s", args[0])
	}
}

func (a *App) cartAdd(ctx context.Context, rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id: %s", rawID)
	}

	product, err := a.client.GetProductByID(ctx, id)
	if err != nil {
		return err
	}

	items := cart.Add(a.store.Load(), *product)
	a.store.Save(items)
	fmt.Fprintf(a.out, "Added %s to cart (%d items)\n", product.Name, cart.TotalUnits(items))

	return nil
}

func (a *App) cartSet(rawID, rawQty string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id: %s", rawID)
	}

	qty, err := strconv.ParseInt(rawQty, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid quantity: %s", rawQty)
	}

	items := cart.SetQuantity(a.store.Load(), id, qty)
	a.store.Save(items)
	fmt.Fprintf(a.out, "Cart updated (%d items)\n", cart.TotalUnits(items))

	return nil
}

func (a *App) cartRemove(rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id: %s", rawID)
	}

	items := cart.Remove(a.store.Load(), id)
	a.store.Save(items)
	fmt.Fprintf(a.out, "Cart updated (%d items)\n", cart.TotalUnits(items))

	return nil
}

func (a *App) cartShow() error {
	items := a.store.Load()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Cart is empty")
		return nil
	}

	for _, item := range items {
		price := usecase.DiscountedPrice(item.Product.Price, item.Product.DiscountPercentage)
		fmt.Fprintf(a.out, "%3d  %-30s x%-3d %9.2f\n",
			item.Product.ID, item.Product.Name, item.Quantity,
			usecase.LineTotal(price, item.Quantity).InexactFloat64())
	}
	fmt.Fprintf(a.out, "Total units: %d\n", cart.TotalUnits(items))

	return nil
}

// checkout оформляет заказ по текущей корзине. При отказе бэкенда корзина
// остаётся нетронутой, при успехе (включая мок-заказ) — очищается.
func (a *App) checkout(ctx context.Context) error {
	items := a.store.Load()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Cart is empty, nothing to checkout")
		return nil
	}

	order, err := a.client.CreateOrder(ctx, cart.ExpandToUnitList(items))
	if err != nil {
		// Корзина сохраняется для повторной попытки
		fmt.Fprintf(a.out, "Order failed: %v\n", err)
		return err
	}

	a.printOrder(order)
	a.store.Clear()

	return nil
}

func (a *App) printOrder(order *OrderResult) {
	fmt.Fprintf(a.out, "Order ID: %d\n", order.ID)
	fmt.Fprintf(a.out, "User ID: %d\n", order.UserID)
	for _, item := range order.Products {
		fmt.Fprintf(a.out, "- %s (x%d) - $%.2f\n",
			item.Name, item.Quantity, usecase.LineTotal(item.Price, item.Quantity).InexactFloat64())
	}
	fmt.Fprintf(a.out, "Total Amount: $%.2f\n", order.TotalAmount)
	fmt.Fprintf(a.out, "Status: %s\n", order.Status)
	if order.Mock {
		fmt.Fprintln(a.out, "(backend unavailable, order synthesized locally)")
	}
}

func parseIntArg(raw string, defaultValue int64) int64 {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return defaultValue
	}

	return v
}
