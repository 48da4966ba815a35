package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"restaurant-client/api"
	"restaurant-client/config"
	"restaurant-client/constants"
	"restaurant-client/models"
	"restaurant-client/repositories"
	"restaurant-client/services"
	"restaurant-client/storage"
)

func main() {
	config.LoadConfig()

	store, err := openStorage()
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	tokenRepo := repositories.NewTokenRepository(store)
	cartRepo := repositories.NewCartRepository(store)

	client := api.New(config.AppConfig.APIBaseURL, tokenRepo.Token)

	cartSvc := services.NewCartService(cartRepo)
	authSvc := services.NewAuthService(client, tokenRepo)
	productSvc := services.NewProductService(client)
	orderSvc := services.NewOrderService(client, cartSvc)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	command := os.Args[1]
	args := os.Args[2:]

	if err := run(ctx, command, args, authSvc, productSvc, cartSvc, orderSvc); err != nil {
		log.Fatalf("%v", err)
	}
}

func openStorage() (storage.KV, error) {
	switch config.AppConfig.StorageBackend {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "redis":
		return storage.NewRedisStore(storage.RedisOptions{
			URL:      config.AppConfig.RedisURL,
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
		})
	default:
		return storage.NewFileStore(config.AppConfig.DataDir)
	}
}

func run(ctx context.Context, command string, args []string, authSvc *services.AuthService, productSvc *services.ProductService, cartSvc *services.CartService, orderSvc *services.OrderService) error {
	switch command {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		fs.Parse(args)

		user, err := authSvc.Login(ctx, *email, *password)
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (%s)\n", user.Email, user.Role)

	case "logout":
		if err := authSvc.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("Logged out")

	case "menu":
		fs := flag.NewFlagSet("menu", flag.ExitOnError)
		page := fs.Int("page", 1, "page number")
		limit := fs.Int("limit", 20, "items per page")
		fs.Parse(args)

		products, meta, err := productSvc.List(ctx, *page, *limit)
		if err != nil {
			return err
		}
		for _, p := range products {
			fmt.Printf("%-12s %-30s %s\n", p.ID, p.Name, p.Price)
		}
		fmt.Printf("Page %d of %d\n", meta.Page, meta.TotalPages)

	case "add":
		fs := flag.NewFlagSet("add", flag.ExitOnError)
		qty := fs.Int("qty", 1, "quantity")
		options := fs.String("options", "", "customizations as key=value pairs, comma separated")
		fs.Parse(args)
		if fs.NArg() < 1 {
			return fmt.Errorf("usage: add <product-id> [-qty N] [-options size=L,milk=oat]")
		}

		product, err := productSvc.ByID(ctx, fs.Arg(0))
		if err != nil {
			return err
		}
		if err := cartSvc.AddItem(*product, *qty, parseOptions(*options)); err != nil {
			return err
		}
		printCart(cartSvc)

	case "remove":
		fs := flag.NewFlagSet("remove", flag.ExitOnError)
		options := fs.String("options", "", "customizations of the line to remove")
		fs.Parse(args)
		if fs.NArg() < 1 {
			return fmt.Errorf("usage: remove <product-id> [-options ...]")
		}

		if err := cartSvc.RemoveItem(fs.Arg(0), parseOptions(*options)); err != nil {
			return err
		}
		printCart(cartSvc)

	case "qty":
		fs := flag.NewFlagSet("qty", flag.ExitOnError)
		options := fs.String("options", "", "customizations of the line")
		fs.Parse(args)
		if fs.NArg() < 2 {
			return fmt.Errorf("usage: qty <product-id> <quantity> [-options ...]")
		}
		quantity, err := strconv.Atoi(fs.Arg(1))
		if err != nil {
			return fmt.Errorf("invalid quantity %q", fs.Arg(1))
		}

		if err := cartSvc.SetQuantity(fs.Arg(0), quantity, parseOptions(*options)); err != nil {
			return err
		}
		printCart(cartSvc)

	case "notes":
		fs := flag.NewFlagSet("notes", flag.ExitOnError)
		options := fs.String("options", "", "customizations of the line")
		fs.Parse(args)
		if fs.NArg() < 2 {
			return fmt.Errorf("usage: notes <product-id> <text> [-options ...]")
		}

		if err := cartSvc.SetNotes(fs.Arg(0), strings.Join(fs.Args()[1:], " "), parseOptions(*options)); err != nil {
			return err
		}
		printCart(cartSvc)

	case "cart":
		printCart(cartSvc)

	case "clear":
		if err := cartSvc.Clear(); err != nil {
			return err
		}
		fmt.Println("Cart cleared")

	case "checkout":
		fs := flag.NewFlagSet("checkout", flag.ExitOnError)
		deliveryType := fs.String("type", constants.DeliveryTypeTakeaway, "delivery type: local, takeaway or delivery")
		notes := fs.String("notes", "", "order notes")
		fs.Parse(args)

		order, err := orderSvc.Checkout(ctx, *deliveryType, *notes)
		if err != nil {
			return err
		}
		fmt.Printf("Order %s placed, status: %s\n", order.ID, constants.OrderStatusLabel(order.Status))

	case "status":
		status, err := orderSvc.RestaurantStatus(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Restaurant is %s\n", constants.RestaurantStatusLabel(status.Status))

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}

// parseOptions turns "size=L,milk=oat" into a customization set.
func parseOptions(raw string) models.Customizations {
	options := models.Customizations{}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, "=")
		if !found {
			options[key] = true
			continue
		}
		options[key] = value
	}
	return options
}

func printCart(cartSvc *services.CartService) {
	if cartSvc.IsEmpty() {
		fmt.Println("Cart is empty")
		return
	}
	for _, item := range cartSvc.Items() {
		line := fmt.Sprintf("%dx %-30s %s", item.Quantity, item.Name, item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		if len(item.Customizations) > 0 {
			line += fmt.Sprintf("  %v", item.Customizations)
		}
		if item.Notes != "" {
			line += fmt.Sprintf("  (%s)", item.Notes)
		}
		fmt.Println(line)
	}
	fmt.Printf("Total: %s (%d items)\n", cartSvc.Total(), cartSvc.ItemCount())
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: restaurant-client <command> [flags]

Commands:
  login      -email -password        sign in
  logout                             sign out
  menu       [-page] [-limit]        browse products
  add        <product-id> [-qty] [-options k=v,...]
  remove     <product-id> [-options]
  qty        <product-id> <quantity> [-options]
  notes      <product-id> <text> [-options]
  cart                               show the cart
  clear                              empty the cart
  checkout   [-type] [-notes]        place the order
  status                             restaurant status`)
}
