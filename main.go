package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/minhtran-dev/canteen-client/config"
	"github.com/minhtran-dev/canteen-client/models"
	"github.com/minhtran-dev/canteen-client/services"
	"github.com/minhtran-dev/canteen-client/session"
	"github.com/minhtran-dev/canteen-client/stores"
	"github.com/minhtran-dev/canteen-client/utils"
)

type app struct {
	cfg          *config.Config
	store        *stores.SnapshotStore
	auth         *services.AuthService
	tables       *services.TableService
	reservations *services.ReservationService
	products     *services.ProductService
	carts        *services.CartService
	orders       *services.OrderService
	session      *session.Session
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	utils.InitLogger()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg := config.Load()
	store, err := stores.Open(cfg.SnapshotPath)
	if err != nil {
		utils.ErrorLogger.Fatalf("open snapshot store: %v", err)
	}

	client := services.NewClient(cfg, &services.StoreTokenSource{Store: store})
	a := &app{
		cfg:          cfg,
		store:        store,
		auth:         services.NewAuthService(client, store),
		tables:       services.NewTableService(client),
		reservations: services.NewReservationService(client),
		products:     services.NewProductService(client),
		carts:        services.NewCartService(client),
		orders:       services.NewOrderService(client),
	}
	a.session = session.New(a.tables, a.reservations, store, cfg.DefaultPartySize)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout+5*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "login":
		err = a.loginCmd(ctx, os.Args[2:])
	case "tables":
		err = a.tablesCmd(ctx, os.Args[2:])
	case "slots":
		err = a.slotsCmd(ctx, os.Args[2:])
	case "hold":
		err = a.holdCmd(ctx, os.Args[2:])
	case "cancel":
		err = a.cancelCmd(ctx)
	case "menu":
		err = a.menuCmd(ctx, os.Args[2:])
	case "cart":
		err = a.cartCmd(ctx, os.Args[2:])
	case "order":
		err = a.orderCmd(ctx, os.Args[2:])
	case "status":
		err = a.statusCmd()
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		utils.ErrorLogger.Fatalf("%v", err)
	}
}

func usage() {
	fmt.Println("usage: canteen-client <command> [flags]")
	fmt.Println()
	fmt.Println("commands:")
	fmt.Println("  login   -user <email> -pass <password>")
	fmt.Println("  tables  [-date YYYY-MM-DD] [-slot HH:MM-HH:MM]")
	fmt.Println("  slots   -table <id> [-date YYYY-MM-DD]")
	fmt.Println("  hold    -table <id> -slot HH:MM-HH:MM [-date YYYY-MM-DD] [-party N]")
	fmt.Println("  cancel")
	fmt.Println("  menu    [-category <id>] [-search <keyword>] [-all]")
	fmt.Println("  cart    [-add <product id> [-qty N]] [-remove <item id>] [-clear]")
	fmt.Println("  order   [-notes <text>]")
	fmt.Println("  status")
}

func (a *app) loginCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	user := fs.String("user", "", "account email")
	pass := fs.String("pass", "", "password")
	_ = fs.Parse(args)
	if *user == "" || *pass == "" {
		return fmt.Errorf("login requires -user and -pass")
	}
	if _, err := a.auth.Login(ctx, *user, *pass); err != nil {
		return err
	}
	me, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	utils.InfoLogger.Printf("signed in as %s (%s)", me.FullName, me.Email)
	return nil
}

func (a *app) tablesCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tables", flag.ExitOnError)
	date := fs.String("date", "", "reservation date (YYYY-MM-DD)")
	slotID := fs.String("slot", "", "time slot id, e.g. 12:00-13:00")
	_ = fs.Parse(args)

	if *date != "" {
		if err := a.session.SetDate(ctx, *date); err != nil {
			return err
		}
	}
	if *slotID != "" {
		if err := a.session.SelectSlot(*slotID); err != nil {
			return err
		}
		if err := a.session.ConfirmSlot(ctx); err != nil {
			return err
		}
	} else if _, err := a.session.RefreshTables(ctx); err != nil {
		return err
	}

	state := a.session.State()
	if state.ConfirmedSlot != nil {
		fmt.Printf("tables on %s, window %s:\n", state.ReservationDate, state.ConfirmedSlot.Label)
	} else {
		fmt.Printf("tables right now:\n")
	}
	for _, t := range a.session.Tables() {
		fmt.Printf("  #%-4d table %-6s %-20s %2d seats  %s\n", t.ID, t.TableNumber, t.Location, t.Capacity, t.Status)
	}
	return nil
}

func (a *app) slotsCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("slots", flag.ExitOnError)
	tableID := fs.Uint("table", 0, "table id")
	date := fs.String("date", "", "reservation date (YYYY-MM-DD)")
	_ = fs.Parse(args)
	if *tableID == 0 {
		return fmt.Errorf("slots requires -table")
	}
	if *date != "" {
		if err := a.session.SetDate(ctx, *date); err != nil {
			return err
		}
	}

	board, err := a.session.LoadSlotStatuses(ctx, uint(*tableID))
	if err != nil {
		return err
	}
	fmt.Printf("slots for table %d on %s:\n", *tableID, a.session.State().ReservationDate)
	for _, entry := range board {
		marker := " "
		switch entry.Status {
		case models.SlotBooked:
			marker = "x"
		case models.SlotMine:
			marker = "*"
		}
		fmt.Printf("  [%s] %s\n", marker, entry.Slot.Label)
	}
	return nil
}

func (a *app) holdCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("hold", flag.ExitOnError)
	tableID := fs.Uint("table", 0, "table id")
	slotID := fs.String("slot", "", "time slot id, e.g. 12:00-13:00")
	date := fs.String("date", "", "reservation date (YYYY-MM-DD)")
	party := fs.Int("party", 0, "party size")
	_ = fs.Parse(args)
	if *tableID == 0 || *slotID == "" {
		return fmt.Errorf("hold requires -table and -slot")
	}

	if *date != "" {
		if err := a.session.SetDate(ctx, *date); err != nil {
			return err
		}
	}
	if *party > 0 {
		if err := a.session.SetPartySize(*party); err != nil {
			return err
		}
	}
	if err := a.session.SelectSlot(*slotID); err != nil {
		return err
	}
	if err := a.session.ConfirmSlot(ctx); err != nil {
		return err
	}
	if err := a.session.SelectTable(uint(*tableID)); err != nil {
		return err
	}
	if _, err := a.session.PrepareReservation(); err != nil {
		return err
	}
	held, err := a.session.EnsureReservation(ctx)
	if err != nil {
		return err
	}
	utils.InfoLogger.Printf("holding table %d from %s to %s (reservation %d)",
		held.TableID, held.StartTime.Format("15:04"), held.EndTime.Format("15:04"), *held.ID)
	return nil
}

func (a *app) cancelCmd(ctx context.Context) error {
	if a.session.SelectedReservation() == nil {
		fmt.Println("nothing held")
		return nil
	}
	if err := a.session.CancelReservation(ctx); err != nil {
		return err
	}
	a.session.ClearSelectedTable()
	fmt.Println("reservation released")
	return nil
}

func (a *app) menuCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("menu", flag.ExitOnError)
	categoryID := fs.Uint("category", 0, "filter by category id")
	search := fs.String("search", "", "search products by name")
	all := fs.Bool("all", false, "include unavailable products")
	_ = fs.Parse(args)

	if *categoryID == 0 && *search == "" {
		categories, err := a.products.Categories(ctx)
		if err != nil {
			return err
		}
		fmt.Println("categories:")
		for _, cat := range categories {
			fmt.Printf("  #%-4d %s\n", cat.ID, cat.Name)
		}
		fmt.Println()
	}

	products, err := a.products.List(ctx, &services.ProductFilter{
		CategoryID:         uint(*categoryID),
		Search:             *search,
		IncludeUnavailable: *all,
	})
	if err != nil {
		return err
	}
	fmt.Println("products:")
	for _, p := range products {
		note := ""
		if !p.IsAvailable {
			note = "  (unavailable)"
		}
		fmt.Printf("  #%-4d %-24s %10.2f%s\n", p.ID, p.Name, p.Price, note)
	}
	return nil
}

func (a *app) cartCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cart", flag.ExitOnError)
	add := fs.Uint("add", 0, "product id to add")
	qty := fs.Int("qty", 1, "quantity for -add")
	remove := fs.Uint("remove", 0, "cart item id to remove")
	clear := fs.Bool("clear", false, "empty the cart")
	_ = fs.Parse(args)

	if *clear {
		if err := a.carts.Clear(ctx); err != nil {
			return err
		}
	}
	if *remove != 0 {
		if err := a.carts.RemoveItem(ctx, uint(*remove)); err != nil {
			return err
		}
	}
	if *add != 0 {
		if _, err := a.carts.AddItem(ctx, uint(*add), *qty); err != nil {
			return err
		}
	}

	cart, err := a.carts.Get(ctx)
	if err != nil {
		return err
	}
	if len(cart.Items) == 0 {
		fmt.Println("cart is empty")
		return nil
	}
	fmt.Println("cart:")
	for _, item := range cart.Items {
		name := fmt.Sprintf("product %d", item.ProductID)
		if item.Product != nil {
			name = item.Product.Name
		}
		fmt.Printf("  #%-4d %-24s x%-3d %10.2f\n", item.ID, name, item.Quantity, item.PriceAtTime)
	}
	fmt.Printf("total: %.2f\n", cart.Total())
	return nil
}

func (a *app) orderCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("order", flag.ExitOnError)
	notes := fs.String("notes", "", "order notes")
	_ = fs.Parse(args)

	table := a.session.SelectedTable()
	if table == nil {
		return fmt.Errorf("hold a table before ordering")
	}
	reservation, err := a.session.EnsureReservation(ctx)
	if err != nil {
		return err
	}
	cart, err := a.carts.Get(ctx)
	if err != nil {
		return err
	}
	if len(cart.Items) == 0 {
		return fmt.Errorf("cart is empty")
	}

	order, err := a.orders.Create(ctx, &models.OrderCreate{
		TableID:       table.ID,
		ReservationID: reservation.ID,
		Notes:         *notes,
		Items:         cart.OrderItems(),
	})
	if err != nil {
		return err
	}
	utils.InfoLogger.Printf("order %d placed for table %s, total %.2f", order.ID, table.TableNumber, order.TotalAmount)
	return nil
}

func (a *app) statusCmd() error {
	state := a.session.State()
	fmt.Printf("date:       %s\n", state.ReservationDate)
	fmt.Printf("party size: %d\n", state.PartySize)
	fmt.Printf("step:       %s\n", a.session.Step())
	if slot := state.ConfirmedSlot; slot != nil {
		fmt.Printf("window:     %s\n", slot.Label)
	}
	if table := a.session.SelectedTable(); table != nil {
		fmt.Printf("table:      %s (%s)\n", table.TableNumber, table.Location)
	}
	if r := a.session.SelectedReservation(); r != nil {
		id := "pending"
		if !r.Pending() {
			id = fmt.Sprintf("%d", *r.ID)
		}
		fmt.Printf("hold:       %s - %s (reservation %s)\n",
			r.StartTime.Format("15:04"), r.EndTime.Format("15:04"), id)
	}
	return nil
}
