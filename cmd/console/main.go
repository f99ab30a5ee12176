// The console command is a terminal front end for the invoicing API: log
// in, manage clients, create and watch invoices, simulate payments on a
// public link and inspect the settlement dashboard.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/config"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/console"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/currency"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/gateway"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/logging"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen)
	warning = color.New(color.FgYellow)
	failure = color.New(color.FgRed)
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		failure.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: console <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  register <email>                  create an account")
	fmt.Println("  login <email>                     log in and store the token")
	fmt.Println("  logout                            drop the stored token")
	fmt.Println("  clients                           list clients")
	fmt.Println("  add-client <name> <email> [addr]  create a client")
	fmt.Println("  invoices                          list invoices")
	fmt.Println("  new-invoice <client_id> <due> <ccy> <desc:qty:price>...")
	fmt.Println("  watch <invoice_id>                poll an invoice until paid")
	fmt.Println("  pay <link_id> [success|failed]    simulate a payment on a public link")
	fmt.Println("  dashboard                         show KPIs and virtual accounts")
	fmt.Println("  provision <currency>              request a virtual account")
	fmt.Println("  settle                            process pending settlements")
	fmt.Println("  download <invoice_id> [fira]      save the invoice PDF or FIRA")
}

func run(args []string) error {
	if len(args) < 1 {
		usage()
		return nil
	}
	cfg, err := config.LoadConsole(slog.Default())
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log)

	tokenFile := cfg.Console.TokenFile
	if tokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		tokenFile = filepath.Join(home, ".skydo", "token")
	}
	session, err := gateway.NewSession(gateway.NewFileTokenStore(tokenFile))
	if err != nil {
		return err
	}
	gw := gateway.New(cfg.Console, session, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cmd := args[0]; cmd {
	case "register":
		return register(ctx, gw, args[1:])
	case "login":
		return login(ctx, gw, args[1:])
	case "logout":
		return gw.Logout()
	case "clients":
		return listClients(ctx, gw)
	case "add-client":
		return addClient(ctx, gw, args[1:])
	case "invoices":
		return listInvoices(ctx, gw)
	case "new-invoice":
		return newInvoice(ctx, gw, args[1:])
	case "watch":
		return watch(ctx, gw, cfg.Console, logger, args[1:])
	case "pay":
		return pay(ctx, gw, logger, args[1:])
	case "dashboard":
		return dashboard(ctx, gw, logger)
	case "provision":
		return provision(ctx, gw, logger, args[1:])
	case "settle":
		return settle(ctx, gw, logger)
	case "download":
		return download(ctx, gw, args[1:])
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func register(ctx context.Context, gw *gateway.Gateway, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: register <email>")
	}
	password, err := promptPassword()
	if err != nil {
		return err
	}
	if err := gw.Register(ctx, gateway.Credentials{Email: args[0], Password: password}); err != nil {
		return err
	}
	success.Println("Registered. A USD virtual account was provisioned for you.")
	return nil
}

func login(ctx context.Context, gw *gateway.Gateway, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: login <email>")
	}
	password, err := promptPassword()
	if err != nil {
		return err
	}
	if err := gw.Login(ctx, gateway.Credentials{Email: args[0], Password: password}); err != nil {
		return err
	}
	success.Println("Logged in.")
	return nil
}

func listClients(ctx context.Context, gw *gateway.Gateway) error {
	clients, err := gw.ListClients(ctx)
	if err != nil {
		return err
	}
	heading.Println("Clients")
	for _, c := range clients {
		fmt.Printf("  #%d  %s  <%s>  %s\n", c.ID, c.Name, c.Email, c.Address)
	}
	if len(clients) == 0 {
		fmt.Println("  (none)")
	}
	return nil
}

func addClient(ctx context.Context, gw *gateway.Gateway, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: add-client <name> <email> [address]")
	}
	input := gateway.ClientInput{Name: args[0], Email: args[1]}
	if len(args) > 2 {
		input.Address = args[2]
	}
	c, err := gw.CreateClient(ctx, input)
	if err != nil {
		return err
	}
	success.Printf("Created client #%d %s\n", c.ID, c.Name)
	return nil
}

func listInvoices(ctx context.Context, gw *gateway.Gateway) error {
	invoices, err := gw.ListInvoices(ctx)
	if err != nil {
		return err
	}
	heading.Println("Invoices")
	for _, inv := range invoices {
		name := "-"
		if inv.Client != nil {
			name = inv.Client.Name
		}
		fmt.Printf("  #%d  %-20s  due %s  %s  [%s]\n",
			inv.ID, name, inv.DueDate,
			currency.Amount(inv.Currency, inv.TotalAmount), inv.Status)
	}
	if len(invoices) == 0 {
		fmt.Println("  (none)")
	}
	return nil
}

// newInvoice builds the invoice through the form controller so the same
// validation the UI applies also guards the CLI.
func newInvoice(ctx context.Context, gw *gateway.Gateway, args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("usage: new-invoice <client_id> <due YYYY-MM-DD> <currency> <desc:qty:price>...")
	}
	clientID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid client id %q", args[0])
	}
	form := console.NewInvoiceForm()
	form.ClientID = clientID
	form.DueDate = args[1]
	form.Currency = args[2]
	for _, spec := range args[3:] {
		item, err := parseItem(spec)
		if err != nil {
			return err
		}
		form.AddItem(item)
	}
	fmt.Println("Preview total:", form.PreviewTotalDisplay())
	inv, err := form.Submit(ctx, gw)
	if err != nil {
		return err
	}
	success.Printf("Created invoice #%d, total %s\n",
		inv.ID, currency.Amount(inv.Currency, inv.TotalAmount))
	fmt.Println("Payment link:", inv.PaymentLinkID)
	return nil
}

func parseItem(spec string) (domain.InvoiceItem, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 {
		return domain.InvoiceItem{}, fmt.Errorf("invalid item %q, want desc:qty:price", spec)
	}
	qty, err := strconv.Atoi(parts[1])
	if err != nil {
		return domain.InvoiceItem{}, fmt.Errorf("invalid quantity in %q", spec)
	}
	unitPrice, err := decimal.NewFromString(parts[2])
	if err != nil {
		return domain.InvoiceItem{}, fmt.Errorf("invalid price in %q", spec)
	}
	return domain.InvoiceItem{Description: parts[0], Quantity: qty, UnitPrice: unitPrice}, nil
}

func watch(ctx context.Context, gw *gateway.Gateway, cfg config.Console, logger *slog.Logger, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: watch <invoice_id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid invoice id %q", args[0])
	}
	watcher := console.NewWatcher(gw, cfg.PollInterval, logger)
	heading.Printf("Watching invoice #%d (Ctrl-C to stop)\n", id)
	for snap := range watcher.Watch(ctx, id) {
		if snap.Err != nil {
			warning.Println("fetch failed, retrying:", snap.Err)
			continue
		}
		printInvoice(snap.Invoice)
		if snap.Paid() {
			success.Println("Invoice is paid.")
			if snap.Transaction != nil {
				printTransaction(snap.Transaction)
			} else {
				fmt.Println("No settlement data yet.")
			}
		}
	}
	return nil
}

func printInvoice(inv *domain.Invoice) {
	fmt.Printf("  status=%s  total=%s  due=%s\n",
		inv.Status, currency.Amount(inv.Currency, inv.TotalAmount), inv.DueDate)
	for _, it := range inv.Items {
		fmt.Printf("    %-24s %d x %s = %s\n",
			it.Description, it.Quantity,
			currency.Amount(inv.Currency, it.UnitPrice),
			currency.LineTotal(inv.Currency, it.Quantity, it.UnitPrice))
	}
}

func printTransaction(tx *domain.Transaction) {
	heading.Println("Settlement")
	fmt.Println("  Sender:       ", tx.SenderName)
	fmt.Println("  Principal:    ", currency.Principal(tx.PrincipalAmount, tx.Currency))
	fmt.Println("  FX rate:      ", tx.FxRate.String())
	fmt.Println("  Flat fee:     ", currency.FeeUSD(tx.FlatFeeUSD))
	fmt.Println("  GST on fee:   ", currency.GSTINR(tx.GstOnFeeINR))
	fmt.Println("  Net payout:   ", currency.NetPayoutINR(tx.NetPayoutINR))
	fmt.Println("  Settlement:   ", tx.Settlement)
}

func pay(ctx context.Context, gw *gateway.Gateway, logger *slog.Logger, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: pay <link_id> [success|failed]")
	}
	page := console.NewPaymentPage(gw, args[0], logger)
	if err := page.Load(ctx); err != nil {
		return err
	}
	inv := page.Invoice()
	printInvoice(inv)
	if page.Confirmed() {
		success.Println("This invoice is already paid.")
		return nil
	}
	outcome := "success"
	if len(args) > 1 {
		outcome = args[1]
	}
	if outcome == "failed" {
		if err := page.SimulateFailure(ctx); err != nil {
			return err
		}
		warning.Println("Simulated a failed payment. The invoice remains payable.")
		return nil
	}
	if err := page.SimulateSuccess(ctx, "Mock Payer Inc."); err != nil {
		return err
	}
	success.Println("Payment simulated. The invoice is now paid.")
	return nil
}

func dashboard(ctx context.Context, gw *gateway.Gateway, logger *slog.Logger) error {
	ctrl := console.NewDashboardController(gw, logger)
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	data := ctrl.Data()
	heading.Println("KPIs")
	fmt.Printf("  Total revenue:       ₹%.2f\n", data.KPIs.TotalRevenue)
	fmt.Printf("  Outstanding:         %.2f\n", data.KPIs.OutstandingAmount)
	fmt.Printf("  Invoices:            %d\n", data.KPIs.TotalInvoices)
	fmt.Printf("  Pending settlements: %d\n", data.KPIs.PendingSettlementsCount)
	heading.Println("Revenue by month")
	for _, p := range data.MonthlyRevenue {
		fmt.Printf("  %s  ₹%.2f\n", p.Month, p.Revenue)
	}
	heading.Println("Revenue by client")
	for _, c := range data.ClientRevenue {
		fmt.Printf("  %-24s ₹%.2f\n", c.Name, c.Value)
	}
	heading.Println("Virtual accounts")
	for _, a := range ctrl.Accounts() {
		fmt.Printf("  %s  %s  acct %s  routing %s  (%s)\n",
			a.Currency, a.BankName, a.AccountNumber, a.RoutingCode, a.Provider)
	}
	if candidates := ctrl.ProvisioningCandidates(); len(candidates) > 0 {
		fmt.Println("Available to provision:", candidates)
	}
	return nil
}

func provision(ctx context.Context, gw *gateway.Gateway, logger *slog.Logger, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: provision <currency>")
	}
	ctrl := console.NewDashboardController(gw, logger)
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	if err := ctrl.ProvisionAccount(ctx, args[0]); err != nil {
		return err
	}
	success.Printf("Provisioned a %s virtual account.\n", args[0])
	return nil
}

func settle(ctx context.Context, gw *gateway.Gateway, logger *slog.Logger) error {
	ctrl := console.NewDashboardController(gw, logger)
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	count, err := ctrl.ProcessSettlements(ctx)
	if err != nil {
		return err
	}
	success.Printf("Settled %d transactions.\n", count)
	return nil
}

func download(ctx context.Context, gw *gateway.Gateway, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: download <invoice_id> [fira]")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid invoice id %q", args[0])
	}
	kind := "invoice"
	var body []byte
	if len(args) > 1 && args[1] == "fira" {
		kind = "fira"
		body, err = gw.DownloadFIRA(ctx, id)
	} else {
		body, err = gw.DownloadInvoicePDF(ctx, id)
	}
	if err != nil {
		return err
	}
	name := fmt.Sprintf("%s_%d.pdf", kind, id)
	if err := os.WriteFile(name, body, 0o644); err != nil {
		return err
	}
	success.Println("Saved", name)
	return nil
}
