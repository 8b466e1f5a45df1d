// Command cli drives the state layer end to end against a running
// backend: log in, list resources, show the exchange-rate board.
package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/jbadilla/finanzas-go/pkg/apiclient"
	"github.com/jbadilla/finanzas-go/pkg/auth"
	"github.com/jbadilla/finanzas-go/pkg/config"
	"github.com/jbadilla/finanzas-go/pkg/domain"
	"github.com/jbadilla/finanzas-go/pkg/logging"
	"github.com/jbadilla/finanzas-go/pkg/rates"
	"github.com/jbadilla/finanzas-go/pkg/state/accounts"
	"github.com/jbadilla/finanzas-go/pkg/state/dashboard"
	"github.com/jbadilla/finanzas-go/pkg/state/exchangerates"
	"github.com/jbadilla/finanzas-go/pkg/state/goals"
	"github.com/jbadilla/finanzas-go/pkg/state/session"
	"github.com/jbadilla/finanzas-go/pkg/state/warranties"
	"github.com/jbadilla/finanzas-go/pkg/view"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: cli <command> [arguments]")
		fmt.Println("Commands: login <email>, accounts, goals [active|paused|achieved], warranties, rates, dashboard")
		return
	}

	bootLogger := logging.Setup(&config.Log{Format: "text", Prefix: "[finanzas]"})
	cfg, err := config.Load(bootLogger)
	if err != nil {
		bootLogger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := logging.Setup(&cfg.Log)

	tokens := auth.NewContext()
	api := apiclient.New(cfg.API.BaseURL, cfg.API.Timeout, tokens, logger)
	aggregator := rates.NewAggregator(
		rates.NewHaciendaProvider(cfg.Rates.PrimaryURL, cfg.Rates.Timeout),
		rates.NewOpenExchangeProvider(cfg.Rates.SecondaryURL, cfg.Rates.Timeout),
		cfg.Rates.FallbackEURMultiplier,
		cfg.Rates.CacheTTL,
		logger,
	)

	ctx := context.Background()
	bold := color.New(color.Bold)
	warn := color.New(color.FgYellow)

	switch os.Args[1] {
	case "login":
		if len(os.Args) < 3 {
			fmt.Println("Usage: login <email>")
			return
		}
		fmt.Print("Password: ")
		pw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			logger.Error("failed to read password", "error", err)
			os.Exit(1)
		}
		sess := session.New(api, tokens, logger)
		user, err := sess.Login(ctx, os.Args[2], string(pw))
		if err != nil {
			logger.Error("login failed", "error", err)
			os.Exit(1)
		}
		bold.Printf("Welcome %s\n", user.Name)
	case "accounts":
		mgr := accounts.New(api, logger)
		items, err := mgr.Load(ctx)
		if err != nil {
			logger.Error("failed to load accounts", "error", err)
			os.Exit(1)
		}
		for _, a := range items {
			fmt.Printf("%4d  %-30s %-20s %s\n",
				a.ID, a.Name, a.AccountType, view.FormatAmount(a.Currency, a.Balance))
		}
	case "goals":
		mgr := goals.New(api, logger)
		items, err := mgr.Load(ctx)
		if err != nil {
			logger.Error("failed to load goals", "error", err)
			os.Exit(1)
		}
		if len(os.Args) > 2 {
			switch os.Args[2] {
			case "active":
				items = mgr.ByState(domain.GoalActive)
			case "paused":
				items = mgr.ByState(domain.GoalPaused)
			case "achieved":
				items = mgr.ByState(domain.GoalAchieved)
			}
		}
		for _, g := range items {
			progress := view.GoalProgress(g.CurrentQuantity, g.Quantity)
			fmt.Printf("%-30s %-8s %5.1f%%  meta %s\n",
				g.Name, g.State, progress*100, view.FormatDate(g.GoalDate))
		}
	case "warranties":
		mgr := warranties.New(api, logger)
		items, err := mgr.Load(ctx)
		if err != nil {
			logger.Error("failed to load warranties", "error", err)
			os.Exit(1)
		}
		for _, w := range items {
			line := fmt.Sprintf("%4d  %-30s %-10s vence %s (%d días)",
				w.ID, w.Name, view.IconCategory(w.Icon),
				view.FormatDate(w.ExpirationDate), w.DaysRemaining)
			if w.IsExpired {
				warn.Println(line)
			} else {
				fmt.Println(line)
			}
		}
	case "rates":
		mgr := exchangerates.New(api, aggregator, logger)
		board, err := mgr.LoadBoard(ctx)
		if err != nil {
			logger.Error("failed to load rate board", "error", err)
			os.Exit(1)
		}
		bold.Println("USD  compra / venta")
		fmt.Printf("     %.2f / %.2f\n", board.USDBuy, board.USDSell)
		bold.Println("EUR  compra / venta")
		fmt.Printf("     %.2f / %.2f", board.EURBuy, board.EURSell)
		if board.EURApprox {
			warn.Print("  (aproximado)")
		}
		fmt.Println()
	case "dashboard":
		mgr := dashboard.New(api, logger)
		data, err := mgr.Load(ctx)
		if err != nil {
			logger.Error("failed to load dashboard", "error", err)
			os.Exit(1)
		}
		for currency, balance := range data.BalancesByCurrency {
			fmt.Println(view.FormatAmount(currency, balance))
		}
		fmt.Printf("Ingresos %.2f  Gastos %.2f  Neto %.2f\n",
			data.MonthlyIncome, data.MonthlyExpense, data.NetFlow)
		for _, c := range data.TopCategories {
			fmt.Printf("  %-25s %.2f\n", c.CategoryName, c.Total)
		}
	default:
		fmt.Println("Unknown command:", os.Args[1])
	}
}
