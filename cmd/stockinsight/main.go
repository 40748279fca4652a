// StockInsight — side-by-side stock comparison for NSE/BSE and global tickers
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/seenimoa/stockinsight/api"
	"github.com/seenimoa/stockinsight/internal/compare"
	"github.com/seenimoa/stockinsight/internal/config"
	"github.com/seenimoa/stockinsight/internal/datasource"
	"github.com/seenimoa/stockinsight/internal/provider"
	"github.com/seenimoa/stockinsight/internal/providers/yfinance"
	"github.com/seenimoa/stockinsight/internal/report"
	"github.com/seenimoa/stockinsight/pkg/utils"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stockinsight",
	Short: "StockInsight — side-by-side stock comparison",
	Long: `StockInsight compares two stocks head to head: fundamentals,
valuation ratios, price performance, and recent news, with NSE/BSE
tickers formatted in rupees and everything else in dollars.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Logging.Level = level
		}
		return config.InitLogger(cfg.Logging)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
}

// newProvider builds the configured market-data provider. Providers go
// through the registry so additional backends can be registered here
// and selected by config without touching the commands.
func newProvider() (provider.Provider, error) {
	reg := provider.NewRegistry()
	yf := yfinance.New(time.Duration(cfg.Provider.CacheTTL)*time.Second, cfg.Provider.RateLimit)
	if err := reg.Register(yf); err != nil {
		return nil, err
	}
	return reg.Get(cfg.Provider.Name)
}

func newEngine() (*compare.Engine, error) {
	p, err := newProvider()
	if err != nil {
		return nil, err
	}
	return compare.NewEngine(p, cfg), nil
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("StockInsight %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Compare Command ---

var compareCmd = &cobra.Command{
	Use:   "compare [ticker-a] [ticker-b]",
	Short: "Compare two stocks side by side",
	Long: `Compare two stocks: fundamentals, valuation ratios, price
performance over 1Y/1M/5D windows, analyst recommendation, and recent
news links.

Examples:
  stockinsight compare TATAMOTORS.NS M&M.NS
  stockinsight compare INFY.NS AAPL --format html --output report.html`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		engine, err := newEngine()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		rep, err := engine.Compare(ctx, args[0], args[1])
		if err != nil {
			return fmt.Errorf("comparison failed: %w", err)
		}

		var out string
		switch report.Format(format) {
		case report.FormatText:
			out, err = report.GenerateText(rep)
		case report.FormatHTML:
			out, err = report.GenerateHTML(rep, report.DefaultChartConfig())
		default:
			return fmt.Errorf("unknown format %q (want text or html)", format)
		}
		if err != nil {
			return fmt.Errorf("report generation failed: %w", err)
		}

		if output != "" {
			if err := os.WriteFile(output, []byte(out), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Printf("📄 Report written to %s\n", output)
			return nil
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	compareCmd.Flags().String("format", "text", "output format: text or html")
	compareCmd.Flags().String("output", "", "write report to file instead of stdout")
}

// --- History Command ---

var historyCmd = &cobra.Command{
	Use:   "history [ticker]",
	Short: "Print daily closing prices for a stock",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")

		engine, err := newEngine()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		ticker := utils.NormalizeTicker(args[0])
		points, err := engine.PriceHistory(ctx, ticker, days)
		if err != nil {
			return fmt.Errorf("history fetch failed: %w", err)
		}

		fmt.Printf("📊 %s — %d closing prices\n", ticker, len(points))
		for _, pt := range points {
			fmt.Printf("  %s  %.2f\n", pt.Date.Format("2006-01-02"), pt.Close)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("days", 0, "history window in days (default from config)")
}

// --- News Command ---

var newsCmd = &cobra.Command{
	Use:   "news [ticker]",
	Short: "Show recent news for a stock from market RSS feeds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit <= 0 {
			limit = cfg.News.MaxItems
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		ticker := utils.NormalizeTicker(args[0])
		company := utils.CompanyNameFromTicker(ticker)

		articles, err := datasource.NewRSSNews().TickerNews(ctx, ticker, company, limit)
		if err != nil {
			return fmt.Errorf("news fetch failed: %w", err)
		}
		if len(articles) == 0 {
			fmt.Printf("📰 No recent news found for %s\n", ticker)
			return nil
		}

		fmt.Printf("📰 Recent news for %s\n", ticker)
		for _, a := range articles {
			fmt.Printf("\n  %s\n", a.Title)
			fmt.Printf("    %s | %s\n", a.Source, a.PublishedAt.Format("02 Jan 2006 15:04"))
			fmt.Printf("    %s\n", a.URL)
		}
		return nil
	},
}

func init() {
	newsCmd.Flags().Int("limit", 0, "max articles to show (default from config)")
}

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}

		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		fmt.Printf("🌐 Starting StockInsight API server on %s\n", addr)

		srv := api.NewServer(cfg, engine, datasource.NewRSSNews())
		return srv.ListenAndServe(addr)
	},
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show system status and configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("═══════════════════════════════════════")
		fmt.Println("  StockInsight — System Status")
		fmt.Println("═══════════════════════════════════════")
		fmt.Printf("  Version:     %s (%s)\n", version, commit)
		fmt.Println()

		fmt.Println("  Configuration:")
		fmt.Printf("    Provider:       %s (cache %ds, %d req/s)\n",
			cfg.Provider.Name, cfg.Provider.CacheTTL, cfg.Provider.RateLimit)
		fmt.Printf("    Domestic:       %v\n", cfg.Markets.DomesticSuffixes)
		fmt.Printf("    News Portal:    %s (max %d items)\n", cfg.News.PortalName, cfg.News.MaxItems)
		fmt.Printf("    History Window: %d days (%d–%d)\n",
			cfg.History.DefaultDays, cfg.History.MinDays, cfg.History.MaxDays)
		fmt.Printf("    API Server:     %s:%d\n", cfg.API.Host, cfg.API.Port)
		fmt.Println()

		p, err := newProvider()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		fmt.Printf("  Provider Check: %s ... ", p.Info().Name)
		if err := p.Ping(ctx); err != nil {
			fmt.Printf("❌ %v\n", err)
			return nil
		}
		fmt.Println("✅ reachable")
		return nil
	},
}
