// Package provider defines the market-data provider abstraction: an opaque
// source that, given a ticker symbol, returns a raw quote bag or fails. The
// comparison engine treats every failure as "no data for this ticker".
package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/seenimoa/stockinsight/pkg/models"
)

// Credential describes a required credential for a provider.
type Credential struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	EnvVar      string `json:"env_var"`
}

// Info holds metadata about a registered provider.
type Info struct {
	Name        string       `json:"name"`        // e.g., "yfinance"
	Description string       `json:"description"` // human-readable description
	Website     string       `json:"website"`
	Credentials []Credential `json:"credentials"`
}

// Provider is the interface all market-data providers implement.
type Provider interface {
	// Info returns metadata about this provider.
	Info() Info

	// Init initializes the provider with credentials. Called once during
	// registration. Returns an error if required credentials are missing.
	Init(credentials map[string]string) error

	// Quote fetches the raw attribute bag for one ticker: spot price,
	// fundamentals, 52-week range, analyst score, headlines, and the
	// 1y/1mo/5d price histories. Any upstream failure (network, unknown
	// symbol) surfaces as an error.
	Quote(ctx context.Context, symbol string) (*models.RawQuote, error)

	// History fetches the closing-price series for the last windowDays days.
	History(ctx context.Context, symbol string, windowDays int) ([]models.PricePoint, error)

	// Ping verifies the provider's connectivity.
	Ping(ctx context.Context) error
}

// ErrTickerNotFound is returned when a ticker cannot be resolved upstream.
var ErrTickerNotFound = errors.New("ticker not found")

// ErrProviderNotFound is returned when a requested provider is not registered.
type ErrProviderNotFound struct {
	Name string
}

func (e *ErrProviderNotFound) Error() string {
	return fmt.Sprintf("provider %q not found", e.Name)
}

// ErrInvalidCredentials is returned when provider credentials are invalid.
type ErrInvalidCredentials struct {
	Provider string
	Detail   string
}

func (e *ErrInvalidCredentials) Error() string {
	return fmt.Sprintf("invalid credentials for provider %q: %s", e.Provider, e.Detail)
}
