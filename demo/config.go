package demo

import (
	"context"
	"errors"
	"fmt"

	"github.com/amp-labs/multiview/cli"
	"github.com/amp-labs/multiview/envutil"
	"github.com/amp-labs/multiview/multiview"
)

var (
	// ErrUnknownFormat is returned for an output format other than text, json or yaml.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrNoOrders is returned when MULTIVIEW_ORDERS is set but names no order.
	ErrNoOrders = errors.New("no traversal orders selected")
)

// Format selects how reports are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Config controls a demo run.
type Config struct {
	// Orders to print for every container, in this sequence.
	Orders []multiview.Order
	Format Format
	// Interactive starts a prompt-driven session instead of printing samples.
	Interactive bool
	// Width of text banners.
	Width int
}

// DefaultConfig prints every order as text at the terminal's width.
func DefaultConfig() Config {
	return Config{
		Orders: multiview.AllOrders(),
		Format: FormatText,
		Width:  cli.TerminalWidth(),
	}
}

// LoadConfig reads the configuration from the environment:
//
//	MULTIVIEW_ORDERS       comma-separated order names, default all six
//	MULTIVIEW_FORMAT       text, json or yaml, default text
//	MULTIVIEW_INTERACTIVE  bool, default false
//	MULTIVIEW_WIDTH        banner width, default the terminal width
func LoadConfig(ctx context.Context) (Config, error) {
	cfg := DefaultConfig()

	orders, err := envutil.Map(envutil.Strings(ctx, "MULTIVIEW_ORDERS", ","), parseOrders).
		WithDefault(cfg.Orders).
		Value()
	if err != nil {
		return Config{}, err
	}

	format, err := envutil.String(ctx, "MULTIVIEW_FORMAT",
		envutil.Default(string(FormatText)),
		envutil.OneOf(string(FormatText), string(FormatJSON), string(FormatYAML))).Value()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrUnknownFormat, err)
	}

	interactive, err := envutil.Bool(ctx, "MULTIVIEW_INTERACTIVE", envutil.Default(false)).Value()
	if err != nil {
		return Config{}, err
	}

	width, err := envutil.Int(ctx, "MULTIVIEW_WIDTH",
		envutil.Default(cfg.Width),
		envutil.Validate(validateWidth)).Value()
	if err != nil {
		return Config{}, err
	}

	cfg.Orders = orders
	cfg.Format = Format(format)
	cfg.Interactive = interactive
	cfg.Width = width

	return cfg, nil
}

func parseOrders(names []string) ([]multiview.Order, error) {
	if len(names) == 0 {
		return nil, ErrNoOrders
	}

	orders := make([]multiview.Order, 0, len(names))

	for _, name := range names {
		order, err := multiview.ParseOrder(name)
		if err != nil {
			return nil, err
		}

		orders = append(orders, order)
	}

	return orders, nil
}

var errWidthTooSmall = errors.New("width too small")

const minWidth = 10

func validateWidth(width int) error {
	if width < minWidth {
		return fmt.Errorf("%w: %d (minimum %d)", errWidthTooSmall, width, minWidth)
	}

	return nil
}
