// Package demo prints sample multiview containers in every traversal order,
// and offers an interactive session for experimenting with one.
package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/amp-labs/multiview/cli"
	"github.com/amp-labs/multiview/logger"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// Run writes the sample reports to w in the configured format.
func Run(ctx context.Context, w io.Writer, cfg Config) error {
	ctx = logger.With(ctx, "run_id", uuid.NewString(), "format", string(cfg.Format))
	log := logger.Get(ctx)

	reports := SampleReports(cfg.Orders)
	for _, r := range reports {
		log.Debug("built report", "label", r.Label, "size", len(r.Elements), "views", len(r.Views))
	}

	var err error

	switch cfg.Format {
	case FormatText, "":
		err = writeText(w, reports, cfg.Width)
	case FormatJSON:
		err = writeJSON(w, reports)
	case FormatYAML:
		err = writeYAML(w, reports)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}

	if err != nil {
		log.Error("rendering failed", "error", err)

		return err
	}

	log.Info("rendered reports", "count", len(reports))

	return nil
}

func writeText(w io.Writer, reports []Report, width int) error {
	var sb strings.Builder

	labelWidth := 0

	for _, r := range reports {
		for _, v := range r.Views {
			labelWidth = max(labelWidth, len(v.Order.String()))
		}
	}

	for i, r := range reports {
		if i > 0 {
			sb.WriteString(cli.Divider(width))
		}

		sb.WriteString(cli.Banner(fmt.Sprintf("%s container: %s", r.Label, strings.Join(r.Elements, ", ")),
			width, cli.AlignCenter))

		for _, v := range r.Views {
			fmt.Fprintf(&sb, "  %-*s  %s\n", labelWidth, v.Order, strings.Join(v.Elements, ", "))
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

func writeJSON(w io.Writer, reports []Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	return encoder.Encode(reports)
}

func writeYAML(w io.Writer, reports []Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(reports); err != nil {
		return err
	}

	return encoder.Close()
}
