package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lucasgdosr/deque/v2/internal/fuzz"
)

func run(cmd *cobra.Command, v *viper.Viper) error {
	logger, err := newLogger(v.GetString("log.level"), v.GetString("log.format"), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	cfg := fuzz.DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return errors.Wrap(err, "decode config")
	}

	var opts fuzz.SubjectOptions
	var registry *prometheus.Registry
	if v.GetBool("metrics") {
		registry = prometheus.NewRegistry()
		opts.Registerer = registry
	}
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		opts.Logger = logger
	}

	log := logger.WithFields(logrus.Fields{
		"seed":       cfg.Seed,
		"steps":      cfg.Steps,
		"workers":    cfg.Workers,
		"max_target": cfg.MaxTarget,
	})
	log.Info("Starting run")
	start := time.Now()
	res, err := fuzz.Run(cmd.Context(), cfg, fuzz.DefaultFactory(opts))
	if err != nil {
		log.WithError(err).Error("Run failed")
		return err
	}
	log.WithField("took", time.Since(start)).Info("Run completed")

	out := cmd.OutOrStdout()
	renderResult(out, res)
	if registry != nil {
		families, err := registry.Gather()
		if err != nil {
			return errors.Wrap(err, "gather metrics")
		}
		renderMetrics(out, families)
	}
	return nil
}

func newLogger(level, format string, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	logger.SetLevel(lvl)
	switch strings.ToLower(format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, errors.Errorf("unknown log format %q", format)
	}
	return logger, nil
}

func renderResult(out io.Writer, res *fuzz.Result) {
	fmt.Fprintln(out, text.FgGreen.Sprintf("%d workers x %d steps, all subjects agree", res.Workers, res.Steps))

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Subject", "Checksum", "Allocations", "Deallocations", "Constructs", "Destroys"})
	for _, s := range res.Subjects {
		row := table.Row{s.Name, fmt.Sprintf("%016x", s.Checksum), "-", "-", "-", "-"}
		if s.HasStats {
			row[2], row[3] = s.Stats.Allocations, s.Stats.Deallocations
			row[4], row[5] = s.Stats.Constructs, s.Stats.Destroys
		}
		t.AppendRow(row)
	}
	t.Render()
}

func renderMetrics(out io.Writer, families []*dto.MetricFamily) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Metric", "Allocator", "Value"})
	var rows []table.Row
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var label string
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "allocator" {
					label = lp.GetValue()
				}
			}
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			}
			rows = append(rows, table.Row{mf.GetName(), label, value})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i][0] != rows[j][0] {
			return rows[i][0].(string) < rows[j][0].(string)
		}
		return rows[i][1].(string) < rows[j][1].(string)
	})
	t.AppendRows(rows)
	t.Render()
}
