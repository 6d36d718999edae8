package mine

import (
	"fmt"
	"io"
	"os"
	"time"

	cmdUtil "github.com/axelroques/ditto/cmd/util"
	"github.com/axelroques/ditto/lib/common"
	"github.com/axelroques/ditto/lib/ditto"
	"github.com/axelroques/ditto/lib/export"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	mineCmdConfig = &common.Config{}
	MineCmd       = &cobra.Command{
		Use:     "mine",
		Short:   "Mine the patterns of a database",
		Long:    `Mine the patterns of a database and export the resulting code table and cover. The configuration can be set via command line flags or environment variables. The format of the environment variables is DITTO_<flag> (e.g. DITTO_MAX_ROUNDS=10)`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	cmdUtil.SetupMiningFlags(MineCmd)

	// add flags
	key := "serializer"
	MineCmd.PersistentFlags().String(key, "json", cmdUtil.WrapString("Serializer of the exported results (binary, gob, json, yaml)"))

	key = "output"
	MineCmd.PersistentFlags().String(key, "", cmdUtil.WrapString("Path of the exported results (default stdout)"))

	key = "metrics-out"
	MineCmd.PersistentFlags().String(key, "", cmdUtil.WrapString("Optional path to save the search metrics in Prometheus text format"))
}

// processConfig reads the configuration from the command line flags and environment variables
func processConfig(cmd *cobra.Command, _ []string) error {
	if err := cmdUtil.BindCommandFlags(cmd); err != nil {
		return err
	}
	conf, err := cmdUtil.GetConfig()
	if err != nil {
		return err
	}
	*mineCmdConfig = *conf
	return nil
}

// run mines the database and writes the report
func run(_ *cobra.Command, _ []string) error {
	fmt.Fprintln(os.Stderr, "Configuration:")
	fmt.Fprintln(os.Stderr, mineCmdConfig.String())

	s, err := cmdUtil.GetSerializer(mineCmdConfig)
	if err != nil {
		return err
	}

	start := time.Now()
	eng, err := cmdUtil.MineDatabase(mineCmdConfig)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	report := export.NewReport(eng, eng.CodeTable())
	data, err := s.Serialize(report)
	if err != nil {
		return fmt.Errorf("serialize report: %w", err)
	}

	out, closeOut, err := cmdUtil.CreateOutput(mineCmdConfig.Output)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		_ = closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}

	if path := mineCmdConfig.MetricsOutput; path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		eng.Searcher().WriteMetrics(f)
		if err := f.Close(); err != nil {
			return err
		}
	}

	printSummary(os.Stderr, eng, report, elapsed)
	fmt.Fprintf(os.Stderr, "wrote %s %s report (run %s)\n", humanize.Bytes(uint64(len(data))), mineCmdConfig.Serializer, report.RunID)
	return nil
}

// printSummary writes a short human readable summary of a finished run
func printSummary(w io.Writer, eng *ditto.Engine, report export.Report, elapsed time.Duration) {
	d := eng.Database()
	s := eng.Searcher()
	lengths := s.Lengths()

	status := "converged"
	if s.Capped() {
		status = "stopped at round cap"
	}

	mined := 0
	for _, p := range eng.CodeTable().Patterns() {
		if !p.IsSingleton() && p.Usage() > 0 {
			mined++
		}
	}

	fmt.Fprintf(w, "mined %s sequences x %s steps (%s cells) in %s\n",
		humanize.Comma(int64(d.Sequences())), humanize.Comma(int64(d.Steps())), humanize.Comma(int64(d.Size())), elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "  %-14s: %d (%s)\n", "Rounds", s.Rounds(), status)
	fmt.Fprintf(w, "  %-14s: %d in table, %d used beyond singletons\n", "Patterns", eng.CodeTable().Len(), mined)
	if len(lengths) > 0 {
		first, last := lengths[0], lengths[len(lengths)-1]
		fmt.Fprintf(w, "  %-14s: %s -> %s (%.1f%%)\n", "Total Length",
			humanize.CommafWithDigits(first, 2), humanize.CommafWithDigits(last, 2), 100*last/first)
	}
	if !report.Filled {
		fmt.Fprintf(w, "  %-14s: %s\n", "Cover", "not filled")
	}

	timer := eng.Evaluator().CoverTimer()
	fmt.Fprintf(w, "  %-14s: %s (mean %s, p99 %s)\n", "Cover Passes",
		humanize.Comma(timer.Count()),
		time.Duration(timer.Mean()).Round(time.Microsecond),
		time.Duration(timer.Percentile(0.99)).Round(time.Microsecond))
}
