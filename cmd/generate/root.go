package generate

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	cmdUtil "github.com/axelroques/ditto/cmd/util"
	"github.com/axelroques/ditto/lib/common"
	"github.com/axelroques/ditto/lib/toydata"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	generateParams = toydata.DefaultParams()
	generateSeed   uint64
	GenerateCmd    = &cobra.Command{
		Use:     "generate",
		Short:   "Generate a synthetic database with planted patterns",
		Long:    `Generate random sequences and plant patterns in them. The database is written in the rows or csv input format, the planted patterns are printed to stderr.`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	defaults := toydata.DefaultParams()

	// add flags
	key := "steps"
	GenerateCmd.Flags().Int(key, defaults.Steps, cmdUtil.WrapString("Time steps per sequence"))

	key = "sequences"
	GenerateCmd.Flags().Int(key, defaults.Sequences, cmdUtil.WrapString("Number of sequences"))

	key = "patterns"
	GenerateCmd.Flags().Int(key, defaults.Patterns, cmdUtil.WrapString("Number of planted patterns"))

	key = "min-size"
	GenerateCmd.Flags().Int(key, defaults.MinSize, cmdUtil.WrapString("Smallest planted pattern, in tokens"))

	key = "max-size"
	GenerateCmd.Flags().Int(key, defaults.MaxSize, cmdUtil.WrapString("Largest planted pattern, in tokens"))

	key = "support"
	GenerateCmd.Flags().Float64(key, defaults.Support, cmdUtil.WrapString("Fraction of all cells each planted pattern covers"))

	key = "max-modality"
	GenerateCmd.Flags().Int(key, defaults.MaxModality, cmdUtil.WrapString("Most sequences one planted pattern may touch"))

	key = "min-alphabet"
	GenerateCmd.Flags().Int(key, defaults.MinAlphabet, cmdUtil.WrapString("Smallest alphabet of a sequence"))

	key = "max-alphabet"
	GenerateCmd.Flags().Int(key, defaults.MaxAlphabet, cmdUtil.WrapString("Largest alphabet of a sequence"))

	key = "seed"
	GenerateCmd.Flags().Uint64(key, 1, cmdUtil.WrapString("Seed of the random generator"))

	key = "format"
	GenerateCmd.Flags().String(key, "rows", cmdUtil.WrapString("Output format (rows, csv)"))

	key = "output"
	GenerateCmd.Flags().String(key, "", cmdUtil.WrapString("Path of the generated database (default stdout)"))

	key = "log-level"
	GenerateCmd.Flags().String(key, "info", cmdUtil.WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))
}

func processConfig(cmd *cobra.Command, _ []string) error {
	if err := cmdUtil.BindCommandFlags(cmd); err != nil {
		return err
	}
	if err := common.InitLoggers(viper.GetString("log-level")); err != nil {
		return err
	}

	generateParams = toydata.Params{
		Steps:       viper.GetInt("steps"),
		Sequences:   viper.GetInt("sequences"),
		Patterns:    viper.GetInt("patterns"),
		MinSize:     viper.GetInt("min-size"),
		MaxSize:     viper.GetInt("max-size"),
		Support:     viper.GetFloat64("support"),
		MaxModality: viper.GetInt("max-modality"),
		MinAlphabet: viper.GetInt("min-alphabet"),
		MaxAlphabet: viper.GetInt("max-alphabet"),
	}
	generateSeed = viper.GetUint64("seed")

	switch viper.GetString("format") {
	case "rows", "csv":
		return nil
	default:
		return fmt.Errorf("invalid format %s", viper.GetString("format"))
	}
}

func run(_ *cobra.Command, _ []string) error {
	res, err := toydata.Generate(generateParams, generateSeed)
	if err != nil {
		return err
	}

	out, closeOut, err := cmdUtil.CreateOutput(viper.GetString("output"))
	if err != nil {
		return err
	}
	if viper.GetString("format") == "csv" {
		err = WriteCSV(out, res.Rows)
	} else {
		err = WriteRows(out, res.Rows)
	}
	if err != nil {
		_ = closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}

	for id, name := range res.Patterns {
		fmt.Fprintf(os.Stderr, "planted %d: %s\n", id, name)
	}
	return nil
}

// WriteRows writes one sequence per line
func WriteRows(w io.Writer, rows []string) error {
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes a column table with a time column t and one column per sequence
func WriteCSV(w io.Writer, rows []string) error {
	cw := csv.NewWriter(w)
	header := []string{"t"}
	for seq := range rows {
		header = append(header, "S_"+strconv.Itoa(seq))
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	if len(rows) > 0 {
		for step := 0; step < len(rows[0]); step++ {
			record := []string{strconv.Itoa(step)}
			for _, row := range rows {
				record = append(record, row[step:step+1])
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
