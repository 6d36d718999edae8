package util

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/axelroques/ditto/lib/common"
	"github.com/axelroques/ditto/lib/database"
	"github.com/axelroques/ditto/lib/ditto"
	"github.com/axelroques/ditto/lib/export"
	"github.com/joho/godotenv"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logger.GetLogger("cli")

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupMiningFlags adds the input and search flags shared by every command that mines a database
func SetupMiningFlags(cmd *cobra.Command) {
	defaults := common.DefaultConfig()

	key := "input"
	cmd.PersistentFlags().String(key, "", WrapString("Path of the database to mine ('-' reads stdin)"))

	key = "format"
	cmd.PersistentFlags().String(key, defaults.Format, WrapString("Input format: rows (one sequence per line) or csv (header row, one column per sequence, column 't' is skipped)"))

	key = "max-rounds"
	cmd.PersistentFlags().Int(key, defaults.MaxRounds, WrapString("Maximum number of candidate generation rounds (0 = run until convergence)"))

	key = "max-candidate-size"
	cmd.PersistentFlags().Int(key, defaults.MaxCandidateSize, WrapString("Candidates with more tokens are never tested"))

	key = "min-improvement"
	cmd.PersistentFlags().Float64(key, defaults.MinImprovement, WrapString("A change is kept if the new total length is smaller than this factor times the old one"))

	key = "log-level"
	cmd.PersistentFlags().String(key, defaults.LogLevel, WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("ditto")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// GetConfig reads the run configuration from viper, validates it and initializes the loggers
func GetConfig() (*common.Config, error) {
	conf := common.DefaultConfig()
	conf.Input = viper.GetString("input")
	conf.Format = viper.GetString("format")
	conf.MaxRounds = viper.GetInt("max-rounds")
	conf.MaxCandidateSize = viper.GetInt("max-candidate-size")
	conf.MinImprovement = viper.GetFloat64("min-improvement")
	conf.LogLevel = viper.GetString("log-level")
	if s := viper.GetString("serializer"); s != "" {
		conf.Serializer = s
	}
	conf.Output = viper.GetString("output")
	conf.MetricsOutput = viper.GetString("metrics-out")

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if err := common.InitLoggers(conf.LogLevel); err != nil {
		return nil, err
	}
	return &conf, nil
}

// ReadDatabase reads a database in the given format
func ReadDatabase(r io.Reader, format string) (*database.Database, error) {
	switch format {
	case "rows":
		return database.ReadRows(r)
	case "csv":
		return database.ReadCSV(r)
	default:
		return nil, fmt.Errorf("invalid format %s", format)
	}
}

// OpenDatabase reads the database named by the configuration
func OpenDatabase(conf *common.Config) (*database.Database, error) {
	if conf.Input == "-" {
		return ReadDatabase(os.Stdin, conf.Format)
	}
	f, err := os.Open(conf.Input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := ReadDatabase(f, conf.Format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", conf.Input, err)
	}
	log.Infof("read %d sequences of %d steps from %s", d.Sequences(), d.Steps(), conf.Input)
	return d, nil
}

// MineDatabase opens the configured database and runs the search to convergence
func MineDatabase(conf *common.Config) (*ditto.Engine, error) {
	d, err := OpenDatabase(conf)
	if err != nil {
		return nil, err
	}
	eng, err := ditto.New(d, conf.EngineOptions())
	if err != nil {
		return nil, err
	}
	eng.Process()
	return eng, nil
}

// GetSerializer creates the serializer named by the configuration
func GetSerializer(conf *common.Config) (export.Serializer, error) {
	return export.New(conf.Serializer)
}

// CreateOutput opens path for writing, or returns stdout for an empty path.
// The returned function closes the file.
func CreateOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
