/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"chardetect/internal/registry"
	"chardetect/internal/version"
	"chardetect/pkg/chardetect"
	"chardetect/pkg/logger"
	"chardetect/pkg/pathx"

	"github.com/spf13/cobra"
)

var (
	logLevel string
	minimal  bool
	legacy   bool
	eraFlag  string
)

var eraNames = map[string]registry.Era{
	"modern_web":      registry.ModernWeb,
	"legacy_iso":      registry.LegacyISO,
	"legacy_mac":      registry.LegacyMac,
	"legacy_regional": registry.LegacyRegional,
	"dos":             registry.DOS,
	"mainframe":       registry.Mainframe,
	"all":             registry.AllEras,
}

func parseEra(name string) (registry.Era, error) {
	era, ok := eraNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unrecognised encoding era %q", name)
	}
	return era, nil
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "chardetect [FILES...]",
	Short:   "Detect the character encoding of text files",
	Long:    "chardetect identifies the character encoding of arbitrary byte buffers using a staged cascade of deterministic recognisers, structural validators, and a statistical bigram scorer.",
	Args:    cobra.ArbitraryArgs,
	Version: version.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logLevel)
	},
	RunE: runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	era, err := parseEra(eraFlag)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	opts := []chardetect.Option{chardetect.WithEncodingEra(era)}
	if legacy {
		opts = append(opts, chardetect.WithShouldRenameLegacy(false))
	}

	if len(args) == 0 {
		return detectStdin(opts)
	}

	hadFailure := false
	for _, path := range args {
		if err := detectFile(path, opts); err != nil {
			logger.Error("reading input failed", "path", path, "error", err)
			hadFailure = true
		}
	}
	if hadFailure {
		os.Exit(1)
	}
	return nil
}

func detectFile(path string, opts []chardetect.Option) error {
	data, hash, err := pathx.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("read file", "path", path, "bytes", len(data), "sha256", hash)

	result, err := chardetect.Detect(data, opts...)
	if err != nil {
		return err
	}
	printResult(path, result)
	return nil
}

func detectStdin(opts []chardetect.Option) error {
	reader := bufio.NewReader(os.Stdin)
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	result, err := chardetect.Detect(data, opts...)
	if err != nil {
		return err
	}
	printResult("<stdin>", result)
	return nil
}

func printResult(label string, result chardetect.DetectionResult) {
	if minimal {
		if result.Encoding == "" {
			fmt.Println("none")
			return
		}
		fmt.Println(result.Encoding)
		return
	}
	encoding := result.Encoding
	if encoding == "" {
		encoding = "none"
	}
	fmt.Printf("%s: %s with confidence %.2f\n", label, encoding, result.Confidence)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

func init() {
	cobra.MousetrapHelpText = ""
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Set log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&minimal, "minimal", false, "print only the encoding name, one per line")
	rootCmd.Flags().BoolVar(&legacy, "legacy", false, "keep subset encoding names instead of renaming to their preferred superset")
	rootCmd.Flags().StringVarP(&eraFlag, "encoding-era", "e", "modern_web", "restrict candidates to an encoding era (modern_web, legacy_iso, legacy_mac, legacy_regional, dos, mainframe, all)")
}
