// Package cmd provides the command-line interface for periphfake.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// Environment variables that provide flag defaults. They may also be set in
// a .env file in the working directory.
const (
	envDevice = "PERIPHFAKE_DEVICE"
	envBaud   = "PERIPHFAKE_BAUD"
)

const defaultDevice = "/dev/ttyACM0"

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "periphfake",
	Short: "Capture and inspect serial traffic for firmware tests.",
	Long: `periphfake records what a real board sends over a serial port into a ` +
		`trace file, so tests can replay it into a Serial double.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			log.SetOutput(nopWriter{})
		}

		// A missing .env is normal; only a malformed one is worth a warning.
		// Variables already set in the environment win over the file.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("ignoring .env: %v", err)
		}
		return applyEnv(cmd)
	},
}

// envFlags maps flag names to the environment variables that supply their
// value when the flag is not given on the command line
var envFlags = map[string]string{
	"device": envDevice,
	"baud":   envBaud,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// applyEnv sets every flag of cmd listed in envFlags from its environment
// variable, unless the flag was given explicitly
func applyEnv(cmd *cobra.Command) error {
	for name, env := range envFlags {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		v, ok := os.LookupEnv(env)
		if !ok || v == "" {
			continue
		}
		if err := cmd.Flags().Set(name, v); err != nil {
			return fmt.Errorf("%s=%q: %w", env, v, err)
		}
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Exit handlers registered by subcommands run before the
// process exits.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) {
	return len(p), nil
}
