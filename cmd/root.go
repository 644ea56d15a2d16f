/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/colorpi/colorspace"
	"github.com/mmuldo/colorpi/delta"
)

var (
	cfgFile string
	logger  = hclog.NewNullLogger()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colorpi",
	Short: "Color conversions and Delta E comparisons",
	Long: `colorpi converts RGB samples to HEX, CMYK, CIELAB and LCh and scores the
difference between a standard and a test sample with CIE76 and CIEDE2000.

It can also read back a printed comparison report and check that the
printed scores agree with the printed Lab values.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.colorpi.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("transform", "chromath", fmt.Sprintf("RGB to Lab transform %v", colorspace.TransformNames()))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("transform", rootCmd.PersistentFlags().Lookup("transform"))

	// A missing .env is fine; settings can come from the shell or the config file.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".colorpi")
	}

	viper.SetEnvPrefix("colorpi")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()

	logger = newLogger(viper.GetBool("verbose"))
	logConfigRead(logger, cfgFile, err)
}

// logConfigRead reports the outcome of reading the config file. A missing
// default config is normal; a file named with --config that cannot be read
// is not.
func logConfigRead(l hclog.Logger, explicit string, err error) {
	switch {
	case err == nil:
		l.Debug("using config file", "path", viper.ConfigFileUsed())
	case explicit != "":
		l.Warn("failed to read config file", "path", explicit, "error", err)
	}
}

func newLogger(verbose bool) hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "colorpi",
		Output: os.Stderr,
		Level:  level,
	})
}

// newConverter builds a Converter for the configured transform.
func newConverter() (*colorspace.Converter, error) {
	name := viper.GetString("transform")
	t, err := colorspace.TransformByName(name)
	if err != nil {
		return nil, err
	}
	logger.Debug("selected transform", "transform", name)
	return colorspace.NewConverter(t), nil
}

// configuredMetrics resolves the metric names from flags or config.
func configuredMetrics() ([]delta.Metric, error) {
	return parseMetrics(viper.GetStringSlice("metrics"))
}
