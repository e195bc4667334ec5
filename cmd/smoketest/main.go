package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/justice-chain/classifier/internal/smoketest"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "smoketest",
	Short: "Smoke-test the JusticeChain HTTP endpoints",
	Long: `smoketest sends a fixed sequence of requests to the authentication backend,
the FIR store and the classification relay, and reports which ones answered
with the expected status.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()
	flags.String("backend-url", "http://localhost:5000", "authentication backend URL")
	flags.String("fir-url", "http://localhost:4000", "FIR store URL")
	flags.String("relay-url", "http://localhost:5050", "classification relay URL")
	flags.String("citizen-email", "user@example.com", "citizen login email")
	flags.String("citizen-password", "password123", "citizen login password")
	flags.String("admin-email", "admin@justice.gov.in", "admin login email")
	flags.String("admin-password", "admin123", "admin login password")
	flags.String("sample", "Armed robbery at a bank", "incident description sent to /classify")
	flags.Bool("skip-fir", false, "skip FIR store checks")
	flags.Bool("skip-relay", false, "skip classification relay checks")
	flags.Duration("timeout", 30*time.Second, "per-request timeout")

	// SMOKE_BACKEND_URL 등 환경변수로도 지정 가능
	viper.SetEnvPrefix("smoke")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(flags); err != nil {
		fmt.Fprintf(os.Stderr, "failed to bind flags: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts := smoketest.Options{
		BackendURL: viper.GetString("backend-url"),
		FIRURL:     viper.GetString("fir-url"),
		RelayURL:   viper.GetString("relay-url"),
		Citizen: smoketest.Credentials{
			Email:    viper.GetString("citizen-email"),
			Password: viper.GetString("citizen-password"),
		},
		Admin: smoketest.Credentials{
			Email:    viper.GetString("admin-email"),
			Password: viper.GetString("admin-password"),
		},
		SkipFIR:        viper.GetBool("skip-fir"),
		SkipRelay:      viper.GetBool("skip-relay"),
		ClassifySample: viper.GetString("sample"),
	}

	out := cmd.OutOrStdout()
	runner := smoketest.NewRunner(viper.GetDuration("timeout"), out)
	report := runner.Run(cmd.Context(), smoketest.Checks(opts))

	if !report.OK() {
		return fmt.Errorf("%d of %d checks failed", report.Run-report.Passed, report.Run)
	}
	fmt.Fprintln(out, "All endpoints responded as expected")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
