package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "czbot",
		Short: "Corrupted zone rotation bot for Slack",
		Long: `czbot predicts the corrupted zone rotation from the wall clock and posts
alerts to Slack when a target zone becomes active or the Cow Level is close.

  czbot serve                  Run the bot (slash commands + alert poller)
  czbot status                 Print the active zone and the next four
  czbot zones [--count N]      Print the next N windows
  czbot next ZONE              Print when a zone is next active`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newStatusCmd(),
		newZonesCmd(),
		newNextCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}
