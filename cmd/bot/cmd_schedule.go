package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/diegoclair/corrupted-zone-bot/internal/domain"
	"github.com/diegoclair/corrupted-zone-bot/internal/domain/contract"
	"github.com/diegoclair/corrupted-zone-bot/internal/domain/service"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const timeLayout = "2006-01-02 15:04 UTC"

var targetColor = color.New(color.FgRed, color.Bold)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the active zone and the next four",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := service.SystemClock{}.Now()
			oracle := service.NewScheduleOracle()
			fmt.Fprintln(cmd.OutOrStdout(), service.FormatStatus(oracle.Upcoming(now, domain.StatusDepth), now))
			return nil
		},
	}
}

func newZonesCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "zones",
		Short: "Print the upcoming rotation windows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 || count > domain.MaxLookahead {
				return fmt.Errorf("--count must be between 1 and %d", domain.MaxLookahead)
			}
			printZones(cmd.OutOrStdout(), service.NewScheduleOracle(), service.SystemClock{}.Now(), count)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 12, "number of windows to print")
	return cmd
}

func newNextCmd() *cobra.Command {
	var lookahead int

	cmd := &cobra.Command{
		Use:   "next ZONE",
		Short: "Print when a zone is next active",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, err := domain.LookupZone(strings.Join(args, " "))
			if err != nil {
				return err
			}
			printNext(cmd.OutOrStdout(), service.NewScheduleOracle(), service.SystemClock{}.Now(), zone, lookahead)
			return nil
		},
	}
	cmd.Flags().IntVar(&lookahead, "lookahead", domain.MaxLookahead, "number of windows to scan")
	return cmd
}

func printZones(w io.Writer, oracle contract.ScheduleOracle, now time.Time, count int) {
	for i, info := range oracle.Upcoming(now, count) {
		zone := info.Zone
		if domain.IsTargetZone(zone) {
			zone = targetColor.Sprint(zone)
		}

		marker := " "
		if i == 0 {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s  %s\n", marker, info.WindowStart.Format(timeLayout), zone)
	}
}

func printNext(w io.Writer, oracle contract.ScheduleOracle, now time.Time, zone string, lookahead int) {
	info, ok := oracle.FindNext(now, zone, lookahead)
	if !ok {
		fmt.Fprintf(w, "%s is not in the rotation for the next %d windows\n", zone, lookahead)
		return
	}

	if !info.WindowStart.After(now) {
		fmt.Fprintf(w, "%s is active now, until %s\n", zone, info.WindowEnd().Format(timeLayout))
		return
	}

	fmt.Fprintf(w, "%s is next active %s (%s)\n", zone, info.WindowStart.Format(timeLayout),
		humanize.RelTime(info.WindowStart, now, "ago", "from now"))
}
