package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/swoga/huawei-exporter/api"
	"github.com/swoga/huawei-exporter/collector"
	"github.com/swoga/huawei-exporter/config"
	"github.com/swoga/huawei-exporter/extract"
)

var (
	format          string
	informationPage string
	managementPage  string
	prometheusOut   string
	jsonOut         string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Extract both pages once and print the result",
	RunE:  runScrape,
}

func init() {
	scrapeCmd.Flags().StringVarP(&format, "format", "f", "json", "Output format to print on stdout (json, prometheus, silent)")
	scrapeCmd.Flags().StringVar(&informationPage, "information", "", "Device information page, file or URL (required)")
	scrapeCmd.Flags().StringVar(&managementPage, "management", "", "Device management page, file or URL (required)")
	scrapeCmd.Flags().StringVar(&prometheusOut, "po", "", "File to write prometheus metrics to in addition to the stdout output")
	scrapeCmd.Flags().StringVar(&jsonOut, "jo", "", "File to write json to in addition to the stdout output")
	_ = scrapeCmd.MarkFlagRequired("information")
	_ = scrapeCmd.MarkFlagRequired("management")
}

func runScrape(cmd *cobra.Command, args []string) error {
	switch format {
	case "json", "prometheus", "silent":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	ctx := cmd.Context()
	information, management, err := api.GetPages(ctx, log, config.Target{
		DeviceInformation: informationPage,
		DeviceManagement:  managementPage,
	})
	if err != nil {
		return err
	}

	result, err := extract.Run(ctx, log, information, management)
	if err != nil {
		return fmt.Errorf("scrape aborted: %w", err)
	}

	jsonOutput, err := collector.MarshalDocument(log, result.Fields, result.Devices)
	if err != nil {
		return err
	}
	prometheusOutput, err := collector.Exposition(log, result.Fields, result.Devices)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		fmt.Println(string(jsonOutput))
	case "prometheus":
		fmt.Println(string(prometheusOutput))
	}

	for _, out := range []struct {
		path    string
		content []byte
	}{
		{prometheusOut, prometheusOutput},
		{jsonOut, jsonOutput},
	} {
		if out.path == "" {
			continue
		}
		log.Trace().Str("file", out.path).Msg("writing output")
		err = os.WriteFile(out.path, out.content, 0o644)
		if err != nil {
			return err
		}
	}
	return nil
}
