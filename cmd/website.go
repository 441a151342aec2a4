// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/LeeDigitalWorks/bucketmd/pkg/bucketinfo"
	"github.com/LeeDigitalWorks/bucketmd/pkg/s3api/s3types"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var websiteCmd = &cobra.Command{
	Use:   "website",
	Short: "Edit the website configuration of a bucket metadata record",
}

var websiteRedirectAllCmd = &cobra.Command{
	Use:   "redirect-all",
	Short: "Redirect every request to another host",
	Args:  cobra.NoArgs,
	RunE: rewrite(func(cmd *cobra.Command, b *bucketinfo.BucketInfo) error {
		host, _ := cmd.Flags().GetString("host")
		protocol, _ := cmd.Flags().GetString("protocol")
		log.Debug().Str("bucket", b.Name()).Str("host", host).Msg("Setting redirect-all website")
		return b.SetWebsiteConfiguration(&s3types.RedirectAllWebsite{HostName: host, Protocol: protocol})
	}),
}

var websiteStaticCmd = &cobra.Command{
	Use:   "static",
	Short: "Serve the bucket as a static website",
	Long: `Sets the index and error documents. Routing rules already present on a
static website are kept.`,
	Args: cobra.NoArgs,
	RunE: rewrite(func(cmd *cobra.Command, b *bucketinfo.BucketInfo) error {
		index, _ := cmd.Flags().GetString("index")
		errorDoc, _ := cmd.Flags().GetString("error")

		site := &s3types.StaticWebsite{IndexDocument: index, ErrorDocument: errorDoc}
		if current, ok := b.WebsiteConfiguration().(*s3types.StaticWebsite); ok {
			site.RoutingRules = current.RoutingRules
		}
		log.Debug().Str("bucket", b.Name()).Str("index", index).Int("routing_rules", len(site.RoutingRules)).Msg("Setting static website")
		return b.SetWebsiteConfiguration(site)
	}),
}

var websiteClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the website configuration",
	Args:  cobra.NoArgs,
	RunE: rewrite(func(cmd *cobra.Command, b *bucketinfo.BucketInfo) error {
		return b.SetWebsiteConfiguration(nil)
	}),
}

func init() {
	rootCmd.AddCommand(websiteCmd)
	websiteCmd.AddCommand(websiteRedirectAllCmd, websiteStaticCmd, websiteClearCmd)

	addRecordFlags(websiteRedirectAllCmd)
	websiteRedirectAllCmd.Flags().String("host", "", "Target host name")
	websiteRedirectAllCmd.Flags().String("protocol", "", "Target protocol: http or https")
	websiteRedirectAllCmd.MarkFlagRequired("host")

	addRecordFlags(websiteStaticCmd)
	websiteStaticCmd.Flags().String("index", "index.html", "Index document suffix")
	websiteStaticCmd.Flags().String("error", "", "Error document key")

	addRecordFlags(websiteClearCmd)
}
