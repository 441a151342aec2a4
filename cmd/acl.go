// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/LeeDigitalWorks/bucketmd/pkg/bucketinfo"
	"github.com/LeeDigitalWorks/bucketmd/pkg/s3api/s3types"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var aclCmd = &cobra.Command{
	Use:   "acl",
	Short: "Edit the access control list of a bucket metadata record",
}

var aclGrantCmd = &cobra.Command{
	Use:   "grant",
	Short: "Append a grantee to one permission's grant list",
	Args:  cobra.NoArgs,
	RunE: rewrite(func(cmd *cobra.Command, b *bucketinfo.BucketInfo) error {
		grantee, _ := cmd.Flags().GetString("grantee")
		permission, _ := cmd.Flags().GetString("permission")
		if err := b.SetSpecificACL(grantee, s3types.Permission(permission)); err != nil {
			return err
		}
		log.Debug().Str("bucket", b.Name()).Str("grantee", grantee).Str("permission", permission).Msg("Added grant")
		return nil
	}),
}

var aclCannedCmd = &cobra.Command{
	Use:   "canned",
	Short: "Replace the canned ACL policy name",
	Args:  cobra.NoArgs,
	RunE: rewrite(func(cmd *cobra.Command, b *bucketinfo.BucketInfo) error {
		policy, _ := cmd.Flags().GetString("policy")
		canned, err := s3types.ParseValidCannedACL(policy)
		if err != nil {
			return &bucketinfo.InvalidArgumentError{Argument: "policy", Value: policy, Err: err}
		}
		b.SetCannedACL(canned)
		log.Debug().Str("bucket", b.Name()).Str("canned", canned.String()).Msg("Set canned ACL")
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(aclCmd)
	aclCmd.AddCommand(aclGrantCmd, aclCannedCmd)

	addRecordFlags(aclGrantCmd)
	aclGrantCmd.Flags().String("grantee", "", "Canonical id of the grantee")
	aclGrantCmd.Flags().String("permission", "", "FULL_CONTROL, WRITE, WRITE_ACP, READ or READ_ACP")
	aclGrantCmd.MarkFlagRequired("grantee")
	aclGrantCmd.MarkFlagRequired("permission")

	addRecordFlags(aclCannedCmd)
	aclCannedCmd.Flags().String("policy", "", "Canned ACL name, e.g. private or public-read")
	aclCannedCmd.MarkFlagRequired("policy")
}
