// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/LeeDigitalWorks/bucketmd/pkg/bucketinfo"
	"github.com/LeeDigitalWorks/bucketmd/pkg/utils"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// addRecordFlags registers the input and output flags shared by every command
// that reads an encoded record.
func addRecordFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "-", "Encoded bucket metadata; - reads stdin")
	cmd.Flags().Bool("pretty", false, "Indent JSON output")
}

// readRecord decodes the record named by the --file flag.
func readRecord(cmd *cobra.Command) (*bucketinfo.BucketInfo, error) {
	path, _ := cmd.Flags().GetString("file")
	data, err := utils.ReadInput(path, cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	b, err := bucketinfo.Deserialize(string(data))
	if err != nil {
		log.Debug().Err(err).Str("file", path).Msg("Failed to decode bucket metadata")
		return nil, err
	}
	log.Debug().Str("bucket", b.Name()).Int("model_version", b.ModelVersion()).Msg("Decoded bucket metadata")
	return b, nil
}

// writeRecord prints the canonical encoding of b, indented when pretty is set.
func writeRecord(w io.Writer, b *bucketinfo.BucketInfo, pretty bool) error {
	serialized, err := b.Serialize()
	if err != nil {
		return err
	}
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(serialized), "", "  "); err != nil {
			return err
		}
		serialized = buf.String()
	}
	_, err = fmt.Fprintln(w, serialized)
	return err
}

// rewrite is the RunE body of commands that load a record, edit it and print
// the new encoding.
func rewrite(edit func(cmd *cobra.Command, b *bucketinfo.BucketInfo) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		b, err := readRecord(cmd)
		if err != nil {
			return err
		}
		if err := edit(cmd, b); err != nil {
			return err
		}
		return writeRecord(cmd.OutOrStdout(), b, NewFlagLoader(cmd).Bool("pretty"))
	}
}
