// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "build information not available")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", info.Path, info.Main.Version)
			printBuildSettings(cmd, info)
			return nil
		},
	}
}

// printBuildSettings prints every non-empty debug.BuildSetting, padded
// to align values; empirically 16 characters is enough for every key
// the Go toolchain currently emits, the longest being "vcs.revision".
func printBuildSettings(cmd *cobra.Command, info *debug.BuildInfo) {
	fmt.Fprintln(cmd.OutOrStdout(), "Build settings:")
	for _, setting := range info.Settings {
		if setting.Value == "" {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%16s %s\n", setting.Key, setting.Value)
	}
}
