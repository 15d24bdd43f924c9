// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/codebook-lsp/codebook/internal/cache"
	"github.com/codebook-lsp/codebook/internal/xdg"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove cached dictionaries and the cache manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := xdg.CacheDir()
			if err := cache.Clean(dir); err != nil {
				return oops.Code("CACHE_CLEAN_FAILED").With("path", dir).Wrap(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", dir)
			return nil
		},
	}
}
