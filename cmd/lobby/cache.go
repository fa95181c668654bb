package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCacheCmd(opts *options) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the Data Dragon document cache",
	}

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every cached Data Dragon document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeStore, err := newStore(opts.cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached documents from the %s cache\n",
				removed, opts.cfg.Cache.Backend)
			return err
		},
	})

	return cacheCmd
}
