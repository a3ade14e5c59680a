package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func newIterateCmd(cfg *config) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "iterate",
		Short: "Print every record in the data file as hex-encoded key/value pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := cfg.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			it := db.Init()
			n := 0
			for it.HasNext() {
				if limit > 0 && n >= limit {
					break
				}
				key, value, err := it.Next()
				if err != nil {
					return err
				}
				fmt.Printf("%s\t%s\n", hex.EncodeToString(key), hex.EncodeToString(value))
				n++
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many records (0 means no limit)")
	return cmd
}
