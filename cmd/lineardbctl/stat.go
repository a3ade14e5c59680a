package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newStatCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "stat",
		Short: "Print record count, table size, and file size for a data file",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := cfg.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			fi, err := os.Stat(cfg.path)
			if err != nil {
				return fmt.Errorf("stat data file: %w", err)
			}

			fmt.Printf("records:     %s\n", humanize.Comma(int64(db.NumRecords())))
			fmt.Printf("table size:  %s buckets\n", humanize.Comma(int64(db.CurrentSize())))
			fmt.Printf("file size:   %s\n", humanize.Bytes(uint64(fi.Size())))
			return nil
		},
	}
}
