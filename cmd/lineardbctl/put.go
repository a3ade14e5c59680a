package main

import (
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newPutCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "put <key-hex> <value-hex>",
		Short: "Insert or overwrite a key's value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("decoding key: %w", err)
			}
			value, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("decoding value: %w", err)
			}

			db, err := cfg.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			if err = db.Put(key, value); err != nil {
				return err
			}

			log.Info().Str("key", args[0]).Uint32("num_records", db.NumRecords()).Msg("put")
			return nil
		},
	}
}
