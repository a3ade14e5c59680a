package main

import (
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newGetCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key-hex>",
		Short: "Look up a key and print its value as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("decoding key: %w", err)
			}

			db, err := cfg.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			value, err := db.Get(key)
			if err != nil {
				return err
			}

			log.Debug().Str("key", args[0]).Msg("get")
			fmt.Println(hex.EncodeToString(value))
			return nil
		},
	}
}
