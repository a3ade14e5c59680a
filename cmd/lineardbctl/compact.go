package main

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/s2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gostonefire/lineardb"
)

// newCompactCmd rebuilds a data file into a freshly sized one (via ShrinkSize) and
// archives the original as an s2-compressed file alongside it, so an operator can
// reclaim index memory after a workload's key count drops well below what the table
// was originally opened for.
func newCompactCmd(cfg *config) *cobra.Command {
	var archivePath string

	cmd := &cobra.Command{
		Use:   "compact <output-path>",
		Short: "Rewrite the data file into a smaller hash table and archive the original",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outPath := args[0]

			src, err := cfg.openDB()
			if err != nil {
				return err
			}
			defer src.Close()

			newSize := src.ShrinkSize(src.NumRecords())
			log.Info().Uint32("from", src.CurrentSize()).Uint32("to", newSize).Msg("compacting")

			dst, err := lineardb.Open(outPath, newSize, cfg.keySize, cfg.valueSize,
				lineardb.WithMaxLoad(cfg.maxLoad))
			if err != nil {
				return fmt.Errorf("opening compacted output file: %w", err)
			}
			defer dst.Close()

			it := src.Init()
			for it.HasNext() {
				key, value, err := it.Next()
				if err != nil {
					return err
				}
				if err = dst.Put(key, value); err != nil {
					return fmt.Errorf("writing compacted record: %w", err)
				}
			}

			if archivePath == "" {
				archivePath = cfg.path + ".s2"
			}
			if err = archiveOriginal(cfg.path, archivePath); err != nil {
				return fmt.Errorf("archiving original data file: %w", err)
			}

			log.Info().Str("archive", archivePath).Msg("original data file archived")
			return nil
		},
	}

	cmd.Flags().StringVar(&archivePath, "archive", "", "where to write the s2-compressed original (default: <db>.s2)")
	return cmd
}

func archiveOriginal(srcPath, archivePath string) error {
	in, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(archivePath)
	if err != nil {
		return err
	}
	defer out.Close()

	w := s2.NewWriter(out)
	defer w.Close()

	_, err = io.Copy(w, in)
	return err
}
