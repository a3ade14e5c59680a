package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gostonefire/lineardb"
	"github.com/gostonefire/lineardb/hashfunc"
)

// config holds the flags every subcommand needs to open a DB the same way.
type config struct {
	path            string
	startingBuckets uint32
	keySize         uint32
	valueSize       uint32
	hasher          string
	maxLoad         float64
}

func (c config) openDB() (*lineardb.DB, error) {
	var h hashfunc.Hasher
	switch c.hasher {
	case "xxhash", "":
		h = hashfunc.NewXXHash64()
	case "murmur3":
		h = hashfunc.NewMurmur3()
	default:
		return nil, fmt.Errorf("unknown hasher %q (want xxhash or murmur3)", c.hasher)
	}

	return lineardb.Open(c.path, c.startingBuckets, c.keySize, c.valueSize,
		lineardb.WithHasher(h),
		lineardb.WithMaxLoad(c.maxLoad),
	)
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:   "lineardbctl",
		Short: "Inspect and manipulate a lineardb data file",
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfg.path, "db", "", "path to the lineardb data file (env LINEARDBCTL_DB)")
	pf.Uint32Var(&cfg.startingBuckets, "starting-buckets", 64, "hash table size to use when creating a new data file")
	pf.Uint32Var(&cfg.keySize, "key-size", 8, "fixed key size in bytes")
	pf.Uint32Var(&cfg.valueSize, "value-size", 8, "fixed value size in bytes")
	pf.StringVar(&cfg.hasher, "hasher", "xxhash", "hash function to use: xxhash or murmur3")
	pf.Float64Var(&cfg.maxLoad, "max-load", 0.5, "target load factor when rebuilding the index from an existing file")

	v := viper.New()
	v.SetEnvPrefix("LINEARDBCTL")
	v.AutomaticEnv()
	cobra.OnInitialize(func() {
		if cfg.path == "" {
			cfg.path = v.GetString("db")
		}
	})

	root.AddCommand(
		newGetCmd(cfg),
		newPutCmd(cfg),
		newIterateCmd(cfg),
		newStatCmd(cfg),
		newCompactCmd(cfg),
	)

	return root
}
