package commands

import (
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog/log"

	"github.com/idilsaglam/tasks/internal/config"
	"github.com/idilsaglam/tasks/internal/model"
	"github.com/idilsaglam/tasks/internal/store/memstore"
	"github.com/idilsaglam/tasks/internal/store/seedfile"
)

// Flags holds root flag values shared by every command.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	SeedFile   string
	StoreName  string
	Theme      string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

func (f *Flags) config() *config.Config {
	if f.Config == nil {
		cfg := config.DefaultConfig()
		f.Config = &cfg
	}
	return f.Config
}

// OpenStore builds the in-memory store for this run from config, seed file
// and flag overrides. Name precedence: --name, the seed file's name, then
// store_name from config.
func (f *Flags) OpenStore() (*memstore.Store, error) {
	cfg := f.config()

	name := cfg.StoreName
	seed := cfg.SeedFile
	if f.SeedFile != "" {
		seed = f.SeedFile
	}

	var records []model.Record
	if seed != "" {
		c, err := seedfile.LoadCollection(seed)
		if err != nil {
			return nil, fmt.Errorf("load seed file: %w", err)
		}
		records = c.Records
		if c.Name != "" {
			name = c.Name
		}
	}
	if f.StoreName != "" {
		name = f.StoreName
	}

	opts := []memstore.Option{
		memstore.WithLogger(log.With().Str("component", "store").Logger()),
	}
	if cfg.IDs.Strategy == config.IDStrategyRandom {
		var r *rand.Rand
		if s := cfg.IDs.RandomSeed; s != 0 {
			r = rand.New(rand.NewPCG(s, s))
		}
		opts = append(opts, memstore.WithIDGenerator(memstore.RandomIDs(r, cfg.IDs.RandomLimit)))
	}

	s, err := memstore.NewFromRecords(name, records, opts...)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", seed, err)
	}

	log.Debug().Str("store", name).Int("records", s.Len()).Msg("store opened")
	return s, nil
}
