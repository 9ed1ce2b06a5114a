package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/convivio/internal/config"
	"github.com/sidereusnuntius/convivio/internal/facade"
	"github.com/sidereusnuntius/convivio/internal/initialization"
	"github.com/sidereusnuntius/convivio/internal/service/core"
	"github.com/sidereusnuntius/convivio/internal/storage"
	"github.com/sidereusnuntius/convivio/internal/storage/dbstore"
	"github.com/sidereusnuntius/convivio/internal/storage/filestore"
)

// Runs the command loop against stdin, or against a script file when one is
// given as the first argument. State is restored on startup and saved on
// quit.
func main() {
	os.Exit(run())
}

func run() int {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.ReadConfig()
	if err != nil {
		zero.Fatal().Err(err).Msg("failed to read configuration")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	store, err := openStore(cfg)
	if err != nil {
		zero.Fatal().Err(err).Msg("failed to set up the snapshot store")
	}

	ctx := context.Background()
	service := core.New(ctx, cfg, store)
	f := facade.New(service)

	input := io.Reader(os.Stdin)
	if len(os.Args) > 1 {
		script, err := os.Open(os.Args[1])
		if err != nil {
			zero.Fatal().Err(err).Str("script", os.Args[1]).Msg("failed to open script")
		}
		defer script.Close()
		input = script
	}

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "quit" {
			break
		}

		out, err := f.Execute(ctx, line)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
	}
	if err := scanner.Err(); err != nil {
		zero.Error().Err(err).Msg("failed to read input")
	}

	if err := service.Save(ctx); err != nil {
		return 1
	}
	return 0
}

func openStore(cfg config.Configuration) (storage.Storage, error) {
	if cfg.Backend == config.BackendSqlite {
		d, err := initialization.OpenDB(cfg.DbUrl)
		if err != nil {
			return nil, err
		}
		if err = initialization.SetupDB(d, cfg.MigrationsFolder, cfg.DbUrl); err != nil {
			return nil, err
		}
		zero.Info().Msg("database connection established")
		return dbstore.New(d), nil
	}
	return filestore.New(cfg.DataDir)
}
