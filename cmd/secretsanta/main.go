// Command secretsanta keeps a Secret Santa roster on disk and draws
// assignments from it.
//
//	secretsanta add Alice Bob Carol
//	secretsanta exclude Alice Bob
//	secretsanta draw -save
//	secretsanta reveal
//
// Configuration comes from the environment (and an optional .env file), see
// Config.
package main

import (
	"fmt"
	"os"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"github.com/katalvlaran/secretsanta/storage"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "secretsanta: %v\n", err)
		os.Exit(1)
	}
}

// run keeps deferred cleanup (closing the database) ahead of os.Exit.
func run(args []string) error {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	store, err := storage.OpenBadger(config.DBPath, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Closing store", "error", err)
		}
	}()

	app := NewApp(config, store, log, os.Stdin, os.Stdout, os.Stderr)

	return app.Run(args)
}
