package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ChristosPoulios/Hangman/internal/config"
	"github.com/ChristosPoulios/Hangman/internal/console"
	"github.com/ChristosPoulios/Hangman/internal/httpserver"
	"github.com/ChristosPoulios/Hangman/internal/solver"
	"github.com/ChristosPoulios/Hangman/internal/store"
	"github.com/ChristosPoulios/Hangman/internal/words"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [play|serve]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	cfg.SetupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open word store")
	}
	defer closeStore()

	switch cmd := flag.Arg(0); cmd {
	case "", "play":
		err = play(ctx, cfg, st)
	case "serve":
		err = serve(ctx, cfg, st)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("exited")
	}
}

// openStore returns the SQLite store when DB_PATH is set and an in-memory
// one otherwise. Either is seeded from WORDS_FILE or the embedded list.
func openStore(ctx context.Context, cfg config.Config) (store.Store, func(), error) {
	seed, err := seedWords(cfg)
	if err != nil {
		return nil, nil, err
	}
	if cfg.DBPath == "" {
		return store.NewMemoryStore(seed.All()), func() {}, nil
	}
	db, err := store.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	if _, err := db.Seed(ctx, seed.All()); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return db, func() { _ = db.Close() }, nil
}

func seedWords(cfg config.Config) (*words.List, error) {
	if cfg.WordsFile != "" {
		return words.LoadFile(cfg.WordsFile)
	}
	return words.Default()
}

func play(ctx context.Context, cfg config.Config, st store.Store) error {
	vocab, err := store.LoadList(ctx, st)
	if err != nil {
		return err
	}
	rng, err := solver.NewRand(cfg.Seed)
	if err != nil {
		return err
	}
	log.Debug().Int("words", vocab.Len()).Msg("vocabulary loaded")

	s := console.NewSession(os.Stdin, os.Stdout, console.Options{
		Vocabulary: vocab,
		Rand:       rng,
		DailySalt:  cfg.DailySalt,
		AutoDelay:  cfg.AutoDelay,
	})
	return s.Run(ctx)
}

func serve(ctx context.Context, cfg config.Config, st store.Store) error {
	srv := httpserver.New(st, httpserver.Options{
		JWTSecret:         cfg.JWTSecret,
		JWTTTL:            cfg.JWTTTL,
		AdminPasswordHash: cfg.AdminPasswordHash,
		ClientOrigin:      cfg.ClientOrigin,
		Secure:            cfg.CookieSecure,
	}).HTTPServer(":" + cfg.Port)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("starting admin server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info().Msg("shutting down admin server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
