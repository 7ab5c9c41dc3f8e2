package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/message"

	"github.com/robalobadob/numguess/internal/config"
	"github.com/robalobadob/numguess/internal/game"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.Level())
	if cfg.LogFormat == config.LogFormatConsole {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	difficulty := flag.String("difficulty", cfg.Difficulty, "skip the menu and play this tier (easy, medium, hard)")
	seed := flag.Int64("seed", cfg.Seed, "random seed for target selection (0 = random)")
	flag.Parse()

	var preset game.Difficulty
	if *difficulty != "" {
		d, err := game.ParseDifficulty(*difficulty)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid -difficulty")
		}
		preset = d
	}

	eng := game.NewEngine(
		game.WithSeed(*seed),
		game.WithLogger(log.Logger),
	)
	p := newPlayer(eng, os.Stdin, os.Stdout, message.NewPrinter(cfg.Language()))
	p.preset = preset

	log.Debug().Int64("seed", *seed).Str("difficulty", string(preset)).Msg("starting numguess")
	if err := p.run(); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
