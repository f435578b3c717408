package main

import (
	"flag"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/Garsondee/maze-chase/internal/audio"
	"github.com/Garsondee/maze-chase/internal/config"
	"github.com/Garsondee/maze-chase/internal/game"
	"github.com/Garsondee/maze-chase/internal/screen"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "ghost RNG seed (0 = wall clock)")
	flag.Float64Var(&cfg.Scale, "scale", cfg.Scale, "window scale factor")
	flag.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable sound effects")
	flag.Parse()

	logger := log.New()
	logger.SetLevel(cfg.LogLevel)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sound := audio.NewPlayer(audio.WithMute(cfg.Mute), audio.WithLogger(logger))
	if err := sound.Init(); err != nil {
		logger.WithError(err).Warn("audio unavailable, continuing without sound")
	}
	defer sound.Close()

	session, err := game.NewSession(
		game.WithTuning(cfg.Tuning),
		game.WithSeed(seed),
		game.WithClock(game.SystemClock{}),
		game.WithLogger(logger),
		game.WithListener(sound),
	)
	if err != nil {
		log.Fatal(err)
	}

	g := screen.New(session, screen.WithLogger(logger))
	w, h := g.Size()
	ebiten.SetWindowTitle("Maze Chase")
	ebiten.SetWindowSize(int(float64(w)*cfg.Scale), int(float64(h)*cfg.Scale))
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
