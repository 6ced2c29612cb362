package main

import (
	"bufio"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/tomz197/wheel/internal/audio"
	"github.com/tomz197/wheel/internal/config"
	"github.com/tomz197/wheel/internal/loop"
	gameconfig "github.com/tomz197/wheel/internal/loop/config"
	"github.com/tomz197/wheel/internal/sprite"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "wheel",
	})

	if err := run(logger); err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	debug, err := config.GetEnvBool("WHEEL_DEBUG", false)
	if err != nil {
		return err
	}
	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	seed, err := config.GetEnvInt64("WHEEL_SEED", time.Now().UnixNano())
	if err != nil {
		return err
	}
	soundOn, err := config.GetEnvBool("WHEEL_SOUND", true)
	if err != nil {
		return err
	}
	spritePath := config.GetEnv("WHEEL_SPRITE", "")

	img, err := sprite.Load(spritePath, gameconfig.SpriteScaleDivisor)
	if err != nil {
		return errors.Wrap(err, "load wheel sprite")
	}
	logger.Debug("starting", "seed", seed, "sprite", spritePath, "sound", soundOn,
		"wheel", img.Bounds().Size())

	opts := loop.Options{
		GameOptions: loop.GameOptions{
			Rand:   rand.New(rand.NewSource(seed)),
			Sprite: img,
		},
	}

	if soundOn {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer sm.Cleanup()
			opts.Sounds = sm
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return errors.Wrap(err, "enable raw mode")
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(reader, os.Stdout, opts)
}
