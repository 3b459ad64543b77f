package main

import (
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mvlr/beatstrike/internal/clock"
	"github.com/mvlr/beatstrike/internal/config"
	"github.com/mvlr/beatstrike/internal/engine"
	"github.com/mvlr/beatstrike/internal/gen"
	"github.com/mvlr/beatstrike/internal/render"
	"github.com/mvlr/beatstrike/internal/score"
	"github.com/mvlr/beatstrike/internal/theme"
	"github.com/mvlr/beatstrike/internal/track"
)

func main() {
	config.Parse()

	log, err := newLogger()
	if nil != err {
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log.Sugar()); nil != err {
		log.Sugar().Fatalw("fatal", "err", err)
	}
}

// newLogger writes to a file, never the terminal; the renderer owns the
// terminal while the game runs.
func newLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(*config.LogLevel)
	if nil != err {
		level = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{*config.LogFile}
	cfg.ErrorOutputPaths = []string{*config.LogFile}
	return cfg.Build()
}

// findSong walks the song directory for a playable audio file. A session
// without one runs silent on a manually advanced clock.
func findSong(dir string) (audioFile string) {
	filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if nil != err || nil == info {
			return nil
		}
		switch path.Ext(info.Name()) {
		case ".mp3", ".ogg":
			audioFile = p
		}
		return nil
	})
	return audioFile
}

func run(log *zap.SugaredLogger) error {
	settings := config.Load()

	keyChannel, err := keyboard.GetKeys(128)
	if nil != err {
		return err
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Errorw("unable to close keyboard", "err", err)
		}
	}()

	program := &Program{
		Renderer: &render.DefaultRenderer{},
		Theme:    &theme.DefaultTheme{},
		Scorer:   &score.DefaultScorer{},
		log:      log,
		keys:     keyChannel,
		judgeCfg: settings.Judge,
	}

	if err := program.Scorer.Init(*config.ScoresPath); nil != err {
		return err
	}
	defer program.Scorer.Deinit()

	var clk clock.Clock
	if audioFile := findSong(*config.Directory); audioFile != "" {
		f, err := os.Open(audioFile)
		if nil != err {
			return err
		}
		var streamer beep.StreamSeekCloser
		var format beep.Format
		if path.Ext(audioFile) == ".ogg" {
			streamer, format, err = vorbis.Decode(f)
		} else {
			streamer, format, err = mp3.Decode(f)
		}
		if nil != err {
			return err
		}
		defer streamer.Close()

		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/30)); nil != err {
			return err
		}
		audio := clock.NewAudioClock(streamer, format)
		program.play = func() { speaker.Play(audio.Streamer()) }
		clk = audio
		log.Infow("song loaded", "file", audioFile)
	} else {
		manual := clock.NewManualClock()
		program.Manual = manual
		clk = manual
		log.Infow("no song found, running silent", "directory", *config.Directory)
	}

	seed := *config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	generator := &gen.DefaultGenerator{
		Config: settings.Generator,
		Rand:   rand.New(rand.NewSource(seed)),
	}

	eng, err := engine.New(
		log,
		clk,
		track.NewConditioner(settings.Track),
		generator,
		settings.Sched,
		settings.Judge,
		settings.Session,
	)
	if nil != err {
		return err
	}
	defer eng.Close()
	program.Engine = eng

	// The keyboard stand-in detector is ready as soon as the keyboard
	// opened. A camera pipeline would signal this on first landmark frame.
	eng.SetTrackerReady()

	return program.Run()
}
