package config

import (
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/mvlr/beatstrike/internal/gen"
	"github.com/mvlr/beatstrike/internal/judge"
	"github.com/mvlr/beatstrike/internal/sched"
	"github.com/mvlr/beatstrike/internal/session"
	"github.com/mvlr/beatstrike/internal/track"
)

var (
	Directory     = kingpin.Flag("directory", "Directory searched for a song file").Default(".").Short('D').String()
	BPM           = kingpin.Flag("bpm", "Chart tempo in beats per minute").Default("128").Short('b').Float64()
	Length        = kingpin.Flag("length", "Session length in seconds").Default("90").Short('l').Float64()
	Seed          = kingpin.Flag("seed", "Chart seed, 0 seeds from the clock").Default("0").Int64()
	NoteSpeed     = kingpin.Flag("note-speed", "Note travel speed in units per second").Default("6").Float64()
	SpawnDistance = kingpin.Flag("spawn-distance", "Travel distance from spawn to the hit zone").Default("18").Float64()
	MissDistance  = kingpin.Flag("miss-distance", "Depth past the hit zone before a miss").Default("1.2").Float64()
	PreWindow     = kingpin.Flag("pre-window", "Judgement depth tolerance before the hit zone").Default("1.8").Float64()
	PostWindow    = kingpin.Flag("post-window", "Judgement depth tolerance past the hit zone").Default("0.9").Float64()
	HitRadius     = kingpin.Flag("hit-radius", "Max hand distance from a note anchor").Default("0.8").Float64()
	Smoothing     = kingpin.Flag("smoothing", "Hand smoothing factor toward the new sample").Default("0.6").Float64()
	ScoresPath    = kingpin.Flag("scores", "Result database path").Default("./scores.db").String()
	LogFile       = kingpin.Flag("log-file", "Log destination").Default("beatstrike.log").String()
	LogLevel      = kingpin.Flag("log-level", "debug, info, warn or error").Default("info").String()
	FramePeriod   = kingpin.Flag("frame-period", "Render frame period").Default("16ms").Short('p').Duration()
	Delay         = kingpin.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
)

func Parse() {
	kingpin.Version("0.1.0")
	kingpin.Parse()
}

// Settings are the typed per-component configs assembled from the parsed
// flags. The core packages never read flags directly.
type Settings struct {
	Generator gen.Config
	Track     track.Config
	Sched     sched.Config
	Judge     judge.Config
	Session   session.Config
}

func Load() Settings {
	g := gen.DefaultConfig()
	g.BPM = *BPM
	g.EndBeat = *Length * *BPM / 60

	tr := track.DefaultConfig()
	tr.Smoothing = *Smoothing

	sc := sched.Config{
		NoteSpeed:     *NoteSpeed,
		SpawnDistance: *SpawnDistance,
		MissDistance:  *MissDistance,
	}

	j := judge.DefaultConfig()
	j.PreWindow = *PreWindow
	j.PostWindow = *PostWindow
	j.HitRadius = *HitRadius

	se := session.DefaultConfig()
	se.Duration = *Length

	return Settings{
		Generator: g,
		Track:     tr,
		Sched:     sc,
		Judge:     j,
		Session:   se,
	}
}
