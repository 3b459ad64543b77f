package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mvlr/beatstrike/internal/game"
	"github.com/mvlr/beatstrike/internal/session"
)

type DefaultScorer struct {
	db *sql.DB
}

func (s *DefaultScorer) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return err
	}

	initStatement := `
	create table if not exists results
	  (
		  id integer not null primary key,
		  sum text,
		  outcome text,
		  score integer,
		  max_combo integer,
		  hits integer,
		  misses integer,
		  played_at integer
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

// hashChart sums the shape of a chart so results group across runs with
// the same tempo and pattern layout. Random-burst segments make the sum
// seed-dependent, which is intended.
func (s *DefaultScorer) hashChart(c *game.Chart) string {
	h := sha256.New()
	fmt.Fprintf(h, "%v\n", c.BPM)
	for _, n := range c.Notes {
		fmt.Fprintf(h, "%v:%v:%v\n", n.Time, n.Lane, n.Hand)
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func (s *DefaultScorer) Save(chart *game.Chart, snap session.Snapshot) error {
	if !snap.Status.Terminal() {
		return fmt.Errorf("refusing to save a %v session", snap.Status)
	}
	_, err := s.db.Exec(
		"insert into results(sum, outcome, score, max_combo, hits, misses, played_at) values(?, ?, ?, ?, ?, ?, ?)",
		s.hashChart(chart), snap.Status.String(), snap.Score, snap.MaxCombo,
		snap.Hits, snap.Misses, time.Now().Unix(),
	)
	return err
}

func (s *DefaultScorer) Load(chart *game.Chart) ([]Result, error) {
	results := []Result{}
	rows, err := s.db.Query(
		"select outcome, score, max_combo, hits, misses, played_at from results where sum = ? order by played_at",
		s.hashChart(chart),
	)
	if nil != err {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r Result
		var playedAt int64
		if err := rows.Scan(&r.Outcome, &r.Score, &r.MaxCombo, &r.Hits, &r.Misses, &playedAt); nil != err {
			return nil, err
		}
		r.PlayedAt = time.Unix(playedAt, 0)
		results = append(results, r)
	}
	return results, rows.Err()
}
