package system

import (
	"time"

	"go.uber.org/zap"
)

// Stats accumulates per-frame cost for one system.
type Stats struct {
	Name   string
	Frames int
	Rows   int
	Total  time.Duration
	Max    time.Duration
}

func (s *Stats) record(rows int, d time.Duration) {
	s.Frames++
	s.Rows += rows
	s.Total += d
	if d > s.Max {
		s.Max = d
	}
}

func (s *Stats) Average() time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Frames)
}

// RowsPerFrame is the mean number of rows touched per frame.
func (s *Stats) RowsPerFrame() int {
	if s.Frames == 0 {
		return 0
	}
	return s.Rows / s.Frames
}

func (s *Stats) Fields() []zap.Field {
	return []zap.Field{
		zap.String("system", s.Name),
		zap.Int("frames", s.Frames),
		zap.Int("rows_per_frame", s.RowsPerFrame()),
		zap.Duration("avg", s.Average()),
		zap.Duration("max", s.Max),
	}
}
