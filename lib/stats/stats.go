package stats

import (
	"sync"
	"time"
)

// Stats tracks render loop progress. It is updated from the render thread
// and read from the api goroutines.
type Stats struct {
	snap Snapshot

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time
	now          func() time.Time

	sync.Mutex
}

func New() *Stats {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Stats {
	s := &Stats{now: now}
	s.start = now()
	s.frameTimer = s.start
	return s
}

// Update is called once per drawn frame
func (s *Stats) Update() {
	s.Lock()
	defer s.Unlock()

	now := s.now()
	s.snap.Frames++
	s.frameCounter++
	if now.Sub(s.frameTimer) >= time.Second {
		s.snap.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = now
	}

	s.snap.Uptime = now.Sub(s.start).Seconds()
}

func (s *Stats) SetWsClients(n int) {
	s.Lock()
	defer s.Unlock()
	s.snap.WsClients = n
}

// Snapshot returns a copy that is safe to serialise while rendering goes on
func (s *Stats) Snapshot() Snapshot {
	s.Lock()
	defer s.Unlock()
	return s.snap
}

type Snapshot struct {
	FPS       uint64  `json:"fps"`
	Frames    uint64  `json:"frames"`
	Uptime    float64 `json:"uptime"`
	WsClients int     `json:"ws_clients"`
}
