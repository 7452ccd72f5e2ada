package session

import (
	"fmt"
	"time"
)

type Phase string

const (
	PhaseDay   Phase = "day"
	PhaseNight Phase = "night"
)

type Status string

const (
	StatusSetup   Status = "setup"
	StatusPlaying Status = "playing"
	StatusCombat  Status = "combat"
	StatusPaused  Status = "paused"
	StatusEnded   Status = "ended"
)

type EncounterTag string

const (
	EncounterNone     EncounterTag = ""
	EncounterFriend   EncounterTag = "friend"
	EncounterMerchant EncounterTag = "merchant"
	EncounterPerson   EncounterTag = "person_in_need"
	EncounterHostile  EncounterTag = "hostile_survivor"
)

type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsHost      bool   `json:"is_host"`
	IsReady     bool   `json:"is_ready"`
}

// Session is per-game state: turn and calendar progression, the multiplayer
// roster with its ready gate, the name pool and the seasonal-event ledger.
// One session is advanced at a time; nothing here is safe for concurrent use.
type Session struct {
	ID               string
	TurnNumber       int
	TimeOfDay        Phase
	CurrentDate      time.Time
	Status           Status
	InCombat         bool
	Combat           *CombatState
	PendingEncounter EncounterTag
	Players          map[string]*Player
	Triggered        map[string]bool
	NamePool         []string
}

func New(id string, start time.Time) *Session {
	return &Session{
		ID:          id,
		TurnNumber:  1,
		TimeOfDay:   PhaseDay,
		CurrentDate: start,
		Status:      StatusSetup,
		Players:     map[string]*Player{},
		Triggered:   map[string]bool{},
	}
}

// AdvanceTime flips day to night and night to day. The calendar only moves
// when a night rolls over into the next day.
func (s *Session) AdvanceTime() {
	if s.TimeOfDay == PhaseDay {
		s.TimeOfDay = PhaseNight
	} else {
		s.TimeOfDay = PhaseDay
		s.CurrentDate = s.CurrentDate.AddDate(0, 0, 1)
	}
	s.TurnNumber++
}

// AddPlayer registers a player; the first one in becomes host.
func (s *Session) AddPlayer(id, displayName string) *Player {
	if p, ok := s.Players[id]; ok {
		return p
	}
	p := &Player{ID: id, DisplayName: displayName, IsHost: len(s.Players) == 0}
	s.Players[id] = p
	return p
}

// RemovePlayer drops a player; host identity transfers to an arbitrary
// remaining player when the host leaves.
func (s *Session) RemovePlayer(id string) {
	p, ok := s.Players[id]
	if !ok {
		return
	}
	delete(s.Players, id)
	if !p.IsHost {
		return
	}
	for _, remaining := range s.Players {
		remaining.IsHost = true
		break
	}
}

func (s *Session) SetPlayerReady(id string, ready bool) bool {
	p, ok := s.Players[id]
	if !ok {
		return false
	}
	p.IsReady = ready
	return true
}

func (s *Session) AreAllPlayersReady() bool {
	if len(s.Players) == 0 {
		return false
	}
	ready := 0
	for _, p := range s.Players {
		if p.IsReady {
			ready++
		}
	}
	return ready >= len(s.Players)
}

// HostOverride force-marks every player ready. Only the current host may
// invoke it.
func (s *Session) HostOverride(callerID string) bool {
	caller, ok := s.Players[callerID]
	if !ok || !caller.IsHost {
		return false
	}
	for _, p := range s.Players {
		p.IsReady = true
	}
	return true
}

func (s *Session) IsMultiplayer() bool {
	return len(s.Players) > 1
}

// NextName pops the next display name, reshuffling a fresh default pool when
// the current one is exhausted.
func (s *Session) NextName(shuffle func(n int, swap func(i, j int))) string {
	if len(s.NamePool) == 0 {
		s.NamePool = append(s.NamePool, DefaultNames...)
		if shuffle != nil {
			shuffle(len(s.NamePool), func(i, j int) {
				s.NamePool[i], s.NamePool[j] = s.NamePool[j], s.NamePool[i]
			})
		}
	}
	name := s.NamePool[0]
	s.NamePool = s.NamePool[1:]
	return name
}

// TopUpNames appends names from an external directory, skipping duplicates.
func (s *Session) TopUpNames(names []string) {
	seen := map[string]bool{}
	for _, n := range s.NamePool {
		seen[n] = true
	}
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		s.NamePool = append(s.NamePool, n)
		seen[n] = true
	}
}

// ClaimName removes a specific name from the pool if present.
func (s *Session) ClaimName(name string) {
	for i, n := range s.NamePool {
		if n == name {
			s.NamePool = append(s.NamePool[:i], s.NamePool[i+1:]...)
			return
		}
	}
}

// MarkSeasonal records a calendar event for the given year. It reports true
// only the first time that event fires in that year.
func (s *Session) MarkSeasonal(event string, year int) bool {
	key := fmt.Sprintf("%s_%d", event, year)
	if s.Triggered[key] {
		return false
	}
	s.Triggered[key] = true
	return true
}
