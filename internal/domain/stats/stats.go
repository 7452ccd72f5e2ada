// Package stats records game outcomes. It is a pure aggregator: callers
// report events, nothing here drives control flow.
package stats

type SurvivorRecord struct {
	Name  string `json:"name"`
	Turns int    `json:"turns"`
}

type Stats struct {
	WeaponKills map[string]int `json:"weapon_kills"`
	WeaponUses  map[string]int `json:"weapon_uses"`
	FoodEaten   int            `json:"food_eaten"`
	MedicalUsed int            `json:"medical_used"`
	Encounters  map[string]int `json:"encounters"`
	JoinTurns   map[string]int `json:"join_turns"`
	Longest     SurvivorRecord `json:"longest_survivor"`
}

func New() *Stats {
	return &Stats{
		WeaponKills: map[string]int{},
		WeaponUses:  map[string]int{},
		Encounters:  map[string]int{},
		JoinTurns:   map[string]int{},
	}
}

func (s *Stats) RecordKill(weapon string)      { s.WeaponKills[weapon]++ }
func (s *Stats) RecordWeaponUse(weapon string) { s.WeaponUses[weapon]++ }
func (s *Stats) RecordFood()                   { s.FoodEaten++ }
func (s *Stats) RecordMedical()                { s.MedicalUsed++ }
func (s *Stats) RecordEncounter(outcome string) { s.Encounters[outcome]++ }

func (s *Stats) RecordJoin(name string, turn int) {
	if _, ok := s.JoinTurns[name]; !ok {
		s.JoinTurns[name] = turn
	}
}

// RecordDeparture resolves a member's join record into the longest-survivor
// slot when it beats the current holder.
func (s *Stats) RecordDeparture(name string, turn int) {
	join, ok := s.JoinTurns[name]
	if !ok {
		return
	}
	delete(s.JoinTurns, name)
	alive := turn - join + 1
	if alive > s.Longest.Turns {
		s.Longest = SurvivorRecord{Name: name, Turns: alive}
	}
}

// FinalizeAt resolves every still-alive member at game end.
func (s *Stats) FinalizeAt(turn int) {
	for name := range s.JoinTurns {
		s.RecordDeparture(name, turn)
	}
}

// FavouriteWeapon picks by kills first, uses as tiebreak. With no kills
// recorded it falls back to the most-used weapon.
func (s *Stats) FavouriteWeapon() string {
	best, bestKills, bestUses := "", 0, 0
	for weapon, kills := range s.WeaponKills {
		uses := s.WeaponUses[weapon]
		if kills > bestKills || (kills == bestKills && kills > 0 && uses > bestUses) {
			best, bestKills, bestUses = weapon, kills, uses
		}
	}
	if best != "" {
		return best
	}
	for weapon, uses := range s.WeaponUses {
		if uses > bestUses {
			best, bestUses = weapon, uses
		}
	}
	return best
}
