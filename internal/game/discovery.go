package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spacehole-rogue/starlanes/internal/world"
)

// DiscoveryLog tracks the bodies the player has landed on this session.
type DiscoveryLog struct {
	surveyed map[world.PlanetID]bool
	Recent   []Survey // newest first, capped at maxRecentSurveys
}

const maxRecentSurveys = 10

// Survey holds what landing on a body revealed.
type Survey struct {
	Body      string
	Summary   string
	Minerals  []world.MineralDeposit // richest first
	Lifeforms []string
}

// NewDiscoveryLog creates an empty discovery log.
func NewDiscoveryLog() *DiscoveryLog {
	return &DiscoveryLog{surveyed: make(map[world.PlanetID]bool)}
}

// SurveyBody reads a survey off the catalog entry for p.
func SurveyBody(p *world.Planet) Survey {
	s := Survey{
		Body:    p.Name,
		Summary: fmt.Sprintf("%s: %s, %s, %.2f g, %.0f K.", p.Name, p.Type, p.Surface, p.Gravity, p.Temperature),
	}
	s.Minerals = slices.Clone(p.Minerals)
	slices.SortStableFunc(s.Minerals, func(a, b world.MineralDeposit) int {
		return b.Quality - a.Quality
	})
	for _, l := range p.Lifeforms {
		s.Lifeforms = append(s.Lifeforms, l.Name)
	}
	return s
}

// Lines formats the survey for the comms log.
func (s Survey) Lines() []string {
	lines := []string{s.Summary}
	if len(s.Minerals) == 0 {
		lines = append(lines, "No mineral deposits.")
	} else {
		parts := make([]string, len(s.Minerals))
		for i, m := range s.Minerals {
			parts[i] = fmt.Sprintf("%s %d", m.Name, m.Quality)
		}
		lines = append(lines, "Minerals: "+strings.Join(parts, ", ")+".")
	}
	if len(s.Lifeforms) == 0 {
		lines = append(lines, "No lifeforms detected.")
	} else {
		lines = append(lines, "Lifeforms: "+strings.Join(s.Lifeforms, ", ")+".")
	}
	return lines
}

// Record surveys p. It reports false when p was already surveyed.
func (d *DiscoveryLog) Record(p *world.Planet) (Survey, bool) {
	s := SurveyBody(p)
	if d.surveyed[p.ID] {
		return s, false
	}
	d.surveyed[p.ID] = true
	d.Recent = append([]Survey{s}, d.Recent...)
	if len(d.Recent) > maxRecentSurveys {
		d.Recent = d.Recent[:maxRecentSurveys]
	}
	return s, true
}

// Count is the number of bodies surveyed.
func (d *DiscoveryLog) Count() int { return len(d.surveyed) }
