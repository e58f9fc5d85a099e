package main

import (
	"github.com/lixenwraith/vi-automap/input"
	"github.com/lixenwraith/vi-automap/level"
	"github.com/lixenwraith/vi-automap/parameter"
	"github.com/lixenwraith/vi-automap/vmath"
)

// player is the simulated marker the overview follows
type player struct {
	pos     vmath.Point
	heading vmath.Angle
	level   *level.Level

	autoWalk bool
	route    []vmath.Point
	waypoint int
}

func newPlayer(lvl *level.Level) *player {
	return &player{pos: lvl.Spawn, level: lvl, route: lvl.Route()}
}

// apply handles player intents, returning false for intents it does not own
func (p *player) apply(in input.Intent) bool {
	turn := vmath.AngleFromDegrees(parameter.PlayerTurnDegrees)
	for range max(in.Count, 1) {
		switch in.Type {
		case input.IntentMoveForward:
			p.step(parameter.PlayerStep)
		case input.IntentMoveBack:
			p.step(-parameter.PlayerStep)
		case input.IntentTurnLeft:
			p.heading -= turn
		case input.IntentTurnRight:
			p.heading += turn
		case input.IntentToggleAutoWalk:
			p.autoWalk = !p.autoWalk
			if p.autoWalk {
				p.joinRoute()
			}
			return true
		default:
			return false
		}
	}
	// Manual control cancels the walk
	p.autoWalk = false
	return true
}

// step moves along the heading unless the target lies inside a wall
func (p *player) step(dist int64) {
	dx, dy := vmath.RotateVector(dist, 0, p.heading)
	next := p.pos.Add(vmath.Vector{X: dx, Y: dy})
	if p.level.Walkable(next) {
		p.pos = next
	}
}

// joinRoute jumps to the nearest route point so the walk never cuts through walls
func (p *player) joinRoute() {
	best, bestDist := 0, int64(-1)
	for i, r := range p.route {
		d := r.Sub(p.pos)
		dist := vmath.Abs64(d.X) + vmath.Abs64(d.Y)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if bestDist >= 0 {
		p.pos = p.route[best]
		p.waypoint = best
	}
}

// tick advances the auto walk one step along the route, bouncing between spawn and exit
func (p *player) tick() {
	if !p.autoWalk || len(p.route) < 2 {
		return
	}

	target := p.route[p.waypoint]
	if p.pos == target {
		p.waypoint++
		if p.waypoint == len(p.route) {
			for i, j := 0, len(p.route)-1; i < j; i, j = i+1, j-1 {
				p.route[i], p.route[j] = p.route[j], p.route[i]
			}
			p.waypoint = 1
		}
		target = p.route[p.waypoint]
	}

	d := target.Sub(p.pos)
	switch {
	case d.X > 0:
		p.heading = 0
		p.pos.X += min(d.X, parameter.PlayerStep)
	case d.X < 0:
		p.heading = vmath.Ang180
		p.pos.X += max(d.X, -parameter.PlayerStep)
	case d.Y > 0:
		p.heading = vmath.Ang90
		p.pos.Y += min(d.Y, parameter.PlayerStep)
	case d.Y < 0:
		p.heading = vmath.Ang270
		p.pos.Y += max(d.Y, -parameter.PlayerStep)
	}
}
