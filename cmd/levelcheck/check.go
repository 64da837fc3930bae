package main

import (
	"fmt"
	"strings"

	"github.com/milk9111/bobross/common"
	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
	"github.com/milk9111/bobross/ecs/entity"
	"github.com/milk9111/bobross/ecs/system"
	"github.com/milk9111/bobross/levels"
	"github.com/milk9111/bobross/session"
)

// settleTicks is how long the player gets to fall onto ground from its start.
const settleTicks = 120

type idleInput struct{}

func (idleInput) Pressed(system.Action) bool { return false }

// checkLevel builds the level and reports spawns embedded in walls and a
// player that never comes to rest on ground.
func checkLevel(lvl *levels.Level) ([]string, error) {
	w := ecs.NewWorld()
	pw, err := entity.LoadLevelToWorld(w, lvl)
	if err != nil {
		return nil, err
	}

	var problems []string
	ecs.ForEach2(w, component.KinematicControllerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, ctrl *component.KinematicController, t *component.Transform) {
		if pw.Embedded(common.Vec2{X: t.X, Y: t.Y}, ctrl.Footprint) {
			problems = append(problems, fmt.Sprintf("player start (%.0f, %.0f) overlaps a wall", t.X, t.Y))
		}
	})
	ecs.ForEach2(w, component.CollectibleComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.Collectible, t *component.Transform) {
		if pw.Embedded(common.Vec2{X: t.X, Y: t.Y}, c.Footprint) {
			problems = append(problems, fmt.Sprintf("%s at (%.0f, %.0f) overlaps a wall", c.Kind, t.X, t.Y))
		}
	})
	if len(problems) > 0 {
		return problems, nil
	}

	sess, err := session.New(w, session.Options{Resolver: pw, Triggers: pw, Input: idleInput{}})
	if err != nil {
		return nil, err
	}
	for i := 0; i < settleTicks; i++ {
		if err := sess.Step(1.0 / 60.0); err != nil {
			return nil, err
		}
	}
	actor, err := sess.Actor()
	if err != nil {
		return nil, err
	}
	if out, ok := ecs.Get(w, actor, component.ControllerOutputComponent.Kind()); !ok || !out.Grounded {
		problems = append(problems, fmt.Sprintf("player does not land within %d ticks", settleTicks))
	}
	return problems, nil
}

var spawnGlyphs = map[levels.SpawnKind]byte{
	levels.SpawnPlayerStart: 'P',
	levels.SpawnCoin:        'c',
	levels.SpawnHeart:       'h',
}

// levelOverview draws walls as '#' and spawns by glyph, top row first.
func levelOverview(lvl *levels.Level) string {
	rows := make([][]byte, lvl.Height)
	cells := lvl.SolidCells()
	for y := range rows {
		rows[y] = make([]byte, lvl.Width)
		for x := range rows[y] {
			rows[y][x] = '.'
			if cells[y*lvl.Width+x] != 0 {
				rows[y][x] = '#'
			}
		}
	}

	spawns, _ := lvl.Spawns()
	tile := lvl.Tile()
	for _, s := range spawns {
		x := int(s.X / tile)
		y := lvl.Height - 1 - int(s.Y/tile)
		if x < 0 || x >= lvl.Width || y < 0 || y >= lvl.Height {
			continue
		}
		rows[y][x] = spawnGlyphs[s.Kind]
	}

	var b strings.Builder
	for _, row := range rows {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
