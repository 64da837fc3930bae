// Package session runs the per-level simulation: it owns the world and the
// ordered systems, and advances them one fixed tick at a time.
package session

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"
	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
	"github.com/milk9111/bobross/ecs/entity"
	"github.com/milk9111/bobross/ecs/system"
	"github.com/milk9111/bobross/levels"
)

var ErrInvalidDelta = errors.New("session: tick duration must be finite and non-negative")

// Options are the collaborators a session drives its systems with.
type Options struct {
	Resolver system.Resolver
	// Triggers may be nil when the resolver has no trigger index.
	Triggers system.TriggerIndex
	Input    system.InputSource
}

type Session struct {
	ID        string
	world     *ecs.World
	scheduler *ecs.Scheduler
	ticks     uint64
}

// New wires the tick pipeline around an already populated world. The world
// must hold exactly one player.
func New(world *ecs.World, opts Options) (*Session, error) {
	if world == nil {
		return nil, fmt.Errorf("session: world is nil")
	}
	if _, err := system.Actor(world); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s := &Session{
		ID:    uuid.NewString(),
		world: world,
	}
	s.scheduler = ecs.NewScheduler(
		system.NewInputSystem(opts.Input),
		system.NewDirectionSystem(),
		system.NewMotionSystem(),
		system.NewVelocitySystem(),
	)
	if opts.Triggers != nil {
		s.scheduler.Add(system.NewTriggerSyncSystem(opts.Triggers))
	}
	s.scheduler.Add(system.NewCollisionSystem(opts.Resolver))
	s.scheduler.Add(system.NewCoinCollectSystem())
	s.scheduler.Add(system.NewFacingSystem())
	s.scheduler.Add(system.NewCameraSystem())
	return s, nil
}

// NewFromLevel builds a fresh world from lvl and a session resolving
// against the level's geometry.
func NewFromLevel(lvl *levels.Level, input system.InputSource) (*Session, error) {
	world := ecs.NewWorld()
	physics, err := entity.LoadLevelToWorld(world, lvl)
	if err != nil {
		return nil, err
	}
	return New(world, Options{Resolver: physics, Triggers: physics, Input: input})
}

// Step advances the simulation by dt seconds. A missing or duplicated
// player is fatal and returned as-is.
func (s *Session) Step(dt float64) error {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDelta, dt)
	}
	if _, err := system.Actor(s.world); err != nil {
		return fmt.Errorf("session %s: %w", s.ID, err)
	}

	s.world.SetDelta(dt)
	err := s.scheduler.Update(s.world)
	s.flushEvents()
	if err != nil {
		return fmt.Errorf("session %s: tick %d: %w", s.ID, s.ticks, err)
	}
	s.ticks++
	return nil
}

func (s *Session) flushEvents() {
	for _, evt := range s.world.Events().Drain() {
		if evt.Type != ecs.EventCoinCollected {
			continue
		}
		if c, ok := evt.Data.(ecs.CoinCollectedEvent); ok {
			log.Printf("session %s: collected coin (total %d)", s.ID, c.Total)
		}
	}
}

func (s *Session) World() *ecs.World {
	return s.world
}

func (s *Session) Ticks() uint64 {
	return s.ticks
}

func (s *Session) Actor() (ecs.Entity, error) {
	return system.Actor(s.world)
}

// Coins is the player's collected coin count, or zero without a player.
func (s *Session) Coins() uint32 {
	actor, err := s.Actor()
	if err != nil {
		return 0
	}
	if c, ok := ecs.Get(s.world, actor, component.CoinCollectorComponent.Kind()); ok {
		return c.Count
	}
	return 0
}

// ReloadTuning re-applies the player prefab's movement tuning between ticks.
func (s *Session) ReloadTuning() error {
	actor, err := s.Actor()
	if err != nil {
		return err
	}
	return entity.ReloadPlayerTuning(s.world, actor)
}
