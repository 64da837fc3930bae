package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
	"github.com/milk9111/bobross/ecs/system"
	"github.com/milk9111/bobross/levels"
	"github.com/milk9111/bobross/prefabs"
	"github.com/milk9111/bobross/session"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 1024
)

type Game struct {
	frames int
	debug  bool

	session *session.Session
	render  *system.RenderSystem
	watcher *prefabs.Watcher
}

func NewGame(levelName string, debug, watch bool) (*Game, error) {
	lvl, err := levels.LoadLevelFromFS(levelName)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelName, err)
	}

	sess, err := session.NewFromLevel(lvl, system.EbitenInput{})
	if err != nil {
		return nil, err
	}
	log.Printf("session %s: started level %s", sess.ID, levelName)

	g := &Game{
		debug:   debug,
		session: sess,
		render:  system.NewRenderSystem(),
	}

	if watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.applyPrefabChanges()

	g.frames++
	return g.session.Step(1 / float64(ebiten.TPS()))
}

// applyPrefabChanges drains pending watcher events without blocking.
func (g *Game) applyPrefabChanges() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if prefabs.Name(path) != "player.yaml" {
				continue
			}
			if err := g.session.ReloadTuning(); err != nil {
				log.Printf("reload %s: %v", path, err)
				continue
			}
			log.Printf("reloaded player tuning from %s", path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Skyblue)
	g.render.Draw(g.session.World(), screen, g.debug)

	hud := fmt.Sprintf("Coins: %d", g.session.Coins())
	if g.debug {
		hud += "\n" + g.inspect()
	}
	ebitenutil.DebugPrint(screen, hud)
}

// inspect summarizes the player for the debug overlay.
func (g *Game) inspect() string {
	w := g.session.World()
	s := fmt.Sprintf("Frames: %d    FPS: %.2f    Entities: %d", g.frames, ebiten.ActualFPS(), len(ecs.Entities(w)))

	actor, err := g.session.Actor()
	if err != nil {
		return s
	}
	if t, ok := ecs.Get(w, actor, component.TransformComponent.Kind()); ok {
		s += fmt.Sprintf("\nPos: (%.2f, %.2f)", t.X, t.Y)
	}
	if v, ok := ecs.Get(w, actor, component.VelocityComponent.Kind()); ok {
		s += fmt.Sprintf("    Vel: (%.3f, %.3f)", v.X, v.Y)
	}
	if d, ok := ecs.Get(w, actor, component.DirectionComponent.Kind()); ok {
		s += fmt.Sprintf("\nDirection: %v", *d)
	}
	if out, ok := ecs.Get(w, actor, component.ControllerOutputComponent.Kind()); ok {
		s += fmt.Sprintf("    Grounded: %v    BlockedX: %v", out.Grounded, out.BlockedX)
	}
	return s
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.watcher = nil
	return err
}
