package system

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
	"golang.org/x/image/colornames"
)

var (
	tileColor      = colornames.Saddlebrown
	footprintColor = color.RGBA{R: 0, G: 255, B: 0, A: 200}
	triggerColor   = color.RGBA{R: 255, G: 215, B: 0, A: 200}
	markerColor    = colornames.White
)

// view maps world space (Y up) to screen pixels (Y down) around a camera.
type view struct {
	camX, camY float64
	zoom       float64
	halfW      float64
	halfH      float64
}

func (v view) point(x, y float64) (float64, float64) {
	return (x-v.camX)*v.zoom + v.halfW, v.halfH - (y-v.camY)*v.zoom
}

// rect converts a world box given by its lower-left corner and size to a
// screen rectangle given by its top-left corner and size.
func (v view) rect(left, bottom, w, h float64) (x, y, sw, sh float32) {
	sx, sy := v.point(left, bottom+h)
	return float32(sx), float32(sy), float32(w * v.zoom), float32(h * v.zoom)
}

type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw renders tiles and sprites relative to the camera. With debug set,
// footprints and trigger boxes are outlined on top.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image, debug bool) {
	if r == nil || w == nil || screen == nil {
		return
	}

	v := r.view(w, screen)

	ecs.ForEach2(w, component.StaticTileComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, tile *component.StaticTile, t *component.Transform) {
		x, y, sw, sh := v.rect(t.X, t.Y, tile.Size, tile.Size)
		vector.FillRect(screen, x, y, sw, sh, tileColor, false)
	})

	type drawable struct {
		e      ecs.Entity
		layer  int
		t      *component.Transform
		sprite *component.Sprite
	}
	var items []drawable
	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, s *component.Sprite, t *component.Transform) {
		layer := 0
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer = l.Index
		}
		items = append(items, drawable{e: e, layer: layer, t: t, sprite: s})
	})
	slices.SortStableFunc(items, func(a, b drawable) int {
		if c := cmp.Compare(a.layer, b.layer); c != 0 {
			return c
		}
		return cmp.Compare(a.e, b.e)
	})

	for _, it := range items {
		s := it.sprite
		x, y, sw, sh := v.rect(it.t.X-s.Width/2, it.t.Y-s.Height/2, s.Width, s.Height)
		clr := s.Color
		if clr == nil {
			clr = colornames.Magenta
		}
		vector.FillRect(screen, x, y, sw, sh, clr, false)

		if !ecs.Has(w, it.e, component.DirectionComponent.Kind()) {
			continue
		}
		// Facing marker on the side the sprite looks toward.
		markerW := sw / 4
		markerX := x
		if s.FlipX {
			markerX = x + sw - markerW
		}
		vector.FillRect(screen, markerX, y+sh/4, markerW, sh/4, markerColor, false)
	}

	if !debug {
		return
	}

	ecs.ForEach2(w, component.KinematicControllerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, ctrl *component.KinematicController, t *component.Transform) {
		fp := ctrl.Footprint
		x, y, sw, sh := v.rect(t.X-fp.HalfWidth, t.Y-fp.HalfHeight, fp.HalfWidth*2, fp.HalfHeight*2)
		vector.StrokeRect(screen, x, y, sw, sh, 1.0, footprintColor, false)
	})
	ecs.ForEach2(w, component.CollectibleComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.Collectible, t *component.Transform) {
		fp := c.Footprint
		x, y, sw, sh := v.rect(t.X-fp.HalfWidth, t.Y-fp.HalfHeight, fp.HalfWidth*2, fp.HalfHeight*2)
		vector.StrokeRect(screen, x, y, sw, sh, 1.0, triggerColor, false)
	})
}

func (r *RenderSystem) view(w *ecs.World, screen *ebiten.Image) view {
	b := screen.Bounds()
	v := view{zoom: 1, halfW: float64(b.Dx()) / 2, halfH: float64(b.Dy()) / 2}

	if !r.camEntity.Valid() || !ecs.IsAlive(w, r.camEntity) {
		if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	if camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		v.camX = camTransform.X
		v.camY = camTransform.Y
	}
	if cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok && cam.Zoom > 0 {
		v.zoom = cam.Zoom
	}
	return v
}
