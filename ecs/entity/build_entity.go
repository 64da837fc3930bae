package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/bobross/ecs"
	"github.com/milk9111/bobross/ecs/component"
	"github.com/milk9111/bobross/prefabs"
	"golang.org/x/image/colornames"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":           addPlayerTag,
	"camera_tag":           addCameraTag,
	"player":               addPlayer,
	"input":                addInput,
	"transform":            addTransform,
	"velocity":             addVelocity,
	"direction":            addDirection,
	"kinematic_controller": addKinematicController,
	"controller_output":    addControllerOutput,
	"coin_collector":       addCoinCollector,
	"collectible":          addCollectible,
	"sprite":               addSprite,
	"render_layer":         addRenderLayer,
	"camera":               addCamera,
}

var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"player",
	"input",
	"transform",
	"velocity",
	"direction",
	"kinematic_controller",
	"controller_output",
	"coin_collector",
	"collectible",
	"sprite",
	"render_layer",
	"camera",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{}
	}
	t.X = x
	t.Y = y
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	if spec.TerminalVelocity > 0 {
		return fmt.Errorf("%s: terminal_velocity must be negative, got %v", ctx.PrefabPath, spec.TerminalVelocity)
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), playerFromSpec(spec))
}

func playerFromSpec(spec playerSpec) *component.Player {
	return &component.Player{
		RunSpeed:         spec.RunSpeed,
		JumpImpulse:      spec.JumpImpulse,
		Gravity:          spec.Gravity,
		TerminalVelocity: spec.TerminalVelocity,
	}
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y})
}

func addVelocity(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.VelocityComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode velocity spec: %w", err)
	}
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: spec.X, Y: spec.Y})
}

func addDirection(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.DirectionComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode direction spec: %w", err)
	}
	dir := component.FaceRight
	if spec.Initial != "" {
		var ok bool
		if dir, ok = component.ParseDirection(spec.Initial); !ok {
			return fmt.Errorf("unknown direction %q", spec.Initial)
		}
	}
	return ecs.Add(w, e, component.DirectionComponent.Kind(), &dir)
}

func footprintFromSpec(spec prefabs.FootprintSpec) (component.Footprint, error) {
	fp := component.Footprint{HalfWidth: spec.Width / 2, HalfHeight: spec.Height / 2}
	if !fp.Valid() {
		return fp, fmt.Errorf("footprint must have positive size, got %vx%v", spec.Width, spec.Height)
	}
	return fp, nil
}

func addKinematicController(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.KinematicControllerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode kinematic_controller spec: %w", err)
	}
	fp, err := footprintFromSpec(spec.Footprint)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.KinematicControllerComponent.Kind(), &component.KinematicController{Footprint: fp})
}

func addControllerOutput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ControllerOutputComponent.Kind(), &component.ControllerOutput{})
}

func addCoinCollector(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CoinCollectorComponent.Kind(), &component.CoinCollector{})
}

func addCollectible(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CollectibleComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collectible spec: %w", err)
	}
	kind := component.CollectibleKind(spec.Kind)
	switch kind {
	case component.CollectibleCoin, component.CollectibleHeart:
	default:
		return fmt.Errorf("%s: unknown collectible kind %q", ctx.PrefabPath, spec.Kind)
	}
	fp, err := footprintFromSpec(spec.Footprint)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.CollectibleComponent.Kind(), &component.Collectible{Kind: kind, Footprint: fp})
}

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.SpriteComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	sprite := &component.Sprite{Width: spec.Width, Height: spec.Height, Color: colornames.Magenta}
	if spec.Color != nil && spec.Color.Color != nil {
		sprite.Color = spec.Color.Color
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), sprite)
}

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.RenderLayerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render_layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CameraComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{Zoom: zoom, OffsetY: spec.OffsetY})
}
