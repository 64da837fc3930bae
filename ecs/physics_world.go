package ecs

import (
	"errors"
	"math"
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bobross/common"
	"github.com/milk9111/bobross/ecs/component"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeTrigger
)

const (
	// groundProbeDepth is how far below the footprint a solid still counts as ground.
	groundProbeDepth = 0.5
	maxSweepStep     = 4.0
	overlapSlop      = 1e-6
)

var (
	ErrNoSpace         = errors.New("physics: no collision space")
	ErrDegenerateSweep = errors.New("physics: degenerate sweep request")
)

// SweepRequest asks the resolver to move a footprint. A nil Desired means no
// movement was requested; ground and trigger contacts are still evaluated.
type SweepRequest struct {
	Entity    Entity
	Footprint component.Footprint
	Position  common.Vec2
	Desired   *common.Vec2
}

// SweepResult is the outcome of one sweep. Contacts lists each touched
// trigger entity at most once, in the order they were first touched.
type SweepResult struct {
	Achieved common.Vec2
	Grounded bool
	Wall     int
	Contacts []Entity
}

// PhysicsWorld owns the Chipmunk space holding merged static level geometry
// and trigger sensors. It resolves kinematic sweeps against both.
type PhysicsWorld struct {
	space    *cp.Space
	triggers map[Entity]*cp.Shape
	solids   []cp.BB
}

// NewPhysicsWorld creates an empty collision space.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &PhysicsWorld{
		space:    space,
		triggers: make(map[Entity]*cp.Shape),
	}
}

// NewPhysicsWorldFromGrid builds static geometry from a row-major tile grid
// whose first row is the top of the level. Non-zero cells in solid are
// merged into as few boxes as possible, and the level is closed on the
// left, right and bottom.
func NewPhysicsWorldFromGrid(width, height int, cells []int, tileSize float64, solid func(int) bool) *PhysicsWorld {
	pw := NewPhysicsWorld()
	if width <= 0 || height <= 0 || len(cells) != width*height {
		return pw
	}
	pw.processLayerTiles(width, height, cells, tileSize, solid)

	worldW := float64(width) * tileSize
	worldH := float64(height) * tileSize
	thickness := tileSize
	for _, bb := range []cp.BB{
		{L: -thickness, B: -thickness, R: 0, T: worldH * 2},
		{L: worldW, B: -thickness, R: worldW + thickness, T: worldH * 2},
		{L: -thickness, B: -thickness, R: worldW + thickness, T: 0},
	} {
		pw.AddSolid(bb)
	}
	return pw
}

func (pw *PhysicsWorld) processLayerTiles(width, height int, cells []int, tileSize float64, solid func(int) bool) {
	isSolid := func(v int) bool {
		if solid == nil {
			return v != 0
		}
		return solid(v)
	}

	processed := make([]bool, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if processed[idx] {
				continue
			}
			if !isSolid(cells[idx]) {
				processed[idx] = true
				continue
			}

			// Greedily grow a rectangle right, then down.
			w := 1
			for x+w < width {
				idx2 := y*width + (x + w)
				if processed[idx2] || !isSolid(cells[idx2]) {
					break
				}
				w++
			}

			h := 1
		heightLoop:
			for y+h < height {
				for xi := x; xi < x+w; xi++ {
					idx2 := (y+h)*width + xi
					if processed[idx2] || !isSolid(cells[idx2]) {
						break heightLoop
					}
				}
				h++
			}

			// rows count down from the top, world Y counts up from the bottom
			pw.AddSolid(cp.BB{
				L: float64(x) * tileSize,
				B: float64(height-y-h) * tileSize,
				R: float64(x+w) * tileSize,
				T: float64(height-y) * tileSize,
			})

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*width+xx] = true
				}
			}
		}
	}
}

// AddSolid adds a static blocking box.
func (pw *PhysicsWorld) AddSolid(bb cp.BB) {
	if pw == nil || pw.space == nil {
		return
	}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeSolid)
	pw.space.AddShape(shape)
	pw.solids = append(pw.solids, bb)
}

// Solids returns the static blocking boxes.
func (pw *PhysicsWorld) Solids() []cp.BB {
	if pw == nil {
		return nil
	}
	return pw.solids
}

// SetTrigger registers or moves the sensor box of a trigger entity.
func (pw *PhysicsWorld) SetTrigger(e Entity, pos common.Vec2, fp component.Footprint) {
	if pw == nil || pw.space == nil || !e.Valid() {
		return
	}
	pw.RemoveTrigger(e)
	shape := cp.NewBox2(pw.space.StaticBody, footprintBB(pos, fp), 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeTrigger)
	shape.UserData = e
	pw.space.AddShape(shape)
	pw.triggers[e] = shape
}

// RemoveTrigger drops the sensor of e. It reports whether one existed.
func (pw *PhysicsWorld) RemoveTrigger(e Entity) bool {
	if pw == nil {
		return false
	}
	shape, ok := pw.triggers[e]
	if !ok {
		return false
	}
	pw.space.RemoveShape(shape)
	delete(pw.triggers, e)
	return true
}

func (pw *PhysicsWorld) HasTrigger(e Entity) bool {
	if pw == nil {
		return false
	}
	_, ok := pw.triggers[e]
	return ok
}

// Triggers returns the registered trigger entities in no particular order.
func (pw *PhysicsWorld) Triggers() []Entity {
	if pw == nil {
		return nil
	}
	out := make([]Entity, 0, len(pw.triggers))
	for e := range pw.triggers {
		out = append(out, e)
	}
	return out
}

// Sweep moves the footprint along the desired displacement, X first then Y,
// in sub-steps no longer than the footprint's half extents. Motion along an
// axis stops flush against the first solid; the other axis still slides.
func (pw *PhysicsWorld) Sweep(req SweepRequest) (SweepResult, error) {
	if pw == nil || pw.space == nil {
		return SweepResult{}, ErrNoSpace
	}
	if !req.Footprint.Valid() || !req.Position.Finite() || (req.Desired != nil && !req.Desired.Finite()) {
		return SweepResult{}, ErrDegenerateSweep
	}

	var res SweepResult
	seen := make(map[Entity]struct{})
	pos := req.Position
	pw.collectTriggers(pos, req.Footprint, seen, &res.Contacts)

	if req.Desired != nil {
		pos, res.Wall = pw.moveAxis(pos, req.Footprint, req.Desired.X, true, seen, &res.Contacts)
		pos, _ = pw.moveAxis(pos, req.Footprint, req.Desired.Y, false, seen, &res.Contacts)
	}

	res.Grounded = pw.grounded(pos, req.Footprint)
	res.Achieved = pos.Sub(req.Position)
	return res, nil
}

func (pw *PhysicsWorld) moveAxis(pos common.Vec2, fp component.Footprint, delta float64, horizontal bool, seen map[Entity]struct{}, contacts *[]Entity) (common.Vec2, int) {
	if common.NearZero(delta) {
		return pos, component.WallNone
	}

	half := fp.HalfHeight
	if horizontal {
		half = fp.HalfWidth
	}
	stepSize := math.Min(half, maxSweepStep)
	steps := int(math.Ceil(math.Abs(delta) / stepSize))
	inc := delta / float64(steps)

	for i := 0; i < steps; i++ {
		next := pos
		if horizontal {
			next.X += inc
		} else {
			next.Y += inc
		}

		blockers := pw.solidsOverlapping(footprintBB(next, fp))
		if len(blockers) == 0 {
			pos = next
			pw.collectTriggers(pos, fp, seen, contacts)
			continue
		}

		wall := component.WallNone
		switch {
		case horizontal && inc > 0:
			edge := math.Inf(1)
			for _, bb := range blockers {
				edge = math.Min(edge, bb.L)
			}
			next.X = math.Max(pos.X, edge-fp.HalfWidth)
			wall = component.WallRight
		case horizontal:
			edge := math.Inf(-1)
			for _, bb := range blockers {
				edge = math.Max(edge, bb.R)
			}
			next.X = math.Min(pos.X, edge+fp.HalfWidth)
			wall = component.WallLeft
		case inc > 0:
			edge := math.Inf(1)
			for _, bb := range blockers {
				edge = math.Min(edge, bb.B)
			}
			next.Y = math.Max(pos.Y, edge-fp.HalfHeight)
		default:
			edge := math.Inf(-1)
			for _, bb := range blockers {
				edge = math.Max(edge, bb.T)
			}
			next.Y = math.Min(pos.Y, edge+fp.HalfHeight)
		}
		pos = next
		pw.collectTriggers(pos, fp, seen, contacts)
		return pos, wall
	}
	return pos, component.WallNone
}

// Embedded reports whether a footprint at pos overlaps any solid.
func (pw *PhysicsWorld) Embedded(pos common.Vec2, fp component.Footprint) bool {
	if pw == nil || pw.space == nil {
		return false
	}
	return len(pw.solidsOverlapping(footprintBB(pos, fp))) > 0
}

func (pw *PhysicsWorld) grounded(pos common.Vec2, fp component.Footprint) bool {
	bottom := pos.Y - fp.HalfHeight
	probe := cp.BB{L: pos.X - fp.HalfWidth, B: bottom - groundProbeDepth, R: pos.X + fp.HalfWidth, T: bottom}
	return len(pw.solidsOverlapping(probe)) > 0
}

// solidsOverlapping returns solid boxes whose interiors overlap bb. Shapes
// that only share an edge with bb do not block.
func (pw *PhysicsWorld) solidsOverlapping(bb cp.BB) []cp.BB {
	var out []cp.BB
	pw.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if shape.Sensor() {
			return
		}
		other := shape.BB()
		if overlapsStrict(bb, other) {
			out = append(out, other)
		}
	}, nil)
	return out
}

func (pw *PhysicsWorld) collectTriggers(pos common.Vec2, fp component.Footprint, seen map[Entity]struct{}, contacts *[]Entity) {
	if len(pw.triggers) == 0 {
		return
	}
	var found []Entity
	pw.space.BBQuery(footprintBB(pos, fp), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if !shape.Sensor() {
			return
		}
		e, ok := shape.UserData.(Entity)
		if !ok {
			return
		}
		if _, dup := seen[e]; dup {
			return
		}
		seen[e] = struct{}{}
		found = append(found, e)
	}, nil)
	// the spatial index has no stable order; keep contacts deterministic
	slices.Sort(found)
	*contacts = append(*contacts, found...)
}

func footprintBB(pos common.Vec2, fp component.Footprint) cp.BB {
	return cp.BB{
		L: pos.X - fp.HalfWidth,
		B: pos.Y - fp.HalfHeight,
		R: pos.X + fp.HalfWidth,
		T: pos.Y + fp.HalfHeight,
	}
}

func overlapsStrict(a, b cp.BB) bool {
	return a.L < b.R-overlapSlop && a.R > b.L+overlapSlop &&
		a.B < b.T-overlapSlop && a.T > b.B+overlapSlop
}
