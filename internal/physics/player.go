package physics

// Thrust is one thruster's contribution to the four thrust axes.
type Thrust struct {
	Forward float64
	Retro   float64
	Side    float64
	Angular float64
}

// PoseRecorder receives the player's pose after every step.
type PoseRecorder interface {
	RecordPose(Pose)
}

// PlayerEngine sums a thruster loadout and reports each new pose.
type PlayerEngine struct {
	Engine
	sink PoseRecorder
}

// NewPlayerEngine creates an engine for loadout. sink may be nil.
func NewPlayerEngine(loadout []Thrust, damp, angDamp float64, sink PoseRecorder) *PlayerEngine {
	e := &PlayerEngine{sink: sink}
	e.DampFactor = damp
	e.AngDampFactor = angDamp
	e.SetLoadout(loadout)
	return e
}

// SetLoadout replaces the thrusters and recomputes thrust totals.
func (e *PlayerEngine) SetLoadout(loadout []Thrust) {
	var sum Thrust
	for _, t := range loadout {
		sum.Forward += t.Forward
		sum.Retro += t.Retro
		sum.Side += t.Side
		sum.Angular += t.Angular
	}
	e.ForwardThrust = sum.Forward
	e.RetroThrust = sum.Retro
	e.SideThrust = sum.Side
	e.AngThrust = sum.Angular
	e.setDamping()
}

// SetDampFactors changes the damping factors.
func (e *PlayerEngine) SetDampFactors(damp, angDamp float64) {
	e.DampFactor = damp
	e.AngDampFactor = angDamp
	e.setDamping()
}

// Step implements Driver.
func (e *PlayerEngine) Step(s *Ship, c Control, dt float64) {
	e.Engine.Step(s, c, dt)
	if e.sink != nil {
		e.sink.RecordPose(s.Pose)
	}
}

// NPC thrust profile as fractions of a ship's rated thrust.
const (
	NPCForwardShare = 0.8
	NPCRetroShare   = 0.1
	NPCSideShare    = 0.1
	NPCDampFactor   = 0.05
)

// NewNPCEngine builds the fixed engine of a race's ship from its rated
// thrust and angular thrust.
func NewNPCEngine(thrust, angThrust float64) *Engine {
	return NewEngine(NPCForwardShare*thrust, NPCRetroShare*thrust, NPCSideShare*thrust, angThrust, NPCDampFactor, NPCDampFactor)
}
