package engine

import (
	"math"
	"math/rand/v2"

	"github.com/fooddonglanh/snake-game/constants"
	"github.com/fooddonglanh/snake-game/core"
)

// Particle is a visual-only spark in surface pixel space
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 at spawn, removed at <= 0
	Decay  float64 // Life lost per frame
	Size   float64 // Radius at full life
	Color  core.RGB
}

// ParticleSystem owns live particles, stepped once per display refresh
type ParticleSystem struct {
	rng       *rand.Rand
	palette   []core.RGB
	particles []Particle

	BurstCount int
	Drag       float64
}

// NewParticleSystem creates a system with the default palette and tuning
func NewParticleSystem(rng *rand.Rand) *ParticleSystem {
	palette := make([]core.RGB, len(constants.ParticlePalette))
	for i, hex := range constants.ParticlePalette {
		palette[i] = core.MustHex(hex)
	}
	return &ParticleSystem{
		rng:        rng,
		palette:    palette,
		particles:  make([]Particle, 0, constants.ParticleBurstCount*4),
		BurstCount: constants.ParticleBurstCount,
		Drag:       constants.ParticleDrag,
	}
}

// Burst emits BurstCount particles from (x, y), evenly spaced angles plus jitter
func (ps *ParticleSystem) Burst(x, y float64) {
	step := 2 * math.Pi / float64(ps.BurstCount)
	for i := 0; i < ps.BurstCount; i++ {
		angle := step*float64(i) + (ps.rng.Float64()*2-1)*constants.ParticleAngleJitter
		speed := constants.ParticleMinSpeed + ps.rng.Float64()*constants.ParticleSpeedRange
		ps.particles = append(ps.particles, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  1,
			Decay: constants.ParticleMinDecay + ps.rng.Float64()*constants.ParticleDecayRange,
			Size:  constants.ParticleMinSize + ps.rng.Float64()*constants.ParticleSizeRange,
			Color: ps.palette[ps.rng.IntN(len(ps.palette))],
		})
	}
}

// Update advances one frame: move, damp, decay, purge dead in place
func (ps *ParticleSystem) Update() {
	live := ps.particles[:0]
	for _, p := range ps.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= ps.Drag
		p.VY *= ps.Drag
		p.Life -= p.Decay
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	clear(ps.particles[len(live):])
	ps.particles = live
}

// Len returns the live particle count
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Particles returns the live set, valid until the next Update or Burst
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Clear drops all particles
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}
