package constants

// Particle burst on food eaten
const (
	// ParticleBurstCount is the number of particles per burst
	ParticleBurstCount = 14

	// ParticleAngleJitter is the max angular offset (radians) around the even spacing
	ParticleAngleJitter = 0.3

	// ParticleMinSpeed/ParticleSpeedRange in pixels per frame
	ParticleMinSpeed   = 1.5
	ParticleSpeedRange = 3.0

	// ParticleMinDecay/ParticleDecayRange in life per frame
	ParticleMinDecay   = 0.02
	ParticleDecayRange = 0.025

	// ParticleMinSize/ParticleSizeRange in pixels
	ParticleMinSize   = 2.5
	ParticleSizeRange = 3.0

	// ParticleDrag is the per-frame velocity damping factor
	ParticleDrag = 0.96

	// ParticleGlowBlur is the glow radius at full life
	ParticleGlowBlur = 8.0
)

// ParticlePalette is the burst color set
var ParticlePalette = []string{
	"#e879f9",
	"#d946ef",
	"#22d3ee",
	"#f0abfc",
	"#a78bfa",
	"#fbbf24",
}
