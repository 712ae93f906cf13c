package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type ParticleKind uint8

const (
	ParticleDebris ParticleKind = iota
	ParticleGlow
)

type Particle struct {
	Pos mgl64.Vec3
	Vel mgl64.Vec3

	Size    float64
	Life    float64
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	seed   uint64
	spawns uint64
	ovrIdx int // circular overwrite index when full
}

const particleGravity = 9.0

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	if seed == 0 {
		seed = 1
	}
	return &ParticleSystem{
		Max:  maxParticles,
		P:    make([]Particle, 0, maxParticles),
		seed: seed,
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// SpawnBurst throws count debris particles and a few glows up from at.
func (ps *ParticleSystem) SpawnBurst(at mgl64.Vec3, col RGB, count int) {
	ps.spawns++
	r := NewRand(hash2D(ps.seed^ps.spawns, int(at.X()*16), int(at.Y()*16)))
	for i := 0; i < count; i++ {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(1.5, 4.5)
		ps.Add(Particle{
			Pos:     at,
			Vel:     mgl64.Vec3{math.Cos(ang) * spd, math.Sin(ang) * spd, r.RangeF(2, 6)},
			Size:    r.RangeF(0.08, 0.18),
			MaxLife: r.RangeF(0.4, 0.9),
			Col:     col.Add(r.Range(-20, 20), r.Range(-20, 20), r.Range(-20, 20)),
			Kind:    ParticleDebris,
		})
	}
	for i := 0; i < count/6; i++ {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(0.5, 1.5)
		ps.Add(Particle{
			Pos:     at,
			Vel:     mgl64.Vec3{math.Cos(ang) * spd, math.Sin(ang) * spd, r.RangeF(0.5, 1.5)},
			Size:    r.RangeF(0.3, 0.5),
			MaxLife: r.RangeF(0.2, 0.4),
			Col:     Palette.Spark,
			Kind:    ParticleGlow,
		})
	}
}

// Update integrates motion, bounces debris on the field and drops
// expired particles.
func (ps *ParticleSystem) Update(dt float64) {
	alive := ps.P[:0]
	for _, p := range ps.P {
		p.Life += dt
		if p.Life >= p.MaxLife {
			continue
		}
		if p.Kind == ParticleDebris {
			p.Vel[2] -= particleGravity * dt
		}
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))
		if p.Pos[2] < 0 {
			p.Pos[2] = 0
			p.Vel[2] = -p.Vel[2] * 0.35
			p.Vel[0] *= 0.6
			p.Vel[1] *= 0.6
		}
		alive = append(alive, p)
	}
	ps.P = alive
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

// ParticleRenderData splits particles into glow (additive) and normal (alpha blend) buffers.
// Format: [x, y, z, size, r, g, b, a] * N.
func (ps *ParticleSystem) ParticleRenderData(glowBuf, normBuf []float32) ([]float32, []float32) {
	glowBuf = glowBuf[:0]
	normBuf = normBuf[:0]

	for _, p := range ps.P {
		t := clampF(p.Life/p.MaxLife, 0, 1)
		a := float32(1.0 - t)
		if a <= 0 {
			continue
		}
		c := p.Col.Vec()
		x, y, z := float32(p.Pos[0]), float32(p.Pos[1]), float32(p.Pos[2])
		size := float32(p.Size)
		if p.Kind == ParticleGlow {
			// Additive: pre-multiply color by alpha.
			glowBuf = append(glowBuf, x, y, z, size*(1+float32(t)), c[0]*a, c[1]*a, c[2]*a, a)
			continue
		}
		normBuf = append(normBuf, x, y, z, size, c[0], c[1], c[2], a)
	}
	return glowBuf, normBuf
}
