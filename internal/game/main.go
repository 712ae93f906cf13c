package game

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl64"

	"snake3d/internal/anim"
)

// Effects wires sound, particles and camera reactions to session events.
// Frontends without a particle system or camera pass nil.
func Effects(bus *EventBus, particles *ParticleSystem, cam *Camera) {
	at := func(c anim.GridPoint) mgl64.Vec3 { return c.Vec(SegmentHeight) }

	bus.Subscribe(EventAteApple, func(e Event) {
		PlaySound(SoundEat)
		if particles != nil {
			particles.SpawnBurst(at(e.Cell), Palette.Apple, EatBurstParticles)
		}
		if cam != nil {
			cam.StartEase()
		}
	})
	bus.Subscribe(EventBonusTaken, func(e Event) {
		PlaySound(SoundBonus)
		if particles != nil {
			particles.SpawnBurst(at(e.Cell), Palette.Bonus, EatBurstParticles)
		}
	})
	bus.Subscribe(EventBonusExpired, func(Event) { PlaySound(SoundExpire) })
	bus.Subscribe(EventTurned, func(Event) { PlaySound(SoundTurn) })
	bus.Subscribe(EventLevelComplete, func(Event) { PlaySound(SoundLevelUp) })
	bus.Subscribe(EventDied, func(e Event) {
		PlaySound(SoundGameOver)
		if particles != nil {
			particles.SpawnBurst(at(e.Cell), Palette.Blood, DeathBurstParticle)
		}
		if cam != nil {
			cam.AddShake(0.35, 0.5)
		}
	})
}

func RunDesktop(opts Options) {
	runtime.LockOSThread()
	opts = opts.WithDefaults()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}
	SetMuted(opts.Mute)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.MULTISAMPLE)
	sky := Palette.Sky.Vec()
	gl.ClearColor(sky[0], sky[1], sky[2], 1.0)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	bus := NewEventBus()
	session := NewGameSession(opts, bus)
	particles := NewParticleSystem(MaxParticles, opts.Seed^0xBEAD)
	cam := NewCamera(StartLevelLength)
	Effects(bus, particles, cam)
	input := NewInput()

	var cubes []CubeDraw
	var glowBuf, normBuf []float32
	var title string

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDelta.Seconds() {
			dt = MaxFrameDelta.Seconds()
		}
		frame := time.Duration(dt * float64(time.Second))

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		// State transitions.
		switch session.State {
		case StateMenu, StateLevelComplete, StateLevelFailed:
			if input.JustPressed(window, glfw.KeySpace) {
				PlaySound(SoundMenuSelect)
				particles.Clear()
				if err := session.Advance(); err != nil {
					panic(err)
				}
			}
		case StatePlaying, StatePaused:
			if input.JustPressed(window, glfw.KeyP) {
				session.TogglePause()
			}
			for _, d := range SteerInput(window, input) {
				if err := session.Steer(d); err != nil {
					log.Printf("steer: %v", err)
				}
			}
		}

		if _, err := session.Update(frame); err != nil {
			panic(err)
		}
		particles.Update(dt)
		cam.UpdateShake(dt, opts.Seed^uint64(now*1000))
		if session.Animator != nil {
			cam.Follow(session.Animator.Segments()[0].Position, session.Animator.Len())
		}

		rend.BeginFrame(cam, fbW, fbH)
		cubes = SceneCubes(session, now, cubes)
		for _, c := range cubes {
			rend.DrawCube(c.Model, c.Col, c.Alpha)
		}
		glowBuf, normBuf = particles.ParticleRenderData(glowBuf, normBuf)
		rend.DrawSprites(normBuf, false)
		rend.DrawSprites(glowBuf, true)

		if t := HUDText(session); t != title {
			title = t
			window.SetTitle(title)
		}
		window.SwapBuffers()
	}
}
