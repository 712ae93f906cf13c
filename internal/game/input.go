package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"snake3d/internal/anim"
)

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// steerKeys maps arrows and WASD to grid directions. +Y is up the screen.
var steerKeys = []struct {
	key glfw.Key
	dir anim.Dir
}{
	{glfw.KeyUp, anim.DirUp},
	{glfw.KeyW, anim.DirUp},
	{glfw.KeyDown, anim.DirDown},
	{glfw.KeyS, anim.DirDown},
	{glfw.KeyLeft, anim.DirLeft},
	{glfw.KeyA, anim.DirLeft},
	{glfw.KeyRight, anim.DirRight},
	{glfw.KeyD, anim.DirRight},
}

// DirForKey returns the steering direction bound to key.
func DirForKey(key glfw.Key) (anim.Dir, bool) {
	for _, k := range steerKeys {
		if k.key == key {
			return k.dir, true
		}
	}
	return anim.DirNone, false
}

// SteerInput collects directions for keys pressed this frame, in binding order.
func SteerInput(window *glfw.Window, in *Input) []anim.Dir {
	var dirs []anim.Dir
	for _, k := range steerKeys {
		if in.JustPressed(window, k.key) {
			dirs = append(dirs, k.dir)
		}
	}
	return dirs
}
