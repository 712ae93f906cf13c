package game

import "github.com/go-gl/mathgl/mgl32"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	clamp8 := func(v int) uint8 {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return RGB{R: clamp8(int(c.R) + dr), G: clamp8(int(c.G) + dg), B: clamp8(int(c.B) + db)}
}

// Vec returns the colour as normalized floats for shader uniforms.
func (c RGB) Vec() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

var Palette = struct {
	Sky       RGB
	Field     RGB
	FieldAlt  RGB
	Border    RGB
	SnakeHead RGB
	SnakeBody RGB
	SnakeTail RGB
	Apple     RGB
	Leaf      RGB
	Hedgehog  RGB
	Bonus     RGB
	Spark     RGB
	Blood     RGB
}{
	Sky:       RGB{R: 146, G: 188, B: 214},
	Field:     RGB{R: 112, G: 164, B: 82},
	FieldAlt:  RGB{R: 98, G: 150, B: 72},
	Border:    RGB{R: 86, G: 70, B: 52},
	SnakeHead: RGB{R: 40, G: 120, B: 48},
	SnakeBody: RGB{R: 72, G: 168, B: 64},
	SnakeTail: RGB{R: 196, G: 210, B: 96},
	Apple:     RGB{R: 212, G: 38, B: 34},
	Leaf:      RGB{R: 60, G: 140, B: 40},
	Hedgehog:  RGB{R: 104, G: 78, B: 58},
	Bonus:     RGB{R: 250, G: 200, B: 60},
	Spark:     RGB{R: 255, G: 236, B: 160},
	Blood:     RGB{R: 150, G: 24, B: 24},
}
