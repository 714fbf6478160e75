package server

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/julianstephens/habits/internal/models"
)

const avatarSize = 128

// avatarPNG renders a flat avatar tile in the user's color. Users
// without a color get a neutral gray.
func avatarPNG(user models.User) ([]byte, error) {
	c := models.Color{Hue: 0, Saturation: 0, Brightness: 0.6}
	if user.Color != nil {
		c = *user.Color
	}

	img := image.NewRGBA(image.Rect(0, 0, avatarSize, avatarSize))
	fill := hsbToRGBA(c)
	for y := 0; y < avatarSize; y++ {
		for x := 0; x < avatarSize; x++ {
			img.Set(x, y, fill)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func hsbToRGBA(c models.Color) color.RGBA {
	h := math.Mod(c.Hue, 1) * 6
	s := c.Saturation
	v := c.Brightness

	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return color.RGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: 255,
	}
}
