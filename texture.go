package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
)

// names of the noise textures the background shader samples
const (
	NoiseCoarseTexture = "noise-coarse"
	NoiseFineTexture   = "noise-fine"
)

var BackgroundTextureNames = []string{
	NoiseCoarseTexture,
	NoiseFineTexture,
}

func SolidImage(w, h int, clr color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, clr)
		}
	}
	return img
}

// GenerateNoiseImage renders tileable grayscale value noise.
// The lattice wraps at cells so the shader can scroll it endlessly.
func GenerateNoiseImage(size int, cells int, octaves int, seed uint64) image.Image {
	timer := NewProfTimer(fmt.Sprintf("generating %vx%v noise", size, size))
	defer timer.Report()

	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	var layers [][]float64
	for oct := 0; oct < octaves; oct++ {
		rng := rand.New(rand.NewPCG(seed, uint64(oct)))

		n := cells << oct
		lattice := make([]float64, n*n)
		for i := range lattice {
			lattice[i] = rng.Float64()
		}
		layers = append(layers, lattice)
	}

	smooth := func(t float64) float64 {
		return t * t * (3 - 2*t)
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var value, amplitude, total float64
			amplitude = 1

			for oct := 0; oct < octaves; oct++ {
				n := cells << oct
				lattice := layers[oct]

				fx := f64(x) / f64(size) * f64(n)
				fy := f64(y) / f64(size) * f64(n)

				x0, y0 := int(fx), int(fy)
				tx := smooth(fx - f64(x0))
				ty := smooth(fy - f64(y0))

				x1 := (x0 + 1) % n
				y1 := (y0 + 1) % n

				v00 := lattice[y0*n+x0]
				v10 := lattice[y0*n+x1]
				v01 := lattice[y1*n+x0]
				v11 := lattice[y1*n+x1]

				top := Lerp(v00, v10, tx)
				bottom := Lerp(v01, v11, tx)

				value += Lerp(top, bottom, ty) * amplitude
				total += amplitude
				amplitude *= 0.5
			}

			gray := uint8(Clamp(value/total, 0, 1) * 255)
			img.SetNRGBA(x, y, color.NRGBA{gray, gray, gray, 255})
		}
	}

	return img
}

// NoiseLoader generates the background noise textures in memory.
func NoiseLoader(size int) LoadFunc {
	return func(name string) (image.Image, error) {
		switch name {
		case NoiseCoarseTexture:
			return GenerateNoiseImage(size, 4, 3, 101), nil
		case NoiseFineTexture:
			return GenerateNoiseImage(size, 8, 4, 739), nil
		default:
			return nil, fmt.Errorf("unknown texture %q", name)
		}
	}
}

// FileLoader reads textures from pngs or jpegs in dir, keyed by name.
func FileLoader(dir string) LoadFunc {
	return func(name string) (image.Image, error) {
		var file *os.File
		var err error

		for _, ext := range []string{".png", ".jpg", ".jpeg"} {
			file, err = os.Open(filepath.Join(dir, name+ext))
			if err == nil {
				break
			}
		}
		if err != nil {
			return nil, err
		}
		defer file.Close()

		img, _, err := image.Decode(file)
		if err != nil {
			return nil, err
		}
		return img, nil
	}
}
