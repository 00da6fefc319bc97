//go:build ignore

//kage:unit pixels

package main

// Uniform variables.
var Points [8]vec2
var Radii [8]float
var Count float
var Tint vec4
var Opacity float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	p := dstPos.xy

	field := 0.0
	for i := 0; i < 8; i++ {
		if float(i) < Count {
			d := p - Points[i]
			r := Radii[i]
			field += (r * r) / (dot(d, d) + 1.0)
		}
	}

	// wide smoothstep band keeps the silhouette gooey
	a := smoothstep(0.75, 1.25, field) * Opacity

	return Tint * a
}
