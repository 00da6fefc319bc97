//go:build ignore

//kage:unit pixels

package main

const Pi = 3.141592

// Uniform variables.
var Time float
var Progress float

func swirl(v vec2, theta float) vec2 {
	c := cos(theta)
	s := sin(theta)
	return vec2(v.x*c-v.y*s, v.x*s+v.y*c)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	time := Time * 0.02

	pos := dstPos.xy/imageDstSize() - vec2(0.5, 0.5)

	r := length(pos)
	pos = swirl(pos, r*4-time*3)

	band := sin(pos.x*9+time*2) + sin(pos.y*11-time*3) + sin((pos.x+pos.y)*7+time)

	c := vec3(
		0.5+0.5*sin(band+time*2),
		0.5+0.5*sin(band*1.3+2.1+time),
		0.5+0.5*sin(band*0.7+4.2-time),
	)

	// the picture dims toward the rim, opening up as loading advances
	rim := 1 - smoothstep(0.05, 0.2+Progress*0.5, r)
	c *= 0.25 + 0.75*rim

	return vec4(c, 1)
}
