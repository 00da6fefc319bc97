//go:build ignore

//kage:unit pixels

package main

const Pi = 3.141592

// Uniform variables.
var Time float
var Cursor vec2
var Intensity float
var RampA [5]vec4
var RampB [5]vec4
var Blend float

func rampAAt(t float) vec4 {
	segment := (1.0 / 4.0)

	for i := 0; i < 4; i++ {
		limit := float(i+1) * segment
		if t < limit {
			t = (t - float(i)*segment) / segment
			return mix(RampA[i], RampA[i+1], t)
		}
	}

	return RampA[4]
}

func rampBAt(t float) vec4 {
	segment := (1.0 / 4.0)

	for i := 0; i < 4; i++ {
		limit := float(i+1) * segment
		if t < limit {
			t = (t - float(i)*segment) / segment
			return mix(RampB[i], RampB[i+1], t)
		}
	}

	return RampB[4]
}

func rotateV(v vec2, theta float) vec2 {
	c := cos(theta)
	s := sin(theta)
	return vec2(v.x*c-v.y*s, v.x*s+v.y*c)
}

func imageSrc0At01(at vec2) vec4 {
	origin0 := imageSrc0Origin()
	imgSize := imageSrc0Size()
	return imageSrc0At(mod(imgSize*at, imgSize) + origin0)
}

func imageSrc1At01(at vec2) vec4 {
	origin0 := imageSrc0Origin()
	imgSize := imageSrc1Size()
	return imageSrc1At(mod(imgSize*at, imgSize) + origin0)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	time := Time * 0.8

	pos := dstPos.xy / imageDstSize()

	// drift the field a little toward the cursor
	pull := Cursor/imageDstSize() - vec2(0.5, 0.5)
	pos += pull * 0.05 * Intensity

	rotV := pos - vec2(0.5, 0.5)
	rotV = rotateV(rotV, rotV.x+time*0.03)
	rotV += vec2(0.5, 0.5)

	waveV := pos
	waveV.y += cos(pos.x*Pi-2*Pi) * sin(time*0.1)

	c1 := imageSrc0At01((waveV*0.1 + rotV*0.2 + vec2(time*0.0004, time*0.001)) * 0.3)
	c2 := imageSrc1At01(waveV*0.1 + rotV*-0.6*(0.8+c1.r*0.2) + vec2(time*0.01, time*0.0004))

	t := mod(c1.r*0.6+time*0.01+c2.r*0.2, 1)

	return mix(rampAAt(t), rampBAt(t), Blend)
}
