package colour

import "math"

// OKLab conversion matrices from Björn Ottosson's reference implementation
// (https://bottosson.github.io/posts/oklab/). Linear sRGB in, OKLab out.
func linearToOKLab(r, g, b float64) (float64, float64, float64) {
	// M1: linear RGB -> LMS.
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	// M2: LMS' -> Lab.
	L := 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	A := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	B := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp

	return L, A, B
}

// oklabToLinear is the inverse of linearToOKLab.
func oklabToLinear(L, a, b float64) (float64, float64, float64) {
	// Inverse M2: Lab -> LMS'.
	lp := L + 0.3963377774*a + 0.2158037573*b
	mp := L - 0.1055613458*a - 0.0638541728*b
	sp := L - 0.0894841775*a - 1.2914855480*b

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	// Inverse M1: LMS -> linear RGB.
	r := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return r, g, bl
}

// lchToLab converts the cylindrical chroma/hue pair to Cartesian a/b.
func lchToLab(c, h float64) (a, b float64) {
	rad := h * (math.Pi / 180)
	return c * math.Cos(rad), c * math.Sin(rad)
}

// labToLCH converts Cartesian OKLab to cylindrical OKLCH with a normalised
// hue. Near-neutral colours get hue 0 to keep serialisation stable.
func labToLCH(L, a, b float64) LCH {
	c := math.Sqrt(a*a + b*b)
	h := 0.0
	if c > 1e-9 {
		h = NormalizeHue(math.Atan2(b, a) * (180 / math.Pi))
	}
	return LCH{L: L, C: c, H: h, Alpha: 1}
}
