package pdf

import "unicode/utf8"

// op is one recorded drawing call.
type op struct {
	Kind string // "page", "text", "circle", "link"
	Page int
	X, Y float64
	W, H float64
	R    float64
	Text string
	Bold bool
	Size float64
	URL  string
}

// recorder is a Canvas that keeps every drawing call. Glyphs are half an em
// wide, bold ones a little wider.
type recorder struct {
	ops  []op
	page int
	bold bool
	size float64
}

var _ Canvas = (*recorder)(nil)

func (r *recorder) AddPage() {
	r.page++
	r.ops = append(r.ops, op{Kind: "page", Page: r.page})
}

func (r *recorder) SetFont(bold bool, size float64) {
	r.bold, r.size = bold, size
}

func (r *recorder) StringWidth(s string) float64 {
	factor := 0.5
	if r.bold {
		factor = 0.55
	}
	return float64(utf8.RuneCountInString(s)) * r.size * factor
}

func (r *recorder) Text(x, y float64, s string) {
	r.ops = append(r.ops, op{Kind: "text", Page: r.page, X: x, Y: y, Text: s, Bold: r.bold, Size: r.size})
}

func (r *recorder) Circle(x, y, rad float64) {
	r.ops = append(r.ops, op{Kind: "circle", Page: r.page, X: x, Y: y, R: rad})
}

func (r *recorder) Link(x, y, w, h float64, url string) {
	r.ops = append(r.ops, op{Kind: "link", Page: r.page, X: x, Y: y, W: w, H: h, URL: url})
}

func (r *recorder) kind(k string) []op {
	var out []op
	for _, o := range r.ops {
		if o.Kind == k {
			out = append(out, o)
		}
	}
	return out
}
