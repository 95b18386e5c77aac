package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/FrederikvSvane/bachelor-projekt-sub001/internal/options"
	"github.com/FrederikvSvane/bachelor-projekt-sub001/simplex"
)

var (
	edgeColor    = color.RGBA{0x80, 0x80, 0x80, 0xff}
	regionColor  = color.RGBA{0x1f, 0x77, 0xb4, 0x30}
	vertexColor  = color.RGBA{0x1f, 0x77, 0xb4, 0xff}
	pathColor    = color.RGBA{0xd6, 0x27, 0x28, 0xff}
	optimalColor = color.RGBA{0x2c, 0xa0, 0x2c, 0xff}
	textColor    = color.Black
)

const (
	obliqueAngle  = math.Pi / 6
	obliqueFactor = 0.5
)

// SimplexConfig sizes the simplex figure.
type SimplexConfig struct {
	Width  int
	Height int
	Margin float64
}

// SimplexOption configures Simplex.
type SimplexOption = options.Option[*SimplexConfig]

// WithSize sets the figure size in pixels.
func WithSize(width, height int) SimplexOption {
	return options.Named("size", func(cfg *SimplexConfig) error {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("invalid size %dx%d", width, height)
		}
		cfg.Width, cfg.Height = width, height

		return nil
	})
}

// WithMargin sets the empty border inside each panel in pixels.
func WithMargin(margin float64) SimplexOption {
	return options.NoError(func(cfg *SimplexConfig) {
		cfg.Margin = margin
	})
}

// project maps a vertex to panel coordinates with y pointing up. The third
// axis uses an oblique (cabinet) projection.
func project(v simplex.Vertex) (x, y float64) {
	switch len(v) {
	case 1:
		return v[0], 0
	case 2:
		return v[0], v[1]
	default:
		return v[0] + obliqueFactor*v[2]*math.Cos(obliqueAngle),
			v[1] + obliqueFactor*v[2]*math.Sin(obliqueAngle)
	}
}

// panelTransform maps projected coordinates into one panel's pixel box.
type panelTransform struct {
	scale      float64
	offX, offY float64
	minX, minY float64
}

func newPanelTransform(il simplex.Illustration, left, top, width, height float64) panelTransform {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range il.Vertices {
		x, y := project(v)
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}

	spanX := max(maxX-minX, 1e-9)
	spanY := max(maxY-minY, 1e-9)
	scale := min(width/spanX, height/spanY)

	return panelTransform{
		scale: scale,
		offX:  left + (width-spanX*scale)/2,
		offY:  top + height - (height-spanY*scale)/2,
		minX:  minX,
		minY:  minY,
	}
}

func (t panelTransform) apply(v simplex.Vertex) (px, py float64) {
	x, y := project(v)

	return t.offX + (x-t.minX)*t.scale, t.offY - (y-t.minY)*t.scale
}

// Simplex draws one panel per illustration, side by side.
func Simplex(panels []simplex.Illustration, opts ...SimplexOption) (image.Image, error) {
	if len(panels) == 0 {
		return nil, errors.New("no simplex panels")
	}
	for _, il := range panels {
		if err := il.Validate(); err != nil {
			return nil, err
		}
	}

	cfg := &SimplexConfig{Width: 1500, Height: 500, Margin: 60}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	dc := gg.NewContext(cfg.Width, cfg.Height)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	panelW := float64(cfg.Width) / float64(len(panels))
	h := float64(cfg.Height)
	for i, il := range panels {
		left := float64(i) * panelW
		drawPanel(dc, il, left, panelW, h, cfg.Margin)
	}

	return dc.Image(), nil
}

func drawPanel(dc *gg.Context, il simplex.Illustration, left, width, height, margin float64) {
	dc.SetColor(textColor)
	dc.DrawStringAnchored(il.Title, left+width/2, margin/2, 0.5, 0.5)

	box := min(width, height) - 2*margin
	t := newPanelTransform(il,
		left+(width-box)/2, (height-box)/2+margin/4, box, box)

	if il.Dimension == 2 {
		for i, v := range il.Vertices {
			x, y := t.apply(v)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		dc.SetColor(regionColor)
		dc.Fill()
	}

	dc.SetColor(edgeColor)
	dc.SetLineWidth(2)
	for _, e := range il.Edges {
		x1, y1 := t.apply(il.Vertices[e[0]])
		x2, y2 := t.apply(il.Vertices[e[1]])
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	for step, e := range il.PathEdges() {
		x1, y1 := t.apply(il.Vertices[e[0]])
		x2, y2 := t.apply(il.Vertices[e[1]])
		drawArrow(dc, x1, y1, x2, y2)

		dc.SetColor(pathColor)
		nx, ny := normal(x1, y1, x2, y2)
		dc.DrawStringAnchored(fmt.Sprintf("%d", step+1), (x1+x2)/2+nx*14, (y1+y2)/2+ny*14, 0.5, 0.5)
	}

	for i, v := range il.Vertices {
		x, y := t.apply(v)
		if i == il.Optimal {
			continue
		}
		dc.SetColor(vertexColor)
		dc.DrawCircle(x, y, 5)
		dc.Fill()
	}

	ox, oy := t.apply(il.OptimalVertex())
	dc.SetColor(optimalColor)
	dc.DrawCircle(ox, oy, 9)
	dc.Fill()
	dc.SetColor(textColor)
	dc.DrawStringAnchored("optimum "+il.OptimalVertex().String(), ox, oy-22, 0.5, 0.5)
}

// normal returns the unit vector perpendicular to the segment, pointing left
// of the travel direction on screen.
func normal(x1, y1, x2, y2 float64) (nx, ny float64) {
	dx, dy := x2-x1, y2-y1
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0, 0
	}

	return dy / l, -dx / l
}

func drawArrow(dc *gg.Context, x1, y1, x2, y2 float64) {
	const head = 14

	angle := math.Atan2(y2-y1, x2-x1)
	// Stop short of the vertex marker so the head stays visible.
	ex, ey := x2-10*math.Cos(angle), y2-10*math.Sin(angle)

	dc.SetColor(pathColor)
	dc.SetLineWidth(3)
	dc.DrawLine(x1, y1, ex, ey)
	dc.Stroke()

	dc.MoveTo(ex, ey)
	dc.LineTo(ex-head*math.Cos(angle-math.Pi/7), ey-head*math.Sin(angle-math.Pi/7))
	dc.LineTo(ex-head*math.Cos(angle+math.Pi/7), ey-head*math.Sin(angle+math.Pi/7))
	dc.ClosePath()
	dc.Fill()
}

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	return nil
}
