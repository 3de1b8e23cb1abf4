// Command rastdemo renders a contact sheet of the rast kernel: a
// Bresenham line, a thick stroke, the midpoint circle primitives,
// Liang-Barsky clipping, a ring gradient, and a batch-rasterized
// starburst, all on one canvas.
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/rast"
)

const panel = 400

func main() {
	var (
		output  = flag.String("output", "rastdemo.png", "output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		rast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cv := rast.NewCanvas(3*panel, 2*panel)

	total := 0
	total += linePanel(cv, 0, 0)
	total += thickPanel(cv, panel, 0)
	total += circlePanel(cv, 2*panel, 0)
	total += clipPanel(cv, 0, panel)
	total += ringsPanel(cv, panel, panel)
	total += starburstPanel(cv, 2*panel, panel)

	if err := cv.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("rastdemo: %d pixels drawn across 6 panels -> %s\n", total, *output)
}

// linePanel draws a fan of single-pixel lines from one corner.
func linePanel(cv *rast.Canvas, ox, oy int) int {
	origin := image.Pt(ox+30, oy+panel-30)
	n := 0
	for i := 0; i <= 8; i++ {
		t := float64(i) / 8
		end := image.Pt(
			ox+30+int(t*float64(panel-60)),
			oy+30+int((1-t)*float64(panel-60)),
		)
		pts := rast.Line(origin, end)
		cv.DrawPoints(pts, rast.White.Lerp(rast.Cyan, t))
		n += len(pts)
	}
	cv.Label(ox+10, oy+20, "Line", rast.White)
	return n
}

// thickPanel draws one stroked line per width.
func thickPanel(cv *rast.Canvas, ox, oy int) int {
	n := 0
	for i, w := range []int{1, 3, 7, 13, 21} {
		y := oy + 60 + i*70
		pts := rast.ThickLine(image.Pt(ox+30, y), image.Pt(ox+panel-30, y+30), w, cv.Bounds())
		cv.DrawPoints(pts, rast.Yellow)
		n += len(pts)
	}
	cv.Label(ox+10, oy+20, "ThickLine", rast.White)
	return n
}

// circlePanel draws a filled disk and a circle outline.
func circlePanel(cv *rast.Canvas, ox, oy int) int {
	c := image.Pt(ox+panel/2, oy+panel/2)
	disk := rast.FillDisk(c, 90, cv.Bounds())
	cv.DrawPoints(disk, rast.RGB(0.2, 0.4, 0.9))
	outline := rast.Circle(c, 150)
	cv.DrawPoints(outline, rast.White)
	cv.Label(ox+10, oy+20, "FillDisk / Circle", rast.White)
	return len(disk) + len(outline)
}

// clipPanel clips a pinwheel of segments against a centered window.
func clipPanel(cv *rast.Canvas, ox, oy int) int {
	cx := float64(ox + panel/2)
	cy := float64(oy + panel/2)
	win := rast.NewWindow(cx-80, cy-80, cx+80, cy+80)

	segs := make([]rast.Segment, 0, 12)
	for i := 0; i < 12; i++ {
		a := float64(i) * math.Pi / 6
		segs = append(segs, rast.Seg(
			cx+20*math.Cos(a), cy+20*math.Sin(a),
			cx+170*math.Cos(a), cy+170*math.Sin(a),
		))
	}

	for _, s := range segs {
		cv.DrawSegment(s, 1, rast.RGB(0.8, 0.1, 0.1))
	}
	clipped := rast.ClipAll(segs, win)
	for _, c := range clipped {
		cv.DrawSegment(c, 3, rast.RGB(0.05, 0.6, 0.05))
	}
	cv.DrawWindow(win, 2, rast.Blue)
	cv.Label(ox+10, oy+20, "Clip", rast.White)

	n := 0
	for _, c := range clipped {
		n += int(c.Length())
	}
	return n
}

// ringsPanel draws the concentric hue-gradient rings.
func ringsPanel(cv *rast.Canvas, ox, oy int) int {
	c := image.Pt(ox+panel/2, oy+panel/2)
	n := 0
	const count = 10
	for i := 0; i < count; i++ {
		t := float64(i) / (count - 1)
		col := rast.HSV(330+t*(210-330), 0.85, 0.95-0.2*t)
		pts := rast.ThickCircle(c, 15+i*18, 6, cv.Bounds())
		cv.DrawPoints(pts, col)
		n += len(pts)
	}
	cv.Label(ox+10, oy+20, "ThickCircle", rast.White)
	return n
}

// starburstPanel rasterizes 24 spokes in parallel with Batch, then
// draws the results in deterministic spoke order.
func starburstPanel(cv *rast.Canvas, ox, oy int) int {
	center := image.Pt(ox+panel/2, oy+panel/2)
	bounds := cv.Bounds()

	const spokes = 24
	jobs := make([]func() []image.Point, spokes)
	for i := 0; i < spokes; i++ {
		a := float64(i) * 2 * math.Pi / spokes
		end := image.Pt(
			center.X+int(170*math.Cos(a)),
			center.Y+int(170*math.Sin(a)),
		)
		jobs[i] = func() []image.Point {
			return rast.ThickLine(center, end, 3, bounds)
		}
	}

	n := 0
	for i, pts := range rast.Batch(0, jobs...) {
		t := float64(i) / spokes
		cv.DrawPoints(pts, rast.Magenta.Lerp(rast.Yellow, t))
		n += len(pts)
	}
	cv.Label(ox+10, oy+20, "Batch starburst", rast.White)
	return n
}
