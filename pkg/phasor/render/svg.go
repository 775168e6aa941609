package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strings"

	"github.com/ukaji3/phasor-go/pkg/phasor/geometry"
	"github.com/ukaji3/phasor-go/pkg/phasor/models"
)

// Unit-relative radii of the decorations around the vectors.
const (
	rimRadius          = 1.15
	tickLabelRadius    = 1.24
	referenceLabelR    = 1.05
	voltageLabelRadius = 1.12
	currentLabelRadius = 1.0
	titleHeight        = 48
)

// canvas maps polar diagram coordinates to SVG pixels. Angle 0 points east
// and angles grow clockwise on screen.
type canvas struct {
	cx, cy float64
	unit   float64
}

func newCanvas(style Style) canvas {
	size := float64(style.Size)
	return canvas{
		cx:   size / 2,
		cy:   titleHeight + size/2,
		unit: size * 0.36,
	}
}

func (c canvas) point(theta, r float64) (x, y float64) {
	return c.cx + r*c.unit*math.Cos(theta), c.cy + r*c.unit*math.Sin(theta)
}

// SVG renders a diagram description as a standalone SVG document.
func SVG(spec models.DiagramSpec, style Style) []byte {
	style = style.WithDefaults()
	c := newCanvas(style)
	width := style.Size
	height := style.Size + titleHeight

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="%s">`,
		width, height, width, height, escapeXML(style.FontFamily))
	sb.WriteString("\n")

	writeMarkers(&sb, style)

	// Background and polar face
	fmt.Fprintf(&sb, `<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`+"\n", width, height, style.Background)
	fmt.Fprintf(&sb, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		c.cx, c.cy, rimRadius*c.unit, style.FaceColor, style.GridColor)

	writeGrid(&sb, c, style)

	// Title
	fmt.Fprintf(&sb, `<text x="%.2f" y="%d" font-size="%.1f" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`+"\n",
		c.cx, titleHeight-16, style.FontSize+3, style.TextColor, escapeXML(style.Title))

	// Reference axis
	ref := spec.Reference
	writeVector(&sb, c, ref, style.ReferenceColor, "reference", 1.5)
	rx, ry := c.point(geometry.Radians(ref.Angle), referenceLabelR)
	fmt.Fprintf(&sb, `<text x="%.2f" y="%.2f" font-size="%.1f" fill="%s" text-anchor="middle">%s</text>`+"\n",
		rx, ry-4, style.FontSize-2, style.ReferenceColor, escapeXML(ref.Label))

	for _, v := range spec.Voltages {
		writeVector(&sb, c, v, style.VoltageEdge, "voltage", 2)
		writeLabel(&sb, c, v, voltageLabelRadius, style.VoltageEdge, style.FontSize)
	}

	for _, v := range spec.Currents {
		writeVector(&sb, c, v, style.CurrentEdge, "current", 2)
		writeLabel(&sb, c, v, currentLabelRadius, style.CurrentText, style.FontSize)
	}

	for _, arc := range spec.Arcs {
		writeArc(&sb, c, arc, style)
	}

	sb.WriteString("</svg>\n")
	return []byte(sb.String())
}

// writeMarkers defines one arrow head per vector kind.
func writeMarkers(sb *strings.Builder, style Style) {
	sb.WriteString("<defs>\n")
	for _, m := range []struct{ id, fill, stroke string }{
		{"reference", style.ReferenceColor, style.ReferenceColor},
		{"voltage", style.VoltageColor, style.VoltageEdge},
		{"current", style.CurrentColor, style.CurrentEdge},
	} {
		fmt.Fprintf(sb, `<marker id="arrow-%s" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="7" markerHeight="7" orient="auto-start-reverse">`, m.id)
		fmt.Fprintf(sb, `<path d="M0,0 L10,5 L0,10 z" fill="%s" stroke="%s"/></marker>`+"\n", m.fill, m.stroke)
	}
	sb.WriteString("</defs>\n")
}

// writeGrid draws dotted spokes and degree labels every TickStep degrees.
func writeGrid(sb *strings.Builder, c canvas, style Style) {
	for deg := 0; deg < 360; deg += style.TickStep {
		theta := geometry.Radians(float64(deg))
		x, y := c.point(theta, rimRadius)
		fmt.Fprintf(sb, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-dasharray="1,3" stroke-opacity="0.5"/>`+"\n",
			c.cx, c.cy, x, y, style.GridColor)

		lx, ly := c.point(theta, tickLabelRadius)
		fmt.Fprintf(sb, `<text x="%.2f" y="%.2f" font-size="%.1f" fill="%s" text-anchor="middle" dominant-baseline="middle">%d°</text>`+"\n",
			lx, ly, style.FontSize-1, style.TextColor, deg)
	}
}

func writeVector(sb *strings.Builder, c canvas, v models.Vector, color, marker string, width float64) {
	x, y := c.point(geometry.Radians(v.Angle), v.Length)
	dash := ""
	if v.Dashed {
		dash = ` stroke-dasharray="6,4"`
	}
	fmt.Fprintf(sb, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f"%s marker-end="url(#arrow-%s)"/>`+"\n",
		c.cx, c.cy, x, y, color, width, dash, marker)
}

func writeLabel(sb *strings.Builder, c canvas, v models.Vector, r float64, color string, fontSize float64) {
	x, y := c.point(geometry.Radians(v.Angle), r)
	fmt.Fprintf(sb, `<text x="%.2f" y="%.2f" font-size="%.1f" font-weight="bold" fill="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
		x, y, fontSize, color, escapeXML(v.Label))
}

// writeArc draws the sampled difference arc and its label. LabelRotation is
// counter-clockwise while SVG rotates clockwise.
func writeArc(sb *strings.Builder, c canvas, arc models.ArcSpec, style Style) {
	points := make([]string, 0, style.ArcSamples)
	for _, theta := range geometry.Sample(arc.DifferenceArc, style.ArcSamples) {
		x, y := c.point(theta, arc.Radius)
		points = append(points, fmt.Sprintf("%.2f,%.2f", x, y))
	}
	fmt.Fprintf(sb, `<polyline points="%s" fill="none" stroke="%s" stroke-width="2"/>`+"\n",
		strings.Join(points, " "), style.ArcColor)

	x, y := c.point(arc.Mid, arc.LabelRadius)
	transform := ""
	if arc.LabelRotation != 0 {
		transform = fmt.Sprintf(` transform="rotate(%.2f %.2f %.2f)"`, -arc.LabelRotation, x, y)
	}
	fmt.Fprintf(sb, `<text x="%.2f" y="%.2f" font-size="%.1f" font-weight="bold" fill="%s" text-anchor="middle" dominant-baseline="middle"%s>%s</text>`+"\n",
		x, y, style.FontSize, style.ArcColor, transform, escapeXML(arc.Label))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
