// Package render draws phasor diagrams as SVG.
package render

// Style holds rendering parameters for the SVG diagram.
type Style struct {
	Size           int     `yaml:"size" json:"size"`                       // SVG width in pixels (default: 800)
	Title          string  `yaml:"title" json:"title"`                     // diagram title
	FontFamily     string  `yaml:"font_family" json:"font_family"`         // default: Arial, sans-serif
	FontSize       float64 `yaml:"font_size" json:"font_size"`             // label font size (default: 11)
	Background     string  `yaml:"background" json:"background"`           // page color
	FaceColor      string  `yaml:"face_color" json:"face_color"`           // polar area color
	GridColor      string  `yaml:"grid_color" json:"grid_color"`           // spokes and rim
	TextColor      string  `yaml:"text_color" json:"text_color"`           // title and tick labels
	ReferenceColor string  `yaml:"reference_color" json:"reference_color"` // 0° axis
	VoltageColor   string  `yaml:"voltage_color" json:"voltage_color"`     // voltage arrow fill
	VoltageEdge    string  `yaml:"voltage_edge" json:"voltage_edge"`       // voltage arrow stroke and label
	CurrentColor   string  `yaml:"current_color" json:"current_color"`     // current arrow fill
	CurrentEdge    string  `yaml:"current_edge" json:"current_edge"`       // current arrow stroke
	CurrentText    string  `yaml:"current_text" json:"current_text"`       // current label
	ArcColor       string  `yaml:"arc_color" json:"arc_color"`             // difference arcs and labels
	TickStep       int     `yaml:"tick_step" json:"tick_step"`             // degrees between angle ticks (default: 30)
	ArcSamples     int     `yaml:"arc_samples" json:"arc_samples"`         // points per arc (default: 40)
}

// DefaultStyle returns the classic phasor diagram look.
func DefaultStyle() Style {
	return Style{
		Size:           800,
		Title:          "⚡ Diagrama Fasorial ⚡",
		FontFamily:     "Arial, sans-serif",
		FontSize:       11,
		Background:     "#ffffff",
		FaceColor:      "#fafafa",
		GridColor:      "#b0b0b0",
		TextColor:      "#333333",
		ReferenceColor: "gray",
		VoltageColor:   "#007bff",
		VoltageEdge:    "#004c99",
		CurrentColor:   "#00cc66",
		CurrentEdge:    "#008040",
		CurrentText:    "#006633",
		ArcColor:       "red",
		TickStep:       30,
		ArcSamples:     40,
	}
}

// WithDefaults fills zero fields from DefaultStyle.
func (s Style) WithDefaults() Style {
	d := DefaultStyle()
	if s.Size <= 0 {
		s.Size = d.Size
	}
	if s.Title == "" {
		s.Title = d.Title
	}
	if s.FontFamily == "" {
		s.FontFamily = d.FontFamily
	}
	if s.FontSize <= 0 {
		s.FontSize = d.FontSize
	}
	setDefault(&s.Background, d.Background)
	setDefault(&s.FaceColor, d.FaceColor)
	setDefault(&s.GridColor, d.GridColor)
	setDefault(&s.TextColor, d.TextColor)
	setDefault(&s.ReferenceColor, d.ReferenceColor)
	setDefault(&s.VoltageColor, d.VoltageColor)
	setDefault(&s.VoltageEdge, d.VoltageEdge)
	setDefault(&s.CurrentColor, d.CurrentColor)
	setDefault(&s.CurrentEdge, d.CurrentEdge)
	setDefault(&s.CurrentText, d.CurrentText)
	setDefault(&s.ArcColor, d.ArcColor)
	if s.TickStep <= 0 || s.TickStep > 180 {
		s.TickStep = d.TickStep
	}
	if s.ArcSamples < 2 {
		s.ArcSamples = d.ArcSamples
	}
	return s
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
