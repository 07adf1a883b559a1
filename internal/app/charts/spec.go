package charts

// Kind identifies the renderable chart type
type Kind string

const (
	KindPie           Kind = "pie"
	KindBar           Kind = "bar"
	KindHorizontalBar Kind = "hbar"
	KindHistogram     Kind = "histogram"
	KindBox           Kind = "box"
	KindScatter       Kind = "scatter"
)

// Dashboard palette, carried over from the original layout
const (
	colorPrimary   = "#053042"
	colorSecondary = "#AF200D"
	colorAccent    = "#8B590D"
	colorSuccess   = "#C73E1D"
)

// qualitativePalette colors categorical slices and bars
var qualitativePalette = []string{
	"#8DD3C7", "#FFFFB3", "#BEBADA", "#FB8072", "#80B1D3",
	"#FDB462", "#B3DE69", "#FCCDE5", "#D9D9D9", "#BC80BD",
}

// Spec is a renderable chart description. It carries everything the page
// needs to draw the chart; no numeric computation happens past this point.
type Spec struct {
	Kind       Kind     `json:"kind"`
	Title      string   `json:"title"`
	XAxisLabel string   `json:"xAxisLabel,omitempty"`
	YAxisLabel string   `json:"yAxisLabel,omitempty"`
	// Labels name the categories; Values go with them for pie/bar kinds
	Labels []string  `json:"labels,omitempty"`
	Values []float64 `json:"values,omitempty"`
	// Boxes carry [min, q1, median, q3, max] per label for the box kind
	Boxes [][]float64 `json:"boxes,omitempty"`
	// Points carry [x, y] pairs for the scatter kind
	Points [][]float64 `json:"points,omitempty"`
	Colors []string    `json:"colors,omitempty"`
	// Placeholder marks a chart rendered over an empty summary
	Placeholder bool `json:"placeholder,omitempty"`
}

// placeholder builds the empty-summary stand-in chart. The page renders it
// as a single neutral slice instead of failing the whole grid.
func placeholder(kind Kind, title string) Spec {
	return Spec{
		Kind:        kind,
		Title:       title,
		Labels:      []string{"Sem dados"},
		Values:      []float64{1},
		Colors:      []string{"#D9D9D9"},
		Placeholder: true,
	}
}
