package report

import (
	"fmt"

	"github.com/flosch/pongo2"

	"github.com/mmuldo/colorpi/colorspace"
	"github.com/mmuldo/colorpi/delta"
)

// DefaultTemplate lays a comparison out the way color reports do: both
// samples side by side per field, scores first. Its output can be read
// back with Parse.
const DefaultTemplate = `{% for s in scores %}Delta {{ s.label }}: {{ s.value }}
{% endfor %}
Standard / Test
RGB: {{ standard.rgb }}    RGB: {{ test.rgb }}
CMYK: {{ standard.cmyk }}    CMYK: {{ test.cmyk }}
HEX: {{ standard.hex }}    HEX: {{ test.hex }}
CIELAB: {{ standard.lab }}    CIELAB: {{ test.lab }}
LCH: {{ standard.lch }}    LCH: {{ test.lch }}
`

// Comparison holds a standard and a test sample together with their Delta E
// scores. Scores are computed from the full precision Lab values.
type Comparison struct {
	Standard colorspace.Conversion
	Test     colorspace.Conversion
	Metrics  []delta.Metric
	Scores   map[delta.Metric]float64
}

// New compares std against test. With no metrics given every supported
// metric is scored.
func New(std, test colorspace.Conversion, metrics ...delta.Metric) (*Comparison, error) {
	if len(metrics) == 0 {
		metrics = delta.Metrics()
	}

	scores, err := delta.Scores(std.Lab, test.Lab, metrics...)
	if err != nil {
		return nil, err
	}

	return &Comparison{
		Standard: std,
		Test:     test,
		Metrics:  metrics,
		Scores:   scores,
	}, nil
}

// Context exposes the comparison to templates. Lab and LCh values are
// rounded for display.
func (c *Comparison) Context() pongo2.Context {
	scores := make([]map[string]interface{}, 0, len(c.Metrics))
	for _, m := range c.Metrics {
		scores = append(scores, map[string]interface{}{
			"metric": string(m),
			"label":  Label(m),
			"value":  fmt.Sprintf("%.2f", c.Scores[m]),
			"raw":    c.Scores[m],
		})
	}

	return pongo2.Context{
		"standard": sampleContext(c.Standard),
		"test":     sampleContext(c.Test),
		"scores":   scores,
	}
}

func sampleContext(conv colorspace.Conversion) map[string]interface{} {
	d := conv.Display()
	return map[string]interface{}{
		"hex":  d.Hex,
		"rgb":  d.RGB.String(),
		"cmyk": d.CMYK.String(),
		"lab":  d.Lab.String(),
		"lch":  d.LCh.String(),
	}
}

// Label is the short name a report prints a metric under, e.g. "E2000".
func Label(m delta.Metric) string {
	switch m {
	case delta.CIE76:
		return "E76"
	case delta.CIEDE2000:
		return "E2000"
	default:
		return string(m)
	}
}

// Render executes the pongo2 template source tpl against c.
func Render(c *Comparison, tpl string) (string, error) {
	t, err := pongo2.FromString(tpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse report template: %w", err)
	}
	return execute(t, c)
}

// RenderFile executes the pongo2 template at path against c.
func RenderFile(c *Comparison, path string) (string, error) {
	t, err := pongo2.FromFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to load report template %s: %w", path, err)
	}
	return execute(t, c)
}

func execute(t *pongo2.Template, c *Comparison) (string, error) {
	o, err := t.Execute(c.Context())
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return o, nil
}

// Swatch renders label and the sample's hex code in the sample's own color
// using a 24-bit ANSI escape.
func Swatch(conv colorspace.Conversion, label string) string {
	rgb := conv.RGB
	return fmt.Sprintf("\033[38;2;%d;%d;%dm██ %s = %s\033[0m", rgb.R, rgb.G, rgb.B, label, conv.Hex)
}
