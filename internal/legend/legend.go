// internal/legend/legend.go
package legend

import (
	"strings"

	"github.com/pkg/errors"
	colors "gopkg.in/go-playground/colors.v1"

	"igreport-core/germline"
	"igreport-core/report"
)

// Apply overlays a comma-separated "key=#rrggbb" palette spec onto a style
// set and returns the result; the base is left untouched. Keys: mismatch,
// gap, special, modified, context, ruler, conserved, nglycan (foregrounds)
// and cdr1, cdr2, cdr3 (backgrounds).
func Apply(base *report.Styles, spec string) (*report.Styles, error) {
	st := *base
	st.RegionBG = make(map[germline.Region]report.Style, len(base.RegionBG))
	for k, v := range base.RegionBG {
		st.RegionBG[k] = v
	}
	st.AnnotationFG = make(map[germline.Annotation]report.Style, len(base.AnnotationFG))
	for k, v := range base.AnnotationFG {
		st.AnnotationFG[k] = v
	}
	if strings.TrimSpace(spec) == "" {
		return &st, nil
	}

	for _, part := range strings.Split(spec, ",") {
		key, val, ok := strings.Cut(part, "=")
		if !ok {
			return nil, errors.Errorf("malformed palette entry %q", part)
		}
		hex, err := colors.ParseHEX(strings.TrimSpace(val))
		if err != nil {
			return nil, errors.Wrapf(err, "palette entry %q", part)
		}
		rgb := hex.ToRGB()
		fg := report.FgRGB(rgb.R, rgb.G, rgb.B)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "mismatch":
			st.Mismatch = fg
		case "gap":
			st.Gap = fg
		case "special":
			st.Special = fg
		case "modified":
			st.Modified = fg
		case "context":
			st.Context = fg
		case "ruler":
			st.Ruler = fg
		case "conserved":
			st.AnnotationFG[germline.Conserved] = fg
		case "nglycan":
			st.AnnotationFG[germline.NGlycan] = fg
		case "cdr1":
			st.RegionBG[germline.CDR1] = report.BgRGB(rgb.R, rgb.G, rgb.B)
		case "cdr2":
			st.RegionBG[germline.CDR2] = report.BgRGB(rgb.R, rgb.G, rgb.B)
		case "cdr3":
			st.RegionBG[germline.CDR3] = report.BgRGB(rgb.R, rgb.G, rgb.B)
		default:
			return nil, errors.Errorf("unknown palette key %q", key)
		}
	}
	return &st, nil
}
