package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportDiagram exports the McCabe-Thiele diagram to an image file.
// The format follows the file extension (png, pdf, svg, ...).
func ExportDiagram(data McCabeThieleData, filename string) error {
	p := plot.New()
	if data.IsStripper {
		p.Title.Text = fmt.Sprintf("McCabe-Thiele Diagram (Bmin = %.2f, B = %.2f)", data.Rmin, data.R)
	} else {
		p.Title.Text = fmt.Sprintf("McCabe-Thiele Diagram (Rmin = %.2f, R = %.2f)", data.Rmin, data.R)
	}
	p.X.Label.Text = fmt.Sprintf("x (%s)", data.LightKey)
	p.Y.Label.Text = fmt.Sprintf("y (%s)", data.LightKey)
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	// Graphical aid line y = x
	aid, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return err
	}
	aid.LineStyle.Color = color.Gray{Y: 160}
	p.Add(aid)

	// Equilibrium curve
	eqPts := make(plotter.XYs, len(data.XEq))
	for i := range data.XEq {
		eqPts[i] = plotter.XY{X: data.XEq[i], Y: data.YEq[i]}
	}
	eqLine, err := plotter.NewLine(eqPts)
	if err != nil {
		return err
	}
	eqLine.LineStyle.Width = vg.Points(2)
	eqLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(eqLine)
	p.Legend.Add("equilibrium", eqLine)

	// Staircase: vertical then horizontal segments between stages
	stairs := plotter.XYs{{X: data.YStages[0], Y: data.YStages[0]}}
	for i := range data.XStages {
		if i < len(data.YStages) {
			stairs = append(stairs, plotter.XY{X: data.XStages[i], Y: data.YStages[i]})
		}
		if i+1 < len(data.YStages) {
			stairs = append(stairs, plotter.XY{X: data.XStages[i], Y: data.YStages[i+1]})
		}
	}
	stairLine, err := plotter.NewLine(stairs)
	if err != nil {
		return err
	}
	stairLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	stairLine.LineStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	p.Add(stairLine)
	p.Legend.Add(fmt.Sprintf("stages: %d", data.Stages), stairLine)

	if data.IsStripper {
		// Stripping operating line only
		sol, err := newOperatingLine(data.XBot, data.XBot, data.XM, data.YM)
		if err != nil {
			return err
		}
		p.Add(sol)
		p.Legend.Add("SOL", sol)
	} else {
		qline, err := newOperatingLine(data.ZF, data.ZF, data.XM, data.YM)
		if err != nil {
			return err
		}
		p.Add(qline)
		p.Legend.Add("q-line", qline)

		rol, err := newOperatingLine(data.XM, data.YM, data.YTop, data.YTop)
		if err != nil {
			return err
		}
		p.Add(rol)
		p.Legend.Add("ROL", rol)

		sol, err := newOperatingLine(data.XBot, data.XBot, data.XM, data.YM)
		if err != nil {
			return err
		}
		p.Add(sol)
		p.Legend.Add("SOL", sol)
	}

	p.Legend.Top = false
	p.Legend.Left = true

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return p.Save(7*vg.Inch, 7*vg.Inch, filename)
}

func newOperatingLine(x0, y0, x1, y1 float64) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}})
	if err != nil {
		return nil, err
	}
	l.LineStyle.Width = vg.Points(1)
	l.LineStyle.Color = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	return l, nil
}
