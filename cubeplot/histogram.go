/*Package cubeplot draws simple plots of cube-file volumetric fields,
using the gonum plotting library.*/
package cubeplot

import (
	"fmt"
	"strings"

	cube "github.com/rmera/gocube"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//DefaultBins is the number of bins used when the caller asks for 0 or less.
const DefaultBins = 100

/*Histogram plots the distribution of the values of the field in G as a
  histogram with bins bins, and saves it to plotname. The extension of
  plotname selects the image format (png is used if there is none).
  For a difference field, the plot gives a quick view of how much of the
  grid actually changed, and in which direction. Returns an error or nil.*/
func Histogram(G *cube.Grid, bins int, title, plotname string) error {
	if G == nil {
		return fmt.Errorf("goCube/cubeplot.Histogram: given nil grid")
	}
	if G.Len() == 0 {
		return fmt.Errorf("goCube/cubeplot.Histogram: given empty grid")
	}
	if bins <= 0 {
		bins = DefaultBins
	}
	vals := make(plotter.Values, G.Len())
	copy(vals, G.Data())
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Field value"
	p.Y.Label.Text = "Voxels"
	p.Add(plotter.NewGrid())
	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return fmt.Errorf("goCube/cubeplot.Histogram: %s", err.Error())
	}
	p.Add(h)
	if !strings.Contains(plotname, ".") {
		plotname = fmt.Sprintf("%s.png", plotname)
	}
	if err := p.Save(5*vg.Inch, 5*vg.Inch, plotname); err != nil {
		return fmt.Errorf("goCube/cubeplot.Histogram: %s", err.Error())
	}
	return nil
}
