package renderer

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width       int
	Height      int
	TotalPixels int           // Pixels actually rendered
	PrimaryRays int           // Camera rays cast, one per rendered pixel
	Rows        int           // Rows finished
	Workers     int           // Number of workers used
	Elapsed     time.Duration // Wall time of the render
}

// RaysPerSecond returns the primary ray throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.PrimaryRays) / s.Elapsed.Seconds()
}

// WriteStatsTable prints the statistics as a table, with the image's average
// luminance when buf is not nil
func WriteStatsTable(w io.Writer, stats RenderStats, buf *ImageBuffer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", stats.Width, stats.Height)})
	table.Append([]string{"Rows", fmt.Sprintf("%d/%d", stats.Rows, stats.Height)})
	table.Append([]string{"Pixels", strconv.Itoa(stats.TotalPixels)})
	table.Append([]string{"Primary rays", strconv.Itoa(stats.PrimaryRays)})
	table.Append([]string{"Workers", strconv.Itoa(stats.Workers)})
	table.Append([]string{"Rays/sec", fmt.Sprintf("%.0f", stats.RaysPerSecond())})
	if buf != nil {
		table.Append([]string{"Avg luminance", fmt.Sprintf("%.4f", AverageLuminance(buf))})
	}

	table.SetFooter([]string{"Elapsed", stats.Elapsed.Round(time.Millisecond).String()})
	table.Render()
}

// luminance returns the Rec. 709 relative luminance of a linear color
func luminance(c core.Color) float64 {
	return 0.2126*float64(c.Red) + 0.7152*float64(c.Green) + 0.0722*float64(c.Blue)
}

// AverageLuminance returns the mean luminance of the buffer's clamped colors
func AverageLuminance(buf *ImageBuffer) float64 {
	if len(buf.Data) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range buf.Data {
		total += luminance(c.Clamp())
	}
	return total / float64(len(buf.Data))
}
