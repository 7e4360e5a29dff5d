package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"honnef.co/go/runout"
	"honnef.co/go/runout/config"
	"honnef.co/go/runout/coords"
	"honnef.co/go/runout/export"
	"honnef.co/go/runout/geom"
	"honnef.co/go/runout/render"
)

type computeFlags struct {
	config  string
	slope   string
	failure string
	format  string
	output  string
	verbose bool

	params        runout.Parameters
	direction     string
	frictionAngle float64
	rayLength     float64
	width         float64
}

func newComputeCmd() *cobra.Command {
	f := &computeFlags{params: runout.DefaultParameters()}
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Run one runout analysis",
		Long: `Run one runout analysis.

Inputs come from a project file (--config), from coordinate files (--slope,
--failure; "-" reads standard input), or both, in which case the files
replace the project's coordinates. Parameter flags override the project's
parameters.

Coordinate files hold one x,y pair per row, separated by a comma, a tab or
spaces. Values are rounded to one decimal place.

Formats:
  text     - area summary and warnings
  json     - the complete result
  geojson  - a FeatureCollection of every part
  wkt      - one "name<TAB>WKT" row per part
  wkb      - one "name<TAB>hex WKB" row per part
  svg      - a drawing of the cross-section`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run(cmd)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "project `file`")
	fl.StringVar(&f.slope, "slope", "", "slope profile coordinate `file`")
	fl.StringVar(&f.failure, "failure", "", "failure surface coordinate `file`")
	fl.StringVarP(&f.format, "format", "f", "text", "output format: text, json, geojson, wkt, wkb or svg")
	fl.StringVarP(&f.output, "output", "o", "", "write to `file` instead of standard output")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log parts that had to be left out")

	fl.Float64Var(&f.params.Standoff, "standoff", f.params.Standoff, "distance from slope toe to bund toe in `metres`")
	fl.Float64Var(&f.params.SwellFactor, "swell-factor", f.params.SwellFactor, "ratio of loose to in-situ volume")
	fl.Float64Var(&f.params.BundHeight, "bund-height", f.params.BundHeight, "bund height in `metres`, 0 for none")
	fl.Float64Var(&f.params.RunoutAngle, "runout-angle", f.params.RunoutAngle, "runout angle in `degrees`")
	fl.StringVar(&f.direction, "direction", string(f.params.Direction), "direction the slope faces: left or right")
	fl.BoolVar(&f.params.ProjectToBackscarp, "project-to-backscarp", f.params.ProjectToBackscarp, "project the runout line onto the failure surface")
	fl.Float64Var(&f.frictionAngle, "friction-angle", runout.FrictionAngle, "bund material friction angle in `degrees`")
	fl.Float64Var(&f.rayLength, "ray-length", runout.DefaultRayLength, "length of the runout line in `metres`")
	fl.Float64Var(&f.width, "width", 800, "SVG width in `pixels`")
	return cmd
}

// parameters merges the project's parameters with the flags that were set
// explicitly.
func (f *computeFlags) parameters(fl *pflag.FlagSet, base runout.Parameters) (runout.Parameters, error) {
	p := base
	if fl.Changed("standoff") {
		p.Standoff = f.params.Standoff
	}
	if fl.Changed("swell-factor") {
		p.SwellFactor = f.params.SwellFactor
	}
	if fl.Changed("bund-height") {
		p.BundHeight = f.params.BundHeight
	}
	if fl.Changed("runout-angle") {
		p.RunoutAngle = f.params.RunoutAngle
	}
	if fl.Changed("project-to-backscarp") {
		p.ProjectToBackscarp = f.params.ProjectToBackscarp
	}
	if fl.Changed("direction") {
		if err := p.Direction.UnmarshalText([]byte(f.direction)); err != nil {
			return p, err
		}
	}
	return p, nil
}

func (f *computeFlags) run(cmd *cobra.Command) error {
	params := runout.DefaultParameters()
	var slope, failure []geom.Point
	if f.config != "" {
		proj, err := config.Load(f.config)
		if err != nil {
			return err
		}
		params = proj.Parameters
		if f.slope == "" {
			if slope, failure, err = proj.Points(); err != nil {
				return err
			}
		} else {
			if failure, err = proj.FailureSurface.Points(); err != nil {
				return fmt.Errorf("%s: failure_surface: %w", f.config, err)
			}
		}
	}
	params, err := f.parameters(cmd.Flags(), params)
	if err != nil {
		return err
	}

	if f.slope != "" {
		if slope, err = readCoords(cmd.InOrStdin(), f.slope); err != nil {
			return err
		}
	}
	if f.failure != "" {
		if failure, err = readCoords(cmd.InOrStdin(), f.failure); err != nil {
			return err
		}
	}
	if slope == nil {
		return fmt.Errorf("no slope profile; use --config or --slope")
	}

	logger := log.New(io.Discard, "", 0)
	if f.verbose {
		logger = log.New(cmd.ErrOrStderr(), "", 0)
	}
	e := &runout.Engine{
		Logger:        logger,
		FrictionAngle: f.frictionAngle,
		RayLength:     f.rayLength,
	}
	res, err := e.Compute(params, slope, failure)
	if err != nil {
		return err
	}

	if f.output == "" {
		return f.write(cmd.OutOrStdout(), res)
	}
	out, err := os.Create(f.output)
	if err != nil {
		return err
	}
	if err := f.write(out, res); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (f *computeFlags) write(w io.Writer, res *runout.Result) error {
	switch f.format {
	case "text":
		for _, s := range res.Summary() {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
		for _, s := range res.Warnings {
			if _, err := fmt.Fprintf(w, "warning: %s\n", s); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "geojson":
		data, err := export.GeoJSON(res)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case "wkt":
		return export.WriteWKT(w, res)
	case "wkb":
		return export.WriteWKB(w, res)
	case "svg":
		return render.WriteSVG(w, res, render.Options{Width: f.width})
	default:
		return fmt.Errorf("unknown format %q", f.format)
	}
}

func readCoords(stdin io.Reader, path string) ([]geom.Point, error) {
	if path == "-" {
		pts, err := coords.ParseReader(stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return pts, nil
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	pts, err := coords.ParseReader(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pts, nil
}
