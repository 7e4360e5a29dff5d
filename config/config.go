// Package config reads and writes runout project files.
//
// A project file is YAML holding the design parameters and both coordinate
// lists:
//
//	parameters:
//	  standoff: 18
//	  swell_factor: 1.3
//	  bund_height: 2
//	  runout_angle: 37
//	  direction: left
//	  project_to_backscarp: true
//	slope_profile: |
//	  0,0
//	  3.5,5.2
//	failure_surface:
//	  x: 6.4, 14.3, 22.1
//	  y: 11.6, 17.7, 35.6
//
// Coordinates may be given as rows of text, as parallel x and y lists, or as
// a YAML sequence of pairs. Parameters that are left out keep the values of
// [runout.DefaultParameters].
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"honnef.co/go/runout"
	"honnef.co/go/runout/coords"
	"honnef.co/go/runout/geom"
)

// Project is the content of a project file.
type Project struct {
	Parameters     runout.Parameters `yaml:"parameters"`
	SlopeProfile   Coordinates       `yaml:"slope_profile"`
	FailureSurface Coordinates       `yaml:"failure_surface,omitempty"`
}

// Coordinates is a coordinate list in one of the accepted notations. At most
// one notation is set.
type Coordinates struct {
	// Text holds one pair per row, as read by [coords.Parse].
	Text string
	// X and Y are comma-separated lists, as read by [coords.ParseLists].
	X, Y string
	// Pairs holds explicit [x, y] pairs.
	Pairs [][2]float64
}

// TextCoordinates returns the rows notation of pts.
func TextCoordinates(pts []geom.Point) Coordinates {
	return Coordinates{Text: coords.Format(pts)}
}

// IsZero reports whether no coordinates were given.
func (c Coordinates) IsZero() bool {
	return strings.TrimSpace(c.Text) == "" && c.X == "" && c.Y == "" && len(c.Pairs) == 0
}

// Points parses the coordinates. It returns nil and no error if c is empty.
func (c Coordinates) Points() ([]geom.Point, error) {
	switch {
	case c.IsZero():
		return nil, nil
	case c.X != "" || c.Y != "":
		return coords.ParseLists(c.X, c.Y)
	case len(c.Pairs) > 0:
		var sb strings.Builder
		for _, p := range c.Pairs {
			sb.WriteString(strconv.FormatFloat(p[0], 'g', -1, 64))
			sb.WriteByte(',')
			sb.WriteString(strconv.FormatFloat(p[1], 'g', -1, 64))
			sb.WriteByte('\n')
		}
		return coords.Parse(sb.String())
	default:
		return coords.Parse(c.Text)
	}
}

type xyLists struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
}

func (c *Coordinates) UnmarshalYAML(node *yaml.Node) error {
	*c = Coordinates{}
	switch node.Kind {
	case yaml.ScalarNode:
		c.Text = node.Value
		return nil
	case yaml.MappingNode:
		var xy xyLists
		if err := node.Decode(&xy); err != nil {
			return err
		}
		c.X, c.Y = xy.X, xy.Y
		return nil
	case yaml.SequenceNode:
		return node.Decode(&c.Pairs)
	default:
		return fmt.Errorf("line %d: coordinates must be text, x/y lists or a list of pairs", node.Line)
	}
}

func (c Coordinates) MarshalYAML() (any, error) {
	switch {
	case c.X != "" || c.Y != "":
		return xyLists{X: c.X, Y: c.Y}, nil
	case len(c.Pairs) > 0:
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, p := range c.Pairs {
			pair := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
			for _, v := range p {
				pair.Content = append(pair.Content, &yaml.Node{
					Kind:  yaml.ScalarNode,
					Value: strconv.FormatFloat(v, 'g', -1, 64),
				})
			}
			node.Content = append(node.Content, pair)
		}
		return node, nil
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.LiteralStyle, Value: c.Text}, nil
	}
}

// Parse reads a project from YAML. Parameters are validated; coordinates
// are only parsed by [Project.Points].
func Parse(data []byte) (*Project, error) {
	p := &Project{Parameters: runout.DefaultParameters()}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && err != io.EOF {
		return nil, fmt.Errorf("config: invalid YAML: %w", err)
	}
	if err := p.Parameters.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return p, nil
}

// Load reads the project file at path.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Points parses both coordinate lists. The failure surface is nil if the
// project doesn't have one.
func (p *Project) Points() (slope, failure []geom.Point, err error) {
	if p.SlopeProfile.IsZero() {
		return nil, nil, fmt.Errorf("config: slope_profile: %w", &coords.ParseError{Err: coords.ErrTooFewPoints})
	}
	slope, err = p.SlopeProfile.Points()
	if err != nil {
		return nil, nil, fmt.Errorf("config: slope_profile: %w", err)
	}
	failure, err = p.FailureSurface.Points()
	if err != nil {
		return nil, nil, fmt.Errorf("config: failure_surface: %w", err)
	}
	return slope, failure, nil
}

// Compute runs e on the project.
func (p *Project) Compute(e *runout.Engine) (*runout.Result, error) {
	slope, failure, err := p.Points()
	if err != nil {
		return nil, err
	}
	return e.Compute(p.Parameters, slope, failure)
}

// Marshal encodes p as YAML.
func Marshal(p *Project) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Example returns a complete project with default parameters, suitable as a
// starting point for new projects.
func Example() *Project {
	return &Project{
		Parameters: runout.DefaultParameters(),
		SlopeProfile: TextCoordinates([]geom.Point{
			{X: 0, Y: 0}, {X: 3.5, Y: 5.2}, {X: 6.4, Y: 11.6}, {X: 7.1, Y: 16.5}, {X: 9, Y: 21.6},
			{X: 12.4, Y: 27.7}, {X: 16.5, Y: 32.3}, {X: 22.1, Y: 35.6}, {X: 28.8, Y: 36},
		}),
		FailureSurface: TextCoordinates([]geom.Point{
			{X: 6.4, Y: 11.6}, {X: 14.3, Y: 17.7}, {X: 18.6, Y: 22.9}, {X: 22.1, Y: 35.6},
		}),
	}
}
