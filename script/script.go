// Package script applies edit scripts written in YAML to paths.
//
// A script names an optional source path and a list of operations that map
// one to one onto vpath.Mutator methods:
//
//	path: "M 0 0 L 10 10 L 20 20"
//	ops:
//	  - op: split
//	    subpath: 0
//	    command: 1
//	    t: [0.5]
//	  - op: reverse
//	    subpath: 0
//	  - op: transform
//	    translate: [5, 0]
//
// All operations run on a single Mutator, so the first failing operation
// aborts the script.
package script

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/vpath"
)

// ErrUnknownOp is returned for operation names the script runner does not know.
var ErrUnknownOp = errors.New("script: unknown operation")

// ErrNoPath is returned when a script without a path is run without one.
var ErrNoPath = errors.New("script: no path to edit")

// Script is a decoded edit script.
type Script struct {
	Path string `yaml:"path"`
	Ops  []Op   `yaml:"ops"`
}

// Op is one edit operation. Which fields are used depends on Op.
type Op struct {
	Op       string    `yaml:"op"`
	SubPath  int       `yaml:"subpath"`
	Command  int       `yaml:"command"`
	Commands []int     `yaml:"commands"`
	T        []float64 `yaml:"t"`
	Count    int       `yaml:"count"`
	Verb     string    `yaml:"verb"`
	From     int       `yaml:"from"`
	To       int       `yaml:"to"`
	Point    []float64 `yaml:"point"`

	// Transform operations. Matrix holds a, b, c, d, e, f with
	// x' = a*x + b*y + c and y' = d*x + e*y + f. The parts present are
	// applied in the order matrix, scale, rotate, translate.
	Matrix    []float64 `yaml:"matrix"`
	Scale     []float64 `yaml:"scale"`
	Rotate    float64   `yaml:"rotate"` // degrees
	Translate []float64 `yaml:"translate"`
	Replace   bool      `yaml:"replace"` // replace instead of adding to existing transforms
}

// Decode reads a script. Unknown keys are rejected.
func Decode(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("script: %w", err)
	}
	return &s, nil
}

// Load reads the script file at path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Run parses the script's own path and applies the operations to it.
func (s *Script) Run() (*vpath.Path, error) {
	if s.Path == "" {
		return nil, ErrNoPath
	}
	p, err := vpath.Parse(s.Path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return s.Apply(p)
}

// Apply applies the operations to p and returns the edited path.
func (s *Script) Apply(p *vpath.Path) (*vpath.Path, error) {
	if p == nil {
		return nil, ErrNoPath
	}
	m := p.Mutate()
	for i, op := range s.Ops {
		if err := op.apply(m); err != nil {
			return nil, fmt.Errorf("script: op %d (%s): %w", i, op.Op, err)
		}
		if err := m.Err(); err != nil {
			return nil, fmt.Errorf("script: op %d (%s): %w", i, op.Op, err)
		}
		vpath.Logger().Debug("script: applied op", "index", i, "op", op.Op)
	}
	return m.Build()
}

func (op Op) apply(m *vpath.Mutator) error {
	switch op.Op {
	case "reverse":
		m.ReverseSubPath(op.SubPath)
	case "shift-forward":
		m.ShiftSubPathForward(op.SubPath, countOrOne(op.Count))
	case "shift-back":
		m.ShiftSubPathBack(op.SubPath, countOrOne(op.Count))
	case "split":
		if len(op.T) == 0 {
			m.SplitCommandInHalf(op.SubPath, op.Command)
		} else {
			m.SplitCommand(op.SubPath, op.Command, op.T...)
		}
	case "split-batch":
		m.SplitBatch(op.SubPath, op.Commands...)
	case "unsplit":
		m.UnsplitCommand(op.SubPath, op.Command)
	case "convert":
		v, err := parseVerb(op.Verb)
		if err != nil {
			return err
		}
		if len(op.Commands) > 0 {
			m.ConvertBatch(op.SubPath, v, op.Commands...)
		} else {
			m.ConvertCommand(op.SubPath, op.Command, v)
		}
	case "unconvert":
		m.UnconvertSubPath(op.SubPath)
	case "transform":
		t, err := op.transform()
		if err != nil {
			return err
		}
		if op.Replace {
			m.SetTransforms(t)
		} else {
			m.AddTransforms(t)
		}
	case "move":
		m.MoveSubPath(op.From, op.To)
	case "add-collapsing":
		if len(op.Point) != 2 {
			return fmt.Errorf("point needs 2 coordinates, got %d", len(op.Point))
		}
		m.AddCollapsingSubPath(vpath.Pt(op.Point[0], op.Point[1]), countOrOne(op.Count))
	case "delete-collapsing":
		m.DeleteCollapsingSubPaths()
	case "revert":
		m.Revert()
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, op.Op)
	}
	return nil
}

func countOrOne(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

func parseVerb(s string) (vpath.Verb, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", vpath.ErrUnknownVerb, s)
	}
	return vpath.ParseVerb(s[0])
}

func (op Op) transform() (vpath.Matrix, error) {
	m := vpath.Identity()
	if op.Matrix != nil {
		if len(op.Matrix) != 6 {
			return m, fmt.Errorf("matrix needs 6 values, got %d", len(op.Matrix))
		}
		a := op.Matrix
		m = vpath.Matrix{A: a[0], B: a[1], C: a[2], D: a[3], E: a[4], F: a[5]}
	}
	if op.Scale != nil {
		switch len(op.Scale) {
		case 1:
			m = m.Then(vpath.Scale(op.Scale[0], op.Scale[0]))
		case 2:
			m = m.Then(vpath.Scale(op.Scale[0], op.Scale[1]))
		default:
			return m, fmt.Errorf("scale needs 1 or 2 values, got %d", len(op.Scale))
		}
	}
	if op.Rotate != 0 {
		m = m.Then(vpath.Rotate(op.Rotate * math.Pi / 180))
	}
	if op.Translate != nil {
		if len(op.Translate) != 2 {
			return m, fmt.Errorf("translate needs 2 values, got %d", len(op.Translate))
		}
		m = m.Then(vpath.Translate(op.Translate[0], op.Translate[1]))
	}
	return m, nil
}
