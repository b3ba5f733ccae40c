package runner

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Sentinel errors for case loading and dispatch.
var (
	// ErrInvalidCase indicates a case whose fields violate their constraints.
	ErrInvalidCase = errors.New("runner: invalid case")
	// ErrDuplicateCase indicates two cases with the same name.
	ErrDuplicateCase = errors.New("runner: duplicate case name")
	// ErrUnknownSolver indicates a case naming an unregistered solver.
	ErrUnknownSolver = errors.New("runner: unknown solver")
	// ErrMissingField indicates a solver input the case does not provide.
	ErrMissingField = errors.New("runner: missing field")
)

// Case is one problem instance. Pointer fields distinguish "unset" from zero.
type Case struct {
	Name     string   `hcl:"name,label" validate:"required"`
	Solver   string   `hcl:"solver" validate:"required"`
	Ints     []int    `hcl:"ints,optional"`
	Target   *int     `hcl:"target,optional"`
	K        *int     `hcl:"k,optional"`
	N        *int     `hcl:"n,optional"`
	Rows     *int     `hcl:"rows,optional" validate:"omitempty,min=0"`
	Cols     *int     `hcl:"cols,optional" validate:"omitempty,min=0"`
	Src      *int     `hcl:"src,optional" validate:"omitempty,min=0"`
	Dst      *int     `hcl:"dst,optional" validate:"omitempty,min=0"`
	Text     *string  `hcl:"text,optional"`
	Pattern  *string  `hcl:"pattern,optional"`
	Begin    *string  `hcl:"begin,optional"`
	End      *string  `hcl:"end,optional"`
	Words    []string `hcl:"words,optional"`
	Pairs    [][]int  `hcl:"pairs,optional" validate:"omitempty,dive,len=2"`
	Interval []int    `hcl:"interval,optional" validate:"omitempty,len=2"`
	Grid     []string `hcl:"grid,optional" validate:"omitempty,dive,min=1"`
	Matrix   [][]int  `hcl:"matrix,optional" validate:"omitempty,dive,min=1"`
	Tree     []*int   `hcl:"tree,optional"`
	Expect   *string  `hcl:"expect,optional"`
}

type caseFile struct {
	Cases []*Case `hcl:"case,block"`
}

var validate = validator.New()

// functions is the expression function table available in case files.
var functions = map[string]function.Function{
	"range":      stdlib.RangeFunc,
	"concat":     stdlib.ConcatFunc,
	"reverse":    stdlib.ReverseListFunc,
	"upper":      stdlib.UpperFunc,
	"lower":      stdlib.LowerFunc,
	"split":      stdlib.SplitFunc,
	"join":       stdlib.JoinFunc,
	"length":     stdlib.LengthFunc,
	"sort":       stdlib.SortFunc,
	"distinct":   stdlib.DistinctFunc,
	"flatten":    stdlib.FlattenFunc,
	"jsonencode": stdlib.JSONEncodeFunc,
}

// LoadFile reads and decodes the case file at path.
func LoadFile(path string) ([]*Case, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("runner: read %s: %w", path, err)
	}

	return Load(src, path)
}

// Load decodes HCL source into cases, in file order. filename is used in
// diagnostics only.
//
// Steps:
//  1. Parse and decode with the function table.
//  2. Validate each case's field constraints.
//  3. Reject duplicate names and unregistered solvers.
func Load(src []byte, filename string) ([]*Case, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("runner: parse %s: %w", filename, diags)
	}

	var parsed caseFile
	ectx := &hcl.EvalContext{Functions: functions}
	if diags = gohcl.DecodeBody(file.Body, ectx, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("runner: decode %s: %w", filename, diags)
	}

	seen := make(map[string]struct{}, len(parsed.Cases))
	for _, c := range parsed.Cases {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCase, c.Name)
		}
		seen[c.Name] = struct{}{}
		if _, ok := registry[c.Solver]; !ok {
			return nil, fmt.Errorf("%w: %q in case %q", ErrUnknownSolver, c.Solver, c.Name)
		}
	}

	return parsed.Cases, nil
}

// Validate checks the struct constraints of c.
func (c *Case) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w %q: %w", ErrInvalidCase, c.Name, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
	}

	return fmt.Errorf("%w %q: %s", ErrInvalidCase, c.Name, strings.Join(msgs, "; "))
}
