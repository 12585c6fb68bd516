// Package numspace builds the shared numeric namespace that documentation
// examples are evaluated against: an np object of numeric constants plus a
// set of numeric functions.
package numspace

import (
	"fmt"
	"math"
	"sync"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

var (
	prepareOnce sync.Once
	namespace   *hcl.EvalContext
	prepareErr  error
)

// PrepareImports builds the numeric namespace and makes it available to
// later Namespace calls. It must be called once before any checks are
// collected; subsequent calls are no-ops returning the same result.
func PrepareImports() error {
	prepareOnce.Do(func() {
		namespace, prepareErr = build()
	})
	return prepareErr
}

// Namespace returns the evaluation context holding the numeric namespace,
// preparing it first if necessary.
func Namespace() (*hcl.EvalContext, error) {
	if err := PrepareImports(); err != nil {
		return nil, err
	}
	return namespace, nil
}

func build() (*hcl.EvalContext, error) {
	funcs := map[string]function.Function{
		"abs":   stdlib.AbsoluteFunc,
		"ceil":  stdlib.CeilFunc,
		"floor": stdlib.FloorFunc,
		"pow":   stdlib.PowFunc,
		"log":   stdlib.LogFunc,
		"min":   stdlib.MinFunc,
		"max":   stdlib.MaxFunc,
		"sqrt":  sqrtFunc,
		"sum":   sumFunc,
		"mean":  meanFunc,
	}
	for name := range funcs {
		if !hclsyntax.ValidIdentifier(name) {
			return nil, fmt.Errorf("invalid function name %q in numeric namespace", name)
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"np": cty.ObjectVal(map[string]cty.Value{
				"pi":  cty.NumberFloatVal(math.Pi),
				"e":   cty.NumberFloatVal(math.E),
				"tau": cty.NumberFloatVal(2 * math.Pi),
				"inf": cty.PositiveInfinity,
			}),
		},
		Functions: funcs,
	}, nil
}

var sqrtFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "num", Type: cty.Number},
	},
	Type: function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		num, _ := args[0].AsBigFloat().Float64()
		if num < 0 {
			return cty.NilVal, function.NewArgErrorf(0, "cannot take the square root of a negative number")
		}
		return cty.NumberFloatVal(math.Sqrt(num)), nil
	},
})

var sumFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "values", Type: cty.List(cty.Number)},
	},
	Type: function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		total := cty.Zero
		for it := args[0].ElementIterator(); it.Next(); {
			_, v := it.Element()
			total = total.Add(v)
		}
		return total, nil
	},
})

var meanFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "values", Type: cty.List(cty.Number)},
	},
	Type: function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		n := 0
		total := cty.Zero
		for it := args[0].ElementIterator(); it.Next(); {
			_, v := it.Element()
			total = total.Add(v)
			n++
		}
		if n == 0 {
			return cty.NilVal, function.NewArgErrorf(0, "cannot take the mean of an empty list")
		}
		return total.Divide(cty.NumberIntVal(int64(n))), nil
	},
})
