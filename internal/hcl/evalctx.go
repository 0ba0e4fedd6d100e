package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext exposes `mode`, `env` and a small function set to
// configuration expressions, e.g. `dist_dir = format("dist-%s", mode)` or
// `port = lookup(env, "PORT", "9000")`.
func newEvalContext(mode string, env map[string]string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"mode": cty.StringVal(mode),
			"env":  envValue(env),
		},
		Functions: map[string]function.Function{
			"upper":    stdlib.UpperFunc,
			"lower":    stdlib.LowerFunc,
			"format":   stdlib.FormatFunc,
			"join":     stdlib.JoinFunc,
			"coalesce": stdlib.CoalesceFunc,
			"lookup":   stdlib.LookupFunc,
		},
	}
}

func envValue(env map[string]string) cty.Value {
	if len(env) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	vals := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vals[k] = cty.StringVal(v)
	}
	return cty.MapVal(vals)
}
