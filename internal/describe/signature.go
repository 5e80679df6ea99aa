package describe

import (
	"strings"

	"github.com/quartzui/quartz-cli/internal/api"
)

const voidReturnType = "void 0"

// formatEventSignature renders an event as a handler signature listing the
// declared parameter names in order.
func formatEventSignature(event *api.Event) string {
	return "function(" + strings.Join(event.Params.Names(), ", ") + ")"
}

// formatMethodSignature renders a method's parameter list and return type.
// Parameters before the first non-required one are listed bare; the rest is
// wrapped in a single bracket group. Metadata is authored with one
// contiguous optional tail, so a required parameter after an optional one
// still lands inside the bracket group.
func formatMethodSignature(method *api.Method) string {
	return formatParameterGroup(method.Params) + " => " + returnType(method.Returns)
}

// formatFunctionSignature renders a function-typed prop's call signature
// with no optional-bracket annotation.
func formatFunctionSignature(prop *api.Prop) string {
	return "(" + strings.Join(prop.Params.Names(), ", ") + ") => " + returnType(prop.Returns)
}

func formatParameterGroup(params api.Members[*api.Prop]) string {
	if len(params) == 0 {
		return "()"
	}
	names := params.Names()
	firstOptional := len(params)
	for index, parameter := range params {
		if parameter.Value == nil || !parameter.Value.Required {
			firstOptional = index
			break
		}
	}
	if firstOptional == len(params) {
		return "(" + strings.Join(names, ", ") + ")"
	}
	optionalGroup := strings.Join(names[firstOptional:], ", ")
	if firstOptional == 0 {
		return "([" + optionalGroup + "])"
	}
	return "(" + strings.Join(names[:firstOptional], ", ") + " [, " + optionalGroup + "])"
}

func returnType(returns *api.Prop) string {
	if returns == nil || len(returns.Type) == 0 {
		return voidReturnType
	}
	return returns.Type.Join(" | ")
}
