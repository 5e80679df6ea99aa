// Package api models the prebuilt JSON metadata describing the public
// surface of Quartz components, directives and plugins.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the variant of an API descriptor.
type Kind string

const (
	KindComponent Kind = "component"
	KindDirective Kind = "directive"
	KindPlugin    Kind = "plugin"
)

// Member is one named entry of an ordered collection.
type Member[T any] struct {
	Name  string
	Value T
}

// Members is a name-keyed collection that preserves the key order of the
// JSON object it was decoded from. Metadata authors control member order
// and the renderer must respect it, which rules out a plain map.
type Members[T any] []Member[T]

// UnmarshalJSON decodes a JSON object into ordered members.
func (members *Members[T]) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	openingToken, openingError := decoder.Token()
	if openingError != nil {
		return openingError
	}
	if openingToken == nil {
		*members = nil
		return nil
	}
	if delimiter, isDelimiter := openingToken.(json.Delim); !isDelimiter || delimiter != '{' {
		return fmt.Errorf("expected JSON object, got %v", openingToken)
	}
	decoded := Members[T]{}
	for decoder.More() {
		keyToken, keyError := decoder.Token()
		if keyError != nil {
			return keyError
		}
		memberName, isString := keyToken.(string)
		if !isString {
			return fmt.Errorf("expected object key, got %v", keyToken)
		}
		var memberValue T
		if decodeError := decoder.Decode(&memberValue); decodeError != nil {
			return fmt.Errorf("decode member %q: %w", memberName, decodeError)
		}
		decoded = append(decoded, Member[T]{Name: memberName, Value: memberValue})
	}
	if _, closingError := decoder.Token(); closingError != nil {
		return closingError
	}
	*members = decoded
	return nil
}

// Get returns the value stored under name.
func (members Members[T]) Get(name string) (T, bool) {
	for _, member := range members {
		if member.Name == name {
			return member.Value, true
		}
	}
	var zero T
	return zero, false
}

// Names returns the member names in declaration order.
func (members Members[T]) Names() []string {
	names := make([]string, 0, len(members))
	for _, member := range members {
		names = append(names, member.Name)
	}
	return names
}

// Filter returns a new collection holding only the members whose name
// contains substring. The receiver is left untouched.
func (members Members[T]) Filter(substring string) Members[T] {
	filtered := make(Members[T], 0, len(members))
	for _, member := range members {
		if strings.Contains(member.Name, substring) {
			filtered = append(filtered, member)
		}
	}
	return filtered
}

// TypeList is the declared type of a prop: a single type name or an
// ordered union of type names.
type TypeList []string

// UnmarshalJSON accepts either a JSON string or an array of strings.
func (typeList *TypeList) UnmarshalJSON(data []byte) error {
	var single string
	if singleError := json.Unmarshal(data, &single); singleError == nil {
		*typeList = TypeList{single}
		return nil
	}
	var union []string
	if unionError := json.Unmarshal(data, &union); unionError != nil {
		return fmt.Errorf("type must be a string or a list of strings: %w", unionError)
	}
	*typeList = TypeList(union)
	return nil
}

// Join renders the union with the given separator.
func (typeList TypeList) Join(separator string) string {
	return strings.Join([]string(typeList), separator)
}

// IsFunction reports whether the declared type is exactly Function.
func (typeList TypeList) IsFunction() bool {
	return len(typeList) == 1 && typeList[0] == "Function"
}

// Literal is a JSON scalar kept as its raw token text. Accepted values and
// defaults in the metadata may be strings, numbers, booleans or null; the
// renderer prints them verbatim.
type Literal struct {
	raw string
}

// UnmarshalJSON stores the raw token.
func (literal *Literal) UnmarshalJSON(data []byte) error {
	literal.raw = string(bytes.TrimSpace(data))
	return nil
}

// String returns the printable form: strings are unquoted, everything else
// keeps its JSON text.
func (literal Literal) String() string {
	if strings.HasPrefix(literal.raw, `"`) {
		if unquoted, unquoteError := strconv.Unquote(literal.raw); unquoteError == nil {
			return unquoted
		}
	}
	return literal.raw
}

// IsPresent reports whether the literal was set at all.
func (literal Literal) IsPresent() bool {
	return literal.raw != ""
}

// IsTruthy mirrors the authoring language's notion of truthiness: absent,
// null, false, 0 and the empty string are falsy, everything else is truthy.
func (literal Literal) IsTruthy() bool {
	switch literal.raw {
	case "", "null", "false", `""`:
		return false
	}
	if number, numberError := strconv.ParseFloat(literal.raw, 64); numberError == nil && number == 0 {
		return false
	}
	return true
}

// Prop is the recursive node describing a prop, slot, param, return value,
// scope entry or modifier. Any field may be absent.
type Prop struct {
	Type       TypeList       `json:"type,omitempty"`
	Desc       string         `json:"desc,omitempty"`
	Required   bool           `json:"required,omitempty"`
	Reactive   bool           `json:"reactive,omitempty"`
	Sync       bool           `json:"sync,omitempty"`
	Values     []Literal      `json:"values,omitempty"`
	Default    Literal        `json:"default,omitempty"`
	Link       string         `json:"link,omitempty"`
	Definition Members[*Prop] `json:"definition,omitempty"`
	Params     Members[*Prop] `json:"params,omitempty"`
	Returns    *Prop          `json:"returns,omitempty"`
	Scope      Members[*Prop] `json:"scope,omitempty"`
	Examples   *[]string      `json:"examples,omitempty"`
}

// Event describes one emitted event.
type Event struct {
	Desc   string         `json:"desc,omitempty"`
	Params Members[*Prop] `json:"params,omitempty"`
}

// Method describes one public method.
type Method struct {
	Desc    string         `json:"desc,omitempty"`
	Params  Members[*Prop] `json:"params,omitempty"`
	Returns *Prop          `json:"returns,omitempty"`
}

// ConfOptions describes the framework configuration entry a descriptor
// contributes under quartzConfOptions.
type ConfOptions struct {
	PropName   string         `json:"propName,omitempty"`
	Definition Members[*Prop] `json:"definition,omitempty"`
}

// Meta carries descriptor metadata that is not part of the API surface.
type Meta struct {
	DocsURL string `json:"docsUrl,omitempty"`
}

// ComponentAPI is the surface of a component descriptor.
type ComponentAPI struct {
	Props   Members[*Prop]   `json:"props,omitempty"`
	Slots   Members[*Prop]   `json:"slots,omitempty"`
	Events  Members[*Event]  `json:"events,omitempty"`
	Methods Members[*Method] `json:"methods,omitempty"`
}

// DirectiveAPI is the surface of a directive descriptor.
type DirectiveAPI struct {
	Value     *Prop          `json:"value,omitempty"`
	Arg       *Prop          `json:"arg,omitempty"`
	Modifiers Members[*Prop] `json:"modifiers,omitempty"`
}

// PluginAPI is the surface of a plugin descriptor.
type PluginAPI struct {
	Injection string           `json:"injection,omitempty"`
	Props     Members[*Prop]   `json:"props,omitempty"`
	Methods   Members[*Method] `json:"methods,omitempty"`
}

// Descriptor is a tagged variant over the three descriptor kinds. Exactly
// one of Component, Directive and Plugin is non-nil, matching Kind.
type Descriptor struct {
	Name        string
	Kind        Kind
	Component   *ComponentAPI
	Directive   *DirectiveAPI
	Plugin      *PluginAPI
	ConfOptions *ConfOptions
	Meta        Meta
}

type descriptorJSON struct {
	Type Kind `json:"type"`

	Props   Members[*Prop]   `json:"props,omitempty"`
	Slots   Members[*Prop]   `json:"slots,omitempty"`
	Events  Members[*Event]  `json:"events,omitempty"`
	Methods Members[*Method] `json:"methods,omitempty"`

	Value     *Prop          `json:"value,omitempty"`
	Arg       *Prop          `json:"arg,omitempty"`
	Modifiers Members[*Prop] `json:"modifiers,omitempty"`

	Injection string `json:"injection,omitempty"`

	ConfOptions *ConfOptions `json:"quartzConfOptions,omitempty"`
	Meta        Meta         `json:"meta,omitempty"`
}

// UnmarshalJSON decodes the flat metadata shape and selects the variant by
// the type tag. An unrecognized tag is a load error, not a render concern.
func (descriptor *Descriptor) UnmarshalJSON(data []byte) error {
	var shape descriptorJSON
	if decodeError := json.Unmarshal(data, &shape); decodeError != nil {
		return decodeError
	}
	decoded := Descriptor{
		Kind:        shape.Type,
		ConfOptions: shape.ConfOptions,
		Meta:        shape.Meta,
	}
	switch shape.Type {
	case KindComponent:
		decoded.Component = &ComponentAPI{
			Props:   shape.Props,
			Slots:   shape.Slots,
			Events:  shape.Events,
			Methods: shape.Methods,
		}
	case KindDirective:
		decoded.Directive = &DirectiveAPI{
			Value:     shape.Value,
			Arg:       shape.Arg,
			Modifiers: shape.Modifiers,
		}
	case KindPlugin:
		decoded.Plugin = &PluginAPI{
			Injection: shape.Injection,
			Props:     shape.Props,
			Methods:   shape.Methods,
		}
	default:
		return fmt.Errorf("unknown descriptor type %q", shape.Type)
	}
	*descriptor = decoded
	return nil
}
