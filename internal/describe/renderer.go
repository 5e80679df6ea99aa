package describe

import (
	"fmt"
	"io"
	"strings"

	"github.com/quartzui/quartz-cli/internal/api"
)

const (
	sectionIndent = 1
	memberIndent  = 3

	syncNoticeText      = "Requires the .sync modifier to be used"
	docsFallbackMessage = "*No documentation URL available, please report this issue to the API supplier*"
	listBullet          = "*"
)

// Renderer writes descriptor reports to a single output stream. Selection
// and filter are passed per call; the renderer keeps no request state.
type Renderer struct {
	writer io.Writer
	styles Styles
}

// NewRenderer builds a renderer targeting writer.
func NewRenderer(writer io.Writer, styles Styles) *Renderer {
	return &Renderer{writer: writer, styles: styles}
}

// Render writes the report for one descriptor. Sections appear in the
// kind's fixed order, each only if selected; the documentation URL renders
// unconditionally when present. The descriptor is never mutated: filtering
// works on copies.
func (renderer *Renderer) Render(descriptor *api.Descriptor, supplier api.Supplier, selection PartsSelection, memberFilter string) {
	selection = selection.Effective()

	renderer.line(sectionIndent, fmt.Sprintf("Describing %s %s API", renderer.styles.Name(descriptor.Name), descriptor.Kind))
	if supplier != api.SupplierFramework {
		renderer.line(sectionIndent, fmt.Sprintf("Supplied by the %q app extension", supplier))
	}

	switch descriptor.Kind {
	case api.KindComponent:
		component := descriptor.Component
		if selection.Quartz {
			renderer.renderConfOptions(descriptor.ConfOptions, memberFilter)
		}
		if selection.Props {
			renderer.renderPropSection("Properties", "properties", component.Props, memberFilter)
		}
		if selection.Slots {
			renderer.renderPropSection("Slots", "slots", component.Slots, memberFilter)
		}
		if selection.Events {
			renderer.renderEvents(component.Events, memberFilter)
		}
		if selection.Methods {
			renderer.renderMethods(component.Methods, memberFilter)
		}
	case api.KindDirective:
		directive := descriptor.Directive
		if selection.Quartz {
			renderer.renderConfOptions(descriptor.ConfOptions, memberFilter)
		}
		if selection.Value {
			renderer.renderScalarProp("Value", "value", directive.Value)
		}
		if selection.Arg {
			renderer.renderScalarProp("Arg", "arg", directive.Arg)
		}
		if selection.Modifiers {
			renderer.renderPropSection("Modifiers", "modifiers", directive.Modifiers, memberFilter)
		}
	case api.KindPlugin:
		plugin := descriptor.Plugin
		if selection.Injection {
			renderer.renderInjection(plugin.Injection)
		}
		if selection.Quartz {
			renderer.renderConfOptions(descriptor.ConfOptions, memberFilter)
		}
		if selection.Props {
			renderer.renderPropSection("Properties", "properties", plugin.Props, memberFilter)
		}
		if selection.Methods {
			renderer.renderMethods(plugin.Methods, memberFilter)
		}
	}

	renderer.renderDocs(descriptor.Meta, selection.Docs)
}

// RenderList prints every known API entry name containing filter
// (case-insensitively), preserving the supplied order.
func RenderList(writer io.Writer, styles Styles, names []string, filter string) {
	needle := strings.ToLower(filter)
	matched := 0
	for _, name := range names {
		if needle != "" && !strings.Contains(strings.ToLower(name), needle) {
			continue
		}
		fmt.Fprintf(writer, " %s %s\n", listBullet, name)
		matched++
	}
	if matched == 0 {
		fmt.Fprintln(writer, " "+styles.Placeholder(fmt.Sprintf("Nothing matches %q", filter)))
	}
}

func (renderer *Renderer) line(indent int, text string) {
	fmt.Fprintf(renderer.writer, "%s%s\n", strings.Repeat(" ", indent), text)
}

func (renderer *Renderer) sectionHeader(title string) {
	fmt.Fprintln(renderer.writer)
	renderer.line(sectionIndent, renderer.styles.Header(title))
	fmt.Fprintln(renderer.writer)
}

func (renderer *Renderer) placeholder(noun string) {
	renderer.line(memberIndent, renderer.styles.Placeholder("*No "+noun+"*"))
}

func (renderer *Renderer) noMatchPlaceholder(noun string) {
	renderer.line(memberIndent, renderer.styles.Placeholder("*No matching "+noun+"*"))
}

// filteredMembers applies the member filter to a fresh view of members.
// The second result is false when the section should short-circuit to a
// placeholder.
func filteredMembers[T any](renderer *Renderer, noun string, members api.Members[T], memberFilter string) (api.Members[T], bool) {
	if len(members) == 0 {
		renderer.placeholder(noun)
		return nil, false
	}
	if memberFilter == "" {
		return members, true
	}
	remaining := members.Filter(memberFilter)
	if len(remaining) == 0 {
		renderer.noMatchPlaceholder(noun)
		return nil, false
	}
	return remaining, true
}

func (renderer *Renderer) renderPropSection(title string, noun string, members api.Members[*api.Prop], memberFilter string) {
	renderer.sectionHeader(title)
	remaining, render := filteredMembers(renderer, noun, members, memberFilter)
	if !render {
		return
	}
	for index, member := range remaining {
		if index > 0 {
			fmt.Fprintln(renderer.writer)
		}
		renderer.printProp(member.Value, member.Name, memberIndent)
	}
}

func (renderer *Renderer) renderEvents(events api.Members[*api.Event], memberFilter string) {
	renderer.sectionHeader("Events")
	remaining, render := filteredMembers(renderer, "events", events, memberFilter)
	if !render {
		return
	}
	for index, member := range remaining {
		if index > 0 {
			fmt.Fprintln(renderer.writer)
		}
		event := member.Value
		renderer.line(memberIndent, renderer.styles.Name("@"+member.Name)+" -> "+formatEventSignature(event))
		renderer.line(memberIndent+2, event.Desc)
		renderer.printParams(event.Params, memberIndent+2)
	}
}

func (renderer *Renderer) renderMethods(methods api.Members[*api.Method], memberFilter string) {
	renderer.sectionHeader("Methods")
	remaining, render := filteredMembers(renderer, "methods", methods, memberFilter)
	if !render {
		return
	}
	for index, member := range remaining {
		if index > 0 {
			fmt.Fprintln(renderer.writer)
		}
		method := member.Value
		renderer.line(memberIndent, renderer.styles.Name(member.Name)+" "+formatMethodSignature(method))
		renderer.line(memberIndent+2, method.Desc)
		renderer.printParams(method.Params, memberIndent+2)
		renderer.printReturns(method.Returns, memberIndent+2)
	}
}

func (renderer *Renderer) renderScalarProp(title string, noun string, prop *api.Prop) {
	renderer.sectionHeader(title)
	if prop == nil {
		renderer.placeholder(noun)
		return
	}
	renderer.printProp(prop, "", memberIndent)
}

func (renderer *Renderer) renderInjection(injection string) {
	renderer.sectionHeader("Injection")
	if injection == "" {
		renderer.placeholder("injection")
		return
	}
	renderer.line(memberIndent, injection)
}

func (renderer *Renderer) renderConfOptions(options *api.ConfOptions, memberFilter string) {
	renderer.sectionHeader("Quartz Config Options")
	if options == nil || len(options.Definition) == 0 {
		renderer.placeholder("configuration options")
		return
	}
	remaining, render := filteredMembers(renderer, "configuration options", options.Definition, memberFilter)
	if !render {
		return
	}
	if options.PropName != "" {
		renderer.line(memberIndent, "Configuration key: "+renderer.styles.Name(options.PropName))
		fmt.Fprintln(renderer.writer)
	}
	for index, member := range remaining {
		if index > 0 {
			fmt.Fprintln(renderer.writer)
		}
		renderer.printProp(member.Value, member.Name, memberIndent)
	}
}

func (renderer *Renderer) renderDocs(meta api.Meta, docsRequested bool) {
	if meta.DocsURL != "" {
		renderer.sectionHeader("Documentation URL")
		renderer.line(memberIndent, renderer.styles.Link(meta.DocsURL))
		return
	}
	if docsRequested {
		fmt.Fprintln(renderer.writer)
		renderer.line(sectionIndent, renderer.styles.Placeholder(docsFallbackMessage))
	}
}

// printProp is the recursive rendering primitive shared by every section.
// Every field is optional; absence is never an error.
func (renderer *Renderer) printProp(prop *api.Prop, name string, indent int) {
	if prop == nil {
		return
	}
	if name != "" {
		headline := renderer.styles.Name(name)
		if len(prop.Type) > 0 {
			headline += " (" + prop.Type.Join(" | ") + ")"
		}
		if prop.Required && !prop.Type.IsFunction() {
			headline += " " + renderer.styles.Annotation("[Required]")
		}
		if prop.Reactive {
			headline += " " + renderer.styles.Annotation("[Reactive]")
		}
		renderer.line(indent, headline)
		indent += 2
	}

	renderer.line(indent, prop.Desc)

	if prop.Type.IsFunction() {
		renderer.line(indent, formatFunctionSignature(prop))
	}
	if prop.Sync {
		renderer.line(indent, syncNoticeText)
	}
	if prop.Link != "" {
		renderer.line(indent, renderer.styles.Link(prop.Link))
	}
	if len(prop.Values) > 0 {
		renderer.line(indent, "Accepted values: "+joinLiterals(prop.Values))
	}
	if prop.Default.IsTruthy() {
		renderer.line(indent, "Default value: "+prop.Default.String())
	}
	if len(prop.Definition) > 0 {
		renderer.line(indent, "Props:")
		for _, member := range prop.Definition {
			renderer.printProp(member.Value, member.Name, indent+2)
		}
	}
	renderer.printParams(prop.Params, indent)
	renderer.printReturns(prop.Returns, indent)
	if len(prop.Scope) > 0 {
		renderer.line(indent, "Scope:")
		for _, member := range prop.Scope {
			renderer.printProp(member.Value, member.Name, indent+2)
		}
	}
	if prop.Examples != nil {
		renderer.line(indent, exampleHeader(len(*prop.Examples)))
		for _, example := range *prop.Examples {
			renderer.line(indent+2, example)
		}
	}
}

func (renderer *Renderer) printParams(params api.Members[*api.Prop], indent int) {
	if len(params) == 0 {
		return
	}
	renderer.line(indent, "Params:")
	for _, member := range params {
		renderer.printProp(member.Value, member.Name, indent+2)
	}
}

func (renderer *Renderer) printReturns(returns *api.Prop, indent int) {
	if returns == nil {
		return
	}
	renderer.line(indent, "Returns "+returnType(returns)+":")
	renderer.printProp(returns, "", indent+2)
}

func exampleHeader(count int) string {
	if count > 1 {
		return "Examples:"
	}
	return "Example:"
}

func joinLiterals(values []api.Literal) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, value.String())
	}
	return strings.Join(parts, " | ")
}
