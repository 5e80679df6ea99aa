// Package describe renders human-readable reports of Quartz API
// descriptors.
package describe

// PartsSelection is the set of descriptor sections a describe invocation
// asked for.
type PartsSelection struct {
	Props     bool
	Slots     bool
	Methods   bool
	Events    bool
	Value     bool
	Arg       bool
	Modifiers bool
	Injection bool
	Quartz    bool
	Docs      bool
}

// anyExplicit reports whether at least one part was requested.
func (selection PartsSelection) anyExplicit() bool {
	return selection.Props || selection.Slots || selection.Methods ||
		selection.Events || selection.Value || selection.Arg ||
		selection.Modifiers || selection.Injection || selection.Quartz ||
		selection.Docs
}

// Effective applies the default rule: when no part flag was given, every
// part except docs is selected; otherwise the selection is exactly the set
// of requested parts.
func (selection PartsSelection) Effective() PartsSelection {
	if selection.anyExplicit() {
		return selection
	}
	return PartsSelection{
		Props:     true,
		Slots:     true,
		Methods:   true,
		Events:    true,
		Value:     true,
		Arg:       true,
		Modifiers: true,
		Injection: true,
		Quartz:    true,
	}
}
