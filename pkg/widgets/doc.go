// Package widgets is the property-bound control kit: labels, buttons,
// checkboxes, sliders, fields and choice selectors whose values flow
// through bindings into an external object graph.
//
// Each control is an option struct with a Build method that creates the
// layout node, registers its hit region and attaches its binding to the
// panel. Controls are rebuilt wholesale with the tree; identity across
// rebuilds comes from the stable Key.
package widgets
