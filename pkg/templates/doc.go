// Package templates renders file based element templates (flash messages,
// page layouts) through the github.com/goliatone/go-template pongo2 engine.
// Helpers depend on the TemplateRenderer interface so any compatible engine
// can be handed in.
package templates
