// Package helpers emits Bootstrap 3 markup: HTML primitives (labels, badges,
// alerts, progress bars, dropdowns, breadcrumbs), forms and their controls,
// navbars, modals, panels and accordions, pagination and flash messages.
//
// Helpers share a View that carries the per-request state: configuration,
// the current request path used for active link detection, the element
// template renderer, the resolved theme and the widget registry. Every
// helper formats its markup through its own stringtemplate set so individual
// templates can be overridden from configuration.
//
// Builders returned by the navbar, modal and panel helpers record the first
// error raised by any call and report it from End.
package helpers
