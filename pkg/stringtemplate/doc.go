// Package stringtemplate formats named HTML string patterns. Patterns use
// `{{key}}` placeholders that are replaced verbatim with caller supplied
// values, plus the `{{attrs.NAME}}` form that lifts a single attribute out of
// the serialised `attrs` value so a template can merge it with its own
// markup (the usual case being `class="btn{{attrs.class}}"{{attrs}}`).
//
// Values are never escaped by the formatter; callers escape content before
// passing it in and use FormatAttributes to serialise attribute maps.
package stringtemplate
