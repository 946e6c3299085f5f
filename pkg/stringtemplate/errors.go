package stringtemplate

import "errors"

var (
	// ErrTemplateNotFound is returned (wrapped) when a template name is not
	// registered.
	ErrTemplateNotFound = errors.New("stringtemplate: template not found")
	// ErrEmptyStack is returned by Pop when no template set was pushed.
	ErrEmptyStack = errors.New("stringtemplate: template stack is empty")
)
