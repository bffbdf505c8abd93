package wizard

import "brigada/internal/log"

// Outcome classifies the result of a Submit call.
type Outcome int

const (
	// OutcomeRefused means validation failed and the pointer did not move.
	OutcomeRefused Outcome = iota
	// OutcomeAdvanced means the section passed and the next one is active.
	OutcomeAdvanced
	// OutcomeCompleted means the final section passed; the wizard is
	// terminal and only report generation or a reset follow.
	OutcomeCompleted
)

// Controller owns the active-section pointer and the published field
// errors. Exactly one section is active at any time; transitions are gated
// on the validation engine.
type Controller struct {
	active   int
	errors   FieldErrors
	terminal bool
}

// NewController starts a session on the first section with no errors.
func NewController() *Controller {
	return &Controller{errors: FieldErrors{}}
}

// Active returns the currently active section.
func (c *Controller) Active() Section {
	return sections[c.active]
}

// Errors returns the field errors published by the last refused
// transition. Empty when the last transition succeeded.
func (c *Controller) Errors() FieldErrors {
	return c.errors
}

// ClearError optimistically drops a single field's error, used when the
// user starts editing that field.
func (c *Controller) ClearError(field string) {
	delete(c.errors, field)
}

// Terminal reports whether the final section's submit has passed.
func (c *Controller) Terminal() bool {
	return c.terminal
}

// GoTo validates the active section against values and, on success, makes
// the target section active. On failure the pointer stays put, the errors
// are published, and false is returned. Unknown targets are refused.
func (c *Controller) GoTo(targetID string, values map[string]string) bool {
	target := sectionIndex(targetID)
	if target < 0 {
		return false
	}

	errs := Validate(sections[c.active], values)
	if len(errs) > 0 {
		c.errors = errs
		log.Debug(log.CatWizard, "Navigation refused", "from", sections[c.active].ID, "to", targetID, "errors", len(errs))
		return false
	}

	c.errors = FieldErrors{}
	c.active = target
	return true
}

// Submit validates the active section. On the final section it marks the
// wizard terminal; otherwise it advances to the next section. Validation
// failure refuses the transition and publishes the errors.
func (c *Controller) Submit(values map[string]string) Outcome {
	errs := Validate(sections[c.active], values)
	if len(errs) > 0 {
		c.errors = errs
		return OutcomeRefused
	}
	c.errors = FieldErrors{}

	if c.active == len(sections)-1 {
		c.terminal = true
		log.Info(log.CatWizard, "Form completed", "sections", len(sections))
		return OutcomeCompleted
	}

	c.active++
	return OutcomeAdvanced
}

// Reset returns the controller to a fresh session: first section active,
// no errors, terminal flag cleared.
func (c *Controller) Reset() {
	c.active = 0
	c.errors = FieldErrors{}
	c.terminal = false
}
