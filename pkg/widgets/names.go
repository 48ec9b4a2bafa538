package widgets

// Canonical kind names registered by NewDefaultRegistry.
const (
	KindText     = "text"
	KindPassword = "password"
	KindTextarea = "textarea"
	KindSelect   = "select"
	KindCheckbox = "checkbox"
	KindTemplate = "template"
)
