// Package widget composes form widgets: a field wrapped with a label, an error
// region and a writable/readonly body.
//
// Markup is produced in a fixed order: wrapper div, label (omitted when the
// label text is empty), the body chosen by the readonly flag, and the error
// container. The error container is always present; the validation message
// inside it is emitted only when error display is enabled.
//
// Label and Error merge configuration additively: nested style keys are set
// one leaf at a time and later calls win only on the keys they name.
package widget
