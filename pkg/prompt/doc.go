// Package prompt collects widget values interactively. A PromptDriver asks the
// questions; the default driver uses AlecAivazis/survey on the controlling
// terminal.
package prompt
