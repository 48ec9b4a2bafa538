// Package config loads declarative widget documents from JSON or YAML and
// builds forms from them. A document lists widgets in render order:
//
//	widgets:
//	  - name: email
//	    kind: text
//	    type: email
//	    label: {text: E-mail, inline: true}
//	    required: Email is required
//	    error: true
//
// Mapping values keep their document key order, so label and error
// configuration is applied exactly as written.
package config
