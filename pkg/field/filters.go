package field

// Filters is the ordered validation chain attached to a Field. Validators run
// in registration order and the first failure wins.
type Filters struct {
	validators []Validator
}

// Add appends a validator. Nil validators are ignored.
func (f *Filters) Add(v Validator) *Filters {
	if v != nil {
		f.validators = append(f.validators, v)
	}
	return f
}

// Required registers a non-empty rule reporting msg on failure.
func (f *Filters) Required(msg string) *Filters {
	return f.Add(Required(msg))
}

// MinLength registers a minimum rune length rule.
func (f *Filters) MinLength(n int, msg string) *Filters {
	return f.Add(MinLength(n, msg))
}

// MaxLength registers a maximum rune length rule.
func (f *Filters) MaxLength(n int, msg string) *Filters {
	return f.Add(MaxLength(n, msg))
}

// Pattern registers a regular expression rule.
func (f *Filters) Pattern(pattern, msg string) *Filters {
	return f.Add(Pattern(pattern, msg))
}

// Len returns the number of registered validators.
func (f *Filters) Len() int {
	return len(f.validators)
}

// Check runs the chain against value and returns the first error.
func (f *Filters) Check(value any) error {
	for _, v := range f.validators {
		if err := v.Validate(value); err != nil {
			return err
		}
	}
	return nil
}
