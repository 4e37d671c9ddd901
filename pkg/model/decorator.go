package model

// Decorator adjusts a compiled form before it reaches the form state, for
// example to relabel fields or disable some of them for a given audience.
type Decorator interface {
	Decorate(*Form) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*Form) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(form *Form) error {
	return fn(form)
}

// DisableFields marks the named fields disabled. Unknown names are ignored.
func DisableFields(keys ...string) Decorator {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return DecoratorFunc(func(form *Form) error {
		for i := range form.Fields {
			if _, ok := set[form.Fields[i].Key]; ok {
				form.Fields[i].Disabled = true
			}
		}
		return nil
	})
}
