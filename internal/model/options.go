package model

import "github.com/rs/zerolog"

// Options configures the behaviour of the Compiler. Options are constructed by
// the public adapter in pkg/model and passed into New.
type Options struct {
	Labeler func(string) string
	Logger  *zerolog.Logger
}

func defaultOptions() Options {
	nop := zerolog.Nop()
	return Options{
		Labeler: DefaultLabeler,
		Logger:  &nop,
	}
}
