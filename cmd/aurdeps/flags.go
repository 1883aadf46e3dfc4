package main

import (
	"fmt"
	"strconv"

	"github.com/augmented-unreality/aurdeps/internal/messages"
)

// explicitBool is a boolean flag that always takes a value, as in "--libs false".
// Unlike pflag's bool, a bare "--libs" is rejected instead of consuming nothing.
type explicitBool bool

func newExplicitBool(value bool, p *bool) *explicitBool {
	*p = value
	return (*explicitBool)(p)
}

func (b *explicitBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf(messages.FlagBoolInvalidFmt, s)
	}
	*b = explicitBool(v)
	return nil
}

func (b *explicitBool) String() string {
	return strconv.FormatBool(bool(*b))
}

func (b *explicitBool) Type() string {
	return "true|false"
}
