package render

import "github.com/fatih/color"

// Style is an injectable coloring strategy for rendered output. Keeping it
// separate from the renderer lets tests assert on plain text.
type Style struct {
	Name func(string) string // styles the secret name header
	Key  func(string) string // styles the key part of a key/value line
}

// DefaultStyle colors the secret name light blue and keys light green.
// fatih/color disables itself on non-TTY output and when NO_COLOR is set.
func DefaultStyle() Style {
	name := color.New(color.FgHiBlue).SprintFunc()
	key := color.New(color.FgHiGreen).SprintFunc()
	return Style{
		Name: func(s string) string { return name(s) },
		Key:  func(s string) string { return key(s) },
	}
}

// PlainStyle renders without any styling.
func PlainStyle() Style {
	identity := func(s string) string { return s }
	return Style{Name: identity, Key: identity}
}
