// Package dmg renders the background image of the disk-image installer
// window: a light vertical gradient, a title, install instructions and a
// drag arrow.
//
// The output is fully determined by the Layout and the fonts available on
// the machine. When none of the candidate fonts loads, the built-in bitmap
// face is used so generation never fails for lack of fonts.
//
// Basic usage:
//
//	g := dmg.NewGenerator()
//	if err := g.Run(); err != nil {
//		// errors.Is(err, dmg.ErrMissingCapability) means nothing was drawn
//	}
package dmg
