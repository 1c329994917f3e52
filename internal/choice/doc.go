// Package choice describes the entries of a checkbox prompt.
//
// A prompt lists Items. An Item is either a Choice, which carries a value
// the user can select, or a Separator, which only groups choices visually:
//
//	items := []choice.Item{
//	    choice.New("Pepperoni", "pepperoni"),
//	    choice.New("Ham", "ham").WithChecked(true),
//	    choice.NewSeparator("= Sauces ="),
//	    choice.New("Pesto", "pesto").WithDisabled("out of stock"),
//	}
//
// Choices are identified by their value, which must be comparable. Titles
// are either plain text or a sequence of styled spans.
//
// Loosely typed input (command line arguments, decoded TOML) is turned into
// items with Build and BuildAll, which accept strings and labeled records
// as well as ready-made items.
package choice
