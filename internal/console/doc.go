// Package console is the interactive surface of the app: a Console asks the
// user for input and tells them things. Terminal is the colored stdin/stdout
// implementation; Catalog holds the localized UI texts.
package console
