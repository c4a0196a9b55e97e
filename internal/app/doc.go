// Package app runs the interactive download flow: it resolves the save
// directory, asks for a URL, lets the user pick a quality and hands the
// choice to the download service.
package app
