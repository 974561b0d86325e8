// Package testsupport holds fixtures shared by package tests: in-memory
// template trees wired to a locator and a pongo2 loader, plus golden file
// helpers.
package testsupport
