// Package match suggests close names for misspelled stage categories.
package match
