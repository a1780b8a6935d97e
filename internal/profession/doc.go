// Package profession holds the Profession entity, its validating factory and
// the repositories that serve it.
package profession
