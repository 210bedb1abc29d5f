// Package selectspec turns a user-facing selection request — regex
// patterns naming leaves to exclude, fully exclude, or treat as already
// covered, plus either an explicit radius or a similarity percentage — into
// the concrete leaf-label sets and radius that prep.Prepare and
// distpolicy.New need.
package selectspec
