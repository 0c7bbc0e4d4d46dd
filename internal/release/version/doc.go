// Package version resolves the semantic version transition a release
// operation applies to a repository, based on the latest reachable tag.
package version
