// Package gitrepo exposes repository access and the git mutation primitives
// used by the release orchestrator: opening and cloning repositories,
// resolving remote URLs, and creating branches, commits, and tags.
package gitrepo
