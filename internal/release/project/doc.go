// Package project owns the release update orchestration pipeline: it
// resolves the version transition for an operation, renders release
// identifiers, and applies the enabled repository mutations in the fixed
// order branch, commit, tag, push. Dry-run projects run the identical
// sequence against a disposable clone of the source repository's remote.
package project
