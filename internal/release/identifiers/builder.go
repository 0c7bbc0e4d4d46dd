// Package identifiers renders the derived strings a release uses: branch
// name, commit message, tag name, and remote name. Rendering is pure and
// deterministic for identical inputs.
package identifiers

import (
	"strings"

	"github.com/relcut/relcut/internal/release/version"
)

const (
	versionPlaceholderConstant         = "{version}"
	previousVersionPlaceholderConstant = "{previous_version}"
)

// Templates holds the configurable patterns identifiers are rendered from.
// The {version} placeholder expands to the new version and the
// {previous_version} placeholder to the version being replaced.
type Templates struct {
	BranchTemplate        string
	CommitMessageTemplate string
	TagTemplate           string
	RemoteName            string
}

// ReleaseIdentifiers carries the rendered strings for a single update call.
type ReleaseIdentifiers struct {
	BranchName    string
	CommitMessage string
	TagName       string
	RemoteName    string
}

// Builder renders release identifiers from templates and a version transition.
type Builder struct{}

// NewBuilder constructs a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Render expands the templates against the supplied version transition.
func (builder *Builder) Render(templates Templates, versionUpdate version.VersionUpdate) ReleaseIdentifiers {
	return ReleaseIdentifiers{
		BranchName:    builder.expand(templates.BranchTemplate, versionUpdate),
		CommitMessage: builder.expand(templates.CommitMessageTemplate, versionUpdate),
		TagName:       builder.expand(templates.TagTemplate, versionUpdate),
		RemoteName:    strings.TrimSpace(templates.RemoteName),
	}
}

func (builder *Builder) expand(template string, versionUpdate version.VersionUpdate) string {
	expanded := strings.ReplaceAll(template, versionPlaceholderConstant, versionUpdate.Next.String())
	expanded = strings.ReplaceAll(expanded, previousVersionPlaceholderConstant, versionUpdate.Previous.String())
	return strings.TrimSpace(expanded)
}
