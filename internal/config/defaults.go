package config

import "time"

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# releasekit configuration
# Values here are defaults for command flags; flags always win.

changelog_path: CHANGELOG.md          # Changelog used when --file-path is omitted
manifest_path: ./pubspec.yaml         # Manifest bumped by set-flutter-version
unversioned_title: Unversioned        # Heading promoted by update-changelog
placeholder_entry: "-"                # Entry written under the new Unversioned heading
lenient: false                        # Read commands print nothing on missing/ambiguous sections
vcs_backend: go-git                   # Branch creation backend: go-git | git-cli
git_timeout: 30s                      # Max duration for branch creation (0 = no timeout)
                                      # go-git: checked before checkout; git-cli: kills git
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"changelog_path":    "CHANGELOG.md",
		"manifest_path":     "./pubspec.yaml",
		"unversioned_title": "Unversioned",
		"placeholder_entry": "-",
		"lenient":           false,
		"vcs_backend":       "go-git",
		"git_timeout":       (30 * time.Second).String(),
	}
}
