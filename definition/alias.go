package definition

// AliasDefinition redirects resolution to another entry, like Laravel's
// container aliases: resolving the alias resolves the target.
type AliasDefinition struct {
	named

	Target string
}

// NewAlias builds an alias pointing at the target entry.
func NewAlias(target string) *AliasDefinition {
	return &AliasDefinition{Target: target}
}

// Kind implements Definition.
func (d *AliasDefinition) Kind() Kind { return KindAlias }
