package models

// GeneratedArtifact represents one generated test double
type GeneratedArtifact struct {
	Identity   string       // artifact identity, e.g. "UserServiceSpy" or "User+Mock"
	Kind       ArtifactKind // the double kind that produced this artifact
	SourceName string       // name of the source declaration
	SourcePath string       // file the source declaration came from
	FileName   string       // basename of the generated file
	Content    string       // generated Swift source
}
