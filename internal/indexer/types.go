package indexer

// Segment represents one retrievable passage split out of a transcript.
type Segment struct {
	Position int    // Ordinal position within the transcript (starts at 0)
	Heading  string // Heading hierarchy, e.g. "# Part 1 > ## Questions"
	Text     string
}

// TranscriptMeta holds the metadata parsed from a transcript's front matter.
type TranscriptMeta struct {
	Title     string
	Speaker   string
	SeriesID  string
	Date      string
	Reference string
}
