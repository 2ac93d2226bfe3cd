package tntp

import "strings"

// lineKind classifies one line of a TNTP file.
type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineMetadata
	lineData
)

// parseMetadataLine classifies a header line and, for lineMetadata,
// extracts its tag (upper-cased, as written between angle brackets) and
// value (the text after the closing bracket, trimmed of leading
// whitespace and any trailing "~" comment).
//
// A line is blank if it has no content before end-of-line, a comment if
// its first significant character is "~", and metadata if it opens with
// "<"; anything else is a data line outside the metadata header.
func parseMetadataLine(line string) (kind lineKind, tag, value string, err error) {
	trimmed := strings.TrimRight(line, "\r\n")
	if trimmed == "" {
		return lineBlank, "", "", nil
	}
	if strings.HasPrefix(strings.TrimLeft(trimmed, " \t"), "~") {
		return lineComment, "", "", nil
	}
	if !strings.HasPrefix(trimmed, "<") {
		return lineData, "", "", nil
	}

	end := strings.IndexByte(trimmed, '>')
	if end < 0 {
		return lineMetadata, "", "", ErrUnclosedMetadataTag
	}
	tag = strings.ToUpper(trimmed[1:end])

	rest := trimmed[end+1:]
	if hash := strings.IndexByte(rest, '~'); hash >= 0 {
		rest = rest[:hash]
	}
	value = strings.TrimSpace(rest)

	return lineMetadata, tag, value, nil
}

// parseDataLine strips a "~"-delimited trailing comment from a data row
// and reports whether any content remains.
func parseDataLine(line string) (trimmed string, blank bool) {
	trimmed = strings.TrimRight(line, "\r\n")
	if hash := strings.IndexByte(trimmed, '~'); hash >= 0 {
		trimmed = trimmed[:hash]
	}
	trimmed = strings.TrimSpace(trimmed)

	return trimmed, trimmed == ""
}
