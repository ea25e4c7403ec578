package meeting

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// AllowedExtensions are the accepted audio/video container types
var AllowedExtensions = map[string]struct{}{
	"wav": {},
	"mp3": {},
	"m4a": {},
	"ogg": {},
	"mp4": {},
}

// IsAllowed reports whether filename has an allowed extension. Names without a
// dot are rejected. Matching is case-insensitive.
func IsAllowed(filename string) bool {
	if !strings.Contains(filename, ".") {
		return false
	}
	_, ok := AllowedExtensions[strings.ToLower(extension(filename))]
	return ok
}

// SanitizeFilename reduces an uploaded filename to a safe single path
// element: directories are dropped, the name is decomposed to ASCII, runs of
// whitespace become "_" and only letters, digits, "_", "-" and "." are kept.
// When nothing usable is left, fallback is used as the base name and the
// original extension is kept.
func SanitizeFilename(filename, fallback string) string {
	name := strings.ReplaceAll(filename, `\`, "/")
	name = filepath.Base(name)
	name = norm.NFKD.String(name)

	var b strings.Builder
	lastUnderscore := false
	for _, r := range name {
		switch {
		case unicode.IsSpace(r):
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
			continue
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.'):
			b.WriteRune(r)
		}
		lastUnderscore = r == '_'
	}

	out := strings.Trim(b.String(), "._")
	if out != "" && strings.Contains(out, ".") {
		return out
	}
	// the extension is what transcription back-ends detect the format from
	if ext := extension(filename); ext != "" && IsAllowed(filename) {
		return fallback + "." + strings.ToLower(ext)
	}
	if out == "" {
		return fallback
	}
	return out
}

func extension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return filename[i+1:]
}
