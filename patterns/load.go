package patterns

import (
	"os"
	"regexp"
	"strings"
)

// declarationLine matches a NAME = PATTERN declaration. The name half is
// non-greedy so the split happens at the first "=", letting the pattern
// half itself contain "=" (e.g. "EQ = =").
var declarationLine = regexp.MustCompile(`^(.+?)\s*=\s*(.*)$`)

// Load parses a lexical specification: one NAME = PATTERN declaration per
// nonblank line. The pattern half may contain multiple alternatives
// separated by "|"; each alternative is wrapped in ^...$ before the whole
// set is compiled as a single anchored regex, so every Pattern always
// matches full strings only. A synthetic epsilon pattern is appended last.
func Load(text string) (*Store, error) {
	store := NewStore()

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		match := declarationLine.FindStringSubmatch(line)
		if match == nil {
			return nil, &BadLineError{}
		}

		name := strings.TrimSpace(match[1])
		rawPattern := match[2]

		alternatives := strings.Split(rawPattern, "|")
		for i, alt := range alternatives {
			alternatives[i] = "^" + strings.TrimSpace(alt) + "$"
		}
		compiled := strings.Join(alternatives, "|")

		re, err := regexp.Compile(compiled)
		if err != nil {
			return nil, &BadRegexError{Name: name, Pattern: compiled}
		}

		store.Add(Pattern{Name: name, Regex: re})
	}

	store.Add(epsilonPattern())
	return store, nil
}

// LoadFile reads path and calls Load on its contents.
func LoadFile(path string) (*Store, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileOpenError{Detail: err.Error()}
	}
	return Load(string(content))
}
