package curator

import "fmt"

var queryTemplates = []string{
	"%s tutorial",
	"%s complete course",
	"%s beginner guide",
	"%s fundamentals",
	"%s step by step",
}

var languageNames = map[string]string{
	"hi": "hindi",
	"es": "spanish",
	"fr": "french",
	"de": "german",
	"pt": "portuguese",
	"ar": "arabic",
}

// ExpandQuery turns a user search phrase into templated query variants that
// bias the search towards educational content. For non-English languages every
// variant gets an "in <language>" suffix, falling back to the raw code when
// the language is not in the lookup table.
func ExpandQuery(query, language string) []string {
	queries := make([]string, 0, len(queryTemplates))
	for _, tmpl := range queryTemplates {
		queries = append(queries, fmt.Sprintf(tmpl, query))
	}

	if language == "" || language == "en" {
		return queries
	}

	name, ok := languageNames[language]
	if !ok {
		name = language
	}
	for i, q := range queries {
		queries[i] = fmt.Sprintf("%s in %s", q, name)
	}

	return queries
}
