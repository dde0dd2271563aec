package arango

import (
	"fmt"
	"sort"
	"strings"

	"github.com/docpipe/stores/v1/docstore"
)

// matchAllPredicate is the always-true AQL predicate an empty filter spec
// translates to, so an unfiltered scan returns every document.
const matchAllPredicate = "true"

// buildFilterPredicate translates a filter spec into an AQL predicate
// fragment plus the bind variables it references.
//
// Each field becomes a case-insensitive substring match against the
// document's metadata, and all fields are AND-combined. Field names and
// values travel exclusively as bind variables; nothing caller-supplied is
// ever spliced into the query text, which rules out AQL injection. LIKE
// wildcards inside values are escaped so they match literally.
//
// Fields are emitted in sorted order to keep the generated query stable
// across runs (map iteration order would otherwise defeat plan caching).
func buildFilterPredicate(spec docstore.FilterSpec) (string, map[string]interface{}) {
	bindVars := make(map[string]interface{})
	if len(spec) == 0 {
		return matchAllPredicate, bindVars
	}

	fields := make([]string, 0, len(spec))
	for field := range spec {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for i, field := range fields {
		fieldVar := fmt.Sprintf("field%d", i)
		patternVar := fmt.Sprintf("pattern%d", i)

		bindVars[fieldVar] = field
		bindVars[patternVar] = "%" + escapeLikePattern(fmt.Sprintf("%v", spec[field])) + "%"

		parts = append(parts, fmt.Sprintf("LIKE(doc.meta[@%s], @%s, true)", fieldVar, patternVar))
	}

	return strings.Join(parts, " AND "), bindVars
}

// buildFilterQuery assembles the full AQL statement for a filtered scan of
// a collection. The collection name is bound as well (@@collection), so the
// statement text is a constant shape regardless of configuration.
func buildFilterQuery(collection string, spec docstore.FilterSpec) (string, map[string]interface{}) {
	predicate, bindVars := buildFilterPredicate(spec)
	bindVars["@collection"] = collection
	return fmt.Sprintf("FOR doc IN @@collection FILTER %s RETURN doc", predicate), bindVars
}

// escapeLikePattern neutralizes AQL LIKE wildcards in a filter value so the
// value matches as a literal substring.
func escapeLikePattern(value string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	)
	return replacer.Replace(value)
}
