// internal/workers/data-access/search-records/query.go
package searchrecords

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// searchFields maps an entity to the fields its free-text query runs over.
// Titles and names are boosted above the raw document body.
var searchFields = map[string][]string{
	"jobs":       {"title^3", "company_name^2", "location", "raw_text"},
	"candidates": {"name^3", "raw_text"},
}

// buildSearchRequest assembles the search body for one entity. A free-text
// query becomes a multi_match over the entity's fields; skills become a
// terms filter; with neither, the request matches everything.
func buildSearchRequest(index, entity, query string, skills []string, from, size int) (*esapi.SearchRequest, error) {
	fields, ok := searchFields[entity]
	if !ok {
		return nil, fmt.Errorf("unknown entity %q", entity)
	}

	var must []interface{}
	var filter []interface{}

	if query != "" {
		must = append(must, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": fields,
				"type":   "best_fields",
			},
		})
	}

	if len(skills) > 0 {
		normalized := make([]string, 0, len(skills))
		for _, s := range skills {
			if t := strings.ToLower(strings.TrimSpace(s)); t != "" {
				normalized = append(normalized, t)
			}
		}
		if len(normalized) > 0 {
			skillField := "skills_required"
			if entity == "candidates" {
				skillField = "skills_extracted"
			}
			filter = append(filter, map[string]interface{}{
				"terms": map[string]interface{}{skillField: normalized},
			})
		}
	}

	queryBody := map[string]interface{}{}
	if len(must) == 0 && len(filter) == 0 {
		queryBody["query"] = map[string]interface{}{
			"match_all": map[string]interface{}{},
		}
	} else {
		boolQuery := map[string]interface{}{}
		if len(must) > 0 {
			boolQuery["must"] = must
		}
		if len(filter) > 0 {
			boolQuery["filter"] = filter
		}
		queryBody["query"] = map[string]interface{}{"bool": boolQuery}
	}

	body, err := json.Marshal(queryBody)
	if err != nil {
		return nil, err
	}

	return &esapi.SearchRequest{
		Index: []string{index},
		Body:  strings.NewReader(string(body)),
		From:  &from,
		Size:  &size,
	}, nil
}
