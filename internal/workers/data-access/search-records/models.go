// internal/workers/data-access/search-records/models.go
package searchrecords

type Input struct {
	// Entity selects the record type to search: "jobs" or "candidates".
	Entity     string     `json:"entity"`
	Query      string     `json:"query,omitempty"`
	Skills     []string   `json:"skills,omitempty"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	From int `json:"from"`
	Size int `json:"size"`
}

type Output struct {
	Data      []map[string]interface{} `json:"data"`
	TotalHits int64                    `json:"totalHits"`
	MaxScore  float64                  `json:"maxScore"`
	Took      int64                    `json:"took"` // milliseconds
}
