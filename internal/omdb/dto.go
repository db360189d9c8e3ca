package omdb

// responseTrue is the catalog's success marker in the Response field
const responseTrue = "True"

// SearchResponse is the envelope for search (`s=`) calls. On success the
// catalog sets Response to "True" and fills Search and TotalResults; on a
// miss it sets Response to "False" and fills Error.
type SearchResponse struct {
	Response     string         `json:"Response"`
	Error        string         `json:"Error,omitempty"`
	Search       []SearchResult `json:"Search,omitempty"`
	TotalResults string         `json:"totalResults,omitempty"` // String-encoded integer
}

// OK reports whether the catalog answered with results
func (r SearchResponse) OK() bool {
	return r.Response == responseTrue
}

// SearchResult is one row of a search response
type SearchResult struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type,omitempty"`
	Poster string `json:"Poster"`
}

// DetailResponse is the flat payload for detail (`i=`) calls. No Search
// wrapper; fields arrive at the top level. Unavailable fields carry "N/A".
type DetailResponse struct {
	Response string `json:"Response"`
	Error    string `json:"Error,omitempty"`

	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
}

// OK reports whether the catalog found the item
func (r DetailResponse) OK() bool {
	return r.Response == responseTrue
}
