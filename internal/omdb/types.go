package omdb

import (
	"bytes"
	"encoding/json"

	"boxoffice/internal/ratings"
)

// posterPlaceholder is what OMDb sends instead of a poster URL.
const posterPlaceholder = "N/A"

// SearchResult is one candidate title returned by Search.
type SearchResult struct {
	ExternalID string `json:"externalId"`
	Title      string `json:"title"`
	Year       string `json:"year"`
	MediaType  string `json:"mediaType"`
	// PosterURL is empty when the title has no poster.
	PosterURL string `json:"posterUrl"`
}

// SearchOptions contains optional filters for Search.
type SearchOptions struct {
	MediaType string `json:"type,omitempty"`
	Year      string `json:"year,omitempty"`
}

type searchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

type searchResponse struct {
	Search       []searchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
	Response     string       `json:"Response"`
	Error        string       `json:"Error"`
}

// DetailRecord is the full OMDb record for one title. The typed fields cover
// what the CLI renders; the decoded payload is kept as received and is what
// MarshalJSON writes back, so keys OMDb sends are never dropped and keys it
// omits are never invented. Missing values arrive as "N/A".
type DetailRecord struct {
	Title        string          `json:"Title"`
	Year         string          `json:"Year"`
	Rated        string          `json:"Rated"`
	Released     string          `json:"Released"`
	Runtime      string          `json:"Runtime"`
	Genre        string          `json:"Genre"`
	Director     string          `json:"Director"`
	Writer       string          `json:"Writer"`
	Actors       string          `json:"Actors"`
	Plot         string          `json:"Plot"`
	Language     string          `json:"Language"`
	Country      string          `json:"Country"`
	Awards       string          `json:"Awards"`
	Poster       string          `json:"Poster"`
	Ratings      []ratings.Entry `json:"Ratings"`
	Metascore    string          `json:"Metascore"`
	ImdbRating   string          `json:"imdbRating"`
	ImdbVotes    string          `json:"imdbVotes"`
	ImdbID       string          `json:"imdbID"`
	Type         string          `json:"Type"`
	DVD          string          `json:"DVD,omitempty"`
	BoxOffice    string          `json:"BoxOffice,omitempty"`
	Production   string          `json:"Production,omitempty"`
	Website      string          `json:"Website,omitempty"`
	TotalSeasons string          `json:"totalSeasons,omitempty"`

	// Sent only when tomatoes=true is requested.
	TomatoMeter       string `json:"tomatoMeter,omitempty"`
	TomatoImage       string `json:"tomatoImage,omitempty"`
	TomatoRating      string `json:"tomatoRating,omitempty"`
	TomatoReviews     string `json:"tomatoReviews,omitempty"`
	TomatoFresh       string `json:"tomatoFresh,omitempty"`
	TomatoRotten      string `json:"tomatoRotten,omitempty"`
	TomatoConsensus   string `json:"tomatoConsensus,omitempty"`
	TomatoUserMeter   string `json:"tomatoUserMeter,omitempty"`
	TomatoUserRating  string `json:"tomatoUserRating,omitempty"`
	TomatoUserReviews string `json:"tomatoUserReviews,omitempty"`
	TomatoURL         string `json:"tomatoURL,omitempty"`

	Response string `json:"Response"`
	Error    string `json:"Error,omitempty"`

	raw map[string]json.RawMessage
}

// detailFields has DetailRecord's layout without its JSON methods.
type detailFields DetailRecord

// UnmarshalJSON decodes the typed fields and keeps the whole object. A JSON
// null leaves the record empty.
func (d *DetailRecord) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var fields detailFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*d = DetailRecord(fields)
	d.raw = raw
	return nil
}

// MarshalJSON writes the payload as OMDb sent it. Records built in code
// fall back to the typed fields.
func (d DetailRecord) MarshalJSON() ([]byte, error) {
	if d.raw == nil {
		return json.Marshal(detailFields(d))
	}
	return json.Marshal(d.raw)
}

// Field returns one upstream key exactly as received.
func (d *DetailRecord) Field(key string) (json.RawMessage, bool) {
	value, ok := d.raw[key]
	return value, ok
}

// decoded reports whether a JSON object was read into the record.
func (d *DetailRecord) decoded() bool {
	return d.raw != nil
}

// succeeded reports whether OMDb flagged the payload as a successful lookup.
func (d *DetailRecord) succeeded() bool {
	return d.Response == "True"
}

func toSearchResult(item searchItem) SearchResult {
	poster := item.Poster
	if poster == posterPlaceholder {
		poster = ""
	}
	return SearchResult{
		ExternalID: item.ImdbID,
		Title:      item.Title,
		Year:       item.Year,
		MediaType:  item.Type,
		PosterURL:  poster,
	}
}
