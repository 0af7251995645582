package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// ScanReport is the scoring collaborator's answer for one URL. Every field is
// optional on the wire; decoding applies defaults and never fails on absence.
type ScanReport struct {
	Mark            float64          `json:"mark"`
	Website         Website          `json:"website"`
	SimilarArticles []SimilarArticle `json:"similarArticles"`
	LastSearchDate  *Timestamp       `json:"lastSearchDate"`
}

type Website struct {
	Technos []Techno `json:"technos"`
}

// Techno is one technology the scoring collaborator identified on the site.
type Techno struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SimilarArticle is a listing found on another dropshipping-associated site
// that matches the scanned page's products.
type SimilarArticle struct {
	URL    string   `json:"url"`
	Title  string   `json:"title"`
	Price  string   `json:"price"`
	Images []string `json:"images"`
}

// Timestamp accepts the collaborator's inconsistent date encodings: RFC 3339
// strings, epoch milliseconds, or null. Anything unparseable decodes to the
// zero time rather than an error.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if parsed, err := time.Parse(layout, s); err == nil {
				t.Time = parsed
				return nil
			}
		}
		return nil
	}

	if ms, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		t.Time = time.UnixMilli(ms).UTC()
	}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}
