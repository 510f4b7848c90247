package models

// ProjectImages holds the asset paths used by the work pages.
type ProjectImages struct {
	Hero    string   `json:"hero"`
	Gallery []string `json:"gallery,omitempty"`
}

// Project is a single portfolio case study. Slug is the unique identifier.
type Project struct {
	Slug             string        `json:"slug"`
	Title            string        `json:"title"`
	ShortDescription string        `json:"shortDescription"`
	Tags             []string      `json:"tags"`
	Category         string        `json:"category"`
	Year             int           `json:"year"`
	Images           ProjectImages `json:"images"`
}
