package models

// Job is a scraped posting. The scraper owns this data; the API only reads
// it, and only records with IsActive == 1 are shown.
type Job struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	Deadline    string `json:"deadline"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Field       string `json:"field"`
	ScrapedDate string `json:"scraped_date"`
	IsActive    int    `json:"is_active"`

	// MatchScore is set by the CV analyzer on matched jobs only.
	MatchScore int `json:"match_score,omitempty"`
}
