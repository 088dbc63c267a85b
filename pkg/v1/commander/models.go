package commander

// ScanCommand is a command to scan single tracked url.
type ScanCommand struct {
	URLID string `json:"urlId"`
	URL   string `json:"url"`
}
