package model

import "github.com/lexhour/lexhour/internal/duration"

// Client is a billable party. Names are unique and case-sensitive;
// clients are never renamed or deleted.
type Client struct {
	Name string
}

// Matter is a client's distinct legal engagement. The
// (ClientName, MatterName) pair is unique.
type Matter struct {
	ClientName string
	MatterName string
}

// TimeEntry records billable work against a client and matter.
// Entries are append-only and have no ID; identity is positional.
type TimeEntry struct {
	Date      string // YYYY-MM-DD
	Client    string
	Matter    string
	Duration  duration.Duration
	Narrative string
}

// Credential grants a client portal login. The password is held only
// as a hex-encoded one-way digest.
type Credential struct {
	ClientName   string
	Username     string
	PasswordHash string
}

// DateFormat is the canonical layout for TimeEntry.Date. Lexicographic
// comparison of dates in this form matches chronological order.
const DateFormat = "2006-01-02"
