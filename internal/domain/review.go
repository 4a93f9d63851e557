package domain

import (
	"time"
)

// Interview type labels offered by the review form. The server stores these
// as free text and does not enforce the set; they are exported for clients
// that want to render the canonical options.
const (
	InterviewTypeTechnical       = "Technical"
	InterviewTypeBehavioral      = "Behavioral"
	InterviewTypeSystemDesign    = "System Design"
	InterviewTypeCodingChallenge = "Coding Challenge"
	InterviewTypeHRScreening     = "HR Screening"
)

// MinRating and MaxRating bound the star-rating scale.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is one user-submitted feedback record about an interview-practice
// session. Immutable after creation except for the Helpful counter.
//
// JSON field names are camelCase: they are the wire format shared with the
// browser client and the persisted document, which predate this service.
type Review struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Rating        int       `json:"rating"`
	Title         string    `json:"title"`
	Comment       string    `json:"comment"`
	InterviewType string    `json:"interviewType"`
	InterviewRole string    `json:"interviewRole"`
	Timestamp     time.Time `json:"timestamp"`
	Helpful       int       `json:"helpful"`
	Verified      bool      `json:"verified"`
}

// InterviewTypes returns the canonical interview type option set.
func InterviewTypes() []string {
	return []string{
		InterviewTypeTechnical,
		InterviewTypeBehavioral,
		InterviewTypeSystemDesign,
		InterviewTypeCodingChallenge,
		InterviewTypeHRScreening,
	}
}
