// Package mastery provides master-promotion requests and the qualifying
// exam. A player needs enough attended sessions and a passing exam score
// before a request can go to the admins.
package mastery

import "time"

// Status is the admin decision state of a promotion request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

const (
	// MinSessions is the attendance floor for requesting a promotion.
	MinSessions = 3
	// PassingScore is the minimum exam score out of ExamLength.
	PassingScore = 7
	// ExamLength is the number of questions in the qualifying exam.
	ExamLength = 10
)

// Request is one user's promotion request. A rejected request may be
// retried; a pending or approved one blocks new submissions.
type Request struct {
	ID          string    `json:"id"`
	User        string    `json:"user"`
	SubmittedAt time.Time `json:"date"`
	Status      Status    `json:"status"`
	ExamScore   int       `json:"examScore"`
}

// Blocks reports whether this request prevents the user from submitting a
// new one.
func (r *Request) Blocks() bool {
	return r.Status == StatusPending || r.Status == StatusApproved
}
