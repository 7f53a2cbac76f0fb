package models

import (
	"time"
)

type Enrollment struct {
	ID                 string     `json:"id" db:"id"`
	StudentID          string     `json:"student_id" db:"student_id"`
	CourseID           string     `json:"course_id" db:"course_id"`
	EnrolledAt         time.Time  `json:"enrolled_at" db:"enrolled_at"`
	ProgressPercentage int        `json:"progress_percentage" db:"progress_percentage"` // 0-100
	IsCompleted        bool       `json:"is_completed" db:"is_completed"`
	CompletedAt        *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

type EnrollmentWithCourse struct {
	Enrollment
	CourseTitle string `json:"course_title" db:"course_title"`
}

type Assignment struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	CourseID    string    `json:"course_id" db:"course_id"`
	DueDate     time.Time `json:"due_date" db:"due_date"`
	MaxScore    int       `json:"max_score" db:"max_score"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type AssignmentWithCourse struct {
	Assignment
	CourseTitle string `json:"course_title" db:"course_title"`
}

type AssignmentSubmission struct {
	ID           string    `json:"id" db:"id"`
	AssignmentID string    `json:"assignment_id" db:"assignment_id"`
	StudentID    string    `json:"student_id" db:"student_id"`
	SubmittedAt  time.Time `json:"submitted_at" db:"submitted_at"`
	ObjectKey    string    `json:"object_key" db:"object_key"`
	Content      string    `json:"content" db:"content"`
	Score        *int      `json:"score,omitempty" db:"score"`
	Feedback     string    `json:"feedback" db:"feedback"`
	Status       string    `json:"status" db:"status"` // pending, submitted, graded
}

type SubmissionWithAssignment struct {
	AssignmentSubmission
	AssignmentTitle string `json:"assignment_title" db:"assignment_title"`
}

type SubmissionStatus string

const (
	SubmissionStatusPending   SubmissionStatus = "pending"
	SubmissionStatusSubmitted SubmissionStatus = "submitted"
	SubmissionStatusGraded    SubmissionStatus = "graded"
)

func (s SubmissionStatus) String() string {
	return string(s)
}

type Certificate struct {
	ID                string    `json:"id" db:"id"`
	StudentID         string    `json:"student_id" db:"student_id"`
	CourseID          string    `json:"course_id" db:"course_id"`
	IssuedAt          time.Time `json:"issued_at" db:"issued_at"`
	CertificateNumber string    `json:"certificate_number" db:"certificate_number"`
	ObjectKey         string    `json:"object_key" db:"object_key"`
}

type CertificateWithCourse struct {
	Certificate
	CourseTitle string `json:"course_title" db:"course_title"`
}

type Announcement struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	CourseID    *string   `json:"course_id,omitempty" db:"course_id"` // nil means site-wide
	CreatedBy   string    `json:"created_by" db:"created_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	IsImportant bool      `json:"is_important" db:"is_important"`
}

type Message struct {
	ID          string    `json:"id" db:"id"`
	SenderID    string    `json:"sender_id" db:"sender_id"`
	RecipientID string    `json:"recipient_id" db:"recipient_id"`
	Subject     string    `json:"subject" db:"subject"`
	Content     string    `json:"content" db:"content"`
	SentAt      time.Time `json:"sent_at" db:"sent_at"`
	IsRead      bool      `json:"is_read" db:"is_read"`
}

type MessageWithSender struct {
	Message
	SenderName string `json:"sender_name" db:"sender_name"`
}

type Payment struct {
	ID            string    `json:"id" db:"id"`
	StudentID     string    `json:"student_id" db:"student_id"`
	Amount        float64   `json:"amount" db:"amount"`
	Description   string    `json:"description" db:"description"`
	PaymentDate   time.Time `json:"payment_date" db:"payment_date"`
	Status        string    `json:"status" db:"status"` // pending, completed, failed, refunded
	TransactionID string    `json:"transaction_id" db:"transaction_id"`
	PaymentMethod string    `json:"payment_method" db:"payment_method"`
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)
