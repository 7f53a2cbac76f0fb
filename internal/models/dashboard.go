package models

import (
	"time"
)

// ActivityItem is one row of the merged recent-activity feed shown on the
// student dashboard. Submissions and certificates are folded into the same
// shape, tagged by Type.
type ActivityItem struct {
	Type  string    `json:"type"` // assignment or certificate
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
	Icon  string    `json:"icon"`
	Color string    `json:"color"`
}

type Dashboard struct {
	EnrolledCourses     int                    `json:"enrolled_courses"`
	AvgProgress         int                    `json:"avg_progress"`
	PendingAssignments  int                    `json:"pending_assignments"`
	CertificatesCount   int                    `json:"certificates_count"`
	RecentEnrollments   []EnrollmentWithCourse `json:"recent_enrollments"`
	RecentActivities    []ActivityItem         `json:"recent_activities"`
	UpcomingAssignments []AssignmentWithCourse `json:"upcoming_assignments"`
}
