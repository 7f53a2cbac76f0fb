package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dictchannels/portal/internal/mail"
	"github.com/dictchannels/portal/internal/models"
)

// Map-backed repository fakes. The student fake guards its state with a
// mutex so the concurrent allocation tests exercise real interleaving.

type mockStudentRepo struct {
	mu       sync.Mutex
	students map[string]*models.Student // by internal id
	counters map[int]int                // year -> last_seq
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{
		students: make(map[string]*models.Student),
		counters: make(map[int]int),
	}
}

func (m *mockStudentRepo) Create(_ context.Context, student *models.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.students {
		if s.StudentID == student.StudentID {
			return errors.New("duplicate student_id")
		}
		if s.Email == student.Email {
			return errors.New("duplicate email")
		}
	}
	copied := *student
	m.students[student.ID] = &copied
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.students[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, nil
}

func (m *mockStudentRepo) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.students {
		if s.Email == email {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockStudentRepo) GetByStudentID(_ context.Context, studentID string) (*models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.students {
		if s.StudentID == studentID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *models.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *student
	m.students[student.ID] = &copied
	return nil
}

func (m *mockStudentRepo) NextIDSequence(_ context.Context, year int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counters[year]++
	return m.counters[year], nil
}

type mockIntakeRepo struct {
	mu          sync.Mutex
	contacts    []models.ContactSubmission
	quotes      []models.QuoteSubmission
	inquiries   []models.ServiceInquiry
	subscribers []models.NewsletterSubscription
}

func newMockIntakeRepo() *mockIntakeRepo {
	return &mockIntakeRepo{}
}

func (m *mockIntakeRepo) CreateContact(_ context.Context, sub *models.ContactSubmission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contacts = append(m.contacts, *sub)
	return nil
}

func (m *mockIntakeRepo) CreateQuote(_ context.Context, sub *models.QuoteSubmission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quotes = append(m.quotes, *sub)
	return nil
}

func (m *mockIntakeRepo) CreateInquiry(_ context.Context, sub *models.ServiceInquiry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inquiries = append(m.inquiries, *sub)
	return nil
}

func (m *mockIntakeRepo) CreateNewsletterSubscription(_ context.Context, sub *models.NewsletterSubscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.subscribers {
		if existing.Email == sub.Email {
			return errors.New("duplicate email")
		}
	}
	m.subscribers = append(m.subscribers, *sub)
	return nil
}

func (m *mockIntakeRepo) NewsletterEmailExists(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.subscribers {
		if existing.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type mockEnrollmentRepo struct {
	enrollments []models.EnrollmentWithCourse
}

func (m *mockEnrollmentRepo) Create(_ context.Context, _ *models.Enrollment) error {
	return errors.New("not implemented")
}

func (m *mockEnrollmentRepo) ListByStudent(_ context.Context, studentID string) ([]models.EnrollmentWithCourse, error) {
	var out []models.EnrollmentWithCourse
	for _, e := range m.enrollments {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockEnrollmentRepo) RecentByStudent(ctx context.Context, studentID string, limit int) ([]models.EnrollmentWithCourse, error) {
	out, _ := m.ListByStudent(ctx, studentID)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type mockSubmissionRepo struct {
	submissions []models.SubmissionWithAssignment
}

func (m *mockSubmissionRepo) Create(_ context.Context, sub *models.AssignmentSubmission) error {
	for _, existing := range m.submissions {
		if existing.AssignmentID == sub.AssignmentID && existing.StudentID == sub.StudentID {
			return errors.New("duplicate submission")
		}
	}
	m.submissions = append(m.submissions, models.SubmissionWithAssignment{AssignmentSubmission: *sub})
	return nil
}

func (m *mockSubmissionRepo) GetByAssignmentAndStudent(_ context.Context, assignmentID, studentID string) (*models.AssignmentSubmission, error) {
	for _, s := range m.submissions {
		if s.AssignmentID == assignmentID && s.StudentID == studentID {
			copied := s.AssignmentSubmission
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockSubmissionRepo) ListByStudent(_ context.Context, studentID string) ([]models.SubmissionWithAssignment, error) {
	var out []models.SubmissionWithAssignment
	for _, s := range m.submissions {
		if s.StudentID == studentID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSubmissionRepo) RecentByStudent(ctx context.Context, studentID string, limit int) ([]models.SubmissionWithAssignment, error) {
	out, _ := m.ListByStudent(ctx, studentID)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockSubmissionRepo) CountByStudentAndStatuses(_ context.Context, studentID string, statuses []string) (int, error) {
	count := 0
	for _, s := range m.submissions {
		if s.StudentID != studentID {
			continue
		}
		for _, status := range statuses {
			if s.Status == status {
				count++
				break
			}
		}
	}
	return count, nil
}

type mockCertificateRepo struct {
	certificates []models.CertificateWithCourse
}

func (m *mockCertificateRepo) ListByStudent(_ context.Context, studentID string) ([]models.CertificateWithCourse, error) {
	var out []models.CertificateWithCourse
	for _, c := range m.certificates {
		if c.StudentID == studentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCertificateRepo) RecentByStudent(ctx context.Context, studentID string, limit int) ([]models.CertificateWithCourse, error) {
	out, _ := m.ListByStudent(ctx, studentID)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockCertificateRepo) CountByStudent(ctx context.Context, studentID string) (int, error) {
	out, _ := m.ListByStudent(ctx, studentID)
	return len(out), nil
}

type mockAssignmentRepo struct {
	assignments []models.AssignmentWithCourse
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id string) (*models.Assignment, error) {
	for _, a := range m.assignments {
		if a.ID == id {
			copied := a.Assignment
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockAssignmentRepo) ListForStudent(_ context.Context, _ string) ([]models.AssignmentWithCourse, error) {
	return m.assignments, nil
}

func (m *mockAssignmentRepo) ListUpcomingByStudent(_ context.Context, _ string, from, to time.Time, limit int) ([]models.AssignmentWithCourse, error) {
	var out []models.AssignmentWithCourse
	for _, a := range m.assignments {
		if !a.DueDate.Before(from) && !a.DueDate.After(to) {
			out = append(out, a)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// mockMailClient records every send and can be told to fail.
type mockMailClient struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (m *mockMailClient) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}
