package service

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountDisabled     = errors.New("account is disabled")
	ErrEmailTaken          = errors.New("an account with this email already exists")
	ErrStudentNotFound     = errors.New("student not found")
	ErrAssignmentNotFound  = errors.New("assignment not found")
	ErrAlreadySubmitted    = errors.New("assignment already submitted")
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrSubmissionNotFound  = errors.New("submission not found")
)
