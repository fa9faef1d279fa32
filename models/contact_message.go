package models

import (
	"time"
)

// Subject classifies what a contact message is about
type Subject string

const (
	SubjectGeneral   Subject = "general"
	SubjectWholesale Subject = "wholesale"
	SubjectSupply    Subject = "supply"
	SubjectQuality   Subject = "quality"
	SubjectSupport   Subject = "support"
	SubjectOther     Subject = "other"
)

var subjectLabels = map[Subject]string{
	SubjectGeneral:   "General Inquiry",
	SubjectWholesale: "Wholesale Orders",
	SubjectSupply:    "Supply Partnership",
	SubjectQuality:   "Quality Concerns",
	SubjectSupport:   "Customer Support",
	SubjectOther:     "Other",
}

// Label returns the display name for the subject
func (s Subject) Label() string {
	if label, ok := subjectLabels[s]; ok {
		return label
	}
	return string(s)
}

// Subjects lists all selectable contact subjects
func Subjects() []Subject {
	return []Subject{SubjectGeneral, SubjectWholesale, SubjectSupply, SubjectQuality, SubjectSupport, SubjectOther}
}

// ValidSubject reports whether s is a selectable contact subject
func ValidSubject(s Subject) bool {
	_, ok := subjectLabels[s]
	return ok
}

// ContactStatus tracks staff follow-up on a contact message
type ContactStatus string

const (
	ContactStatusNew        ContactStatus = "new"
	ContactStatusInProgress ContactStatus = "in_progress"
	ContactStatusResolved   ContactStatus = "resolved"
	ContactStatusClosed     ContactStatus = "closed"
)

var contactStatusLabels = map[ContactStatus]string{
	ContactStatusNew:        "New",
	ContactStatusInProgress: "In Progress",
	ContactStatusResolved:   "Resolved",
	ContactStatusClosed:     "Closed",
}

// Label returns the display name for the status
func (s ContactStatus) Label() string {
	if label, ok := contactStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// ContactStatuses lists all contact message statuses
func ContactStatuses() []ContactStatus {
	return []ContactStatus{ContactStatusNew, ContactStatusInProgress, ContactStatusResolved, ContactStatusClosed}
}

// ContactMessage represents the contact_messages table
type ContactMessage struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	Name       string        `gorm:"type:varchar(100);not null" json:"name"`
	Email      string        `gorm:"type:varchar(254);not null" json:"email"`
	Phone      string        `gorm:"type:varchar(17)" json:"phone"`
	Company    string        `gorm:"type:varchar(100)" json:"company"`
	Subject    Subject       `gorm:"type:varchar(20);not null;default:general" json:"subject"`
	Message    string        `gorm:"type:text;not null" json:"message"`
	Status     ContactStatus `gorm:"type:varchar(20);not null;default:new" json:"status"`
	SentAt     time.Time     `gorm:"autoCreateTime" json:"sent_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
	AdminNotes string        `gorm:"type:text" json:"admin_notes"`
}

// TableName specifies the table name for ContactMessage
func (ContactMessage) TableName() string {
	return "contact_messages"
}

// IsRecent reports whether the message arrived within the last 7 days
func (m *ContactMessage) IsRecent() bool {
	return m.SentAt.After(time.Now().AddDate(0, 0, -7))
}
