package domain

import (
	"strings"
	"time"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

var ApprovalStatuses = []ApprovalStatus{
	ApprovalStatusPending,
	ApprovalStatusApproved,
	ApprovalStatusRejected,
}

func ParseApprovalStatus(s string) (ApprovalStatus, bool) {
	status := ApprovalStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range ApprovalStatuses {
		if status == valid {
			return status, true
		}
	}
	return "", false
}

type ApprovalKind string

const (
	ApprovalKindOffer        ApprovalKind = "offers"
	ApprovalKindNotification ApprovalKind = "notifications"
	ApprovalKindPublisher    ApprovalKind = "publishers"
)

func ParseApprovalKind(s string) (ApprovalKind, bool) {
	switch kind := ApprovalKind(strings.ToLower(s)); kind {
	case ApprovalKindOffer, ApprovalKindNotification, ApprovalKindPublisher:
		return kind, true
	}
	return "", false
}

// ApprovalRef identifica o alvo de uma mudança de status: primeiro pela chave
// primária numérica (quando houver), depois pela chave natural.
type ApprovalRef struct {
	ID  *int64
	Key string
}

type Approval struct {
	ID         int64          `db:"id" json:"id"`
	Kind       ApprovalKind   `db:"-" json:"kind"`
	SubjectKey string         `db:"subject_key" json:"subject_key"`
	Status     ApprovalStatus `db:"status" json:"status"`
	Note       *string        `db:"note" json:"note"`
	ApprovedAt *time.Time     `db:"approved_at" json:"approved_at"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updated_at"`

	// Campos desnormalizados do registro pai
	SubjectName *string `db:"subject_name" json:"subject_name"`
	ParentName  *string `db:"parent_name" json:"parent_name,omitempty"`
}

type ApprovalFilter struct {
	PageRequest
	Status *ApprovalStatus
}
