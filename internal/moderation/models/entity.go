package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	dErrors "localdir/pkg/domain-errors"
)

// EntityType tags a moderatable variant.
type EntityType string

const (
	EntityBusiness     EntityType = "business"
	EntityProfessional EntityType = "professional"
	EntityJob          EntityType = "job"
)

// Descriptor holds everything the workflow needs to know about one variant.
type Descriptor struct {
	Type EntityType
	// Label is the display noun used in messages ("Business").
	Label string
	// Table is the backing table; NameColumn holds the display name.
	Table      string
	NameColumn string
	// AuditName is the suffix of audit actions: APPROVE_<AuditName>.
	AuditName string
	// ResponseKey names the variant's list in pending-queue responses.
	ResponseKey string
}

// ApproveAction and RejectAction are the audit action tags for the variant.
func (d Descriptor) ApproveAction() string { return "APPROVE_" + d.AuditName }
func (d Descriptor) RejectAction() string  { return "REJECT_" + d.AuditName }

// Registry maps each entity type to its descriptor. Adding a variant is an
// entry here plus a table.
var Registry = map[EntityType]Descriptor{
	EntityBusiness: {
		Type: EntityBusiness, Label: "Business", Table: "businesses", NameColumn: "name",
		AuditName: "BUSINESS", ResponseKey: "businesses",
	},
	EntityProfessional: {
		Type: EntityProfessional, Label: "Professional", Table: "professionals", NameColumn: "name",
		AuditName: "PROFESSIONAL", ResponseKey: "professionals",
	},
	EntityJob: {
		Type: EntityJob, Label: "Job", Table: "jobs", NameColumn: "title",
		AuditName: "JOB", ResponseKey: "jobs",
	},
}

// EntityTypes returns the registered types in a stable order.
func EntityTypes() []EntityType {
	out := make([]EntityType, 0, len(Registry))
	for t := range Registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseEntityType accepts a registered tag, case-insensitively.
func ParseEntityType(raw string) (EntityType, error) {
	t := EntityType(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := Registry[t]; !ok {
		names := make([]string, 0, len(Registry))
		for _, et := range EntityTypes() {
			names = append(names, string(et))
		}
		return "", dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("invalid item type %q: must be one of %s", raw, strings.Join(names, ", ")))
	}
	return t, nil
}

// Entity is a moderatable record. Name is the business or professional
// name, or the job title.
type Entity struct {
	ID         string     `json:"id"`
	Type       EntityType `json:"type"`
	Name       string     `json:"name"`
	Status     Status     `json:"status"`
	OwnerID    string     `json:"ownerId"`
	OwnerEmail string     `json:"ownerEmail,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}
