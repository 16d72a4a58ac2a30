package handler

import (
	"strings"

	"localdir/internal/moderation/models"
	dErrors "localdir/pkg/domain-errors"
)

// ApproveRequest is the body of POST /approve.
type ApproveRequest struct {
	ItemID   string `json:"itemId"`
	ItemType string `json:"itemType"`

	parsedType models.EntityType
}

func (r *ApproveRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	t, err := validateItem(&r.ItemID, r.ItemType)
	if err != nil {
		return err
	}
	r.parsedType = t
	return nil
}

// RejectRequest is the body of POST /reject. The reason is checked by the
// workflow so that unknown items report not found first.
type RejectRequest struct {
	ItemID   string `json:"itemId"`
	ItemType string `json:"itemType"`
	Reason   string `json:"reason"`

	parsedType models.EntityType
}

func (r *RejectRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	t, err := validateItem(&r.ItemID, r.ItemType)
	if err != nil {
		return err
	}
	r.parsedType = t
	return nil
}

func validateItem(itemID *string, itemType string) (models.EntityType, error) {
	*itemID = strings.TrimSpace(*itemID)
	if *itemID == "" {
		return "", dErrors.New(dErrors.CodeValidation, "itemId is required")
	}
	if len(*itemID) > 128 {
		return "", dErrors.New(dErrors.CodeValidation, "itemId must be at most 128 characters")
	}
	if strings.TrimSpace(itemType) == "" {
		return "", dErrors.New(dErrors.CodeValidation, "itemType is required")
	}
	return models.ParseEntityType(itemType)
}
