// Package access decides whether a user may touch a record by walking the
// record's ownership chain up to the gym's owning user.
package access

import (
	"context"
	"errors"

	"gymdesk/internal/apperr"
)

type Kind int

const (
	KindGym Kind = iota
	KindStaff
	KindPlan
	KindMember
	KindMembership
	KindPayment
	KindNotification
)

var kindNames = map[Kind]string{
	KindGym:          "Gym",
	KindStaff:        "Staff",
	KindPlan:         "Plan",
	KindMember:       "Member",
	KindMembership:   "Membership",
	KindPayment:      "Payment",
	KindNotification: "Notification",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Record"
}

const forbiddenMessage = "Unauthorized"

// Gate is consulted before every gym-scoped read and every mutation.
type Gate interface {
	Authorize(ctx context.Context, userID int, kind Kind, id int) error
}

type gate struct {
	repo Repository
}

func NewGate(repo Repository) Gate {
	return &gate{repo: repo}
}

// Authorize returns a 404 error when the record or any link of its chain is
// missing and a 403 error when it belongs to someone else.
func (g *gate) Authorize(ctx context.Context, userID int, kind Kind, id int) error {
	ownerID, err := g.repo.OwnerOf(ctx, kind, id)
	if errors.Is(err, ErrNoOwner) {
		return apperr.NotFound(kind.String() + " not found")
	}
	if err != nil {
		return err
	}

	if ownerID != userID {
		return apperr.Forbidden(forbiddenMessage)
	}

	return nil
}
