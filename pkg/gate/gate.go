package gate

import (
	"github.com/carmegar/blogpage/database"
)

// Action names a mutating or privileged capability a handler wants to
// exercise on behalf of the current subject.
type Action string

const (
	ActionCreatePost     Action = "posts.create"
	ActionUpdatePost     Action = "posts.update"
	ActionDeletePost     Action = "posts.delete"
	ActionViewDrafts     Action = "posts.view_drafts"
	ActionManageTaxonomy Action = "taxonomy.manage"
	ActionUpload         Action = "media.upload"
	ActionDeleteUpload   Action = "media.delete"
)

type Reason string

const (
	ReasonNone             Reason = ""
	ReasonUnauthenticated  Reason = "unauthenticated"
	ReasonInsufficientRole Reason = "insufficient_role"
	ReasonNotOwner         Reason = "not_owner"
)

// Subject is the authenticated caller as the gate sees it. A zero Subject is
// an anonymous visitor.
type Subject struct {
	UserID uint64
	Role   database.UserRole
}

func (s Subject) IsAnonymous() bool {
	return !s.Role.IsValid()
}

type Decision struct {
	Allowed bool
	Reason  Reason
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason Reason) Decision {
	return Decision{Reason: reason}
}

// Decide is the single authorisation rule table. ownerID is only consulted
// for per-resource actions; pass zero for the rest.
//
// Admins can do everything. Writers can create content, touch their own
// posts and upload media. Readers hold no mutating capability at all, owner
// or not.
func Decide(subject Subject, action Action, ownerID uint64) Decision {
	if subject.IsAnonymous() {
		return Deny(ReasonUnauthenticated)
	}

	if subject.Role == database.RoleAdmin {
		return Allow()
	}

	if subject.Role == database.RoleUser {
		return Deny(ReasonInsufficientRole)
	}

	switch action {
	case ActionCreatePost, ActionViewDrafts, ActionManageTaxonomy, ActionUpload, ActionDeleteUpload:
		return Allow()
	case ActionUpdatePost, ActionDeletePost:
		if subject.UserID == ownerID {
			return Allow()
		}

		return Deny(ReasonNotOwner)
	}

	return Deny(ReasonInsufficientRole)
}
