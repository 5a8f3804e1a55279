// Package policy holds the role capability checks as plain predicates
// over the models, so they can be tested without the router or the
// database.
package policy

import "newsroom-api/models"

// CanSubmit reports whether user may author new articles or
// newsletters.
func CanSubmit(user *models.User) bool {
	return user.Role == models.RoleJournalist
}

// CanApprove reports whether user may approve or reject pending
// content.
func CanApprove(user *models.User) bool {
	return user.Role == models.RoleEditor
}

// CanManageSubscriptions reports whether user may create or remove
// subscription edges. Only readers own subscriptions.
func CanManageSubscriptions(user *models.User) bool {
	return user.Role == models.RoleReader
}

// CanView decides single-item visibility. Editors see everything,
// journalists see their own items in any status, readers see approved
// items from sources they subscribe to. subscribedPublisher and
// subscribedAuthor are the reader's edges to the item's publisher and
// author, resolved by the caller.
func CanView(user *models.User, item models.Content, subscribedPublisher, subscribedAuthor bool) bool {
	switch user.Role {
	case models.RoleEditor:
		return true
	case models.RoleJournalist:
		return item.AuthorRef() == user.ID
	case models.RoleReader:
		if item.CurrentStatus() != models.StatusApproved {
			return false
		}
		return subscribedPublisher || subscribedAuthor
	}
	return false
}
