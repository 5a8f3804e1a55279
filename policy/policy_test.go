package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newsroom-api/models"
)

func TestCapabilitiesByRole(t *testing.T) {
	reader := &models.User{ID: 1, Role: models.RoleReader}
	journalist := &models.User{ID: 2, Role: models.RoleJournalist}
	editor := &models.User{ID: 3, Role: models.RoleEditor}

	assert.False(t, CanSubmit(reader))
	assert.True(t, CanSubmit(journalist))
	assert.False(t, CanSubmit(editor))

	assert.False(t, CanApprove(reader))
	assert.False(t, CanApprove(journalist))
	assert.True(t, CanApprove(editor))

	assert.True(t, CanManageSubscriptions(reader))
	assert.False(t, CanManageSubscriptions(journalist))
	assert.False(t, CanManageSubscriptions(editor))
}

func TestCanView(t *testing.T) {
	publisherID := uint(7)

	pending := &models.Article{ID: 10, AuthorID: 2, PublisherID: &publisherID, Status: models.StatusPending}
	approved := &models.Article{ID: 11, AuthorID: 2, PublisherID: &publisherID, Status: models.StatusApproved}
	rejected := &models.Article{ID: 12, AuthorID: 2, Status: models.StatusRejected}

	reader := &models.User{ID: 1, Role: models.RoleReader}
	author := &models.User{ID: 2, Role: models.RoleJournalist}
	otherJournalist := &models.User{ID: 4, Role: models.RoleJournalist}
	editor := &models.User{ID: 3, Role: models.RoleEditor}

	tests := []struct {
		name                string
		user                *models.User
		item                models.Content
		subscribedPublisher bool
		subscribedAuthor    bool
		want                bool
	}{
		{"editor sees pending", editor, pending, false, false, true},
		{"editor sees rejected", editor, rejected, false, false, true},
		{"author sees own pending", author, pending, false, false, true},
		{"author sees own rejected", author, rejected, false, false, true},
		{"journalist never sees others", otherJournalist, approved, true, true, false},
		{"reader without subscriptions", reader, approved, false, false, false},
		{"reader via publisher subscription", reader, approved, true, false, true},
		{"reader via author subscription", reader, approved, false, true, true},
		{"reader never sees pending", reader, pending, true, true, false},
		{"reader never sees rejected", reader, rejected, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanView(tt.user, tt.item, tt.subscribedPublisher, tt.subscribedAuthor)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewsletterSharesVisibilityRules(t *testing.T) {
	reader := &models.User{ID: 1, Role: models.RoleReader}
	approved := &models.Newsletter{ID: 20, AuthorID: 2, Status: models.StatusApproved}

	assert.True(t, CanView(reader, approved, false, true))
	assert.False(t, CanView(reader, approved, false, false))
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, models.StatusPending.Terminal())
	assert.True(t, models.StatusApproved.Terminal())
	assert.True(t, models.StatusRejected.Terminal())
}
