package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-books-go/library/core"
)

func Test_Authorize(t *testing.T) {
	user := core.BuildActor("alice", "library_user")
	manager := core.BuildActor("bob", "library_manager")
	stranger := core.BuildActor("eve")

	testCases := []struct {
		name       string
		actor      core.Actor
		permission core.Permission
		allowed    bool
	}{
		{name: "user reads", actor: user, permission: core.PermissionReadCatalog, allowed: true},
		{name: "user borrows", actor: user, permission: core.PermissionBorrowBooks, allowed: true},
		{name: "user may not manage", actor: user, permission: core.PermissionManageCatalog, allowed: false},
		{name: "user may not manage partners", actor: user, permission: core.PermissionManagePartners, allowed: false},
		{name: "manager manages", actor: manager, permission: core.PermissionManageCatalog, allowed: true},
		{name: "manager reads", actor: manager, permission: core.PermissionReadCatalog, allowed: true},
		{name: "stranger reads", actor: stranger, permission: core.PermissionReadCatalog, allowed: false},
		{name: "unknown permission", actor: manager, permission: "launch_rockets", allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			err := core.Authorize(tc.actor, tc.permission)

			// assert
			if tc.allowed {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, core.ErrAccessDenied)
		})
	}
}

func Test_Member_DelegatesToPartner_AndIsActive(t *testing.T) {
	// arrange
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	member := core.Member{
		MemberID: "m-1",
		Partner:  core.Partner{PartnerID: "p-1", Name: "Ada Lovelace", City: "London", CountryCode: "GB"},
		Since:    today.AddDate(-1, 0, 0),
	}

	// act & assert
	assert.Equal(t, "Ada Lovelace", member.Name)
	assert.Equal(t, "GB", member.CountryCode)
	assert.True(t, member.IsActive(today))

	member.End = today
	assert.False(t, member.IsActive(today))

	member.End = today.AddDate(0, 0, 1)
	assert.True(t, member.IsActive(today))
}

func Test_NormalizeCountryCode(t *testing.T) {
	code, err := core.NormalizeCountryCode(" at ")
	assert.NoError(t, err)
	assert.Equal(t, "AT", code)

	_, err = core.NormalizeCountryCode("AUT")
	assert.ErrorIs(t, err, core.ErrCountryCodeInvalid)

	_, err = core.NormalizeCountryCode("1A")
	assert.ErrorIs(t, err, core.ErrInvalidValue)
}

func Test_Rent_IsOverdue(t *testing.T) {
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	rent := core.Rent{State: core.RentStateOngoing, DueDate: today.AddDate(0, 0, -1)}

	assert.True(t, rent.IsOverdue(today))

	rent.State = core.RentStateReturned
	assert.False(t, rent.IsOverdue(today))
}
