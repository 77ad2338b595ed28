package core

import (
	"fmt"
	"slices"
)

// Group is an access group an actor belongs to.
type Group string

const (
	GroupLibraryUser    Group = "library_user"
	GroupLibraryManager Group = "library_manager"
)

// Permission names an operation that is checked before anything is queried or appended.
type Permission string

const (
	PermissionReadCatalog    Permission = "read_catalog"
	PermissionManageCatalog  Permission = "manage_catalog"
	PermissionBorrowBooks    Permission = "borrow_books"
	PermissionManagePartners Permission = "manage_partners"
)

var permissionGroups = map[Permission][]Group{
	PermissionReadCatalog:    {GroupLibraryUser, GroupLibraryManager},
	PermissionManageCatalog:  {GroupLibraryManager},
	PermissionBorrowBooks:    {GroupLibraryUser, GroupLibraryManager},
	PermissionManagePartners: {GroupLibraryManager},
}

// Actor is whoever triggers a command or query.
type Actor struct {
	Name   string
	Groups []Group
}

// SystemActor is used by internal callers like migrations or fixtures.
var SystemActor = Actor{Name: "system", Groups: []Group{GroupLibraryManager}}

// BuildActor creates an Actor from plain group names, unknown names are kept and simply never match.
func BuildActor(name string, groups ...string) Actor {
	actor := Actor{Name: name, Groups: make([]Group, 0, len(groups))}
	for _, g := range groups {
		actor.Groups = append(actor.Groups, Group(g))
	}

	return actor
}

// InGroup reports whether the actor is a member of group.
func (a Actor) InGroup(group Group) bool {
	return slices.Contains(a.Groups, group)
}

// Authorize returns an error wrapping ErrAccessDenied unless the actor is in one of the
// groups that hold the permission.
func Authorize(actor Actor, permission Permission) error {
	for _, group := range permissionGroups[permission] {
		if actor.InGroup(group) {
			return nil
		}
	}

	return fmt.Errorf("%w: %q may not %s", ErrAccessDenied, actor.Name, permission)
}
