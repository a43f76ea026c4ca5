package report

import (
	"github.com/google/uuid"

	"phonereport/internal/directory"
)

// Well-known service application IDs for resource accounts.
var (
	autoAttendantAppID = uuid.MustParse("ce933385-9390-45d1-9512-c8d228074e07")
	callQueueAppID     = uuid.MustParse("11cd3e2e-fccb-42ad-ad00-878b93575e07")
)

// FromUser normalizes a directory user into an assignment record.
func FromUser(u directory.User) AssignmentRecord {
	parsed := ParseLineURI(u.LineURI)
	return AssignmentRecord{
		UserPrincipalName: u.UserPrincipalName,
		LineURI:           u.LineURI,
		DDI:               parsed.DDI,
		Ext:               parsed.Ext,
		DisplayName:       u.DisplayName,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Type:              TypeUser,
	}
}

// FromRoom normalizes a meeting room into an assignment record. Rooms carry
// no personal name fields.
func FromRoom(r directory.Room) AssignmentRecord {
	parsed := ParseLineURI(r.LineURI)
	return AssignmentRecord{
		UserPrincipalName: r.UserPrincipalName,
		LineURI:           r.LineURI,
		DDI:               parsed.DDI,
		Ext:               parsed.Ext,
		DisplayName:       r.DisplayName,
		Type:              TypeMeetingRoom,
	}
}

// FromResourceAccount normalizes a resource account into an assignment
// record. The account's PhoneNumber becomes the record's LineURI.
func FromResourceAccount(ra directory.ResourceAccount) AssignmentRecord {
	parsed := ParseLineURI(ra.PhoneNumber)
	return AssignmentRecord{
		UserPrincipalName: ra.UserPrincipalName,
		LineURI:           ra.PhoneNumber,
		DDI:               parsed.DDI,
		Ext:               parsed.Ext,
		DisplayName:       ra.DisplayName,
		Type:              classifyResourceAccount(ra.ApplicationID),
	}
}

// classifyResourceAccount maps an application ID to the account type it
// backs. IDs are compared as parsed UUIDs so casing differences in the
// directory data do not defeat the lookup; anything unparseable or
// unrecognized falls back to UnknownResourceAccount.
func classifyResourceAccount(applicationID string) AccountType {
	id, err := uuid.Parse(applicationID)
	if err != nil {
		return TypeUnknownResourceAccount
	}
	switch id {
	case autoAttendantAppID:
		return TypeAutoAttendant
	case callQueueAppID:
		return TypeCallQueue
	}
	return TypeUnknownResourceAccount
}
