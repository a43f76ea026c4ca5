// Package report builds the phone-number assignment report: it normalizes
// directory entries into a common record shape, merges the three source
// categories into one deduplicated collection, and sorts the result.
package report

// AccountType classifies what kind of directory identity a phone number is
// assigned to.
type AccountType string

const (
	TypeUser                   AccountType = "User"
	TypeMeetingRoom            AccountType = "MeetingRoom"
	TypeAutoAttendant          AccountType = "AutoAttendantResourceAccount"
	TypeCallQueue              AccountType = "CallQueueResourceAccount"
	TypeUnknownResourceAccount AccountType = "UnknownResourceAccount"
)

// AssignmentRecord is one phone-number assignment in the final report.
// UserPrincipalName is the identity key: the merge step guarantees it is
// unique within the finished collection. DDI and Ext are derived from the raw
// LineURI and are empty when the identifier does not match the expected
// pattern. FirstName and LastName are only set for user-sourced records.
type AssignmentRecord struct {
	UserPrincipalName string      `json:"userPrincipalName" xml:"UserPrincipalName"`
	LineURI           string      `json:"lineUri" xml:"LineURI"`
	DDI               string      `json:"ddi,omitempty" xml:"DDI,omitempty"`
	Ext               string      `json:"ext,omitempty" xml:"Ext,omitempty"`
	DisplayName       string      `json:"displayName" xml:"DisplayName"`
	FirstName         string      `json:"firstName,omitempty" xml:"FirstName,omitempty"`
	LastName          string      `json:"lastName,omitempty" xml:"LastName,omitempty"`
	Type              AccountType `json:"type" xml:"Type"`
}
