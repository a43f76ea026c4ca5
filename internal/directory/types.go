package directory

// User is a directory identity with a phone line assigned directly to a
// person. LineURI is the raw telephony identifier as stored in the directory.
type User struct {
	UserPrincipalName string `json:"userPrincipalName"`
	LineURI           string `json:"lineUri"`
	DisplayName       string `json:"displayName"`
	FirstName         string `json:"givenName"`
	LastName          string `json:"surname"`
}

// Room is a meeting-room identity. Rooms are backed by a user object in the
// directory but carry no personal name fields.
type Room struct {
	UserPrincipalName string `json:"userPrincipalName"`
	LineURI           string `json:"lineUri"`
	DisplayName       string `json:"displayName"`
}

// ResourceAccount is a directory identity backing a service application such
// as an auto attendant or call queue. ApplicationId identifies which service
// the account fronts.
type ResourceAccount struct {
	UserPrincipalName string `json:"userPrincipalName"`
	DisplayName       string `json:"displayName"`
	PhoneNumber       string `json:"phoneNumber"`
	ApplicationID     string `json:"applicationId"`
}

// listResponse is the odata-style collection envelope the directory service
// wraps every bulk query result in.
type listResponse[T any] struct {
	Context string `json:"@odata.context"`
	Value   []T    `json:"value"`
}
