package domain

// AddressType classifies a saved address.
type AddressType string

const (
	AddressHome  AddressType = "home"
	AddressWork  AddressType = "work"
	AddressOther AddressType = "other"
)

// Address is one of a user's saved shipping addresses.
type Address struct {
	ID      string      `json:"id"`
	Type    AddressType `json:"type"`
	Street  string      `json:"street"`
	City    string      `json:"city"`
	State   string      `json:"state"`
	ZipCode string      `json:"zipCode"`
	Country string      `json:"country"`
}

// User is the profile attached to the current session.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Addresses []Address `json:"addresses,omitempty"`
}

// ProfileUpdate is a partial profile change; nil fields are left as-is.
type ProfileUpdate struct {
	Name   *string
	Phone  *string
	Avatar *string
}

// Apply merges the update into the user and returns the result.
func (u User) Apply(update ProfileUpdate) User {
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Phone != nil {
		u.Phone = *update.Phone
	}
	if update.Avatar != nil {
		u.Avatar = *update.Avatar
	}
	return u
}
