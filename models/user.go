package models

// User is the single domain entity of the service: a person record
// identified by a server-assigned id.
type User struct {
	// ID is assigned on creation and never changes or gets reused.
	ID int64 `json:"id"`

	// Name is the display name of the user. Never empty.
	Name string `json:"name"`

	// Email is the contact address of the user. Never empty; the format is
	// not checked.
	Email string `json:"email"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// CreateUserRequest is the body of POST /api/users.
//
// Both fields are pointers so the validator can tell an absent field
// from an empty one.
type CreateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UpdateUserRequest is the body of PUT /api/users/{id}.
// A nil field means "leave unchanged".
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// UserUpdate is a validated partial update handed to the storage layer.
// Only non-nil fields are written.
type UserUpdate struct {
	Name  *string
	Email *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil
}

// Apply merges the supplied fields into user and returns the result.
func (u UserUpdate) Apply(user User) User {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	return user
}

// ToUser converts a validated create request into a User without an ID.
func (r CreateUserRequest) ToUser() User {
	var user User
	if r.Name != nil {
		user.Name = *r.Name
	}
	if r.Email != nil {
		user.Email = *r.Email
	}
	return user
}

// ToUpdate converts a validated update request into a UserUpdate.
func (r UpdateUserRequest) ToUpdate() UserUpdate {
	return UserUpdate{
		Name:  r.Name,
		Email: r.Email,
	}
}
