package domain

type AccountID string

type Credentials struct {
	AccountID AccountID
	Username  string
	Email     string
	Password  Secret
	APIKey    Secret
}

// Optional marks whether a field was supplied, independent of its value.
type Optional[T any] struct {
	Set   bool
	Value T
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Value: value}
}

type CredentialsUpdate struct {
	AccountID Optional[AccountID]
	Username  Optional[string]
	Email     Optional[string]
	Password  Optional[Secret]
	APIKey    Optional[Secret]
}

func (u CredentialsUpdate) Empty() bool {
	return !u.AccountID.Set && !u.Username.Set && !u.Email.Set && !u.Password.Set && !u.APIKey.Set
}

func (c Credentials) Apply(u CredentialsUpdate) Credentials {
	if u.AccountID.Set {
		c.AccountID = u.AccountID.Value
	}
	if u.Username.Set {
		c.Username = u.Username.Value
	}
	if u.Email.Set {
		c.Email = u.Email.Value
	}
	if u.Password.Set {
		c.Password = u.Password.Value
	}
	if u.APIKey.Set {
		c.APIKey = u.APIKey.Value
	}

	return c
}

// Clear wipes the secret material held by c.
func (c Credentials) Clear() {
	c.Password.Clear()
	c.APIKey.Clear()
}
