package ports

import "time"

type TokenDecoder interface {
	Expiry(token string) (time.Time, error)
}
