package service

// ResponseType tells the handlers which http status to respond with
type ResponseType int

const (
	// Error response
	Error ResponseType = iota

	// Success response
	Success
)

var vals = [...]string{
	"error",
	"success",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
