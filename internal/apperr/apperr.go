package apperr

// Code is a machine-readable error code. The vocabulary is closed.
type Code string

const (
	CodeInvalidInput       Code = "INVALID_INPUT"
	CodeResourceNotFound   Code = "RESOURCE_NOT_FOUND"
	CodeResourceExists     Code = "RESOURCE_EXISTS"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeNotSignedIn        Code = "NOT_SIGNEDIN"
	CodeNotAllowedAccess   Code = "NOT_ALLOWED_ACCESS"
)

// Item is the wire shape of a single serialized error.
type Item struct {
	Message string `json:"message"`
	Code    Code   `json:"code"`
	Param   string `json:"param,omitempty"`
}

// FieldError is an error tied to one input field.
type FieldError struct {
	Param   string
	Message string
	Code    Code
}

// Fields is a batch of field errors raised together so the caller sees
// every violation in one response.
type Fields []FieldError

func (f Fields) Error() string {
	if len(f) == 0 {
		return "invalid input"
	}
	return f[0].Param + ": " + f[0].Message
}

func (f Fields) Serialize() []Item {
	items := make([]Item, 0, len(f))
	for _, fe := range f {
		items = append(items, Item{Message: fe.Message, Code: fe.Code, Param: fe.Param})
	}
	return items
}

// Field builds a single-field batch.
func Field(param, message string, code Code) Fields {
	return Fields{{Param: param, Message: message, Code: code}}
}

// General is an error not tied to any input field.
type General struct {
	Message string
	Code    Code
}

func (g *General) Error() string { return g.Message }

func (g *General) Serialize() []Item {
	return []Item{{Message: g.Message, Code: g.Code}}
}

// NewGeneral builds a general error.
func NewGeneral(message string, code Code) *General {
	return &General{Message: message, Code: code}
}

// Serialize flattens a known error kind into its wire items. The second
// return is false for errors outside the closed union.
func Serialize(err error) ([]Item, bool) {
	switch e := err.(type) {
	case Fields:
		return e.Serialize(), true
	case *General:
		return e.Serialize(), true
	}
	return nil, false
}
