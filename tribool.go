package sqltypes

//go:generate go run github.com/dmarkham/enumer -type TriBool -output tribool_enum.go

// TriBool is result of comparison in three-valued logic.
//
// The zero value is Unknown, which corresponds to NULL.
type TriBool byte

const (
	Unknown TriBool = iota
	False
	True
)

// NewTriBool returns True or False.
func NewTriBool(v bool) TriBool {
	if v {
		return True
	}
	return False
}

// IsTrue reports whether b is True.
func (b TriBool) IsTrue() bool { return b == True }

// IsFalse reports whether b is False.
func (b TriBool) IsFalse() bool { return b == False }

// IsUnknown reports whether b is Unknown, i.e. result of comparing Null.
func (b TriBool) IsUnknown() bool { return b == Unknown }

// Bool returns boolean value of b, or ErrNull if b is Unknown.
func (b TriBool) Bool() (bool, error) {
	switch b {
	case True:
		return true, nil
	case False:
		return false, nil
	default:
		return false, ErrNull
	}
}

// Not returns negation of b, Unknown stays Unknown.
func (b TriBool) Not() TriBool {
	switch b {
	case True:
		return False
	case False:
		return True
	default:
		return Unknown
	}
}

// And returns b AND v.
//
// False dominates: False AND Unknown is False.
func (b TriBool) And(v TriBool) TriBool {
	switch {
	case b == False || v == False:
		return False
	case b == True && v == True:
		return True
	default:
		return Unknown
	}
}

// Or returns b OR v.
//
// True dominates: True OR Unknown is True.
func (b TriBool) Or(v TriBool) TriBool {
	switch {
	case b == True || v == True:
		return True
	case b == False && v == False:
		return False
	default:
		return Unknown
	}
}
