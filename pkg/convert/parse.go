package convert

// Scalar is the closed set of types the generic entry points accept:
// bool, the builtin integer types, and the builtin float types. Enum
// conversion is a separate explicit call because it needs a table
// argument (see ToEnum).
type Scalar interface {
	bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Parse converts text to a scalar value of type T, dispatching to the
// boolean, integer, or float parser for the concrete type. The target
// type is always known at the call site, so the dispatch compiles down
// to a single branch of the switch.
//
//	n, err := convert.Parse[int32]("42")
//	ok, err := convert.Parse[bool](" yes ")
func Parse[T Scalar](input string) (T, error) {
	var v T

	switch p := any(&v).(type) {
	case *bool:
		b, err := ToBool(input)
		if err != nil {
			return v, err
		}
		*p = b
	case *int:
		n, err := ToInt[int](input)
		if err != nil {
			return v, err
		}
		*p = n
	case *int8:
		n, err := ToInt[int8](input)
		if err != nil {
			return v, err
		}
		*p = n
	case *int16:
		n, err := ToInt[int16](input)
		if err != nil {
			return v, err
		}
		*p = n
	case *int32:
		n, err := ToInt[int32](input)
		if err != nil {
			return v, err
		}
		*p = n
	case *int64:
		n, err := ToInt[int64](input)
		if err != nil {
			return v, err
		}
		*p = n
	case *uint:
		n, err := ToInt[uint](input)
		if err != nil {
			return v, err
		}
		*p = n
	case *uint8:
		n, err := ToInt[uint8](input)
		if err != nil {
			return v, err
		}
		*p = n
	case *uint16:
		n, err := ToInt[uint16](input)
		if err != nil {
			return v, err
		}
		*p = n
	case *uint32:
		n, err := ToInt[uint32](input)
		if err != nil {
			return v, err
		}
		*p = n
	case *uint64:
		n, err := ToInt[uint64](input)
		if err != nil {
			return v, err
		}
		*p = n
	case *float32:
		f, err := ToFloat[float32](input)
		if err != nil {
			return v, err
		}
		*p = f
	case *float64:
		f, err := ToFloat[float64](input)
		if err != nil {
			return v, err
		}
		*p = f
	}

	return v, nil
}

// Format is the inverse of Parse: it renders a scalar value of type T
// as text through the matching formatter.
func Format[T Scalar](v T) (string, error) {
	switch x := any(v).(type) {
	case bool:
		return FormatBool(x)
	case int:
		return FormatInt(x)
	case int8:
		return FormatInt(x)
	case int16:
		return FormatInt(x)
	case int32:
		return FormatInt(x)
	case int64:
		return FormatInt(x)
	case uint:
		return FormatInt(x)
	case uint8:
		return FormatInt(x)
	case uint16:
		return FormatInt(x)
	case uint32:
		return FormatInt(x)
	case uint64:
		return FormatInt(x)
	case float32:
		return FormatFloat(x)
	default:
		return FormatFloat(any(v).(float64))
	}
}
