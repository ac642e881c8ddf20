// Target-type resolution and enum table handling shared by the
// subcommands.
package main

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/scalar/pkg/convert"
)

// targetKind selects which conversion the CLI runs.
type targetKind uint8

const (
	targetBool targetKind = iota
	targetInt
	targetInt8
	targetInt16
	targetInt32
	targetInt64
	targetUint
	targetUint8
	targetUint16
	targetUint32
	targetUint64
	targetFloat32
	targetFloat64
	targetEnum
)

// typeTable maps type names to target kinds. The CLI resolves its own
// --type flag through the library's enum codec.
var typeTable = []convert.EnumEntry[targetKind]{
	{Name: "bool", Value: targetBool},
	{Name: "int", Value: targetInt},
	{Name: "int8", Value: targetInt8},
	{Name: "int16", Value: targetInt16},
	{Name: "int32", Value: targetInt32},
	{Name: "int64", Value: targetInt64},
	{Name: "uint", Value: targetUint},
	{Name: "uint8", Value: targetUint8},
	{Name: "uint16", Value: targetUint16},
	{Name: "uint32", Value: targetUint32},
	{Name: "uint64", Value: targetUint64},
	{Name: "float32", Value: targetFloat32},
	{Name: "float64", Value: targetFloat64},
	{Name: "enum", Value: targetEnum},
}

// resolveTargetType picks the target type from --type, falling back to
// the configured default.
func resolveTargetType() (targetKind, error) {
	name := flagType
	if name == "" {
		name = configDefaultType
	}

	target, err := convert.ToEnum(name, typeTable)
	if err != nil {
		return 0, fmt.Errorf("unknown target type %q", name)
	}
	return target, nil
}

// parseEnumTable turns the --enum flag value ("admin=1,user=2") into an
// ordered entry table. Values are kept as strings; the CLI does not
// interpret them.
func parseEnumTable(spec string) ([]convert.EnumEntry[string], error) {
	if spec == "" {
		return nil, fmt.Errorf("--enum is required when --type is enum")
	}

	pairs := strings.Split(spec, ",")
	entries := make([]convert.EnumEntry[string], 0, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("malformed enum entry %q (want name=value)", pair)
		}
		entries = append(entries, convert.EnumEntry[string]{Name: name, Value: value})
	}
	return entries, nil
}

// decodeEnum resolves input against the table under the selected
// comparison mode.
func decodeEnum(input string, entries []convert.EnumEntry[string]) (string, error) {
	if flagCaseSensitive {
		return convert.ToEnumExact(input, entries)
	}
	return convert.ToEnum(input, entries)
}

// convertScalar parses input as the target type and renders the value
// back to canonical text.
func convertScalar(target targetKind, input string) (string, error) {
	switch target {
	case targetBool:
		v, err := convert.ToBool(input)
		if err != nil {
			return "", err
		}
		return convert.FormatBool(v)
	case targetInt:
		return reformat[int](input)
	case targetInt8:
		return reformat[int8](input)
	case targetInt16:
		return reformat[int16](input)
	case targetInt32:
		return reformat[int32](input)
	case targetInt64:
		return reformat[int64](input)
	case targetUint:
		return reformat[uint](input)
	case targetUint8:
		return reformat[uint8](input)
	case targetUint16:
		return reformat[uint16](input)
	case targetUint32:
		return reformat[uint32](input)
	case targetUint64:
		return reformat[uint64](input)
	case targetFloat32:
		return reformat[float32](input)
	case targetFloat64:
		return reformat[float64](input)
	default:
		return "", fmt.Errorf("target type does not name a scalar")
	}
}

// reformat is Parse followed by Format for one scalar type.
func reformat[T convert.Scalar](input string) (string, error) {
	v, err := convert.Parse[T](input)
	if err != nil {
		return "", err
	}
	return convert.Format(v)
}
