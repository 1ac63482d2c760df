package unity

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// VectorKind Способ, которым было получено строковое представление Vector3.
type VectorKind int

const (
	// VectorTriple Из упорядоченной тройки чисел.
	VectorTriple VectorKind = iota
	// VectorFormatted Строка уже в формате "x,y,z", передаётся без изменений.
	VectorFormatted
	// VectorLoose Первые три числа, извлечённые из произвольной строки, например "(10, 1, 10)".
	VectorLoose
	// VectorRaw Разобрать не удалось, передаётся исходное значение, ошибку вернёт сервер.
	VectorRaw
)

func (k VectorKind) String() string {
	switch k {
	case VectorTriple:
		return "triple"
	case VectorFormatted:
		return "formatted"
	case VectorLoose:
		return "loose"
	default:
		return "raw"
	}
}

var (
	strictVectorRe = regexp.MustCompile(`^-?\d*\.?\d*,-?\d*\.?\d*,-?\d*\.?\d*$`)
	numberRe       = regexp.MustCompile(`-?\d+\.?\d*`)
)

// Vector3 Значение Vector3 в том виде, в котором его ждёт сервер движка: "x,y,z".
type Vector3 struct {
	kind VectorKind
	text string
}

// NewVector3 Vector3 из трёх координат.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{
		kind: VectorTriple,
		text: strings.Join([]string{formatFloat(x, 64), formatFloat(y, 64), formatFloat(z, 64)}, ","),
	}
}

// Vector3FromSequence Vector3 из первых трёх элементов последовательности.
// ok == false, если v не срез/массив или в нём меньше трёх элементов.
func Vector3FromSequence(v any) (Vector3, bool) {
	elems, ok := sequence(v)
	if !ok || len(elems) < 3 {
		return Vector3{}, false
	}

	parts := make([]string, 3)
	for i := 0; i < 3; i++ {
		parts[i] = formatScalar(elems[i])
	}

	return Vector3{kind: VectorTriple, text: strings.Join(parts, ",")}, true
}

// ParseVector3 Vector3 из строки. Строка в формате "x,y,z" остаётся как есть, иначе из неё
// извлекаются первые три числа. Если чисел меньше трёх, строка передаётся без изменений.
func ParseVector3(s string) Vector3 {
	if strictVectorRe.MatchString(s) {
		return Vector3{kind: VectorFormatted, text: s}
	}

	matches := numberRe.FindAllString(s, -1)
	if len(matches) >= 3 {
		return Vector3{kind: VectorLoose, text: strings.Join(matches[:3], ",")}
	}

	return Vector3{kind: VectorRaw, text: s}
}

// FormatVector3 Приведение произвольного значения к строке "x,y,z".
// Порядок: Vector3, строка, последовательность из трёх и более элементов, fmt.Sprint.
func FormatVector3(v any) string {
	switch val := v.(type) {
	case Vector3:
		return val.text
	case string:
		return ParseVector3(val).text
	}

	if vec, ok := Vector3FromSequence(v); ok {
		return vec.text
	}

	return fmt.Sprint(v)
}

// IsVectorValue Является ли значение последовательностью ровно из трёх элементов.
func IsVectorValue(v any) bool {
	elems, ok := sequence(v)
	return ok && len(elems) == 3
}

func (v Vector3) Kind() VectorKind {
	return v.kind
}

func (v Vector3) String() string {
	return v.text
}

// MarshalJSON Vector3 уходит на сервер строкой.
func (v Vector3) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.text)
}

// Элементы среза или массива. Строки и []byte последовательностью не считаются.
func sequence(v any) ([]any, bool) {
	switch val := v.(type) {
	case nil, string, []byte:
		return nil, false
	case mgl64.Vec3:
		return []any{val[0], val[1], val[2]}, true
	case mgl32.Vec3:
		return []any{val[0], val[1], val[2]}, true
	case []float64:
		out := make([]any, len(val))
		for i, f := range val {
			out[i] = f
		}
		return out, true
	case []any:
		return val, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, true
}

func formatScalar(v any) string {
	switch val := v.(type) {
	case float64:
		return formatFloat(val, 64)
	case float32:
		return formatFloat(float64(val), 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case json.Number:
		return val.String()
	case string:
		return val
	}

	return fmt.Sprint(v)
}

func formatFloat(f float64, bitSize int) string {
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}
