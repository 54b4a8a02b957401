package component

// Kind names an attribute kind that can appear in an ECS query.
type Kind int

const (
	KindShape Kind = iota + 1
	KindCircle
	KindText
	KindMoving
)

func (k Kind) String() string {
	switch k {
	case KindShape:
		return "Shape"
	case KindCircle:
		return "Circle"
	case KindText:
		return "Text"
	case KindMoving:
		return "Moving"
	default:
		return "Kind(?)"
	}
}
