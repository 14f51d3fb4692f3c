package resource

// Level identifies where a resource sits in the Property > Building > Room tree.
type Level string

const (
	LevelProperty Level = "property"
	LevelBuilding Level = "building"
	LevelRoom     Level = "room"
)

func (l Level) String() string {
	return string(l)
}

func (l Level) IsValid() bool {
	switch l {
	case LevelProperty, LevelBuilding, LevelRoom:
		return true
	default:
		return false
	}
}

// Granularity declares how a resource may be booked: the resource itself as a
// single unit, or only its children individually.
type Granularity string

const (
	GranularityWhole      Granularity = "whole"
	GranularitySubdivided Granularity = "subdivided"
)

func (g Granularity) String() string {
	return string(g)
}

func (g Granularity) IsValid() bool {
	switch g {
	case GranularityWhole, GranularitySubdivided:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}
