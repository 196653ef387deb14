package names

import "fmt"

// Category selects which line-identifier table a lookup runs against.
// Transforming units, villagers and monks have special in-game behavior and
// keep their own tables, mirroring the legacy data layout.
type Category int

const (
	Unit Category = iota
	Building
	TransformGroup
	VillagerGroup
	MonkGroup
)

// Categories lists every valid category in declaration order.
func Categories() []Category {
	return []Category{Unit, Building, TransformGroup, VillagerGroup, MonkGroup}
}

func (c Category) String() string {
	switch c {
	case Unit:
		return "unit"
	case Building:
		return "building"
	case TransformGroup:
		return "transform_group"
	case VillagerGroup:
		return "villager_group"
	case MonkGroup:
		return "monk_group"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}
