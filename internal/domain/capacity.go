package domain

import "fmt"

// OccupancyCount is the number of guests per category.
type OccupancyCount struct {
	Adult int `json:"adult"`
	Child int `json:"child"`
	Baby  int `json:"baby"`
}

// Total returns the full headcount.
func (c OccupancyCount) Total() int {
	return c.Adult + c.Child + c.Baby
}

// CountByCategory folds a guest list into an occupancy count. Guests without
// a category (missing or invalid birth) are not counted.
func CountByCategory(guests []Guest) OccupancyCount {
	var counts OccupancyCount
	for _, g := range guests {
		switch g.Category {
		case CategoryAdult:
			counts.Adult++
		case CategoryChild:
			counts.Child++
		case CategoryBaby:
			counts.Baby++
		}
	}
	return counts
}

// RoomCapacity is the per-category occupant maximum for a room type.
type RoomCapacity struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Babies   int `json:"babies"`
}

// Total returns the maximum headcount the room admits.
func (c RoomCapacity) Total() int {
	return c.Adults + c.Children + c.Babies
}

// roomCapacities is the fixed capacity table. Immutable configuration,
// mirrored from the backend's room catalogue.
var roomCapacities = map[string]RoomCapacity{
	RoomTypeSingle: {Adults: 1, Children: 0, Babies: 0},
	RoomTypeDoble:  {Adults: 2, Children: 1, Babies: 0},
	RoomTypeSuite:  {Adults: 3, Children: 2, Babies: 1},
}

// CapacityFor looks up the capacity row for a room type. Unknown types fall
// back to the Single row.
func CapacityFor(roomType string) RoomCapacity {
	if cap, ok := roomCapacities[roomType]; ok {
		return cap
	}
	return roomCapacities[RoomTypeSingle]
}

// ViolationKind identifies the capacity rule that was broken.
type ViolationKind string

const (
	ViolationNoAdult       ViolationKind = "no_adult"
	ViolationCategoryLimit ViolationKind = "category_limit"
	ViolationTotalGuests   ViolationKind = "total_guests"
)

// CapacityViolation is one broken occupancy rule.
type CapacityViolation struct {
	Kind     ViolationKind
	Category GuestCategory // set for category_limit
	Count    int
	Limit    int
}

// Message returns the Spanish validation message for the violation.
func (v CapacityViolation) Message() string {
	switch v.Kind {
	case ViolationNoAdult:
		return "Debe haber al menos un adulto en la reserva."
	case ViolationTotalGuests:
		return "No se pueden registrar más huéspedes que la capacidad total de la habitación."
	default:
		return fmt.Sprintf("La cantidad de huéspedes excede la capacidad de la habitación seleccionada (%s: %d de %d).",
			v.Category.Label(), v.Count, v.Limit)
	}
}

// ValidateOccupancy checks guest counts against the capacity row for the room
// type. The at-least-one-adult rule applies regardless of the table.
func ValidateOccupancy(roomType string, counts OccupancyCount) []CapacityViolation {
	capacity := CapacityFor(roomType)

	var violations []CapacityViolation
	if counts.Adult < 1 {
		violations = append(violations, CapacityViolation{Kind: ViolationNoAdult})
	}
	if counts.Adult > capacity.Adults {
		violations = append(violations, CapacityViolation{
			Kind: ViolationCategoryLimit, Category: CategoryAdult, Count: counts.Adult, Limit: capacity.Adults,
		})
	}
	if counts.Child > capacity.Children {
		violations = append(violations, CapacityViolation{
			Kind: ViolationCategoryLimit, Category: CategoryChild, Count: counts.Child, Limit: capacity.Children,
		})
	}
	if counts.Baby > capacity.Babies {
		violations = append(violations, CapacityViolation{
			Kind: ViolationCategoryLimit, Category: CategoryBaby, Count: counts.Baby, Limit: capacity.Babies,
		})
	}
	return violations
}

// ValidateGuestList applies ValidateOccupancy plus the total-headcount rule
// for free-form guest lists.
func ValidateGuestList(roomType string, guests []Guest, counts OccupancyCount) []CapacityViolation {
	violations := ValidateOccupancy(roomType, counts)

	capacity := CapacityFor(roomType)
	if len(guests) > capacity.Total() {
		violations = append(violations, CapacityViolation{
			Kind: ViolationTotalGuests, Count: len(guests), Limit: capacity.Total(),
		})
	}
	return violations
}
