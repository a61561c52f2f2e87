package table

// Seats is the number of players at the table.
const Seats = 4

// Position is a seat as seen from the local player.
type Position int

const (
	Bottom Position = iota
	Right
	Top
	Left
)

var positionNames = map[Position]string{
	Bottom: "bottom",
	Right:  "right",
	Top:    "top",
	Left:   "left",
}

func (p Position) String() string {
	if name, ok := positionNames[p]; ok {
		return name
	}
	return "unknown"
}

// RelativePosition maps an absolute seat to where it sits relative to local.
func RelativePosition(seat, local int) Position {
	return Position(((seat-local)%Seats + Seats) % Seats)
}

// SeatAt is the inverse of RelativePosition.
func SeatAt(pos Position, local int) int {
	return (local + int(pos)) % Seats
}

// Partnership returns 0 for seats 0 and 2, 1 for seats 1 and 3.
func Partnership(seat int) int {
	return ((seat % 2) + 2) % 2
}

// Partner returns the seat across the table.
func Partner(seat int) int {
	return (seat + 2) % Seats
}
