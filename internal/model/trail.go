package model

// Difficulty grades a trail.  The numeric values are part of the wire
// contract: 0=Easy, 1=Moderate, 2=Difficult.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyModerate
	DifficultyDifficult
)

// Valid reports whether d is one of the defined difficulty grades.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyDifficult
}

// Trail represents a hiking trail row in the `trails` table.  A trail
// always belongs to exactly one park; the reference is validated on
// create and update and never repaired automatically.
//
// Fields:
//  ID             – primary key identifier, assigned by the database.
//  Name           – trail name, unique (case/whitespace-insensitive) at creation.
//  Distance       – trail length, required.
//  Difficulty     – enumerated grade (see Difficulty).
//  NationalParkID – owning park, foreign key into parks.id.
//  NationalPark   – owning park expanded on reads; nil on writes.
type Trail struct {
	ID             int        `json:"id"`             // trails.id
	Name           string     `json:"name"`           // trails.name
	Distance       float64    `json:"distance"`       // trails.distance
	Difficulty     Difficulty `json:"difficulty"`     // trails.difficulty
	NationalParkID int        `json:"nationalParkId"` // trails.park_id
	NationalPark   *Park      `json:"nationalPark,omitempty"`
}
