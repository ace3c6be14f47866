package model

import "time"

// Park represents a national park row in the `parks` table.  The JSON
// tags describe the wire shape served by the API and consumed by the
// companion web application, so the same struct doubles as the DTO.
//
// Fields:
//  ID          – primary key identifier, assigned by the database.
//  Name        – park name, unique (case/whitespace-insensitive) at creation.
//  State       – state(s) the park lies in.
//  Established – date the park was established; serialized as "created".
//  Picture     – optional raw image bytes; base64 on the wire, null when
//                absent.  The key is always present so consumers can bind
//                against a fixed shape.
type Park struct {
	ID          int       `json:"id"`      // parks.id
	Name        string    `json:"name"`    // parks.name
	State       string    `json:"state"`   // parks.state
	Established time.Time `json:"created"` // parks.established
	Picture     []byte    `json:"picture"` // parks.picture (nullable blob)
}
