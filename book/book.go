// book/book.go
package book

import "time"

// CarType is the rating category a policy is written against.
type CarType string

const (
	Sedan  CarType = "Sedan"
	SUV    CarType = "SUV"
	Truck  CarType = "Truck"
	Sports CarType = "Sports"
)

// CarTypes lists every car type in the order the generator draws them.
var CarTypes = []CarType{Sedan, SUV, Truck, Sports}

// Policy is a single record in the book of business. PolicyID is assigned
// by the store on insert; a Policy is immutable once written.
type Policy struct {
	PolicyID    int64
	CustomerAge int
	CarType     CarType
	Premium     float64
}

// Claim is a single loss event against a policy. A claim never exists
// without its owning policy. Date stays nil in generated data but the
// store round-trips a value when present.
type Claim struct {
	ClaimID  int64
	PolicyID int64
	Amount   float64
	Date     *time.Time
}
