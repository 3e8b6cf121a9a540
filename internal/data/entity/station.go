package entity

type Station struct {
	Base
	Name string `db:"name"`
	Code string `db:"code"` // NYP, BOS, etc.
	City string `db:"city"`
}
