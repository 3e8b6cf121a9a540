package entity

type TrainStatus string

const (
	TrainStatusActive      TrainStatus = "active"
	TrainStatusMaintenance TrainStatus = "maintenance"
	TrainStatusInactive    TrainStatus = "inactive"
)

type Train struct {
	Base
	TrainNumber string      `db:"train_number"` // NE-238, CL-445, etc.
	Name        string      `db:"name"`
	Type        string      `db:"type"` // Express, Regular, etc.
	Capacity    int         `db:"capacity"`
	Amenities   []string    `db:"amenities"` // jsonb
	Status      TrainStatus `db:"status"`
}
