package entity

import "time"

// JobType puesto de trabajo del catálogo. Code es la clave inmutable; Name
// es editable desde el panel de administración.
type JobType struct {
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
