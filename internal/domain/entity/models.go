package entity

// Models lists every persisted entity in dependency order.
func Models() []interface{} {
	return []interface{}{
		&User{},
		&Vaccine{},
		&Appointment{},
		&Vaccination{},
		&Article{},
	}
}
