package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Venue{},
		&Item{},
		&SaleEvent{},
		&Rating{},
		&Suggestion{},
	)
}

// DropTables removes every table InitTables creates, dependants first.
func DropTables(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&Suggestion{},
		&Rating{},
		&SaleEvent{},
		&Item{},
		&Venue{},
	)
}
