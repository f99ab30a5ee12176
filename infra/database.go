// Package infra wires external systems: the database and document output.
package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	infrarepo "github.com/Hitchiker-V/Skydo-Mock/infra/repository"
)

// NewDBConnection opens a postgres connection and migrates the schema.
func NewDBConnection(url string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the schema migrations for every stored entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&infrarepo.User{},
		&infrarepo.Client{},
		&infrarepo.Invoice{},
		&infrarepo.InvoiceItem{},
		&infrarepo.Transaction{},
		&infrarepo.VirtualAccount{},
	)
}
