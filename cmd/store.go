package cmd

import (
	"github.com/VoxDroid/rolo/internal/db"
	"github.com/VoxDroid/rolo/internal/registry"
)

// openRepo opens the active database. The returned func closes it.
func openRepo() (*registry.Repository, func(), error) {
	dbConn, err := db.InitDB()
	if err != nil {
		return nil, nil, err
	}
	r := registry.NewRepository(dbConn)
	return r, func() { _ = r.Close() }, nil
}
