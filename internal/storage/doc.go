// Package storage defines the persistence layer of the TaskFlow core.
//
// It declares the entity models, one repository contract per entity and a
// registry of factories that open a concrete database. The SQLite and
// PostgreSQL drivers live in the sqlite and postgres subpackages and share
// their query code through sqlstore.
//
// Example usage:
//
//	registry := storage.NewRegistry()
//	registry.Register("sqlite", &sqlite.Factory{})
//
//	store, err := storage.NewStorage(registry, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer store.Close()
//
//	ws := &storage.Workspace{Name: "Engineering", OwnerID: "u1"}
//	if err := store.Workspaces().Create(ctx, ws); err != nil {
//		log.Fatal(err)
//	}
package storage
