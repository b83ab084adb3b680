// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -destination=repositories_mock.go -package=mocks github.com/packtrack/packtrack-be/internal/core/ports Database,SequenceRepository,InventoryRepository,TransactionRepository,ProductionHouseRepository,DirectoryRepository,CacheRepository
//go:generate mockgen -destination=services_mock.go -package=mocks github.com/packtrack/packtrack-be/internal/core/ports TransactionService,ProductionHouseService,DirectoryService,ExportService
